package controllers

import (
	"net/http"

	"github.com/dmoreira/workshop-backend/api/responses"
	"github.com/dmoreira/workshop-backend/api/validators"
	reportsvc "github.com/dmoreira/workshop-backend/internal/reports"
	"github.com/dmoreira/workshop-backend/pkg/logger"
)

// SalesReport aggregates sales between start_date and end_date,
// both inclusive.
func SalesReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, err := validators.ParseQueryDate(r, "start_date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		end, err := validators.ParseQueryDate(r, "end_date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Sales(r.Context(), start, end)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
