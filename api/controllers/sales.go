package controllers

import (
	"net/http"

	"github.com/dmoreira/workshop-backend/api/responses"
	"github.com/dmoreira/workshop-backend/api/validators"
	salesvc "github.com/dmoreira/workshop-backend/internal/sales"
	"github.com/dmoreira/workshop-backend/pkg/db/models"
	"github.com/dmoreira/workshop-backend/pkg/logger"
	"github.com/google/uuid"
)

// createSaleRequest mirrors what the point of sale submits. The items
// list must be present but may be empty.
type createSaleRequest struct {
	CustomerID *uuid.UUID        `json:"customer_id,omitempty"`
	Items      []models.SaleItem `json:"items" validate:"required,dive"`
}

func ListSales(svc salesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// CreateSale records a sale, numbering it and decrementing part stock.
func CreateSale(svc salesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createSaleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sale, err := svc.Create(r.Context(), salesvc.CreateInput{
			CustomerID: payload.CustomerID,
			Items:      payload.Items,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, sale)
	}
}

func GetSale(svc salesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sale, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, sale)
	}
}
