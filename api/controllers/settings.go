package controllers

import (
	"net/http"

	"github.com/dmoreira/workshop-backend/api/responses"
	"github.com/dmoreira/workshop-backend/api/validators"
	settingsvc "github.com/dmoreira/workshop-backend/internal/settings"
	dbtypes "github.com/dmoreira/workshop-backend/pkg/db/types"
	"github.com/dmoreira/workshop-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type updateSettingRequest struct {
	Value dbtypes.JSONValue `json:"value" validate:"required"`
}

// GetSettings returns the flattened key/value map.
func GetSettings(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.GetAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, all)
	}
}

// UpdateSetting upserts a single key with whatever JSON value was sent.
func UpdateSetting(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		var payload updateSettingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Set(r.Context(), key, payload.Value); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "Setting updated successfully"})
	}
}
