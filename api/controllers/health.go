package controllers

import (
	"net/http"

	"github.com/dmoreira/workshop-backend/api/responses"
	"github.com/dmoreira/workshop-backend/pkg/db"
	pkgerrors "github.com/dmoreira/workshop-backend/pkg/errors"
	"github.com/dmoreira/workshop-backend/pkg/logger"
	"github.com/dmoreira/workshop-backend/pkg/redis"
)

// Health reports process liveness.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "healthy"})
	}
}

// Ready reports whether the backing stores answer. The cache pinger is
// nil when Redis is not configured.
func Ready(database db.Pinger, cache redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if database == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "database unavailable"))
			return
		}
		if err := database.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
			return
		}
		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cache unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
