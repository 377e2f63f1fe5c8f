package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS mirrors the permissive policy of the original workshop frontend:
// the SPA may be served from anywhere on the LAN.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
