package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the chat endpoint next to the admin surface.
func NewRouter(endpoint *Endpoint, api *ConfigAPI, health *Health, metrics *Metrics) http.Handler {
	r := chi.NewRouter()
	r.Get("/ws", endpoint.ServeHTTP)
	r.Post("/api/config", api.Upload)
	r.Get("/api/config", api.Active)
	r.Method(http.MethodGet, "/health", health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return r
}
