// Package http assembles the router: middleware chain, operational
// endpoints, and the authenticated API surface.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"instructhub/internal/casebook/handler"
	"instructhub/internal/platform/middleware"
	"instructhub/internal/platform/redis"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger   *slog.Logger
	Casebook *handler.Handler
	Auth     middleware.JWTValidator
	Redis    *redis.Client
}

// NewRouter builds the full HTTP handler.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Device)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", healthz(deps.Redis))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(deps.Auth, deps.Logger))
		r.Use(middleware.ContentTypeJSON)
		deps.Casebook.Register(r)
	})

	return r
}

func healthz(cache *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{"status": "ok"}
		status := http.StatusOK

		if cache != nil {
			if err := cache.Health(r.Context()); err != nil {
				body["status"] = "degraded"
				body["redis"] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				body["redis"] = "ok"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
