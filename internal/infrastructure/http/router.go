package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/skyops/missiond/internal/infrastructure/http/handlers"
	"github.com/skyops/missiond/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	MissionsHandler *handlers.MissionsHandler
	HealthHandler   *handlers.HealthHandler
	RequireAuth     func(http.Handler) http.Handler
	CORS            func(http.Handler) http.Handler
	Secure          func(http.Handler) http.Handler
	Log             zerolog.Logger
	Metrics         bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", cfg.AuthHandler.Signup)
			r.Post("/login", cfg.AuthHandler.Login)
			r.Group(func(r chi.Router) {
				r.Use(cfg.RequireAuth)
				r.Get("/me", cfg.AuthHandler.Me)
			})
		})
		r.Group(func(r chi.Router) {
			r.Use(cfg.RequireAuth)
			r.Post("/data/upload", cfg.MissionsHandler.Upload)
			r.Get("/data/query", cfg.MissionsHandler.Query)
			r.Get("/missions/{missionID}/status", cfg.MissionsHandler.Status)
			r.Post("/simulate/{num}", cfg.MissionsHandler.Simulate)
			r.Get("/simulations", cfg.MissionsHandler.Simulations)
		})
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
