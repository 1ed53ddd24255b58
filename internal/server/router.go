package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/blue-screen-of-app/internal/analytics"
	"github.com/blue-screen-of-app/internal/config"
	"github.com/blue-screen-of-app/internal/handler"
	"github.com/blue-screen-of-app/internal/handler/admin"
	"github.com/blue-screen-of-app/internal/middleware"
	"github.com/blue-screen-of-app/internal/render"
	"github.com/blue-screen-of-app/internal/service"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Config    *config.Config
	Service   *service.BSODService
	Renderer  *render.Renderer
	Analytics *analytics.Aggregator
}

// NewRouter builds the HTTP handler for the whole application.
func NewRouter(d Deps) http.Handler {
	cfg := d.Config

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(chimw.Recoverer)
	if cfg.SecurityHeaders {
		r.Use(middleware.SecurityHeaders)
	}

	// Set before Route so the /api subrouter inherits them.
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Method(http.MethodGet, "/", handler.NewPageHandler(d.Service, d.Renderer))
	r.Method(http.MethodGet, "/random", handler.NewRandomStyleHandler(d.Service))

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
			MaxAge:         300,
		}))
		r.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)))

		r.Group(func(r chi.Router) {
			r.Use(middleware.TrackAPICalls(d.Analytics))

			r.Method(http.MethodGet, "/error", handler.NewRandomErrorHandler(d.Service))
			r.Method(http.MethodGet, "/error/{code}", handler.NewErrorByCodeHandler(d.Service))
			r.Method(http.MethodGet, "/codes", handler.NewCodesHandler(d.Service))
			r.Get("/styles", handler.Styles)
		})

		r.Method(http.MethodGet, "/analytics", handler.NewAnalyticsHandler(d.Analytics))
		r.Method(http.MethodPost, "/analytics/reset", admin.NewResetAnalyticsHandler(d.Analytics, cfg.IsProduction()))
		r.Method(http.MethodGet, "/health", handler.NewHealthHandler(d.Analytics))
		r.Method(http.MethodGet, "/metrics", handler.NewMetricsHandler(d.Analytics))
	})

	return r
}
