package admin

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/blue-screen-of-app/internal/analytics"
	"github.com/blue-screen-of-app/internal/handler"
	"github.com/blue-screen-of-app/internal/middleware"
	"github.com/blue-screen-of-app/internal/service"
)

// ResetAnalyticsHandler clears the analytics counters. Production deployments refuse it.
type ResetAnalyticsHandler struct {
	analytics  *analytics.Aggregator
	production bool
}

func NewResetAnalyticsHandler(agg *analytics.Aggregator, production bool) *ResetAnalyticsHandler {
	return &ResetAnalyticsHandler{analytics: agg, production: production}
}

type resetResponse struct {
	Message string `json:"message"`
}

func (h *ResetAnalyticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.production {
		log.Warn().Str("request_id", middleware.GetRequestID(r.Context())).Msg("analytics reset refused in production")
		service.RespondError(w, service.NewForbidden("forbidden", "Not available in production"))
		return
	}

	h.analytics.Reset()
	handler.RespondJSON(w, http.StatusOK, resetResponse{Message: "Analytics reset successfully"})
}
