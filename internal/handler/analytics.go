package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blue-screen-of-app/internal/analytics"
)

type AnalyticsHandler struct {
	analytics *analytics.Aggregator
}

func NewAnalyticsHandler(agg *analytics.Aggregator) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: agg}
}

type AnalyticsResponse struct {
	Enabled bool `json:"enabled"`
	analytics.Summary
}

func (h *AnalyticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, AnalyticsResponse{
		Enabled: h.analytics.Enabled(),
		Summary: h.analytics.Summary(),
	})
}

// NewMetricsHandler serves the analytics counters in Prometheus text format.
func NewMetricsHandler(agg *analytics.Aggregator) http.Handler {
	return promhttp.HandlerFor(analytics.NewRegistry(agg), promhttp.HandlerOpts{})
}
