package handler

import (
	"net/http"
	"time"

	"github.com/blue-screen-of-app/internal/analytics"
)

const Version = "1.0.0"

type HealthHandler struct {
	analytics *analytics.Aggregator
}

func NewHealthHandler(agg *analytics.Aggregator) *HealthHandler {
	return &HealthHandler{analytics: agg}
}

type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    analytics.Uptime `json:"uptime"`
	Version   string           `json:"version"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    h.analytics.Summary().Uptime,
		Version:   Version,
	})
}
