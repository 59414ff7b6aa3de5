package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"Teller/internal/service"
)

// DashboardHandler обслуживает /dashboard.
type DashboardHandler struct {
	dashboard *service.DashboardService
	logger    *zap.SugaredLogger
}

// NewDashboardHandler конструктор.
func NewDashboardHandler(dashboard *service.DashboardService, logger *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
