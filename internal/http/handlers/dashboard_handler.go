package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"ecometer/internal/service"
)

// DashboardHandler serves the aggregated dashboard snapshot.
type DashboardHandler struct {
	service *service.DashboardService
	logger  *zap.Logger
}

// NewDashboardHandler returns handler.
func NewDashboardHandler(service *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger,
	}
}

// ServeHTTP handles GET /api/dashboard-data.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("failed to build dashboard snapshot", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch dashboard data")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
