package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"ecometer/internal/service"
)

// DepartmentsHandler lists departments.
type DepartmentsHandler struct {
	service *service.DepartmentService
	logger  *zap.Logger
}

// NewDepartmentsHandler returns handler.
func NewDepartmentsHandler(service *service.DepartmentService, logger *zap.Logger) *DepartmentsHandler {
	return &DepartmentsHandler{
		service: service,
		logger:  logger,
	}
}

// ServeHTTP handles GET /api/departments.
func (h *DepartmentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch departments", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch departments")
		return
	}
	writeJSON(w, http.StatusOK, departments)
}
