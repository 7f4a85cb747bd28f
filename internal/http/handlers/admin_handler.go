package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"ecometer/internal/repository"
	"ecometer/internal/service"
)

// AdminHandler exposes seed-data management endpoints.
type AdminHandler struct {
	service *service.AdminService
	logger  *zap.Logger
}

// NewAdminHandler returns handler.
func NewAdminHandler(service *service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger,
	}
}

type initResponse struct {
	Message       string `json:"message"`
	Success       bool   `json:"success"`
	Departments   *int64 `json:"departments,omitempty"`
	EnergyData    *int64 `json:"energyData,omitempty"`
	AiSuggestions *int64 `json:"aiSuggestions,omitempty"`
}

// Initialize handles POST /api/initialize-test-data.
func (h *AdminHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	h.runLoad(w, r, false)
}

// ResetAndInitialize handles POST /api/reset-and-initialize.
func (h *AdminHandler) ResetAndInitialize(w http.ResponseWriter, r *http.Request) {
	h.runLoad(w, r, true)
}

func (h *AdminHandler) runLoad(w http.ResponseWriter, r *http.Request, reset bool) {
	var (
		counts repository.SeedCounts
		err    error
	)
	if reset {
		counts, err = h.service.ResetAndInitialize(r.Context())
	} else {
		counts, err = h.service.Initialize(r.Context())
	}

	switch {
	case err == nil:
		message := "Test data loaded successfully!"
		if reset {
			message = "Database reset and test data loaded successfully!"
		}
		writeJSON(w, http.StatusOK, initResponse{
			Message:       message,
			Success:       true,
			Departments:   &counts.Departments,
			EnergyData:    &counts.Readings,
			AiSuggestions: &counts.Suggestions,
		})
	case errors.Is(err, repository.ErrDataAlreadyExists):
		writeJSON(w, http.StatusOK, initResponse{
			Message: "Test data already exists. Use /reset-and-initialize to reload.",
			Success: false,
		})
	default:
		h.logger.Error("failed to load seed data", zap.Bool("reset", reset), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, initResponse{
			Message: "Error loading test data: " + err.Error(),
			Success: false,
		})
	}
}

// Status handles GET /api/data-status.
func (h *AdminHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch data status", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch data status")
		return
	}
	writeJSON(w, http.StatusOK, status)
}
