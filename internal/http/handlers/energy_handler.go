package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ecometer/internal/repository"
	"ecometer/internal/service"
)

// EnergyHandler ingests simulated IoT readings.
type EnergyHandler struct {
	service *service.EnergyService
	logger  *zap.Logger
}

// NewEnergyHandler returns handler.
func NewEnergyHandler(service *service.EnergyService, logger *zap.Logger) *EnergyHandler {
	return &EnergyHandler{
		service: service,
		logger:  logger,
	}
}

type energyDataRequest struct {
	DepartmentID int64            `json:"departmentId"`
	KwhUsed      *decimal.Decimal `json:"kwhUsed"`
	SourceType   string           `json:"sourceType"`
	CostUsd      *decimal.Decimal `json:"costUsd"`
	CarbonKg     *decimal.Decimal `json:"carbonKg"`
}

// ServeHTTP handles POST /api/data.
func (h *EnergyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req energyDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.DepartmentID == 0 {
		writeError(w, http.StatusBadRequest, "departmentId is required")
		return
	}
	if req.KwhUsed == nil {
		writeError(w, http.StatusBadRequest, "kwhUsed is required")
		return
	}

	err := h.service.Record(r.Context(), service.RecordInput{
		DepartmentID: req.DepartmentID,
		KwhUsed:      *req.KwhUsed,
		SourceType:   req.SourceType,
		CostUsd:      req.CostUsd,
		CarbonKg:     req.CarbonKg,
	})
	switch {
	case err == nil:
		writeText(w, http.StatusOK, "Energy data saved successfully")
	case errors.Is(err, repository.ErrDepartmentNotFound):
		writeError(w, http.StatusNotFound, "department not found")
	case errors.Is(err, service.ErrInvalidSourceType):
		writeError(w, http.StatusBadRequest, "unknown source type")
	default:
		h.logger.Error("failed to store energy reading", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store energy reading")
	}
}
