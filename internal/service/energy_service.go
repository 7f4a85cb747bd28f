package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ecometer/internal/models"
)

// ErrInvalidSourceType indicates an unrecognized energy source string.
var ErrInvalidSourceType = errors.New("invalid source type")

// ReadingStore persists energy readings.
type ReadingStore interface {
	Insert(ctx context.Context, reading *models.EnergyReading) error
}

// EnergyService ingests simulated IoT readings.
type EnergyService struct {
	readings ReadingStore
	logger   *zap.Logger
	now      func() time.Time
}

// NewEnergyService returns service instance.
func NewEnergyService(readings ReadingStore, logger *zap.Logger) *EnergyService {
	return &EnergyService{
		readings: readings,
		logger:   logger,
		now:      time.Now,
	}
}

// RecordInput is one inbound reading. CostUsd and CarbonKg are optional;
// absent values are imputed from consumption.
type RecordInput struct {
	DepartmentID int64
	KwhUsed      decimal.Decimal
	SourceType   string
	CostUsd      *decimal.Decimal
	CarbonKg     *decimal.Decimal
}

// Record validates and persists one reading. The timestamp is always the
// ingestion time; callers cannot backdate readings through this path.
func (s *EnergyService) Record(ctx context.Context, input RecordInput) error {
	source, err := models.ParseSourceType(input.SourceType)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSourceType, input.SourceType)
	}

	reading := &models.EnergyReading{
		DepartmentID: input.DepartmentID,
		KwhUsed:      input.KwhUsed,
		SourceType:   source,
		Timestamp:    s.now().UTC(),
	}

	if input.CarbonKg != nil {
		reading.CarbonKg = *input.CarbonKg
	} else {
		reading.CarbonKg = models.EstimateCarbonKg(input.KwhUsed)
	}
	if input.CostUsd != nil {
		reading.CostUsd = *input.CostUsd
	} else {
		reading.CostUsd = models.EstimateCostUsd(input.KwhUsed)
	}

	if err := s.readings.Insert(ctx, reading); err != nil {
		return err
	}

	s.logger.Info("energy reading stored",
		zap.Int64("department_id", reading.DepartmentID),
		zap.String("source_type", string(reading.SourceType)),
		zap.String("kwh_used", reading.KwhUsed.String()),
	)
	return nil
}
