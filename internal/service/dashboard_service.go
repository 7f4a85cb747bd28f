package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ecometer/internal/models"
	"ecometer/internal/repository"
)

// dashboardWindow is the trailing interval the dashboard aggregates over.
const dashboardWindow = 24 * time.Hour

// ReadingSource provides windowed reading queries.
type ReadingSource interface {
	ListSince(ctx context.Context, since time.Time) ([]models.EnergyReading, error)
	SummarizeSince(ctx context.Context, since time.Time) ([]repository.DepartmentTotals, error)
}

// DashboardService computes the dashboard snapshot.
type DashboardService struct {
	readings    ReadingSource
	suggestions *SuggestionService
	logger      *zap.Logger
	now         func() time.Time
}

// NewDashboardService returns service instance.
func NewDashboardService(readings ReadingSource, suggestions *SuggestionService, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		readings:    readings,
		suggestions: suggestions,
		logger:      logger,
		now:         time.Now,
	}
}

// DashboardSnapshot is the aggregated dashboard payload.
type DashboardSnapshot struct {
	TotalCarbonFootprint decimal.Decimal     `json:"totalCarbonFootprint"`
	TotalCostUsd         decimal.Decimal     `json:"totalCostUsd"`
	TotalKwhUsed         decimal.Decimal     `json:"totalKwhUsed"`
	DepartmentSummaries  []DepartmentSummary `json:"departmentSummaries"`
	AiSuggestions        []SuggestionView    `json:"aiSuggestions"`
}

// DepartmentSummary is one per-department row of the snapshot.
type DepartmentSummary struct {
	DepartmentName string          `json:"departmentName"`
	TotalKwh       decimal.Decimal `json:"totalKwh"`
	TotalCarbonKg  decimal.Decimal `json:"totalCarbonKg"`
	TotalCostUsd   decimal.Decimal `json:"totalCostUsd"`
	ReadingCount   int             `json:"readingCount"`
}

// Snapshot aggregates the last 24 hours of readings. The window is inclusive
// at its lower bound. The call either fully succeeds or fully fails.
func (s *DashboardService) Snapshot(ctx context.Context) (DashboardSnapshot, error) {
	since := s.now().UTC().Add(-dashboardWindow)

	recent, err := s.readings.ListSince(ctx, since)
	if err != nil {
		return DashboardSnapshot{}, err
	}

	totalCarbon := decimal.Zero
	totalCost := decimal.Zero
	totalKwh := decimal.Zero
	for _, r := range recent {
		totalCarbon = totalCarbon.Add(r.CarbonKg)
		totalCost = totalCost.Add(r.CostUsd)
		totalKwh = totalKwh.Add(r.KwhUsed)
	}

	perDepartment, err := s.readings.SummarizeSince(ctx, since)
	if err != nil {
		return DashboardSnapshot{}, err
	}
	summaries := make([]DepartmentSummary, 0, len(perDepartment))
	for _, t := range perDepartment {
		summaries = append(summaries, DepartmentSummary{
			DepartmentName: t.DepartmentName,
			TotalKwh:       t.TotalKwh,
			TotalCarbonKg:  t.TotalCarbonKg,
			TotalCostUsd:   t.TotalCostUsd,
			ReadingCount:   t.ReadingCount,
		})
	}

	suggestions, err := s.suggestions.Active(ctx, DefaultSuggestionLimit)
	if err != nil {
		return DashboardSnapshot{}, err
	}

	s.logger.Debug("dashboard snapshot built",
		zap.Int("windowed_readings", len(recent)),
		zap.Int("departments", len(summaries)),
	)

	return DashboardSnapshot{
		TotalCarbonFootprint: totalCarbon,
		TotalCostUsd:         totalCost,
		TotalKwhUsed:         totalKwh,
		DepartmentSummaries:  summaries,
		AiSuggestions:        suggestions,
	}, nil
}
