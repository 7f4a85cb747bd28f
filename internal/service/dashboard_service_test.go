package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecometer/internal/models"
	"ecometer/internal/repository"
)

type fakeReadingSource struct {
	readings  []models.EnergyReading
	summaries []repository.DepartmentTotals

	lastSince time.Time
}

func (f *fakeReadingSource) ListSince(_ context.Context, since time.Time) ([]models.EnergyReading, error) {
	f.lastSince = since
	out := make([]models.EnergyReading, 0)
	for _, r := range f.readings {
		if !r.Timestamp.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReadingSource) SummarizeSince(_ context.Context, since time.Time) ([]repository.DepartmentTotals, error) {
	return f.summaries, nil
}

func reading(ts time.Time, kwh, cost, carbon string) models.EnergyReading {
	return models.EnergyReading{
		DepartmentID: 1,
		KwhUsed:      decimal.RequireFromString(kwh),
		SourceType:   models.SourceElectricity,
		Timestamp:    ts,
		CostUsd:      decimal.RequireFromString(cost),
		CarbonKg:     decimal.RequireFromString(carbon),
	}
}

func newTestDashboardService(source *fakeReadingSource, now time.Time) *DashboardService {
	suggestions := NewSuggestionService(storeWith(activeSuggestion(1), activeSuggestion(2), activeSuggestion(3)))
	svc := NewDashboardService(source, suggestions, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestSnapshotWindowIsInclusiveAtBoundary(t *testing.T) {
	now := time.Date(2025, 11, 8, 12, 0, 0, 0, time.UTC)
	boundary := now.Add(-24 * time.Hour)

	source := &fakeReadingSource{
		readings: []models.EnergyReading{
			reading(boundary, "10.00", "1.20", "4.500"),                  // exactly at the window edge
			reading(boundary.Add(-time.Second), "99.00", "9.90", "9.99"), // just outside
			reading(now.Add(-time.Hour), "5.00", "0.60", "2.250"),
		},
	}
	svc := newTestDashboardService(source, now)

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, boundary, source.lastSince)
	assert.True(t, snapshot.TotalKwhUsed.Equal(decimal.RequireFromString("15.00")),
		"kwh: got %s", snapshot.TotalKwhUsed)
	assert.True(t, snapshot.TotalCostUsd.Equal(decimal.RequireFromString("1.80")),
		"cost: got %s", snapshot.TotalCostUsd)
	assert.True(t, snapshot.TotalCarbonFootprint.Equal(decimal.RequireFromString("6.750")),
		"carbon: got %s", snapshot.TotalCarbonFootprint)
}

func TestSnapshotEmptyWindow(t *testing.T) {
	now := time.Date(2025, 11, 8, 12, 0, 0, 0, time.UTC)
	source := &fakeReadingSource{}
	svc := newTestDashboardService(source, now)

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.True(t, snapshot.TotalKwhUsed.IsZero())
	assert.True(t, snapshot.TotalCostUsd.IsZero())
	assert.True(t, snapshot.TotalCarbonFootprint.IsZero())
	assert.Empty(t, snapshot.DepartmentSummaries)
}

func TestSnapshotDepartmentSummaries(t *testing.T) {
	now := time.Date(2025, 11, 8, 12, 0, 0, 0, time.UTC)
	source := &fakeReadingSource{
		summaries: []repository.DepartmentTotals{
			{
				DepartmentName: "Library",
				TotalKwh:       decimal.RequireFromString("310.00"),
				TotalCarbonKg:  decimal.RequireFromString("139.500"),
				TotalCostUsd:   decimal.RequireFromString("37.20"),
				ReadingCount:   3,
			},
			{
				DepartmentName: "Dining Hall",
				TotalKwh:       decimal.RequireFromString("74.25"),
				TotalCarbonKg:  decimal.RequireFromString("33.413"),
				TotalCostUsd:   decimal.RequireFromString("8.91"),
				ReadingCount:   1,
			},
		},
	}
	svc := newTestDashboardService(source, now)

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.DepartmentSummaries, 2)
	assert.Equal(t, "Library", snapshot.DepartmentSummaries[0].DepartmentName)
	assert.Equal(t, 3, snapshot.DepartmentSummaries[0].ReadingCount)
	assert.Equal(t, 1, snapshot.DepartmentSummaries[1].ReadingCount,
		"each summary row carries its own count")
}

func TestSnapshotAttachesSuggestions(t *testing.T) {
	now := time.Date(2025, 11, 8, 12, 0, 0, 0, time.UTC)
	svc := newTestDashboardService(&fakeReadingSource{}, now)

	snapshot, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.AiSuggestions, DefaultSuggestionLimit)
}
