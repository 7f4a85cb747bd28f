package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecometer/internal/models"
)

type fakeSuggestionStore struct {
	suggestions map[int64]models.Suggestion
}

func (f *fakeSuggestionStore) ActiveIDs(context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(f.suggestions))
	for id, s := range f.suggestions {
		if s.IsActive {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeSuggestionStore) ByIDs(_ context.Context, ids []int64) ([]models.Suggestion, error) {
	out := make([]models.Suggestion, 0, len(ids))
	for _, id := range ids {
		if s, ok := f.suggestions[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func storeWith(suggestions ...models.Suggestion) *fakeSuggestionStore {
	byID := make(map[int64]models.Suggestion, len(suggestions))
	for _, s := range suggestions {
		byID[s.ID] = s
	}
	return &fakeSuggestionStore{suggestions: byID}
}

func activeSuggestion(id int64) models.Suggestion {
	return models.Suggestion{
		ID:                  id,
		Text:                "Tune equipment",
		Category:            models.CategoryEnergySaving,
		Priority:            models.PriorityMedium,
		EstimatedSavingsUsd: decimal.RequireFromString("100.00"),
		IsActive:            true,
	}
}

func TestActiveSamplesRequestedCount(t *testing.T) {
	store := storeWith(
		activeSuggestion(1),
		activeSuggestion(2),
		activeSuggestion(3),
		activeSuggestion(4),
	)
	svc := NewSuggestionService(store)
	svc.intn = func(n int) int { return n - 1 } // always pick the last candidate

	views, err := svc.Active(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestActiveNeverReturnsInactive(t *testing.T) {
	inactive := activeSuggestion(5)
	inactive.IsActive = false
	store := storeWith(activeSuggestion(1), inactive)
	svc := NewSuggestionService(store)

	for i := 0; i < 20; i++ {
		views, err := svc.Active(context.Background(), 2)
		require.NoError(t, err)
		for _, v := range views {
			assert.NotEqual(t, int64(5), v.ID)
		}
	}
}

func TestActiveUnderSupplyReturnsAll(t *testing.T) {
	store := storeWith(activeSuggestion(1))
	svc := NewSuggestionService(store)

	views, err := svc.Active(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(1), views[0].ID)
}

func TestActiveEmptyStore(t *testing.T) {
	store := storeWith()
	svc := NewSuggestionService(store)

	views, err := svc.Active(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestActiveShapesView(t *testing.T) {
	s := activeSuggestion(7)
	s.Text = "Fix HVAC: Runs all night"
	s.Priority = models.PriorityHigh
	store := storeWith(s)
	svc := NewSuggestionService(store)

	views, err := svc.Active(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, int64(7), v.ID)
	assert.Equal(t, "Fix HVAC: Runs all night", v.SuggestionText)
	assert.Equal(t, "ENERGY_SAVING", v.Category)
	assert.Equal(t, "HIGH", v.Priority)
	assert.True(t, v.EstimatedSavingsUsd.Equal(decimal.RequireFromString("100.00")))
}

func TestActiveDefaultsLimit(t *testing.T) {
	store := storeWith(activeSuggestion(1), activeSuggestion(2), activeSuggestion(3))
	svc := NewSuggestionService(store)

	views, err := svc.Active(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, views, DefaultSuggestionLimit)
}

func TestSampleUsesInjectedRandom(t *testing.T) {
	store := storeWith(activeSuggestion(1), activeSuggestion(2), activeSuggestion(3))
	svc := NewSuggestionService(store)

	var calls int
	svc.intn = func(n int) int {
		calls++
		return 0
	}

	_, err := svc.Active(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "one draw per selected entry")
}
