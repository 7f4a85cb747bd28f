package service

import (
	"context"
	"math/rand"

	"github.com/shopspring/decimal"

	"ecometer/internal/models"
)

// DefaultSuggestionLimit is how many suggestions a call returns by default.
const DefaultSuggestionLimit = 2

// SuggestionStore reads suggestion records.
type SuggestionStore interface {
	ActiveIDs(ctx context.Context) ([]int64, error)
	ByIDs(ctx context.Context, ids []int64) ([]models.Suggestion, error)
}

// SuggestionService selects random active suggestions for display.
type SuggestionService struct {
	store SuggestionStore
	intn  func(n int) int
}

// NewSuggestionService returns service instance.
func NewSuggestionService(store SuggestionStore) *SuggestionService {
	return &SuggestionService{
		store: store,
		intn:  rand.Intn,
	}
}

// SuggestionView is the display shape of a suggestion.
type SuggestionView struct {
	ID                  int64           `json:"id"`
	SuggestionText      string          `json:"suggestionText"`
	Category            string          `json:"category"`
	Priority            string          `json:"priority"`
	EstimatedSavingsUsd decimal.Decimal `json:"estimatedSavingsUsd"`
}

// Active returns a uniform random subset of the active suggestions, at most
// limit entries. Fewer active suggestions than limit is not an error; all of
// them are returned. The sample is drawn in-process so it does not depend on
// a database-specific random function.
func (s *SuggestionService) Active(ctx context.Context, limit int) ([]SuggestionView, error) {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	ids, err := s.store.ActiveIDs(ctx)
	if err != nil {
		return nil, err
	}

	chosen := s.sample(ids, limit)
	suggestions, err := s.store.ByIDs(ctx, chosen)
	if err != nil {
		return nil, err
	}

	views := make([]SuggestionView, 0, len(suggestions))
	for _, sg := range suggestions {
		views = append(views, SuggestionView{
			ID:                  sg.ID,
			SuggestionText:      sg.Text,
			Category:            string(sg.Category),
			Priority:            string(sg.Priority),
			EstimatedSavingsUsd: sg.EstimatedSavingsUsd,
		})
	}
	return views, nil
}

// sample draws min(limit, len(ids)) distinct ids via a partial Fisher-Yates
// shuffle over a copy.
func (s *SuggestionService) sample(ids []int64, limit int) []int64 {
	if len(ids) <= limit {
		return ids
	}
	pool := make([]int64, len(ids))
	copy(pool, ids)
	for i := 0; i < limit; i++ {
		j := i + s.intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:limit]
}
