package repository

import (
	"context"
	"database/sql"

	"ecometer/internal/models"
)

// SuggestionRepository reads suggestion records.
type SuggestionRepository struct {
	db *sql.DB
}

// NewSuggestionRepository returns repository.
func NewSuggestionRepository(db *sql.DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

// ActiveIDs returns ids of every active suggestion.
func (r *SuggestionRepository) ActiveIDs(ctx context.Context) ([]int64, error) {
	const query = `
		SELECT id
		FROM suggestions
		WHERE is_active = TRUE
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ByIDs returns suggestions matching the given ids.
func (r *SuggestionRepository) ByIDs(ctx context.Context, ids []int64) ([]models.Suggestion, error) {
	if len(ids) == 0 {
		return []models.Suggestion{}, nil
	}
	const query = `
		SELECT id, suggestion_text, category, priority, estimated_savings_usd, is_active, created_at, updated_at
		FROM suggestions
		WHERE id = ANY($1)
	`
	rows, err := r.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suggestions := make([]models.Suggestion, 0, len(ids))
	for rows.Next() {
		var s models.Suggestion
		if err := rows.Scan(
			&s.ID,
			&s.Text,
			&s.Category,
			&s.Priority,
			&s.EstimatedSavingsUsd,
			&s.IsActive,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return suggestions, nil
}
