package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a suggestion.
type Category string

const (
	CategoryEnergySaving   Category = "ENERGY_SAVING"
	CategoryCostReduction  Category = "COST_REDUCTION"
	CategorySustainability Category = "SUSTAINABILITY"
	CategoryMaintenance    Category = "MAINTENANCE"
)

// Priority ranks a suggestion.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ParsePriority maps a string onto a Priority, case-insensitively.
// Unrecognized values fall back to MEDIUM.
func ParsePriority(s string) Priority {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(PriorityHigh):
		return PriorityHigh
	case string(PriorityLow):
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Suggestion is a canned recommendation shown on the dashboard.
type Suggestion struct {
	ID                  int64           `db:"id" json:"id"`
	Text                string          `db:"suggestion_text" json:"suggestionText"`
	Category            Category        `db:"category" json:"category"`
	Priority            Priority        `db:"priority" json:"priority"`
	EstimatedSavingsUsd decimal.Decimal `db:"estimated_savings_usd" json:"estimatedSavingsUsd"`
	IsActive            bool            `db:"is_active" json:"isActive"`
	CreatedAt           time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updatedAt"`
}
