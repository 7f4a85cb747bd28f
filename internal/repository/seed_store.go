package repository

import (
	"context"
	"database/sql"

	"ecometer/internal/seed"
)

// SeedStore loads and inspects the demo dataset.
type SeedStore struct {
	db *sql.DB
}

// NewSeedStore returns store.
func NewSeedStore(db *sql.DB) *SeedStore {
	return &SeedStore{db: db}
}

// SeedCounts reports how many records of each kind the store holds.
type SeedCounts struct {
	Departments int64
	Readings    int64
	Suggestions int64
}

// Load inserts the seed dataset inside a single transaction. With reset set,
// existing readings, suggestions and departments are deleted first (in that
// order, respecting foreign keys); otherwise the load is refused with
// ErrDataAlreadyExists when any department exists. Seed readings referencing
// an unknown department name are skipped.
func (s *SeedStore) Load(ctx context.Context, data seed.Data, reset bool) (SeedCounts, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SeedCounts{}, err
	}
	defer tx.Rollback()

	if reset {
		for _, stmt := range []string{
			`DELETE FROM energy_readings`,
			`DELETE FROM suggestions`,
			`DELETE FROM departments`,
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return SeedCounts{}, err
			}
		}
	} else {
		var existing int64
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM departments`).Scan(&existing); err != nil {
			return SeedCounts{}, err
		}
		if existing > 0 {
			return SeedCounts{}, ErrDataAlreadyExists
		}
	}

	var counts SeedCounts

	departmentIDs := make(map[string]int64, len(data.Departments))
	const insertDepartment = `
		INSERT INTO departments (name, description)
		VALUES ($1, $2)
		RETURNING id
	`
	for _, d := range data.Departments {
		var id int64
		if err := tx.QueryRowContext(ctx, insertDepartment, d.Name, d.Description).Scan(&id); err != nil {
			return SeedCounts{}, err
		}
		departmentIDs[d.Name] = id
		counts.Departments++
	}

	const insertReading = `
		INSERT INTO energy_readings (department_id, kwh_used, source_type, timestamp, cost_usd, carbon_kg, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	for _, r := range data.Readings {
		departmentID, ok := departmentIDs[r.DepartmentName]
		if !ok {
			continue
		}
		if _, err := tx.ExecContext(ctx, insertReading,
			departmentID,
			r.Reading.KwhUsed,
			r.Reading.SourceType,
			r.Reading.Timestamp,
			r.Reading.CostUsd,
			r.Reading.CarbonKg,
		); err != nil {
			return SeedCounts{}, err
		}
		counts.Readings++
	}

	const insertSuggestion = `
		INSERT INTO suggestions (suggestion_text, category, priority, estimated_savings_usd, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	for _, sg := range data.Suggestions {
		if _, err := tx.ExecContext(ctx, insertSuggestion,
			sg.Text,
			sg.Category,
			sg.Priority,
			sg.EstimatedSavingsUsd,
			sg.IsActive,
		); err != nil {
			return SeedCounts{}, err
		}
		counts.Suggestions++
	}

	if err := tx.Commit(); err != nil {
		return SeedCounts{}, err
	}
	return counts, nil
}

// Counts returns current record counts for all three kinds.
func (s *SeedStore) Counts(ctx context.Context) (SeedCounts, error) {
	var counts SeedCounts
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM departments`).Scan(&counts.Departments); err != nil {
		return SeedCounts{}, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM energy_readings`).Scan(&counts.Readings); err != nil {
		return SeedCounts{}, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM suggestions`).Scan(&counts.Suggestions); err != nil {
		return SeedCounts{}, err
	}
	return counts, nil
}
