package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"ecometer/internal/models"
)

// EnergyReadingRepository persists energy readings.
type EnergyReadingRepository struct {
	db *sql.DB
}

// NewEnergyReadingRepository returns repository.
func NewEnergyReadingRepository(db *sql.DB) *EnergyReadingRepository {
	return &EnergyReadingRepository{db: db}
}

// Insert stores a new reading. The department check and the insert run in one
// transaction so a concurrent reset cannot leave a reading pointing at a
// deleted department. Returns ErrDepartmentNotFound when the reference does
// not resolve.
func (r *EnergyReadingRepository) Insert(ctx context.Context, reading *models.EnergyReading) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	const check = `SELECT EXISTS (SELECT 1 FROM departments WHERE id = $1)`
	if err := tx.QueryRowContext(ctx, check, reading.DepartmentID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrDepartmentNotFound
	}

	const insert = `
		INSERT INTO energy_readings (department_id, kwh_used, source_type, timestamp, cost_usd, carbon_kg, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, insert,
		reading.DepartmentID,
		reading.KwhUsed,
		reading.SourceType,
		reading.Timestamp,
		reading.CostUsd,
		reading.CarbonKg,
	).Scan(&reading.ID, &reading.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ListSince returns readings with timestamp at or after the given instant,
// newest first.
func (r *EnergyReadingRepository) ListSince(ctx context.Context, since time.Time) ([]models.EnergyReading, error) {
	const query = `
		SELECT id, department_id, kwh_used, source_type, timestamp, cost_usd, carbon_kg, created_at
		FROM energy_readings
		WHERE timestamp >= $1
		ORDER BY timestamp DESC
	`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readings := make([]models.EnergyReading, 0)
	for rows.Next() {
		var e models.EnergyReading
		if err := rows.Scan(
			&e.ID,
			&e.DepartmentID,
			&e.KwhUsed,
			&e.SourceType,
			&e.Timestamp,
			&e.CostUsd,
			&e.CarbonKg,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		readings = append(readings, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return readings, nil
}

// DepartmentTotals is one GROUP BY row of the windowed per-department summary.
type DepartmentTotals struct {
	DepartmentName string
	TotalKwh       decimal.Decimal
	TotalCarbonKg  decimal.Decimal
	TotalCostUsd   decimal.Decimal
	ReadingCount   int
}

// SummarizeSince aggregates windowed readings per department. Each row carries
// its own reading count.
func (r *EnergyReadingRepository) SummarizeSince(ctx context.Context, since time.Time) ([]DepartmentTotals, error) {
	const query = `
		SELECT d.name, SUM(er.kwh_used), SUM(er.carbon_kg), SUM(er.cost_usd), COUNT(*)
		FROM energy_readings er
		JOIN departments d ON d.id = er.department_id
		WHERE er.timestamp >= $1
		GROUP BY d.id, d.name
	`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make([]DepartmentTotals, 0)
	for rows.Next() {
		var t DepartmentTotals
		if err := rows.Scan(
			&t.DepartmentName,
			&t.TotalKwh,
			&t.TotalCarbonKg,
			&t.TotalCostUsd,
			&t.ReadingCount,
		); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}
