package repository

import (
	"context"
	"database/sql"

	"ecometer/internal/models"
)

// DepartmentRepository reads department records.
type DepartmentRepository struct {
	db *sql.DB
}

// NewDepartmentRepository returns repository.
func NewDepartmentRepository(db *sql.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// ListAll returns every department ordered by id.
func (r *DepartmentRepository) ListAll(ctx context.Context) ([]models.Department, error) {
	const query = `
		SELECT id, name, description
		FROM departments
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]models.Department, 0)
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return departments, nil
}
