package service

import (
	"context"

	"ecometer/internal/models"
)

// DepartmentStore reads department records.
type DepartmentStore interface {
	ListAll(ctx context.Context) ([]models.Department, error)
}

// DepartmentService lists departments.
type DepartmentService struct {
	departments DepartmentStore
}

// NewDepartmentService returns service instance.
func NewDepartmentService(departments DepartmentStore) *DepartmentService {
	return &DepartmentService{departments: departments}
}

// List returns every department.
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	return s.departments.ListAll(ctx)
}
