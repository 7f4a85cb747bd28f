package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecometer/internal/models"
	"ecometer/internal/repository"
	"ecometer/internal/seed"
)

// fakeSeedStore mimics the transactional load semantics of the real store.
type fakeSeedStore struct {
	departments int64
	readings    int64
	suggestions int64
}

func (f *fakeSeedStore) Load(_ context.Context, data seed.Data, reset bool) (repository.SeedCounts, error) {
	if reset {
		f.departments, f.readings, f.suggestions = 0, 0, 0
	} else if f.departments > 0 {
		return repository.SeedCounts{}, repository.ErrDataAlreadyExists
	}

	known := make(map[string]bool, len(data.Departments))
	for _, d := range data.Departments {
		known[d.Name] = true
		f.departments++
	}
	for _, r := range data.Readings {
		if known[r.DepartmentName] {
			f.readings++
		}
	}
	f.suggestions += int64(len(data.Suggestions))

	return repository.SeedCounts{
		Departments: f.departments,
		Readings:    f.readings,
		Suggestions: f.suggestions,
	}, nil
}

func (f *fakeSeedStore) Counts(context.Context) (repository.SeedCounts, error) {
	return repository.SeedCounts{
		Departments: f.departments,
		Readings:    f.readings,
		Suggestions: f.suggestions,
	}, nil
}

func testDataset() (seed.Data, error) {
	return seed.Data{
		Departments: []models.Department{{Name: "Library"}, {Name: "Dining Hall"}},
		Readings: []seed.Reading{
			{DepartmentName: "Library"},
			{DepartmentName: "Dining Hall"},
			{DepartmentName: "Physics Annex"}, // not in departments, must be skipped
		},
		Suggestions: []models.Suggestion{{Text: "a"}, {Text: "b"}},
	}, nil
}

func newTestAdminService(store *fakeSeedStore) *AdminService {
	svc := NewAdminService(store, zap.NewNop())
	svc.dataset = testDataset
	return svc
}

func TestInitializeLoadsSeedOnce(t *testing.T) {
	store := &fakeSeedStore{}
	svc := newTestAdminService(store)

	counts, err := svc.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Departments)
	assert.Equal(t, int64(2), counts.Readings, "unknown-department reading skipped")
	assert.Equal(t, int64(2), counts.Suggestions)

	_, err = svc.Initialize(context.Background())
	assert.ErrorIs(t, err, repository.ErrDataAlreadyExists)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.Departments, "second initialize left counts unchanged")
}

func TestResetAndInitializeRestoresSeedCounts(t *testing.T) {
	store := &fakeSeedStore{departments: 9, readings: 40, suggestions: 7}
	svc := newTestAdminService(store)

	counts, err := svc.ResetAndInitialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Departments)
	assert.Equal(t, int64(2), counts.Readings)
	assert.Equal(t, int64(2), counts.Suggestions)
}

func TestStatusReportsHasData(t *testing.T) {
	svc := newTestAdminService(&fakeSeedStore{})

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.HasData)
	assert.Equal(t, int64(0), status.EnergyData)

	_, err = svc.Initialize(context.Background())
	require.NoError(t, err)

	status, err = svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.HasData)
}
