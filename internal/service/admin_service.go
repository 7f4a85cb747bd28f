package service

import (
	"context"

	"go.uber.org/zap"

	"ecometer/internal/repository"
	"ecometer/internal/seed"
)

// SeedLoader loads and counts seed data.
type SeedLoader interface {
	Load(ctx context.Context, data seed.Data, reset bool) (repository.SeedCounts, error)
	Counts(ctx context.Context) (repository.SeedCounts, error)
}

// AdminService seeds the store and reports its state.
type AdminService struct {
	store   SeedLoader
	logger  *zap.Logger
	dataset func() (seed.Data, error)
}

// NewAdminService returns service instance.
func NewAdminService(store SeedLoader, logger *zap.Logger) *AdminService {
	return &AdminService{
		store:   store,
		logger:  logger,
		dataset: seed.Default,
	}
}

// Initialize loads the seed dataset into an empty store. Returns
// repository.ErrDataAlreadyExists when any department exists; no data is
// touched in that case.
func (s *AdminService) Initialize(ctx context.Context) (repository.SeedCounts, error) {
	return s.load(ctx, false)
}

// ResetAndInitialize wipes all readings, suggestions and departments, then
// loads the seed dataset. The wipe and the reload are one transaction.
func (s *AdminService) ResetAndInitialize(ctx context.Context) (repository.SeedCounts, error) {
	return s.load(ctx, true)
}

func (s *AdminService) load(ctx context.Context, reset bool) (repository.SeedCounts, error) {
	data, err := s.dataset()
	if err != nil {
		return repository.SeedCounts{}, err
	}

	counts, err := s.store.Load(ctx, data, reset)
	if err != nil {
		return repository.SeedCounts{}, err
	}

	if skipped := int64(len(data.Readings)) - counts.Readings; skipped > 0 {
		s.logger.Debug("seed readings referencing unknown departments skipped",
			zap.Int64("skipped", skipped))
	}
	s.logger.Info("seed data loaded",
		zap.Bool("reset", reset),
		zap.Int64("departments", counts.Departments),
		zap.Int64("energy_readings", counts.Readings),
		zap.Int64("suggestions", counts.Suggestions),
	)
	return counts, nil
}

// DataStatus reports stored record counts.
type DataStatus struct {
	Departments   int64 `json:"departments"`
	EnergyData    int64 `json:"energyData"`
	AiSuggestions int64 `json:"aiSuggestions"`
	HasData       bool  `json:"hasData"`
}

// Status returns current record counts and whether any seed data exists.
func (s *AdminService) Status(ctx context.Context) (DataStatus, error) {
	counts, err := s.store.Counts(ctx)
	if err != nil {
		return DataStatus{}, err
	}
	return DataStatus{
		Departments:   counts.Departments,
		EnergyData:    counts.Readings,
		AiSuggestions: counts.Suggestions,
		HasData:       counts.Departments > 0,
	}, nil
}
