package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edusuite/attendance-api/internal/dto"
	"github.com/edusuite/attendance-api/internal/models"
	"github.com/edusuite/attendance-api/internal/repository"
)

// ReferenceService serves the lookup collections the filter UI draws its
// allowed values from.
type ReferenceService interface {
	Campuses(ctx context.Context) ([]models.Campus, error)
	Departments(ctx context.Context) ([]models.Department, error)
	LevelOptions(ctx context.Context) ([]dto.LevelOption, error)
	Levels(ctx context.Context) ([]models.Level, error)
}

type referenceService struct {
	repo   repository.ReferenceRepository
	logger zerolog.Logger
}

// NewReferenceService constructs the reference-data service.
func NewReferenceService(repo repository.ReferenceRepository, logger zerolog.Logger) ReferenceService {
	return &referenceService{
		repo:   repo,
		logger: logger.With().Str("component", "reference_service").Logger(),
	}
}

func (s *referenceService) Campuses(ctx context.Context) ([]models.Campus, error) {
	return s.repo.ListCampuses(ctx)
}

func (s *referenceService) Departments(ctx context.Context) ([]models.Department, error) {
	return s.repo.ListDepartments(ctx)
}

// LevelOptions returns levels in the label-only shape the filter dropdowns
// expect.
func (s *referenceService) LevelOptions(ctx context.Context) ([]dto.LevelOption, error) {
	levels, err := s.repo.ListLevels(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]dto.LevelOption, 0, len(levels))
	for _, level := range levels {
		options = append(options, dto.LevelOption{Level: level.Level})
	}

	return options, nil
}

func (s *referenceService) Levels(ctx context.Context) ([]models.Level, error) {
	return s.repo.ListLevels(ctx)
}
