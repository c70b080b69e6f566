package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/edusuite/attendance-api/internal/models"
)

// ReferenceRepository serves the lookup tables backing filter dropdowns.
type ReferenceRepository interface {
	ListCampuses(ctx context.Context) ([]models.Campus, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
	ListLevels(ctx context.Context) ([]models.Level, error)
}

type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository constructs a reference-data repository.
func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) ListCampuses(ctx context.Context) ([]models.Campus, error) {
	campuses := make([]models.Campus, 0)
	if err := r.db.WithContext(ctx).Find(&campuses).Error; err != nil {
		return nil, err
	}

	return campuses, nil
}

func (r *referenceRepository) ListDepartments(ctx context.Context) ([]models.Department, error) {
	departments := make([]models.Department, 0)
	if err := r.db.WithContext(ctx).Find(&departments).Error; err != nil {
		return nil, err
	}

	return departments, nil
}

func (r *referenceRepository) ListLevels(ctx context.Context) ([]models.Level, error) {
	levels := make([]models.Level, 0)
	if err := r.db.WithContext(ctx).Find(&levels).Error; err != nil {
		return nil, err
	}

	return levels, nil
}
