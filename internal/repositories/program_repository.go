package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"edugo/internal/models/db_models"
)

type ProgramRepository interface {
	// List returns the full catalog in stable order.
	List(ctx context.Context) ([]db_models.Program, error)
	// GetByID returns (nil, nil) when no program matches.
	GetByID(ctx context.Context, id string) (*db_models.Program, error)
}

type programRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) List(ctx context.Context) ([]db_models.Program, error) {
	var programs []db_models.Program
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&programs).Error
	if err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) GetByID(ctx context.Context, id string) (*db_models.Program, error) {
	var program db_models.Program
	err := r.db.WithContext(ctx).First(&program, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}
