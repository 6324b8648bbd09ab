package repositories

import (
	"context"

	"edugo/internal/models/db_models"
)

// memoryProgramRepository serves a fixed catalog from memory. It backs the
// service when no database is configured and doubles as the test
// implementation of ProgramRepository.
type memoryProgramRepository struct {
	programs []db_models.Program
}

func NewMemoryProgramRepository(programs []db_models.Program) ProgramRepository {
	return &memoryProgramRepository{programs: programs}
}

func (r *memoryProgramRepository) List(ctx context.Context) ([]db_models.Program, error) {
	out := make([]db_models.Program, len(r.programs))
	copy(out, r.programs)
	return out, nil
}

func (r *memoryProgramRepository) GetByID(ctx context.Context, id string) (*db_models.Program, error) {
	for i := range r.programs {
		if r.programs[i].ID.String() == id {
			program := r.programs[i]
			return &program, nil
		}
	}
	return nil, nil
}
