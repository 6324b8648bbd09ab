package services

import (
	"context"
	"log"

	"edugo/internal/models/db_models"
	"edugo/internal/models/request_models"
	"edugo/internal/models/response_models"
	"edugo/internal/repositories"
	"edugo/pkg/utils"
)

type CatalogServiceInterface interface {
	ListPrograms(criteria request_models.FilterCriteria, ctx context.Context) ([]response_models.Program, error)
	GetProgramByID(id string, ctx context.Context) (response_models.Program, error)
}

type CatalogService struct {
	programRepository repositories.ProgramRepository
}

func NewCatalogService(programRepository repositories.ProgramRepository) CatalogServiceInterface {
	return &CatalogService{
		programRepository: programRepository,
	}
}

// ListPrograms fetches the catalog and applies the filter. A fetch failure
// degrades to an empty list so the page still renders.
func (s *CatalogService) ListPrograms(criteria request_models.FilterCriteria, ctx context.Context) ([]response_models.Program, error) {
	catalog, err := s.programRepository.List(ctx)
	if err != nil {
		log.Printf("Error fetching catalog: %v", err)
		return []response_models.Program{}, nil
	}

	filtered := FilterPrograms(catalog, criteria)

	responses := make([]response_models.Program, 0, len(filtered))
	for _, program := range filtered {
		responses = append(responses, toProgramResponse(program))
	}
	return responses, nil
}

func (s *CatalogService) GetProgramByID(id string, ctx context.Context) (response_models.Program, error) {
	program, err := s.programRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching program: %v", err)
		return response_models.Program{}, utils.ErrDatabaseError
	}

	if program == nil {
		return response_models.Program{}, utils.ErrProgramNotFound
	}

	return toProgramResponse(*program), nil
}

func toProgramResponse(p db_models.Program) response_models.Program {
	return response_models.Program{
		ID:           p.ID.String(),
		Title:        p.Title,
		Country:      p.Country,
		City:         p.City,
		AgeRange:     p.AgeRange,
		Duration:     p.Duration,
		DisplayPrice: p.DisplayPrice,
		Category:     p.Category,
		Language:     p.Language,
		Description:  p.Description,
		Tags:         p.Tags,
		Highlights:   p.Highlights,
		Images:       p.Images,
	}
}
