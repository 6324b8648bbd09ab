package services

import (
	"context"
	"log"

	"edugo/internal/models/response_models"
	"edugo/internal/repositories"
)

type ContentServiceInterface interface {
	GetTeamMembers(ctx context.Context) ([]response_models.TeamMemberResponse, error)
	GetTestimonials(ctx context.Context) ([]response_models.TestimonialResponse, error)
	GetFAQs(ctx context.Context) ([]response_models.FAQResponse, error)
	GetNews(ctx context.Context) ([]response_models.NewsItemResponse, error)
}

type ContentService struct {
	contentRepository repositories.ContentRepository
}

func NewContentService(contentRepository repositories.ContentRepository) ContentServiceInterface {
	return &ContentService{
		contentRepository: contentRepository,
	}
}

// Fetch failures for reference content degrade to empty lists so the page
// still renders; only the log records the cause.

func (s *ContentService) GetTeamMembers(ctx context.Context) ([]response_models.TeamMemberResponse, error) {
	members, err := s.contentRepository.ListTeamMembers(ctx)
	if err != nil {
		log.Printf("Error fetching team members: %v", err)
		return []response_models.TeamMemberResponse{}, nil
	}

	responses := make([]response_models.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, response_models.TeamMemberResponse{
			ID:       m.ID.String(),
			Name:     m.Name,
			Role:     m.Role,
			Bio:      m.Bio,
			PhotoURL: m.PhotoURL,
		})
	}
	return responses, nil
}

func (s *ContentService) GetTestimonials(ctx context.Context) ([]response_models.TestimonialResponse, error) {
	testimonials, err := s.contentRepository.ListTestimonials(ctx)
	if err != nil {
		log.Printf("Error fetching testimonials: %v", err)
		return []response_models.TestimonialResponse{}, nil
	}

	responses := make([]response_models.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		responses = append(responses, response_models.TestimonialResponse{
			ID:       t.ID.String(),
			Author:   t.Author,
			Program:  t.Program,
			Quote:    t.Quote,
			PhotoURL: t.PhotoURL,
		})
	}
	return responses, nil
}

func (s *ContentService) GetFAQs(ctx context.Context) ([]response_models.FAQResponse, error) {
	faqs, err := s.contentRepository.ListFAQs(ctx)
	if err != nil {
		log.Printf("Error fetching FAQs: %v", err)
		return []response_models.FAQResponse{}, nil
	}

	responses := make([]response_models.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		responses = append(responses, response_models.FAQResponse{
			ID:       f.ID.String(),
			Question: f.Question,
			Answer:   f.Answer,
		})
	}
	return responses, nil
}

func (s *ContentService) GetNews(ctx context.Context) ([]response_models.NewsItemResponse, error) {
	items, err := s.contentRepository.ListNews(ctx)
	if err != nil {
		log.Printf("Error fetching news: %v", err)
		return []response_models.NewsItemResponse{}, nil
	}

	responses := make([]response_models.NewsItemResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, response_models.NewsItemResponse{
			ID:          n.ID.String(),
			Title:       n.Title,
			Summary:     n.Summary,
			ImageURL:    n.ImageURL,
			PublishedAt: n.PublishedAt,
		})
	}
	return responses, nil
}
