package services

import (
	"context"
	"log"

	"edugo/internal/models/db_models"
	"edugo/internal/models/response_models"
	"edugo/internal/repositories"
	"edugo/pkg/utils"
)

type ArticleServiceInterface interface {
	ListArticles(category string, ctx context.Context) ([]response_models.ArticleResponse, error)
	GetArticleByID(id string, ctx context.Context) (response_models.ArticleResponse, error)
}

type ArticleService struct {
	articleRepository repositories.ArticleRepository
}

func NewArticleService(articleRepository repositories.ArticleRepository) ArticleServiceInterface {
	return &ArticleService{
		articleRepository: articleRepository,
	}
}

// ListArticles degrades to an empty list on fetch failure. List entries
// omit the body; the detail endpoint carries it.
func (s *ArticleService) ListArticles(category string, ctx context.Context) ([]response_models.ArticleResponse, error) {
	articles, err := s.articleRepository.List(ctx, category)
	if err != nil {
		log.Printf("Error fetching articles: %v", err)
		return []response_models.ArticleResponse{}, nil
	}

	responses := make([]response_models.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		resp := toArticleResponse(a)
		resp.Body = ""
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *ArticleService) GetArticleByID(id string, ctx context.Context) (response_models.ArticleResponse, error) {
	article, err := s.articleRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching article: %v", err)
		return response_models.ArticleResponse{}, utils.ErrDatabaseError
	}

	if article == nil {
		return response_models.ArticleResponse{}, utils.ErrArticleNotFound
	}

	return toArticleResponse(*article), nil
}

func toArticleResponse(a db_models.Article) response_models.ArticleResponse {
	return response_models.ArticleResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Category:    a.Category,
		Body:        a.Body,
		CoverURL:    a.CoverURL,
		Tags:        a.Tags,
		PublishedAt: a.PublishedAt,
	}
}
