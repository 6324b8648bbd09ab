package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"edugo/internal/models/db_models"
)

type ArticleRepository interface {
	// List returns published articles, optionally narrowed to one category.
	List(ctx context.Context, category string) ([]db_models.Article, error)
	// GetByID returns (nil, nil) when no article matches.
	GetByID(ctx context.Context, id string) (*db_models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) List(ctx context.Context, category string) ([]db_models.Article, error) {
	var articles []db_models.Article
	query := r.db.WithContext(ctx).Order("published_at desc")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*db_models.Article, error) {
	var article db_models.Article
	err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// memoryArticleRepository is the static-source twin of articleRepository.
type memoryArticleRepository struct {
	articles []db_models.Article
}

func NewMemoryArticleRepository(articles []db_models.Article) ArticleRepository {
	return &memoryArticleRepository{articles: articles}
}

func (r *memoryArticleRepository) List(ctx context.Context, category string) ([]db_models.Article, error) {
	out := make([]db_models.Article, 0, len(r.articles))
	for _, a := range r.articles {
		if category == "" || a.Category == category {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryArticleRepository) GetByID(ctx context.Context, id string) (*db_models.Article, error) {
	for i := range r.articles {
		if r.articles[i].ID.String() == id {
			article := r.articles[i]
			return &article, nil
		}
	}
	return nil, nil
}
