package repositories

import (
	"context"

	"gorm.io/gorm"

	"edugo/internal/models/db_models"
)

// ContentRepository serves the reference content rendered on the static
// pages: team bios, testimonials, FAQs and news. The lists are mutually
// independent and every fetch fully replaces the caller's local copy.
type ContentRepository interface {
	ListTeamMembers(ctx context.Context) ([]db_models.TeamMember, error)
	ListTestimonials(ctx context.Context) ([]db_models.Testimonial, error)
	ListFAQs(ctx context.Context) ([]db_models.FAQ, error)
	ListNews(ctx context.Context) ([]db_models.NewsItem, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) ListTeamMembers(ctx context.Context) ([]db_models.TeamMember, error) {
	var members []db_models.TeamMember
	err := r.db.WithContext(ctx).Order("display_order").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *contentRepository) ListTestimonials(ctx context.Context) ([]db_models.Testimonial, error) {
	var testimonials []db_models.Testimonial
	err := r.db.WithContext(ctx).Order("created_at").Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *contentRepository) ListFAQs(ctx context.Context) ([]db_models.FAQ, error) {
	var faqs []db_models.FAQ
	err := r.db.WithContext(ctx).Order("display_order").Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *contentRepository) ListNews(ctx context.Context) ([]db_models.NewsItem, error) {
	var items []db_models.NewsItem
	err := r.db.WithContext(ctx).Order("published_at desc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
