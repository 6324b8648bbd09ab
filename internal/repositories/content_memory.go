package repositories

import (
	"context"

	"edugo/internal/models/db_models"
)

type memoryContentRepository struct {
	team         []db_models.TeamMember
	testimonials []db_models.Testimonial
	faqs         []db_models.FAQ
	news         []db_models.NewsItem
}

func NewMemoryContentRepository(
	team []db_models.TeamMember,
	testimonials []db_models.Testimonial,
	faqs []db_models.FAQ,
	news []db_models.NewsItem,
) ContentRepository {
	return &memoryContentRepository{
		team:         team,
		testimonials: testimonials,
		faqs:         faqs,
		news:         news,
	}
}

func (r *memoryContentRepository) ListTeamMembers(ctx context.Context) ([]db_models.TeamMember, error) {
	out := make([]db_models.TeamMember, len(r.team))
	copy(out, r.team)
	return out, nil
}

func (r *memoryContentRepository) ListTestimonials(ctx context.Context) ([]db_models.Testimonial, error) {
	out := make([]db_models.Testimonial, len(r.testimonials))
	copy(out, r.testimonials)
	return out, nil
}

func (r *memoryContentRepository) ListFAQs(ctx context.Context) ([]db_models.FAQ, error) {
	out := make([]db_models.FAQ, len(r.faqs))
	copy(out, r.faqs)
	return out, nil
}

func (r *memoryContentRepository) ListNews(ctx context.Context) ([]db_models.NewsItem, error) {
	out := make([]db_models.NewsItem, len(r.news))
	copy(out, r.news)
	return out, nil
}
