package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edugo/internal/models/db_models"
	"edugo/internal/repositories"
)

type failingContentRepo struct{}

func (failingContentRepo) ListTeamMembers(ctx context.Context) ([]db_models.TeamMember, error) {
	return nil, errors.New("connection refused")
}
func (failingContentRepo) ListTestimonials(ctx context.Context) ([]db_models.Testimonial, error) {
	return nil, errors.New("connection refused")
}
func (failingContentRepo) ListFAQs(ctx context.Context) ([]db_models.FAQ, error) {
	return nil, errors.New("connection refused")
}
func (failingContentRepo) ListNews(ctx context.Context) ([]db_models.NewsItem, error) {
	return nil, errors.New("connection refused")
}

// Reference-data fetch failures degrade to empty lists so the page still
// renders; they never surface as errors.
func TestContentServiceDegradesToEmptyOnFailure(t *testing.T) {
	s := NewContentService(failingContentRepo{})
	ctx := context.Background()

	team, err := s.GetTeamMembers(ctx)
	require.NoError(t, err)
	assert.Empty(t, team)

	testimonials, err := s.GetTestimonials(ctx)
	require.NoError(t, err)
	assert.Empty(t, testimonials)

	faqs, err := s.GetFAQs(ctx)
	require.NoError(t, err)
	assert.Empty(t, faqs)

	news, err := s.GetNews(ctx)
	require.NoError(t, err)
	assert.Empty(t, news)
}

func TestContentServiceMapsSeedContent(t *testing.T) {
	repo := repositories.NewMemoryContentRepository(
		repositories.SeedTeamMembers(),
		repositories.SeedTestimonials(),
		repositories.SeedFAQs(),
		repositories.SeedNews(),
	)
	s := NewContentService(repo)
	ctx := context.Background()

	team, err := s.GetTeamMembers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, team)
	assert.NotEmpty(t, team[0].ID)
	assert.NotEmpty(t, team[0].Name)

	faqs, err := s.GetFAQs(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, faqs)
}
