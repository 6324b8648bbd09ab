package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edugo/internal/repositories"
	"edugo/pkg/utils"
)

func TestArticleServiceListAndCategoryFilter(t *testing.T) {
	s := NewArticleService(repositories.NewMemoryArticleRepository(repositories.SeedArticles()))
	ctx := context.Background()

	all, err := s.ListArticles("", ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Empty(t, all[0].Body, "list entries omit the body")

	guides, err := s.ListArticles("guides", ctx)
	require.NoError(t, err)
	require.Len(t, guides, 2)
	for _, a := range guides {
		assert.Equal(t, "guides", a.Category)
	}
}

func TestArticleServiceGetByID(t *testing.T) {
	s := NewArticleService(repositories.NewMemoryArticleRepository(repositories.SeedArticles()))
	ctx := context.Background()

	all, err := s.ListArticles("", ctx)
	require.NoError(t, err)

	article, err := s.GetArticleByID(all[0].ID, ctx)
	require.NoError(t, err)
	assert.Equal(t, all[0].Title, article.Title)
	assert.NotEmpty(t, article.Body)
}

func TestArticleServiceNotFound(t *testing.T) {
	s := NewArticleService(repositories.NewMemoryArticleRepository(repositories.SeedArticles()))

	_, err := s.GetArticleByID("b2f9a9a0-0000-0000-0000-000000000000", context.Background())
	assert.ErrorIs(t, err, utils.ErrArticleNotFound)
}
