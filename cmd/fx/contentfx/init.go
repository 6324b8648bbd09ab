package contentfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"edugo/internal/api/controllers"
	"edugo/internal/repositories"
	"edugo/internal/services"
)

var Module = fx.Provide(
	provideContentRepo, provideContentService, provideContentController,
	provideArticleRepo, provideArticleService, provideArticlesController)

func provideContentRepo(db *gorm.DB) repositories.ContentRepository {
	if db == nil {
		return repositories.NewMemoryContentRepository(
			repositories.SeedTeamMembers(),
			repositories.SeedTestimonials(),
			repositories.SeedFAQs(),
			repositories.SeedNews(),
		)
	}
	return repositories.NewContentRepository(db)
}

func provideContentService(contentRepo repositories.ContentRepository) services.ContentServiceInterface {
	return services.NewContentService(contentRepo)
}

func provideContentController(contentService services.ContentServiceInterface) *controllers.ContentController {
	return controllers.NewContentController(contentService)
}

func provideArticleRepo(db *gorm.DB) repositories.ArticleRepository {
	if db == nil {
		return repositories.NewMemoryArticleRepository(repositories.SeedArticles())
	}
	return repositories.NewArticleRepository(db)
}

func provideArticleService(articleRepo repositories.ArticleRepository) services.ArticleServiceInterface {
	return services.NewArticleService(articleRepo)
}

func provideArticlesController(articleService services.ArticleServiceInterface) *controllers.ArticlesController {
	return controllers.NewArticlesController(articleService)
}
