package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edugo/internal/services"
	"edugo/pkg/utils"
)

type ArticlesController struct {
	articleService services.ArticleServiceInterface
}

func NewArticlesController(articleService services.ArticleServiceInterface) *ArticlesController {
	return &ArticlesController{
		articleService: articleService,
	}
}

func (a *ArticlesController) ListArticles(c *gin.Context) {
	category := c.Query("category")

	articles, err := a.articleService.ListArticles(category, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, articles, "Articles fetched successfully")
}

func (a *ArticlesController) GetArticleByID(c *gin.Context) {
	articleID := c.Param("id")
	if articleID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Article ID is required")
		return
	}

	article, err := a.articleService.GetArticleByID(articleID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, article, "Article fetched successfully")
}
