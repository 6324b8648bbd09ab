package controllers

import (
	"github.com/gin-gonic/gin"

	"edugo/internal/services"
	"edugo/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

func (ct *ContentController) ListTeamMembers(c *gin.Context) {
	members, err := ct.contentService.GetTeamMembers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, members, "Team fetched successfully")
}

func (ct *ContentController) ListTestimonials(c *gin.Context) {
	testimonials, err := ct.contentService.GetTestimonials(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, testimonials, "Testimonials fetched successfully")
}

func (ct *ContentController) ListFAQs(c *gin.Context) {
	faqs, err := ct.contentService.GetFAQs(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, faqs, "FAQs fetched successfully")
}

func (ct *ContentController) ListNews(c *gin.Context) {
	news, err := ct.contentService.GetNews(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, news, "News fetched successfully")
}
