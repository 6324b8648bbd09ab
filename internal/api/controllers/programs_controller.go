package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edugo/internal/models/request_models"
	"edugo/internal/services"
	"edugo/pkg/utils"
)

type ProgramsController struct {
	catalogService services.CatalogServiceInterface
}

func NewProgramsController(catalogService services.CatalogServiceInterface) *ProgramsController {
	return &ProgramsController{
		catalogService: catalogService,
	}
}

// ListPrograms godoc
// Filter selections arrive as query params; absent params apply no
// constraint, so a bare GET returns the full catalog.
func (p *ProgramsController) ListPrograms(c *gin.Context) {
	var criteria request_models.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	programs, err := p.catalogService.ListPrograms(criteria, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, programs, "Programs fetched successfully")
}

func (p *ProgramsController) GetProgramByID(c *gin.Context) {
	programID := c.Param("id")
	if programID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Program ID is required")
		return
	}

	program, err := p.catalogService.GetProgramByID(programID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, program, "Program fetched successfully")
}
