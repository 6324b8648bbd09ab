package catalogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"edugo/internal/api/controllers"
	"edugo/internal/repositories"
	"edugo/internal/services"
)

var Module = fx.Provide(
	provideProgramRepo, provideCatalogService, provideProgramsController)

func provideProgramRepo(db *gorm.DB) repositories.ProgramRepository {
	if db == nil {
		return repositories.NewMemoryProgramRepository(repositories.SeedPrograms())
	}
	return repositories.NewProgramRepository(db)
}

func provideCatalogService(programRepo repositories.ProgramRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(programRepo)
}

func provideProgramsController(catalogService services.CatalogServiceInterface) *controllers.ProgramsController {
	return controllers.NewProgramsController(catalogService)
}
