package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"simconnect/internal/api/controllers"
	"simconnect/internal/repositories"
	"simconnect/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo,
	provideCatalogService,
	controllers.NewCountriesController,
	controllers.NewOperatorsController,
	controllers.NewPlansController,
)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideCatalogService(catalogRepo repositories.CatalogRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(catalogRepo)
}
