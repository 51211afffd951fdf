package estimator_fx

import (
	"go.uber.org/fx"

	"simconnect/internal/api/controllers"
	"simconnect/internal/repositories"
	"simconnect/internal/services"
)

var Module = fx.Provide(
	provideEstimatorService,
	controllers.NewEstimatorController,
)

func provideEstimatorService(catalogRepo repositories.CatalogRepository) services.EstimatorServiceInterface {
	return services.NewEstimatorService(catalogRepo)
}
