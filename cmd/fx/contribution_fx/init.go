package contribution_fx

import (
	"go.uber.org/fx"

	"simconnect/internal/repositories"
	"simconnect/internal/services"
)

var Module = fx.Provide(
	provideContributionService,
)

func provideContributionService(
	catalogRepo repositories.CatalogRepository,
	profileService services.ProfileServiceInterface,
) services.ContributionServiceInterface {
	return services.NewContributionService(catalogRepo, profileService)
}
