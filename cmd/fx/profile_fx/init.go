package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"simconnect/internal/api/controllers"
	"simconnect/internal/repositories"
	"simconnect/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo,
	provideProfileService,
	controllers.NewProfileController,
)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(profileRepo repositories.ProfileRepository) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo)
}
