package preference_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"triptailor/internal/api/controllers"
	"triptailor/internal/repositories"
	"triptailor/internal/services"
)

var Module = fx.Provide(
	ProvidePreferenceRepository,
	ProvidePreferenceService,
	ProvidePreferenceController)

func ProvidePreferenceRepository(db *gorm.DB) repositories.PreferenceRepositoryInterface {
	return repositories.NewPreferenceRepository(db)
}

func ProvidePreferenceService(
	preferenceRepo repositories.PreferenceRepositoryInterface,
) services.PreferenceServiceInterface {
	return services.NewPreferenceService(preferenceRepo)
}

func ProvidePreferenceController(
	preferenceService services.PreferenceServiceInterface,
) *controllers.PreferenceController {
	return controllers.NewPreferenceController(preferenceService)
}
