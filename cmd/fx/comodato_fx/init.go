package comodato_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"aquagest/internal/repositories"
	"aquagest/internal/services"
)

var Module = fx.Provide(provideComodatoRepo, provideComodatoService)

func provideComodatoRepo(db *gorm.DB) repositories.IComodatoRepository {
	return repositories.NewComodatoRepository(db)
}

func provideComodatoService(
	subscriptionRepo repositories.ISubscriptionRepository,
	cycleRepo repositories.ICycleRepository,
	comodatoRepo repositories.IComodatoRepository,
) services.ComodatoServiceInterface {
	return services.NewComodatoService(subscriptionRepo, cycleRepo, comodatoRepo)
}
