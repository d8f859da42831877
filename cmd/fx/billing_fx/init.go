package billing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"aquagest/internal/repositories"
	"aquagest/internal/services"
)

var Module = fx.Provide(provideCycleRepo, provideBillingService)

func provideCycleRepo(db *gorm.DB) repositories.ICycleRepository {
	return repositories.NewCycleRepository(db)
}

func provideBillingService(
	subscriptionRepo repositories.ISubscriptionRepository,
	cycleRepo repositories.ICycleRepository,
) services.BillingServiceInterface {
	return services.NewBillingService(subscriptionRepo, cycleRepo)
}
