package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"aquagest/internal/repositories"
)

var Module = fx.Provide(provideSubscriptionRepo)

func provideSubscriptionRepo(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}
