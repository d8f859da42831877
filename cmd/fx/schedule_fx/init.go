package schedule_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"aquagest/internal/repositories"
	"aquagest/internal/services"
)

var Module = fx.Provide(provideScheduleRepo, provideScheduleService)

func provideScheduleRepo(db *gorm.DB) repositories.IScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideScheduleService(
	scheduleRepo repositories.IScheduleRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(scheduleRepo, subscriptionRepo)
}
