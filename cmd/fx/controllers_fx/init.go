package controllers_fx

import (
	"go.uber.org/fx"

	"aquagest/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCycleController),
	fx.Provide(controllers.NewScheduleController),
	fx.Provide(controllers.NewComodatoController))
