package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"aquagest/cmd/fx/billing_fx"
	"aquagest/cmd/fx/comodato_fx"
	"aquagest/cmd/fx/controllers_fx"
	"aquagest/cmd/fx/db_fx"
	"aquagest/cmd/fx/schedule_fx"
	"aquagest/cmd/fx/subscription_fx"
	"aquagest/internal/api/controllers"
	"aquagest/internal/infra"
	"aquagest/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	app := fx.New(
		db_fx.Module,
		subscription_fx.Module,
		billing_fx.Module,
		schedule_fx.Module,
		comodato_fx.Module,
		controllers_fx.Module,

		fx.Invoke(Migrate),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	if err := infra.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.WithField("port", port).Info("starting HTTP server")
				if err := engine.Run(":" + port); err != nil {
					log.WithError(err).Fatal("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cycleController *controllers.CycleController,
	scheduleController *controllers.ScheduleController,
	comodatoController *controllers.ComodatoController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cycleController, scheduleController, comodatoController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cycleController *controllers.CycleController,
	scheduleController *controllers.ScheduleController,
	comodatoController *controllers.ComodatoController) {

	cycles := r.Group("/cycles")
	cycles.POST("", cycleController.CreateCycle)

	subscriptions := r.Group("/subscriptions")
	subscriptions.GET("/:subscriptionId/cycles", cycleController.GetCyclesBySubscription)
	subscriptions.GET("/:subscriptionId/schedules", scheduleController.GetSchedulesBySubscription)

	schedules := r.Group("/schedules")
	schedules.POST("", scheduleController.CreateSchedule)
	schedules.PUT("/:scheduleId", scheduleController.UpdateSchedule)

	comodatos := r.Group("/comodatos")
	comodatos.POST("/first-cycle", comodatoController.ProcessFirstCycle)
	comodatos.POST("/validate", comodatoController.ValidateExisting)
	comodatos.POST("/:comodatoId/return", comodatoController.ReturnComodato)

	customers := r.Group("/customers")
	customers.GET("/:customerId/comodatos", comodatoController.GetActiveByCustomer)
}
