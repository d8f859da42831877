package infra

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aquagest/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("error connecting to database")
	}

	return connectionPool
}

// AutoMigrate keeps the schema in sync with the models, including the
// unique/composite indexes that backstop schedule and comodato races.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Customer{},
		&db_models.Product{},
		&db_models.SubscriptionPlan{},
		&db_models.PlanProduct{},
		&db_models.Subscription{},
		&db_models.SubscriptionCycle{},
		&db_models.DeliverySchedule{},
		&db_models.Comodato{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Error("error closing database connection")
	}
}
