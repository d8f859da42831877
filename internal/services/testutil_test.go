package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aquagest/internal/models/db_models"
)

// newTestDB opens an isolated in-memory sqlite database. A single open
// connection keeps every query on the same :memory: instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&db_models.Customer{},
		&db_models.Product{},
		&db_models.SubscriptionPlan{},
		&db_models.PlanProduct{},
		&db_models.Subscription{},
		&db_models.SubscriptionCycle{},
		&db_models.DeliverySchedule{},
		&db_models.Comodato{},
	))

	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

// seedPlan creates a plan with a returnable dispenser (qty 1), a returnable
// demijohn (qty 2) and a non-returnable water pack.
func seedPlan(t *testing.T, db *gorm.DB, code string, priceMinor int64, mode db_models.PaymentMode, dueDay *int) (db_models.SubscriptionPlan, []db_models.Product) {
	t.Helper()

	dispenser := db_models.Product{Name: "Dispenser frio/calor", Brand: "Ushuaia", IsReturnable: true}
	demijohn := db_models.Product{Name: "Bidon 20L", IsReturnable: true}
	pack := db_models.Product{Name: "Pack botellas 500ml"}
	require.NoError(t, db.Create(&dispenser).Error)
	require.NoError(t, db.Create(&demijohn).Error)
	require.NoError(t, db.Create(&pack).Error)

	plan := db_models.SubscriptionPlan{
		Code:          code,
		Name:          "Plan " + code,
		PriceMinor:    priceMinor,
		Currency:      "ARS",
		PaymentMode:   mode,
		PaymentDueDay: dueDay,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&plan).Error)

	for _, pp := range []db_models.PlanProduct{
		{PlanID: plan.ID, ProductID: dispenser.ID, Quantity: 1},
		{PlanID: plan.ID, ProductID: demijohn.ID, Quantity: 2},
		{PlanID: plan.ID, ProductID: pack.ID, Quantity: 4},
	} {
		require.NoError(t, db.Create(&pp).Error)
	}

	return plan, []db_models.Product{dispenser, demijohn, pack}
}

func seedSubscription(t *testing.T, db *gorm.DB, plan db_models.SubscriptionPlan, ownsContainers bool) (db_models.Customer, db_models.Subscription) {
	t.Helper()

	customer := db_models.Customer{
		Name:                     "Cliente de prueba",
		OwnsReturnableContainers: ownsContainers,
	}
	require.NoError(t, db.Create(&customer).Error)

	sub := db_models.Subscription{
		CustomerID: customer.ID,
		PlanID:     plan.ID,
		Status:     db_models.SubStatusActive,
		StartDate:  date(2026, time.January, 1),
	}
	require.NoError(t, db.Create(&sub).Error)

	return customer, sub
}

func seedCycle(t *testing.T, db *gorm.DB, sub db_models.Subscription, start, end time.Time) db_models.SubscriptionCycle {
	t.Helper()

	cycle := db_models.SubscriptionCycle{
		SubscriptionID:   sub.ID,
		CycleStart:       start,
		CycleEnd:         end,
		TotalAmountMinor: 100,
		PaymentStatus:    db_models.PayStatusPending,
		PaymentDueDate:   start,
	}
	require.NoError(t, db.Create(&cycle).Error)
	return cycle
}
