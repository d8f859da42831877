package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aquagest/internal/models/db_models"
	"aquagest/internal/repositories"
	"aquagest/pkg/utils"
)

func newComodatoService(db *gorm.DB) ComodatoServiceInterface {
	return NewComodatoService(
		repositories.NewSubscriptionRepository(db),
		repositories.NewCycleRepository(db),
		repositories.NewComodatoRepository(db),
	)
}

func TestProcessFirstCycle_IssuesReturnableProducts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	plan, products := seedPlan(t, db, "hogar", 100, db_models.PaymentModeAdvance, nil)
	customer, sub := seedSubscription(t, db, plan, false)
	seedCycle(t, db, sub, date(2026, time.February, 11), date(2026, time.March, 8))

	svc := newComodatoService(db)

	result, err := svc.ProcessFirstCycleComodato(ctx, sub.ID, date(2026, time.February, 12))
	require.NoError(t, err)

	assert.True(t, result.IsFirstCycle)
	assert.Equal(t, customer.ID, result.CustomerID)
	assert.Equal(t, sub.ID, result.SubscriptionID)
	require.Len(t, result.ComodatosCreated, 2, "only the two returnable products are issued")
	assert.Empty(t, result.Failed)
	assert.Equal(t, 2, result.TotalComodatos)

	byProduct := map[uuid.UUID]int{}
	for _, c := range result.ComodatosCreated {
		byProduct[c.ProductID] = c.Quantity
		assert.Equal(t, "2026-02-12", c.DeliveryDate)
		assert.Equal(t, "2027-02-12", c.ExpectedReturnDate, "expected return is exactly one calendar year out")
	}
	assert.Equal(t, 1, byProduct[products[0].ID]) // dispenser
	assert.Equal(t, 2, byProduct[products[1].ID]) // demijohn
	assert.NotContains(t, byProduct, products[2].ID, "consumables are never loaned")

	var stored []db_models.Comodato
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 2)
	for _, c := range stored {
		assert.Equal(t, db_models.ComodatoStatusActive, c.Status)
		assert.True(t, c.IsActive)
		assert.Zero(t, c.DepositMinor, "first-cycle loans carry no deposit")
		assert.Zero(t, c.MonthlyFeeMinor, "first-cycle loans carry no monthly fee")
		require.NotNil(t, c.SubscriptionID)
		assert.Equal(t, sub.ID, *c.SubscriptionID)
		assert.Contains(t, c.Notes, sub.ID.String(), "notes record the originating subscription")
	}
}

func TestProcessFirstCycle_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	plan, _ := seedPlan(t, db, "hogar", 100, db_models.PaymentModeAdvance, nil)
	_, sub := seedSubscription(t, db, plan, false)
	seedCycle(t, db, sub, date(2026, time.February, 11), date(2026, time.March, 8))

	svc := newComodatoService(db)

	first, err := svc.ProcessFirstCycleComodato(ctx, sub.ID, date(2026, time.February, 12))
	require.NoError(t, err)
	require.Len(t, first.ComodatosCreated, 2)

	// Reprocessing the same first cycle (e.g. a retried event) must not
	// duplicate loans.
	second, err := svc.ProcessFirstCycleComodato(ctx, sub.ID, date(2026, time.February, 12))
	require.NoError(t, err)
	assert.True(t, second.IsFirstCycle)
	assert.Empty(t, second.ComodatosCreated)
	assert.Zero(t, second.TotalComodatos)

	var count int64
	require.NoError(t, db.Model(&db_models.Comodato{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestProcessFirstCycle_NotFirstCycleIsNoOp(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	plan, _ := seedPlan(t, db, "hogar", 100, db_models.PaymentModeAdvance, nil)
	_, sub := seedSubscription(t, db, plan, false)
	seedCycle(t, db, sub, date(2026, time.January, 1), date(2026, time.January, 31))
	seedCycle(t, db, sub, date(2026, time.February, 1), date(2026, time.February, 28))

	svc := newComodatoService(db)

	result, err := svc.ProcessFirstCycleComodato(ctx, sub.ID, date(2026, time.February, 2))
	require.NoError(t, err)
	assert.False(t, result.IsFirstCycle)
	assert.Empty(t, result.ComodatosCreated)
	assert.Zero(t, result.TotalComodatos)
}

func TestProcessFirstCycle_CustomerOwnsContainers(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	plan, _ := seedPlan(t, db, "hogar", 100, db_models.PaymentModeAdvance, nil)
	_, sub := seedSubscription(t, db, plan, true)
	seedCycle(t, db, sub, date(2026, time.February, 11), date(2026, time.March, 8))

	svc := newComodatoService(db)

	result, err := svc.ProcessFirstCycleComodato(ctx, sub.ID, date(2026, time.February, 12))
	require.NoError(t, err)
	assert.True(t, result.IsFirstCycle, "still the first cycle, just nothing to issue")
	assert.Empty(t, result.ComodatosCreated)
	assert.Zero(t, result.TotalComodatos)
}

func TestProcessFirstCycle_CrossSubscriptionIndependence(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	plan, _ := seedPlan(t, db, "hogar", 100, db_models.PaymentModeAdvance, nil)
	customer, subA := seedSubscription(t, db, plan, false)
	seedCycle(t, db, subA, date(2026, time.January, 1), date(2026, time.January, 31))

	subB := db_models.Subscription{
		CustomerID: customer.ID,
		PlanID:     plan.ID,
		Status:     db_models.SubStatusActive,
		StartDate:  date(2026, time.March, 1),
	}
	require.NoError(t, db.Create(&subB).Error)
	seedCycle(t, db, subB, date(2026, time.March, 1), date(2026, time.March, 31))

	svc := newComodatoService(db)

	resA, err := svc.ProcessFirstCycleComodato(ctx, subA.ID, date(2026, time.January, 2))
	require.NoError(t, err)
	require.Len(t, resA.ComodatosCreated, 2)

	// Subscription B provisions independently; A's active loans for the
	// same customer and products are not conflicts.
	resB, err := svc.ProcessFirstCycleComodato(ctx, subB.ID, date(2026, time.March, 2))
	require.NoError(t, err)
	assert.Len(t, resB.ComodatosCreated, 2)

	var count int64
	require.NoError(t, db.Model(&db_models.Comodato{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}

func TestProcessFirstCycle_UnknownSubscription(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	svc := newComodatoService(db)

	_, err := svc.ProcessFirstCycleComodato(ctx, uuid.New(), date(2026, time.February, 12))
	assert.ErrorIs(t, err, utils.ErrSubscriptionNotFound)
}

// failingComodatoRepo makes creation fail for one product to exercise the
// skip-and-continue policy.
type failingComodatoRepo struct {
	repositories.IComodatoRepository
	failProductID uuid.UUID
}

func (f *failingComodatoRepo) CreateComodato(ctx context.Context, comodato *db_models.Comodato) error {
	if comodato.ProductID == f.failProductID {
		return errors.New("insert rejected")
	}
	return f.IComodatoRepository.CreateComodato(ctx, comodato)
}

func TestProcessFirstCycle_PartialFailureIsReported(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	plan, products := seedPlan(t, db, "hogar", 100, db_models.PaymentModeAdvance, nil)
	_, sub := seedSubscription(t, db, plan, false)
	seedCycle(t, db, sub, date(2026, time.February, 11), date(2026, time.March, 8))

	svc := NewComodatoService(
		repositories.NewSubscriptionRepository(db),
		repositories.NewCycleRepository(db),
		&failingComodatoRepo{
			IComodatoRepository: repositories.NewComodatoRepository(db),
			failProductID:       products[0].ID,
		},
	)

	result, err := svc.ProcessFirstCycleComodato(ctx, sub.ID, date(2026, time.February, 12))
	require.NoError(t, err, "one product's failure must not fail the operation")

	require.Len(t, result.ComodatosCreated, 1)
	assert.Equal(t, products[1].ID, result.ComodatosCreated[0].ProductID)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, products[0].ID, result.Failed[0].ProductID)
	assert.Contains(t, result.Failed[0].Reason, "insert rejected")

	// The failed product can be retried later and only it gets issued.
	retry, err := svc.ProcessFirstCycleComodato(ctx, sub.ID, date(2026, time.February, 12))
	require.NoError(t, err)
	assert.Len(t, retry.ComodatosCreated, 0)
	assert.Len(t, retry.Failed, 1)

	fixed := newComodatoService(db)
	retry2, err := fixed.ProcessFirstCycleComodato(ctx, sub.ID, date(2026, time.February, 12))
	require.NoError(t, err)
	require.Len(t, retry2.ComodatosCreated, 1)
	assert.Equal(t, products[0].ID, retry2.ComodatosCreated[0].ProductID)
}

func TestHasActiveComodatoForProduct(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	plan, products := seedPlan(t, db, "hogar", 100, db_models.PaymentModeAdvance, nil)
	customer, sub := seedSubscription(t, db, plan, false)
	seedCycle(t, db, sub, date(2026, time.February, 11), date(2026, time.March, 8))

	svc := newComodatoService(db)

	has, err := svc.HasActiveComodatoForProduct(ctx, customer.ID, products[0].ID)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = svc.ProcessFirstCycleComodato(ctx, sub.ID, date(2026, time.February, 12))
	require.NoError(t, err)

	has, err = svc.HasActiveComodatoForProduct(ctx, customer.ID, products[0].ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestValidateExistingComodatos_SubscriptionAndCustomerScope(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	plan, products := seedPlan(t, db, "hogar", 100, db_models.PaymentModeAdvance, nil)
	customer, subA := seedSubscription(t, db, plan, false)
	seedCycle(t, db, subA, date(2026, time.January, 1), date(2026, time.January, 31))

	subB := db_models.Subscription{
		CustomerID: customer.ID,
		PlanID:     plan.ID,
		Status:     db_models.SubStatusActive,
		StartDate:  date(2026, time.March, 1),
	}
	require.NoError(t, db.Create(&subB).Error)

	svc := newComodatoService(db)

	_, err := svc.ProcessFirstCycleComodato(ctx, subA.ID, date(2026, time.January, 2))
	require.NoError(t, err)

	productIDs := []uuid.UUID{products[0].ID, products[1].ID, products[2].ID}

	// Customer-scoped: A's loans are visible.
	res, err := svc.ValidateExistingComodatos(ctx, customer.ID, productIDs, nil)
	require.NoError(t, err)
	assert.True(t, res.HasConflicts)
	assert.Len(t, res.Conflicts, 2)

	// Scoped to subscription B: A's loans do not count.
	res, err = svc.ValidateExistingComodatos(ctx, customer.ID, productIDs, &subB.ID)
	require.NoError(t, err)
	assert.False(t, res.HasConflicts)
	assert.Empty(t, res.Conflicts)
}

func TestReturnComodato(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	plan, _ := seedPlan(t, db, "hogar", 100, db_models.PaymentModeAdvance, nil)
	customer, sub := seedSubscription(t, db, plan, false)
	seedCycle(t, db, sub, date(2026, time.February, 11), date(2026, time.March, 8))

	svc := newComodatoService(db)

	result, err := svc.ProcessFirstCycleComodato(ctx, sub.ID, date(2026, time.February, 12))
	require.NoError(t, err)
	require.NotEmpty(t, result.ComodatosCreated)
	comodatoID := result.ComodatosCreated[0].ID

	require.NoError(t, svc.ReturnComodato(ctx, comodatoID, date(2026, time.June, 1)))

	var returned db_models.Comodato
	require.NoError(t, db.First(&returned, "id = ?", comodatoID).Error)
	assert.Equal(t, db_models.ComodatoStatusReturned, returned.Status)
	assert.False(t, returned.IsActive)
	require.NotNil(t, returned.ReturnDate)

	err = svc.ReturnComodato(ctx, comodatoID, date(2026, time.June, 2))
	assert.ErrorIs(t, err, utils.ErrComodatoAlreadyReturned)

	err = svc.ReturnComodato(ctx, uuid.New(), date(2026, time.June, 2))
	assert.ErrorIs(t, err, utils.ErrComodatoNotFound)

	has, err := svc.HasActiveComodatoForProduct(ctx, customer.ID, result.ComodatosCreated[0].ProductID)
	require.NoError(t, err)
	assert.False(t, has, "a returned comodato no longer counts as active")
}

func TestGetActiveComodatosByCustomer_Enriched(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	plan, _ := seedPlan(t, db, "hogar", 100, db_models.PaymentModeAdvance, nil)
	customer, sub := seedSubscription(t, db, plan, false)
	seedCycle(t, db, sub, date(2026, time.February, 11), date(2026, time.March, 8))

	svc := newComodatoService(db)

	_, err := svc.ProcessFirstCycleComodato(ctx, sub.ID, date(2026, time.February, 12))
	require.NoError(t, err)

	active, err := svc.GetActiveComodatosByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, c := range active {
		assert.NotEmpty(t, c.ProductName, "projection is enriched with product info")
		require.NotNil(t, c.SubscriptionID)
		assert.Equal(t, sub.ID, *c.SubscriptionID)
		assert.Contains(t, c.Notes, sub.ID.String())
	}
}
