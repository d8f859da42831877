package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"aquagest/internal/models/db_models"
	"aquagest/internal/models/response_models"
	"aquagest/internal/repositories"
	"aquagest/pkg/utils"
)

// ComputeDueDate derives a cycle's payment due date from its bounds and the
// plan's payment mode. ADVANCE pays at cycle start; ARREARS pays at cycle
// end, or on the plan's due day-of-month rolled forward one month whenever
// the candidate lands on or before the cycle end.
func ComputeDueDate(cycleStart, cycleEnd time.Time, mode db_models.PaymentMode, dueDay *int) (time.Time, error) {

	cycleStart = utils.DateOnly(cycleStart)
	cycleEnd = utils.DateOnly(cycleEnd)

	if cycleEnd.Before(cycleStart) {
		return time.Time{}, utils.ErrInvalidCycleRange
	}

	switch mode {
	case db_models.PaymentModeAdvance:
		return cycleStart, nil

	case db_models.PaymentModeArrears:
		if dueDay == nil {
			return cycleEnd, nil
		}
		if *dueDay < 1 || *dueDay > 31 {
			return time.Time{}, utils.ErrInvalidPaymentDueDay
		}

		// time.Date normalizes overflow, so due day 31 in a 30-day
		// month lands on the 1st of the following month.
		candidate := time.Date(cycleEnd.Year(), cycleEnd.Month(), *dueDay,
			0, 0, 0, 0, cycleEnd.Location())

		if !candidate.After(cycleEnd) {
			candidate = candidate.AddDate(0, 1, 0)
		}
		return candidate, nil

	default:
		return time.Time{}, fmt.Errorf("%w: %q", utils.ErrInvalidPaymentMode, mode)
	}
}

type BillingServiceInterface interface {
	CreateCycle(ctx context.Context, subscriptionID uuid.UUID, cycleStart, cycleEnd time.Time) (*response_models.CycleResponse, error)
	GetCyclesBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]response_models.CycleResponse, error)
}

type BillingService struct {
	subscriptionRepo repositories.ISubscriptionRepository
	cycleRepo        repositories.ICycleRepository
}

func NewBillingService(
	subscriptionRepo repositories.ISubscriptionRepository,
	cycleRepo repositories.ICycleRepository,
) BillingServiceInterface {
	return &BillingService{
		subscriptionRepo: subscriptionRepo,
		cycleRepo:        cycleRepo,
	}
}

func (b *BillingService) CreateCycle(ctx context.Context, subscriptionID uuid.UUID, cycleStart, cycleEnd time.Time) (*response_models.CycleResponse, error) {

	sub, err := b.subscriptionRepo.GetSubscriptionWithPlan(ctx, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	cycleStart = utils.DateOnly(cycleStart)
	cycleEnd = utils.DateOnly(cycleEnd)
	if cycleEnd.Before(cycleStart) {
		return nil, utils.ErrInvalidCycleRange
	}

	// The cycle amount is always the plan price. Summing product prices
	// was a past source of billing inconsistency and is not a fallback.
	if sub.Plan.PriceMinor <= 0 {
		return nil, fmt.Errorf("%w: plan %s (%s)", utils.ErrPlanPriceNotSet, sub.Plan.Name, sub.PlanID)
	}

	dueDate, err := ComputeDueDate(cycleStart, cycleEnd, sub.Plan.PaymentMode, sub.Plan.PaymentDueDay)
	if err != nil {
		return nil, err
	}

	cycle := &db_models.SubscriptionCycle{
		SubscriptionID:   sub.ID,
		CycleStart:       cycleStart,
		CycleEnd:         cycleEnd,
		TotalAmountMinor: sub.Plan.PriceMinor,
		PaymentStatus:    db_models.PayStatusPending,
		PaymentDueDate:   dueDate,
	}

	if err := b.cycleRepo.CreateCycle(ctx, cycle); err != nil {
		return nil, utils.ErrDatabaseError
	}

	count, err := b.cycleRepo.CountBySubscription(ctx, sub.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.WithFields(log.Fields{
		"subscription_id": sub.ID,
		"cycle_id":        cycle.ID,
		"due_date":        utils.FormatDate(dueDate),
		"first_cycle":     count == 1,
	}).Info("billing cycle created")

	resp := toCycleResponse(cycle)
	resp.IsFirstCycle = count == 1
	return resp, nil
}

func (b *BillingService) GetCyclesBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]response_models.CycleResponse, error) {

	sub, err := b.subscriptionRepo.GetSubscriptionWithPlan(ctx, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	cycles, err := b.cycleRepo.ListBySubscription(ctx, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CycleResponse, 0, len(cycles))
	for i := range cycles {
		out = append(out, *toCycleResponse(&cycles[i]))
	}
	return out, nil
}

func toCycleResponse(cycle *db_models.SubscriptionCycle) *response_models.CycleResponse {
	return &response_models.CycleResponse{
		ID:             cycle.ID,
		SubscriptionID: cycle.SubscriptionID,
		CycleStart:     utils.FormatDate(cycle.CycleStart),
		CycleEnd:       utils.FormatDate(cycle.CycleEnd),
		TotalAmount:    cycle.TotalAmountMinor,
		PaidAmount:     cycle.PaidAmountMinor,
		PendingBalance: cycle.PendingBalanceMinor(),
		CreditBalance:  cycle.CreditBalanceMinor,
		PaymentStatus:  string(cycle.PaymentStatus),
		PaymentDueDate: utils.FormatDate(cycle.PaymentDueDate),
	}
}
