package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aquagest/internal/models/db_models"
	"aquagest/internal/models/response_models"
	"aquagest/internal/repositories"
	"aquagest/pkg/utils"
)

// ScheduleChanges carries the fields of an update request; nil fields keep
// the existing record's values.
type ScheduleChanges struct {
	DayOfWeek     *int
	ScheduledTime *string
}

type ScheduleServiceInterface interface {
	CreateSchedule(ctx context.Context, subscriptionID uuid.UUID, dayOfWeek int, scheduledTime string) (*response_models.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, scheduleID uuid.UUID, changes ScheduleChanges) (*response_models.ScheduleResponse, error)
	GetSchedulesBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]response_models.ScheduleResponse, error)
}

type ScheduleService struct {
	scheduleRepo     repositories.IScheduleRepository
	subscriptionRepo repositories.ISubscriptionRepository
}

func NewScheduleService(
	scheduleRepo repositories.IScheduleRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
) ScheduleServiceInterface {
	return &ScheduleService{
		scheduleRepo:     scheduleRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, subscriptionID uuid.UUID, dayOfWeek int, scheduledTime string) (*response_models.ScheduleResponse, error) {

	if dayOfWeek < 1 || dayOfWeek > 7 {
		return nil, utils.ErrInvalidDayOfWeek
	}

	slot, err := utils.ParseTimeSlot(scheduledTime)
	if err != nil {
		return nil, err
	}

	sub, err := s.subscriptionRepo.GetSubscriptionWithPlan(ctx, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	if err := s.rejectOverlap(ctx, subscriptionID, dayOfWeek, slot, nil); err != nil {
		return nil, err
	}

	schedule := &db_models.DeliverySchedule{
		SubscriptionID: subscriptionID,
		DayOfWeek:      dayOfWeek,
		ScheduledTime:  slot.String(),
	}

	if err := s.scheduleRepo.CreateSchedule(ctx, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toScheduleResponse(schedule), nil
}

func (s *ScheduleService) UpdateSchedule(ctx context.Context, scheduleID uuid.UUID, changes ScheduleChanges) (*response_models.ScheduleResponse, error) {

	schedule, err := s.scheduleRepo.GetScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}

	// Effective target: new values where provided, existing otherwise.
	day := schedule.DayOfWeek
	if changes.DayOfWeek != nil {
		day = *changes.DayOfWeek
	}
	if day < 1 || day > 7 {
		return nil, utils.ErrInvalidDayOfWeek
	}

	timeText := schedule.ScheduledTime
	if changes.ScheduledTime != nil {
		timeText = *changes.ScheduledTime
	}
	slot, err := utils.ParseTimeSlot(timeText)
	if err != nil {
		return nil, err
	}

	if err := s.rejectOverlap(ctx, schedule.SubscriptionID, day, slot, &schedule.ID); err != nil {
		return nil, err
	}

	schedule.DayOfWeek = day
	schedule.ScheduledTime = slot.String()

	if err := s.scheduleRepo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toScheduleResponse(schedule), nil
}

func (s *ScheduleService) GetSchedulesBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]response_models.ScheduleResponse, error) {

	schedules, err := s.scheduleRepo.ListBySubscription(ctx, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		out = append(out, *toScheduleResponse(&schedules[i]))
	}
	return out, nil
}

// rejectOverlap compares the candidate slot against every other schedule of
// the same subscription and weekday; the error names the conflicting window.
func (s *ScheduleService) rejectOverlap(ctx context.Context, subscriptionID uuid.UUID, dayOfWeek int, candidate utils.TimeSlot, excludeID *uuid.UUID) error {

	existing, err := s.scheduleRepo.ListBySubscriptionAndDay(ctx, subscriptionID, dayOfWeek, excludeID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	for i := range existing {
		other, err := utils.ParseTimeSlot(existing[i].ScheduledTime)
		if err != nil {
			// Stored values were validated on write; an unparseable row
			// is corrupt data and must not silently pass the check.
			return utils.ErrDatabaseError
		}
		if candidate.Overlaps(other) {
			return fmt.Errorf("%w: conflicts with existing schedule at %s",
				utils.ErrScheduleOverlap, existing[i].ScheduledTime)
		}
	}

	return nil
}

func toScheduleResponse(schedule *db_models.DeliverySchedule) *response_models.ScheduleResponse {
	return &response_models.ScheduleResponse{
		ID:             schedule.ID,
		SubscriptionID: schedule.SubscriptionID,
		DayOfWeek:      schedule.DayOfWeek,
		ScheduledTime:  schedule.ScheduledTime,
	}
}
