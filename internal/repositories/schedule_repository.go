package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aquagest/internal/models/db_models"
)

type IScheduleRepository interface {
	CreateSchedule(ctx context.Context, schedule *db_models.DeliverySchedule) error
	GetScheduleByID(ctx context.Context, scheduleID uuid.UUID) (*db_models.DeliverySchedule, error)
	// ListBySubscriptionAndDay returns the schedules a candidate must be
	// compared against; excludeID drops the record being updated.
	ListBySubscriptionAndDay(ctx context.Context, subscriptionID uuid.UUID, dayOfWeek int, excludeID *uuid.UUID) ([]db_models.DeliverySchedule, error)
	ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]db_models.DeliverySchedule, error)
	UpdateSchedule(ctx context.Context, schedule *db_models.DeliverySchedule) error
	DeleteSchedule(ctx context.Context, scheduleID uuid.UUID) error
}

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) IScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) CreateSchedule(ctx context.Context, schedule *db_models.DeliverySchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *ScheduleRepository) GetScheduleByID(ctx context.Context, scheduleID uuid.UUID) (*db_models.DeliverySchedule, error) {

	var schedule db_models.DeliverySchedule
	err := r.db.WithContext(ctx).First(&schedule, "id = ?", scheduleID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &schedule, nil
}

func (r *ScheduleRepository) ListBySubscriptionAndDay(ctx context.Context, subscriptionID uuid.UUID, dayOfWeek int, excludeID *uuid.UUID) ([]db_models.DeliverySchedule, error) {

	q := r.db.WithContext(ctx).
		Where("subscription_id = ? AND day_of_week = ?", subscriptionID, dayOfWeek)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var schedules []db_models.DeliverySchedule
	if err := q.Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *ScheduleRepository) ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]db_models.DeliverySchedule, error) {

	var schedules []db_models.DeliverySchedule
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("day_of_week ASC, scheduled_time ASC").
		Find(&schedules).Error

	if err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, schedule *db_models.DeliverySchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, scheduleID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.DeliverySchedule{}, "id = ?", scheduleID).Error
}
