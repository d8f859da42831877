package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aquagest/internal/models/db_models"
)

type ICycleRepository interface {
	CreateCycle(ctx context.Context, cycle *db_models.SubscriptionCycle) error
	CountBySubscription(ctx context.Context, subscriptionID uuid.UUID) (int64, error)
	ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]db_models.SubscriptionCycle, error)
}

type CycleRepository struct {
	db *gorm.DB
}

func NewCycleRepository(db *gorm.DB) ICycleRepository {
	return &CycleRepository{db: db}
}

func (r *CycleRepository) CreateCycle(ctx context.Context, cycle *db_models.SubscriptionCycle) error {
	return r.db.WithContext(ctx).Create(cycle).Error
}

func (r *CycleRepository) CountBySubscription(ctx context.Context, subscriptionID uuid.UUID) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.SubscriptionCycle{}).
		Where("subscription_id = ?", subscriptionID).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *CycleRepository) ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]db_models.SubscriptionCycle, error) {

	var cycles []db_models.SubscriptionCycle
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("cycle_start ASC").
		Find(&cycles).Error

	if err != nil {
		return nil, err
	}

	return cycles, nil
}
