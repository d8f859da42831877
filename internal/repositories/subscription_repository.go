package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aquagest/internal/models/db_models"
)

type ISubscriptionRepository interface {
	GetSubscriptionWithPlan(ctx context.Context, subscriptionID uuid.UUID) (*db_models.Subscription, error)
	GetActiveByCustomerAndPlan(ctx context.Context, customerID, planID uuid.UUID) (*db_models.Subscription, error)
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) GetSubscriptionWithPlan(ctx context.Context, subscriptionID uuid.UUID) (*db_models.Subscription, error) {

	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Plan").
		Preload("Plan.Products").
		Preload("Plan.Products.Product").
		First(&sub, "id = ?", subscriptionID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (r *SubscriptionRepository) GetActiveByCustomerAndPlan(ctx context.Context, customerID, planID uuid.UUID) (*db_models.Subscription, error) {

	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND plan_id = ? AND status = ?",
			customerID, planID, db_models.SubStatusActive).
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}
