package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aquagest/internal/models/db_models"
)

type IComodatoRepository interface {
	CreateComodato(ctx context.Context, comodato *db_models.Comodato) error
	GetComodatoByID(ctx context.Context, comodatoID uuid.UUID) (*db_models.Comodato, error)
	// FindActiveBySubscriptionAndProduct is the duplicate check used by
	// first-cycle provisioning: scoped to one subscription, never the
	// whole customer.
	FindActiveBySubscriptionAndProduct(ctx context.Context, subscriptionID, productID uuid.UUID) (*db_models.Comodato, error)
	FindActiveByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*db_models.Comodato, error)
	ListActiveByCustomerAndProducts(ctx context.Context, customerID uuid.UUID, productIDs []uuid.UUID, subscriptionID *uuid.UUID) ([]db_models.Comodato, error)
	ListActiveByCustomer(ctx context.Context, customerID uuid.UUID) ([]db_models.Comodato, error)
	UpdateComodato(ctx context.Context, comodato *db_models.Comodato) error
}

type ComodatoRepository struct {
	db *gorm.DB
}

func NewComodatoRepository(db *gorm.DB) IComodatoRepository {
	return &ComodatoRepository{db: db}
}

func (r *ComodatoRepository) CreateComodato(ctx context.Context, comodato *db_models.Comodato) error {
	return r.db.WithContext(ctx).Create(comodato).Error
}

func (r *ComodatoRepository) GetComodatoByID(ctx context.Context, comodatoID uuid.UUID) (*db_models.Comodato, error) {

	var comodato db_models.Comodato
	err := r.db.WithContext(ctx).First(&comodato, "id = ?", comodatoID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &comodato, nil
}

func (r *ComodatoRepository) FindActiveBySubscriptionAndProduct(ctx context.Context, subscriptionID, productID uuid.UUID) (*db_models.Comodato, error) {

	var comodato db_models.Comodato
	err := r.db.WithContext(ctx).
		Where("subscription_id = ? AND product_id = ? AND status = ? AND is_active = ?",
			subscriptionID, productID, db_models.ComodatoStatusActive, true).
		First(&comodato).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &comodato, nil
}

func (r *ComodatoRepository) FindActiveByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*db_models.Comodato, error) {

	var comodato db_models.Comodato
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ? AND status = ? AND is_active = ?",
			customerID, productID, db_models.ComodatoStatusActive, true).
		First(&comodato).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &comodato, nil
}

func (r *ComodatoRepository) ListActiveByCustomerAndProducts(ctx context.Context, customerID uuid.UUID, productIDs []uuid.UUID, subscriptionID *uuid.UUID) ([]db_models.Comodato, error) {

	q := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id IN ? AND status = ? AND is_active = ?",
			customerID, productIDs, db_models.ComodatoStatusActive, true)

	if subscriptionID != nil {
		q = q.Where("subscription_id = ?", *subscriptionID)
	}

	var comodatos []db_models.Comodato
	if err := q.Find(&comodatos).Error; err != nil {
		return nil, err
	}

	return comodatos, nil
}

func (r *ComodatoRepository) ListActiveByCustomer(ctx context.Context, customerID uuid.UUID) ([]db_models.Comodato, error) {

	var comodatos []db_models.Comodato
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Subscription").
		Where("customer_id = ? AND status = ? AND is_active = ?",
			customerID, db_models.ComodatoStatusActive, true).
		Order("delivery_date ASC").
		Find(&comodatos).Error

	if err != nil {
		return nil, err
	}

	return comodatos, nil
}

func (r *ComodatoRepository) UpdateComodato(ctx context.Context, comodato *db_models.Comodato) error {
	return r.db.WithContext(ctx).Save(comodato).Error
}
