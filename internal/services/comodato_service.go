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

type ComodatoServiceInterface interface {
	ProcessFirstCycleComodato(ctx context.Context, subscriptionID uuid.UUID, deliveryDate time.Time) (*response_models.FirstCycleResult, error)
	HasActiveComodatoForProduct(ctx context.Context, customerID, productID uuid.UUID) (bool, error)
	ValidateExistingComodatos(ctx context.Context, customerID uuid.UUID, productIDs []uuid.UUID, subscriptionID *uuid.UUID) (*response_models.ConflictCheckResult, error)
	GetActiveComodatosByCustomer(ctx context.Context, customerID uuid.UUID) ([]response_models.ActiveComodatoResponse, error)
	ReturnComodato(ctx context.Context, comodatoID uuid.UUID, returnDate time.Time) error
}

type ComodatoService struct {
	subscriptionRepo repositories.ISubscriptionRepository
	cycleRepo        repositories.ICycleRepository
	comodatoRepo     repositories.IComodatoRepository
}

func NewComodatoService(
	subscriptionRepo repositories.ISubscriptionRepository,
	cycleRepo repositories.ICycleRepository,
	comodatoRepo repositories.IComodatoRepository,
) ComodatoServiceInterface {
	return &ComodatoService{
		subscriptionRepo: subscriptionRepo,
		cycleRepo:        cycleRepo,
		comodatoRepo:     comodatoRepo,
	}
}

// ProcessFirstCycleComodato issues loaned equipment for every returnable
// product of the subscription's plan when (and only when) the subscription
// is on its first billing cycle. The operation is idempotent per
// (subscription, product) and best-effort per product: one product's
// failure never aborts the rest, it lands in Failed instead.
func (s *ComodatoService) ProcessFirstCycleComodato(ctx context.Context, subscriptionID uuid.UUID, deliveryDate time.Time) (*response_models.FirstCycleResult, error) {

	sub, err := s.subscriptionRepo.GetSubscriptionWithPlan(ctx, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	result := &response_models.FirstCycleResult{
		ComodatosCreated: []response_models.ComodatoSummary{},
		Failed:           []response_models.ProvisionFailure{},
		CustomerID:       sub.CustomerID,
		SubscriptionID:   sub.ID,
	}

	count, err := s.cycleRepo.CountBySubscription(ctx, sub.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count != 1 {
		// Nothing to do; reprocessing a later cycle is a valid no-op.
		return result, nil
	}
	result.IsFirstCycle = true

	if sub.Customer.OwnsReturnableContainers {
		log.WithFields(log.Fields{
			"subscription_id": sub.ID,
			"customer_id":     sub.CustomerID,
		}).Info("customer owns returnable containers, skipping comodato provisioning")
		return result, nil
	}

	deliveryDate = utils.DateOnly(deliveryDate)

	for i := range sub.Plan.Products {
		pp := &sub.Plan.Products[i]
		if !pp.Product.IsReturnable {
			continue
		}

		existing, err := s.comodatoRepo.FindActiveBySubscriptionAndProduct(ctx, sub.ID, pp.ProductID)
		if err != nil {
			result.Failed = append(result.Failed, response_models.ProvisionFailure{
				ProductID:   pp.ProductID,
				ProductName: pp.Product.Name,
				Reason:      fmt.Sprintf("duplicate check failed: %v", err),
			})
			continue
		}
		if existing != nil {
			// Already issued for this subscription (e.g. a retried
			// cycle event); skipping keeps the operation idempotent.
			log.WithFields(log.Fields{
				"subscription_id": sub.ID,
				"product_id":      pp.ProductID,
				"comodato_id":     existing.ID,
			}).Info("comodato already active for subscription, skipping")
			continue
		}

		// A loan for the same product under a different subscription is
		// legitimate; duplicate prevention is subscription-scoped.
		if other, err := s.comodatoRepo.FindActiveByCustomerAndProduct(ctx, sub.CustomerID, pp.ProductID); err == nil && other != nil {
			log.WithFields(log.Fields{
				"customer_id": sub.CustomerID,
				"product_id":  pp.ProductID,
				"comodato_id": other.ID,
			}).Info("product already on loan under another subscription")
		}

		quantity := pp.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		// First-cycle loans are always free of deposit and monthly fee.
		comodato := &db_models.Comodato{
			CustomerID:         sub.CustomerID,
			ProductID:          pp.ProductID,
			SubscriptionID:     &sub.ID,
			Quantity:           quantity,
			DeliveryDate:       deliveryDate,
			ExpectedReturnDate: deliveryDate.AddDate(1, 0, 0),
			Status:             db_models.ComodatoStatusActive,
			IsActive:           true,
			DepositMinor:       0,
			MonthlyFeeMinor:    0,
			ArticleDescription: pp.Product.Name,
			ArticleBrand:       pp.Product.Brand,
			ArticleModel:       pp.Product.Model,
			Notes:              fmt.Sprintf("first-cycle provisioning for subscription %s", sub.ID),
		}

		if err := s.comodatoRepo.CreateComodato(ctx, comodato); err != nil {
			log.WithFields(log.Fields{
				"subscription_id": sub.ID,
				"product_id":      pp.ProductID,
			}).WithError(err).Warn("comodato creation failed, continuing with remaining products")
			result.Failed = append(result.Failed, response_models.ProvisionFailure{
				ProductID:   pp.ProductID,
				ProductName: pp.Product.Name,
				Reason:      err.Error(),
			})
			continue
		}

		result.ComodatosCreated = append(result.ComodatosCreated, response_models.ComodatoSummary{
			ID:                 comodato.ID,
			ProductID:          comodato.ProductID,
			ProductName:        pp.Product.Name,
			Quantity:           comodato.Quantity,
			DeliveryDate:       utils.FormatDate(comodato.DeliveryDate),
			ExpectedReturnDate: utils.FormatDate(comodato.ExpectedReturnDate),
		})
	}

	result.TotalComodatos = len(result.ComodatosCreated)

	log.WithFields(log.Fields{
		"subscription_id": sub.ID,
		"created":         result.TotalComodatos,
		"failed":          len(result.Failed),
	}).Info("first-cycle comodato provisioning finished")

	return result, nil
}

// HasActiveComodatoForProduct is customer-scoped; callers use it to avoid
// duplicate manual issuance outside the first-cycle flow.
func (s *ComodatoService) HasActiveComodatoForProduct(ctx context.Context, customerID, productID uuid.UUID) (bool, error) {

	comodato, err := s.comodatoRepo.FindActiveByCustomerAndProduct(ctx, customerID, productID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return comodato != nil, nil
}

func (s *ComodatoService) ValidateExistingComodatos(ctx context.Context, customerID uuid.UUID, productIDs []uuid.UUID, subscriptionID *uuid.UUID) (*response_models.ConflictCheckResult, error) {

	result := &response_models.ConflictCheckResult{
		Conflicts: []response_models.ComodatoConflict{},
	}
	if len(productIDs) == 0 {
		return result, nil
	}

	comodatos, err := s.comodatoRepo.ListActiveByCustomerAndProducts(ctx, customerID, productIDs, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	for i := range comodatos {
		result.Conflicts = append(result.Conflicts, response_models.ComodatoConflict{
			ProductID:  comodatos[i].ProductID,
			ComodatoID: comodatos[i].ID,
		})
	}
	result.HasConflicts = len(result.Conflicts) > 0

	return result, nil
}

func (s *ComodatoService) GetActiveComodatosByCustomer(ctx context.Context, customerID uuid.UUID) ([]response_models.ActiveComodatoResponse, error) {

	comodatos, err := s.comodatoRepo.ListActiveByCustomer(ctx, customerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ActiveComodatoResponse, 0, len(comodatos))
	for i := range comodatos {
		c := &comodatos[i]
		out = append(out, response_models.ActiveComodatoResponse{
			ID:                 c.ID,
			ProductID:          c.ProductID,
			ProductName:        c.Product.Name,
			ProductBrand:       c.Product.Brand,
			SubscriptionID:     c.SubscriptionID,
			Quantity:           c.Quantity,
			DeliveryDate:       utils.FormatDate(c.DeliveryDate),
			ExpectedReturnDate: utils.FormatDate(c.ExpectedReturnDate),
			DepositAmount:      c.DepositMinor,
			MonthlyFee:         c.MonthlyFeeMinor,
			Notes:              c.Notes,
		})
	}

	return out, nil
}

func (s *ComodatoService) ReturnComodato(ctx context.Context, comodatoID uuid.UUID, returnDate time.Time) error {

	comodato, err := s.comodatoRepo.GetComodatoByID(ctx, comodatoID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if comodato == nil {
		return utils.ErrComodatoNotFound
	}
	if comodato.Status == db_models.ComodatoStatusReturned {
		return utils.ErrComodatoAlreadyReturned
	}

	returnDate = utils.DateOnly(returnDate)
	comodato.Status = db_models.ComodatoStatusReturned
	comodato.IsActive = false
	comodato.ReturnDate = &returnDate

	if err := s.comodatoRepo.UpdateComodato(ctx, comodato); err != nil {
		return utils.ErrDatabaseError
	}

	log.WithFields(log.Fields{
		"comodato_id": comodato.ID,
		"customer_id": comodato.CustomerID,
		"return_date": utils.FormatDate(returnDate),
	}).Info("comodato returned")

	return nil
}
