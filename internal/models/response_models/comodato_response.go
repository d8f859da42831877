package response_models

import "github.com/google/uuid"

type ComodatoSummary struct {
	ID                 uuid.UUID `json:"id"`
	ProductID          uuid.UUID `json:"product_id"`
	ProductName        string    `json:"product_name"`
	Quantity           int       `json:"quantity"`
	DeliveryDate       string    `json:"delivery_date"`
	ExpectedReturnDate string    `json:"expected_return_date"`
}

// ProvisionFailure records a single product whose loan could not be created.
// Provisioning is best-effort: failures are reported, not propagated.
type ProvisionFailure struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Reason      string    `json:"reason"`
}

type FirstCycleResult struct {
	ComodatosCreated []ComodatoSummary  `json:"comodatos_created"`
	Failed           []ProvisionFailure `json:"failed"`
	TotalComodatos   int                `json:"total_comodatos"`
	IsFirstCycle     bool               `json:"is_first_cycle"`
	CustomerID       uuid.UUID          `json:"customer_id"`
	SubscriptionID   uuid.UUID          `json:"subscription_id"`
}

type ActiveComodatoResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ProductID          uuid.UUID  `json:"product_id"`
	ProductName        string     `json:"product_name"`
	ProductBrand       string     `json:"product_brand,omitempty"`
	SubscriptionID     *uuid.UUID `json:"subscription_id,omitempty"`
	Quantity           int        `json:"quantity"`
	DeliveryDate       string     `json:"delivery_date"`
	ExpectedReturnDate string     `json:"expected_return_date"`
	DepositAmount      int64      `json:"deposit_amount"`
	MonthlyFee         int64      `json:"monthly_fee"`
	Notes              string     `json:"notes,omitempty"`
}

type ComodatoConflict struct {
	ProductID  uuid.UUID `json:"product_id"`
	ComodatoID uuid.UUID `json:"comodato_id"`
}

type ConflictCheckResult struct {
	HasConflicts bool               `json:"has_conflicts"`
	Conflicts    []ComodatoConflict `json:"conflicts"`
}
