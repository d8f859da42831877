package db_models

import (
	"github.com/google/uuid"
)

type PaymentMode string

const (
	PaymentModeAdvance PaymentMode = "ADVANCE"
	PaymentModeArrears PaymentMode = "ARREARS"
)

// SubscriptionPlan carries the fixed cycle price and the bill of materials
// delivered each cycle. Cycle amounts always come from PriceMinor, never
// from summing product prices.
type SubscriptionPlan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "bidon20-weekly"
	Name        string
	Description *string
	PriceMinor  int64  // 150000 = $1500.00
	Currency    string `gorm:"size:3"` // "ARS"

	PaymentMode   PaymentMode `gorm:"type:varchar(16);default:'ADVANCE'"`
	PaymentDueDay *int        // day of month, ARREARS only

	IsActive bool `gorm:"default:true"`

	Products []PlanProduct `gorm:"foreignKey:PlanID"`
}

type PlanProduct struct {
	BaseModel
	PlanID    uuid.UUID `gorm:"index"`
	ProductID uuid.UUID `gorm:"index"`
	Quantity  int       `gorm:"default:1"`

	Product Product `gorm:"foreignKey:ProductID"`
}
