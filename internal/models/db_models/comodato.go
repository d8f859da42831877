package db_models

import (
	"time"

	"github.com/google/uuid"
)

type ComodatoStatus string

const (
	ComodatoStatusActive   ComodatoStatus = "ACTIVE"
	ComodatoStatusReturned ComodatoStatus = "RETURNED"
	ComodatoStatusLost     ComodatoStatus = "LOST"
)

// Comodato records returnable equipment on loan to a customer. Duplicate
// prevention is scoped to the subscription: the same product may be on loan
// to the same customer under two different subscriptions at once. The
// composite index is the backstop for the check-then-create race.
type Comodato struct {
	BaseModel
	CustomerID     uuid.UUID  `gorm:"index"`
	ProductID      uuid.UUID  `gorm:"index:idx_comodato_active,priority:2"`
	SubscriptionID *uuid.UUID `gorm:"index:idx_comodato_active,priority:1"`

	Quantity           int        `gorm:"default:1"`
	DeliveryDate       time.Time  `gorm:"type:date;not null"`
	ExpectedReturnDate time.Time  `gorm:"type:date"`
	ReturnDate         *time.Time `gorm:"type:date"`

	Status   ComodatoStatus `gorm:"type:varchar(16);default:'ACTIVE';index:idx_comodato_active,priority:3"`
	IsActive bool           `gorm:"default:true;index:idx_comodato_active,priority:4"`

	DepositMinor    int64
	MonthlyFeeMinor int64

	ArticleDescription string
	ArticleBrand       string
	ArticleModel       string
	ContractImagePath  string

	Notes string

	Customer     Customer      `gorm:"foreignKey:CustomerID"`
	Product      Product       `gorm:"foreignKey:ProductID"`
	Subscription *Subscription `gorm:"foreignKey:SubscriptionID"`
}
