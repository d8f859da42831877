package db_models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PayStatusPending PaymentStatus = "PENDING"
	PayStatusPartial PaymentStatus = "PARTIAL"
	PayStatusPaid    PaymentStatus = "PAID"
	PayStatusOverdue PaymentStatus = "OVERDUE"
)

// SubscriptionCycle is one billing period. CycleEnd >= CycleStart; the first
// cycle of a subscription triggers comodato provisioning.
type SubscriptionCycle struct {
	BaseModel
	SubscriptionID uuid.UUID `gorm:"index"`

	CycleStart time.Time `gorm:"type:date;not null"`
	CycleEnd   time.Time `gorm:"type:date;not null"`

	TotalAmountMinor   int64 // always the plan price at creation time
	PaidAmountMinor    int64
	CreditBalanceMinor int64

	PaymentStatus  PaymentStatus `gorm:"type:varchar(16);default:'PENDING';index"`
	PaymentDueDate time.Time     `gorm:"type:date"`

	Subscription Subscription `gorm:"foreignKey:SubscriptionID"`
}

func (c *SubscriptionCycle) PendingBalanceMinor() int64 {
	return c.TotalAmountMinor - c.PaidAmountMinor
}
