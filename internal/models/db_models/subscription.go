package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "ACTIVE"
	SubStatusPaused    SubscriptionStatus = "PAUSED"
	SubStatusCancelled SubscriptionStatus = "CANCELLED"
	SubStatusExpired   SubscriptionStatus = "EXPIRED"
)

type Subscription struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"index"`
	PlanID     uuid.UUID `gorm:"index"`

	Status    SubscriptionStatus `gorm:"type:varchar(16);index"`
	StartDate time.Time          `gorm:"type:date;not null"`
	EndDate   *time.Time         `gorm:"type:date"`

	// Free-form human notes only. Structured delivery preferences live in
	// DeliveryPreferences, never serialized into Notes.
	Notes               *string
	DeliveryPreferences datatypes.JSON `gorm:"type:jsonb"`

	Customer Customer         `gorm:"foreignKey:CustomerID"`
	Plan     SubscriptionPlan `gorm:"foreignKey:PlanID"`
}
