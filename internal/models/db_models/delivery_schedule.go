package db_models

import (
	"github.com/google/uuid"
)

// DeliverySchedule is a recurring weekly delivery window. ScheduledTime is
// the normalized text form ("HH:MM" or "HH:MM-HH:MM"); overlap logic works
// on the parsed slot, not this string. The unique index is the backstop for
// concurrent inserts that both passed validation.
type DeliverySchedule struct {
	BaseModel
	SubscriptionID uuid.UUID `gorm:"index;uniqueIndex:ux_schedule_slot,priority:1"`
	DayOfWeek      int       `gorm:"uniqueIndex:ux_schedule_slot,priority:2"` // 1=Monday .. 7=Sunday
	ScheduledTime  string    `gorm:"size:16;uniqueIndex:ux_schedule_slot,priority:3"`

	Subscription Subscription `gorm:"foreignKey:SubscriptionID"`
}
