package response_models

import "github.com/google/uuid"

type ScheduleResponse struct {
	ID             uuid.UUID `json:"id"`
	SubscriptionID uuid.UUID `json:"subscription_id"`
	DayOfWeek      int       `json:"day_of_week"`
	ScheduledTime  string    `json:"scheduled_time"`
}
