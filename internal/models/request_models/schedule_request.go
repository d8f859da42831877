package request_models

type CreateScheduleRequest struct {
	SubscriptionID string `json:"subscription_id" binding:"required"`
	DayOfWeek      int    `json:"day_of_week" binding:"required"` // 1=Monday .. 7=Sunday
	ScheduledTime  string `json:"scheduled_time" binding:"required"`
}

// UpdateScheduleRequest carries only the fields being changed; omitted
// fields keep the existing record's values.
type UpdateScheduleRequest struct {
	DayOfWeek     *int    `json:"day_of_week"`
	ScheduledTime *string `json:"scheduled_time"`
}
