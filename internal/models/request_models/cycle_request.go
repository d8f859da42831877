package request_models

type CreateCycleRequest struct {
	SubscriptionID string `json:"subscription_id" binding:"required"`
	CycleStart     string `json:"cycle_start" binding:"required"` // "2006-01-02"
	CycleEnd       string `json:"cycle_end" binding:"required"`
}
