package response_models

import "github.com/google/uuid"

type CycleResponse struct {
	ID             uuid.UUID `json:"id"`
	SubscriptionID uuid.UUID `json:"subscription_id"`
	CycleStart     string    `json:"cycle_start"`
	CycleEnd       string    `json:"cycle_end"`
	TotalAmount    int64     `json:"total_amount"`
	PaidAmount     int64     `json:"paid_amount"`
	PendingBalance int64     `json:"pending_balance"`
	CreditBalance  int64     `json:"credit_balance"`
	PaymentStatus  string    `json:"payment_status"`
	PaymentDueDate string    `json:"payment_due_date"`
	IsFirstCycle   bool      `json:"is_first_cycle"`
}
