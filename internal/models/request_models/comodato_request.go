package request_models

type FirstCycleComodatoRequest struct {
	SubscriptionID string `json:"subscription_id" binding:"required"`
	DeliveryDate   string `json:"delivery_date" binding:"required"` // "2006-01-02"
}

type ReturnComodatoRequest struct {
	ReturnDate string `json:"return_date"` // defaults to today when empty
}

type ValidateComodatosRequest struct {
	CustomerID     string   `json:"customer_id" binding:"required"`
	ProductIDs     []string `json:"product_ids" binding:"required"`
	SubscriptionID *string  `json:"subscription_id"`
}
