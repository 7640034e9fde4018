package models

// CheckoutRequest carries the shipping form and payment selection for
// one checkout attempt. All fields except Reference are required —
// validation failures happen before any network call.
type CheckoutRequest struct {
	Name          string `json:"name" binding:"required" example:"Maria Silva"`
	Phone         string `json:"phone" binding:"required" example:"(11) 98888-7777"`
	Street        string `json:"street" binding:"required" example:"Rua Augusta"`
	Number        string `json:"number" binding:"required" example:"1500"`
	Neighborhood  string `json:"neighborhood" binding:"required" example:"Consolação"`
	City          string `json:"city" binding:"required" example:"São Paulo"`
	Reference     string `json:"reference" example:"Próximo ao metrô"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=credit_card pix delivery"`
	ClientID      *int64 `json:"client_id"`
}
