package dto

// CheckoutResponse: response for POST /api/payments/create-checkout
type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
	Reference   string `json:"reference"`
}

// PaymentStatusResponse: response for GET /api/payments/status/:id
type PaymentStatusResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// WebhookRequest: payload posted back by the payment provider
type WebhookRequest struct {
	Reference string `json:"reference" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// UploadResponse: response for the multipart upload endpoints
type UploadResponse struct {
	FileURL  string `json:"file_url"`
	FileSize int64  `json:"file_size"`
}
