package dto

// CreatePaymentSessionRequest opens a hosted checkout for one batch. The
// price is intentionally absent: it is re-read server-side from the batch.
type CreatePaymentSessionRequest struct {
	BatchID string `json:"batch_id" validate:"required"`
}

// CreatePaymentSessionResponse carries the gateway redirect URL.
type CreatePaymentSessionResponse struct {
	URL string `json:"url"`
}
