package response

// WebhookAck is the only body the payment provider ever receives.
type WebhookAck struct {
	Success bool `json:"success"`
}
