package constants

// WebhookStatus describes where a webhook event sits in its lifecycle. It is
// derived from the processed flag and error message rather than stored.
type WebhookStatus string

const (
	WebhookStatusPending   WebhookStatus = "PENDING"   // received, not yet processed
	WebhookStatusProcessed WebhookStatus = "PROCESSED" // orders emitted and persisted
	WebhookStatusError     WebhookStatus = "ERROR"     // failed; error_message set, retryable
)
