package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/sugarloafbakes/orderpipe/constants"
)

// WebhookEvent represents an inbox row for data transfer between layers.
// The pipeline only reads the payload and requests status updates; the row
// itself is owned by the storage layer.
type WebhookEvent struct {
	ID           uuid.UUID       `json:"id"`
	Shop         string          `json:"shop"`
	Payload      json.RawMessage `json:"payload"`
	ReceivedAt   time.Time       `json:"received_at"`
	Processed    bool            `json:"processed"`
	ProcessedAt  *time.Time      `json:"processed_at,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
}

// Status derives the lifecycle status from the processed flag and error
// message. A processed row is always PROCESSED even if an older error
// message survived a retry.
func (e *WebhookEvent) Status() constants.WebhookStatus {
	switch {
	case e.Processed:
		return constants.WebhookStatusProcessed
	case e.ErrorMessage != nil:
		return constants.WebhookStatusError
	default:
		return constants.WebhookStatusPending
	}
}
