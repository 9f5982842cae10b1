package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sugarloafbakes/orderpipe/constants"
)

func TestWebhookEventStatus(t *testing.T) {
	msg := "boom"
	now := time.Now()

	tests := []struct {
		name string
		ev   WebhookEvent
		want constants.WebhookStatus
	}{
		{"fresh row is pending", WebhookEvent{}, constants.WebhookStatusPending},
		{"error message set", WebhookEvent{ErrorMessage: &msg}, constants.WebhookStatusError},
		{"processed", WebhookEvent{Processed: true, ProcessedAt: &now}, constants.WebhookStatusProcessed},
		{"processed wins over stale error", WebhookEvent{Processed: true, ErrorMessage: &msg}, constants.WebhookStatusProcessed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ev.Status())
		})
	}
}
