package extract

import (
	"context"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

// Strategy turns one webhook event into a canonical order. The three
// implementations (deterministic, ai, hybrid) share this contract; the
// orchestrator picks one by configuration value.
type Strategy interface {
	Method() constants.ExtractionMethod
	Extract(ctx context.Context, ev *entity.WebhookEvent) (entity.ExtractionOutcome, error)
}
