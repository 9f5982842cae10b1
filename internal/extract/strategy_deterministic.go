package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
	"github.com/sugarloafbakes/orderpipe/internal/validate"
)

// DeterministicStrategy runs the rule-based extractor alone. Validation
// findings are attached to the outcome but do not block emission.
type DeterministicStrategy struct {
	validator *validate.Validator
	log       *slog.Logger
}

func NewDeterministicStrategy(v *validate.Validator, logger *slog.Logger) *DeterministicStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeterministicStrategy{validator: v, log: logger}
}

func (s *DeterministicStrategy) Method() constants.ExtractionMethod {
	return constants.MethodDeterministic
}

func (s *DeterministicStrategy) Extract(_ context.Context, ev *entity.WebhookEvent) (entity.ExtractionOutcome, error) {
	start := time.Now()

	order, err := ExtractOrder(ev.Shop, ev.Payload)
	if err != nil {
		s.log.Error("extract.deterministic.failed", "webhook_id", ev.ID, "shop", ev.Shop, "error", err)
		return entity.ExtractionOutcome{}, err
	}

	issues := s.validator.Validate(order)
	if len(issues) > 0 {
		s.log.Warn("extract.deterministic.issues", "webhook_id", ev.ID, "order_number", order.OrderNumber, "issues", issues)
	}

	return entity.ExtractionOutcome{
		Order:            order,
		Method:           constants.MethodDeterministic,
		AIUsed:           false,
		ValidationIssues: issues,
		Elapsed:          time.Since(start),
	}, nil
}
