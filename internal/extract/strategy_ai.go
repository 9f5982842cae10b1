package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
	"github.com/sugarloafbakes/orderpipe/internal/llm"
	"github.com/sugarloafbakes/orderpipe/internal/validate"
)

// AIStrategy extracts an order entirely through the injected LLM
// collaborator. One round trip per event; retries, if any, belong to the
// orchestrator.
type AIStrategy struct {
	completer llm.Completer
	model     string
	validator *validate.Validator
	log       *slog.Logger
}

func NewAIStrategy(completer llm.Completer, model string, v *validate.Validator, logger *slog.Logger) *AIStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &AIStrategy{completer: completer, model: model, validator: v, log: logger}
}

func (s *AIStrategy) Method() constants.ExtractionMethod {
	return constants.MethodAI
}

func (s *AIStrategy) Extract(ctx context.Context, ev *entity.WebhookEvent) (entity.ExtractionOutcome, error) {
	start := time.Now()

	order, cost, err := s.extract(ctx, ev)
	if err != nil {
		return entity.ExtractionOutcome{}, err
	}

	issues := s.validator.Validate(order)
	if len(issues) > 0 {
		s.log.Warn("extract.ai.issues", "webhook_id", ev.ID, "order_number", order.OrderNumber, "issues", issues)
	}

	return entity.ExtractionOutcome{
		Order:            order,
		Method:           constants.MethodAI,
		AIUsed:           true,
		ValidationIssues: issues,
		Elapsed:          time.Since(start),
		EstimatedCostUSD: cost,
	}, nil
}

// extract performs the prompt -> complete -> parse round trip. Shared with
// the hybrid strategy's gap-fill leg.
func (s *AIStrategy) extract(ctx context.Context, ev *entity.WebhookEvent) (entity.Order, float64, error) {
	prompt := llm.BuildExtractionPrompt(ev.Payload)

	reply, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.log.Error("extract.ai.call_failed", "webhook_id", ev.ID, "shop", ev.Shop, "error", err)
		return entity.Order{}, 0, err
	}
	cost := llm.EstimateCostUSD(s.model, len(prompt), len(reply))

	order, fixes, err := llm.ParseOrderReply(ev.Shop, reply)
	if err != nil {
		s.log.Error("extract.ai.parse_failed", "webhook_id", ev.ID, "shop", ev.Shop, "error", err)
		return entity.Order{}, cost, err
	}
	if len(fixes) > 0 {
		s.log.Warn("extract.ai.sanitized", "webhook_id", ev.ID, "fixes", fixes)
	}
	if len(order.Items) == 0 {
		return entity.Order{}, cost, &ExtractionError{Reason: "AI reply contains no items"}
	}
	return order, cost, nil
}
