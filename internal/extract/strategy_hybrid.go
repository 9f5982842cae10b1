package extract

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
	"github.com/sugarloafbakes/orderpipe/internal/validate"
)

// HybridStrategy runs the rules first and uses the LLM strictly as a
// gap-filler: only when the deterministic pass hard-fails or leaves
// validation issues does the AI leg run, and merged values never overwrite
// non-empty deterministic ones.
type HybridStrategy struct {
	ai        *AIStrategy
	validator *validate.Validator
	log       *slog.Logger
}

func NewHybridStrategy(ai *AIStrategy, v *validate.Validator, logger *slog.Logger) *HybridStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &HybridStrategy{ai: ai, validator: v, log: logger}
}

func (s *HybridStrategy) Method() constants.ExtractionMethod {
	return constants.MethodHybrid
}

func (s *HybridStrategy) Extract(ctx context.Context, ev *entity.WebhookEvent) (entity.ExtractionOutcome, error) {
	start := time.Now()

	det, err := ExtractOrder(ev.Shop, ev.Payload)
	if err != nil {
		var extractionErr *ExtractionError
		if !errors.As(err, &extractionErr) {
			return entity.ExtractionOutcome{}, err
		}
		// Deterministic path cannot handle this payload shape at all;
		// fall back to pure AI extraction for the record.
		s.log.Warn("extract.hybrid.deterministic_failed", "webhook_id", ev.ID, "shop", ev.Shop, "error", err)
		order, cost, aiErr := s.ai.extract(ctx, ev)
		if aiErr != nil {
			return entity.ExtractionOutcome{}, aiErr
		}
		return entity.ExtractionOutcome{
			Order:            order,
			Method:           constants.MethodHybrid,
			AIUsed:           true,
			Corrections:      []string{"Recovered via AI after deterministic extraction failed: " + extractionErr.Reason},
			ValidationIssues: s.validator.Validate(order),
			Elapsed:          time.Since(start),
			EstimatedCostUSD: cost,
		}, nil
	}

	issues := s.validator.Validate(det)
	if len(issues) == 0 {
		return entity.ExtractionOutcome{
			Order:   det,
			Method:  constants.MethodHybrid,
			Elapsed: time.Since(start),
		}, nil
	}

	s.log.Info("extract.hybrid.gap_fill", "webhook_id", ev.ID, "order_number", det.OrderNumber, "issues", issues)

	aiOrder, cost, err := s.ai.extract(ctx, ev)
	if err != nil {
		// The deterministic result stays intact but the record surfaces the
		// collaborator failure so it can be retried.
		return entity.ExtractionOutcome{}, err
	}

	merged, corrections := Merge(det, aiOrder)

	return entity.ExtractionOutcome{
		Order:            merged,
		Method:           constants.MethodHybrid,
		AIUsed:           true,
		Corrections:      corrections,
		ValidationIssues: s.validator.Validate(merged),
		Elapsed:          time.Since(start),
		EstimatedCostUSD: cost,
	}, nil
}
