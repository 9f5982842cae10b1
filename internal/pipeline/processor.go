package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/common"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
	"github.com/sugarloafbakes/orderpipe/internal/extract"
	"github.com/sugarloafbakes/orderpipe/internal/repository"
	"github.com/sugarloafbakes/orderpipe/internal/split"
)

// Result summarises the processing of one webhook record.
type Result struct {
	WebhookID        uuid.UUID                  `json:"webhook_id"`
	OrdersCreated    int                        `json:"orders_created"`
	Orders           []entity.SplitOrder        `json:"orders,omitempty"`
	Method           constants.ExtractionMethod `json:"method"`
	AIUsed           bool                       `json:"ai_used"`
	Corrections      []string                   `json:"corrections,omitempty"`
	ValidationIssues []string                   `json:"validation_issues,omitempty"`
	ProcessingTime   time.Duration              `json:"processing_time"`
	EstimatedCostUSD float64                    `json:"estimated_cost_usd,omitempty"`
}

// ShopBatch counts one shop's outcomes within a batch run. A shop whose
// records all failed still shows up here with its failure count.
type ShopBatch struct {
	Processed     int `json:"processed"`
	Failed        int `json:"failed"`
	OrdersCreated int `json:"orders_created"`
}

// BatchResult aggregates a batch run: totals plus a per-shop breakdown.
type BatchResult struct {
	Processed int                  `json:"processed"`
	Failed    int                  `json:"failed"`
	Skipped   int                  `json:"skipped"`
	Orders    []entity.SplitOrder  `json:"orders,omitempty"`
	PerShop   map[string]ShopBatch `json:"per_shop,omitempty"`
}

// Processor drives a webhook record from pending through extraction,
// splitting and persistence. Each record is handled independently: a
// failure marks that record errored and never aborts a batch.
type Processor struct {
	log           *slog.Logger
	webhooks      repository.WebhookRepository
	orders        repository.OrderRepository
	strategies    map[constants.ExtractionMethod]extract.Strategy
	defaultMethod constants.ExtractionMethod
}

func NewProcessor(
	webhooks repository.WebhookRepository,
	orders repository.OrderRepository,
	strategies []extract.Strategy,
	defaultMethod constants.ExtractionMethod,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	byMethod := make(map[constants.ExtractionMethod]extract.Strategy, len(strategies))
	for _, s := range strategies {
		byMethod[s.Method()] = s
	}
	return &Processor{
		log:           logger,
		webhooks:      webhooks,
		orders:        orders,
		strategies:    byMethod,
		defaultMethod: defaultMethod,
	}
}

func (p *Processor) strategyFor(method constants.ExtractionMethod) (extract.Strategy, error) {
	if method == "" {
		method = p.defaultMethod
	}
	s, ok := p.strategies[method]
	if !ok {
		return nil, fmt.Errorf("no strategy registered for method %q", method)
	}
	return s, nil
}

// Process runs the full pipeline for one webhook record. Records already
// marked processed are a no-op that reports zero orders. Any stage failure
// marks the record errored with the failure message and returns the error.
func (p *Processor) Process(ctx context.Context, shop string, id uuid.UUID, method constants.ExtractionMethod) (Result, error) {
	started := time.Now()
	res := Result{WebhookID: id}
	log := p.logger(ctx)

	ev, err := p.webhooks.GetByID(ctx, shop, id)
	if err != nil {
		return res, err
	}
	if ev.Processed {
		log.Info("pipeline.skip_processed", "shop", shop, "webhook_id", id)
		res.ProcessingTime = time.Since(started)
		return res, nil
	}

	strategy, err := p.strategyFor(method)
	if err != nil {
		return res, p.fail(ctx, id, res, err)
	}
	res.Method = strategy.Method()

	m := NewMachine()
	log.Info("pipeline.start", "shop", shop, "webhook_id", id, "method", strategy.Method())

	must(m.To(StateExtracting))
	outcome, err := strategy.Extract(ctx, ev)
	if err != nil {
		must(m.To(StateError))
		return res, p.fail(ctx, id, res, err)
	}
	res.AIUsed = outcome.AIUsed
	res.Corrections = outcome.Corrections
	res.ValidationIssues = outcome.ValidationIssues
	res.EstimatedCostUSD = outcome.EstimatedCostUSD

	must(m.To(StateValidating))
	if outcome.AIUsed {
		must(m.To(StateAIFilling))
	}

	must(m.To(StateSplitting))
	splits, err := split.Split(outcome.Order)
	if err != nil {
		must(m.To(StateError))
		return res, p.fail(ctx, id, res, err)
	}

	must(m.To(StatePersisting))
	if _, err := p.orders.CreateWithItems(ctx, splits); err != nil {
		must(m.To(StateError))
		return res, p.fail(ctx, id, res, err)
	}
	if err := p.webhooks.MarkProcessed(ctx, id); err != nil {
		// The orders are committed but the inbox row could not be flipped;
		// surface the error so the caller can retry the mark.
		must(m.To(StateError))
		return res, err
	}
	must(m.To(StateProcessed))

	res.Orders = splits
	res.OrdersCreated = len(splits)
	res.ProcessingTime = time.Since(started)
	log.Info("pipeline.done",
		"shop", shop,
		"webhook_id", id,
		"orders_created", res.OrdersCreated,
		"method", res.Method,
		"ai_used", res.AIUsed,
		"elapsed", res.ProcessingTime,
	)
	return res, nil
}

// fail records the error message on the inbox row and returns the original
// error. A record that was processed concurrently keeps its processed state.
func (p *Processor) fail(ctx context.Context, id uuid.UUID, res Result, cause error) error {
	log := p.logger(ctx)
	log.Error("pipeline.error", "webhook_id", id, "method", res.Method, "error", cause)
	if err := p.webhooks.MarkError(ctx, id, cause.Error()); err != nil && !errors.Is(err, repository.ErrNotPending) {
		log.Error("pipeline.mark_error_failed", "webhook_id", id, "error", err)
	}
	return cause
}

// logger attaches the request ID carried by the context, when there is one.
func (p *Processor) logger(ctx context.Context) *slog.Logger {
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		return p.log.With("request_id", rid)
	}
	return p.log
}

// ProcessBatch drains pending records for one shop, or for every shop with
// pending work when shop is empty. Per-record failures are counted and
// logged but never stop the batch.
func (p *Processor) ProcessBatch(ctx context.Context, shop string, limit int, method constants.ExtractionMethod) (BatchResult, error) {
	res := BatchResult{PerShop: map[string]ShopBatch{}}

	shops := []string{shop}
	if shop == "" {
		var err error
		shops, err = p.webhooks.PendingShops(ctx)
		if err != nil {
			return res, err
		}
	}

	for _, s := range shops {
		pending, err := p.webhooks.ListPending(ctx, s, limit)
		if err != nil {
			return res, err
		}
		sb := res.PerShop[s]
		for _, ev := range pending {
			if err := ctx.Err(); err != nil {
				res.PerShop[s] = sb
				return res, err
			}
			one, err := p.Process(ctx, s, ev.ID, method)
			if err != nil {
				res.Failed++
				sb.Failed++
				continue
			}
			if one.OrdersCreated == 0 && one.Orders == nil {
				res.Skipped++
				continue
			}
			res.Processed++
			sb.Processed++
			sb.OrdersCreated += one.OrdersCreated
			res.Orders = append(res.Orders, one.Orders...)
		}
		res.PerShop[s] = sb
	}
	p.log.Info("pipeline.batch_done",
		"shops", len(shops),
		"processed", res.Processed,
		"failed", res.Failed,
		"skipped", res.Skipped,
	)
	return res, nil
}

// Retry clears the error on a failed record so the next batch picks it up.
// It reports whether a record was actually reset.
func (p *Processor) Retry(ctx context.Context, shop string, id uuid.UUID) (bool, error) {
	return p.webhooks.Retry(ctx, shop, id)
}

// Stats reports inbox counts per shop.
func (p *Processor) Stats(ctx context.Context) (entity.InboxStats, error) {
	return p.webhooks.Stats(ctx)
}

// must panics on an impossible transition. The table is exercised by tests;
// a panic here means the pipeline code itself is wrong, not the input.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
