package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/gen/ent"
	"github.com/sugarloafbakes/orderpipe/gen/ent/webhookevent"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

// ErrNotPending is returned when a status update targets a row that is no
// longer pending. The storage guard is what makes record processing
// at-most-once; callers treat it as "someone else got here first".
var ErrNotPending = errors.New("webhook event is not pending")

type WebhookRepository interface {
	Insert(ctx context.Context, shop string, payload json.RawMessage, receivedAt time.Time) (*entity.WebhookEvent, error)
	GetByID(ctx context.Context, shop string, id uuid.UUID) (*entity.WebhookEvent, error)
	ListPending(ctx context.Context, shop string, limit int) ([]*entity.WebhookEvent, error)
	PendingShops(ctx context.Context) ([]string, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkError(ctx context.Context, id uuid.UUID, message string) error
	Retry(ctx context.Context, shop string, id uuid.UUID) (bool, error)
	Stats(ctx context.Context) (entity.InboxStats, error)
}

type webhookRepository struct {
	ent *ent.Client
	log *slog.Logger
}

func NewWebhookRepository(entc *ent.Client, logger *slog.Logger) WebhookRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &webhookRepository{ent: entc, log: logger}
}

func (r *webhookRepository) Insert(ctx context.Context, shop string, payload json.RawMessage, receivedAt time.Time) (*entity.WebhookEvent, error) {
	row, err := r.ent.WebhookEvent.Create().
		SetShop(shop).
		SetPayload(payload).
		SetReceivedAt(receivedAt).
		Save(ctx)
	if err != nil {
		r.log.Error("webhook insert failed", "shop", shop, "error", err)
		return nil, err
	}
	return toWebhookEvent(row), nil
}

func (r *webhookRepository) GetByID(ctx context.Context, shop string, id uuid.UUID) (*entity.WebhookEvent, error) {
	row, err := r.ent.WebhookEvent.Query().
		Where(webhookevent.ID(id), webhookevent.Shop(shop)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toWebhookEvent(row), nil
}

func (r *webhookRepository) ListPending(ctx context.Context, shop string, limit int) ([]*entity.WebhookEvent, error) {
	q := r.ent.WebhookEvent.Query().
		Where(webhookevent.Processed(false), webhookevent.ErrorMessageIsNil())
	if shop != "" {
		q = q.Where(webhookevent.Shop(shop))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.Order(ent.Asc(webhookevent.FieldReceivedAt)).All(ctx)
	if err != nil {
		r.log.Error("webhook list pending failed", "shop", shop, "error", err)
		return nil, err
	}
	out := make([]*entity.WebhookEvent, len(rows))
	for i, row := range rows {
		out[i] = toWebhookEvent(row)
	}
	return out, nil
}

func (r *webhookRepository) PendingShops(ctx context.Context) ([]string, error) {
	var shops []string
	err := r.ent.WebhookEvent.Query().
		Where(webhookevent.Processed(false), webhookevent.ErrorMessageIsNil()).
		Unique(true).
		Select(webhookevent.FieldShop).
		Scan(ctx, &shops)
	if err != nil {
		return nil, err
	}
	return shops, nil
}

// MarkProcessed flips the row to processed. The processed=false predicate is
// the at-most-once guard: a second runner updating the same row sees zero
// affected rows and backs off.
func (r *webhookRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.WebhookEvent.Update().
		Where(webhookevent.ID(id), webhookevent.Processed(false)).
		SetProcessed(true).
		SetProcessedAt(time.Now()).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.log.Error("webhook mark processed failed", "webhook_id", id, "error", err)
		return err
	}
	if n == 0 {
		return ErrNotPending
	}
	r.log.Info("webhook marked processed", "webhook_id", id)
	return nil
}

// MarkError records the failure and leaves the row unprocessed so a retry
// can pick it up after the error is cleared.
func (r *webhookRepository) MarkError(ctx context.Context, id uuid.UUID, message string) error {
	n, err := r.ent.WebhookEvent.Update().
		Where(webhookevent.ID(id), webhookevent.Processed(false)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("webhook mark error failed", "webhook_id", id, "error", err)
		return err
	}
	if n == 0 {
		return ErrNotPending
	}
	r.log.Warn("webhook marked error", "webhook_id", id, "message", message)
	return nil
}

// Retry clears the error so the record becomes eligible for the next batch
// run. Returns false when there was nothing to retry.
func (r *webhookRepository) Retry(ctx context.Context, shop string, id uuid.UUID) (bool, error) {
	n, err := r.ent.WebhookEvent.Update().
		Where(
			webhookevent.ID(id),
			webhookevent.Shop(shop),
			webhookevent.Processed(false),
			webhookevent.ErrorMessageNotNil(),
		).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.log.Error("webhook retry failed", "webhook_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.log.Info("webhook error cleared for retry", "webhook_id", id, "shop", shop)
	}
	return n > 0, nil
}

func (r *webhookRepository) Stats(ctx context.Context) (entity.InboxStats, error) {
	rows, err := r.ent.WebhookEvent.Query().
		Select(webhookevent.FieldShop, webhookevent.FieldProcessed, webhookevent.FieldErrorMessage).
		All(ctx)
	if err != nil {
		return entity.InboxStats{}, err
	}

	stats := entity.InboxStats{PerShop: make(map[string]entity.ShopStats)}
	for _, row := range rows {
		s := stats.PerShop[row.Shop]
		switch toWebhookEvent(row).Status() {
		case constants.WebhookStatusProcessed:
			s.Processed++
			stats.Total.Processed++
		case constants.WebhookStatusError:
			s.Errors++
			stats.Total.Errors++
		default:
			s.Pending++
			stats.Total.Pending++
		}
		stats.PerShop[row.Shop] = s
	}
	return stats, nil
}

func toWebhookEvent(row *ent.WebhookEvent) *entity.WebhookEvent {
	return &entity.WebhookEvent{
		ID:           row.ID,
		Shop:         row.Shop,
		Payload:      row.Payload,
		ReceivedAt:   row.ReceivedAt,
		Processed:    row.Processed,
		ProcessedAt:  row.ProcessedAt,
		ErrorMessage: row.ErrorMessage,
	}
}
