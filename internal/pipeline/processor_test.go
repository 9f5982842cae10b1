package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/common"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
	"github.com/sugarloafbakes/orderpipe/internal/extract"
	"github.com/sugarloafbakes/orderpipe/internal/repository"
)

// fakeInbox is an in-memory WebhookRepository.
type fakeInbox struct {
	events map[uuid.UUID]*entity.WebhookEvent
}

func newFakeInbox() *fakeInbox {
	return &fakeInbox{events: map[uuid.UUID]*entity.WebhookEvent{}}
}

func (f *fakeInbox) add(shop, payload string) *entity.WebhookEvent {
	ev := &entity.WebhookEvent{
		ID:         uuid.New(),
		Shop:       shop,
		Payload:    []byte(payload),
		ReceivedAt: time.Now(),
	}
	f.events[ev.ID] = ev
	return ev
}

func (f *fakeInbox) Insert(_ context.Context, shop string, payload json.RawMessage, receivedAt time.Time) (*entity.WebhookEvent, error) {
	ev := &entity.WebhookEvent{ID: uuid.New(), Shop: shop, Payload: payload, ReceivedAt: receivedAt}
	f.events[ev.ID] = ev
	return ev, nil
}

func (f *fakeInbox) GetByID(_ context.Context, shop string, id uuid.UUID) (*entity.WebhookEvent, error) {
	ev, ok := f.events[id]
	if !ok || ev.Shop != shop {
		return nil, errors.New("not found")
	}
	copied := *ev
	return &copied, nil
}

func (f *fakeInbox) ListPending(_ context.Context, shop string, limit int) ([]*entity.WebhookEvent, error) {
	var out []*entity.WebhookEvent
	for _, ev := range f.events {
		if ev.Processed || ev.ErrorMessage != nil {
			continue
		}
		if shop != "" && ev.Shop != shop {
			continue
		}
		copied := *ev
		out = append(out, &copied)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeInbox) PendingShops(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var shops []string
	for _, ev := range f.events {
		if !ev.Processed && ev.ErrorMessage == nil && !seen[ev.Shop] {
			seen[ev.Shop] = true
			shops = append(shops, ev.Shop)
		}
	}
	return shops, nil
}

func (f *fakeInbox) MarkProcessed(_ context.Context, id uuid.UUID) error {
	ev, ok := f.events[id]
	if !ok || ev.Processed {
		return repository.ErrNotPending
	}
	now := time.Now()
	ev.Processed = true
	ev.ProcessedAt = &now
	ev.ErrorMessage = nil
	return nil
}

func (f *fakeInbox) MarkError(_ context.Context, id uuid.UUID, message string) error {
	ev, ok := f.events[id]
	if !ok || ev.Processed {
		return repository.ErrNotPending
	}
	ev.ErrorMessage = &message
	return nil
}

func (f *fakeInbox) Retry(_ context.Context, shop string, id uuid.UUID) (bool, error) {
	ev, ok := f.events[id]
	if !ok || ev.Shop != shop || ev.Processed || ev.ErrorMessage == nil {
		return false, nil
	}
	ev.ErrorMessage = nil
	return true, nil
}

func (f *fakeInbox) Stats(_ context.Context) (entity.InboxStats, error) {
	stats := entity.InboxStats{PerShop: map[string]entity.ShopStats{}}
	for _, ev := range f.events {
		st := stats.PerShop[ev.Shop]
		switch ev.Status() {
		case constants.WebhookStatusProcessed:
			st.Processed++
			stats.Total.Processed++
		case constants.WebhookStatusError:
			st.Errors++
			stats.Total.Errors++
		default:
			st.Pending++
			stats.Total.Pending++
		}
		stats.PerShop[ev.Shop] = st
	}
	return stats, nil
}

// fakeOrders is an in-memory OrderRepository.
type fakeOrders struct {
	created [][]entity.SplitOrder
	failing bool
}

func (f *fakeOrders) CreateWithItems(_ context.Context, orders []entity.SplitOrder) ([]uuid.UUID, error) {
	if f.failing {
		return nil, errors.New("db write failed")
	}
	f.created = append(f.created, orders)
	ids := make([]uuid.UUID, len(orders))
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids, nil
}

func (f *fakeOrders) ListByShop(_ context.Context, shop string, _, _ *time.Time) ([]*entity.SplitOrder, error) {
	var out []*entity.SplitOrder
	for _, batch := range f.created {
		for i := range batch {
			if batch[i].Shop == shop {
				out = append(out, &batch[i])
			}
		}
	}
	return out, nil
}

// stubStrategy returns a canned outcome or error.
type stubStrategy struct {
	method  constants.ExtractionMethod
	outcome entity.ExtractionOutcome
	err     error
}

func (s *stubStrategy) Method() constants.ExtractionMethod { return s.method }

func (s *stubStrategy) Extract(_ context.Context, _ *entity.WebhookEvent) (entity.ExtractionOutcome, error) {
	if s.err != nil {
		return entity.ExtractionOutcome{}, s.err
	}
	return s.outcome, nil
}

func twoCakeOutcome() entity.ExtractionOutcome {
	return entity.ExtractionOutcome{
		Order: entity.Order{
			Shop:         "shop-a",
			OrderNumber:  "B21345",
			CustomerName: "Maya Chen",
			Items: []entity.OrderItem{
				{Kind: constants.ItemKindPrimary, Title: "Chocolate Fudge Cake", Quantity: 1, Price: decimal.RequireFromString("49.99")},
				{Kind: constants.ItemKindPrimary, Title: "Lemon Drizzle Cake", Quantity: 1, Price: decimal.RequireFromString("54.99")},
			},
		},
		Method: constants.MethodDeterministic,
	}
}

func newTestProcessor(inbox *fakeInbox, orders *fakeOrders, strategies ...extract.Strategy) *Processor {
	if len(strategies) == 0 {
		strategies = []extract.Strategy{
			&stubStrategy{method: constants.MethodDeterministic, outcome: twoCakeOutcome()},
		}
	}
	return NewProcessor(inbox, orders, strategies, constants.MethodDeterministic, nil)
}

func TestProcess_SplitsAndPersists(t *testing.T) {
	inbox := newFakeInbox()
	orders := &fakeOrders{}
	ev := inbox.add("shop-a", `{}`)

	p := newTestProcessor(inbox, orders)
	res, err := p.Process(context.Background(), "shop-a", ev.ID, "")
	require.NoError(t, err)

	assert.Equal(t, 2, res.OrdersCreated)
	require.Len(t, orders.created, 1)
	assert.Equal(t, "B21345-A", orders.created[0][0].OrderNumber)
	assert.Equal(t, "B21345-B", orders.created[0][1].OrderNumber)
	assert.True(t, inbox.events[ev.ID].Processed)
	assert.Nil(t, inbox.events[ev.ID].ErrorMessage)
}

func TestProcess_ProcessedRecordIsNoOp(t *testing.T) {
	inbox := newFakeInbox()
	orders := &fakeOrders{}
	ev := inbox.add("shop-a", `{}`)
	ev.Processed = true

	p := newTestProcessor(inbox, orders)
	res, err := p.Process(context.Background(), "shop-a", ev.ID, "")
	require.NoError(t, err)

	assert.Zero(t, res.OrdersCreated)
	assert.Empty(t, orders.created, "no orders may be written for a processed record")
}

func TestProcess_ExtractionFailureMarksError(t *testing.T) {
	inbox := newFakeInbox()
	orders := &fakeOrders{}
	ev := inbox.add("shop-a", `{}`)

	boom := errors.New("extraction exploded")
	p := newTestProcessor(inbox, orders, &stubStrategy{method: constants.MethodDeterministic, err: boom})

	_, err := p.Process(context.Background(), "shop-a", ev.ID, "")
	require.ErrorIs(t, err, boom)

	require.NotNil(t, inbox.events[ev.ID].ErrorMessage)
	assert.Contains(t, *inbox.events[ev.ID].ErrorMessage, "extraction exploded")
	assert.False(t, inbox.events[ev.ID].Processed)
	assert.Empty(t, orders.created)
}

func TestProcess_PersistFailureMarksError(t *testing.T) {
	inbox := newFakeInbox()
	orders := &fakeOrders{failing: true}
	ev := inbox.add("shop-a", `{}`)

	p := newTestProcessor(inbox, orders)
	_, err := p.Process(context.Background(), "shop-a", ev.ID, "")
	require.Error(t, err)
	require.NotNil(t, inbox.events[ev.ID].ErrorMessage)
	assert.False(t, inbox.events[ev.ID].Processed)
}

func TestProcess_UnknownMethodRejected(t *testing.T) {
	inbox := newFakeInbox()
	ev := inbox.add("shop-a", `{}`)

	p := newTestProcessor(inbox, &fakeOrders{})
	_, err := p.Process(context.Background(), "shop-a", ev.ID, constants.MethodAI)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no strategy registered")
}

func TestProcess_LogsRequestID(t *testing.T) {
	inbox := newFakeInbox()
	orders := &fakeOrders{}
	ev := inbox.add("shop-a", `{}`)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	strategy := &stubStrategy{method: constants.MethodDeterministic, outcome: twoCakeOutcome()}
	p := NewProcessor(inbox, orders, []extract.Strategy{strategy}, constants.MethodDeterministic, logger)

	ctx := common.WithRequestID(context.Background(), "req-42")
	_, err := p.Process(ctx, "shop-a", ev.ID, "")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func TestProcessBatch_IsolatesFailures(t *testing.T) {
	inbox := newFakeInbox()
	orders := &fakeOrders{}

	good := inbox.add("shop-a", `{"ok":true}`)
	bad := inbox.add("shop-a", `{"ok":false}`)

	strategy := &selectiveStrategy{failID: bad.ID, outcome: twoCakeOutcome()}
	p := NewProcessor(inbox, orders, []extract.Strategy{strategy}, constants.MethodDeterministic, nil)

	res, err := p.ProcessBatch(context.Background(), "shop-a", 0, "")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Failed)
	assert.True(t, inbox.events[good.ID].Processed)
	require.NotNil(t, inbox.events[bad.ID].ErrorMessage)
	assert.Equal(t, ShopBatch{Processed: 1, Failed: 1, OrdersCreated: 2}, res.PerShop["shop-a"])
}

func TestProcessBatch_FailingShopStaysVisible(t *testing.T) {
	inbox := newFakeInbox()
	orders := &fakeOrders{}

	inbox.add("shop-a", `{}`)
	bad := inbox.add("shop-b", `{}`)

	strategy := &selectiveStrategy{failID: bad.ID, outcome: twoCakeOutcome()}
	p := NewProcessor(inbox, orders, []extract.Strategy{strategy}, constants.MethodDeterministic, nil)

	res, err := p.ProcessBatch(context.Background(), "", 0, "")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, ShopBatch{Processed: 1, OrdersCreated: 2}, res.PerShop["shop-a"])
	assert.Equal(t, ShopBatch{Failed: 1}, res.PerShop["shop-b"])
}

// selectiveStrategy fails for one specific webhook.
type selectiveStrategy struct {
	failID  uuid.UUID
	outcome entity.ExtractionOutcome
}

func (s *selectiveStrategy) Method() constants.ExtractionMethod { return constants.MethodDeterministic }

func (s *selectiveStrategy) Extract(_ context.Context, ev *entity.WebhookEvent) (entity.ExtractionOutcome, error) {
	if ev.ID == s.failID {
		return entity.ExtractionOutcome{}, errors.New("bad payload")
	}
	return s.outcome, nil
}

func TestProcessBatch_AllShopsWhenShopEmpty(t *testing.T) {
	inbox := newFakeInbox()
	orders := &fakeOrders{}
	inbox.add("shop-a", `{}`)
	inbox.add("shop-b", `{}`)

	p := newTestProcessor(inbox, orders)
	res, err := p.ProcessBatch(context.Background(), "", 0, "")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Processed)
	assert.Zero(t, res.Failed)
}

func TestRetry_ThenReprocess(t *testing.T) {
	inbox := newFakeInbox()
	orders := &fakeOrders{}
	ev := inbox.add("shop-a", `{}`)

	failing := &stubStrategy{method: constants.MethodDeterministic, err: errors.New("transient")}
	p := NewProcessor(inbox, orders, []extract.Strategy{failing}, constants.MethodDeterministic, nil)
	_, err := p.Process(context.Background(), "shop-a", ev.ID, "")
	require.Error(t, err)
	require.NotNil(t, inbox.events[ev.ID].ErrorMessage)

	reset, err := p.Retry(context.Background(), "shop-a", ev.ID)
	require.NoError(t, err)
	assert.True(t, reset)
	assert.Nil(t, inbox.events[ev.ID].ErrorMessage)

	ok := newTestProcessor(inbox, orders)
	res, err := ok.Process(context.Background(), "shop-a", ev.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 2, res.OrdersCreated)
	assert.True(t, inbox.events[ev.ID].Processed)
}

func TestStats_Passthrough(t *testing.T) {
	inbox := newFakeInbox()
	inbox.add("shop-a", `{}`)
	done := inbox.add("shop-a", `{}`)
	done.Processed = true

	p := newTestProcessor(inbox, &fakeOrders{})
	stats, err := p.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Total.Pending)
	assert.Equal(t, 1, stats.Total.Processed)
	assert.Equal(t, 1, stats.PerShop["shop-a"].Pending)
}
