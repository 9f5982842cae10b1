package extract

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
	"github.com/sugarloafbakes/orderpipe/internal/llm"
	"github.com/sugarloafbakes/orderpipe/internal/validate"
)

const aiReply = `{
	"order_number": "B21345",
	"customer_name": "Maya Chen",
	"delivery_date": "2026-03-05",
	"total_price": "52.98",
	"items": [
		{"kind": "PRIMARY", "title": "Chocolate Fudge Cake", "quantity": 1, "price": "49.99"},
		{"kind": "SECONDARY", "title": "Birthday Candle Set", "quantity": 1, "price": "2.99"}
	]
}`

func event(payload string) *entity.WebhookEvent {
	return &entity.WebhookEvent{
		ID:      uuid.New(),
		Shop:    "sugarloaf.example.com",
		Payload: []byte(payload),
	}
}

func fixedCompleter(reply string) llm.CompleterFunc {
	return func(_ context.Context, _ string) (string, error) {
		return reply, nil
	}
}

func failingCompleter(err error) llm.CompleterFunc {
	return func(_ context.Context, _ string) (string, error) {
		return "", err
	}
}

func TestAIStrategy_Extract(t *testing.T) {
	v := validate.New(validate.Config{})
	s := NewAIStrategy(fixedCompleter(aiReply), "gpt-4o-mini", v, nil)

	out, err := s.Extract(context.Background(), event(`{"name":"#B21345"}`))
	require.NoError(t, err)

	assert.Equal(t, constants.MethodAI, out.Method)
	assert.True(t, out.AIUsed)
	assert.Equal(t, "B21345", out.Order.OrderNumber)
	assert.Equal(t, "sugarloaf.example.com", out.Order.Shop)
	require.Len(t, out.Order.Items, 2)
	assert.Greater(t, out.EstimatedCostUSD, 0.0)
	assert.Empty(t, out.ValidationIssues)
}

func TestAIStrategy_CompleterFailurePropagates(t *testing.T) {
	v := validate.New(validate.Config{})
	callErr := &llm.CallError{Provider: "openai", StatusCode: 503, Cause: llm.ErrStatusNon2xx}
	s := NewAIStrategy(failingCompleter(callErr), "gpt-4o-mini", v, nil)

	_, err := s.Extract(context.Background(), event(`{}`))
	require.Error(t, err)
	var ce *llm.CallError
	assert.ErrorAs(t, err, &ce)
}

func TestAIStrategy_UnparseableReply(t *testing.T) {
	v := validate.New(validate.Config{})
	s := NewAIStrategy(fixedCompleter("sorry, I can't help with that"), "gpt-4o-mini", v, nil)

	_, err := s.Extract(context.Background(), event(`{}`))
	require.Error(t, err)
	var pe *llm.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestAIStrategy_ReplyWithoutItemsRejected(t *testing.T) {
	v := validate.New(validate.Config{})
	// schema requires items, so a reply missing them is a schema mismatch
	s := NewAIStrategy(fixedCompleter(`{"order_number":"B1","total_price":"10.00","items":[]}`), "m", v, nil)

	_, err := s.Extract(context.Background(), event(`{}`))
	require.Error(t, err)
}

func TestHybridStrategy_CleanDeterministicSkipsAI(t *testing.T) {
	v := validate.New(validate.Config{})
	called := false
	ai := NewAIStrategy(llm.CompleterFunc(func(_ context.Context, _ string) (string, error) {
		called = true
		return aiReply, nil
	}), "m", v, nil)
	s := NewHybridStrategy(ai, v, nil)

	out, err := s.Extract(context.Background(), event(fullPayload))
	require.NoError(t, err)

	assert.False(t, called, "AI must not run when the deterministic pass is clean")
	assert.False(t, out.AIUsed)
	assert.Equal(t, constants.MethodHybrid, out.Method)
	assert.Equal(t, "B21345", out.Order.OrderNumber)
	assert.Zero(t, out.EstimatedCostUSD)
}

func TestHybridStrategy_GapFillRunsAI(t *testing.T) {
	// valid shape but no customer name anywhere
	payload := `{
		"name": "#B21345",
		"total_price": "52.98",
		"note_attributes": [{"name": "Delivery Date and Time", "value": "2026-03-05 between 2:00 PM and 4:00 PM"}],
		"line_items": [
			{"title": "Chocolate Fudge Cake", "quantity": 1, "price": "49.99"},
			{"title": "Birthday Candle Set", "quantity": 1, "price": "2.99"}
		]
	}`

	v := validate.New(validate.Config{})
	ai := NewAIStrategy(fixedCompleter(aiReply), "m", v, nil)
	s := NewHybridStrategy(ai, v, nil)

	out, err := s.Extract(context.Background(), event(payload))
	require.NoError(t, err)

	assert.True(t, out.AIUsed)
	assert.Equal(t, "Maya Chen", out.Order.CustomerName)
	assert.Contains(t, out.Corrections, "Filled customer_name from AI")
	assert.Empty(t, out.ValidationIssues, "merged order should validate clean")
	// deterministic values survive the merge
	assert.Equal(t, "52.98", out.Order.TotalPrice.StringFixed(2))
}

func TestHybridStrategy_DeterministicHardFailFallsBackToAI(t *testing.T) {
	v := validate.New(validate.Config{})
	ai := NewAIStrategy(fixedCompleter(aiReply), "m", v, nil)
	s := NewHybridStrategy(ai, v, nil)

	// no line items: deterministic extraction cannot proceed
	out, err := s.Extract(context.Background(), event(`{"name": "#B21345", "line_items": []}`))
	require.NoError(t, err)

	assert.True(t, out.AIUsed)
	assert.Equal(t, "B21345", out.Order.OrderNumber)
	require.NotEmpty(t, out.Corrections)
	assert.Contains(t, out.Corrections[0], "Recovered via AI after deterministic extraction failed")
}

func TestHybridStrategy_AIFailureSurfacesAsError(t *testing.T) {
	v := validate.New(validate.Config{})
	callErr := &llm.CallError{Provider: "openai", StatusCode: 429, Cause: llm.ErrStatusNon2xx}
	ai := NewAIStrategy(failingCompleter(callErr), "m", v, nil)
	s := NewHybridStrategy(ai, v, nil)

	// deterministic succeeds but misses the customer name, forcing gap fill
	payload := `{
		"name": "#B21345",
		"line_items": [{"title": "Chocolate Fudge Cake", "quantity": 1, "price": "49.99"}]
	}`

	_, err := s.Extract(context.Background(), event(payload))
	require.Error(t, err)
	var ce *llm.CallError
	assert.ErrorAs(t, err, &ce)
}

func TestDeterministicStrategy_AdvisoryIssuesDoNotBlock(t *testing.T) {
	v := validate.New(validate.Config{})
	s := NewDeterministicStrategy(v, nil)

	// no customer name and no delivery date: issues, not failure
	payload := `{
		"name": "#B21345",
		"line_items": [{"title": "Chocolate Fudge Cake", "quantity": 1, "price": "49.99"}]
	}`

	out, err := s.Extract(context.Background(), event(payload))
	require.NoError(t, err)
	assert.False(t, out.AIUsed)
	assert.NotEmpty(t, out.ValidationIssues)
	assert.Equal(t, "B21345", out.Order.OrderNumber)
}
