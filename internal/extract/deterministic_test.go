package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugarloafbakes/orderpipe/constants"
)

const fullPayload = `{
	"name": "#B21345",
	"email": "maya@example.com",
	"created_at": "2026-03-02T10:15:00-05:00",
	"note": "Please ring the doorbell",
	"total_price": "107.97",
	"customer": {
		"first_name": "Maya",
		"last_name": "Chen",
		"email": "maya.backup@example.com",
		"phone": "+1-555-0100"
	},
	"shipping_address": {
		"name": "Maya Chen",
		"phone": "+1-555-0199"
	},
	"note_attributes": [
		{"name": "Delivery Date and Time", "value": "2026-03-05 between 2:00 PM and 4:00 PM"},
		{"name": "Delivery Method", "value": "Courier"}
	],
	"line_items": [
		{
			"title": "Chocolate Fudge Cake",
			"variant_title": "8 inch",
			"quantity": 1,
			"price": "49.99",
			"properties": [
				{"name": "Line 1", "value": "Happy Birthday"},
				{"name": "Line 2 (Line 2)", "value": "Maya!"},
				{"name": "_raw_design_id", "value": "d-77812"},
				{"name": "Colour", "value": "Pink"}
			]
		},
		{
			"title": "Birthday Candle Set",
			"quantity": 1,
			"price": "2.99",
			"properties": []
		}
	]
}`

func TestExtractOrder_FullPayload(t *testing.T) {
	order, err := ExtractOrder("sugarloaf.example.com", []byte(fullPayload))
	require.NoError(t, err)

	assert.Equal(t, "sugarloaf.example.com", order.Shop)
	assert.Equal(t, "B21345", order.OrderNumber, "leading # should be stripped")
	assert.Equal(t, "Maya Chen", order.CustomerName)
	assert.Equal(t, "maya@example.com", order.CustomerEmail)
	assert.Equal(t, "+1-555-0199", order.CustomerPhone, "shipping phone wins over customer phone")
	assert.Equal(t, "2026-03-02T10:15:00-05:00", order.OrderDate)
	assert.Equal(t, "2026-03-05", order.DeliveryDate)
	assert.Equal(t, "2:00 PM and 4:00 PM", order.DeliveryTime)
	assert.Equal(t, "Courier", order.DeliveryMethod)
	assert.Equal(t, "107.97", order.TotalPrice.StringFixed(2))
	assert.Equal(t, "Please ring the doorbell", order.Notes)

	require.Len(t, order.Items, 2)

	cake := order.Items[0]
	assert.Equal(t, constants.ItemKindPrimary, cake.Kind)
	assert.Equal(t, "Chocolate Fudge Cake", cake.Title)
	assert.Equal(t, "8 inch", cake.Variant)
	assert.Equal(t, 1, cake.Quantity)
	assert.Equal(t, "49.99", cake.Price.StringFixed(2))
	assert.Equal(t, []string{"Happy Birthday", "Maya!"}, cake.Annotations)
	assert.Contains(t, cake.Properties, "Colour")
	assert.NotContains(t, cake.Properties, "_raw_design_id", "internal properties must be dropped")

	candle := order.Items[1]
	assert.Equal(t, constants.ItemKindSecondary, candle.Kind)
	assert.Empty(t, candle.Annotations)
}

func TestExtractOrder_NameFallsBackToCustomerRecord(t *testing.T) {
	payload := `{
		"name": "#B22000",
		"customer": {"first_name": "Omar", "last_name": "Haddad"},
		"shipping_address": {"name": ""},
		"line_items": [{"title": "Carrot Cake", "quantity": 1, "price": "39.99"}]
	}`

	order, err := ExtractOrder("shop", []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "Omar Haddad", order.CustomerName)
}

func TestExtractOrder_PhoneFallsBackToCustomerRecord(t *testing.T) {
	payload := `{
		"name": "#B22001",
		"customer": {"phone": "+44 20 7946 0000"},
		"line_items": [{"title": "Carrot Cake", "quantity": 1, "price": "39.99"}]
	}`

	order, err := ExtractOrder("shop", []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "+44 20 7946 0000", order.CustomerPhone)
}

func TestExtractOrder_DeliveryValueWithoutTimeWindow(t *testing.T) {
	payload := `{
		"name": "#B22002",
		"note_attributes": [{"name": "Delivery Date and Time", "value": "2026-03-09"}],
		"line_items": [{"title": "Carrot Cake", "quantity": 1, "price": "39.99"}]
	}`

	order, err := ExtractOrder("shop", []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", order.DeliveryDate)
	assert.Empty(t, order.DeliveryTime)
}

func TestExtractOrder_MissingOrderName(t *testing.T) {
	payload := `{"line_items": [{"title": "Carrot Cake", "quantity": 1}]}`

	_, err := ExtractOrder("shop", []byte(payload))
	require.Error(t, err)
	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Contains(t, exErr.Reason, "no order name")
}

func TestExtractOrder_NoLineItems(t *testing.T) {
	for _, payload := range []string{
		`{"name": "#B22003", "line_items": []}`,
		`{"name": "#B22003"}`,
	} {
		_, err := ExtractOrder("shop", []byte(payload))
		var exErr *ExtractionError
		require.ErrorAs(t, err, &exErr, "payload %s", payload)
		assert.Contains(t, exErr.Reason, "no line items")
	}
}

func TestExtractOrder_InvalidJSON(t *testing.T) {
	_, err := ExtractOrder("shop", []byte(`{not json`))
	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
}

func TestExtractOrder_NonStringPropertyValue(t *testing.T) {
	payload := `{
		"name": "#B22004",
		"line_items": [{
			"title": "Carrot Cake",
			"quantity": 1,
			"price": "39.99",
			"properties": [{"name": "Tier Count", "value": 3}]
		}]
	}`

	order, err := ExtractOrder("shop", []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "3", order.Items[0].Properties["Tier Count"])
}

func TestExtractOrder_NullPropertyValue(t *testing.T) {
	payload := `{
		"name": "#B22005",
		"note_attributes": [{"name": "Delivery Method", "value": null}],
		"line_items": [{
			"title": "Carrot Cake",
			"quantity": 1,
			"price": "39.99",
			"properties": [
				{"name": "Colour", "value": null},
				{"name": "Line 1", "value": "Congrats"}
			]
		}]
	}`

	order, err := ExtractOrder("shop", []byte(payload))
	require.NoError(t, err)
	assert.Empty(t, order.DeliveryMethod, "null note attribute must not read as the word null")
	assert.NotContains(t, order.Items[0].Properties, "Colour")
	assert.Equal(t, []string{"Congrats"}, order.Items[0].Annotations)
}

func TestExtractOrder_IsDeterministic(t *testing.T) {
	a, err := ExtractOrder("shop", []byte(fullPayload))
	require.NoError(t, err)
	b, err := ExtractOrder("shop", []byte(fullPayload))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
