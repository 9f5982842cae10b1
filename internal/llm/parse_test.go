package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugarloafbakes/orderpipe/constants"
)

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"code fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", `Here is the order: {"a":{"b":2}} hope that helps`, `{"a":{"b":2}}`},
		{"braces inside strings", `{"note":"use } sparingly"}`, `{"note":"use } sparingly"}`},
		{"escaped quotes", `{"note":"she said \"hi\""}`, `{"note":"she said \"hi\""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstJSONObject(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestFirstJSONObject_NoObject(t *testing.T) {
	for _, in := range []string{"", "no json here", `{"unterminated": true`} {
		_, err := FirstJSONObject(in)
		var pe *ParseError
		require.ErrorAs(t, err, &pe, "input %q", in)
		assert.ErrorIs(t, err, ErrNoJSONObject)
	}
}

func TestParseOrderReply_Valid(t *testing.T) {
	reply := "```json\n" + `{
		"order_number": "#B21345",
		"customer_name": " Maya Chen ",
		"total_price": "52.98",
		"items": [
			{"kind": "PRIMARY", "title": "Chocolate Fudge Cake", "quantity": 1, "price": "49.99",
			 "annotations": ["Happy Birthday", "Maya!"],
			 "properties": {"Colour": "Pink", "_raw_design_id": "d-1"}},
			{"kind": "SECONDARY", "title": "Birthday Candle Set", "quantity": 1, "price": "2.99"}
		]
	}` + "\n```"

	order, fixes, err := ParseOrderReply("shop", reply)
	require.NoError(t, err)
	assert.Empty(t, fixes)

	assert.Equal(t, "B21345", order.OrderNumber, "leading # stripped even from AI output")
	assert.Equal(t, "Maya Chen", order.CustomerName)
	assert.Equal(t, "52.98", order.TotalPrice.StringFixed(2))
	require.Len(t, order.Items, 2)
	assert.Equal(t, constants.ItemKindPrimary, order.Items[0].Kind)
	assert.Equal(t, []string{"Happy Birthday", "Maya!"}, order.Items[0].Annotations)
	assert.Contains(t, order.Items[0].Properties, "Colour")
	assert.NotContains(t, order.Items[0].Properties, "_raw_design_id")
}

func TestParseOrderReply_SanitizesNumericMoney(t *testing.T) {
	reply := `{
		"order_number": "B21346",
		"customer_name": null,
		"total_price": 52.98,
		"items": [{"kind": "PRIMARY", "title": "Carrot Cake", "quantity": 2.0, "price": 39.99}]
	}`

	order, fixes, err := ParseOrderReply("shop", reply)
	require.NoError(t, err)
	assert.NotEmpty(t, fixes)
	assert.Equal(t, "52.98", order.TotalPrice.StringFixed(2))
	assert.Equal(t, "39.99", order.Items[0].Price.StringFixed(2))
	assert.Empty(t, order.CustomerName)
}

func TestParseOrderReply_SchemaMismatch(t *testing.T) {
	// items missing entirely
	_, _, err := ParseOrderReply("shop", `{"order_number":"B1","total_price":"10.00"}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestParseOrderReply_EmptyItemsRejected(t *testing.T) {
	_, _, err := ParseOrderReply("shop", `{"order_number":"B1","total_price":"10.00","items":[]}`)
	require.Error(t, err)
}

func TestSanitizeOrderJSON_FractionalQuantity(t *testing.T) {
	in := `{"order_number":"B1","total_price":"10.00","items":[{"kind":"PRIMARY","title":"Cake","quantity":1.5,"price":"10.00"}]}`

	out, fixes, err := SanitizeOrderJSON([]byte(in))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"quantity":1`)
	assert.NotEmpty(t, fixes)
}

func TestSanitizeOrderJSON_DropsBlankOptionals(t *testing.T) {
	in := `{"order_number":"B1","total_price":"10.00","customer_email":"","notes":"null","items":[]}`

	out, fixes, err := SanitizeOrderJSON([]byte(in))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "customer_email")
	assert.NotContains(t, string(out), "notes")
	assert.Len(t, fixes, 2)
}

func TestBuildUserPrompt_TruncatesLongPayloads(t *testing.T) {
	big := make([]byte, 20000)
	for i := range big {
		big[i] = 'x'
	}
	prompt := BuildUserPrompt(big)
	assert.Less(t, len(prompt), 16000)
}

func TestEstimateCostUSD(t *testing.T) {
	known := EstimateCostUSD("gpt-4o-mini", 4000, 4000)
	unknown := EstimateCostUSD("mystery-model", 4000, 4000)
	assert.Greater(t, known, 0.0)
	assert.Greater(t, unknown, known, "unknown models use the conservative default price")
}
