package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

func TestMerge_FillsMissingCustomerName(t *testing.T) {
	det := entity.Order{
		OrderNumber: "B21400",
		TotalPrice:  decimal.RequireFromString("49.99"),
		Items: []entity.OrderItem{
			{Kind: constants.ItemKindPrimary, Title: "Red Velvet Cake", Quantity: 1, Price: decimal.RequireFromString("49.99")},
		},
	}
	ai := entity.Order{
		OrderNumber:  "B21400",
		CustomerName: "Jane Doe",
	}

	merged, corrections := Merge(det, ai)

	assert.Equal(t, "Jane Doe", merged.CustomerName)
	assert.Contains(t, corrections, "Filled customer_name from AI")
}

func TestMerge_NeverOverwritesDeterministicValues(t *testing.T) {
	det := entity.Order{
		OrderNumber:   "B21401",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		DeliveryDate:  "2026-03-05",
		TotalPrice:    decimal.RequireFromString("49.99"),
		Items: []entity.OrderItem{
			{Kind: constants.ItemKindPrimary, Title: "Red Velvet Cake", Quantity: 1, Price: decimal.RequireFromString("49.99")},
		},
	}
	ai := entity.Order{
		OrderNumber:   "B99999",
		CustomerName:  "J. Doe",
		CustomerEmail: "other@example.com",
		DeliveryDate:  "2026-03-06",
		TotalPrice:    decimal.RequireFromString("59.99"),
		Items: []entity.OrderItem{
			{Kind: constants.ItemKindPrimary, Title: "Different Cake", Quantity: 2, Price: decimal.RequireFromString("59.99")},
		},
	}

	merged, corrections := Merge(det, ai)

	assert.Equal(t, "B21401", merged.OrderNumber)
	assert.Equal(t, "Jane Doe", merged.CustomerName, "deterministic value wins")
	assert.Equal(t, "jane@example.com", merged.CustomerEmail)
	assert.Equal(t, "2026-03-05", merged.DeliveryDate)
	assert.Equal(t, "49.99", merged.TotalPrice.StringFixed(2))
	assert.Equal(t, "Red Velvet Cake", merged.Items[0].Title)
	assert.Equal(t, 1, merged.Items[0].Quantity)
	assert.Empty(t, corrections)
}

func TestMerge_AdoptsItemsWhenDeterministicHasNone(t *testing.T) {
	det := entity.Order{
		OrderNumber:  "B21402",
		CustomerName: "Omar Haddad",
	}
	ai := entity.Order{
		Items: []entity.OrderItem{
			{Kind: constants.ItemKindPrimary, Title: "Lemon Drizzle Cake", Quantity: 1, Price: decimal.RequireFromString("54.99")},
			{Kind: constants.ItemKindSecondary, Title: "Sparkler", Quantity: 2, Price: decimal.RequireFromString("1.99")},
		},
	}

	merged, corrections := Merge(det, ai)

	require.Len(t, merged.Items, 2)
	assert.Equal(t, "Lemon Drizzle Cake", merged.Items[0].Title)
	assert.Contains(t, corrections, "Adopted items from AI")
}

func TestMerge_ItemLevelGapFillByIndex(t *testing.T) {
	det := entity.Order{
		OrderNumber: "B21403",
		Items: []entity.OrderItem{
			{Kind: constants.ItemKindPrimary, Title: "Carrot Cake", Quantity: 0, Price: decimal.Zero},
		},
	}
	ai := entity.Order{
		Items: []entity.OrderItem{
			{Kind: constants.ItemKindPrimary, Title: "Carrot Cake", Variant: "6 inch", Quantity: 1, Price: decimal.RequireFromString("39.99")},
		},
	}

	merged, corrections := Merge(det, ai)

	got := merged.Items[0]
	assert.Equal(t, "6 inch", got.Variant)
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, "39.99", got.Price.StringFixed(2))
	assert.Contains(t, corrections, "Filled items[0].variant from AI")
	assert.Contains(t, corrections, "Filled items[0].quantity from AI")
	assert.Contains(t, corrections, "Filled items[0].price from AI")
}

func TestMerge_ExtraAIItemsAreIgnored(t *testing.T) {
	det := entity.Order{
		OrderNumber: "B21404",
		Items: []entity.OrderItem{
			{Kind: constants.ItemKindPrimary, Title: "Carrot Cake", Quantity: 1, Price: decimal.RequireFromString("39.99")},
		},
	}
	ai := entity.Order{
		Items: []entity.OrderItem{
			{Kind: constants.ItemKindPrimary, Title: "Carrot Cake", Quantity: 1, Price: decimal.RequireFromString("39.99")},
			{Kind: constants.ItemKindSecondary, Title: "Hallucinated Topper", Quantity: 1, Price: decimal.RequireFromString("6.50")},
		},
	}

	merged, corrections := Merge(det, ai)

	assert.Len(t, merged.Items, 1)
	assert.Empty(t, corrections)
}

func TestMerge_FillsTotalPrice(t *testing.T) {
	det := entity.Order{
		OrderNumber: "B21405",
		Items: []entity.OrderItem{
			{Kind: constants.ItemKindPrimary, Title: "Carrot Cake", Quantity: 1, Price: decimal.RequireFromString("39.99")},
		},
	}
	ai := entity.Order{TotalPrice: decimal.RequireFromString("39.99")}

	merged, corrections := Merge(det, ai)

	assert.Equal(t, "39.99", merged.TotalPrice.StringFixed(2))
	assert.Contains(t, corrections, "Filled total_price from AI")
}
