package split

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

func cake(title string, qty int, price string) entity.OrderItem {
	return entity.OrderItem{
		Kind:     constants.ItemKindPrimary,
		Title:    title,
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
	}
}

func accessory(title string, qty int, price string) entity.OrderItem {
	return entity.OrderItem{
		Kind:     constants.ItemKindSecondary,
		Title:    title,
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
	}
}

func TestSplit_TwoCakesOneCandle(t *testing.T) {
	order := entity.Order{
		Shop:         "sugarloaf.example.com",
		OrderNumber:  "B21345",
		CustomerName: "Jane Doe",
		TotalPrice:   decimal.RequireFromString("85"),
		Items: []entity.OrderItem{
			cake("Chocolate Cake", 1, "45"),
			cake("Vanilla Cake", 1, "35"),
			accessory("Birthday Candles", 1, "5"),
		},
	}

	splits, err := Split(order)
	require.NoError(t, err)
	require.Len(t, splits, 2)

	first, second := splits[0], splits[1]

	assert.Equal(t, "B21345-A", first.OrderNumber)
	assert.Equal(t, "B21345-B", second.OrderNumber)
	assert.True(t, first.IsSplit)
	assert.True(t, second.IsSplit)
	assert.Equal(t, "B21345-A", first.ParentOrderNumber)
	assert.Equal(t, "B21345-A", second.ParentOrderNumber)

	// split A carries its cake plus every accessory
	require.Len(t, first.Items, 2)
	assert.Equal(t, "Chocolate Cake", first.Items[0].Title)
	assert.Equal(t, "Birthday Candles", first.Items[1].Title)
	assert.Equal(t, "50.00", first.TotalPrice.StringFixed(2))

	require.Len(t, second.Items, 1)
	assert.Equal(t, "Vanilla Cake", second.Items[0].Title)
	assert.Equal(t, "35.00", second.TotalPrice.StringFixed(2))

	// split totals conserve the original order total
	assert.True(t, TotalAcross(splits).Equal(order.TotalPrice))

	// customer fields are copied onto every split
	assert.Equal(t, "Jane Doe", first.CustomerName)
	assert.Equal(t, "Jane Doe", second.CustomerName)
}

func TestSplit_SinglePrimaryPassesThrough(t *testing.T) {
	order := entity.Order{
		OrderNumber: "B30001",
		TotalPrice:  decimal.RequireFromString("52.98"),
		Items: []entity.OrderItem{
			cake("Red Velvet Cake", 1, "49.99"),
			accessory("Cake Knife", 1, "2.99"),
		},
	}

	splits, err := Split(order)
	require.NoError(t, err)
	require.Len(t, splits, 1)

	only := splits[0]
	assert.False(t, only.IsSplit)
	assert.Empty(t, only.ParentOrderNumber)
	assert.Equal(t, "B30001", only.OrderNumber)
	assert.Len(t, only.Items, 2)
	assert.Equal(t, "52.98", only.TotalPrice.StringFixed(2))
}

func TestSplit_NoPrimariesPassesThrough(t *testing.T) {
	order := entity.Order{
		OrderNumber: "B30002",
		Items: []entity.OrderItem{
			accessory("Greeting Card", 1, "3.50"),
		},
	}

	splits, err := Split(order)
	require.NoError(t, err)
	require.Len(t, splits, 1)
	assert.False(t, splits[0].IsSplit)
	assert.Equal(t, "B30002", splits[0].OrderNumber)
}

func TestSplit_SuffixesFollowPayloadOrder(t *testing.T) {
	order := entity.Order{
		OrderNumber: "B30003",
		Items: []entity.OrderItem{
			cake("Carrot Cake", 1, "39.99"),
			cake("Victoria Sponge Cake", 1, "44.99"),
			cake("Banana Cake", 1, "34.99"),
		},
	}

	splits, err := Split(order)
	require.NoError(t, err)
	require.Len(t, splits, 3)

	assert.Equal(t, "B30003-A", splits[0].OrderNumber)
	assert.Equal(t, "B30003-B", splits[1].OrderNumber)
	assert.Equal(t, "B30003-C", splits[2].OrderNumber)
	assert.Equal(t, "Carrot Cake", splits[0].Items[0].Title)
	assert.Equal(t, "Victoria Sponge Cake", splits[1].Items[0].Title)
	assert.Equal(t, "Banana Cake", splits[2].Items[0].Title)
}

func TestSplit_ConservesLineTotals(t *testing.T) {
	order := entity.Order{
		OrderNumber: "B30004",
		Items: []entity.OrderItem{
			cake("Chocolate Fudge Cake", 2, "49.99"),
			cake("Lemon Drizzle Cake", 1, "54.99"),
			accessory("Birthday Candle Set", 3, "2.99"),
			accessory("Cake Topper", 1, "6.50"),
		},
	}

	splits, err := Split(order)
	require.NoError(t, err)

	var lineSum decimal.Decimal
	for _, it := range order.Items {
		lineSum = lineSum.Add(it.LineTotal())
	}
	assert.True(t, TotalAcross(splits).Equal(lineSum),
		"split totals %s should equal line total sum %s", TotalAcross(splits), lineSum)
}

func TestSplit_QuantityTwoPrimaryStaysOneSplit(t *testing.T) {
	order := entity.Order{
		OrderNumber: "B30005",
		Items: []entity.OrderItem{
			cake("Chocolate Fudge Cake", 2, "49.99"),
			cake("Lemon Drizzle Cake", 1, "54.99"),
		},
	}

	splits, err := Split(order)
	require.NoError(t, err)
	require.Len(t, splits, 2)
	assert.Equal(t, 2, splits[0].Items[0].Quantity)
	assert.Equal(t, "99.98", splits[0].TotalPrice.StringFixed(2))
}

func TestSplit_RejectsZeroQuantityPrimary(t *testing.T) {
	order := entity.Order{
		OrderNumber: "B30006",
		Items: []entity.OrderItem{
			cake("Carrot Cake", 0, "39.99"),
			cake("Banana Cake", 1, "34.99"),
		},
	}

	_, err := Split(order)
	require.Error(t, err)
	var splitErr *Error
	require.ErrorAs(t, err, &splitErr)
	assert.Equal(t, "B30006", splitErr.OrderNumber)
}

func TestSplit_RejectsNegativePricePrimary(t *testing.T) {
	order := entity.Order{
		OrderNumber: "B30007",
		Items: []entity.OrderItem{
			cake("Carrot Cake", 1, "-1.00"),
			cake("Banana Cake", 1, "34.99"),
		},
	}

	_, err := Split(order)
	require.Error(t, err)
}

func TestSplit_DoesNotMutateInput(t *testing.T) {
	order := entity.Order{
		OrderNumber: "B30008",
		Items: []entity.OrderItem{
			cake("Carrot Cake", 1, "39.99"),
			cake("Banana Cake", 1, "34.99"),
			accessory("Sparkler", 2, "1.99"),
		},
	}

	splits, err := Split(order)
	require.NoError(t, err)

	splits[0].Items[0].Title = "changed"
	assert.Equal(t, "B30008", order.OrderNumber)
	assert.Equal(t, "Carrot Cake", order.Items[0].Title)
	assert.Len(t, order.Items, 3)
}
