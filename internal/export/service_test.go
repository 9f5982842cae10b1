package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

type stubOrders struct {
	orders []*entity.SplitOrder
}

func (s *stubOrders) CreateWithItems(context.Context, []entity.SplitOrder) ([]uuid.UUID, error) {
	panic("not used")
}

func (s *stubOrders) ListByShop(_ context.Context, _ string, _, _ *time.Time) ([]*entity.SplitOrder, error) {
	return s.orders, nil
}

func splitOrder(number string, items ...entity.OrderItem) *entity.SplitOrder {
	return &entity.SplitOrder{
		Order: entity.Order{
			Shop:        "shop-a",
			OrderNumber: number,
			Items:       items,
		},
	}
}

func item(kind constants.ItemKind, title, variant string, qty int, price string) entity.OrderItem {
	return entity.OrderItem{
		Kind:     kind,
		Title:    title,
		Variant:  variant,
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
	}
}

func TestProductionReportXLSX(t *testing.T) {
	repo := &stubOrders{orders: []*entity.SplitOrder{
		splitOrder("B1",
			item(constants.ItemKindPrimary, "Chocolate Fudge Cake", "8 inch", 2, "49.99"),
			item(constants.ItemKindSecondary, "Birthday Candle Set", "", 1, "2.99"),
		),
		splitOrder("B2",
			item(constants.ItemKindPrimary, "Chocolate Fudge Cake", "8 inch", 1, "49.99"),
		),
		splitOrder("B3",
			item(constants.ItemKindPrimary, "Carrot Cake", "6 inch", 1, "39.99"),
		),
	}}

	svc := NewService(repo, 10, nil)
	data, err := svc.ProductionReportXLSX(context.Background(), "shop-a", nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Production")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per cake line")

	assert.Equal(t, []string{"Cake", "Variant", "Ordered", "To Bake", "Orders", "Revenue"}, rows[0][:6])

	// highest ordered quantity first
	assert.Equal(t, "Chocolate Fudge Cake", rows[1][0])
	assert.Equal(t, "3", rows[1][2])
	assert.Equal(t, "3", rows[1][3], "10% of 3 truncates to zero extra")
	assert.Equal(t, "Carrot Cake", rows[2][0])

	extras, err := f.GetRows("Extras")
	require.NoError(t, err)
	require.Len(t, extras, 2)
	assert.Equal(t, "Birthday Candle Set", extras[1][0])
}

func TestProductionReport_BufferRoundsDown(t *testing.T) {
	repo := &stubOrders{orders: []*entity.SplitOrder{
		splitOrder("B1", item(constants.ItemKindPrimary, "Carrot Cake", "", 25, "39.99")),
	}}

	svc := NewService(repo, 10, nil)
	cakes, _ := svc.aggregate(repo.orders)
	require.Len(t, cakes, 1)
	assert.Equal(t, 25, cakes[0].Ordered)
	assert.Equal(t, 27, cakes[0].ToBake)
}

func TestProductionReport_NoOrders(t *testing.T) {
	svc := NewService(&stubOrders{}, 0, nil)
	data, err := svc.ProductionReportXLSX(context.Background(), "shop-a", nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data, "an empty report is still a valid workbook")
}
