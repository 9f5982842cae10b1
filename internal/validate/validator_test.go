package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
)

func cleanOrder() entity.Order {
	return entity.Order{
		OrderNumber:  "B21345",
		CustomerName: "Maya Chen",
		DeliveryDate: "2026-03-05",
		TotalPrice:   decimal.RequireFromString("49.99"),
		Items: []entity.OrderItem{
			{Kind: constants.ItemKindPrimary, Title: "Chocolate Fudge Cake", Quantity: 1, Price: decimal.RequireFromString("49.99")},
		},
	}
}

func TestValidate_CleanOrder(t *testing.T) {
	v := New(Config{})
	assert.Empty(t, v.Validate(cleanOrder()))
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.Order)
		wantMsg string
	}{
		{"missing customer name", func(o *entity.Order) { o.CustomerName = "" }, "customer_name is missing"},
		{"missing delivery date", func(o *entity.Order) { o.DeliveryDate = "" }, "delivery_date is missing"},
		{"no items", func(o *entity.Order) { o.Items = nil }, "order has no items"},
	}

	v := New(Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := cleanOrder()
			tt.mutate(&o)
			assert.Contains(t, v.Validate(o), tt.wantMsg)
		})
	}
}

func TestValidate_SkipsAreHonored(t *testing.T) {
	v := New(Config{SkipCustomerName: true, SkipDeliveryDate: true, SkipItems: true})

	o := cleanOrder()
	o.CustomerName = ""
	o.DeliveryDate = ""
	o.Items = nil

	assert.Empty(t, v.Validate(o))
}

func TestValidate_StructuralChecksAlwaysRun(t *testing.T) {
	v := New(Config{SkipCustomerName: true, SkipDeliveryDate: true, SkipItems: true})

	o := cleanOrder()
	o.OrderNumber = "#B21345"
	o.CustomerName = "M"
	o.Items[0].Quantity = 0
	o.Items[0].Title = " "
	o.Items[0].Kind = ""

	issues := v.Validate(o)
	assert.Contains(t, issues, "order_number still contains '#'")
	assert.Contains(t, issues, "customer_name is shorter than 2 characters")
	assert.Contains(t, issues, "items[0] has no title")
	assert.Contains(t, issues, "items[0] has no classification")
	assert.Contains(t, issues, "items[0] has non-positive quantity")
}

func TestValidate_MultiByteNameLength(t *testing.T) {
	v := New(Config{})
	o := cleanOrder()
	o.CustomerName = "李华"

	assert.Empty(t, v.Validate(o), "two runes should satisfy the minimum length")
}
