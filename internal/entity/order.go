package entity

import (
	"github.com/shopspring/decimal"

	"github.com/sugarloafbakes/orderpipe/constants"
)

// OrderItem represents one line of an order for data transfer between layers.
// Values are treated as immutable once built; transformations copy.
type OrderItem struct {
	Kind        constants.ItemKind `json:"kind"`
	Title       string             `json:"title"`
	Variant     string             `json:"variant,omitempty"`
	Quantity    int                `json:"quantity"`
	Price       decimal.Decimal    `json:"price"` // per line
	Annotations []string           `json:"annotations,omitempty"`
	Properties  map[string]string  `json:"properties,omitempty"`
}

// LineTotal is the item's contribution to an order total (price * quantity).
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Clone returns a deep copy so callers can derive new orders without
// aliasing annotation slices or property maps.
func (i OrderItem) Clone() OrderItem {
	out := i
	if i.Annotations != nil {
		out.Annotations = append([]string(nil), i.Annotations...)
	}
	if i.Properties != nil {
		out.Properties = make(map[string]string, len(i.Properties))
		for k, v := range i.Properties {
			out.Properties[k] = v
		}
	}
	return out
}

// Order is the canonical extraction target shared by every strategy.
type Order struct {
	Shop           string          `json:"shop"`
	OrderNumber    string          `json:"order_number"` // leading '#' stripped
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email,omitempty"`
	CustomerPhone  string          `json:"customer_phone,omitempty"`
	OrderDate      string          `json:"order_date"`
	DeliveryDate   string          `json:"delivery_date,omitempty"`
	DeliveryTime   string          `json:"delivery_time,omitempty"`
	DeliveryMethod string          `json:"delivery_method,omitempty"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Notes          string          `json:"notes,omitempty"`
	Items          []OrderItem     `json:"items"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]OrderItem, len(o.Items))
		for i, it := range o.Items {
			out.Items[i] = it.Clone()
		}
	}
	return out
}

// PrimaryItems returns the items that drive splitting, in payload order.
func (o Order) PrimaryItems() []OrderItem {
	var out []OrderItem
	for _, it := range o.Items {
		if it.Kind == constants.ItemKindPrimary {
			out = append(out, it)
		}
	}
	return out
}

// SecondaryItems returns the add-on items, in payload order.
func (o Order) SecondaryItems() []OrderItem {
	var out []OrderItem
	for _, it := range o.Items {
		if it.Kind == constants.ItemKindSecondary {
			out = append(out, it)
		}
	}
	return out
}

// SplitOrder is one of the orders produced by decomposing a multi-primary
// order. A passthrough (single primary) keeps IsSplit=false and no parent.
type SplitOrder struct {
	Order

	IsSplit           bool   `json:"is_split"`
	ParentOrderNumber string `json:"parent_order_number,omitempty"` // always the -A number
}
