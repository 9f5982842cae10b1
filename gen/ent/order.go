// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sugarloafbakes/orderpipe/gen/ent/order"
)

// Order is the model entity for the Order schema.
type Order struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Shop holds the value of the "shop" field.
	Shop string `json:"shop,omitempty"`
	// OrderNumber holds the value of the "order_number" field.
	OrderNumber string `json:"order_number,omitempty"`
	// CustomerName holds the value of the "customer_name" field.
	CustomerName string `json:"customer_name,omitempty"`
	// CustomerEmail holds the value of the "customer_email" field.
	CustomerEmail *string `json:"customer_email,omitempty"`
	// CustomerPhone holds the value of the "customer_phone" field.
	CustomerPhone *string `json:"customer_phone,omitempty"`
	// OrderDate holds the value of the "order_date" field.
	OrderDate string `json:"order_date,omitempty"`
	// DeliveryDate holds the value of the "delivery_date" field.
	DeliveryDate string `json:"delivery_date,omitempty"`
	// DeliveryTime holds the value of the "delivery_time" field.
	DeliveryTime string `json:"delivery_time,omitempty"`
	// DeliveryMethod holds the value of the "delivery_method" field.
	DeliveryMethod string `json:"delivery_method,omitempty"`
	// TotalPrice holds the value of the "total_price" field.
	TotalPrice float64 `json:"total_price,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// IsSplit holds the value of the "is_split" field.
	IsSplit bool `json:"is_split,omitempty"`
	// ParentOrderNumber holds the value of the "parent_order_number" field.
	ParentOrderNumber *string `json:"parent_order_number,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrderQuery when eager-loading is set.
	Edges        OrderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrderEdges holds the relations/edges for other nodes in the graph.
type OrderEdges struct {
	// Items holds the value of the items edge.
	Items []*OrderItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e OrderEdges) ItemsOrErr() ([]*OrderItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Order) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case order.FieldIsSplit:
			values[i] = new(sql.NullBool)
		case order.FieldTotalPrice:
			values[i] = new(sql.NullFloat64)
		case order.FieldShop, order.FieldOrderNumber, order.FieldCustomerName, order.FieldCustomerEmail, order.FieldCustomerPhone, order.FieldOrderDate, order.FieldDeliveryDate, order.FieldDeliveryTime, order.FieldDeliveryMethod, order.FieldNotes, order.FieldParentOrderNumber:
			values[i] = new(sql.NullString)
		case order.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case order.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Order fields.
func (_m *Order) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case order.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case order.FieldShop:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shop", values[i])
			} else if value.Valid {
				_m.Shop = value.String
			}
		case order.FieldOrderNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_number", values[i])
			} else if value.Valid {
				_m.OrderNumber = value.String
			}
		case order.FieldCustomerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_name", values[i])
			} else if value.Valid {
				_m.CustomerName = value.String
			}
		case order.FieldCustomerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_email", values[i])
			} else if value.Valid {
				_m.CustomerEmail = new(string)
				*_m.CustomerEmail = value.String
			}
		case order.FieldCustomerPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_phone", values[i])
			} else if value.Valid {
				_m.CustomerPhone = new(string)
				*_m.CustomerPhone = value.String
			}
		case order.FieldOrderDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_date", values[i])
			} else if value.Valid {
				_m.OrderDate = value.String
			}
		case order.FieldDeliveryDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_date", values[i])
			} else if value.Valid {
				_m.DeliveryDate = value.String
			}
		case order.FieldDeliveryTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_time", values[i])
			} else if value.Valid {
				_m.DeliveryTime = value.String
			}
		case order.FieldDeliveryMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_method", values[i])
			} else if value.Valid {
				_m.DeliveryMethod = value.String
			}
		case order.FieldTotalPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_price", values[i])
			} else if value.Valid {
				_m.TotalPrice = value.Float64
			}
		case order.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case order.FieldIsSplit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_split", values[i])
			} else if value.Valid {
				_m.IsSplit = value.Bool
			}
		case order.FieldParentOrderNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_order_number", values[i])
			} else if value.Valid {
				_m.ParentOrderNumber = new(string)
				*_m.ParentOrderNumber = value.String
			}
		case order.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Order.
// This includes values selected through modifiers, order, etc.
func (_m *Order) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the Order entity.
func (_m *Order) QueryItems() *OrderItemQuery {
	return NewOrderClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this Order.
// Note that you need to call Order.Unwrap() before calling this method if this Order
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Order) Update() *OrderUpdateOne {
	return NewOrderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Order entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Order) Unwrap() *Order {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Order is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Order) String() string {
	var builder strings.Builder
	builder.WriteString("Order(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("shop=")
	builder.WriteString(_m.Shop)
	builder.WriteString(", ")
	builder.WriteString("order_number=")
	builder.WriteString(_m.OrderNumber)
	builder.WriteString(", ")
	builder.WriteString("customer_name=")
	builder.WriteString(_m.CustomerName)
	builder.WriteString(", ")
	if v := _m.CustomerEmail; v != nil {
		builder.WriteString("customer_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CustomerPhone; v != nil {
		builder.WriteString("customer_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("order_date=")
	builder.WriteString(_m.OrderDate)
	builder.WriteString(", ")
	builder.WriteString("delivery_date=")
	builder.WriteString(_m.DeliveryDate)
	builder.WriteString(", ")
	builder.WriteString("delivery_time=")
	builder.WriteString(_m.DeliveryTime)
	builder.WriteString(", ")
	builder.WriteString("delivery_method=")
	builder.WriteString(_m.DeliveryMethod)
	builder.WriteString(", ")
	builder.WriteString("total_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPrice))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("is_split=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSplit))
	builder.WriteString(", ")
	if v := _m.ParentOrderNumber; v != nil {
		builder.WriteString("parent_order_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Orders is a parsable slice of Order.
type Orders []*Order
