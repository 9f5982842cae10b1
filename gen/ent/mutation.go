// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sugarloafbakes/orderpipe/gen/ent/order"
	"github.com/sugarloafbakes/orderpipe/gen/ent/orderitem"
	"github.com/sugarloafbakes/orderpipe/gen/ent/predicate"
	"github.com/sugarloafbakes/orderpipe/gen/ent/webhookevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeOrder        = "Order"
	TypeOrderItem    = "OrderItem"
	TypeWebhookEvent = "WebhookEvent"
)

// OrderMutation represents an operation that mutates the Order nodes in the graph.
type OrderMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	shop                *string
	order_number        *string
	customer_name       *string
	customer_email      *string
	customer_phone      *string
	order_date          *string
	delivery_date       *string
	delivery_time       *string
	delivery_method     *string
	total_price         *float64
	addtotal_price      *float64
	notes               *string
	is_split            *bool
	parent_order_number *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	items               map[uuid.UUID]struct{}
	removeditems        map[uuid.UUID]struct{}
	cleareditems        bool
	done                bool
	oldValue            func(context.Context) (*Order, error)
	predicates          []predicate.Order
}

var _ ent.Mutation = (*OrderMutation)(nil)

// orderOption allows management of the mutation configuration using functional options.
type orderOption func(*OrderMutation)

// newOrderMutation creates new mutation for the Order entity.
func newOrderMutation(c config, op Op, opts ...orderOption) *OrderMutation {
	m := &OrderMutation{
		config:        c,
		op:            op,
		typ:           TypeOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderID sets the ID field of the mutation.
func withOrderID(id uuid.UUID) orderOption {
	return func(m *OrderMutation) {
		var (
			err   error
			once  sync.Once
			value *Order
		)
		m.oldValue = func(ctx context.Context) (*Order, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Order.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrder sets the old Order of the mutation.
func withOrder(node *Order) orderOption {
	return func(m *OrderMutation) {
		m.oldValue = func(context.Context) (*Order, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Order entities.
func (m *OrderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Order.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetShop sets the "shop" field.
func (m *OrderMutation) SetShop(s string) {
	m.shop = &s
}

// Shop returns the value of the "shop" field in the mutation.
func (m *OrderMutation) Shop() (r string, exists bool) {
	v := m.shop
	if v == nil {
		return
	}
	return *v, true
}

// OldShop returns the old "shop" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldShop(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShop is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShop requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShop: %w", err)
	}
	return oldValue.Shop, nil
}

// ResetShop resets all changes to the "shop" field.
func (m *OrderMutation) ResetShop() {
	m.shop = nil
}

// SetOrderNumber sets the "order_number" field.
func (m *OrderMutation) SetOrderNumber(s string) {
	m.order_number = &s
}

// OrderNumber returns the value of the "order_number" field in the mutation.
func (m *OrderMutation) OrderNumber() (r string, exists bool) {
	v := m.order_number
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderNumber returns the old "order_number" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldOrderNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderNumber: %w", err)
	}
	return oldValue.OrderNumber, nil
}

// ResetOrderNumber resets all changes to the "order_number" field.
func (m *OrderMutation) ResetOrderNumber() {
	m.order_number = nil
}

// SetCustomerName sets the "customer_name" field.
func (m *OrderMutation) SetCustomerName(s string) {
	m.customer_name = &s
}

// CustomerName returns the value of the "customer_name" field in the mutation.
func (m *OrderMutation) CustomerName() (r string, exists bool) {
	v := m.customer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerName returns the old "customer_name" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCustomerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerName: %w", err)
	}
	return oldValue.CustomerName, nil
}

// ClearCustomerName clears the value of the "customer_name" field.
func (m *OrderMutation) ClearCustomerName() {
	m.customer_name = nil
	m.clearedFields[order.FieldCustomerName] = struct{}{}
}

// CustomerNameCleared returns if the "customer_name" field was cleared in this mutation.
func (m *OrderMutation) CustomerNameCleared() bool {
	_, ok := m.clearedFields[order.FieldCustomerName]
	return ok
}

// ResetCustomerName resets all changes to the "customer_name" field.
func (m *OrderMutation) ResetCustomerName() {
	m.customer_name = nil
	delete(m.clearedFields, order.FieldCustomerName)
}

// SetCustomerEmail sets the "customer_email" field.
func (m *OrderMutation) SetCustomerEmail(s string) {
	m.customer_email = &s
}

// CustomerEmail returns the value of the "customer_email" field in the mutation.
func (m *OrderMutation) CustomerEmail() (r string, exists bool) {
	v := m.customer_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerEmail returns the old "customer_email" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCustomerEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerEmail: %w", err)
	}
	return oldValue.CustomerEmail, nil
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (m *OrderMutation) ClearCustomerEmail() {
	m.customer_email = nil
	m.clearedFields[order.FieldCustomerEmail] = struct{}{}
}

// CustomerEmailCleared returns if the "customer_email" field was cleared in this mutation.
func (m *OrderMutation) CustomerEmailCleared() bool {
	_, ok := m.clearedFields[order.FieldCustomerEmail]
	return ok
}

// ResetCustomerEmail resets all changes to the "customer_email" field.
func (m *OrderMutation) ResetCustomerEmail() {
	m.customer_email = nil
	delete(m.clearedFields, order.FieldCustomerEmail)
}

// SetCustomerPhone sets the "customer_phone" field.
func (m *OrderMutation) SetCustomerPhone(s string) {
	m.customer_phone = &s
}

// CustomerPhone returns the value of the "customer_phone" field in the mutation.
func (m *OrderMutation) CustomerPhone() (r string, exists bool) {
	v := m.customer_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerPhone returns the old "customer_phone" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCustomerPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerPhone: %w", err)
	}
	return oldValue.CustomerPhone, nil
}

// ClearCustomerPhone clears the value of the "customer_phone" field.
func (m *OrderMutation) ClearCustomerPhone() {
	m.customer_phone = nil
	m.clearedFields[order.FieldCustomerPhone] = struct{}{}
}

// CustomerPhoneCleared returns if the "customer_phone" field was cleared in this mutation.
func (m *OrderMutation) CustomerPhoneCleared() bool {
	_, ok := m.clearedFields[order.FieldCustomerPhone]
	return ok
}

// ResetCustomerPhone resets all changes to the "customer_phone" field.
func (m *OrderMutation) ResetCustomerPhone() {
	m.customer_phone = nil
	delete(m.clearedFields, order.FieldCustomerPhone)
}

// SetOrderDate sets the "order_date" field.
func (m *OrderMutation) SetOrderDate(s string) {
	m.order_date = &s
}

// OrderDate returns the value of the "order_date" field in the mutation.
func (m *OrderMutation) OrderDate() (r string, exists bool) {
	v := m.order_date
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderDate returns the old "order_date" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldOrderDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderDate: %w", err)
	}
	return oldValue.OrderDate, nil
}

// ClearOrderDate clears the value of the "order_date" field.
func (m *OrderMutation) ClearOrderDate() {
	m.order_date = nil
	m.clearedFields[order.FieldOrderDate] = struct{}{}
}

// OrderDateCleared returns if the "order_date" field was cleared in this mutation.
func (m *OrderMutation) OrderDateCleared() bool {
	_, ok := m.clearedFields[order.FieldOrderDate]
	return ok
}

// ResetOrderDate resets all changes to the "order_date" field.
func (m *OrderMutation) ResetOrderDate() {
	m.order_date = nil
	delete(m.clearedFields, order.FieldOrderDate)
}

// SetDeliveryDate sets the "delivery_date" field.
func (m *OrderMutation) SetDeliveryDate(s string) {
	m.delivery_date = &s
}

// DeliveryDate returns the value of the "delivery_date" field in the mutation.
func (m *OrderMutation) DeliveryDate() (r string, exists bool) {
	v := m.delivery_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryDate returns the old "delivery_date" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldDeliveryDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryDate: %w", err)
	}
	return oldValue.DeliveryDate, nil
}

// ClearDeliveryDate clears the value of the "delivery_date" field.
func (m *OrderMutation) ClearDeliveryDate() {
	m.delivery_date = nil
	m.clearedFields[order.FieldDeliveryDate] = struct{}{}
}

// DeliveryDateCleared returns if the "delivery_date" field was cleared in this mutation.
func (m *OrderMutation) DeliveryDateCleared() bool {
	_, ok := m.clearedFields[order.FieldDeliveryDate]
	return ok
}

// ResetDeliveryDate resets all changes to the "delivery_date" field.
func (m *OrderMutation) ResetDeliveryDate() {
	m.delivery_date = nil
	delete(m.clearedFields, order.FieldDeliveryDate)
}

// SetDeliveryTime sets the "delivery_time" field.
func (m *OrderMutation) SetDeliveryTime(s string) {
	m.delivery_time = &s
}

// DeliveryTime returns the value of the "delivery_time" field in the mutation.
func (m *OrderMutation) DeliveryTime() (r string, exists bool) {
	v := m.delivery_time
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryTime returns the old "delivery_time" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldDeliveryTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryTime: %w", err)
	}
	return oldValue.DeliveryTime, nil
}

// ClearDeliveryTime clears the value of the "delivery_time" field.
func (m *OrderMutation) ClearDeliveryTime() {
	m.delivery_time = nil
	m.clearedFields[order.FieldDeliveryTime] = struct{}{}
}

// DeliveryTimeCleared returns if the "delivery_time" field was cleared in this mutation.
func (m *OrderMutation) DeliveryTimeCleared() bool {
	_, ok := m.clearedFields[order.FieldDeliveryTime]
	return ok
}

// ResetDeliveryTime resets all changes to the "delivery_time" field.
func (m *OrderMutation) ResetDeliveryTime() {
	m.delivery_time = nil
	delete(m.clearedFields, order.FieldDeliveryTime)
}

// SetDeliveryMethod sets the "delivery_method" field.
func (m *OrderMutation) SetDeliveryMethod(s string) {
	m.delivery_method = &s
}

// DeliveryMethod returns the value of the "delivery_method" field in the mutation.
func (m *OrderMutation) DeliveryMethod() (r string, exists bool) {
	v := m.delivery_method
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryMethod returns the old "delivery_method" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldDeliveryMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryMethod: %w", err)
	}
	return oldValue.DeliveryMethod, nil
}

// ClearDeliveryMethod clears the value of the "delivery_method" field.
func (m *OrderMutation) ClearDeliveryMethod() {
	m.delivery_method = nil
	m.clearedFields[order.FieldDeliveryMethod] = struct{}{}
}

// DeliveryMethodCleared returns if the "delivery_method" field was cleared in this mutation.
func (m *OrderMutation) DeliveryMethodCleared() bool {
	_, ok := m.clearedFields[order.FieldDeliveryMethod]
	return ok
}

// ResetDeliveryMethod resets all changes to the "delivery_method" field.
func (m *OrderMutation) ResetDeliveryMethod() {
	m.delivery_method = nil
	delete(m.clearedFields, order.FieldDeliveryMethod)
}

// SetTotalPrice sets the "total_price" field.
func (m *OrderMutation) SetTotalPrice(f float64) {
	m.total_price = &f
	m.addtotal_price = nil
}

// TotalPrice returns the value of the "total_price" field in the mutation.
func (m *OrderMutation) TotalPrice() (r float64, exists bool) {
	v := m.total_price
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPrice returns the old "total_price" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTotalPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPrice: %w", err)
	}
	return oldValue.TotalPrice, nil
}

// AddTotalPrice adds f to the "total_price" field.
func (m *OrderMutation) AddTotalPrice(f float64) {
	if m.addtotal_price != nil {
		*m.addtotal_price += f
	} else {
		m.addtotal_price = &f
	}
}

// AddedTotalPrice returns the value that was added to the "total_price" field in this mutation.
func (m *OrderMutation) AddedTotalPrice() (r float64, exists bool) {
	v := m.addtotal_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPrice resets all changes to the "total_price" field.
func (m *OrderMutation) ResetTotalPrice() {
	m.total_price = nil
	m.addtotal_price = nil
}

// SetNotes sets the "notes" field.
func (m *OrderMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *OrderMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *OrderMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[order.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *OrderMutation) NotesCleared() bool {
	_, ok := m.clearedFields[order.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *OrderMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, order.FieldNotes)
}

// SetIsSplit sets the "is_split" field.
func (m *OrderMutation) SetIsSplit(b bool) {
	m.is_split = &b
}

// IsSplit returns the value of the "is_split" field in the mutation.
func (m *OrderMutation) IsSplit() (r bool, exists bool) {
	v := m.is_split
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSplit returns the old "is_split" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldIsSplit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSplit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSplit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSplit: %w", err)
	}
	return oldValue.IsSplit, nil
}

// ResetIsSplit resets all changes to the "is_split" field.
func (m *OrderMutation) ResetIsSplit() {
	m.is_split = nil
}

// SetParentOrderNumber sets the "parent_order_number" field.
func (m *OrderMutation) SetParentOrderNumber(s string) {
	m.parent_order_number = &s
}

// ParentOrderNumber returns the value of the "parent_order_number" field in the mutation.
func (m *OrderMutation) ParentOrderNumber() (r string, exists bool) {
	v := m.parent_order_number
	if v == nil {
		return
	}
	return *v, true
}

// OldParentOrderNumber returns the old "parent_order_number" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldParentOrderNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentOrderNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentOrderNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentOrderNumber: %w", err)
	}
	return oldValue.ParentOrderNumber, nil
}

// ClearParentOrderNumber clears the value of the "parent_order_number" field.
func (m *OrderMutation) ClearParentOrderNumber() {
	m.parent_order_number = nil
	m.clearedFields[order.FieldParentOrderNumber] = struct{}{}
}

// ParentOrderNumberCleared returns if the "parent_order_number" field was cleared in this mutation.
func (m *OrderMutation) ParentOrderNumberCleared() bool {
	_, ok := m.clearedFields[order.FieldParentOrderNumber]
	return ok
}

// ResetParentOrderNumber resets all changes to the "parent_order_number" field.
func (m *OrderMutation) ResetParentOrderNumber() {
	m.parent_order_number = nil
	delete(m.clearedFields, order.FieldParentOrderNumber)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddItemIDs adds the "items" edge to the OrderItem entity by ids.
func (m *OrderMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the OrderItem entity.
func (m *OrderMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the OrderItem entity was cleared.
func (m *OrderMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the OrderItem entity by IDs.
func (m *OrderMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the OrderItem entity.
func (m *OrderMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *OrderMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *OrderMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the OrderMutation builder.
func (m *OrderMutation) Where(ps ...predicate.Order) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Order, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Order).
func (m *OrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.shop != nil {
		fields = append(fields, order.FieldShop)
	}
	if m.order_number != nil {
		fields = append(fields, order.FieldOrderNumber)
	}
	if m.customer_name != nil {
		fields = append(fields, order.FieldCustomerName)
	}
	if m.customer_email != nil {
		fields = append(fields, order.FieldCustomerEmail)
	}
	if m.customer_phone != nil {
		fields = append(fields, order.FieldCustomerPhone)
	}
	if m.order_date != nil {
		fields = append(fields, order.FieldOrderDate)
	}
	if m.delivery_date != nil {
		fields = append(fields, order.FieldDeliveryDate)
	}
	if m.delivery_time != nil {
		fields = append(fields, order.FieldDeliveryTime)
	}
	if m.delivery_method != nil {
		fields = append(fields, order.FieldDeliveryMethod)
	}
	if m.total_price != nil {
		fields = append(fields, order.FieldTotalPrice)
	}
	if m.notes != nil {
		fields = append(fields, order.FieldNotes)
	}
	if m.is_split != nil {
		fields = append(fields, order.FieldIsSplit)
	}
	if m.parent_order_number != nil {
		fields = append(fields, order.FieldParentOrderNumber)
	}
	if m.created_at != nil {
		fields = append(fields, order.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case order.FieldShop:
		return m.Shop()
	case order.FieldOrderNumber:
		return m.OrderNumber()
	case order.FieldCustomerName:
		return m.CustomerName()
	case order.FieldCustomerEmail:
		return m.CustomerEmail()
	case order.FieldCustomerPhone:
		return m.CustomerPhone()
	case order.FieldOrderDate:
		return m.OrderDate()
	case order.FieldDeliveryDate:
		return m.DeliveryDate()
	case order.FieldDeliveryTime:
		return m.DeliveryTime()
	case order.FieldDeliveryMethod:
		return m.DeliveryMethod()
	case order.FieldTotalPrice:
		return m.TotalPrice()
	case order.FieldNotes:
		return m.Notes()
	case order.FieldIsSplit:
		return m.IsSplit()
	case order.FieldParentOrderNumber:
		return m.ParentOrderNumber()
	case order.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case order.FieldShop:
		return m.OldShop(ctx)
	case order.FieldOrderNumber:
		return m.OldOrderNumber(ctx)
	case order.FieldCustomerName:
		return m.OldCustomerName(ctx)
	case order.FieldCustomerEmail:
		return m.OldCustomerEmail(ctx)
	case order.FieldCustomerPhone:
		return m.OldCustomerPhone(ctx)
	case order.FieldOrderDate:
		return m.OldOrderDate(ctx)
	case order.FieldDeliveryDate:
		return m.OldDeliveryDate(ctx)
	case order.FieldDeliveryTime:
		return m.OldDeliveryTime(ctx)
	case order.FieldDeliveryMethod:
		return m.OldDeliveryMethod(ctx)
	case order.FieldTotalPrice:
		return m.OldTotalPrice(ctx)
	case order.FieldNotes:
		return m.OldNotes(ctx)
	case order.FieldIsSplit:
		return m.OldIsSplit(ctx)
	case order.FieldParentOrderNumber:
		return m.OldParentOrderNumber(ctx)
	case order.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Order field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case order.FieldShop:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShop(v)
		return nil
	case order.FieldOrderNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderNumber(v)
		return nil
	case order.FieldCustomerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerName(v)
		return nil
	case order.FieldCustomerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerEmail(v)
		return nil
	case order.FieldCustomerPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerPhone(v)
		return nil
	case order.FieldOrderDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderDate(v)
		return nil
	case order.FieldDeliveryDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryDate(v)
		return nil
	case order.FieldDeliveryTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryTime(v)
		return nil
	case order.FieldDeliveryMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryMethod(v)
		return nil
	case order.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPrice(v)
		return nil
	case order.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case order.FieldIsSplit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSplit(v)
		return nil
	case order.FieldParentOrderNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentOrderNumber(v)
		return nil
	case order.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_price != nil {
		fields = append(fields, order.FieldTotalPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case order.FieldTotalPrice:
		return m.AddedTotalPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case order.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPrice(v)
		return nil
	}
	return fmt.Errorf("unknown Order numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(order.FieldCustomerName) {
		fields = append(fields, order.FieldCustomerName)
	}
	if m.FieldCleared(order.FieldCustomerEmail) {
		fields = append(fields, order.FieldCustomerEmail)
	}
	if m.FieldCleared(order.FieldCustomerPhone) {
		fields = append(fields, order.FieldCustomerPhone)
	}
	if m.FieldCleared(order.FieldOrderDate) {
		fields = append(fields, order.FieldOrderDate)
	}
	if m.FieldCleared(order.FieldDeliveryDate) {
		fields = append(fields, order.FieldDeliveryDate)
	}
	if m.FieldCleared(order.FieldDeliveryTime) {
		fields = append(fields, order.FieldDeliveryTime)
	}
	if m.FieldCleared(order.FieldDeliveryMethod) {
		fields = append(fields, order.FieldDeliveryMethod)
	}
	if m.FieldCleared(order.FieldNotes) {
		fields = append(fields, order.FieldNotes)
	}
	if m.FieldCleared(order.FieldParentOrderNumber) {
		fields = append(fields, order.FieldParentOrderNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderMutation) ClearField(name string) error {
	switch name {
	case order.FieldCustomerName:
		m.ClearCustomerName()
		return nil
	case order.FieldCustomerEmail:
		m.ClearCustomerEmail()
		return nil
	case order.FieldCustomerPhone:
		m.ClearCustomerPhone()
		return nil
	case order.FieldOrderDate:
		m.ClearOrderDate()
		return nil
	case order.FieldDeliveryDate:
		m.ClearDeliveryDate()
		return nil
	case order.FieldDeliveryTime:
		m.ClearDeliveryTime()
		return nil
	case order.FieldDeliveryMethod:
		m.ClearDeliveryMethod()
		return nil
	case order.FieldNotes:
		m.ClearNotes()
		return nil
	case order.FieldParentOrderNumber:
		m.ClearParentOrderNumber()
		return nil
	}
	return fmt.Errorf("unknown Order nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderMutation) ResetField(name string) error {
	switch name {
	case order.FieldShop:
		m.ResetShop()
		return nil
	case order.FieldOrderNumber:
		m.ResetOrderNumber()
		return nil
	case order.FieldCustomerName:
		m.ResetCustomerName()
		return nil
	case order.FieldCustomerEmail:
		m.ResetCustomerEmail()
		return nil
	case order.FieldCustomerPhone:
		m.ResetCustomerPhone()
		return nil
	case order.FieldOrderDate:
		m.ResetOrderDate()
		return nil
	case order.FieldDeliveryDate:
		m.ResetDeliveryDate()
		return nil
	case order.FieldDeliveryTime:
		m.ResetDeliveryTime()
		return nil
	case order.FieldDeliveryMethod:
		m.ResetDeliveryMethod()
		return nil
	case order.FieldTotalPrice:
		m.ResetTotalPrice()
		return nil
	case order.FieldNotes:
		m.ResetNotes()
		return nil
	case order.FieldIsSplit:
		m.ResetIsSplit()
		return nil
	case order.FieldParentOrderNumber:
		m.ResetParentOrderNumber()
		return nil
	case order.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderMutation) EdgeCleared(name string) bool {
	switch name {
	case order.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Order unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderMutation) ResetEdge(name string) error {
	switch name {
	case order.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Order edge %s", name)
}

// OrderItemMutation represents an operation that mutates the OrderItem nodes in the graph.
type OrderItemMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	kind              *string
	title             *string
	variant           *string
	quantity          *int
	addquantity       *int
	price             *float64
	addprice          *float64
	annotations       *[]string
	appendannotations []string
	properties        *map[string]string
	position          *int
	addposition       *int
	clearedFields     map[string]struct{}
	_order            *uuid.UUID
	cleared_order     bool
	done              bool
	oldValue          func(context.Context) (*OrderItem, error)
	predicates        []predicate.OrderItem
}

var _ ent.Mutation = (*OrderItemMutation)(nil)

// orderitemOption allows management of the mutation configuration using functional options.
type orderitemOption func(*OrderItemMutation)

// newOrderItemMutation creates new mutation for the OrderItem entity.
func newOrderItemMutation(c config, op Op, opts ...orderitemOption) *OrderItemMutation {
	m := &OrderItemMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderItemID sets the ID field of the mutation.
func withOrderItemID(id uuid.UUID) orderitemOption {
	return func(m *OrderItemMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderItem
		)
		m.oldValue = func(ctx context.Context) (*OrderItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderItem sets the old OrderItem of the mutation.
func withOrderItem(node *OrderItem) orderitemOption {
	return func(m *OrderItemMutation) {
		m.oldValue = func(context.Context) (*OrderItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderItem entities.
func (m *OrderItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *OrderItemMutation) SetOrderID(u uuid.UUID) {
	m._order = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderItemMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldOrderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderItemMutation) ResetOrderID() {
	m._order = nil
}

// SetKind sets the "kind" field.
func (m *OrderItemMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *OrderItemMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *OrderItemMutation) ResetKind() {
	m.kind = nil
}

// SetTitle sets the "title" field.
func (m *OrderItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *OrderItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *OrderItemMutation) ResetTitle() {
	m.title = nil
}

// SetVariant sets the "variant" field.
func (m *OrderItemMutation) SetVariant(s string) {
	m.variant = &s
}

// Variant returns the value of the "variant" field in the mutation.
func (m *OrderItemMutation) Variant() (r string, exists bool) {
	v := m.variant
	if v == nil {
		return
	}
	return *v, true
}

// OldVariant returns the old "variant" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldVariant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariant: %w", err)
	}
	return oldValue.Variant, nil
}

// ClearVariant clears the value of the "variant" field.
func (m *OrderItemMutation) ClearVariant() {
	m.variant = nil
	m.clearedFields[orderitem.FieldVariant] = struct{}{}
}

// VariantCleared returns if the "variant" field was cleared in this mutation.
func (m *OrderItemMutation) VariantCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldVariant]
	return ok
}

// ResetVariant resets all changes to the "variant" field.
func (m *OrderItemMutation) ResetVariant() {
	m.variant = nil
	delete(m.clearedFields, orderitem.FieldVariant)
}

// SetQuantity sets the "quantity" field.
func (m *OrderItemMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *OrderItemMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *OrderItemMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *OrderItemMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *OrderItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetPrice sets the "price" field.
func (m *OrderItemMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *OrderItemMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *OrderItemMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *OrderItemMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *OrderItemMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetAnnotations sets the "annotations" field.
func (m *OrderItemMutation) SetAnnotations(s []string) {
	m.annotations = &s
	m.appendannotations = nil
}

// Annotations returns the value of the "annotations" field in the mutation.
func (m *OrderItemMutation) Annotations() (r []string, exists bool) {
	v := m.annotations
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnotations returns the old "annotations" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldAnnotations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnotations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnotations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnotations: %w", err)
	}
	return oldValue.Annotations, nil
}

// AppendAnnotations adds s to the "annotations" field.
func (m *OrderItemMutation) AppendAnnotations(s []string) {
	m.appendannotations = append(m.appendannotations, s...)
}

// AppendedAnnotations returns the list of values that were appended to the "annotations" field in this mutation.
func (m *OrderItemMutation) AppendedAnnotations() ([]string, bool) {
	if len(m.appendannotations) == 0 {
		return nil, false
	}
	return m.appendannotations, true
}

// ClearAnnotations clears the value of the "annotations" field.
func (m *OrderItemMutation) ClearAnnotations() {
	m.annotations = nil
	m.appendannotations = nil
	m.clearedFields[orderitem.FieldAnnotations] = struct{}{}
}

// AnnotationsCleared returns if the "annotations" field was cleared in this mutation.
func (m *OrderItemMutation) AnnotationsCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldAnnotations]
	return ok
}

// ResetAnnotations resets all changes to the "annotations" field.
func (m *OrderItemMutation) ResetAnnotations() {
	m.annotations = nil
	m.appendannotations = nil
	delete(m.clearedFields, orderitem.FieldAnnotations)
}

// SetProperties sets the "properties" field.
func (m *OrderItemMutation) SetProperties(value map[string]string) {
	m.properties = &value
}

// Properties returns the value of the "properties" field in the mutation.
func (m *OrderItemMutation) Properties() (r map[string]string, exists bool) {
	v := m.properties
	if v == nil {
		return
	}
	return *v, true
}

// OldProperties returns the old "properties" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldProperties(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperties: %w", err)
	}
	return oldValue.Properties, nil
}

// ClearProperties clears the value of the "properties" field.
func (m *OrderItemMutation) ClearProperties() {
	m.properties = nil
	m.clearedFields[orderitem.FieldProperties] = struct{}{}
}

// PropertiesCleared returns if the "properties" field was cleared in this mutation.
func (m *OrderItemMutation) PropertiesCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldProperties]
	return ok
}

// ResetProperties resets all changes to the "properties" field.
func (m *OrderItemMutation) ResetProperties() {
	m.properties = nil
	delete(m.clearedFields, orderitem.FieldProperties)
}

// SetPosition sets the "position" field.
func (m *OrderItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *OrderItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *OrderItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *OrderItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *OrderItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *OrderItemMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[orderitem.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *OrderItemMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *OrderItemMutation) OrderIDs() (ids []uuid.UUID) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *OrderItemMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// Where appends a list predicates to the OrderItemMutation builder.
func (m *OrderItemMutation) Where(ps ...predicate.OrderItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderItem).
func (m *OrderItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderItemMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m._order != nil {
		fields = append(fields, orderitem.FieldOrderID)
	}
	if m.kind != nil {
		fields = append(fields, orderitem.FieldKind)
	}
	if m.title != nil {
		fields = append(fields, orderitem.FieldTitle)
	}
	if m.variant != nil {
		fields = append(fields, orderitem.FieldVariant)
	}
	if m.quantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	if m.price != nil {
		fields = append(fields, orderitem.FieldPrice)
	}
	if m.annotations != nil {
		fields = append(fields, orderitem.FieldAnnotations)
	}
	if m.properties != nil {
		fields = append(fields, orderitem.FieldProperties)
	}
	if m.position != nil {
		fields = append(fields, orderitem.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldOrderID:
		return m.OrderID()
	case orderitem.FieldKind:
		return m.Kind()
	case orderitem.FieldTitle:
		return m.Title()
	case orderitem.FieldVariant:
		return m.Variant()
	case orderitem.FieldQuantity:
		return m.Quantity()
	case orderitem.FieldPrice:
		return m.Price()
	case orderitem.FieldAnnotations:
		return m.Annotations()
	case orderitem.FieldProperties:
		return m.Properties()
	case orderitem.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderitem.FieldOrderID:
		return m.OldOrderID(ctx)
	case orderitem.FieldKind:
		return m.OldKind(ctx)
	case orderitem.FieldTitle:
		return m.OldTitle(ctx)
	case orderitem.FieldVariant:
		return m.OldVariant(ctx)
	case orderitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case orderitem.FieldPrice:
		return m.OldPrice(ctx)
	case orderitem.FieldAnnotations:
		return m.OldAnnotations(ctx)
	case orderitem.FieldProperties:
		return m.OldProperties(ctx)
	case orderitem.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown OrderItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case orderitem.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case orderitem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case orderitem.FieldVariant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariant(v)
		return nil
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case orderitem.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case orderitem.FieldAnnotations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnotations(v)
		return nil
	case orderitem.FieldProperties:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperties(v)
		return nil
	case orderitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	if m.addprice != nil {
		fields = append(fields, orderitem.FieldPrice)
	}
	if m.addposition != nil {
		fields = append(fields, orderitem.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldQuantity:
		return m.AddedQuantity()
	case orderitem.FieldPrice:
		return m.AddedPrice()
	case orderitem.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case orderitem.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case orderitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orderitem.FieldVariant) {
		fields = append(fields, orderitem.FieldVariant)
	}
	if m.FieldCleared(orderitem.FieldAnnotations) {
		fields = append(fields, orderitem.FieldAnnotations)
	}
	if m.FieldCleared(orderitem.FieldProperties) {
		fields = append(fields, orderitem.FieldProperties)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderItemMutation) ClearField(name string) error {
	switch name {
	case orderitem.FieldVariant:
		m.ClearVariant()
		return nil
	case orderitem.FieldAnnotations:
		m.ClearAnnotations()
		return nil
	case orderitem.FieldProperties:
		m.ClearProperties()
		return nil
	}
	return fmt.Errorf("unknown OrderItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderItemMutation) ResetField(name string) error {
	switch name {
	case orderitem.FieldOrderID:
		m.ResetOrderID()
		return nil
	case orderitem.FieldKind:
		m.ResetKind()
		return nil
	case orderitem.FieldTitle:
		m.ResetTitle()
		return nil
	case orderitem.FieldVariant:
		m.ResetVariant()
		return nil
	case orderitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case orderitem.FieldPrice:
		m.ResetPrice()
		return nil
	case orderitem.FieldAnnotations:
		m.ResetAnnotations()
		return nil
	case orderitem.FieldProperties:
		m.ResetProperties()
		return nil
	case orderitem.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._order != nil {
		edges = append(edges, orderitem.EdgeOrder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderitem.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_order {
		edges = append(edges, orderitem.EdgeOrder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderItemMutation) EdgeCleared(name string) bool {
	switch name {
	case orderitem.EdgeOrder:
		return m.cleared_order
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderItemMutation) ClearEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ClearOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderItemMutation) ResetEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderItem edge %s", name)
}

// WebhookEventMutation represents an operation that mutates the WebhookEvent nodes in the graph.
type WebhookEventMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	shop          *string
	payload       *json.RawMessage
	appendpayload json.RawMessage
	received_at   *time.Time
	processed     *bool
	processed_at  *time.Time
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WebhookEvent, error)
	predicates    []predicate.WebhookEvent
}

var _ ent.Mutation = (*WebhookEventMutation)(nil)

// webhookeventOption allows management of the mutation configuration using functional options.
type webhookeventOption func(*WebhookEventMutation)

// newWebhookEventMutation creates new mutation for the WebhookEvent entity.
func newWebhookEventMutation(c config, op Op, opts ...webhookeventOption) *WebhookEventMutation {
	m := &WebhookEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEventID sets the ID field of the mutation.
func withWebhookEventID(id uuid.UUID) webhookeventOption {
	return func(m *WebhookEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEvent
		)
		m.oldValue = func(ctx context.Context) (*WebhookEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEvent sets the old WebhookEvent of the mutation.
func withWebhookEvent(node *WebhookEvent) webhookeventOption {
	return func(m *WebhookEventMutation) {
		m.oldValue = func(context.Context) (*WebhookEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEvent entities.
func (m *WebhookEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetShop sets the "shop" field.
func (m *WebhookEventMutation) SetShop(s string) {
	m.shop = &s
}

// Shop returns the value of the "shop" field in the mutation.
func (m *WebhookEventMutation) Shop() (r string, exists bool) {
	v := m.shop
	if v == nil {
		return
	}
	return *v, true
}

// OldShop returns the old "shop" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldShop(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShop is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShop requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShop: %w", err)
	}
	return oldValue.Shop, nil
}

// ResetShop resets all changes to the "shop" field.
func (m *WebhookEventMutation) ResetShop() {
	m.shop = nil
}

// SetPayload sets the "payload" field.
func (m *WebhookEventMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookEventMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *WebhookEventMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *WebhookEventMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookEventMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *WebhookEventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *WebhookEventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *WebhookEventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetProcessed sets the "processed" field.
func (m *WebhookEventMutation) SetProcessed(b bool) {
	m.processed = &b
}

// Processed returns the value of the "processed" field in the mutation.
func (m *WebhookEventMutation) Processed() (r bool, exists bool) {
	v := m.processed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessed returns the old "processed" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessed: %w", err)
	}
	return oldValue.Processed, nil
}

// ResetProcessed resets all changes to the "processed" field.
func (m *WebhookEventMutation) ResetProcessed() {
	m.processed = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *WebhookEventMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *WebhookEventMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *WebhookEventMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[webhookevent.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *WebhookEventMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *WebhookEventMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, webhookevent.FieldProcessedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *WebhookEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WebhookEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WebhookEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[webhookevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WebhookEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WebhookEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, webhookevent.FieldErrorMessage)
}

// Where appends a list predicates to the WebhookEventMutation builder.
func (m *WebhookEventMutation) Where(ps ...predicate.WebhookEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEvent).
func (m *WebhookEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.shop != nil {
		fields = append(fields, webhookevent.FieldShop)
	}
	if m.payload != nil {
		fields = append(fields, webhookevent.FieldPayload)
	}
	if m.received_at != nil {
		fields = append(fields, webhookevent.FieldReceivedAt)
	}
	if m.processed != nil {
		fields = append(fields, webhookevent.FieldProcessed)
	}
	if m.processed_at != nil {
		fields = append(fields, webhookevent.FieldProcessedAt)
	}
	if m.error_message != nil {
		fields = append(fields, webhookevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldShop:
		return m.Shop()
	case webhookevent.FieldPayload:
		return m.Payload()
	case webhookevent.FieldReceivedAt:
		return m.ReceivedAt()
	case webhookevent.FieldProcessed:
		return m.Processed()
	case webhookevent.FieldProcessedAt:
		return m.ProcessedAt()
	case webhookevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookevent.FieldShop:
		return m.OldShop(ctx)
	case webhookevent.FieldPayload:
		return m.OldPayload(ctx)
	case webhookevent.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case webhookevent.FieldProcessed:
		return m.OldProcessed(ctx)
	case webhookevent.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case webhookevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldShop:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShop(v)
		return nil
	case webhookevent.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookevent.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case webhookevent.FieldProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessed(v)
		return nil
	case webhookevent.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case webhookevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookevent.FieldProcessedAt) {
		fields = append(fields, webhookevent.FieldProcessedAt)
	}
	if m.FieldCleared(webhookevent.FieldErrorMessage) {
		fields = append(fields, webhookevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEventMutation) ClearField(name string) error {
	switch name {
	case webhookevent.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case webhookevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEventMutation) ResetField(name string) error {
	switch name {
	case webhookevent.FieldShop:
		m.ResetShop()
		return nil
	case webhookevent.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookevent.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case webhookevent.FieldProcessed:
		m.ResetProcessed()
		return nil
	case webhookevent.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case webhookevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent edge %s", name)
}
