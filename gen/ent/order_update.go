// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sugarloafbakes/orderpipe/gen/ent/order"
	"github.com/sugarloafbakes/orderpipe/gen/ent/orderitem"
	"github.com/sugarloafbakes/orderpipe/gen/ent/predicate"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetShop sets the "shop" field.
func (_u *OrderUpdate) SetShop(v string) *OrderUpdate {
	_u.mutation.SetShop(v)
	return _u
}

// SetNillableShop sets the "shop" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableShop(v *string) *OrderUpdate {
	if v != nil {
		_u.SetShop(*v)
	}
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *OrderUpdate) SetOrderNumber(v string) *OrderUpdate {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableOrderNumber(v *string) *OrderUpdate {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OrderUpdate) SetCustomerName(v string) *OrderUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCustomerName(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *OrderUpdate) ClearCustomerName() *OrderUpdate {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCustomerEmail sets the "customer_email" field.
func (_u *OrderUpdate) SetCustomerEmail(v string) *OrderUpdate {
	_u.mutation.SetCustomerEmail(v)
	return _u
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCustomerEmail(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCustomerEmail(*v)
	}
	return _u
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (_u *OrderUpdate) ClearCustomerEmail() *OrderUpdate {
	_u.mutation.ClearCustomerEmail()
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *OrderUpdate) SetCustomerPhone(v string) *OrderUpdate {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCustomerPhone(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// ClearCustomerPhone clears the value of the "customer_phone" field.
func (_u *OrderUpdate) ClearCustomerPhone() *OrderUpdate {
	_u.mutation.ClearCustomerPhone()
	return _u
}

// SetOrderDate sets the "order_date" field.
func (_u *OrderUpdate) SetOrderDate(v string) *OrderUpdate {
	_u.mutation.SetOrderDate(v)
	return _u
}

// SetNillableOrderDate sets the "order_date" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableOrderDate(v *string) *OrderUpdate {
	if v != nil {
		_u.SetOrderDate(*v)
	}
	return _u
}

// ClearOrderDate clears the value of the "order_date" field.
func (_u *OrderUpdate) ClearOrderDate() *OrderUpdate {
	_u.mutation.ClearOrderDate()
	return _u
}

// SetDeliveryDate sets the "delivery_date" field.
func (_u *OrderUpdate) SetDeliveryDate(v string) *OrderUpdate {
	_u.mutation.SetDeliveryDate(v)
	return _u
}

// SetNillableDeliveryDate sets the "delivery_date" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableDeliveryDate(v *string) *OrderUpdate {
	if v != nil {
		_u.SetDeliveryDate(*v)
	}
	return _u
}

// ClearDeliveryDate clears the value of the "delivery_date" field.
func (_u *OrderUpdate) ClearDeliveryDate() *OrderUpdate {
	_u.mutation.ClearDeliveryDate()
	return _u
}

// SetDeliveryTime sets the "delivery_time" field.
func (_u *OrderUpdate) SetDeliveryTime(v string) *OrderUpdate {
	_u.mutation.SetDeliveryTime(v)
	return _u
}

// SetNillableDeliveryTime sets the "delivery_time" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableDeliveryTime(v *string) *OrderUpdate {
	if v != nil {
		_u.SetDeliveryTime(*v)
	}
	return _u
}

// ClearDeliveryTime clears the value of the "delivery_time" field.
func (_u *OrderUpdate) ClearDeliveryTime() *OrderUpdate {
	_u.mutation.ClearDeliveryTime()
	return _u
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_u *OrderUpdate) SetDeliveryMethod(v string) *OrderUpdate {
	_u.mutation.SetDeliveryMethod(v)
	return _u
}

// SetNillableDeliveryMethod sets the "delivery_method" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableDeliveryMethod(v *string) *OrderUpdate {
	if v != nil {
		_u.SetDeliveryMethod(*v)
	}
	return _u
}

// ClearDeliveryMethod clears the value of the "delivery_method" field.
func (_u *OrderUpdate) ClearDeliveryMethod() *OrderUpdate {
	_u.mutation.ClearDeliveryMethod()
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *OrderUpdate) SetTotalPrice(v float64) *OrderUpdate {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTotalPrice(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *OrderUpdate) AddTotalPrice(v float64) *OrderUpdate {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OrderUpdate) SetNotes(v string) *OrderUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableNotes(v *string) *OrderUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OrderUpdate) ClearNotes() *OrderUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetIsSplit sets the "is_split" field.
func (_u *OrderUpdate) SetIsSplit(v bool) *OrderUpdate {
	_u.mutation.SetIsSplit(v)
	return _u
}

// SetNillableIsSplit sets the "is_split" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableIsSplit(v *bool) *OrderUpdate {
	if v != nil {
		_u.SetIsSplit(*v)
	}
	return _u
}

// SetParentOrderNumber sets the "parent_order_number" field.
func (_u *OrderUpdate) SetParentOrderNumber(v string) *OrderUpdate {
	_u.mutation.SetParentOrderNumber(v)
	return _u
}

// SetNillableParentOrderNumber sets the "parent_order_number" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableParentOrderNumber(v *string) *OrderUpdate {
	if v != nil {
		_u.SetParentOrderNumber(*v)
	}
	return _u
}

// ClearParentOrderNumber clears the value of the "parent_order_number" field.
func (_u *OrderUpdate) ClearParentOrderNumber() *OrderUpdate {
	_u.mutation.ClearParentOrderNumber()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderUpdate) SetCreatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCreatedAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdate) AddItemIDs(ids ...uuid.UUID) *OrderUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdate) AddItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdate) ClearItems() *OrderUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdate) RemoveItemIDs(ids ...uuid.UUID) *OrderUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdate) RemoveItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdate) check() error {
	if v, ok := _u.mutation.Shop(); ok {
		if err := order.ShopValidator(v); err != nil {
			return &ValidationError{Name: "shop", err: fmt.Errorf(`ent: validator failed for field "Order.shop": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderNumber(); ok {
		if err := order.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`ent: validator failed for field "Order.order_number": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Shop(); ok {
		_spec.SetField(order.FieldShop, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(order.FieldOrderNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(order.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerEmail(); ok {
		_spec.SetField(order.FieldCustomerEmail, field.TypeString, value)
	}
	if _u.mutation.CustomerEmailCleared() {
		_spec.ClearField(order.FieldCustomerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(order.FieldCustomerPhone, field.TypeString, value)
	}
	if _u.mutation.CustomerPhoneCleared() {
		_spec.ClearField(order.FieldCustomerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.OrderDate(); ok {
		_spec.SetField(order.FieldOrderDate, field.TypeString, value)
	}
	if _u.mutation.OrderDateCleared() {
		_spec.ClearField(order.FieldOrderDate, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryDate(); ok {
		_spec.SetField(order.FieldDeliveryDate, field.TypeString, value)
	}
	if _u.mutation.DeliveryDateCleared() {
		_spec.ClearField(order.FieldDeliveryDate, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryTime(); ok {
		_spec.SetField(order.FieldDeliveryTime, field.TypeString, value)
	}
	if _u.mutation.DeliveryTimeCleared() {
		_spec.ClearField(order.FieldDeliveryTime, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryMethod(); ok {
		_spec.SetField(order.FieldDeliveryMethod, field.TypeString, value)
	}
	if _u.mutation.DeliveryMethodCleared() {
		_spec.ClearField(order.FieldDeliveryMethod, field.TypeString)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(order.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(order.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsSplit(); ok {
		_spec.SetField(order.FieldIsSplit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParentOrderNumber(); ok {
		_spec.SetField(order.FieldParentOrderNumber, field.TypeString, value)
	}
	if _u.mutation.ParentOrderNumberCleared() {
		_spec.ClearField(order.FieldParentOrderNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetShop sets the "shop" field.
func (_u *OrderUpdateOne) SetShop(v string) *OrderUpdateOne {
	_u.mutation.SetShop(v)
	return _u
}

// SetNillableShop sets the "shop" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableShop(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetShop(*v)
	}
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *OrderUpdateOne) SetOrderNumber(v string) *OrderUpdateOne {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableOrderNumber(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OrderUpdateOne) SetCustomerName(v string) *OrderUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCustomerName(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *OrderUpdateOne) ClearCustomerName() *OrderUpdateOne {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetCustomerEmail sets the "customer_email" field.
func (_u *OrderUpdateOne) SetCustomerEmail(v string) *OrderUpdateOne {
	_u.mutation.SetCustomerEmail(v)
	return _u
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCustomerEmail(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCustomerEmail(*v)
	}
	return _u
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (_u *OrderUpdateOne) ClearCustomerEmail() *OrderUpdateOne {
	_u.mutation.ClearCustomerEmail()
	return _u
}

// SetCustomerPhone sets the "customer_phone" field.
func (_u *OrderUpdateOne) SetCustomerPhone(v string) *OrderUpdateOne {
	_u.mutation.SetCustomerPhone(v)
	return _u
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCustomerPhone(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCustomerPhone(*v)
	}
	return _u
}

// ClearCustomerPhone clears the value of the "customer_phone" field.
func (_u *OrderUpdateOne) ClearCustomerPhone() *OrderUpdateOne {
	_u.mutation.ClearCustomerPhone()
	return _u
}

// SetOrderDate sets the "order_date" field.
func (_u *OrderUpdateOne) SetOrderDate(v string) *OrderUpdateOne {
	_u.mutation.SetOrderDate(v)
	return _u
}

// SetNillableOrderDate sets the "order_date" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableOrderDate(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetOrderDate(*v)
	}
	return _u
}

// ClearOrderDate clears the value of the "order_date" field.
func (_u *OrderUpdateOne) ClearOrderDate() *OrderUpdateOne {
	_u.mutation.ClearOrderDate()
	return _u
}

// SetDeliveryDate sets the "delivery_date" field.
func (_u *OrderUpdateOne) SetDeliveryDate(v string) *OrderUpdateOne {
	_u.mutation.SetDeliveryDate(v)
	return _u
}

// SetNillableDeliveryDate sets the "delivery_date" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableDeliveryDate(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetDeliveryDate(*v)
	}
	return _u
}

// ClearDeliveryDate clears the value of the "delivery_date" field.
func (_u *OrderUpdateOne) ClearDeliveryDate() *OrderUpdateOne {
	_u.mutation.ClearDeliveryDate()
	return _u
}

// SetDeliveryTime sets the "delivery_time" field.
func (_u *OrderUpdateOne) SetDeliveryTime(v string) *OrderUpdateOne {
	_u.mutation.SetDeliveryTime(v)
	return _u
}

// SetNillableDeliveryTime sets the "delivery_time" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableDeliveryTime(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetDeliveryTime(*v)
	}
	return _u
}

// ClearDeliveryTime clears the value of the "delivery_time" field.
func (_u *OrderUpdateOne) ClearDeliveryTime() *OrderUpdateOne {
	_u.mutation.ClearDeliveryTime()
	return _u
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_u *OrderUpdateOne) SetDeliveryMethod(v string) *OrderUpdateOne {
	_u.mutation.SetDeliveryMethod(v)
	return _u
}

// SetNillableDeliveryMethod sets the "delivery_method" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableDeliveryMethod(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetDeliveryMethod(*v)
	}
	return _u
}

// ClearDeliveryMethod clears the value of the "delivery_method" field.
func (_u *OrderUpdateOne) ClearDeliveryMethod() *OrderUpdateOne {
	_u.mutation.ClearDeliveryMethod()
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *OrderUpdateOne) SetTotalPrice(v float64) *OrderUpdateOne {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTotalPrice(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *OrderUpdateOne) AddTotalPrice(v float64) *OrderUpdateOne {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OrderUpdateOne) SetNotes(v string) *OrderUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableNotes(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OrderUpdateOne) ClearNotes() *OrderUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetIsSplit sets the "is_split" field.
func (_u *OrderUpdateOne) SetIsSplit(v bool) *OrderUpdateOne {
	_u.mutation.SetIsSplit(v)
	return _u
}

// SetNillableIsSplit sets the "is_split" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableIsSplit(v *bool) *OrderUpdateOne {
	if v != nil {
		_u.SetIsSplit(*v)
	}
	return _u
}

// SetParentOrderNumber sets the "parent_order_number" field.
func (_u *OrderUpdateOne) SetParentOrderNumber(v string) *OrderUpdateOne {
	_u.mutation.SetParentOrderNumber(v)
	return _u
}

// SetNillableParentOrderNumber sets the "parent_order_number" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableParentOrderNumber(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetParentOrderNumber(*v)
	}
	return _u
}

// ClearParentOrderNumber clears the value of the "parent_order_number" field.
func (_u *OrderUpdateOne) ClearParentOrderNumber() *OrderUpdateOne {
	_u.mutation.ClearParentOrderNumber()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderUpdateOne) SetCreatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCreatedAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdateOne) AddItemIDs(ids ...uuid.UUID) *OrderUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) AddItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) ClearItems() *OrderUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *OrderUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdateOne) RemoveItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdateOne) check() error {
	if v, ok := _u.mutation.Shop(); ok {
		if err := order.ShopValidator(v); err != nil {
			return &ValidationError{Name: "shop", err: fmt.Errorf(`ent: validator failed for field "Order.shop": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderNumber(); ok {
		if err := order.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`ent: validator failed for field "Order.order_number": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != order.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Shop(); ok {
		_spec.SetField(order.FieldShop, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(order.FieldOrderNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(order.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerEmail(); ok {
		_spec.SetField(order.FieldCustomerEmail, field.TypeString, value)
	}
	if _u.mutation.CustomerEmailCleared() {
		_spec.ClearField(order.FieldCustomerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerPhone(); ok {
		_spec.SetField(order.FieldCustomerPhone, field.TypeString, value)
	}
	if _u.mutation.CustomerPhoneCleared() {
		_spec.ClearField(order.FieldCustomerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.OrderDate(); ok {
		_spec.SetField(order.FieldOrderDate, field.TypeString, value)
	}
	if _u.mutation.OrderDateCleared() {
		_spec.ClearField(order.FieldOrderDate, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryDate(); ok {
		_spec.SetField(order.FieldDeliveryDate, field.TypeString, value)
	}
	if _u.mutation.DeliveryDateCleared() {
		_spec.ClearField(order.FieldDeliveryDate, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryTime(); ok {
		_spec.SetField(order.FieldDeliveryTime, field.TypeString, value)
	}
	if _u.mutation.DeliveryTimeCleared() {
		_spec.ClearField(order.FieldDeliveryTime, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryMethod(); ok {
		_spec.SetField(order.FieldDeliveryMethod, field.TypeString, value)
	}
	if _u.mutation.DeliveryMethodCleared() {
		_spec.ClearField(order.FieldDeliveryMethod, field.TypeString)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(order.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(order.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsSplit(); ok {
		_spec.SetField(order.FieldIsSplit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParentOrderNumber(); ok {
		_spec.SetField(order.FieldParentOrderNumber, field.TypeString, value)
	}
	if _u.mutation.ParentOrderNumberCleared() {
		_spec.ClearField(order.FieldParentOrderNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
