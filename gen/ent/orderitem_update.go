// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sugarloafbakes/orderpipe/gen/ent/order"
	"github.com/sugarloafbakes/orderpipe/gen/ent/orderitem"
	"github.com/sugarloafbakes/orderpipe/gen/ent/predicate"
)

// OrderItemUpdate is the builder for updating OrderItem entities.
type OrderItemUpdate struct {
	config
	hooks    []Hook
	mutation *OrderItemMutation
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdate) Where(ps ...predicate.OrderItem) *OrderItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *OrderItemUpdate) SetOrderID(v uuid.UUID) *OrderItemUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableOrderID(v *uuid.UUID) *OrderItemUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *OrderItemUpdate) SetKind(v string) *OrderItemUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableKind(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *OrderItemUpdate) SetTitle(v string) *OrderItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableTitle(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *OrderItemUpdate) SetVariant(v string) *OrderItemUpdate {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableVariant(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// ClearVariant clears the value of the "variant" field.
func (_u *OrderItemUpdate) ClearVariant() *OrderItemUpdate {
	_u.mutation.ClearVariant()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OrderItemUpdate) SetQuantity(v int) *OrderItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableQuantity(v *int) *OrderItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *OrderItemUpdate) AddQuantity(v int) *OrderItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *OrderItemUpdate) SetPrice(v float64) *OrderItemUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillablePrice(v *float64) *OrderItemUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *OrderItemUpdate) AddPrice(v float64) *OrderItemUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetAnnotations sets the "annotations" field.
func (_u *OrderItemUpdate) SetAnnotations(v []string) *OrderItemUpdate {
	_u.mutation.SetAnnotations(v)
	return _u
}

// AppendAnnotations appends value to the "annotations" field.
func (_u *OrderItemUpdate) AppendAnnotations(v []string) *OrderItemUpdate {
	_u.mutation.AppendAnnotations(v)
	return _u
}

// ClearAnnotations clears the value of the "annotations" field.
func (_u *OrderItemUpdate) ClearAnnotations() *OrderItemUpdate {
	_u.mutation.ClearAnnotations()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *OrderItemUpdate) SetProperties(v map[string]string) *OrderItemUpdate {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *OrderItemUpdate) ClearProperties() *OrderItemUpdate {
	_u.mutation.ClearProperties()
	return _u
}

// SetPosition sets the "position" field.
func (_u *OrderItemUpdate) SetPosition(v int) *OrderItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillablePosition(v *int) *OrderItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *OrderItemUpdate) AddPosition(v int) *OrderItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *OrderItemUpdate) SetOrder(v *Order) *OrderItemUpdate {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdate) Mutation() *OrderItemMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *OrderItemUpdate) ClearOrder() *OrderItemUpdate {
	_u.mutation.ClearOrder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := orderitem.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "OrderItem.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := orderitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "OrderItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := orderitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "OrderItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := orderitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "OrderItem.position": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.order"`)
	}
	return nil
}

func (_u *OrderItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(orderitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(orderitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(orderitem.FieldVariant, field.TypeString, value)
	}
	if _u.mutation.VariantCleared() {
		_spec.ClearField(orderitem.FieldVariant, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(orderitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(orderitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Annotations(); ok {
		_spec.SetField(orderitem.FieldAnnotations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnnotations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, orderitem.FieldAnnotations, value)
		})
	}
	if _u.mutation.AnnotationsCleared() {
		_spec.ClearField(orderitem.FieldAnnotations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(orderitem.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(orderitem.FieldProperties, field.TypeJSON)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(orderitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(orderitem.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.OrderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.OrderTable,
			Columns: []string{orderitem.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.OrderTable,
			Columns: []string{orderitem.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderItemUpdateOne is the builder for updating a single OrderItem entity.
type OrderItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderItemMutation
}

// SetOrderID sets the "order_id" field.
func (_u *OrderItemUpdateOne) SetOrderID(v uuid.UUID) *OrderItemUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableOrderID(v *uuid.UUID) *OrderItemUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *OrderItemUpdateOne) SetKind(v string) *OrderItemUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableKind(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *OrderItemUpdateOne) SetTitle(v string) *OrderItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableTitle(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *OrderItemUpdateOne) SetVariant(v string) *OrderItemUpdateOne {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableVariant(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// ClearVariant clears the value of the "variant" field.
func (_u *OrderItemUpdateOne) ClearVariant() *OrderItemUpdateOne {
	_u.mutation.ClearVariant()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OrderItemUpdateOne) SetQuantity(v int) *OrderItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableQuantity(v *int) *OrderItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *OrderItemUpdateOne) AddQuantity(v int) *OrderItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *OrderItemUpdateOne) SetPrice(v float64) *OrderItemUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillablePrice(v *float64) *OrderItemUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *OrderItemUpdateOne) AddPrice(v float64) *OrderItemUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetAnnotations sets the "annotations" field.
func (_u *OrderItemUpdateOne) SetAnnotations(v []string) *OrderItemUpdateOne {
	_u.mutation.SetAnnotations(v)
	return _u
}

// AppendAnnotations appends value to the "annotations" field.
func (_u *OrderItemUpdateOne) AppendAnnotations(v []string) *OrderItemUpdateOne {
	_u.mutation.AppendAnnotations(v)
	return _u
}

// ClearAnnotations clears the value of the "annotations" field.
func (_u *OrderItemUpdateOne) ClearAnnotations() *OrderItemUpdateOne {
	_u.mutation.ClearAnnotations()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *OrderItemUpdateOne) SetProperties(v map[string]string) *OrderItemUpdateOne {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *OrderItemUpdateOne) ClearProperties() *OrderItemUpdateOne {
	_u.mutation.ClearProperties()
	return _u
}

// SetPosition sets the "position" field.
func (_u *OrderItemUpdateOne) SetPosition(v int) *OrderItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillablePosition(v *int) *OrderItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *OrderItemUpdateOne) AddPosition(v int) *OrderItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *OrderItemUpdateOne) SetOrder(v *Order) *OrderItemUpdateOne {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdateOne) Mutation() *OrderItemMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *OrderItemUpdateOne) ClearOrder() *OrderItemUpdateOne {
	_u.mutation.ClearOrder()
	return _u
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdateOne) Where(ps ...predicate.OrderItem) *OrderItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderItemUpdateOne) Select(field string, fields ...string) *OrderItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderItem entity.
func (_u *OrderItemUpdateOne) Save(ctx context.Context) (*OrderItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdateOne) SaveX(ctx context.Context) *OrderItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := orderitem.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "OrderItem.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := orderitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "OrderItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := orderitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "OrderItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := orderitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "OrderItem.position": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.order"`)
	}
	return nil
}

func (_u *OrderItemUpdateOne) sqlSave(ctx context.Context) (_node *OrderItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrderItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderitem.FieldID)
		for _, f := range fields {
			if !orderitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orderitem.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(orderitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(orderitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(orderitem.FieldVariant, field.TypeString, value)
	}
	if _u.mutation.VariantCleared() {
		_spec.ClearField(orderitem.FieldVariant, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(orderitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(orderitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Annotations(); ok {
		_spec.SetField(orderitem.FieldAnnotations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnnotations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, orderitem.FieldAnnotations, value)
		})
	}
	if _u.mutation.AnnotationsCleared() {
		_spec.ClearField(orderitem.FieldAnnotations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(orderitem.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(orderitem.FieldProperties, field.TypeJSON)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(orderitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(orderitem.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.OrderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.OrderTable,
			Columns: []string{orderitem.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.OrderTable,
			Columns: []string{orderitem.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OrderItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
