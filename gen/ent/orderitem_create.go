// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sugarloafbakes/orderpipe/gen/ent/order"
	"github.com/sugarloafbakes/orderpipe/gen/ent/orderitem"
)

// OrderItemCreate is the builder for creating a OrderItem entity.
type OrderItemCreate struct {
	config
	mutation *OrderItemMutation
	hooks    []Hook
}

// SetOrderID sets the "order_id" field.
func (_c *OrderItemCreate) SetOrderID(v uuid.UUID) *OrderItemCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *OrderItemCreate) SetKind(v string) *OrderItemCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *OrderItemCreate) SetTitle(v string) *OrderItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetVariant sets the "variant" field.
func (_c *OrderItemCreate) SetVariant(v string) *OrderItemCreate {
	_c.mutation.SetVariant(v)
	return _c
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableVariant(v *string) *OrderItemCreate {
	if v != nil {
		_c.SetVariant(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *OrderItemCreate) SetQuantity(v int) *OrderItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *OrderItemCreate) SetPrice(v float64) *OrderItemCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetAnnotations sets the "annotations" field.
func (_c *OrderItemCreate) SetAnnotations(v []string) *OrderItemCreate {
	_c.mutation.SetAnnotations(v)
	return _c
}

// SetProperties sets the "properties" field.
func (_c *OrderItemCreate) SetProperties(v map[string]string) *OrderItemCreate {
	_c.mutation.SetProperties(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *OrderItemCreate) SetPosition(v int) *OrderItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetID sets the "id" field.
func (_c *OrderItemCreate) SetID(v uuid.UUID) *OrderItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableID(v *uuid.UUID) *OrderItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOrder sets the "order" edge to the Order entity.
func (_c *OrderItemCreate) SetOrder(v *Order) *OrderItemCreate {
	return _c.SetOrderID(v.ID)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_c *OrderItemCreate) Mutation() *OrderItemMutation {
	return _c.mutation
}

// Save creates the OrderItem in the database.
func (_c *OrderItemCreate) Save(ctx context.Context) (*OrderItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderItemCreate) SaveX(ctx context.Context) *OrderItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := orderitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderItemCreate) check() error {
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "OrderItem.order_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "OrderItem.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := orderitem.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "OrderItem.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "OrderItem.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := orderitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "OrderItem.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "OrderItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := orderitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "OrderItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "OrderItem.price"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "OrderItem.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := orderitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "OrderItem.position": %w`, err)}
		}
	}
	if len(_c.mutation.OrderIDs()) == 0 {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required edge "OrderItem.order"`)}
	}
	return nil
}

func (_c *OrderItemCreate) sqlSave(ctx context.Context) (*OrderItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrderItemCreate) createSpec() (*OrderItem, *sqlgraph.CreateSpec) {
	var (
		_node = &OrderItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orderitem.Table, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(orderitem.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(orderitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Variant(); ok {
		_spec.SetField(orderitem.FieldVariant, field.TypeString, value)
		_node.Variant = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(orderitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(orderitem.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Annotations(); ok {
		_spec.SetField(orderitem.FieldAnnotations, field.TypeJSON, value)
		_node.Annotations = value
	}
	if value, ok := _c.mutation.Properties(); ok {
		_spec.SetField(orderitem.FieldProperties, field.TypeJSON, value)
		_node.Properties = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(orderitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.OrderIDs(); len(nodes) > 0 {
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
		_node.OrderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrderItemCreateBulk is the builder for creating many OrderItem entities in bulk.
type OrderItemCreateBulk struct {
	config
	err      error
	builders []*OrderItemCreate
}

// Save creates the OrderItem entities in the database.
func (_c *OrderItemCreateBulk) Save(ctx context.Context) ([]*OrderItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrderItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OrderItemCreateBulk) SaveX(ctx context.Context) []*OrderItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
