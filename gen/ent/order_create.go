// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sugarloafbakes/orderpipe/gen/ent/order"
	"github.com/sugarloafbakes/orderpipe/gen/ent/orderitem"
)

// OrderCreate is the builder for creating a Order entity.
type OrderCreate struct {
	config
	mutation *OrderMutation
	hooks    []Hook
}

// SetShop sets the "shop" field.
func (_c *OrderCreate) SetShop(v string) *OrderCreate {
	_c.mutation.SetShop(v)
	return _c
}

// SetOrderNumber sets the "order_number" field.
func (_c *OrderCreate) SetOrderNumber(v string) *OrderCreate {
	_c.mutation.SetOrderNumber(v)
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *OrderCreate) SetCustomerName(v string) *OrderCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCustomerName(v *string) *OrderCreate {
	if v != nil {
		_c.SetCustomerName(*v)
	}
	return _c
}

// SetCustomerEmail sets the "customer_email" field.
func (_c *OrderCreate) SetCustomerEmail(v string) *OrderCreate {
	_c.mutation.SetCustomerEmail(v)
	return _c
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCustomerEmail(v *string) *OrderCreate {
	if v != nil {
		_c.SetCustomerEmail(*v)
	}
	return _c
}

// SetCustomerPhone sets the "customer_phone" field.
func (_c *OrderCreate) SetCustomerPhone(v string) *OrderCreate {
	_c.mutation.SetCustomerPhone(v)
	return _c
}

// SetNillableCustomerPhone sets the "customer_phone" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCustomerPhone(v *string) *OrderCreate {
	if v != nil {
		_c.SetCustomerPhone(*v)
	}
	return _c
}

// SetOrderDate sets the "order_date" field.
func (_c *OrderCreate) SetOrderDate(v string) *OrderCreate {
	_c.mutation.SetOrderDate(v)
	return _c
}

// SetNillableOrderDate sets the "order_date" field if the given value is not nil.
func (_c *OrderCreate) SetNillableOrderDate(v *string) *OrderCreate {
	if v != nil {
		_c.SetOrderDate(*v)
	}
	return _c
}

// SetDeliveryDate sets the "delivery_date" field.
func (_c *OrderCreate) SetDeliveryDate(v string) *OrderCreate {
	_c.mutation.SetDeliveryDate(v)
	return _c
}

// SetNillableDeliveryDate sets the "delivery_date" field if the given value is not nil.
func (_c *OrderCreate) SetNillableDeliveryDate(v *string) *OrderCreate {
	if v != nil {
		_c.SetDeliveryDate(*v)
	}
	return _c
}

// SetDeliveryTime sets the "delivery_time" field.
func (_c *OrderCreate) SetDeliveryTime(v string) *OrderCreate {
	_c.mutation.SetDeliveryTime(v)
	return _c
}

// SetNillableDeliveryTime sets the "delivery_time" field if the given value is not nil.
func (_c *OrderCreate) SetNillableDeliveryTime(v *string) *OrderCreate {
	if v != nil {
		_c.SetDeliveryTime(*v)
	}
	return _c
}

// SetDeliveryMethod sets the "delivery_method" field.
func (_c *OrderCreate) SetDeliveryMethod(v string) *OrderCreate {
	_c.mutation.SetDeliveryMethod(v)
	return _c
}

// SetNillableDeliveryMethod sets the "delivery_method" field if the given value is not nil.
func (_c *OrderCreate) SetNillableDeliveryMethod(v *string) *OrderCreate {
	if v != nil {
		_c.SetDeliveryMethod(*v)
	}
	return _c
}

// SetTotalPrice sets the "total_price" field.
func (_c *OrderCreate) SetTotalPrice(v float64) *OrderCreate {
	_c.mutation.SetTotalPrice(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *OrderCreate) SetNotes(v string) *OrderCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *OrderCreate) SetNillableNotes(v *string) *OrderCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetIsSplit sets the "is_split" field.
func (_c *OrderCreate) SetIsSplit(v bool) *OrderCreate {
	_c.mutation.SetIsSplit(v)
	return _c
}

// SetNillableIsSplit sets the "is_split" field if the given value is not nil.
func (_c *OrderCreate) SetNillableIsSplit(v *bool) *OrderCreate {
	if v != nil {
		_c.SetIsSplit(*v)
	}
	return _c
}

// SetParentOrderNumber sets the "parent_order_number" field.
func (_c *OrderCreate) SetParentOrderNumber(v string) *OrderCreate {
	_c.mutation.SetParentOrderNumber(v)
	return _c
}

// SetNillableParentOrderNumber sets the "parent_order_number" field if the given value is not nil.
func (_c *OrderCreate) SetNillableParentOrderNumber(v *string) *OrderCreate {
	if v != nil {
		_c.SetParentOrderNumber(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderCreate) SetCreatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCreatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderCreate) SetID(v uuid.UUID) *OrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableID(v *uuid.UUID) *OrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_c *OrderCreate) AddItemIDs(ids ...uuid.UUID) *OrderCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_c *OrderCreate) AddItems(v ...*OrderItem) *OrderCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_c *OrderCreate) Mutation() *OrderMutation {
	return _c.mutation
}

// Save creates the Order in the database.
func (_c *OrderCreate) Save(ctx context.Context) (*Order, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderCreate) SaveX(ctx context.Context) *Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderCreate) defaults() {
	if _, ok := _c.mutation.IsSplit(); !ok {
		v := order.DefaultIsSplit
		_c.mutation.SetIsSplit(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := order.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := order.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderCreate) check() error {
	if _, ok := _c.mutation.Shop(); !ok {
		return &ValidationError{Name: "shop", err: errors.New(`ent: missing required field "Order.shop"`)}
	}
	if v, ok := _c.mutation.Shop(); ok {
		if err := order.ShopValidator(v); err != nil {
			return &ValidationError{Name: "shop", err: fmt.Errorf(`ent: validator failed for field "Order.shop": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderNumber(); !ok {
		return &ValidationError{Name: "order_number", err: errors.New(`ent: missing required field "Order.order_number"`)}
	}
	if v, ok := _c.mutation.OrderNumber(); ok {
		if err := order.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`ent: validator failed for field "Order.order_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		return &ValidationError{Name: "total_price", err: errors.New(`ent: missing required field "Order.total_price"`)}
	}
	if _, ok := _c.mutation.IsSplit(); !ok {
		return &ValidationError{Name: "is_split", err: errors.New(`ent: missing required field "Order.is_split"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Order.created_at"`)}
	}
	return nil
}

func (_c *OrderCreate) sqlSave(ctx context.Context) (*Order, error) {
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

func (_c *OrderCreate) createSpec() (*Order, *sqlgraph.CreateSpec) {
	var (
		_node = &Order{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(order.Table, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Shop(); ok {
		_spec.SetField(order.FieldShop, field.TypeString, value)
		_node.Shop = value
	}
	if value, ok := _c.mutation.OrderNumber(); ok {
		_spec.SetField(order.FieldOrderNumber, field.TypeString, value)
		_node.OrderNumber = value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.CustomerEmail(); ok {
		_spec.SetField(order.FieldCustomerEmail, field.TypeString, value)
		_node.CustomerEmail = &value
	}
	if value, ok := _c.mutation.CustomerPhone(); ok {
		_spec.SetField(order.FieldCustomerPhone, field.TypeString, value)
		_node.CustomerPhone = &value
	}
	if value, ok := _c.mutation.OrderDate(); ok {
		_spec.SetField(order.FieldOrderDate, field.TypeString, value)
		_node.OrderDate = value
	}
	if value, ok := _c.mutation.DeliveryDate(); ok {
		_spec.SetField(order.FieldDeliveryDate, field.TypeString, value)
		_node.DeliveryDate = value
	}
	if value, ok := _c.mutation.DeliveryTime(); ok {
		_spec.SetField(order.FieldDeliveryTime, field.TypeString, value)
		_node.DeliveryTime = value
	}
	if value, ok := _c.mutation.DeliveryMethod(); ok {
		_spec.SetField(order.FieldDeliveryMethod, field.TypeString, value)
		_node.DeliveryMethod = value
	}
	if value, ok := _c.mutation.TotalPrice(); ok {
		_spec.SetField(order.FieldTotalPrice, field.TypeFloat64, value)
		_node.TotalPrice = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(order.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.IsSplit(); ok {
		_spec.SetField(order.FieldIsSplit, field.TypeBool, value)
		_node.IsSplit = value
	}
	if value, ok := _c.mutation.ParentOrderNumber(); ok {
		_spec.SetField(order.FieldParentOrderNumber, field.TypeString, value)
		_node.ParentOrderNumber = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrderCreateBulk is the builder for creating many Order entities in bulk.
type OrderCreateBulk struct {
	config
	err      error
	builders []*OrderCreate
}

// Save creates the Order entities in the database.
func (_c *OrderCreateBulk) Save(ctx context.Context) ([]*Order, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Order, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderMutation)
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
func (_c *OrderCreateBulk) SaveX(ctx context.Context) []*Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
