// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sugarloafbakes/orderpipe/gen/ent/webhookevent"
)

// WebhookEventCreate is the builder for creating a WebhookEvent entity.
type WebhookEventCreate struct {
	config
	mutation *WebhookEventMutation
	hooks    []Hook
}

// SetShop sets the "shop" field.
func (_c *WebhookEventCreate) SetShop(v string) *WebhookEventCreate {
	_c.mutation.SetShop(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WebhookEventCreate) SetPayload(v json.RawMessage) *WebhookEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *WebhookEventCreate) SetReceivedAt(v time.Time) *WebhookEventCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableReceivedAt(v *time.Time) *WebhookEventCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetProcessed sets the "processed" field.
func (_c *WebhookEventCreate) SetProcessed(v bool) *WebhookEventCreate {
	_c.mutation.SetProcessed(v)
	return _c
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableProcessed(v *bool) *WebhookEventCreate {
	if v != nil {
		_c.SetProcessed(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *WebhookEventCreate) SetProcessedAt(v time.Time) *WebhookEventCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableProcessedAt(v *time.Time) *WebhookEventCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WebhookEventCreate) SetErrorMessage(v string) *WebhookEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableErrorMessage(v *string) *WebhookEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookEventCreate) SetID(v uuid.UUID) *WebhookEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableID(v *uuid.UUID) *WebhookEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_c *WebhookEventCreate) Mutation() *WebhookEventMutation {
	return _c.mutation
}

// Save creates the WebhookEvent in the database.
func (_c *WebhookEventCreate) Save(ctx context.Context) (*WebhookEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookEventCreate) SaveX(ctx context.Context) *WebhookEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookEventCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := webhookevent.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
	if _, ok := _c.mutation.Processed(); !ok {
		v := webhookevent.DefaultProcessed
		_c.mutation.SetProcessed(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := webhookevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookEventCreate) check() error {
	if _, ok := _c.mutation.Shop(); !ok {
		return &ValidationError{Name: "shop", err: errors.New(`ent: missing required field "WebhookEvent.shop"`)}
	}
	if v, ok := _c.mutation.Shop(); ok {
		if err := webhookevent.ShopValidator(v); err != nil {
			return &ValidationError{Name: "shop", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.shop": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "WebhookEvent.payload"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "WebhookEvent.received_at"`)}
	}
	if _, ok := _c.mutation.Processed(); !ok {
		return &ValidationError{Name: "processed", err: errors.New(`ent: missing required field "WebhookEvent.processed"`)}
	}
	return nil
}

func (_c *WebhookEventCreate) sqlSave(ctx context.Context) (*WebhookEvent, error) {
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

func (_c *WebhookEventCreate) createSpec() (*WebhookEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookevent.Table, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Shop(); ok {
		_spec.SetField(webhookevent.FieldShop, field.TypeString, value)
		_node.Shop = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(webhookevent.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.Processed(); ok {
		_spec.SetField(webhookevent.FieldProcessed, field.TypeBool, value)
		_node.Processed = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(webhookevent.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(webhookevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	return _node, _spec
}

// WebhookEventCreateBulk is the builder for creating many WebhookEvent entities in bulk.
type WebhookEventCreateBulk struct {
	config
	err      error
	builders []*WebhookEventCreate
}

// Save creates the WebhookEvent entities in the database.
func (_c *WebhookEventCreateBulk) Save(ctx context.Context) ([]*WebhookEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookEventMutation)
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
func (_c *WebhookEventCreateBulk) SaveX(ctx context.Context) []*WebhookEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
