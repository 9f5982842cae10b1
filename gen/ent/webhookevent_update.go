// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sugarloafbakes/orderpipe/gen/ent/predicate"
	"github.com/sugarloafbakes/orderpipe/gen/ent/webhookevent"
)

// WebhookEventUpdate is the builder for updating WebhookEvent entities.
type WebhookEventUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookEventMutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdate) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetShop sets the "shop" field.
func (_u *WebhookEventUpdate) SetShop(v string) *WebhookEventUpdate {
	_u.mutation.SetShop(v)
	return _u
}

// SetNillableShop sets the "shop" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableShop(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetShop(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookEventUpdate) SetPayload(v json.RawMessage) *WebhookEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *WebhookEventUpdate) AppendPayload(v json.RawMessage) *WebhookEventUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *WebhookEventUpdate) SetReceivedAt(v time.Time) *WebhookEventUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableReceivedAt(v *time.Time) *WebhookEventUpdate {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *WebhookEventUpdate) SetProcessed(v bool) *WebhookEventUpdate {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableProcessed(v *bool) *WebhookEventUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *WebhookEventUpdate) SetProcessedAt(v time.Time) *WebhookEventUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableProcessedAt(v *time.Time) *WebhookEventUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *WebhookEventUpdate) ClearProcessedAt() *WebhookEventUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WebhookEventUpdate) SetErrorMessage(v string) *WebhookEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableErrorMessage(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WebhookEventUpdate) ClearErrorMessage() *WebhookEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdate) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEventUpdate) check() error {
	if v, ok := _u.mutation.Shop(); ok {
		if err := webhookevent.ShopValidator(v); err != nil {
			return &ValidationError{Name: "shop", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.shop": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Shop(); ok {
		_spec.SetField(webhookevent.FieldShop, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookevent.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(webhookevent.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(webhookevent.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(webhookevent.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(webhookevent.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(webhookevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(webhookevent.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookEventUpdateOne is the builder for updating a single WebhookEvent entity.
type WebhookEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookEventMutation
}

// SetShop sets the "shop" field.
func (_u *WebhookEventUpdateOne) SetShop(v string) *WebhookEventUpdateOne {
	_u.mutation.SetShop(v)
	return _u
}

// SetNillableShop sets the "shop" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableShop(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetShop(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookEventUpdateOne) SetPayload(v json.RawMessage) *WebhookEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *WebhookEventUpdateOne) AppendPayload(v json.RawMessage) *WebhookEventUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *WebhookEventUpdateOne) SetReceivedAt(v time.Time) *WebhookEventUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableReceivedAt(v *time.Time) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *WebhookEventUpdateOne) SetProcessed(v bool) *WebhookEventUpdateOne {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableProcessed(v *bool) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *WebhookEventUpdateOne) SetProcessedAt(v time.Time) *WebhookEventUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableProcessedAt(v *time.Time) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *WebhookEventUpdateOne) ClearProcessedAt() *WebhookEventUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WebhookEventUpdateOne) SetErrorMessage(v string) *WebhookEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableErrorMessage(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WebhookEventUpdateOne) ClearErrorMessage() *WebhookEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdateOne) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdateOne) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookEventUpdateOne) Select(field string, fields ...string) *WebhookEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookEvent entity.
func (_u *WebhookEventUpdateOne) Save(ctx context.Context) (*WebhookEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) SaveX(ctx context.Context) *WebhookEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEventUpdateOne) check() error {
	if v, ok := _u.mutation.Shop(); ok {
		if err := webhookevent.ShopValidator(v); err != nil {
			return &ValidationError{Name: "shop", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.shop": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEventUpdateOne) sqlSave(ctx context.Context) (_node *WebhookEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookevent.FieldID)
		for _, f := range fields {
			if !webhookevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookevent.FieldID {
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
		_spec.SetField(webhookevent.FieldShop, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookevent.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(webhookevent.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(webhookevent.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(webhookevent.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(webhookevent.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(webhookevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(webhookevent.FieldErrorMessage, field.TypeString)
	}
	_node = &WebhookEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
