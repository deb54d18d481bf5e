// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datasleuth/sleuth/ent/feedbackevent"
	"github.com/datasleuth/sleuth/ent/predicate"
)

// FeedbackEventUpdate is the builder for updating FeedbackEvent entities.
type FeedbackEventUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdate) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdate) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FeedbackEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.EventDataCleared() {
		_spec.ClearField(feedbackevent.FieldEventData, field.TypeJSON)
	}
	if _u.mutation.InvestigationIDCleared() {
		_spec.ClearField(feedbackevent.FieldInvestigationID, field.TypeString)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(feedbackevent.FieldDatasetID, field.TypeString)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(feedbackevent.FieldActorID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackEventUpdateOne is the builder for updating a single FeedbackEvent entity.
type FeedbackEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdateOne) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdateOne) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackEventUpdateOne) Select(field string, fields ...string) *FeedbackEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackEvent entity.
func (_u *FeedbackEventUpdateOne) Save(ctx context.Context) (*FeedbackEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) SaveX(ctx context.Context) *FeedbackEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FeedbackEventUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbackevent.FieldID)
		for _, f := range fields {
			if !feedbackevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbackevent.FieldID {
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
	if _u.mutation.EventDataCleared() {
		_spec.ClearField(feedbackevent.FieldEventData, field.TypeJSON)
	}
	if _u.mutation.InvestigationIDCleared() {
		_spec.ClearField(feedbackevent.FieldInvestigationID, field.TypeString)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(feedbackevent.FieldDatasetID, field.TypeString)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(feedbackevent.FieldActorID, field.TypeString)
	}
	_node = &FeedbackEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
