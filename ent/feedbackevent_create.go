// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datasleuth/sleuth/ent/feedbackevent"
)

// FeedbackEventCreate is the builder for creating a FeedbackEvent entity.
type FeedbackEventCreate struct {
	config
	mutation *FeedbackEventMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *FeedbackEventCreate) SetTenantID(v string) *FeedbackEventCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *FeedbackEventCreate) SetEventType(v string) *FeedbackEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetEventData sets the "event_data" field.
func (_c *FeedbackEventCreate) SetEventData(v map[string]interface{}) *FeedbackEventCreate {
	_c.mutation.SetEventData(v)
	return _c
}

// SetInvestigationID sets the "investigation_id" field.
func (_c *FeedbackEventCreate) SetInvestigationID(v string) *FeedbackEventCreate {
	_c.mutation.SetInvestigationID(v)
	return _c
}

// SetNillableInvestigationID sets the "investigation_id" field if the given value is not nil.
func (_c *FeedbackEventCreate) SetNillableInvestigationID(v *string) *FeedbackEventCreate {
	if v != nil {
		_c.SetInvestigationID(*v)
	}
	return _c
}

// SetDatasetID sets the "dataset_id" field.
func (_c *FeedbackEventCreate) SetDatasetID(v string) *FeedbackEventCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_c *FeedbackEventCreate) SetNillableDatasetID(v *string) *FeedbackEventCreate {
	if v != nil {
		_c.SetDatasetID(*v)
	}
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *FeedbackEventCreate) SetActorID(v string) *FeedbackEventCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_c *FeedbackEventCreate) SetNillableActorID(v *string) *FeedbackEventCreate {
	if v != nil {
		_c.SetActorID(*v)
	}
	return _c
}

// SetActorType sets the "actor_type" field.
func (_c *FeedbackEventCreate) SetActorType(v string) *FeedbackEventCreate {
	_c.mutation.SetActorType(v)
	return _c
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_c *FeedbackEventCreate) SetNillableActorType(v *string) *FeedbackEventCreate {
	if v != nil {
		_c.SetActorType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedbackEventCreate) SetCreatedAt(v time.Time) *FeedbackEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedbackEventCreate) SetNillableCreatedAt(v *time.Time) *FeedbackEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeedbackEventCreate) SetID(v string) *FeedbackEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_c *FeedbackEventCreate) Mutation() *FeedbackEventMutation {
	return _c.mutation
}

// Save creates the FeedbackEvent in the database.
func (_c *FeedbackEventCreate) Save(ctx context.Context) (*FeedbackEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackEventCreate) SaveX(ctx context.Context) *FeedbackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackEventCreate) defaults() {
	if _, ok := _c.mutation.ActorType(); !ok {
		v := feedbackevent.DefaultActorType
		_c.mutation.SetActorType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedbackevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackEventCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "FeedbackEvent.tenant_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "FeedbackEvent.event_type"`)}
	}
	if _, ok := _c.mutation.ActorType(); !ok {
		return &ValidationError{Name: "actor_type", err: errors.New(`ent: missing required field "FeedbackEvent.actor_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeedbackEvent.created_at"`)}
	}
	return nil
}

func (_c *FeedbackEventCreate) sqlSave(ctx context.Context) (*FeedbackEvent, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected FeedbackEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeedbackEventCreate) createSpec() (*FeedbackEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedbackEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedbackevent.Table, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(feedbackevent.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(feedbackevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.EventData(); ok {
		_spec.SetField(feedbackevent.FieldEventData, field.TypeJSON, value)
		_node.EventData = value
	}
	if value, ok := _c.mutation.InvestigationID(); ok {
		_spec.SetField(feedbackevent.FieldInvestigationID, field.TypeString, value)
		_node.InvestigationID = value
	}
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(feedbackevent.FieldDatasetID, field.TypeString, value)
		_node.DatasetID = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(feedbackevent.FieldActorID, field.TypeString, value)
		_node.ActorID = &value
	}
	if value, ok := _c.mutation.ActorType(); ok {
		_spec.SetField(feedbackevent.FieldActorType, field.TypeString, value)
		_node.ActorType = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedbackevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// FeedbackEventCreateBulk is the builder for creating many FeedbackEvent entities in bulk.
type FeedbackEventCreateBulk struct {
	config
	err      error
	builders []*FeedbackEventCreate
}

// Save creates the FeedbackEvent entities in the database.
func (_c *FeedbackEventCreateBulk) Save(ctx context.Context) ([]*FeedbackEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedbackEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackEventMutation)
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
func (_c *FeedbackEventCreateBulk) SaveX(ctx context.Context) []*FeedbackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
