// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/ent/trainingsignal"
)

// InvestigationCreate is the builder for creating a Investigation entity.
type InvestigationCreate struct {
	config
	mutation *InvestigationMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *InvestigationCreate) SetTenantID(v string) *InvestigationCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetDatasetID sets the "dataset_id" field.
func (_c *InvestigationCreate) SetDatasetID(v string) *InvestigationCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetAlert sets the "alert" field.
func (_c *InvestigationCreate) SetAlert(v map[string]interface{}) *InvestigationCreate {
	_c.mutation.SetAlert(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvestigationCreate) SetStatus(v investigation.Status) *InvestigationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableStatus(v *investigation.Status) *InvestigationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEvents sets the "events" field.
func (_c *InvestigationCreate) SetEvents(v []map[string]interface{}) *InvestigationCreate {
	_c.mutation.SetEvents(v)
	return _c
}

// SetRootCause sets the "root_cause" field.
func (_c *InvestigationCreate) SetRootCause(v string) *InvestigationCreate {
	_c.mutation.SetRootCause(v)
	return _c
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableRootCause(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetRootCause(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *InvestigationCreate) SetConfidence(v float64) *InvestigationCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableConfidence(v *float64) *InvestigationCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetFinding sets the "finding" field.
func (_c *InvestigationCreate) SetFinding(v map[string]interface{}) *InvestigationCreate {
	_c.mutation.SetFinding(v)
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *InvestigationCreate) SetDurationSeconds(v float64) *InvestigationCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableDurationSeconds(v *float64) *InvestigationCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *InvestigationCreate) SetErrorMessage(v string) *InvestigationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableErrorMessage(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *InvestigationCreate) SetPodID(v string) *InvestigationCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillablePodID(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvestigationCreate) SetCreatedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableCreatedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *InvestigationCreate) SetStartedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableStartedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *InvestigationCreate) SetCompletedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableCompletedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvestigationCreate) SetID(v string) *InvestigationCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTrainingSignalIDs adds the "training_signals" edge to the TrainingSignal entity by IDs.
func (_c *InvestigationCreate) AddTrainingSignalIDs(ids ...string) *InvestigationCreate {
	_c.mutation.AddTrainingSignalIDs(ids...)
	return _c
}

// AddTrainingSignals adds the "training_signals" edges to the TrainingSignal entity.
func (_c *InvestigationCreate) AddTrainingSignals(v ...*TrainingSignal) *InvestigationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTrainingSignalIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_c *InvestigationCreate) Mutation() *InvestigationMutation {
	return _c.mutation
}

// Save creates the Investigation in the database.
func (_c *InvestigationCreate) Save(ctx context.Context) (*Investigation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvestigationCreate) SaveX(ctx context.Context) *Investigation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvestigationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := investigation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := investigation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvestigationCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Investigation.tenant_id"`)}
	}
	if _, ok := _c.mutation.DatasetID(); !ok {
		return &ValidationError{Name: "dataset_id", err: errors.New(`ent: missing required field "Investigation.dataset_id"`)}
	}
	if _, ok := _c.mutation.Alert(); !ok {
		return &ValidationError{Name: "alert", err: errors.New(`ent: missing required field "Investigation.alert"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Investigation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Investigation.created_at"`)}
	}
	return nil
}

func (_c *InvestigationCreate) sqlSave(ctx context.Context) (*Investigation, error) {
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
			return nil, fmt.Errorf("unexpected Investigation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvestigationCreate) createSpec() (*Investigation, *sqlgraph.CreateSpec) {
	var (
		_node = &Investigation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(investigation.Table, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(investigation.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(investigation.FieldDatasetID, field.TypeString, value)
		_node.DatasetID = value
	}
	if value, ok := _c.mutation.Alert(); ok {
		_spec.SetField(investigation.FieldAlert, field.TypeJSON, value)
		_node.Alert = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Events(); ok {
		_spec.SetField(investigation.FieldEvents, field.TypeJSON, value)
		_node.Events = value
	}
	if value, ok := _c.mutation.RootCause(); ok {
		_spec.SetField(investigation.FieldRootCause, field.TypeString, value)
		_node.RootCause = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(investigation.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Finding(); ok {
		_spec.SetField(investigation.FieldFinding, field.TypeJSON, value)
		_node.Finding = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(investigation.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(investigation.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(investigation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.TrainingSignalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.TrainingSignalsTable,
			Columns: []string{investigation.TrainingSignalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingsignal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvestigationCreateBulk is the builder for creating many Investigation entities in bulk.
type InvestigationCreateBulk struct {
	config
	err      error
	builders []*InvestigationCreate
}

// Save creates the Investigation entities in the database.
func (_c *InvestigationCreateBulk) Save(ctx context.Context) ([]*Investigation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Investigation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvestigationMutation)
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
func (_c *InvestigationCreateBulk) SaveX(ctx context.Context) []*Investigation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
