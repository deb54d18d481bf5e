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

// TrainingSignalCreate is the builder for creating a TrainingSignal entity.
type TrainingSignalCreate struct {
	config
	mutation *TrainingSignalMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *TrainingSignalCreate) SetTenantID(v string) *TrainingSignalCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetInvestigationID sets the "investigation_id" field.
func (_c *TrainingSignalCreate) SetInvestigationID(v string) *TrainingSignalCreate {
	_c.mutation.SetInvestigationID(v)
	return _c
}

// SetHypothesisID sets the "hypothesis_id" field.
func (_c *TrainingSignalCreate) SetHypothesisID(v string) *TrainingSignalCreate {
	_c.mutation.SetHypothesisID(v)
	return _c
}

// SetNillableHypothesisID sets the "hypothesis_id" field if the given value is not nil.
func (_c *TrainingSignalCreate) SetNillableHypothesisID(v *string) *TrainingSignalCreate {
	if v != nil {
		_c.SetHypothesisID(*v)
	}
	return _c
}

// SetSignalType sets the "signal_type" field.
func (_c *TrainingSignalCreate) SetSignalType(v trainingsignal.SignalType) *TrainingSignalCreate {
	_c.mutation.SetSignalType(v)
	return _c
}

// SetCausalDepth sets the "causal_depth" field.
func (_c *TrainingSignalCreate) SetCausalDepth(v float64) *TrainingSignalCreate {
	_c.mutation.SetCausalDepth(v)
	return _c
}

// SetSpecificity sets the "specificity" field.
func (_c *TrainingSignalCreate) SetSpecificity(v float64) *TrainingSignalCreate {
	_c.mutation.SetSpecificity(v)
	return _c
}

// SetActionability sets the "actionability" field.
func (_c *TrainingSignalCreate) SetActionability(v float64) *TrainingSignalCreate {
	_c.mutation.SetActionability(v)
	return _c
}

// SetCompositeScore sets the "composite_score" field.
func (_c *TrainingSignalCreate) SetCompositeScore(v float64) *TrainingSignalCreate {
	_c.mutation.SetCompositeScore(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *TrainingSignalCreate) SetPassed(v bool) *TrainingSignalCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetLowestDimension sets the "lowest_dimension" field.
func (_c *TrainingSignalCreate) SetLowestDimension(v string) *TrainingSignalCreate {
	_c.mutation.SetLowestDimension(v)
	return _c
}

// SetNillableLowestDimension sets the "lowest_dimension" field if the given value is not nil.
func (_c *TrainingSignalCreate) SetNillableLowestDimension(v *string) *TrainingSignalCreate {
	if v != nil {
		_c.SetLowestDimension(*v)
	}
	return _c
}

// SetImprovementSuggestion sets the "improvement_suggestion" field.
func (_c *TrainingSignalCreate) SetImprovementSuggestion(v string) *TrainingSignalCreate {
	_c.mutation.SetImprovementSuggestion(v)
	return _c
}

// SetNillableImprovementSuggestion sets the "improvement_suggestion" field if the given value is not nil.
func (_c *TrainingSignalCreate) SetNillableImprovementSuggestion(v *string) *TrainingSignalCreate {
	if v != nil {
		_c.SetImprovementSuggestion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrainingSignalCreate) SetCreatedAt(v time.Time) *TrainingSignalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrainingSignalCreate) SetNillableCreatedAt(v *time.Time) *TrainingSignalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrainingSignalCreate) SetID(v string) *TrainingSignalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInvestigation sets the "investigation" edge to the Investigation entity.
func (_c *TrainingSignalCreate) SetInvestigation(v *Investigation) *TrainingSignalCreate {
	return _c.SetInvestigationID(v.ID)
}

// Mutation returns the TrainingSignalMutation object of the builder.
func (_c *TrainingSignalCreate) Mutation() *TrainingSignalMutation {
	return _c.mutation
}

// Save creates the TrainingSignal in the database.
func (_c *TrainingSignalCreate) Save(ctx context.Context) (*TrainingSignal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrainingSignalCreate) SaveX(ctx context.Context) *TrainingSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingSignalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingSignalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrainingSignalCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trainingsignal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrainingSignalCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "TrainingSignal.tenant_id"`)}
	}
	if _, ok := _c.mutation.InvestigationID(); !ok {
		return &ValidationError{Name: "investigation_id", err: errors.New(`ent: missing required field "TrainingSignal.investigation_id"`)}
	}
	if _, ok := _c.mutation.SignalType(); !ok {
		return &ValidationError{Name: "signal_type", err: errors.New(`ent: missing required field "TrainingSignal.signal_type"`)}
	}
	if v, ok := _c.mutation.SignalType(); ok {
		if err := trainingsignal.SignalTypeValidator(v); err != nil {
			return &ValidationError{Name: "signal_type", err: fmt.Errorf(`ent: validator failed for field "TrainingSignal.signal_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CausalDepth(); !ok {
		return &ValidationError{Name: "causal_depth", err: errors.New(`ent: missing required field "TrainingSignal.causal_depth"`)}
	}
	if _, ok := _c.mutation.Specificity(); !ok {
		return &ValidationError{Name: "specificity", err: errors.New(`ent: missing required field "TrainingSignal.specificity"`)}
	}
	if _, ok := _c.mutation.Actionability(); !ok {
		return &ValidationError{Name: "actionability", err: errors.New(`ent: missing required field "TrainingSignal.actionability"`)}
	}
	if _, ok := _c.mutation.CompositeScore(); !ok {
		return &ValidationError{Name: "composite_score", err: errors.New(`ent: missing required field "TrainingSignal.composite_score"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "TrainingSignal.passed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrainingSignal.created_at"`)}
	}
	if len(_c.mutation.InvestigationIDs()) == 0 {
		return &ValidationError{Name: "investigation", err: errors.New(`ent: missing required edge "TrainingSignal.investigation"`)}
	}
	return nil
}

func (_c *TrainingSignalCreate) sqlSave(ctx context.Context) (*TrainingSignal, error) {
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
			return nil, fmt.Errorf("unexpected TrainingSignal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrainingSignalCreate) createSpec() (*TrainingSignal, *sqlgraph.CreateSpec) {
	var (
		_node = &TrainingSignal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trainingsignal.Table, sqlgraph.NewFieldSpec(trainingsignal.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(trainingsignal.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.HypothesisID(); ok {
		_spec.SetField(trainingsignal.FieldHypothesisID, field.TypeString, value)
		_node.HypothesisID = &value
	}
	if value, ok := _c.mutation.SignalType(); ok {
		_spec.SetField(trainingsignal.FieldSignalType, field.TypeEnum, value)
		_node.SignalType = value
	}
	if value, ok := _c.mutation.CausalDepth(); ok {
		_spec.SetField(trainingsignal.FieldCausalDepth, field.TypeFloat64, value)
		_node.CausalDepth = value
	}
	if value, ok := _c.mutation.Specificity(); ok {
		_spec.SetField(trainingsignal.FieldSpecificity, field.TypeFloat64, value)
		_node.Specificity = value
	}
	if value, ok := _c.mutation.Actionability(); ok {
		_spec.SetField(trainingsignal.FieldActionability, field.TypeFloat64, value)
		_node.Actionability = value
	}
	if value, ok := _c.mutation.CompositeScore(); ok {
		_spec.SetField(trainingsignal.FieldCompositeScore, field.TypeFloat64, value)
		_node.CompositeScore = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(trainingsignal.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.LowestDimension(); ok {
		_spec.SetField(trainingsignal.FieldLowestDimension, field.TypeString, value)
		_node.LowestDimension = value
	}
	if value, ok := _c.mutation.ImprovementSuggestion(); ok {
		_spec.SetField(trainingsignal.FieldImprovementSuggestion, field.TypeString, value)
		_node.ImprovementSuggestion = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trainingsignal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InvestigationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trainingsignal.InvestigationTable,
			Columns: []string{trainingsignal.InvestigationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InvestigationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TrainingSignalCreateBulk is the builder for creating many TrainingSignal entities in bulk.
type TrainingSignalCreateBulk struct {
	config
	err      error
	builders []*TrainingSignalCreate
}

// Save creates the TrainingSignal entities in the database.
func (_c *TrainingSignalCreateBulk) Save(ctx context.Context) ([]*TrainingSignal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrainingSignal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrainingSignalMutation)
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
func (_c *TrainingSignalCreateBulk) SaveX(ctx context.Context) []*TrainingSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingSignalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingSignalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
