// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datasleuth/sleuth/ent/predicate"
	"github.com/datasleuth/sleuth/ent/trainingsignal"
)

// TrainingSignalUpdate is the builder for updating TrainingSignal entities.
type TrainingSignalUpdate struct {
	config
	hooks    []Hook
	mutation *TrainingSignalMutation
}

// Where appends a list predicates to the TrainingSignalUpdate builder.
func (_u *TrainingSignalUpdate) Where(ps ...predicate.TrainingSignal) *TrainingSignalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSignalType sets the "signal_type" field.
func (_u *TrainingSignalUpdate) SetSignalType(v trainingsignal.SignalType) *TrainingSignalUpdate {
	_u.mutation.SetSignalType(v)
	return _u
}

// SetNillableSignalType sets the "signal_type" field if the given value is not nil.
func (_u *TrainingSignalUpdate) SetNillableSignalType(v *trainingsignal.SignalType) *TrainingSignalUpdate {
	if v != nil {
		_u.SetSignalType(*v)
	}
	return _u
}

// SetCausalDepth sets the "causal_depth" field.
func (_u *TrainingSignalUpdate) SetCausalDepth(v float64) *TrainingSignalUpdate {
	_u.mutation.ResetCausalDepth()
	_u.mutation.SetCausalDepth(v)
	return _u
}

// SetNillableCausalDepth sets the "causal_depth" field if the given value is not nil.
func (_u *TrainingSignalUpdate) SetNillableCausalDepth(v *float64) *TrainingSignalUpdate {
	if v != nil {
		_u.SetCausalDepth(*v)
	}
	return _u
}

// AddCausalDepth adds value to the "causal_depth" field.
func (_u *TrainingSignalUpdate) AddCausalDepth(v float64) *TrainingSignalUpdate {
	_u.mutation.AddCausalDepth(v)
	return _u
}

// SetSpecificity sets the "specificity" field.
func (_u *TrainingSignalUpdate) SetSpecificity(v float64) *TrainingSignalUpdate {
	_u.mutation.ResetSpecificity()
	_u.mutation.SetSpecificity(v)
	return _u
}

// SetNillableSpecificity sets the "specificity" field if the given value is not nil.
func (_u *TrainingSignalUpdate) SetNillableSpecificity(v *float64) *TrainingSignalUpdate {
	if v != nil {
		_u.SetSpecificity(*v)
	}
	return _u
}

// AddSpecificity adds value to the "specificity" field.
func (_u *TrainingSignalUpdate) AddSpecificity(v float64) *TrainingSignalUpdate {
	_u.mutation.AddSpecificity(v)
	return _u
}

// SetActionability sets the "actionability" field.
func (_u *TrainingSignalUpdate) SetActionability(v float64) *TrainingSignalUpdate {
	_u.mutation.ResetActionability()
	_u.mutation.SetActionability(v)
	return _u
}

// SetNillableActionability sets the "actionability" field if the given value is not nil.
func (_u *TrainingSignalUpdate) SetNillableActionability(v *float64) *TrainingSignalUpdate {
	if v != nil {
		_u.SetActionability(*v)
	}
	return _u
}

// AddActionability adds value to the "actionability" field.
func (_u *TrainingSignalUpdate) AddActionability(v float64) *TrainingSignalUpdate {
	_u.mutation.AddActionability(v)
	return _u
}

// SetCompositeScore sets the "composite_score" field.
func (_u *TrainingSignalUpdate) SetCompositeScore(v float64) *TrainingSignalUpdate {
	_u.mutation.ResetCompositeScore()
	_u.mutation.SetCompositeScore(v)
	return _u
}

// SetNillableCompositeScore sets the "composite_score" field if the given value is not nil.
func (_u *TrainingSignalUpdate) SetNillableCompositeScore(v *float64) *TrainingSignalUpdate {
	if v != nil {
		_u.SetCompositeScore(*v)
	}
	return _u
}

// AddCompositeScore adds value to the "composite_score" field.
func (_u *TrainingSignalUpdate) AddCompositeScore(v float64) *TrainingSignalUpdate {
	_u.mutation.AddCompositeScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *TrainingSignalUpdate) SetPassed(v bool) *TrainingSignalUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *TrainingSignalUpdate) SetNillablePassed(v *bool) *TrainingSignalUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetLowestDimension sets the "lowest_dimension" field.
func (_u *TrainingSignalUpdate) SetLowestDimension(v string) *TrainingSignalUpdate {
	_u.mutation.SetLowestDimension(v)
	return _u
}

// SetNillableLowestDimension sets the "lowest_dimension" field if the given value is not nil.
func (_u *TrainingSignalUpdate) SetNillableLowestDimension(v *string) *TrainingSignalUpdate {
	if v != nil {
		_u.SetLowestDimension(*v)
	}
	return _u
}

// ClearLowestDimension clears the value of the "lowest_dimension" field.
func (_u *TrainingSignalUpdate) ClearLowestDimension() *TrainingSignalUpdate {
	_u.mutation.ClearLowestDimension()
	return _u
}

// SetImprovementSuggestion sets the "improvement_suggestion" field.
func (_u *TrainingSignalUpdate) SetImprovementSuggestion(v string) *TrainingSignalUpdate {
	_u.mutation.SetImprovementSuggestion(v)
	return _u
}

// SetNillableImprovementSuggestion sets the "improvement_suggestion" field if the given value is not nil.
func (_u *TrainingSignalUpdate) SetNillableImprovementSuggestion(v *string) *TrainingSignalUpdate {
	if v != nil {
		_u.SetImprovementSuggestion(*v)
	}
	return _u
}

// ClearImprovementSuggestion clears the value of the "improvement_suggestion" field.
func (_u *TrainingSignalUpdate) ClearImprovementSuggestion() *TrainingSignalUpdate {
	_u.mutation.ClearImprovementSuggestion()
	return _u
}

// Mutation returns the TrainingSignalMutation object of the builder.
func (_u *TrainingSignalUpdate) Mutation() *TrainingSignalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrainingSignalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingSignalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrainingSignalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingSignalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingSignalUpdate) check() error {
	if v, ok := _u.mutation.SignalType(); ok {
		if err := trainingsignal.SignalTypeValidator(v); err != nil {
			return &ValidationError{Name: "signal_type", err: fmt.Errorf(`ent: validator failed for field "TrainingSignal.signal_type": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrainingSignal.investigation"`)
	}
	return nil
}

func (_u *TrainingSignalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingsignal.Table, trainingsignal.Columns, sqlgraph.NewFieldSpec(trainingsignal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.HypothesisIDCleared() {
		_spec.ClearField(trainingsignal.FieldHypothesisID, field.TypeString)
	}
	if value, ok := _u.mutation.SignalType(); ok {
		_spec.SetField(trainingsignal.FieldSignalType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CausalDepth(); ok {
		_spec.SetField(trainingsignal.FieldCausalDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCausalDepth(); ok {
		_spec.AddField(trainingsignal.FieldCausalDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Specificity(); ok {
		_spec.SetField(trainingsignal.FieldSpecificity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpecificity(); ok {
		_spec.AddField(trainingsignal.FieldSpecificity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Actionability(); ok {
		_spec.SetField(trainingsignal.FieldActionability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActionability(); ok {
		_spec.AddField(trainingsignal.FieldActionability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompositeScore(); ok {
		_spec.SetField(trainingsignal.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompositeScore(); ok {
		_spec.AddField(trainingsignal.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(trainingsignal.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LowestDimension(); ok {
		_spec.SetField(trainingsignal.FieldLowestDimension, field.TypeString, value)
	}
	if _u.mutation.LowestDimensionCleared() {
		_spec.ClearField(trainingsignal.FieldLowestDimension, field.TypeString)
	}
	if value, ok := _u.mutation.ImprovementSuggestion(); ok {
		_spec.SetField(trainingsignal.FieldImprovementSuggestion, field.TypeString, value)
	}
	if _u.mutation.ImprovementSuggestionCleared() {
		_spec.ClearField(trainingsignal.FieldImprovementSuggestion, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingsignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrainingSignalUpdateOne is the builder for updating a single TrainingSignal entity.
type TrainingSignalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrainingSignalMutation
}

// SetSignalType sets the "signal_type" field.
func (_u *TrainingSignalUpdateOne) SetSignalType(v trainingsignal.SignalType) *TrainingSignalUpdateOne {
	_u.mutation.SetSignalType(v)
	return _u
}

// SetNillableSignalType sets the "signal_type" field if the given value is not nil.
func (_u *TrainingSignalUpdateOne) SetNillableSignalType(v *trainingsignal.SignalType) *TrainingSignalUpdateOne {
	if v != nil {
		_u.SetSignalType(*v)
	}
	return _u
}

// SetCausalDepth sets the "causal_depth" field.
func (_u *TrainingSignalUpdateOne) SetCausalDepth(v float64) *TrainingSignalUpdateOne {
	_u.mutation.ResetCausalDepth()
	_u.mutation.SetCausalDepth(v)
	return _u
}

// SetNillableCausalDepth sets the "causal_depth" field if the given value is not nil.
func (_u *TrainingSignalUpdateOne) SetNillableCausalDepth(v *float64) *TrainingSignalUpdateOne {
	if v != nil {
		_u.SetCausalDepth(*v)
	}
	return _u
}

// AddCausalDepth adds value to the "causal_depth" field.
func (_u *TrainingSignalUpdateOne) AddCausalDepth(v float64) *TrainingSignalUpdateOne {
	_u.mutation.AddCausalDepth(v)
	return _u
}

// SetSpecificity sets the "specificity" field.
func (_u *TrainingSignalUpdateOne) SetSpecificity(v float64) *TrainingSignalUpdateOne {
	_u.mutation.ResetSpecificity()
	_u.mutation.SetSpecificity(v)
	return _u
}

// SetNillableSpecificity sets the "specificity" field if the given value is not nil.
func (_u *TrainingSignalUpdateOne) SetNillableSpecificity(v *float64) *TrainingSignalUpdateOne {
	if v != nil {
		_u.SetSpecificity(*v)
	}
	return _u
}

// AddSpecificity adds value to the "specificity" field.
func (_u *TrainingSignalUpdateOne) AddSpecificity(v float64) *TrainingSignalUpdateOne {
	_u.mutation.AddSpecificity(v)
	return _u
}

// SetActionability sets the "actionability" field.
func (_u *TrainingSignalUpdateOne) SetActionability(v float64) *TrainingSignalUpdateOne {
	_u.mutation.ResetActionability()
	_u.mutation.SetActionability(v)
	return _u
}

// SetNillableActionability sets the "actionability" field if the given value is not nil.
func (_u *TrainingSignalUpdateOne) SetNillableActionability(v *float64) *TrainingSignalUpdateOne {
	if v != nil {
		_u.SetActionability(*v)
	}
	return _u
}

// AddActionability adds value to the "actionability" field.
func (_u *TrainingSignalUpdateOne) AddActionability(v float64) *TrainingSignalUpdateOne {
	_u.mutation.AddActionability(v)
	return _u
}

// SetCompositeScore sets the "composite_score" field.
func (_u *TrainingSignalUpdateOne) SetCompositeScore(v float64) *TrainingSignalUpdateOne {
	_u.mutation.ResetCompositeScore()
	_u.mutation.SetCompositeScore(v)
	return _u
}

// SetNillableCompositeScore sets the "composite_score" field if the given value is not nil.
func (_u *TrainingSignalUpdateOne) SetNillableCompositeScore(v *float64) *TrainingSignalUpdateOne {
	if v != nil {
		_u.SetCompositeScore(*v)
	}
	return _u
}

// AddCompositeScore adds value to the "composite_score" field.
func (_u *TrainingSignalUpdateOne) AddCompositeScore(v float64) *TrainingSignalUpdateOne {
	_u.mutation.AddCompositeScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *TrainingSignalUpdateOne) SetPassed(v bool) *TrainingSignalUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *TrainingSignalUpdateOne) SetNillablePassed(v *bool) *TrainingSignalUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetLowestDimension sets the "lowest_dimension" field.
func (_u *TrainingSignalUpdateOne) SetLowestDimension(v string) *TrainingSignalUpdateOne {
	_u.mutation.SetLowestDimension(v)
	return _u
}

// SetNillableLowestDimension sets the "lowest_dimension" field if the given value is not nil.
func (_u *TrainingSignalUpdateOne) SetNillableLowestDimension(v *string) *TrainingSignalUpdateOne {
	if v != nil {
		_u.SetLowestDimension(*v)
	}
	return _u
}

// ClearLowestDimension clears the value of the "lowest_dimension" field.
func (_u *TrainingSignalUpdateOne) ClearLowestDimension() *TrainingSignalUpdateOne {
	_u.mutation.ClearLowestDimension()
	return _u
}

// SetImprovementSuggestion sets the "improvement_suggestion" field.
func (_u *TrainingSignalUpdateOne) SetImprovementSuggestion(v string) *TrainingSignalUpdateOne {
	_u.mutation.SetImprovementSuggestion(v)
	return _u
}

// SetNillableImprovementSuggestion sets the "improvement_suggestion" field if the given value is not nil.
func (_u *TrainingSignalUpdateOne) SetNillableImprovementSuggestion(v *string) *TrainingSignalUpdateOne {
	if v != nil {
		_u.SetImprovementSuggestion(*v)
	}
	return _u
}

// ClearImprovementSuggestion clears the value of the "improvement_suggestion" field.
func (_u *TrainingSignalUpdateOne) ClearImprovementSuggestion() *TrainingSignalUpdateOne {
	_u.mutation.ClearImprovementSuggestion()
	return _u
}

// Mutation returns the TrainingSignalMutation object of the builder.
func (_u *TrainingSignalUpdateOne) Mutation() *TrainingSignalMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrainingSignalUpdate builder.
func (_u *TrainingSignalUpdateOne) Where(ps ...predicate.TrainingSignal) *TrainingSignalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrainingSignalUpdateOne) Select(field string, fields ...string) *TrainingSignalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrainingSignal entity.
func (_u *TrainingSignalUpdateOne) Save(ctx context.Context) (*TrainingSignal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingSignalUpdateOne) SaveX(ctx context.Context) *TrainingSignal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrainingSignalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingSignalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingSignalUpdateOne) check() error {
	if v, ok := _u.mutation.SignalType(); ok {
		if err := trainingsignal.SignalTypeValidator(v); err != nil {
			return &ValidationError{Name: "signal_type", err: fmt.Errorf(`ent: validator failed for field "TrainingSignal.signal_type": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrainingSignal.investigation"`)
	}
	return nil
}

func (_u *TrainingSignalUpdateOne) sqlSave(ctx context.Context) (_node *TrainingSignal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingsignal.Table, trainingsignal.Columns, sqlgraph.NewFieldSpec(trainingsignal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrainingSignal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trainingsignal.FieldID)
		for _, f := range fields {
			if !trainingsignal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trainingsignal.FieldID {
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
	if _u.mutation.HypothesisIDCleared() {
		_spec.ClearField(trainingsignal.FieldHypothesisID, field.TypeString)
	}
	if value, ok := _u.mutation.SignalType(); ok {
		_spec.SetField(trainingsignal.FieldSignalType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CausalDepth(); ok {
		_spec.SetField(trainingsignal.FieldCausalDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCausalDepth(); ok {
		_spec.AddField(trainingsignal.FieldCausalDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Specificity(); ok {
		_spec.SetField(trainingsignal.FieldSpecificity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpecificity(); ok {
		_spec.AddField(trainingsignal.FieldSpecificity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Actionability(); ok {
		_spec.SetField(trainingsignal.FieldActionability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActionability(); ok {
		_spec.AddField(trainingsignal.FieldActionability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompositeScore(); ok {
		_spec.SetField(trainingsignal.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompositeScore(); ok {
		_spec.AddField(trainingsignal.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(trainingsignal.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LowestDimension(); ok {
		_spec.SetField(trainingsignal.FieldLowestDimension, field.TypeString, value)
	}
	if _u.mutation.LowestDimensionCleared() {
		_spec.ClearField(trainingsignal.FieldLowestDimension, field.TypeString)
	}
	if value, ok := _u.mutation.ImprovementSuggestion(); ok {
		_spec.SetField(trainingsignal.FieldImprovementSuggestion, field.TypeString, value)
	}
	if _u.mutation.ImprovementSuggestionCleared() {
		_spec.ClearField(trainingsignal.FieldImprovementSuggestion, field.TypeString)
	}
	_node = &TrainingSignal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingsignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
