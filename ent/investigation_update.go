// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/ent/predicate"
	"github.com/datasleuth/sleuth/ent/trainingsignal"
)

// InvestigationUpdate is the builder for updating Investigation entities.
type InvestigationUpdate struct {
	config
	hooks    []Hook
	mutation *InvestigationMutation
}

// Where appends a list predicates to the InvestigationUpdate builder.
func (_u *InvestigationUpdate) Where(ps ...predicate.Investigation) *InvestigationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *InvestigationUpdate) SetDatasetID(v string) *InvestigationUpdate {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableDatasetID(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetAlert sets the "alert" field.
func (_u *InvestigationUpdate) SetAlert(v map[string]interface{}) *InvestigationUpdate {
	_u.mutation.SetAlert(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvestigationUpdate) SetStatus(v investigation.Status) *InvestigationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableStatus(v *investigation.Status) *InvestigationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEvents sets the "events" field.
func (_u *InvestigationUpdate) SetEvents(v []map[string]interface{}) *InvestigationUpdate {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *InvestigationUpdate) AppendEvents(v []map[string]interface{}) *InvestigationUpdate {
	_u.mutation.AppendEvents(v)
	return _u
}

// ClearEvents clears the value of the "events" field.
func (_u *InvestigationUpdate) ClearEvents() *InvestigationUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *InvestigationUpdate) SetRootCause(v string) *InvestigationUpdate {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableRootCause(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// ClearRootCause clears the value of the "root_cause" field.
func (_u *InvestigationUpdate) ClearRootCause() *InvestigationUpdate {
	_u.mutation.ClearRootCause()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InvestigationUpdate) SetConfidence(v float64) *InvestigationUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableConfidence(v *float64) *InvestigationUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InvestigationUpdate) AddConfidence(v float64) *InvestigationUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InvestigationUpdate) ClearConfidence() *InvestigationUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetFinding sets the "finding" field.
func (_u *InvestigationUpdate) SetFinding(v map[string]interface{}) *InvestigationUpdate {
	_u.mutation.SetFinding(v)
	return _u
}

// ClearFinding clears the value of the "finding" field.
func (_u *InvestigationUpdate) ClearFinding() *InvestigationUpdate {
	_u.mutation.ClearFinding()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *InvestigationUpdate) SetDurationSeconds(v float64) *InvestigationUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableDurationSeconds(v *float64) *InvestigationUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *InvestigationUpdate) AddDurationSeconds(v float64) *InvestigationUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *InvestigationUpdate) ClearDurationSeconds() *InvestigationUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvestigationUpdate) SetErrorMessage(v string) *InvestigationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableErrorMessage(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvestigationUpdate) ClearErrorMessage() *InvestigationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *InvestigationUpdate) SetPodID(v string) *InvestigationUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillablePodID(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *InvestigationUpdate) ClearPodID() *InvestigationUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InvestigationUpdate) SetStartedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableStartedAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InvestigationUpdate) ClearStartedAt() *InvestigationUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InvestigationUpdate) SetCompletedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableCompletedAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InvestigationUpdate) ClearCompletedAt() *InvestigationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTrainingSignalIDs adds the "training_signals" edge to the TrainingSignal entity by IDs.
func (_u *InvestigationUpdate) AddTrainingSignalIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.AddTrainingSignalIDs(ids...)
	return _u
}

// AddTrainingSignals adds the "training_signals" edges to the TrainingSignal entity.
func (_u *InvestigationUpdate) AddTrainingSignals(v ...*TrainingSignal) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrainingSignalIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_u *InvestigationUpdate) Mutation() *InvestigationMutation {
	return _u.mutation
}

// ClearTrainingSignals clears all "training_signals" edges to the TrainingSignal entity.
func (_u *InvestigationUpdate) ClearTrainingSignals() *InvestigationUpdate {
	_u.mutation.ClearTrainingSignals()
	return _u
}

// RemoveTrainingSignalIDs removes the "training_signals" edge to TrainingSignal entities by IDs.
func (_u *InvestigationUpdate) RemoveTrainingSignalIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.RemoveTrainingSignalIDs(ids...)
	return _u
}

// RemoveTrainingSignals removes "training_signals" edges to TrainingSignal entities.
func (_u *InvestigationUpdate) RemoveTrainingSignals(v ...*TrainingSignal) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrainingSignalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvestigationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvestigationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvestigationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigation.Table, investigation.Columns, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(investigation.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alert(); ok {
		_spec.SetField(investigation.FieldAlert, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(investigation.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigation.FieldEvents, value)
		})
	}
	if _u.mutation.EventsCleared() {
		_spec.ClearField(investigation.FieldEvents, field.TypeJSON)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(investigation.FieldRootCause, field.TypeString, value)
	}
	if _u.mutation.RootCauseCleared() {
		_spec.ClearField(investigation.FieldRootCause, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(investigation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(investigation.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(investigation.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Finding(); ok {
		_spec.SetField(investigation.FieldFinding, field.TypeJSON, value)
	}
	if _u.mutation.FindingCleared() {
		_spec.ClearField(investigation.FieldFinding, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(investigation.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(investigation.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(investigation.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(investigation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(investigation.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(investigation.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(investigation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(investigation.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TrainingSignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrainingSignalsIDs(); len(nodes) > 0 && !_u.mutation.TrainingSignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrainingSignalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvestigationUpdateOne is the builder for updating a single Investigation entity.
type InvestigationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvestigationMutation
}

// SetDatasetID sets the "dataset_id" field.
func (_u *InvestigationUpdateOne) SetDatasetID(v string) *InvestigationUpdateOne {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableDatasetID(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetAlert sets the "alert" field.
func (_u *InvestigationUpdateOne) SetAlert(v map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.SetAlert(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvestigationUpdateOne) SetStatus(v investigation.Status) *InvestigationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableStatus(v *investigation.Status) *InvestigationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEvents sets the "events" field.
func (_u *InvestigationUpdateOne) SetEvents(v []map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *InvestigationUpdateOne) AppendEvents(v []map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.AppendEvents(v)
	return _u
}

// ClearEvents clears the value of the "events" field.
func (_u *InvestigationUpdateOne) ClearEvents() *InvestigationUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *InvestigationUpdateOne) SetRootCause(v string) *InvestigationUpdateOne {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableRootCause(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// ClearRootCause clears the value of the "root_cause" field.
func (_u *InvestigationUpdateOne) ClearRootCause() *InvestigationUpdateOne {
	_u.mutation.ClearRootCause()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InvestigationUpdateOne) SetConfidence(v float64) *InvestigationUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableConfidence(v *float64) *InvestigationUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InvestigationUpdateOne) AddConfidence(v float64) *InvestigationUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InvestigationUpdateOne) ClearConfidence() *InvestigationUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetFinding sets the "finding" field.
func (_u *InvestigationUpdateOne) SetFinding(v map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.SetFinding(v)
	return _u
}

// ClearFinding clears the value of the "finding" field.
func (_u *InvestigationUpdateOne) ClearFinding() *InvestigationUpdateOne {
	_u.mutation.ClearFinding()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *InvestigationUpdateOne) SetDurationSeconds(v float64) *InvestigationUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableDurationSeconds(v *float64) *InvestigationUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *InvestigationUpdateOne) AddDurationSeconds(v float64) *InvestigationUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *InvestigationUpdateOne) ClearDurationSeconds() *InvestigationUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvestigationUpdateOne) SetErrorMessage(v string) *InvestigationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableErrorMessage(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvestigationUpdateOne) ClearErrorMessage() *InvestigationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *InvestigationUpdateOne) SetPodID(v string) *InvestigationUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillablePodID(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *InvestigationUpdateOne) ClearPodID() *InvestigationUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InvestigationUpdateOne) SetStartedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableStartedAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InvestigationUpdateOne) ClearStartedAt() *InvestigationUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InvestigationUpdateOne) SetCompletedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableCompletedAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InvestigationUpdateOne) ClearCompletedAt() *InvestigationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTrainingSignalIDs adds the "training_signals" edge to the TrainingSignal entity by IDs.
func (_u *InvestigationUpdateOne) AddTrainingSignalIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.AddTrainingSignalIDs(ids...)
	return _u
}

// AddTrainingSignals adds the "training_signals" edges to the TrainingSignal entity.
func (_u *InvestigationUpdateOne) AddTrainingSignals(v ...*TrainingSignal) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrainingSignalIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_u *InvestigationUpdateOne) Mutation() *InvestigationMutation {
	return _u.mutation
}

// ClearTrainingSignals clears all "training_signals" edges to the TrainingSignal entity.
func (_u *InvestigationUpdateOne) ClearTrainingSignals() *InvestigationUpdateOne {
	_u.mutation.ClearTrainingSignals()
	return _u
}

// RemoveTrainingSignalIDs removes the "training_signals" edge to TrainingSignal entities by IDs.
func (_u *InvestigationUpdateOne) RemoveTrainingSignalIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.RemoveTrainingSignalIDs(ids...)
	return _u
}

// RemoveTrainingSignals removes "training_signals" edges to TrainingSignal entities.
func (_u *InvestigationUpdateOne) RemoveTrainingSignals(v ...*TrainingSignal) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrainingSignalIDs(ids...)
}

// Where appends a list predicates to the InvestigationUpdate builder.
func (_u *InvestigationUpdateOne) Where(ps ...predicate.Investigation) *InvestigationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvestigationUpdateOne) Select(field string, fields ...string) *InvestigationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Investigation entity.
func (_u *InvestigationUpdateOne) Save(ctx context.Context) (*Investigation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationUpdateOne) SaveX(ctx context.Context) *Investigation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvestigationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvestigationUpdateOne) sqlSave(ctx context.Context) (_node *Investigation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigation.Table, investigation.Columns, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Investigation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, investigation.FieldID)
		for _, f := range fields {
			if !investigation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != investigation.FieldID {
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
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(investigation.FieldDatasetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alert(); ok {
		_spec.SetField(investigation.FieldAlert, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(investigation.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, investigation.FieldEvents, value)
		})
	}
	if _u.mutation.EventsCleared() {
		_spec.ClearField(investigation.FieldEvents, field.TypeJSON)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(investigation.FieldRootCause, field.TypeString, value)
	}
	if _u.mutation.RootCauseCleared() {
		_spec.ClearField(investigation.FieldRootCause, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(investigation.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(investigation.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(investigation.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Finding(); ok {
		_spec.SetField(investigation.FieldFinding, field.TypeJSON, value)
	}
	if _u.mutation.FindingCleared() {
		_spec.ClearField(investigation.FieldFinding, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(investigation.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(investigation.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(investigation.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(investigation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(investigation.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(investigation.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(investigation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(investigation.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TrainingSignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrainingSignalsIDs(); len(nodes) > 0 && !_u.mutation.TrainingSignalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrainingSignalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Investigation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
