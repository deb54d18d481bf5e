// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datasleuth/sleuth/ent/feedbackevent"
	"github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/ent/predicate"
	"github.com/datasleuth/sleuth/ent/trainingsignal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFeedbackEvent  = "FeedbackEvent"
	TypeInvestigation  = "Investigation"
	TypeTrainingSignal = "TrainingSignal"
)

// FeedbackEventMutation represents an operation that mutates the FeedbackEvent nodes in the graph.
type FeedbackEventMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	event_type       *string
	event_data       *map[string]interface{}
	investigation_id *string
	dataset_id       *string
	actor_id         *string
	actor_type       *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*FeedbackEvent, error)
	predicates       []predicate.FeedbackEvent
}

var _ ent.Mutation = (*FeedbackEventMutation)(nil)

// feedbackeventOption allows management of the mutation configuration using functional options.
type feedbackeventOption func(*FeedbackEventMutation)

// newFeedbackEventMutation creates new mutation for the FeedbackEvent entity.
func newFeedbackEventMutation(c config, op Op, opts ...feedbackeventOption) *FeedbackEventMutation {
	m := &FeedbackEventMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedbackEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackEventID sets the ID field of the mutation.
func withFeedbackEventID(id string) feedbackeventOption {
	return func(m *FeedbackEventMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedbackEvent
		)
		m.oldValue = func(ctx context.Context) (*FeedbackEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedbackEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedbackEvent sets the old FeedbackEvent of the mutation.
func withFeedbackEvent(node *FeedbackEvent) feedbackeventOption {
	return func(m *FeedbackEventMutation) {
		m.oldValue = func(context.Context) (*FeedbackEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FeedbackEvent entities.
func (m *FeedbackEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedbackEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *FeedbackEventMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *FeedbackEventMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *FeedbackEventMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetEventType sets the "event_type" field.
func (m *FeedbackEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *FeedbackEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *FeedbackEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventData sets the "event_data" field.
func (m *FeedbackEventMutation) SetEventData(value map[string]interface{}) {
	m.event_data = &value
}

// EventData returns the value of the "event_data" field in the mutation.
func (m *FeedbackEventMutation) EventData() (r map[string]interface{}, exists bool) {
	v := m.event_data
	if v == nil {
		return
	}
	return *v, true
}

// OldEventData returns the old "event_data" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldEventData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventData: %w", err)
	}
	return oldValue.EventData, nil
}

// ClearEventData clears the value of the "event_data" field.
func (m *FeedbackEventMutation) ClearEventData() {
	m.event_data = nil
	m.clearedFields[feedbackevent.FieldEventData] = struct{}{}
}

// EventDataCleared returns if the "event_data" field was cleared in this mutation.
func (m *FeedbackEventMutation) EventDataCleared() bool {
	_, ok := m.clearedFields[feedbackevent.FieldEventData]
	return ok
}

// ResetEventData resets all changes to the "event_data" field.
func (m *FeedbackEventMutation) ResetEventData() {
	m.event_data = nil
	delete(m.clearedFields, feedbackevent.FieldEventData)
}

// SetInvestigationID sets the "investigation_id" field.
func (m *FeedbackEventMutation) SetInvestigationID(s string) {
	m.investigation_id = &s
}

// InvestigationID returns the value of the "investigation_id" field in the mutation.
func (m *FeedbackEventMutation) InvestigationID() (r string, exists bool) {
	v := m.investigation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationID returns the old "investigation_id" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldInvestigationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationID: %w", err)
	}
	return oldValue.InvestigationID, nil
}

// ClearInvestigationID clears the value of the "investigation_id" field.
func (m *FeedbackEventMutation) ClearInvestigationID() {
	m.investigation_id = nil
	m.clearedFields[feedbackevent.FieldInvestigationID] = struct{}{}
}

// InvestigationIDCleared returns if the "investigation_id" field was cleared in this mutation.
func (m *FeedbackEventMutation) InvestigationIDCleared() bool {
	_, ok := m.clearedFields[feedbackevent.FieldInvestigationID]
	return ok
}

// ResetInvestigationID resets all changes to the "investigation_id" field.
func (m *FeedbackEventMutation) ResetInvestigationID() {
	m.investigation_id = nil
	delete(m.clearedFields, feedbackevent.FieldInvestigationID)
}

// SetDatasetID sets the "dataset_id" field.
func (m *FeedbackEventMutation) SetDatasetID(s string) {
	m.dataset_id = &s
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *FeedbackEventMutation) DatasetID() (r string, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldDatasetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (m *FeedbackEventMutation) ClearDatasetID() {
	m.dataset_id = nil
	m.clearedFields[feedbackevent.FieldDatasetID] = struct{}{}
}

// DatasetIDCleared returns if the "dataset_id" field was cleared in this mutation.
func (m *FeedbackEventMutation) DatasetIDCleared() bool {
	_, ok := m.clearedFields[feedbackevent.FieldDatasetID]
	return ok
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *FeedbackEventMutation) ResetDatasetID() {
	m.dataset_id = nil
	delete(m.clearedFields, feedbackevent.FieldDatasetID)
}

// SetActorID sets the "actor_id" field.
func (m *FeedbackEventMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *FeedbackEventMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldActorID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *FeedbackEventMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[feedbackevent.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *FeedbackEventMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[feedbackevent.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *FeedbackEventMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, feedbackevent.FieldActorID)
}

// SetActorType sets the "actor_type" field.
func (m *FeedbackEventMutation) SetActorType(s string) {
	m.actor_type = &s
}

// ActorType returns the value of the "actor_type" field in the mutation.
func (m *FeedbackEventMutation) ActorType() (r string, exists bool) {
	v := m.actor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActorType returns the old "actor_type" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldActorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorType: %w", err)
	}
	return oldValue.ActorType, nil
}

// ResetActorType resets all changes to the "actor_type" field.
func (m *FeedbackEventMutation) ResetActorType() {
	m.actor_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedbackEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the FeedbackEventMutation builder.
func (m *FeedbackEventMutation) Where(ps ...predicate.FeedbackEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedbackEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedbackEvent).
func (m *FeedbackEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, feedbackevent.FieldTenantID)
	}
	if m.event_type != nil {
		fields = append(fields, feedbackevent.FieldEventType)
	}
	if m.event_data != nil {
		fields = append(fields, feedbackevent.FieldEventData)
	}
	if m.investigation_id != nil {
		fields = append(fields, feedbackevent.FieldInvestigationID)
	}
	if m.dataset_id != nil {
		fields = append(fields, feedbackevent.FieldDatasetID)
	}
	if m.actor_id != nil {
		fields = append(fields, feedbackevent.FieldActorID)
	}
	if m.actor_type != nil {
		fields = append(fields, feedbackevent.FieldActorType)
	}
	if m.created_at != nil {
		fields = append(fields, feedbackevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedbackevent.FieldTenantID:
		return m.TenantID()
	case feedbackevent.FieldEventType:
		return m.EventType()
	case feedbackevent.FieldEventData:
		return m.EventData()
	case feedbackevent.FieldInvestigationID:
		return m.InvestigationID()
	case feedbackevent.FieldDatasetID:
		return m.DatasetID()
	case feedbackevent.FieldActorID:
		return m.ActorID()
	case feedbackevent.FieldActorType:
		return m.ActorType()
	case feedbackevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedbackevent.FieldTenantID:
		return m.OldTenantID(ctx)
	case feedbackevent.FieldEventType:
		return m.OldEventType(ctx)
	case feedbackevent.FieldEventData:
		return m.OldEventData(ctx)
	case feedbackevent.FieldInvestigationID:
		return m.OldInvestigationID(ctx)
	case feedbackevent.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case feedbackevent.FieldActorID:
		return m.OldActorID(ctx)
	case feedbackevent.FieldActorType:
		return m.OldActorType(ctx)
	case feedbackevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeedbackEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedbackevent.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case feedbackevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case feedbackevent.FieldEventData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventData(v)
		return nil
	case feedbackevent.FieldInvestigationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationID(v)
		return nil
	case feedbackevent.FieldDatasetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case feedbackevent.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case feedbackevent.FieldActorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorType(v)
		return nil
	case feedbackevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FeedbackEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedbackevent.FieldEventData) {
		fields = append(fields, feedbackevent.FieldEventData)
	}
	if m.FieldCleared(feedbackevent.FieldInvestigationID) {
		fields = append(fields, feedbackevent.FieldInvestigationID)
	}
	if m.FieldCleared(feedbackevent.FieldDatasetID) {
		fields = append(fields, feedbackevent.FieldDatasetID)
	}
	if m.FieldCleared(feedbackevent.FieldActorID) {
		fields = append(fields, feedbackevent.FieldActorID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackEventMutation) ClearField(name string) error {
	switch name {
	case feedbackevent.FieldEventData:
		m.ClearEventData()
		return nil
	case feedbackevent.FieldInvestigationID:
		m.ClearInvestigationID()
		return nil
	case feedbackevent.FieldDatasetID:
		m.ClearDatasetID()
		return nil
	case feedbackevent.FieldActorID:
		m.ClearActorID()
		return nil
	}
	return fmt.Errorf("unknown FeedbackEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackEventMutation) ResetField(name string) error {
	switch name {
	case feedbackevent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case feedbackevent.FieldEventType:
		m.ResetEventType()
		return nil
	case feedbackevent.FieldEventData:
		m.ResetEventData()
		return nil
	case feedbackevent.FieldInvestigationID:
		m.ResetInvestigationID()
		return nil
	case feedbackevent.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case feedbackevent.FieldActorID:
		m.ResetActorID()
		return nil
	case feedbackevent.FieldActorType:
		m.ResetActorType()
		return nil
	case feedbackevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedbackEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FeedbackEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FeedbackEvent edge %s", name)
}

// InvestigationMutation represents an operation that mutates the Investigation nodes in the graph.
type InvestigationMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	tenant_id               *string
	dataset_id              *string
	alert                   *map[string]interface{}
	status                  *investigation.Status
	events                  *[]map[string]interface{}
	appendevents            []map[string]interface{}
	root_cause              *string
	confidence              *float64
	addconfidence           *float64
	finding                 *map[string]interface{}
	duration_seconds        *float64
	addduration_seconds     *float64
	error_message           *string
	pod_id                  *string
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	clearedFields           map[string]struct{}
	training_signals        map[string]struct{}
	removedtraining_signals map[string]struct{}
	clearedtraining_signals bool
	done                    bool
	oldValue                func(context.Context) (*Investigation, error)
	predicates              []predicate.Investigation
}

var _ ent.Mutation = (*InvestigationMutation)(nil)

// investigationOption allows management of the mutation configuration using functional options.
type investigationOption func(*InvestigationMutation)

// newInvestigationMutation creates new mutation for the Investigation entity.
func newInvestigationMutation(c config, op Op, opts ...investigationOption) *InvestigationMutation {
	m := &InvestigationMutation{
		config:        c,
		op:            op,
		typ:           TypeInvestigation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvestigationID sets the ID field of the mutation.
func withInvestigationID(id string) investigationOption {
	return func(m *InvestigationMutation) {
		var (
			err   error
			once  sync.Once
			value *Investigation
		)
		m.oldValue = func(ctx context.Context) (*Investigation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Investigation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvestigation sets the old Investigation of the mutation.
func withInvestigation(node *Investigation) investigationOption {
	return func(m *InvestigationMutation) {
		m.oldValue = func(context.Context) (*Investigation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvestigationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvestigationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Investigation entities.
func (m *InvestigationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvestigationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvestigationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Investigation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *InvestigationMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *InvestigationMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *InvestigationMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetDatasetID sets the "dataset_id" field.
func (m *InvestigationMutation) SetDatasetID(s string) {
	m.dataset_id = &s
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *InvestigationMutation) DatasetID() (r string, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldDatasetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *InvestigationMutation) ResetDatasetID() {
	m.dataset_id = nil
}

// SetAlert sets the "alert" field.
func (m *InvestigationMutation) SetAlert(value map[string]interface{}) {
	m.alert = &value
}

// Alert returns the value of the "alert" field in the mutation.
func (m *InvestigationMutation) Alert() (r map[string]interface{}, exists bool) {
	v := m.alert
	if v == nil {
		return
	}
	return *v, true
}

// OldAlert returns the old "alert" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldAlert(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlert is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlert requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlert: %w", err)
	}
	return oldValue.Alert, nil
}

// ResetAlert resets all changes to the "alert" field.
func (m *InvestigationMutation) ResetAlert() {
	m.alert = nil
}

// SetStatus sets the "status" field.
func (m *InvestigationMutation) SetStatus(i investigation.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InvestigationMutation) Status() (r investigation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldStatus(ctx context.Context) (v investigation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InvestigationMutation) ResetStatus() {
	m.status = nil
}

// SetEvents sets the "events" field.
func (m *InvestigationMutation) SetEvents(value []map[string]interface{}) {
	m.events = &value
	m.appendevents = nil
}

// Events returns the value of the "events" field in the mutation.
func (m *InvestigationMutation) Events() (r []map[string]interface{}, exists bool) {
	v := m.events
	if v == nil {
		return
	}
	return *v, true
}

// OldEvents returns the old "events" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldEvents(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvents: %w", err)
	}
	return oldValue.Events, nil
}

// AppendEvents adds value to the "events" field.
func (m *InvestigationMutation) AppendEvents(value []map[string]interface{}) {
	m.appendevents = append(m.appendevents, value...)
}

// AppendedEvents returns the list of values that were appended to the "events" field in this mutation.
func (m *InvestigationMutation) AppendedEvents() ([]map[string]interface{}, bool) {
	if len(m.appendevents) == 0 {
		return nil, false
	}
	return m.appendevents, true
}

// ClearEvents clears the value of the "events" field.
func (m *InvestigationMutation) ClearEvents() {
	m.events = nil
	m.appendevents = nil
	m.clearedFields[investigation.FieldEvents] = struct{}{}
}

// EventsCleared returns if the "events" field was cleared in this mutation.
func (m *InvestigationMutation) EventsCleared() bool {
	_, ok := m.clearedFields[investigation.FieldEvents]
	return ok
}

// ResetEvents resets all changes to the "events" field.
func (m *InvestigationMutation) ResetEvents() {
	m.events = nil
	m.appendevents = nil
	delete(m.clearedFields, investigation.FieldEvents)
}

// SetRootCause sets the "root_cause" field.
func (m *InvestigationMutation) SetRootCause(s string) {
	m.root_cause = &s
}

// RootCause returns the value of the "root_cause" field in the mutation.
func (m *InvestigationMutation) RootCause() (r string, exists bool) {
	v := m.root_cause
	if v == nil {
		return
	}
	return *v, true
}

// OldRootCause returns the old "root_cause" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldRootCause(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootCause is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootCause requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootCause: %w", err)
	}
	return oldValue.RootCause, nil
}

// ClearRootCause clears the value of the "root_cause" field.
func (m *InvestigationMutation) ClearRootCause() {
	m.root_cause = nil
	m.clearedFields[investigation.FieldRootCause] = struct{}{}
}

// RootCauseCleared returns if the "root_cause" field was cleared in this mutation.
func (m *InvestigationMutation) RootCauseCleared() bool {
	_, ok := m.clearedFields[investigation.FieldRootCause]
	return ok
}

// ResetRootCause resets all changes to the "root_cause" field.
func (m *InvestigationMutation) ResetRootCause() {
	m.root_cause = nil
	delete(m.clearedFields, investigation.FieldRootCause)
}

// SetConfidence sets the "confidence" field.
func (m *InvestigationMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *InvestigationMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *InvestigationMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *InvestigationMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *InvestigationMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[investigation.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *InvestigationMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[investigation.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *InvestigationMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, investigation.FieldConfidence)
}

// SetFinding sets the "finding" field.
func (m *InvestigationMutation) SetFinding(value map[string]interface{}) {
	m.finding = &value
}

// Finding returns the value of the "finding" field in the mutation.
func (m *InvestigationMutation) Finding() (r map[string]interface{}, exists bool) {
	v := m.finding
	if v == nil {
		return
	}
	return *v, true
}

// OldFinding returns the old "finding" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldFinding(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinding: %w", err)
	}
	return oldValue.Finding, nil
}

// ClearFinding clears the value of the "finding" field.
func (m *InvestigationMutation) ClearFinding() {
	m.finding = nil
	m.clearedFields[investigation.FieldFinding] = struct{}{}
}

// FindingCleared returns if the "finding" field was cleared in this mutation.
func (m *InvestigationMutation) FindingCleared() bool {
	_, ok := m.clearedFields[investigation.FieldFinding]
	return ok
}

// ResetFinding resets all changes to the "finding" field.
func (m *InvestigationMutation) ResetFinding() {
	m.finding = nil
	delete(m.clearedFields, investigation.FieldFinding)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *InvestigationMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *InvestigationMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *InvestigationMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *InvestigationMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *InvestigationMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[investigation.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *InvestigationMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[investigation.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *InvestigationMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, investigation.FieldDurationSeconds)
}

// SetErrorMessage sets the "error_message" field.
func (m *InvestigationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *InvestigationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *InvestigationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[investigation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *InvestigationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[investigation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *InvestigationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, investigation.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *InvestigationMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *InvestigationMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *InvestigationMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[investigation.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *InvestigationMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[investigation.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *InvestigationMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, investigation.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvestigationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvestigationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvestigationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *InvestigationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *InvestigationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *InvestigationMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[investigation.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *InvestigationMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *InvestigationMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, investigation.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *InvestigationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *InvestigationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *InvestigationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[investigation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *InvestigationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *InvestigationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, investigation.FieldCompletedAt)
}

// AddTrainingSignalIDs adds the "training_signals" edge to the TrainingSignal entity by ids.
func (m *InvestigationMutation) AddTrainingSignalIDs(ids ...string) {
	if m.training_signals == nil {
		m.training_signals = make(map[string]struct{})
	}
	for i := range ids {
		m.training_signals[ids[i]] = struct{}{}
	}
}

// ClearTrainingSignals clears the "training_signals" edge to the TrainingSignal entity.
func (m *InvestigationMutation) ClearTrainingSignals() {
	m.clearedtraining_signals = true
}

// TrainingSignalsCleared reports if the "training_signals" edge to the TrainingSignal entity was cleared.
func (m *InvestigationMutation) TrainingSignalsCleared() bool {
	return m.clearedtraining_signals
}

// RemoveTrainingSignalIDs removes the "training_signals" edge to the TrainingSignal entity by IDs.
func (m *InvestigationMutation) RemoveTrainingSignalIDs(ids ...string) {
	if m.removedtraining_signals == nil {
		m.removedtraining_signals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.training_signals, ids[i])
		m.removedtraining_signals[ids[i]] = struct{}{}
	}
}

// RemovedTrainingSignals returns the removed IDs of the "training_signals" edge to the TrainingSignal entity.
func (m *InvestigationMutation) RemovedTrainingSignalsIDs() (ids []string) {
	for id := range m.removedtraining_signals {
		ids = append(ids, id)
	}
	return
}

// TrainingSignalsIDs returns the "training_signals" edge IDs in the mutation.
func (m *InvestigationMutation) TrainingSignalsIDs() (ids []string) {
	for id := range m.training_signals {
		ids = append(ids, id)
	}
	return
}

// ResetTrainingSignals resets all changes to the "training_signals" edge.
func (m *InvestigationMutation) ResetTrainingSignals() {
	m.training_signals = nil
	m.clearedtraining_signals = false
	m.removedtraining_signals = nil
}

// Where appends a list predicates to the InvestigationMutation builder.
func (m *InvestigationMutation) Where(ps ...predicate.Investigation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvestigationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvestigationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Investigation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvestigationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvestigationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Investigation).
func (m *InvestigationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvestigationMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant_id != nil {
		fields = append(fields, investigation.FieldTenantID)
	}
	if m.dataset_id != nil {
		fields = append(fields, investigation.FieldDatasetID)
	}
	if m.alert != nil {
		fields = append(fields, investigation.FieldAlert)
	}
	if m.status != nil {
		fields = append(fields, investigation.FieldStatus)
	}
	if m.events != nil {
		fields = append(fields, investigation.FieldEvents)
	}
	if m.root_cause != nil {
		fields = append(fields, investigation.FieldRootCause)
	}
	if m.confidence != nil {
		fields = append(fields, investigation.FieldConfidence)
	}
	if m.finding != nil {
		fields = append(fields, investigation.FieldFinding)
	}
	if m.duration_seconds != nil {
		fields = append(fields, investigation.FieldDurationSeconds)
	}
	if m.error_message != nil {
		fields = append(fields, investigation.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, investigation.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, investigation.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, investigation.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, investigation.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvestigationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case investigation.FieldTenantID:
		return m.TenantID()
	case investigation.FieldDatasetID:
		return m.DatasetID()
	case investigation.FieldAlert:
		return m.Alert()
	case investigation.FieldStatus:
		return m.Status()
	case investigation.FieldEvents:
		return m.Events()
	case investigation.FieldRootCause:
		return m.RootCause()
	case investigation.FieldConfidence:
		return m.Confidence()
	case investigation.FieldFinding:
		return m.Finding()
	case investigation.FieldDurationSeconds:
		return m.DurationSeconds()
	case investigation.FieldErrorMessage:
		return m.ErrorMessage()
	case investigation.FieldPodID:
		return m.PodID()
	case investigation.FieldCreatedAt:
		return m.CreatedAt()
	case investigation.FieldStartedAt:
		return m.StartedAt()
	case investigation.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvestigationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case investigation.FieldTenantID:
		return m.OldTenantID(ctx)
	case investigation.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case investigation.FieldAlert:
		return m.OldAlert(ctx)
	case investigation.FieldStatus:
		return m.OldStatus(ctx)
	case investigation.FieldEvents:
		return m.OldEvents(ctx)
	case investigation.FieldRootCause:
		return m.OldRootCause(ctx)
	case investigation.FieldConfidence:
		return m.OldConfidence(ctx)
	case investigation.FieldFinding:
		return m.OldFinding(ctx)
	case investigation.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case investigation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case investigation.FieldPodID:
		return m.OldPodID(ctx)
	case investigation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case investigation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case investigation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Investigation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case investigation.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case investigation.FieldDatasetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case investigation.FieldAlert:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlert(v)
		return nil
	case investigation.FieldStatus:
		v, ok := value.(investigation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case investigation.FieldEvents:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvents(v)
		return nil
	case investigation.FieldRootCause:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootCause(v)
		return nil
	case investigation.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case investigation.FieldFinding:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinding(v)
		return nil
	case investigation.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case investigation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case investigation.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case investigation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case investigation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case investigation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Investigation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvestigationMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, investigation.FieldConfidence)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, investigation.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvestigationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case investigation.FieldConfidence:
		return m.AddedConfidence()
	case investigation.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case investigation.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case investigation.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Investigation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvestigationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(investigation.FieldEvents) {
		fields = append(fields, investigation.FieldEvents)
	}
	if m.FieldCleared(investigation.FieldRootCause) {
		fields = append(fields, investigation.FieldRootCause)
	}
	if m.FieldCleared(investigation.FieldConfidence) {
		fields = append(fields, investigation.FieldConfidence)
	}
	if m.FieldCleared(investigation.FieldFinding) {
		fields = append(fields, investigation.FieldFinding)
	}
	if m.FieldCleared(investigation.FieldDurationSeconds) {
		fields = append(fields, investigation.FieldDurationSeconds)
	}
	if m.FieldCleared(investigation.FieldErrorMessage) {
		fields = append(fields, investigation.FieldErrorMessage)
	}
	if m.FieldCleared(investigation.FieldPodID) {
		fields = append(fields, investigation.FieldPodID)
	}
	if m.FieldCleared(investigation.FieldStartedAt) {
		fields = append(fields, investigation.FieldStartedAt)
	}
	if m.FieldCleared(investigation.FieldCompletedAt) {
		fields = append(fields, investigation.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvestigationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvestigationMutation) ClearField(name string) error {
	switch name {
	case investigation.FieldEvents:
		m.ClearEvents()
		return nil
	case investigation.FieldRootCause:
		m.ClearRootCause()
		return nil
	case investigation.FieldConfidence:
		m.ClearConfidence()
		return nil
	case investigation.FieldFinding:
		m.ClearFinding()
		return nil
	case investigation.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case investigation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case investigation.FieldPodID:
		m.ClearPodID()
		return nil
	case investigation.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case investigation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Investigation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvestigationMutation) ResetField(name string) error {
	switch name {
	case investigation.FieldTenantID:
		m.ResetTenantID()
		return nil
	case investigation.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case investigation.FieldAlert:
		m.ResetAlert()
		return nil
	case investigation.FieldStatus:
		m.ResetStatus()
		return nil
	case investigation.FieldEvents:
		m.ResetEvents()
		return nil
	case investigation.FieldRootCause:
		m.ResetRootCause()
		return nil
	case investigation.FieldConfidence:
		m.ResetConfidence()
		return nil
	case investigation.FieldFinding:
		m.ResetFinding()
		return nil
	case investigation.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case investigation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case investigation.FieldPodID:
		m.ResetPodID()
		return nil
	case investigation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case investigation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case investigation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Investigation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvestigationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.training_signals != nil {
		edges = append(edges, investigation.EdgeTrainingSignals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvestigationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case investigation.EdgeTrainingSignals:
		ids := make([]ent.Value, 0, len(m.training_signals))
		for id := range m.training_signals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvestigationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtraining_signals != nil {
		edges = append(edges, investigation.EdgeTrainingSignals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvestigationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case investigation.EdgeTrainingSignals:
		ids := make([]ent.Value, 0, len(m.removedtraining_signals))
		for id := range m.removedtraining_signals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvestigationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtraining_signals {
		edges = append(edges, investigation.EdgeTrainingSignals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvestigationMutation) EdgeCleared(name string) bool {
	switch name {
	case investigation.EdgeTrainingSignals:
		return m.clearedtraining_signals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvestigationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Investigation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvestigationMutation) ResetEdge(name string) error {
	switch name {
	case investigation.EdgeTrainingSignals:
		m.ResetTrainingSignals()
		return nil
	}
	return fmt.Errorf("unknown Investigation edge %s", name)
}

// TrainingSignalMutation represents an operation that mutates the TrainingSignal nodes in the graph.
type TrainingSignalMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	tenant_id              *string
	hypothesis_id          *string
	signal_type            *trainingsignal.SignalType
	causal_depth           *float64
	addcausal_depth        *float64
	specificity            *float64
	addspecificity         *float64
	actionability          *float64
	addactionability       *float64
	composite_score        *float64
	addcomposite_score     *float64
	passed                 *bool
	lowest_dimension       *string
	improvement_suggestion *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	investigation          *string
	clearedinvestigation   bool
	done                   bool
	oldValue               func(context.Context) (*TrainingSignal, error)
	predicates             []predicate.TrainingSignal
}

var _ ent.Mutation = (*TrainingSignalMutation)(nil)

// trainingsignalOption allows management of the mutation configuration using functional options.
type trainingsignalOption func(*TrainingSignalMutation)

// newTrainingSignalMutation creates new mutation for the TrainingSignal entity.
func newTrainingSignalMutation(c config, op Op, opts ...trainingsignalOption) *TrainingSignalMutation {
	m := &TrainingSignalMutation{
		config:        c,
		op:            op,
		typ:           TypeTrainingSignal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrainingSignalID sets the ID field of the mutation.
func withTrainingSignalID(id string) trainingsignalOption {
	return func(m *TrainingSignalMutation) {
		var (
			err   error
			once  sync.Once
			value *TrainingSignal
		)
		m.oldValue = func(ctx context.Context) (*TrainingSignal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrainingSignal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrainingSignal sets the old TrainingSignal of the mutation.
func withTrainingSignal(node *TrainingSignal) trainingsignalOption {
	return func(m *TrainingSignalMutation) {
		m.oldValue = func(context.Context) (*TrainingSignal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrainingSignalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrainingSignalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrainingSignal entities.
func (m *TrainingSignalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrainingSignalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrainingSignalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrainingSignal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TrainingSignalMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TrainingSignalMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TrainingSignalMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetInvestigationID sets the "investigation_id" field.
func (m *TrainingSignalMutation) SetInvestigationID(s string) {
	m.investigation = &s
}

// InvestigationID returns the value of the "investigation_id" field in the mutation.
func (m *TrainingSignalMutation) InvestigationID() (r string, exists bool) {
	v := m.investigation
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationID returns the old "investigation_id" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldInvestigationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationID: %w", err)
	}
	return oldValue.InvestigationID, nil
}

// ResetInvestigationID resets all changes to the "investigation_id" field.
func (m *TrainingSignalMutation) ResetInvestigationID() {
	m.investigation = nil
}

// SetHypothesisID sets the "hypothesis_id" field.
func (m *TrainingSignalMutation) SetHypothesisID(s string) {
	m.hypothesis_id = &s
}

// HypothesisID returns the value of the "hypothesis_id" field in the mutation.
func (m *TrainingSignalMutation) HypothesisID() (r string, exists bool) {
	v := m.hypothesis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldHypothesisID returns the old "hypothesis_id" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldHypothesisID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHypothesisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHypothesisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHypothesisID: %w", err)
	}
	return oldValue.HypothesisID, nil
}

// ClearHypothesisID clears the value of the "hypothesis_id" field.
func (m *TrainingSignalMutation) ClearHypothesisID() {
	m.hypothesis_id = nil
	m.clearedFields[trainingsignal.FieldHypothesisID] = struct{}{}
}

// HypothesisIDCleared returns if the "hypothesis_id" field was cleared in this mutation.
func (m *TrainingSignalMutation) HypothesisIDCleared() bool {
	_, ok := m.clearedFields[trainingsignal.FieldHypothesisID]
	return ok
}

// ResetHypothesisID resets all changes to the "hypothesis_id" field.
func (m *TrainingSignalMutation) ResetHypothesisID() {
	m.hypothesis_id = nil
	delete(m.clearedFields, trainingsignal.FieldHypothesisID)
}

// SetSignalType sets the "signal_type" field.
func (m *TrainingSignalMutation) SetSignalType(tt trainingsignal.SignalType) {
	m.signal_type = &tt
}

// SignalType returns the value of the "signal_type" field in the mutation.
func (m *TrainingSignalMutation) SignalType() (r trainingsignal.SignalType, exists bool) {
	v := m.signal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalType returns the old "signal_type" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldSignalType(ctx context.Context) (v trainingsignal.SignalType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalType: %w", err)
	}
	return oldValue.SignalType, nil
}

// ResetSignalType resets all changes to the "signal_type" field.
func (m *TrainingSignalMutation) ResetSignalType() {
	m.signal_type = nil
}

// SetCausalDepth sets the "causal_depth" field.
func (m *TrainingSignalMutation) SetCausalDepth(f float64) {
	m.causal_depth = &f
	m.addcausal_depth = nil
}

// CausalDepth returns the value of the "causal_depth" field in the mutation.
func (m *TrainingSignalMutation) CausalDepth() (r float64, exists bool) {
	v := m.causal_depth
	if v == nil {
		return
	}
	return *v, true
}

// OldCausalDepth returns the old "causal_depth" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldCausalDepth(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCausalDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCausalDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCausalDepth: %w", err)
	}
	return oldValue.CausalDepth, nil
}

// AddCausalDepth adds f to the "causal_depth" field.
func (m *TrainingSignalMutation) AddCausalDepth(f float64) {
	if m.addcausal_depth != nil {
		*m.addcausal_depth += f
	} else {
		m.addcausal_depth = &f
	}
}

// AddedCausalDepth returns the value that was added to the "causal_depth" field in this mutation.
func (m *TrainingSignalMutation) AddedCausalDepth() (r float64, exists bool) {
	v := m.addcausal_depth
	if v == nil {
		return
	}
	return *v, true
}

// ResetCausalDepth resets all changes to the "causal_depth" field.
func (m *TrainingSignalMutation) ResetCausalDepth() {
	m.causal_depth = nil
	m.addcausal_depth = nil
}

// SetSpecificity sets the "specificity" field.
func (m *TrainingSignalMutation) SetSpecificity(f float64) {
	m.specificity = &f
	m.addspecificity = nil
}

// Specificity returns the value of the "specificity" field in the mutation.
func (m *TrainingSignalMutation) Specificity() (r float64, exists bool) {
	v := m.specificity
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecificity returns the old "specificity" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldSpecificity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecificity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecificity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecificity: %w", err)
	}
	return oldValue.Specificity, nil
}

// AddSpecificity adds f to the "specificity" field.
func (m *TrainingSignalMutation) AddSpecificity(f float64) {
	if m.addspecificity != nil {
		*m.addspecificity += f
	} else {
		m.addspecificity = &f
	}
}

// AddedSpecificity returns the value that was added to the "specificity" field in this mutation.
func (m *TrainingSignalMutation) AddedSpecificity() (r float64, exists bool) {
	v := m.addspecificity
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpecificity resets all changes to the "specificity" field.
func (m *TrainingSignalMutation) ResetSpecificity() {
	m.specificity = nil
	m.addspecificity = nil
}

// SetActionability sets the "actionability" field.
func (m *TrainingSignalMutation) SetActionability(f float64) {
	m.actionability = &f
	m.addactionability = nil
}

// Actionability returns the value of the "actionability" field in the mutation.
func (m *TrainingSignalMutation) Actionability() (r float64, exists bool) {
	v := m.actionability
	if v == nil {
		return
	}
	return *v, true
}

// OldActionability returns the old "actionability" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldActionability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionability: %w", err)
	}
	return oldValue.Actionability, nil
}

// AddActionability adds f to the "actionability" field.
func (m *TrainingSignalMutation) AddActionability(f float64) {
	if m.addactionability != nil {
		*m.addactionability += f
	} else {
		m.addactionability = &f
	}
}

// AddedActionability returns the value that was added to the "actionability" field in this mutation.
func (m *TrainingSignalMutation) AddedActionability() (r float64, exists bool) {
	v := m.addactionability
	if v == nil {
		return
	}
	return *v, true
}

// ResetActionability resets all changes to the "actionability" field.
func (m *TrainingSignalMutation) ResetActionability() {
	m.actionability = nil
	m.addactionability = nil
}

// SetCompositeScore sets the "composite_score" field.
func (m *TrainingSignalMutation) SetCompositeScore(f float64) {
	m.composite_score = &f
	m.addcomposite_score = nil
}

// CompositeScore returns the value of the "composite_score" field in the mutation.
func (m *TrainingSignalMutation) CompositeScore() (r float64, exists bool) {
	v := m.composite_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCompositeScore returns the old "composite_score" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldCompositeScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompositeScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompositeScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompositeScore: %w", err)
	}
	return oldValue.CompositeScore, nil
}

// AddCompositeScore adds f to the "composite_score" field.
func (m *TrainingSignalMutation) AddCompositeScore(f float64) {
	if m.addcomposite_score != nil {
		*m.addcomposite_score += f
	} else {
		m.addcomposite_score = &f
	}
}

// AddedCompositeScore returns the value that was added to the "composite_score" field in this mutation.
func (m *TrainingSignalMutation) AddedCompositeScore() (r float64, exists bool) {
	v := m.addcomposite_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompositeScore resets all changes to the "composite_score" field.
func (m *TrainingSignalMutation) ResetCompositeScore() {
	m.composite_score = nil
	m.addcomposite_score = nil
}

// SetPassed sets the "passed" field.
func (m *TrainingSignalMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *TrainingSignalMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *TrainingSignalMutation) ResetPassed() {
	m.passed = nil
}

// SetLowestDimension sets the "lowest_dimension" field.
func (m *TrainingSignalMutation) SetLowestDimension(s string) {
	m.lowest_dimension = &s
}

// LowestDimension returns the value of the "lowest_dimension" field in the mutation.
func (m *TrainingSignalMutation) LowestDimension() (r string, exists bool) {
	v := m.lowest_dimension
	if v == nil {
		return
	}
	return *v, true
}

// OldLowestDimension returns the old "lowest_dimension" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldLowestDimension(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowestDimension is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowestDimension requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowestDimension: %w", err)
	}
	return oldValue.LowestDimension, nil
}

// ClearLowestDimension clears the value of the "lowest_dimension" field.
func (m *TrainingSignalMutation) ClearLowestDimension() {
	m.lowest_dimension = nil
	m.clearedFields[trainingsignal.FieldLowestDimension] = struct{}{}
}

// LowestDimensionCleared returns if the "lowest_dimension" field was cleared in this mutation.
func (m *TrainingSignalMutation) LowestDimensionCleared() bool {
	_, ok := m.clearedFields[trainingsignal.FieldLowestDimension]
	return ok
}

// ResetLowestDimension resets all changes to the "lowest_dimension" field.
func (m *TrainingSignalMutation) ResetLowestDimension() {
	m.lowest_dimension = nil
	delete(m.clearedFields, trainingsignal.FieldLowestDimension)
}

// SetImprovementSuggestion sets the "improvement_suggestion" field.
func (m *TrainingSignalMutation) SetImprovementSuggestion(s string) {
	m.improvement_suggestion = &s
}

// ImprovementSuggestion returns the value of the "improvement_suggestion" field in the mutation.
func (m *TrainingSignalMutation) ImprovementSuggestion() (r string, exists bool) {
	v := m.improvement_suggestion
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovementSuggestion returns the old "improvement_suggestion" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldImprovementSuggestion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovementSuggestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovementSuggestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovementSuggestion: %w", err)
	}
	return oldValue.ImprovementSuggestion, nil
}

// ClearImprovementSuggestion clears the value of the "improvement_suggestion" field.
func (m *TrainingSignalMutation) ClearImprovementSuggestion() {
	m.improvement_suggestion = nil
	m.clearedFields[trainingsignal.FieldImprovementSuggestion] = struct{}{}
}

// ImprovementSuggestionCleared returns if the "improvement_suggestion" field was cleared in this mutation.
func (m *TrainingSignalMutation) ImprovementSuggestionCleared() bool {
	_, ok := m.clearedFields[trainingsignal.FieldImprovementSuggestion]
	return ok
}

// ResetImprovementSuggestion resets all changes to the "improvement_suggestion" field.
func (m *TrainingSignalMutation) ResetImprovementSuggestion() {
	m.improvement_suggestion = nil
	delete(m.clearedFields, trainingsignal.FieldImprovementSuggestion)
}

// SetCreatedAt sets the "created_at" field.
func (m *TrainingSignalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrainingSignalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrainingSignal entity.
// If the TrainingSignal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrainingSignalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrainingSignalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInvestigation clears the "investigation" edge to the Investigation entity.
func (m *TrainingSignalMutation) ClearInvestigation() {
	m.clearedinvestigation = true
	m.clearedFields[trainingsignal.FieldInvestigationID] = struct{}{}
}

// InvestigationCleared reports if the "investigation" edge to the Investigation entity was cleared.
func (m *TrainingSignalMutation) InvestigationCleared() bool {
	return m.clearedinvestigation
}

// InvestigationIDs returns the "investigation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvestigationID instead. It exists only for internal usage by the builders.
func (m *TrainingSignalMutation) InvestigationIDs() (ids []string) {
	if id := m.investigation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvestigation resets all changes to the "investigation" edge.
func (m *TrainingSignalMutation) ResetInvestigation() {
	m.investigation = nil
	m.clearedinvestigation = false
}

// Where appends a list predicates to the TrainingSignalMutation builder.
func (m *TrainingSignalMutation) Where(ps ...predicate.TrainingSignal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrainingSignalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrainingSignalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrainingSignal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrainingSignalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrainingSignalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrainingSignal).
func (m *TrainingSignalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrainingSignalMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.tenant_id != nil {
		fields = append(fields, trainingsignal.FieldTenantID)
	}
	if m.investigation != nil {
		fields = append(fields, trainingsignal.FieldInvestigationID)
	}
	if m.hypothesis_id != nil {
		fields = append(fields, trainingsignal.FieldHypothesisID)
	}
	if m.signal_type != nil {
		fields = append(fields, trainingsignal.FieldSignalType)
	}
	if m.causal_depth != nil {
		fields = append(fields, trainingsignal.FieldCausalDepth)
	}
	if m.specificity != nil {
		fields = append(fields, trainingsignal.FieldSpecificity)
	}
	if m.actionability != nil {
		fields = append(fields, trainingsignal.FieldActionability)
	}
	if m.composite_score != nil {
		fields = append(fields, trainingsignal.FieldCompositeScore)
	}
	if m.passed != nil {
		fields = append(fields, trainingsignal.FieldPassed)
	}
	if m.lowest_dimension != nil {
		fields = append(fields, trainingsignal.FieldLowestDimension)
	}
	if m.improvement_suggestion != nil {
		fields = append(fields, trainingsignal.FieldImprovementSuggestion)
	}
	if m.created_at != nil {
		fields = append(fields, trainingsignal.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrainingSignalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trainingsignal.FieldTenantID:
		return m.TenantID()
	case trainingsignal.FieldInvestigationID:
		return m.InvestigationID()
	case trainingsignal.FieldHypothesisID:
		return m.HypothesisID()
	case trainingsignal.FieldSignalType:
		return m.SignalType()
	case trainingsignal.FieldCausalDepth:
		return m.CausalDepth()
	case trainingsignal.FieldSpecificity:
		return m.Specificity()
	case trainingsignal.FieldActionability:
		return m.Actionability()
	case trainingsignal.FieldCompositeScore:
		return m.CompositeScore()
	case trainingsignal.FieldPassed:
		return m.Passed()
	case trainingsignal.FieldLowestDimension:
		return m.LowestDimension()
	case trainingsignal.FieldImprovementSuggestion:
		return m.ImprovementSuggestion()
	case trainingsignal.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrainingSignalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trainingsignal.FieldTenantID:
		return m.OldTenantID(ctx)
	case trainingsignal.FieldInvestigationID:
		return m.OldInvestigationID(ctx)
	case trainingsignal.FieldHypothesisID:
		return m.OldHypothesisID(ctx)
	case trainingsignal.FieldSignalType:
		return m.OldSignalType(ctx)
	case trainingsignal.FieldCausalDepth:
		return m.OldCausalDepth(ctx)
	case trainingsignal.FieldSpecificity:
		return m.OldSpecificity(ctx)
	case trainingsignal.FieldActionability:
		return m.OldActionability(ctx)
	case trainingsignal.FieldCompositeScore:
		return m.OldCompositeScore(ctx)
	case trainingsignal.FieldPassed:
		return m.OldPassed(ctx)
	case trainingsignal.FieldLowestDimension:
		return m.OldLowestDimension(ctx)
	case trainingsignal.FieldImprovementSuggestion:
		return m.OldImprovementSuggestion(ctx)
	case trainingsignal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrainingSignal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingSignalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trainingsignal.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case trainingsignal.FieldInvestigationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationID(v)
		return nil
	case trainingsignal.FieldHypothesisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHypothesisID(v)
		return nil
	case trainingsignal.FieldSignalType:
		v, ok := value.(trainingsignal.SignalType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalType(v)
		return nil
	case trainingsignal.FieldCausalDepth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCausalDepth(v)
		return nil
	case trainingsignal.FieldSpecificity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecificity(v)
		return nil
	case trainingsignal.FieldActionability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionability(v)
		return nil
	case trainingsignal.FieldCompositeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompositeScore(v)
		return nil
	case trainingsignal.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case trainingsignal.FieldLowestDimension:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowestDimension(v)
		return nil
	case trainingsignal.FieldImprovementSuggestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovementSuggestion(v)
		return nil
	case trainingsignal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrainingSignal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrainingSignalMutation) AddedFields() []string {
	var fields []string
	if m.addcausal_depth != nil {
		fields = append(fields, trainingsignal.FieldCausalDepth)
	}
	if m.addspecificity != nil {
		fields = append(fields, trainingsignal.FieldSpecificity)
	}
	if m.addactionability != nil {
		fields = append(fields, trainingsignal.FieldActionability)
	}
	if m.addcomposite_score != nil {
		fields = append(fields, trainingsignal.FieldCompositeScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrainingSignalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trainingsignal.FieldCausalDepth:
		return m.AddedCausalDepth()
	case trainingsignal.FieldSpecificity:
		return m.AddedSpecificity()
	case trainingsignal.FieldActionability:
		return m.AddedActionability()
	case trainingsignal.FieldCompositeScore:
		return m.AddedCompositeScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrainingSignalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trainingsignal.FieldCausalDepth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCausalDepth(v)
		return nil
	case trainingsignal.FieldSpecificity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpecificity(v)
		return nil
	case trainingsignal.FieldActionability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActionability(v)
		return nil
	case trainingsignal.FieldCompositeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompositeScore(v)
		return nil
	}
	return fmt.Errorf("unknown TrainingSignal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrainingSignalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trainingsignal.FieldHypothesisID) {
		fields = append(fields, trainingsignal.FieldHypothesisID)
	}
	if m.FieldCleared(trainingsignal.FieldLowestDimension) {
		fields = append(fields, trainingsignal.FieldLowestDimension)
	}
	if m.FieldCleared(trainingsignal.FieldImprovementSuggestion) {
		fields = append(fields, trainingsignal.FieldImprovementSuggestion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrainingSignalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrainingSignalMutation) ClearField(name string) error {
	switch name {
	case trainingsignal.FieldHypothesisID:
		m.ClearHypothesisID()
		return nil
	case trainingsignal.FieldLowestDimension:
		m.ClearLowestDimension()
		return nil
	case trainingsignal.FieldImprovementSuggestion:
		m.ClearImprovementSuggestion()
		return nil
	}
	return fmt.Errorf("unknown TrainingSignal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrainingSignalMutation) ResetField(name string) error {
	switch name {
	case trainingsignal.FieldTenantID:
		m.ResetTenantID()
		return nil
	case trainingsignal.FieldInvestigationID:
		m.ResetInvestigationID()
		return nil
	case trainingsignal.FieldHypothesisID:
		m.ResetHypothesisID()
		return nil
	case trainingsignal.FieldSignalType:
		m.ResetSignalType()
		return nil
	case trainingsignal.FieldCausalDepth:
		m.ResetCausalDepth()
		return nil
	case trainingsignal.FieldSpecificity:
		m.ResetSpecificity()
		return nil
	case trainingsignal.FieldActionability:
		m.ResetActionability()
		return nil
	case trainingsignal.FieldCompositeScore:
		m.ResetCompositeScore()
		return nil
	case trainingsignal.FieldPassed:
		m.ResetPassed()
		return nil
	case trainingsignal.FieldLowestDimension:
		m.ResetLowestDimension()
		return nil
	case trainingsignal.FieldImprovementSuggestion:
		m.ResetImprovementSuggestion()
		return nil
	case trainingsignal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrainingSignal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrainingSignalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.investigation != nil {
		edges = append(edges, trainingsignal.EdgeInvestigation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrainingSignalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trainingsignal.EdgeInvestigation:
		if id := m.investigation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrainingSignalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrainingSignalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrainingSignalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvestigation {
		edges = append(edges, trainingsignal.EdgeInvestigation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrainingSignalMutation) EdgeCleared(name string) bool {
	switch name {
	case trainingsignal.EdgeInvestigation:
		return m.clearedinvestigation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrainingSignalMutation) ClearEdge(name string) error {
	switch name {
	case trainingsignal.EdgeInvestigation:
		m.ClearInvestigation()
		return nil
	}
	return fmt.Errorf("unknown TrainingSignal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrainingSignalMutation) ResetEdge(name string) error {
	switch name {
	case trainingsignal.EdgeInvestigation:
		m.ResetInvestigation()
		return nil
	}
	return fmt.Errorf("unknown TrainingSignal edge %s", name)
}
