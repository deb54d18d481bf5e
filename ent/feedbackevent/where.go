// Code generated by ent, DO NOT EDIT.

package feedbackevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/datasleuth/sleuth/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldTenantID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldEventType, v))
}

// InvestigationID applies equality check predicate on the "investigation_id" field. It's identical to InvestigationIDEQ.
func InvestigationID(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldInvestigationID, v))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldDatasetID, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldActorID, v))
}

// ActorType applies equality check predicate on the "actor_type" field. It's identical to ActorTypeEQ.
func ActorType(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldActorType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldTenantID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldEventType, v))
}

// EventDataIsNil applies the IsNil predicate on the "event_data" field.
func EventDataIsNil() predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIsNull(FieldEventData))
}

// EventDataNotNil applies the NotNil predicate on the "event_data" field.
func EventDataNotNil() predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotNull(FieldEventData))
}

// InvestigationIDEQ applies the EQ predicate on the "investigation_id" field.
func InvestigationIDEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldInvestigationID, v))
}

// InvestigationIDNEQ applies the NEQ predicate on the "investigation_id" field.
func InvestigationIDNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldInvestigationID, v))
}

// InvestigationIDIn applies the In predicate on the "investigation_id" field.
func InvestigationIDIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldInvestigationID, vs...))
}

// InvestigationIDNotIn applies the NotIn predicate on the "investigation_id" field.
func InvestigationIDNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldInvestigationID, vs...))
}

// InvestigationIDGT applies the GT predicate on the "investigation_id" field.
func InvestigationIDGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldInvestigationID, v))
}

// InvestigationIDGTE applies the GTE predicate on the "investigation_id" field.
func InvestigationIDGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldInvestigationID, v))
}

// InvestigationIDLT applies the LT predicate on the "investigation_id" field.
func InvestigationIDLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldInvestigationID, v))
}

// InvestigationIDLTE applies the LTE predicate on the "investigation_id" field.
func InvestigationIDLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldInvestigationID, v))
}

// InvestigationIDContains applies the Contains predicate on the "investigation_id" field.
func InvestigationIDContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldInvestigationID, v))
}

// InvestigationIDHasPrefix applies the HasPrefix predicate on the "investigation_id" field.
func InvestigationIDHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldInvestigationID, v))
}

// InvestigationIDHasSuffix applies the HasSuffix predicate on the "investigation_id" field.
func InvestigationIDHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldInvestigationID, v))
}

// InvestigationIDIsNil applies the IsNil predicate on the "investigation_id" field.
func InvestigationIDIsNil() predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIsNull(FieldInvestigationID))
}

// InvestigationIDNotNil applies the NotNil predicate on the "investigation_id" field.
func InvestigationIDNotNil() predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotNull(FieldInvestigationID))
}

// InvestigationIDEqualFold applies the EqualFold predicate on the "investigation_id" field.
func InvestigationIDEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldInvestigationID, v))
}

// InvestigationIDContainsFold applies the ContainsFold predicate on the "investigation_id" field.
func InvestigationIDContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldInvestigationID, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldDatasetID, vs...))
}

// DatasetIDGT applies the GT predicate on the "dataset_id" field.
func DatasetIDGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldDatasetID, v))
}

// DatasetIDGTE applies the GTE predicate on the "dataset_id" field.
func DatasetIDGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldDatasetID, v))
}

// DatasetIDLT applies the LT predicate on the "dataset_id" field.
func DatasetIDLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldDatasetID, v))
}

// DatasetIDLTE applies the LTE predicate on the "dataset_id" field.
func DatasetIDLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldDatasetID, v))
}

// DatasetIDContains applies the Contains predicate on the "dataset_id" field.
func DatasetIDContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldDatasetID, v))
}

// DatasetIDHasPrefix applies the HasPrefix predicate on the "dataset_id" field.
func DatasetIDHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldDatasetID, v))
}

// DatasetIDHasSuffix applies the HasSuffix predicate on the "dataset_id" field.
func DatasetIDHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldDatasetID, v))
}

// DatasetIDIsNil applies the IsNil predicate on the "dataset_id" field.
func DatasetIDIsNil() predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIsNull(FieldDatasetID))
}

// DatasetIDNotNil applies the NotNil predicate on the "dataset_id" field.
func DatasetIDNotNil() predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotNull(FieldDatasetID))
}

// DatasetIDEqualFold applies the EqualFold predicate on the "dataset_id" field.
func DatasetIDEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldDatasetID, v))
}

// DatasetIDContainsFold applies the ContainsFold predicate on the "dataset_id" field.
func DatasetIDContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldDatasetID, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDIsNil applies the IsNil predicate on the "actor_id" field.
func ActorIDIsNil() predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIsNull(FieldActorID))
}

// ActorIDNotNil applies the NotNil predicate on the "actor_id" field.
func ActorIDNotNil() predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotNull(FieldActorID))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldActorID, v))
}

// ActorTypeEQ applies the EQ predicate on the "actor_type" field.
func ActorTypeEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldActorType, v))
}

// ActorTypeNEQ applies the NEQ predicate on the "actor_type" field.
func ActorTypeNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldActorType, v))
}

// ActorTypeIn applies the In predicate on the "actor_type" field.
func ActorTypeIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldActorType, vs...))
}

// ActorTypeNotIn applies the NotIn predicate on the "actor_type" field.
func ActorTypeNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldActorType, vs...))
}

// ActorTypeGT applies the GT predicate on the "actor_type" field.
func ActorTypeGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldActorType, v))
}

// ActorTypeGTE applies the GTE predicate on the "actor_type" field.
func ActorTypeGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldActorType, v))
}

// ActorTypeLT applies the LT predicate on the "actor_type" field.
func ActorTypeLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldActorType, v))
}

// ActorTypeLTE applies the LTE predicate on the "actor_type" field.
func ActorTypeLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldActorType, v))
}

// ActorTypeContains applies the Contains predicate on the "actor_type" field.
func ActorTypeContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldActorType, v))
}

// ActorTypeHasPrefix applies the HasPrefix predicate on the "actor_type" field.
func ActorTypeHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldActorType, v))
}

// ActorTypeHasSuffix applies the HasSuffix predicate on the "actor_type" field.
func ActorTypeHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldActorType, v))
}

// ActorTypeEqualFold applies the EqualFold predicate on the "actor_type" field.
func ActorTypeEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldActorType, v))
}

// ActorTypeContainsFold applies the ContainsFold predicate on the "actor_type" field.
func ActorTypeContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldActorType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FeedbackEvent) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FeedbackEvent) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FeedbackEvent) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.NotPredicates(p))
}
