// Code generated by ent, DO NOT EDIT.

package investigation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/datasleuth/sleuth/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldTenantID, v))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDatasetID, v))
}

// RootCause applies equality check predicate on the "root_cause" field. It's identical to RootCauseEQ.
func RootCause(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldRootCause, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldConfidence, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDurationSeconds, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldPodID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCompletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldTenantID, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldDatasetID, vs...))
}

// DatasetIDGT applies the GT predicate on the "dataset_id" field.
func DatasetIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldDatasetID, v))
}

// DatasetIDGTE applies the GTE predicate on the "dataset_id" field.
func DatasetIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldDatasetID, v))
}

// DatasetIDLT applies the LT predicate on the "dataset_id" field.
func DatasetIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldDatasetID, v))
}

// DatasetIDLTE applies the LTE predicate on the "dataset_id" field.
func DatasetIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldDatasetID, v))
}

// DatasetIDContains applies the Contains predicate on the "dataset_id" field.
func DatasetIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldDatasetID, v))
}

// DatasetIDHasPrefix applies the HasPrefix predicate on the "dataset_id" field.
func DatasetIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldDatasetID, v))
}

// DatasetIDHasSuffix applies the HasSuffix predicate on the "dataset_id" field.
func DatasetIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldDatasetID, v))
}

// DatasetIDEqualFold applies the EqualFold predicate on the "dataset_id" field.
func DatasetIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldDatasetID, v))
}

// DatasetIDContainsFold applies the ContainsFold predicate on the "dataset_id" field.
func DatasetIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldDatasetID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldStatus, vs...))
}

// EventsIsNil applies the IsNil predicate on the "events" field.
func EventsIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldEvents))
}

// EventsNotNil applies the NotNil predicate on the "events" field.
func EventsNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldEvents))
}

// RootCauseEQ applies the EQ predicate on the "root_cause" field.
func RootCauseEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldRootCause, v))
}

// RootCauseNEQ applies the NEQ predicate on the "root_cause" field.
func RootCauseNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldRootCause, v))
}

// RootCauseIn applies the In predicate on the "root_cause" field.
func RootCauseIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldRootCause, vs...))
}

// RootCauseNotIn applies the NotIn predicate on the "root_cause" field.
func RootCauseNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldRootCause, vs...))
}

// RootCauseGT applies the GT predicate on the "root_cause" field.
func RootCauseGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldRootCause, v))
}

// RootCauseGTE applies the GTE predicate on the "root_cause" field.
func RootCauseGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldRootCause, v))
}

// RootCauseLT applies the LT predicate on the "root_cause" field.
func RootCauseLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldRootCause, v))
}

// RootCauseLTE applies the LTE predicate on the "root_cause" field.
func RootCauseLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldRootCause, v))
}

// RootCauseContains applies the Contains predicate on the "root_cause" field.
func RootCauseContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldRootCause, v))
}

// RootCauseHasPrefix applies the HasPrefix predicate on the "root_cause" field.
func RootCauseHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldRootCause, v))
}

// RootCauseHasSuffix applies the HasSuffix predicate on the "root_cause" field.
func RootCauseHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldRootCause, v))
}

// RootCauseIsNil applies the IsNil predicate on the "root_cause" field.
func RootCauseIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldRootCause))
}

// RootCauseNotNil applies the NotNil predicate on the "root_cause" field.
func RootCauseNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldRootCause))
}

// RootCauseEqualFold applies the EqualFold predicate on the "root_cause" field.
func RootCauseEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldRootCause, v))
}

// RootCauseContainsFold applies the ContainsFold predicate on the "root_cause" field.
func RootCauseContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldRootCause, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldConfidence))
}

// FindingIsNil applies the IsNil predicate on the "finding" field.
func FindingIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldFinding))
}

// FindingNotNil applies the NotNil predicate on the "finding" field.
func FindingNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldFinding))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldDurationSeconds))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldPodID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldCompletedAt))
}

// HasTrainingSignals applies the HasEdge predicate on the "training_signals" edge.
func HasTrainingSignals() predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TrainingSignalsTable, TrainingSignalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrainingSignalsWith applies the HasEdge predicate on the "training_signals" edge with a given conditions (other predicates).
func HasTrainingSignalsWith(preds ...predicate.TrainingSignal) predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := newTrainingSignalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.NotPredicates(p))
}
