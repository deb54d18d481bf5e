// Code generated by ent, DO NOT EDIT.

package trainingsignal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/datasleuth/sleuth/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldTenantID, v))
}

// InvestigationID applies equality check predicate on the "investigation_id" field. It's identical to InvestigationIDEQ.
func InvestigationID(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldInvestigationID, v))
}

// HypothesisID applies equality check predicate on the "hypothesis_id" field. It's identical to HypothesisIDEQ.
func HypothesisID(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldHypothesisID, v))
}

// CausalDepth applies equality check predicate on the "causal_depth" field. It's identical to CausalDepthEQ.
func CausalDepth(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldCausalDepth, v))
}

// Specificity applies equality check predicate on the "specificity" field. It's identical to SpecificityEQ.
func Specificity(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldSpecificity, v))
}

// Actionability applies equality check predicate on the "actionability" field. It's identical to ActionabilityEQ.
func Actionability(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldActionability, v))
}

// CompositeScore applies equality check predicate on the "composite_score" field. It's identical to CompositeScoreEQ.
func CompositeScore(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldCompositeScore, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldPassed, v))
}

// LowestDimension applies equality check predicate on the "lowest_dimension" field. It's identical to LowestDimensionEQ.
func LowestDimension(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldLowestDimension, v))
}

// ImprovementSuggestion applies equality check predicate on the "improvement_suggestion" field. It's identical to ImprovementSuggestionEQ.
func ImprovementSuggestion(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldImprovementSuggestion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldContainsFold(FieldTenantID, v))
}

// InvestigationIDEQ applies the EQ predicate on the "investigation_id" field.
func InvestigationIDEQ(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldInvestigationID, v))
}

// InvestigationIDNEQ applies the NEQ predicate on the "investigation_id" field.
func InvestigationIDNEQ(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldInvestigationID, v))
}

// InvestigationIDIn applies the In predicate on the "investigation_id" field.
func InvestigationIDIn(vs ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldInvestigationID, vs...))
}

// InvestigationIDNotIn applies the NotIn predicate on the "investigation_id" field.
func InvestigationIDNotIn(vs ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldInvestigationID, vs...))
}

// InvestigationIDGT applies the GT predicate on the "investigation_id" field.
func InvestigationIDGT(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGT(FieldInvestigationID, v))
}

// InvestigationIDGTE applies the GTE predicate on the "investigation_id" field.
func InvestigationIDGTE(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGTE(FieldInvestigationID, v))
}

// InvestigationIDLT applies the LT predicate on the "investigation_id" field.
func InvestigationIDLT(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLT(FieldInvestigationID, v))
}

// InvestigationIDLTE applies the LTE predicate on the "investigation_id" field.
func InvestigationIDLTE(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLTE(FieldInvestigationID, v))
}

// InvestigationIDContains applies the Contains predicate on the "investigation_id" field.
func InvestigationIDContains(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldContains(FieldInvestigationID, v))
}

// InvestigationIDHasPrefix applies the HasPrefix predicate on the "investigation_id" field.
func InvestigationIDHasPrefix(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldHasPrefix(FieldInvestigationID, v))
}

// InvestigationIDHasSuffix applies the HasSuffix predicate on the "investigation_id" field.
func InvestigationIDHasSuffix(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldHasSuffix(FieldInvestigationID, v))
}

// InvestigationIDEqualFold applies the EqualFold predicate on the "investigation_id" field.
func InvestigationIDEqualFold(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEqualFold(FieldInvestigationID, v))
}

// InvestigationIDContainsFold applies the ContainsFold predicate on the "investigation_id" field.
func InvestigationIDContainsFold(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldContainsFold(FieldInvestigationID, v))
}

// HypothesisIDEQ applies the EQ predicate on the "hypothesis_id" field.
func HypothesisIDEQ(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldHypothesisID, v))
}

// HypothesisIDNEQ applies the NEQ predicate on the "hypothesis_id" field.
func HypothesisIDNEQ(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldHypothesisID, v))
}

// HypothesisIDIn applies the In predicate on the "hypothesis_id" field.
func HypothesisIDIn(vs ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldHypothesisID, vs...))
}

// HypothesisIDNotIn applies the NotIn predicate on the "hypothesis_id" field.
func HypothesisIDNotIn(vs ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldHypothesisID, vs...))
}

// HypothesisIDGT applies the GT predicate on the "hypothesis_id" field.
func HypothesisIDGT(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGT(FieldHypothesisID, v))
}

// HypothesisIDGTE applies the GTE predicate on the "hypothesis_id" field.
func HypothesisIDGTE(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGTE(FieldHypothesisID, v))
}

// HypothesisIDLT applies the LT predicate on the "hypothesis_id" field.
func HypothesisIDLT(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLT(FieldHypothesisID, v))
}

// HypothesisIDLTE applies the LTE predicate on the "hypothesis_id" field.
func HypothesisIDLTE(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLTE(FieldHypothesisID, v))
}

// HypothesisIDContains applies the Contains predicate on the "hypothesis_id" field.
func HypothesisIDContains(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldContains(FieldHypothesisID, v))
}

// HypothesisIDHasPrefix applies the HasPrefix predicate on the "hypothesis_id" field.
func HypothesisIDHasPrefix(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldHasPrefix(FieldHypothesisID, v))
}

// HypothesisIDHasSuffix applies the HasSuffix predicate on the "hypothesis_id" field.
func HypothesisIDHasSuffix(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldHasSuffix(FieldHypothesisID, v))
}

// HypothesisIDIsNil applies the IsNil predicate on the "hypothesis_id" field.
func HypothesisIDIsNil() predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIsNull(FieldHypothesisID))
}

// HypothesisIDNotNil applies the NotNil predicate on the "hypothesis_id" field.
func HypothesisIDNotNil() predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotNull(FieldHypothesisID))
}

// HypothesisIDEqualFold applies the EqualFold predicate on the "hypothesis_id" field.
func HypothesisIDEqualFold(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEqualFold(FieldHypothesisID, v))
}

// HypothesisIDContainsFold applies the ContainsFold predicate on the "hypothesis_id" field.
func HypothesisIDContainsFold(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldContainsFold(FieldHypothesisID, v))
}

// SignalTypeEQ applies the EQ predicate on the "signal_type" field.
func SignalTypeEQ(v SignalType) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldSignalType, v))
}

// SignalTypeNEQ applies the NEQ predicate on the "signal_type" field.
func SignalTypeNEQ(v SignalType) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldSignalType, v))
}

// SignalTypeIn applies the In predicate on the "signal_type" field.
func SignalTypeIn(vs ...SignalType) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldSignalType, vs...))
}

// SignalTypeNotIn applies the NotIn predicate on the "signal_type" field.
func SignalTypeNotIn(vs ...SignalType) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldSignalType, vs...))
}

// CausalDepthEQ applies the EQ predicate on the "causal_depth" field.
func CausalDepthEQ(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldCausalDepth, v))
}

// CausalDepthNEQ applies the NEQ predicate on the "causal_depth" field.
func CausalDepthNEQ(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldCausalDepth, v))
}

// CausalDepthIn applies the In predicate on the "causal_depth" field.
func CausalDepthIn(vs ...float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldCausalDepth, vs...))
}

// CausalDepthNotIn applies the NotIn predicate on the "causal_depth" field.
func CausalDepthNotIn(vs ...float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldCausalDepth, vs...))
}

// CausalDepthGT applies the GT predicate on the "causal_depth" field.
func CausalDepthGT(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGT(FieldCausalDepth, v))
}

// CausalDepthGTE applies the GTE predicate on the "causal_depth" field.
func CausalDepthGTE(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGTE(FieldCausalDepth, v))
}

// CausalDepthLT applies the LT predicate on the "causal_depth" field.
func CausalDepthLT(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLT(FieldCausalDepth, v))
}

// CausalDepthLTE applies the LTE predicate on the "causal_depth" field.
func CausalDepthLTE(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLTE(FieldCausalDepth, v))
}

// SpecificityEQ applies the EQ predicate on the "specificity" field.
func SpecificityEQ(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldSpecificity, v))
}

// SpecificityNEQ applies the NEQ predicate on the "specificity" field.
func SpecificityNEQ(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldSpecificity, v))
}

// SpecificityIn applies the In predicate on the "specificity" field.
func SpecificityIn(vs ...float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldSpecificity, vs...))
}

// SpecificityNotIn applies the NotIn predicate on the "specificity" field.
func SpecificityNotIn(vs ...float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldSpecificity, vs...))
}

// SpecificityGT applies the GT predicate on the "specificity" field.
func SpecificityGT(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGT(FieldSpecificity, v))
}

// SpecificityGTE applies the GTE predicate on the "specificity" field.
func SpecificityGTE(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGTE(FieldSpecificity, v))
}

// SpecificityLT applies the LT predicate on the "specificity" field.
func SpecificityLT(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLT(FieldSpecificity, v))
}

// SpecificityLTE applies the LTE predicate on the "specificity" field.
func SpecificityLTE(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLTE(FieldSpecificity, v))
}

// ActionabilityEQ applies the EQ predicate on the "actionability" field.
func ActionabilityEQ(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldActionability, v))
}

// ActionabilityNEQ applies the NEQ predicate on the "actionability" field.
func ActionabilityNEQ(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldActionability, v))
}

// ActionabilityIn applies the In predicate on the "actionability" field.
func ActionabilityIn(vs ...float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldActionability, vs...))
}

// ActionabilityNotIn applies the NotIn predicate on the "actionability" field.
func ActionabilityNotIn(vs ...float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldActionability, vs...))
}

// ActionabilityGT applies the GT predicate on the "actionability" field.
func ActionabilityGT(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGT(FieldActionability, v))
}

// ActionabilityGTE applies the GTE predicate on the "actionability" field.
func ActionabilityGTE(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGTE(FieldActionability, v))
}

// ActionabilityLT applies the LT predicate on the "actionability" field.
func ActionabilityLT(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLT(FieldActionability, v))
}

// ActionabilityLTE applies the LTE predicate on the "actionability" field.
func ActionabilityLTE(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLTE(FieldActionability, v))
}

// CompositeScoreEQ applies the EQ predicate on the "composite_score" field.
func CompositeScoreEQ(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldCompositeScore, v))
}

// CompositeScoreNEQ applies the NEQ predicate on the "composite_score" field.
func CompositeScoreNEQ(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldCompositeScore, v))
}

// CompositeScoreIn applies the In predicate on the "composite_score" field.
func CompositeScoreIn(vs ...float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldCompositeScore, vs...))
}

// CompositeScoreNotIn applies the NotIn predicate on the "composite_score" field.
func CompositeScoreNotIn(vs ...float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldCompositeScore, vs...))
}

// CompositeScoreGT applies the GT predicate on the "composite_score" field.
func CompositeScoreGT(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGT(FieldCompositeScore, v))
}

// CompositeScoreGTE applies the GTE predicate on the "composite_score" field.
func CompositeScoreGTE(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGTE(FieldCompositeScore, v))
}

// CompositeScoreLT applies the LT predicate on the "composite_score" field.
func CompositeScoreLT(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLT(FieldCompositeScore, v))
}

// CompositeScoreLTE applies the LTE predicate on the "composite_score" field.
func CompositeScoreLTE(v float64) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLTE(FieldCompositeScore, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldPassed, v))
}

// LowestDimensionEQ applies the EQ predicate on the "lowest_dimension" field.
func LowestDimensionEQ(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldLowestDimension, v))
}

// LowestDimensionNEQ applies the NEQ predicate on the "lowest_dimension" field.
func LowestDimensionNEQ(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldLowestDimension, v))
}

// LowestDimensionIn applies the In predicate on the "lowest_dimension" field.
func LowestDimensionIn(vs ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldLowestDimension, vs...))
}

// LowestDimensionNotIn applies the NotIn predicate on the "lowest_dimension" field.
func LowestDimensionNotIn(vs ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldLowestDimension, vs...))
}

// LowestDimensionGT applies the GT predicate on the "lowest_dimension" field.
func LowestDimensionGT(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGT(FieldLowestDimension, v))
}

// LowestDimensionGTE applies the GTE predicate on the "lowest_dimension" field.
func LowestDimensionGTE(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGTE(FieldLowestDimension, v))
}

// LowestDimensionLT applies the LT predicate on the "lowest_dimension" field.
func LowestDimensionLT(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLT(FieldLowestDimension, v))
}

// LowestDimensionLTE applies the LTE predicate on the "lowest_dimension" field.
func LowestDimensionLTE(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLTE(FieldLowestDimension, v))
}

// LowestDimensionContains applies the Contains predicate on the "lowest_dimension" field.
func LowestDimensionContains(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldContains(FieldLowestDimension, v))
}

// LowestDimensionHasPrefix applies the HasPrefix predicate on the "lowest_dimension" field.
func LowestDimensionHasPrefix(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldHasPrefix(FieldLowestDimension, v))
}

// LowestDimensionHasSuffix applies the HasSuffix predicate on the "lowest_dimension" field.
func LowestDimensionHasSuffix(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldHasSuffix(FieldLowestDimension, v))
}

// LowestDimensionIsNil applies the IsNil predicate on the "lowest_dimension" field.
func LowestDimensionIsNil() predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIsNull(FieldLowestDimension))
}

// LowestDimensionNotNil applies the NotNil predicate on the "lowest_dimension" field.
func LowestDimensionNotNil() predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotNull(FieldLowestDimension))
}

// LowestDimensionEqualFold applies the EqualFold predicate on the "lowest_dimension" field.
func LowestDimensionEqualFold(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEqualFold(FieldLowestDimension, v))
}

// LowestDimensionContainsFold applies the ContainsFold predicate on the "lowest_dimension" field.
func LowestDimensionContainsFold(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldContainsFold(FieldLowestDimension, v))
}

// ImprovementSuggestionEQ applies the EQ predicate on the "improvement_suggestion" field.
func ImprovementSuggestionEQ(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldImprovementSuggestion, v))
}

// ImprovementSuggestionNEQ applies the NEQ predicate on the "improvement_suggestion" field.
func ImprovementSuggestionNEQ(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldImprovementSuggestion, v))
}

// ImprovementSuggestionIn applies the In predicate on the "improvement_suggestion" field.
func ImprovementSuggestionIn(vs ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldImprovementSuggestion, vs...))
}

// ImprovementSuggestionNotIn applies the NotIn predicate on the "improvement_suggestion" field.
func ImprovementSuggestionNotIn(vs ...string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldImprovementSuggestion, vs...))
}

// ImprovementSuggestionGT applies the GT predicate on the "improvement_suggestion" field.
func ImprovementSuggestionGT(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGT(FieldImprovementSuggestion, v))
}

// ImprovementSuggestionGTE applies the GTE predicate on the "improvement_suggestion" field.
func ImprovementSuggestionGTE(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGTE(FieldImprovementSuggestion, v))
}

// ImprovementSuggestionLT applies the LT predicate on the "improvement_suggestion" field.
func ImprovementSuggestionLT(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLT(FieldImprovementSuggestion, v))
}

// ImprovementSuggestionLTE applies the LTE predicate on the "improvement_suggestion" field.
func ImprovementSuggestionLTE(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLTE(FieldImprovementSuggestion, v))
}

// ImprovementSuggestionContains applies the Contains predicate on the "improvement_suggestion" field.
func ImprovementSuggestionContains(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldContains(FieldImprovementSuggestion, v))
}

// ImprovementSuggestionHasPrefix applies the HasPrefix predicate on the "improvement_suggestion" field.
func ImprovementSuggestionHasPrefix(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldHasPrefix(FieldImprovementSuggestion, v))
}

// ImprovementSuggestionHasSuffix applies the HasSuffix predicate on the "improvement_suggestion" field.
func ImprovementSuggestionHasSuffix(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldHasSuffix(FieldImprovementSuggestion, v))
}

// ImprovementSuggestionIsNil applies the IsNil predicate on the "improvement_suggestion" field.
func ImprovementSuggestionIsNil() predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIsNull(FieldImprovementSuggestion))
}

// ImprovementSuggestionNotNil applies the NotNil predicate on the "improvement_suggestion" field.
func ImprovementSuggestionNotNil() predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotNull(FieldImprovementSuggestion))
}

// ImprovementSuggestionEqualFold applies the EqualFold predicate on the "improvement_suggestion" field.
func ImprovementSuggestionEqualFold(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEqualFold(FieldImprovementSuggestion, v))
}

// ImprovementSuggestionContainsFold applies the ContainsFold predicate on the "improvement_suggestion" field.
func ImprovementSuggestionContainsFold(v string) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldContainsFold(FieldImprovementSuggestion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInvestigation applies the HasEdge predicate on the "investigation" edge.
func HasInvestigation() predicate.TrainingSignal {
	return predicate.TrainingSignal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvestigationTable, InvestigationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvestigationWith applies the HasEdge predicate on the "investigation" edge with a given conditions (other predicates).
func HasInvestigationWith(preds ...predicate.Investigation) predicate.TrainingSignal {
	return predicate.TrainingSignal(func(s *sql.Selector) {
		step := newInvestigationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrainingSignal) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrainingSignal) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrainingSignal) predicate.TrainingSignal {
	return predicate.TrainingSignal(sql.NotPredicates(p))
}
