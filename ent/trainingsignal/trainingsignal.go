// Code generated by ent, DO NOT EDIT.

package trainingsignal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the trainingsignal type in the database.
	Label = "training_signal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "signal_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldInvestigationID holds the string denoting the investigation_id field in the database.
	FieldInvestigationID = "investigation_id"
	// FieldHypothesisID holds the string denoting the hypothesis_id field in the database.
	FieldHypothesisID = "hypothesis_id"
	// FieldSignalType holds the string denoting the signal_type field in the database.
	FieldSignalType = "signal_type"
	// FieldCausalDepth holds the string denoting the causal_depth field in the database.
	FieldCausalDepth = "causal_depth"
	// FieldSpecificity holds the string denoting the specificity field in the database.
	FieldSpecificity = "specificity"
	// FieldActionability holds the string denoting the actionability field in the database.
	FieldActionability = "actionability"
	// FieldCompositeScore holds the string denoting the composite_score field in the database.
	FieldCompositeScore = "composite_score"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldLowestDimension holds the string denoting the lowest_dimension field in the database.
	FieldLowestDimension = "lowest_dimension"
	// FieldImprovementSuggestion holds the string denoting the improvement_suggestion field in the database.
	FieldImprovementSuggestion = "improvement_suggestion"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInvestigation holds the string denoting the investigation edge name in mutations.
	EdgeInvestigation = "investigation"
	// InvestigationFieldID holds the string denoting the ID field of the Investigation.
	InvestigationFieldID = "investigation_id"
	// Table holds the table name of the trainingsignal in the database.
	Table = "training_signals"
	// InvestigationTable is the table that holds the investigation relation/edge.
	InvestigationTable = "training_signals"
	// InvestigationInverseTable is the table name for the Investigation entity.
	// It exists in this package in order to avoid circular dependency with the "investigation" package.
	InvestigationInverseTable = "investigations"
	// InvestigationColumn is the table column denoting the investigation relation/edge.
	InvestigationColumn = "investigation_id"
)

// Columns holds all SQL columns for trainingsignal fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldInvestigationID,
	FieldHypothesisID,
	FieldSignalType,
	FieldCausalDepth,
	FieldSpecificity,
	FieldActionability,
	FieldCompositeScore,
	FieldPassed,
	FieldLowestDimension,
	FieldImprovementSuggestion,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SignalType defines the type for the "signal_type" enum field.
type SignalType string

// SignalType values.
const (
	SignalTypeInterpretation SignalType = "interpretation"
	SignalTypeSynthesis      SignalType = "synthesis"
)

func (st SignalType) String() string {
	return string(st)
}

// SignalTypeValidator is a validator for the "signal_type" field enum values. It is called by the builders before save.
func SignalTypeValidator(st SignalType) error {
	switch st {
	case SignalTypeInterpretation, SignalTypeSynthesis:
		return nil
	default:
		return fmt.Errorf("trainingsignal: invalid enum value for signal_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the TrainingSignal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByInvestigationID orders the results by the investigation_id field.
func ByInvestigationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestigationID, opts...).ToFunc()
}

// ByHypothesisID orders the results by the hypothesis_id field.
func ByHypothesisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHypothesisID, opts...).ToFunc()
}

// BySignalType orders the results by the signal_type field.
func BySignalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignalType, opts...).ToFunc()
}

// ByCausalDepth orders the results by the causal_depth field.
func ByCausalDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCausalDepth, opts...).ToFunc()
}

// BySpecificity orders the results by the specificity field.
func BySpecificity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecificity, opts...).ToFunc()
}

// ByActionability orders the results by the actionability field.
func ByActionability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionability, opts...).ToFunc()
}

// ByCompositeScore orders the results by the composite_score field.
func ByCompositeScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompositeScore, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByLowestDimension orders the results by the lowest_dimension field.
func ByLowestDimension(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowestDimension, opts...).ToFunc()
}

// ByImprovementSuggestion orders the results by the improvement_suggestion field.
func ByImprovementSuggestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImprovementSuggestion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInvestigationField orders the results by investigation field.
func ByInvestigationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvestigationStep(), sql.OrderByField(field, opts...))
	}
}
func newInvestigationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvestigationInverseTable, InvestigationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InvestigationTable, InvestigationColumn),
	)
}
