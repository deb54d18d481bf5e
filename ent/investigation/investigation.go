// Code generated by ent, DO NOT EDIT.

package investigation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the investigation type in the database.
	Label = "investigation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "investigation_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldDatasetID holds the string denoting the dataset_id field in the database.
	FieldDatasetID = "dataset_id"
	// FieldAlert holds the string denoting the alert field in the database.
	FieldAlert = "alert"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEvents holds the string denoting the events field in the database.
	FieldEvents = "events"
	// FieldRootCause holds the string denoting the root_cause field in the database.
	FieldRootCause = "root_cause"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldFinding holds the string denoting the finding field in the database.
	FieldFinding = "finding"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeTrainingSignals holds the string denoting the training_signals edge name in mutations.
	EdgeTrainingSignals = "training_signals"
	// TrainingSignalFieldID holds the string denoting the ID field of the TrainingSignal.
	TrainingSignalFieldID = "signal_id"
	// Table holds the table name of the investigation in the database.
	Table = "investigations"
	// TrainingSignalsTable is the table that holds the training_signals relation/edge.
	TrainingSignalsTable = "training_signals"
	// TrainingSignalsInverseTable is the table name for the TrainingSignal entity.
	// It exists in this package in order to avoid circular dependency with the "trainingsignal" package.
	TrainingSignalsInverseTable = "training_signals"
	// TrainingSignalsColumn is the table column denoting the training_signals relation/edge.
	TrainingSignalsColumn = "investigation_id"
)

// Columns holds all SQL columns for investigation fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldDatasetID,
	FieldAlert,
	FieldStatus,
	FieldEvents,
	FieldRootCause,
	FieldConfidence,
	FieldFinding,
	FieldDurationSeconds,
	FieldErrorMessage,
	FieldPodID,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending               Status = "pending"
	StatusInProgress            Status = "in_progress"
	StatusCompleted             Status = "completed"
	StatusInconclusive          Status = "inconclusive"
	StatusFailed                Status = "failed"
	StatusSchemaDiscoveryFailed Status = "schema_discovery_failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusInconclusive, StatusFailed, StatusSchemaDiscoveryFailed:
		return nil
	default:
		return fmt.Errorf("investigation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Investigation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByDatasetID orders the results by the dataset_id field.
func ByDatasetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRootCause orders the results by the root_cause field.
func ByRootCause(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRootCause, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTrainingSignalsCount orders the results by training_signals count.
func ByTrainingSignalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTrainingSignalsStep(), opts...)
	}
}

// ByTrainingSignals orders the results by training_signals terms.
func ByTrainingSignals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrainingSignalsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTrainingSignalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrainingSignalsInverseTable, TrainingSignalFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TrainingSignalsTable, TrainingSignalsColumn),
	)
}
