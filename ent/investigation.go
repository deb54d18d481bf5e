// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datasleuth/sleuth/ent/investigation"
)

// Investigation is the model entity for the Investigation schema.
type Investigation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Dataset the anomaly was raised on
	DatasetID string `json:"dataset_id,omitempty"`
	// Original anomaly alert payload
	Alert map[string]interface{} `json:"alert,omitempty"`
	// Status holds the value of the "status" field.
	Status investigation.Status `json:"status,omitempty"`
	// Append-only event log, written once at completion
	Events []map[string]interface{} `json:"events,omitempty"`
	// RootCause holds the value of the "root_cause" field.
	RootCause *string `json:"root_cause,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// Full synthesized finding
	Finding map[string]interface{} `json:"finding,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// When the alert was accepted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the investigation
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvestigationQuery when eager-loading is set.
	Edges        InvestigationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvestigationEdges holds the relations/edges for other nodes in the graph.
type InvestigationEdges struct {
	// TrainingSignals holds the value of the training_signals edge.
	TrainingSignals []*TrainingSignal `json:"training_signals,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TrainingSignalsOrErr returns the TrainingSignals value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationEdges) TrainingSignalsOrErr() ([]*TrainingSignal, error) {
	if e.loadedTypes[0] {
		return e.TrainingSignals, nil
	}
	return nil, &NotLoadedError{edge: "training_signals"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Investigation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case investigation.FieldAlert, investigation.FieldEvents, investigation.FieldFinding:
			values[i] = new([]byte)
		case investigation.FieldConfidence, investigation.FieldDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case investigation.FieldID, investigation.FieldTenantID, investigation.FieldDatasetID, investigation.FieldStatus, investigation.FieldRootCause, investigation.FieldErrorMessage, investigation.FieldPodID:
			values[i] = new(sql.NullString)
		case investigation.FieldCreatedAt, investigation.FieldStartedAt, investigation.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Investigation fields.
func (_m *Investigation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case investigation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case investigation.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case investigation.FieldDatasetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value.Valid {
				_m.DatasetID = value.String
			}
		case investigation.FieldAlert:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alert", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Alert); err != nil {
					return fmt.Errorf("unmarshal field alert: %w", err)
				}
			}
		case investigation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = investigation.Status(value.String)
			}
		case investigation.FieldEvents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field events", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Events); err != nil {
					return fmt.Errorf("unmarshal field events: %w", err)
				}
			}
		case investigation.FieldRootCause:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field root_cause", values[i])
			} else if value.Valid {
				_m.RootCause = new(string)
				*_m.RootCause = value.String
			}
		case investigation.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case investigation.FieldFinding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field finding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Finding); err != nil {
					return fmt.Errorf("unmarshal field finding: %w", err)
				}
			}
		case investigation.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(float64)
				*_m.DurationSeconds = value.Float64
			}
		case investigation.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case investigation.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case investigation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case investigation.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case investigation.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Investigation.
// This includes values selected through modifiers, order, etc.
func (_m *Investigation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTrainingSignals queries the "training_signals" edge of the Investigation entity.
func (_m *Investigation) QueryTrainingSignals() *TrainingSignalQuery {
	return NewInvestigationClient(_m.config).QueryTrainingSignals(_m)
}

// Update returns a builder for updating this Investigation.
// Note that you need to call Investigation.Unwrap() before calling this method if this Investigation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Investigation) Update() *InvestigationUpdateOne {
	return NewInvestigationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Investigation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Investigation) Unwrap() *Investigation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Investigation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Investigation) String() string {
	var builder strings.Builder
	builder.WriteString("Investigation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("dataset_id=")
	builder.WriteString(_m.DatasetID)
	builder.WriteString(", ")
	builder.WriteString("alert=")
	builder.WriteString(fmt.Sprintf("%v", _m.Alert))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("events=")
	builder.WriteString(fmt.Sprintf("%v", _m.Events))
	builder.WriteString(", ")
	if v := _m.RootCause; v != nil {
		builder.WriteString("root_cause=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("finding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Finding))
	builder.WriteString(", ")
	if v := _m.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Investigations is a parsable slice of Investigation.
type Investigations []*Investigation
