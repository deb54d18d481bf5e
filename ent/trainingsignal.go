// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/ent/trainingsignal"
)

// TrainingSignal is the model entity for the TrainingSignal schema.
type TrainingSignal struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// InvestigationID holds the value of the "investigation_id" field.
	InvestigationID string `json:"investigation_id,omitempty"`
	// Set for interpretation signals, null for synthesis
	HypothesisID *string `json:"hypothesis_id,omitempty"`
	// SignalType holds the value of the "signal_type" field.
	SignalType trainingsignal.SignalType `json:"signal_type,omitempty"`
	// CausalDepth holds the value of the "causal_depth" field.
	CausalDepth float64 `json:"causal_depth,omitempty"`
	// Specificity holds the value of the "specificity" field.
	Specificity float64 `json:"specificity,omitempty"`
	// Actionability holds the value of the "actionability" field.
	Actionability float64 `json:"actionability,omitempty"`
	// Weighted composite after adjustments
	CompositeScore float64 `json:"composite_score,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// LowestDimension holds the value of the "lowest_dimension" field.
	LowestDimension string `json:"lowest_dimension,omitempty"`
	// ImprovementSuggestion holds the value of the "improvement_suggestion" field.
	ImprovementSuggestion *string `json:"improvement_suggestion,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrainingSignalQuery when eager-loading is set.
	Edges        TrainingSignalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TrainingSignalEdges holds the relations/edges for other nodes in the graph.
type TrainingSignalEdges struct {
	// Investigation holds the value of the investigation edge.
	Investigation *Investigation `json:"investigation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InvestigationOrErr returns the Investigation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrainingSignalEdges) InvestigationOrErr() (*Investigation, error) {
	if e.Investigation != nil {
		return e.Investigation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: investigation.Label}
	}
	return nil, &NotLoadedError{edge: "investigation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrainingSignal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trainingsignal.FieldPassed:
			values[i] = new(sql.NullBool)
		case trainingsignal.FieldCausalDepth, trainingsignal.FieldSpecificity, trainingsignal.FieldActionability, trainingsignal.FieldCompositeScore:
			values[i] = new(sql.NullFloat64)
		case trainingsignal.FieldID, trainingsignal.FieldTenantID, trainingsignal.FieldInvestigationID, trainingsignal.FieldHypothesisID, trainingsignal.FieldSignalType, trainingsignal.FieldLowestDimension, trainingsignal.FieldImprovementSuggestion:
			values[i] = new(sql.NullString)
		case trainingsignal.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrainingSignal fields.
func (_m *TrainingSignal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trainingsignal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trainingsignal.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case trainingsignal.FieldInvestigationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field investigation_id", values[i])
			} else if value.Valid {
				_m.InvestigationID = value.String
			}
		case trainingsignal.FieldHypothesisID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hypothesis_id", values[i])
			} else if value.Valid {
				_m.HypothesisID = new(string)
				*_m.HypothesisID = value.String
			}
		case trainingsignal.FieldSignalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signal_type", values[i])
			} else if value.Valid {
				_m.SignalType = trainingsignal.SignalType(value.String)
			}
		case trainingsignal.FieldCausalDepth:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field causal_depth", values[i])
			} else if value.Valid {
				_m.CausalDepth = value.Float64
			}
		case trainingsignal.FieldSpecificity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field specificity", values[i])
			} else if value.Valid {
				_m.Specificity = value.Float64
			}
		case trainingsignal.FieldActionability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field actionability", values[i])
			} else if value.Valid {
				_m.Actionability = value.Float64
			}
		case trainingsignal.FieldCompositeScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field composite_score", values[i])
			} else if value.Valid {
				_m.CompositeScore = value.Float64
			}
		case trainingsignal.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case trainingsignal.FieldLowestDimension:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lowest_dimension", values[i])
			} else if value.Valid {
				_m.LowestDimension = value.String
			}
		case trainingsignal.FieldImprovementSuggestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field improvement_suggestion", values[i])
			} else if value.Valid {
				_m.ImprovementSuggestion = new(string)
				*_m.ImprovementSuggestion = value.String
			}
		case trainingsignal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrainingSignal.
// This includes values selected through modifiers, order, etc.
func (_m *TrainingSignal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvestigation queries the "investigation" edge of the TrainingSignal entity.
func (_m *TrainingSignal) QueryInvestigation() *InvestigationQuery {
	return NewTrainingSignalClient(_m.config).QueryInvestigation(_m)
}

// Update returns a builder for updating this TrainingSignal.
// Note that you need to call TrainingSignal.Unwrap() before calling this method if this TrainingSignal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrainingSignal) Update() *TrainingSignalUpdateOne {
	return NewTrainingSignalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrainingSignal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrainingSignal) Unwrap() *TrainingSignal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrainingSignal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrainingSignal) String() string {
	var builder strings.Builder
	builder.WriteString("TrainingSignal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("investigation_id=")
	builder.WriteString(_m.InvestigationID)
	builder.WriteString(", ")
	if v := _m.HypothesisID; v != nil {
		builder.WriteString("hypothesis_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("signal_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalType))
	builder.WriteString(", ")
	builder.WriteString("causal_depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.CausalDepth))
	builder.WriteString(", ")
	builder.WriteString("specificity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Specificity))
	builder.WriteString(", ")
	builder.WriteString("actionability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Actionability))
	builder.WriteString(", ")
	builder.WriteString("composite_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompositeScore))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("lowest_dimension=")
	builder.WriteString(_m.LowestDimension)
	builder.WriteString(", ")
	if v := _m.ImprovementSuggestion; v != nil {
		builder.WriteString("improvement_suggestion=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrainingSignals is a parsable slice of TrainingSignal.
type TrainingSignals []*TrainingSignal
