// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FeedbackEventsColumns holds the columns for the "feedback_events" table.
	FeedbackEventsColumns = []*schema.Column{
		{Name: "feedback_event_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "event_data", Type: field.TypeJSON, Nullable: true},
		{Name: "investigation_id", Type: field.TypeString, Nullable: true},
		{Name: "dataset_id", Type: field.TypeString, Nullable: true},
		{Name: "actor_id", Type: field.TypeString, Nullable: true},
		{Name: "actor_type", Type: field.TypeString, Default: "system"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FeedbackEventsTable holds the schema information for the "feedback_events" table.
	FeedbackEventsTable = &schema.Table{
		Name:       "feedback_events",
		Columns:    FeedbackEventsColumns,
		PrimaryKey: []*schema.Column{FeedbackEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedbackevent_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[1], FeedbackEventsColumns[8]},
			},
			{
				Name:    "feedbackevent_investigation_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[4]},
			},
			{
				Name:    "feedbackevent_dataset_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[5]},
			},
			{
				Name:    "feedbackevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[2]},
			},
		},
	}
	// InvestigationsColumns holds the columns for the "investigations" table.
	InvestigationsColumns = []*schema.Column{
		{Name: "investigation_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "dataset_id", Type: field.TypeString},
		{Name: "alert", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "inconclusive", "failed", "schema_discovery_failed"}, Default: "pending"},
		{Name: "events", Type: field.TypeJSON, Nullable: true},
		{Name: "root_cause", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "finding", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// InvestigationsTable holds the schema information for the "investigations" table.
	InvestigationsTable = &schema.Table{
		Name:       "investigations",
		Columns:    InvestigationsColumns,
		PrimaryKey: []*schema.Column{InvestigationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "investigation_status",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[4]},
			},
			{
				Name:    "investigation_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[1]},
			},
			{
				Name:    "investigation_dataset_id",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[2]},
			},
			{
				Name:    "investigation_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[4], InvestigationsColumns[12]},
			},
			{
				Name:    "investigation_status_pod_id",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[4], InvestigationsColumns[11]},
			},
		},
	}
	// TrainingSignalsColumns holds the columns for the "training_signals" table.
	TrainingSignalsColumns = []*schema.Column{
		{Name: "signal_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "hypothesis_id", Type: field.TypeString, Nullable: true},
		{Name: "signal_type", Type: field.TypeEnum, Enums: []string{"interpretation", "synthesis"}},
		{Name: "causal_depth", Type: field.TypeFloat64},
		{Name: "specificity", Type: field.TypeFloat64},
		{Name: "actionability", Type: field.TypeFloat64},
		{Name: "composite_score", Type: field.TypeFloat64},
		{Name: "passed", Type: field.TypeBool},
		{Name: "lowest_dimension", Type: field.TypeString, Nullable: true},
		{Name: "improvement_suggestion", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "investigation_id", Type: field.TypeString},
	}
	// TrainingSignalsTable holds the schema information for the "training_signals" table.
	TrainingSignalsTable = &schema.Table{
		Name:       "training_signals",
		Columns:    TrainingSignalsColumns,
		PrimaryKey: []*schema.Column{TrainingSignalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "training_signals_investigations_training_signals",
				Columns:    []*schema.Column{TrainingSignalsColumns[12]},
				RefColumns: []*schema.Column{InvestigationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trainingsignal_investigation_id",
				Unique:  false,
				Columns: []*schema.Column{TrainingSignalsColumns[12]},
			},
			{
				Name:    "trainingsignal_signal_type",
				Unique:  false,
				Columns: []*schema.Column{TrainingSignalsColumns[3]},
			},
			{
				Name:    "trainingsignal_passed",
				Unique:  false,
				Columns: []*schema.Column{TrainingSignalsColumns[8]},
			},
			{
				Name:    "trainingsignal_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TrainingSignalsColumns[1], TrainingSignalsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FeedbackEventsTable,
		InvestigationsTable,
		TrainingSignalsTable,
	}
)

func init() {
	TrainingSignalsTable.ForeignKeys[0].RefTable = InvestigationsTable
}
