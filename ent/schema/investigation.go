package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Investigation holds the schema definition for the Investigation entity.
// One row per anomaly alert accepted for root-cause analysis.
type Investigation struct {
	ent.Schema
}

// Fields of the Investigation.
func (Investigation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("investigation_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("dataset_id").
			Comment("Dataset the anomaly was raised on"),
		field.JSON("alert", map[string]interface{}{}).
			Comment("Original anomaly alert payload"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "inconclusive", "failed", "schema_discovery_failed").
			Default("pending"),
		field.JSON("events", []map[string]interface{}{}).
			Optional().
			Comment("Append-only event log, written once at completion"),
		field.Text("root_cause").
			Optional().
			Nillable(),
		field.Float("confidence").
			Optional().
			Nillable(),
		field.JSON("finding", map[string]interface{}{}).
			Optional().
			Comment("Full synthesized finding"),
		field.Float("duration_seconds").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the alert was accepted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the investigation"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Investigation.
func (Investigation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("training_signals", TrainingSignal.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Investigation.
func (Investigation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("tenant_id"),
		index.Fields("dataset_id"),

		// Claim loop: oldest pending first.
		index.Fields("status", "created_at"),
		// Orphan recovery: in_progress rows per pod.
		index.Fields("status", "pod_id"),
	}
}
