package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrainingSignal holds the schema definition for the TrainingSignal
// entity. One row per LLM-as-judge assessment of an investigation
// artifact, kept for prompt-quality tracking and future fine-tuning.
type TrainingSignal struct {
	ent.Schema
}

// Fields of the TrainingSignal.
func (TrainingSignal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("signal_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("investigation_id").
			Immutable(),
		field.String("hypothesis_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Set for interpretation signals, null for synthesis"),
		field.Enum("signal_type").
			Values("interpretation", "synthesis"),
		field.Float("causal_depth"),
		field.Float("specificity"),
		field.Float("actionability"),
		field.Float("composite_score").
			Comment("Weighted composite after adjustments"),
		field.Bool("passed"),
		field.String("lowest_dimension").
			Optional(),
		field.Text("improvement_suggestion").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TrainingSignal.
func (TrainingSignal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("investigation", Investigation.Type).
			Ref("training_signals").
			Field("investigation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TrainingSignal.
func (TrainingSignal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("investigation_id"),
		index.Fields("signal_type"),
		index.Fields("passed"),
		index.Fields("tenant_id", "created_at"),
	}
}
