package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackEvent holds the schema definition for the FeedbackEvent entity.
// An append-only log of investigation lifecycle events per tenant; rows
// are never updated or deleted by the application.
type FeedbackEvent struct {
	ent.Schema
}

// Fields of the FeedbackEvent.
func (FeedbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_event_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("investigation_started, context_gathered, investigation_completed, ..."),
		field.JSON("event_data", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("investigation_id").
			Optional().
			Immutable().
			Comment("Empty for dataset-level events"),
		field.String("dataset_id").
			Optional().
			Immutable(),
		field.String("actor_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("actor_type").
			Default("system").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the FeedbackEvent.
func (FeedbackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("investigation_id"),
		index.Fields("dataset_id"),
		index.Fields("event_type"),
	}
}
