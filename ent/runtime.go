// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/datasleuth/sleuth/ent/feedbackevent"
	"github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/ent/schema"
	"github.com/datasleuth/sleuth/ent/trainingsignal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	feedbackeventFields := schema.FeedbackEvent{}.Fields()
	_ = feedbackeventFields
	// feedbackeventDescActorType is the schema descriptor for actor_type field.
	feedbackeventDescActorType := feedbackeventFields[7].Descriptor()
	// feedbackevent.DefaultActorType holds the default value on creation for the actor_type field.
	feedbackevent.DefaultActorType = feedbackeventDescActorType.Default.(string)
	// feedbackeventDescCreatedAt is the schema descriptor for created_at field.
	feedbackeventDescCreatedAt := feedbackeventFields[8].Descriptor()
	// feedbackevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedbackevent.DefaultCreatedAt = feedbackeventDescCreatedAt.Default.(func() time.Time)
	investigationFields := schema.Investigation{}.Fields()
	_ = investigationFields
	// investigationDescCreatedAt is the schema descriptor for created_at field.
	investigationDescCreatedAt := investigationFields[12].Descriptor()
	// investigation.DefaultCreatedAt holds the default value on creation for the created_at field.
	investigation.DefaultCreatedAt = investigationDescCreatedAt.Default.(func() time.Time)
	trainingsignalFields := schema.TrainingSignal{}.Fields()
	_ = trainingsignalFields
	// trainingsignalDescCreatedAt is the schema descriptor for created_at field.
	trainingsignalDescCreatedAt := trainingsignalFields[12].Descriptor()
	// trainingsignal.DefaultCreatedAt holds the default value on creation for the created_at field.
	trainingsignal.DefaultCreatedAt = trainingsignalDescCreatedAt.Default.(func() time.Time)
}
