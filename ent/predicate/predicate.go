// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FeedbackEvent is the predicate function for feedbackevent builders.
type FeedbackEvent func(*sql.Selector)

// Investigation is the predicate function for investigation builders.
type Investigation func(*sql.Selector)

// TrainingSignal is the predicate function for trainingsignal builders.
type TrainingSignal func(*sql.Selector)
