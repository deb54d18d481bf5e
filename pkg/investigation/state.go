package investigation

import (
	"time"

	"github.com/datasleuth/sleuth/pkg/models"
)

// Status of an in-flight or finished investigation, derived from the
// event log (never stored).
type Status string

const (
	StatusStarted    Status = "started"
	StatusGathering  Status = "gathering_context"
	StatusActive     Status = "active"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusSchemaFail Status = "schema_discovery_failed"
)

// State is the event-sourced value object for one investigation run.
// All mutations return a new State with the event appended; all derived
// facts (retry counts, query counts, failure streaks) are computed from
// Events on demand. If two components disagree about a counter, the bug
// is in one of their computations, never in a stale field.
type State struct {
	ID       string
	TenantID string
	Alert    models.AnomalyAlert

	// Events is strictly append-only and totally ordered by append.
	Events []Event

	// Cached immutable results, written at most once per investigation.
	Schema  SchemaContext
	Lineage *LineageContext
}

// NewState creates the initial state for an investigation: the alert and
// no events.
func NewState(id, tenantID string, alert models.AnomalyAlert) State {
	return State{ID: id, TenantID: tenantID, Alert: alert}
}

// Append returns a new State with the event appended. The receiver is
// unchanged; the events slice is copied-on-append so older snapshots
// never observe later writes.
func (s State) Append(e Event) State {
	events := make([]Event, len(s.Events), len(s.Events)+1)
	copy(events, s.Events)
	s.Events = append(events, e)
	return s
}

// WithContext returns a new State carrying the gathered schema and
// optional lineage. Schema is set at most once per investigation.
func (s State) WithContext(schema SchemaContext, lineage *LineageContext) State {
	s.Schema = schema
	s.Lineage = lineage
	return s
}

// Context returns the gathered investigation context.
func (s State) Context() Context {
	return Context{Schema: s.Schema, Lineage: s.Lineage}
}

// Status derives the run status from the event log.
func (s State) Status() Status {
	for i := len(s.Events) - 1; i >= 0; i-- {
		switch s.Events[i].Type {
		case EventSynthesisCompleted:
			return StatusCompleted
		case EventInvestigationFailed:
			return StatusFailed
		case EventSchemaDiscoveryFailed:
			return StatusSchemaFail
		case EventContextGathered:
			return StatusActive
		case EventInvestigationStarted:
			return StatusStarted
		}
	}
	return StatusStarted
}

// StartedAt returns the timestamp of the investigation_started event,
// or the zero time when the run has not started.
func (s State) StartedAt() time.Time {
	for _, e := range s.Events {
		if e.Type == EventInvestigationStarted {
			return e.Timestamp
		}
	}
	return time.Time{}
}

// RetryCount returns the number of reflexion attempts for a hypothesis.
func (s State) RetryCount(hypothesisID string) int {
	n := 0
	for _, e := range s.Events {
		if e.Type == EventReflexionAttempted && e.HypothesisID() == hypothesisID {
			n++
		}
	}
	return n
}

// QueryCount returns the total number of submitted queries in the run.
func (s State) QueryCount() int {
	n := 0
	for _, e := range s.Events {
		if e.Type == EventQuerySubmitted {
			n++
		}
	}
	return n
}

// HypothesisQueryCount returns the number of submitted queries for one
// hypothesis.
func (s State) HypothesisQueryCount(hypothesisID string) int {
	n := 0
	for _, e := range s.Events {
		if e.Type == EventQuerySubmitted && e.HypothesisID() == hypothesisID {
			n++
		}
	}
	return n
}

// AllQueries returns the SQL of every submitted query for a hypothesis,
// in submission order. Used for duplicate detection.
func (s State) AllQueries(hypothesisID string) []string {
	var queries []string
	for _, e := range s.Events {
		if e.Type == EventQuerySubmitted && e.HypothesisID() == hypothesisID {
			queries = append(queries, e.Query())
		}
	}
	return queries
}

// FailedQueries returns the SQL of every failed query for a hypothesis,
// in failure order. Used to build the reflexion prompt.
func (s State) FailedQueries(hypothesisID string) []string {
	var queries []string
	for _, e := range s.Events {
		if e.Type == EventQueryFailed && e.HypothesisID() == hypothesisID {
			queries = append(queries, e.Query())
		}
	}
	return queries
}

// LastFailure returns the most recent failed query and its error text
// for a hypothesis. ok is false when the hypothesis has no failures.
func (s State) LastFailure(hypothesisID string) (query, errMsg string, ok bool) {
	for i := len(s.Events) - 1; i >= 0; i-- {
		e := s.Events[i]
		if e.Type == EventQueryFailed && e.HypothesisID() == hypothesisID {
			return e.Query(), e.ErrorMessage(), true
		}
	}
	return "", "", false
}

// ConsecutiveFailures counts query_failed events from the tail of the
// log until a query_succeeded is seen. Submission events do not break
// the streak — they are bookkeeping, not outcomes.
func (s State) ConsecutiveFailures() int {
	n := 0
	for i := len(s.Events) - 1; i >= 0; i-- {
		switch s.Events[i].Type {
		case EventQueryFailed:
			n++
		case EventQuerySucceeded:
			return n
		}
	}
	return n
}

// HypothesisIDs returns the IDs of all generated hypotheses, in
// generation order.
func (s State) HypothesisIDs() []string {
	var ids []string
	for _, e := range s.Events {
		if e.Type == EventHypothesisGenerated {
			ids = append(ids, e.HypothesisID())
		}
	}
	return ids
}
