// Package investigation holds the event-sourced state of a single
// root-cause investigation: the append-only event log, the value types
// produced along the way (Hypothesis, Evidence, Finding), and the
// circuit breaker that reads the log.
package investigation

import "time"

// EventType is the closed set of investigation event types. Every other
// component switches on these; do not add types without updating the
// derived queries in state.go.
type EventType string

const (
	EventInvestigationStarted  EventType = "investigation_started"
	EventContextGathered       EventType = "context_gathered"
	EventSchemaDiscoveryFailed EventType = "schema_discovery_failed"
	EventHypothesisGenerated   EventType = "hypothesis_generated"
	EventQuerySubmitted        EventType = "query_submitted"
	EventQuerySucceeded        EventType = "query_succeeded"
	EventQueryFailed           EventType = "query_failed"
	EventReflexionAttempted    EventType = "reflexion_attempted"
	EventHypothesisConfirmed   EventType = "hypothesis_confirmed"
	EventHypothesisRejected    EventType = "hypothesis_rejected"
	EventSynthesisCompleted    EventType = "synthesis_completed"
	EventInvestigationFailed   EventType = "investigation_failed"
)

// Event is one entry in the investigation event log. Events are
// append-only: once in the log they are never modified or removed.
// Ordering is the append order; timestamps are informational.
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// Payload keys used by the derived queries. Constructors below guarantee
// the keys each event type is required to carry.
const (
	keyHypothesisID = "hypothesis_id"
	keyQuery        = "query"
	keyError        = "error"
	keyRetryNumber  = "retry_number"
	keyRowCount     = "row_count"
	keyTitle        = "title"
	keyCategory     = "category"
	keyRootCause    = "root_cause"
	keyConfidence   = "confidence"
	keyTablesFound  = "tables_found"
	keyHasLineage   = "has_lineage"
)

func newEvent(t EventType, data map[string]any) Event {
	return Event{Type: t, Timestamp: time.Now().UTC(), Data: data}
}

// NewInvestigationStarted builds the initial event of every run.
func NewInvestigationStarted(datasetID, anomalyType string) Event {
	return newEvent(EventInvestigationStarted, map[string]any{
		"dataset_id":   datasetID,
		"anomaly_type": anomalyType,
	})
}

// NewContextGathered records successful schema (and optional lineage) discovery.
func NewContextGathered(tablesFound int, hasLineage bool) Event {
	return newEvent(EventContextGathered, map[string]any{
		keyTablesFound: tablesFound,
		keyHasLineage:  hasLineage,
	})
}

// NewSchemaDiscoveryFailed records a terminal schema discovery failure.
func NewSchemaDiscoveryFailed(errMsg string) Event {
	return newEvent(EventSchemaDiscoveryFailed, map[string]any{keyError: errMsg})
}

// NewHypothesisGenerated records one generated hypothesis.
func NewHypothesisGenerated(h Hypothesis) Event {
	return newEvent(EventHypothesisGenerated, map[string]any{
		keyHypothesisID: h.ID,
		keyTitle:        h.Title,
		keyCategory:     string(h.Category),
	})
}

// NewQuerySubmitted records SQL about to be sent to the warehouse adapter.
func NewQuerySubmitted(hypothesisID, query string) Event {
	return newEvent(EventQuerySubmitted, map[string]any{
		keyHypothesisID: hypothesisID,
		keyQuery:        query,
	})
}

// NewQuerySucceeded records a successful warehouse query.
func NewQuerySucceeded(hypothesisID string, rowCount int) Event {
	return newEvent(EventQuerySucceeded, map[string]any{
		keyHypothesisID: hypothesisID,
		keyRowCount:     rowCount,
	})
}

// NewQueryFailed records a failed warehouse query, including the SQL so
// the reflexion prompt can quote it.
func NewQueryFailed(hypothesisID, query, errMsg string) Event {
	return newEvent(EventQueryFailed, map[string]any{
		keyHypothesisID: hypothesisID,
		keyQuery:        query,
		keyError:        errMsg,
	})
}

// NewReflexionAttempted records one retry of a failed query.
func NewReflexionAttempted(hypothesisID string, retryNumber int) Event {
	return newEvent(EventReflexionAttempted, map[string]any{
		keyHypothesisID: hypothesisID,
		keyRetryNumber:  retryNumber,
	})
}

// NewHypothesisConfirmed records a hypothesis supported with high confidence.
func NewHypothesisConfirmed(hypothesisID string, confidence float64) Event {
	return newEvent(EventHypothesisConfirmed, map[string]any{
		keyHypothesisID: hypothesisID,
		keyConfidence:   confidence,
	})
}

// NewHypothesisRejected records a hypothesis refuted with high confidence.
func NewHypothesisRejected(hypothesisID string, confidence float64) Event {
	return newEvent(EventHypothesisRejected, map[string]any{
		keyHypothesisID: hypothesisID,
		keyConfidence:   confidence,
	})
}

// NewSynthesisCompleted records the fan-in synthesis result.
// rootCause is nil for inconclusive findings.
func NewSynthesisCompleted(rootCause *string, confidence float64) Event {
	var rc any
	if rootCause != nil {
		rc = *rootCause
	}
	return newEvent(EventSynthesisCompleted, map[string]any{
		keyRootCause:  rc,
		keyConfidence: confidence,
	})
}

// NewInvestigationFailed records a terminal failure (circuit breaker or
// unhandled fault).
func NewInvestigationFailed(errMsg string) Event {
	return newEvent(EventInvestigationFailed, map[string]any{keyError: errMsg})
}

// HypothesisID returns the hypothesis_id payload key, or "" when absent.
func (e Event) HypothesisID() string {
	s, _ := e.Data[keyHypothesisID].(string)
	return s
}

// Query returns the query payload key, or "" when absent.
func (e Event) Query() string {
	s, _ := e.Data[keyQuery].(string)
	return s
}

// ErrorMessage returns the error payload key, or "" when absent.
func (e Event) ErrorMessage() string {
	s, _ := e.Data[keyError].(string)
	return s
}
