package models

import "time"

// CreateInvestigationRequest contains fields for enqueuing a new investigation.
type CreateInvestigationRequest struct {
	InvestigationID string       `json:"investigation_id"`
	TenantID        string       `json:"tenant_id"`
	Alert           AnomalyAlert `json:"alert"`
	DataSource      string       `json:"datasource,omitempty"`
}

// InvestigationFilters contains filtering options for listing investigations.
type InvestigationFilters struct {
	TenantID      string     `json:"tenant_id,omitempty"`
	Status        string     `json:"status,omitempty"`
	DatasetID     string     `json:"dataset_id,omitempty"`
	AnomalyType   string     `json:"anomaly_type,omitempty"`
	StartedAfter  *time.Time `json:"started_after,omitempty"`
	StartedBefore *time.Time `json:"started_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// CreateTrainingSignalRequest contains fields for recording a validator
// training signal.
type CreateTrainingSignalRequest struct {
	TenantID              string  `json:"tenant_id"`
	InvestigationID       string  `json:"investigation_id"`
	HypothesisID          *string `json:"hypothesis_id,omitempty"`
	SignalType            string  `json:"signal_type"` // "interpretation" or "synthesis"
	CausalDepth           float64 `json:"causal_depth"`
	Specificity           float64 `json:"specificity"`
	Actionability         float64 `json:"actionability"`
	CompositeScore        float64 `json:"composite_score"`
	Passed                bool    `json:"passed"`
	LowestDimension       string  `json:"lowest_dimension"`
	ImprovementSuggestion string  `json:"improvement_suggestion"`
}

// EmitFeedbackRequest contains fields for appending to the feedback log.
type EmitFeedbackRequest struct {
	TenantID        string         `json:"tenant_id"`
	EventType       string         `json:"event_type"`
	EventData       map[string]any `json:"event_data"`
	InvestigationID string         `json:"investigation_id,omitempty"`
	DatasetID       string         `json:"dataset_id,omitempty"`
	ActorID         string         `json:"actor_id,omitempty"`
	ActorType       string         `json:"actor_type,omitempty"`
}
