package investigation

import "time"

// HypothesisCategory classifies a candidate root cause.
type HypothesisCategory string

const (
	CategoryUpstreamDependency HypothesisCategory = "upstream_dependency"
	CategoryTransformationBug  HypothesisCategory = "transformation_bug"
	CategoryDataQuality        HypothesisCategory = "data_quality"
	CategoryInfrastructure     HypothesisCategory = "infrastructure"
	CategoryExpectedVariance   HypothesisCategory = "expected_variance"
)

// Categories lists all hypothesis categories, in prompt order.
var Categories = []HypothesisCategory{
	CategoryUpstreamDependency,
	CategoryTransformationBug,
	CategoryDataQuality,
	CategoryInfrastructure,
	CategoryExpectedVariance,
}

// Hypothesis is a potential cause of the anomaly, with a testability
// contract: ExpectedIfTrue and ExpectedIfFalse are mutually exclusive
// statements of what a query result would show. Immutable.
type Hypothesis struct {
	ID              string             `json:"id" validate:"required"`
	Title           string             `json:"title" validate:"required,min=10,max=200"`
	Category        HypothesisCategory `json:"category" validate:"required,oneof=upstream_dependency transformation_bug data_quality infrastructure expected_variance"`
	Reasoning       string             `json:"reasoning" validate:"required,min=20"`
	SuggestedQuery  string             `json:"suggested_query" validate:"required"`
	ExpectedIfTrue  string             `json:"expected_if_true" validate:"required"`
	ExpectedIfFalse string             `json:"expected_if_false" validate:"required"`
}

// Evidence is one tested fact: the interpretation of a single query
// result relative to a single hypothesis. Supports is tri-valued —
// nil means the result neither confirms nor refutes. Immutable.
type Evidence struct {
	HypothesisID   string  `json:"hypothesis_id"`
	Query          string  `json:"query"`
	ResultSummary  string  `json:"result_summary"`
	RowCount       int     `json:"row_count"`
	Supports       *bool   `json:"supports_hypothesis"`
	Confidence     float64 `json:"confidence" validate:"gte=0,lte=1"`
	Interpretation string  `json:"interpretation" validate:"required"`

	// Structured subfields, populated when the interpretation identified them.
	CausalChain             string    `json:"causal_chain,omitempty"`
	TriggerIdentified       string    `json:"trigger_identified,omitempty"`
	DifferentiatingEvidence string    `json:"differentiating_evidence,omitempty"`
	KeyFindings             []string  `json:"key_findings,omitempty"`
	NextInvestigationStep   string    `json:"next_investigation_step,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
}

// FindingStatus is the terminal status of an investigation's output.
type FindingStatus string

const (
	FindingCompleted    FindingStatus = "completed"
	FindingInconclusive FindingStatus = "inconclusive"
	FindingFailed       FindingStatus = "failed"
)

// Finding is the terminal output of an investigation.
// Status is "completed" iff RootCause is non-nil. Immutable.
type Finding struct {
	InvestigationID string        `json:"investigation_id"`
	Status          FindingStatus `json:"status"`
	RootCause       *string       `json:"root_cause"`
	Confidence      float64       `json:"confidence"`
	Evidence        []Evidence    `json:"evidence"`
	Recommendations []string      `json:"recommendations"`
	DurationSeconds float64       `json:"duration_seconds"`

	// Synthesis extras.
	CausalChain    []string `json:"causal_chain,omitempty"`
	EstimatedOnset string   `json:"estimated_onset,omitempty"`
	AffectedScope  string   `json:"affected_scope,omitempty"`
}

// SchemaContext is the orchestrator-side view of discovered warehouse
// metadata. Implemented by datasource.SchemaResponse; defined here as an
// interface so this package stays free of adapter imports.
type SchemaContext interface {
	TableCount() int
	IsEmpty() bool
	ToPromptString() string
}

// LineageContext holds upstream/downstream qualified dataset names,
// gathered at depth 1. Nil when no lineage adapter is configured or
// lineage discovery failed.
type LineageContext struct {
	Upstream   []string `json:"upstream"`
	Downstream []string `json:"downstream"`
}

// Context is the investigation context consumed by the agent prompts:
// the discovered schema plus optional lineage.
type Context struct {
	Schema  SchemaContext
	Lineage *LineageContext
}
