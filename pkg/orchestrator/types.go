package orchestrator

import (
	"context"
	"time"

	"github.com/datasleuth/sleuth/pkg/agent"
	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
	"github.com/datasleuth/sleuth/pkg/validator"
)

// Config tunes one orchestrator run. Projected from the YAML config.
type Config struct {
	MaxHypotheses           int           `yaml:"max_hypotheses"`
	MaxQueriesPerHypothesis int           `yaml:"max_queries_per_hypothesis"`
	MaxRetriesPerHypothesis int           `yaml:"max_retries_per_hypothesis"`
	QueryTimeout            time.Duration `yaml:"query_timeout"`
	HighConfidenceThreshold float64       `yaml:"high_confidence_threshold"`
}

// DefaultConfig returns the orchestrator defaults.
func DefaultConfig() Config {
	return Config{
		MaxHypotheses:           5,
		MaxQueriesPerHypothesis: 3,
		MaxRetriesPerHypothesis: 2,
		QueryTimeout:            30 * time.Second,
		HighConfidenceThreshold: 0.85,
	}
}

// AgentClient is the agent surface the orchestrator consumes.
// Implemented by *agent.Client; faked in tests.
type AgentClient interface {
	GenerateHypotheses(ctx context.Context, invID string, alert models.AnomalyAlert, invCtx investigation.Context, n int, handlers *agent.StreamHandlers) ([]investigation.Hypothesis, error)
	GenerateQuery(ctx context.Context, invID string, h investigation.Hypothesis, schema investigation.SchemaContext, previous *agent.QueryFailure, handlers *agent.StreamHandlers) (string, error)
	InterpretEvidence(ctx context.Context, invID string, h investigation.Hypothesis, sql string, result *datasource.QueryResult, handlers *agent.StreamHandlers) investigation.Evidence
	SynthesizeFindings(ctx context.Context, invID string, alert models.AnomalyAlert, evidence []investigation.Evidence, handlers *agent.StreamHandlers) (*investigation.Finding, error)
}

// ContextGatherer is the context engine surface the orchestrator consumes.
type ContextGatherer interface {
	Gather(ctx context.Context, datasetID string) (investigation.Context, error)
}

// QualityValidator is the validation surface. Its results never affect
// the run; nil disables validation.
type QualityValidator interface {
	ValidateInterpretation(ctx context.Context, tenantID, invID string, ev investigation.Evidence, hypothesisTitle, sql string) *validator.QualityAssessment
	ValidateSynthesis(ctx context.Context, tenantID, invID string, finding *investigation.Finding, alertSummary string) *validator.QualityAssessment
}

// FeedbackEmitter appends to the tenant feedback log, best-effort.
// Implemented by *feedback.Emitter; nil disables feedback.
type FeedbackEmitter interface {
	Emit(ctx context.Context, req models.EmitFeedbackRequest) error
}

// Result is the outcome of one orchestrator run: the Finding (nil when
// the run terminated without one) and the final event-sourced state for
// persistence.
type Result struct {
	Finding *investigation.Finding
	State   investigation.State
}
