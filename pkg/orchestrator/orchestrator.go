// Package orchestrator drives one root-cause investigation end to end:
// context gathering, hypothesis generation, parallel hypothesis workers,
// and fan-in synthesis, with the circuit breaker consulted before every
// worker step. The orchestrator is the sole writer of investigation
// events.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/datasleuth/sleuth/pkg/agent"
	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
)

// safetyStopRecommendation is the single recommendation attached to the
// partial Finding returned after a circuit-breaker stop.
const safetyStopRecommendation = "Investigation was stopped due to safety limits"

// Orchestrator runs investigations. Safe for concurrent Run calls: all
// per-run state lives on the stack and in the per-run state keeper.
type Orchestrator struct {
	cfg       Config
	agent     AgentClient
	source    datasource.Adapter
	gatherer  ContextGatherer
	breaker   *investigation.CircuitBreaker
	validator QualityValidator
	feedback  FeedbackEmitter
	handlers  *agent.StreamHandlers
	logger    *slog.Logger
}

// Options carries the optional collaborators of an Orchestrator.
type Options struct {
	Validator QualityValidator
	Feedback  FeedbackEmitter
	// Handlers receives streaming callbacks from every agent call.
	Handlers *agent.StreamHandlers
	// Breaker overrides the default circuit breaker.
	Breaker *investigation.CircuitBreaker
}

// New creates an orchestrator.
func New(cfg Config, agentClient AgentClient, source datasource.Adapter, gatherer ContextGatherer, opts Options, logger *slog.Logger) *Orchestrator {
	breaker := opts.Breaker
	if breaker == nil {
		breaker = investigation.NewCircuitBreaker(investigation.DefaultCircuitBreakerConfig())
	}
	return &Orchestrator{
		cfg:       cfg,
		agent:     agentClient,
		source:    source,
		gatherer:  gatherer,
		breaker:   breaker,
		validator: opts.Validator,
		feedback:  opts.Feedback,
		handlers:  opts.Handlers,
		logger:    logger,
	}
}

// Run executes one investigation. Terminal outcomes:
//   - schema discovery failure: error returned, no Finding;
//   - circuit breaker trip: partial Finding (status=failed), nil error;
//   - synthesis failure: error returned, no Finding;
//   - otherwise: the synthesized Finding.
//
// The returned Result always carries the final event-sourced state.
func (o *Orchestrator) Run(ctx context.Context, invID, tenantID string, alert models.AnomalyAlert) (Result, error) {
	logger := o.logger.With("investigation_id", invID, "dataset_id", alert.DatasetID)
	logger.Info("Investigation started", "anomaly_type", alert.AnomalyType)

	state := investigation.NewState(invID, tenantID, alert).
		Append(investigation.NewInvestigationStarted(alert.DatasetID, alert.AnomalyType))
	o.emitFeedback(ctx, state, "investigation_started", map[string]any{
		"anomaly": alert.Summary(),
	})

	// Context gathering. Schema failure is terminal and caller-visible.
	invCtx, err := o.gatherer.Gather(ctx, alert.DatasetID)
	if err != nil {
		state = state.Append(investigation.NewSchemaDiscoveryFailed(err.Error()))
		logger.Error("Schema discovery failed", "error", err)
		return Result{State: state}, err
	}
	state = state.WithContext(invCtx.Schema, invCtx.Lineage)
	state = state.Append(investigation.NewContextGathered(invCtx.Schema.TableCount(), invCtx.Lineage != nil))
	o.emitFeedback(ctx, state, "context_gathered", map[string]any{
		"tables_found": invCtx.Schema.TableCount(),
		"has_lineage":  invCtx.Lineage != nil,
	})

	// Hypothesis generation.
	hypotheses, err := o.agent.GenerateHypotheses(ctx, invID, alert, invCtx, o.cfg.MaxHypotheses, o.handlers)
	if err != nil {
		state = state.Append(investigation.NewInvestigationFailed(err.Error()))
		logger.Error("Hypothesis generation failed", "error", err)
		return Result{State: state}, err
	}
	for _, h := range hypotheses {
		state = state.Append(investigation.NewHypothesisGenerated(h))
	}
	logger.Info("Hypotheses generated", "count", len(hypotheses))

	// Parallel fan-out. The keeper is the single event writer from here
	// until the workers join.
	keeper := newStateKeeper(state)
	results := make([][]investigation.Evidence, len(hypotheses))
	var tripped *investigation.CircuitBreakerTripped

	g, workerCtx := errgroup.WithContext(ctx)
	for i, h := range hypotheses {
		g.Go(func() error {
			evidence, err := o.runWorker(workerCtx, keeper, h, logger)
			results[i] = evidence
			if err == nil {
				return nil
			}
			var trip *investigation.CircuitBreakerTripped
			if errors.As(err, &trip) {
				// Terminal: cancel the remaining workers.
				return err
			}
			// A worker fault drops its evidence but never kills the run.
			logger.Warn("Hypothesis worker failed", "hypothesis_id", h.ID, "error", err)
			results[i] = nil
			return nil
		})
	}
	waitErr := g.Wait()
	state = keeper.stop()
	if waitErr != nil && !errors.As(waitErr, &tripped) {
		// Only breaker trips propagate out of the group.
		return Result{State: state}, fmt.Errorf("unexpected worker error: %w", waitErr)
	}

	if tripped != nil {
		state = state.Append(investigation.NewInvestigationFailed(tripped.Error()))
		logger.Warn("Circuit breaker tripped", "limit", tripped.Limit, "detail", tripped.Detail)
		finding := &investigation.Finding{
			InvestigationID: invID,
			Status:          investigation.FindingFailed,
			Evidence:        []investigation.Evidence{},
			Recommendations: []string{safetyStopRecommendation},
			DurationSeconds: o.duration(state),
		}
		return Result{Finding: finding, State: state}, nil
	}

	var evidence []investigation.Evidence
	for _, list := range results {
		evidence = append(evidence, list...)
	}

	// Fan-in synthesis. Failure here is fatal: there is nothing to return.
	finding, err := o.agent.SynthesizeFindings(ctx, invID, alert, evidence, o.handlers)
	if err != nil {
		state = state.Append(investigation.NewInvestigationFailed(err.Error()))
		logger.Error("Synthesis failed", "error", err)
		return Result{State: state}, err
	}
	finding.DurationSeconds = o.duration(state)
	state = state.Append(investigation.NewSynthesisCompleted(finding.RootCause, finding.Confidence))

	if o.validator != nil {
		o.validator.ValidateSynthesis(ctx, tenantID, invID, finding, alert.Summary())
	}
	o.emitFeedback(ctx, state, "investigation_completed", map[string]any{
		"status":     string(finding.Status),
		"confidence": finding.Confidence,
	})

	logger.Info("Investigation completed",
		"status", finding.Status, "confidence", finding.Confidence,
		"evidence_count", len(evidence), "duration_seconds", finding.DurationSeconds)
	return Result{Finding: finding, State: state}, nil
}

// duration measures wall-clock seconds since the start event.
func (o *Orchestrator) duration(state investigation.State) float64 {
	started := state.StartedAt()
	if started.IsZero() {
		return 0
	}
	now := time.Now
	if o.breaker.Now != nil {
		now = o.breaker.Now
	}
	return now().Sub(started).Seconds()
}

// emitFeedback forwards an event to the feedback log, best-effort.
func (o *Orchestrator) emitFeedback(ctx context.Context, state investigation.State, eventType string, data map[string]any) {
	if o.feedback == nil {
		return
	}
	err := o.feedback.Emit(ctx, models.EmitFeedbackRequest{
		TenantID:        state.TenantID,
		EventType:       eventType,
		EventData:       data,
		InvestigationID: state.ID,
		DatasetID:       state.Alert.DatasetID,
		ActorType:       "system",
	})
	if err != nil {
		o.logger.Warn("Failed to emit feedback event",
			"investigation_id", state.ID, "event_type", eventType, "error", err)
	}
}
