package orchestrator

import (
	"context"
	"log/slog"
	"slices"

	"github.com/datasleuth/sleuth/pkg/agent"
	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/safety"
)

// runWorker drives the sequential query loop for one hypothesis:
// breaker check, query generation (reflexion on retries), duplicate
// short-circuit, preflight, execution, interpretation. The snapshot
// check before query generation is an early exit that saves an LLM
// call; the authoritative check runs atomically with the
// query_submitted append inside the keeper, so concurrent workers
// cannot overshoot the query budgets between check and append. Returns
// the evidence gathered so far plus a *CircuitBreakerTripped when the
// breaker fired; any other error is a worker fault the orchestrator
// logs and drops.
func (o *Orchestrator) runWorker(ctx context.Context, keeper *stateKeeper, h investigation.Hypothesis, logger *slog.Logger) ([]investigation.Evidence, error) {
	var evidence []investigation.Evidence
	retrying := false

	for iteration := 0; iteration < o.cfg.MaxQueriesPerHypothesis; iteration++ {
		state := keeper.snapshot()
		if err := o.breaker.Check(state, h.ID); err != nil {
			return evidence, err
		}

		var previous *agent.QueryFailure
		if retrying {
			if sql, errMsg, ok := state.LastFailure(h.ID); ok {
				previous = &agent.QueryFailure{SQL: sql, Error: errMsg}
			}
		}

		sql, err := o.agent.GenerateQuery(ctx, state.ID, h, state.Schema, previous, o.handlers)
		if err != nil {
			return evidence, err
		}

		// Duplicate short-circuit: the model has looped back to a query
		// it already tried, so further iterations would not progress.
		if slices.Contains(state.AllQueries(h.ID), sql) {
			logger.Info("Duplicate query, stopping worker", "hypothesis_id", h.ID)
			return evidence, nil
		}

		state, err = keeper.checkAndAppend(investigation.NewQuerySubmitted(h.ID, sql), func(s investigation.State) error {
			return o.breaker.Check(s, h.ID)
		})
		if err != nil {
			return evidence, err
		}

		result, execErr := o.executeQuery(ctx, sql)
		if execErr == nil {
			keeper.append(investigation.NewQuerySucceeded(h.ID, result.RowCount))

			ev := o.agent.InterpretEvidence(ctx, state.ID, h, sql, result, o.handlers)
			if o.validator != nil {
				o.validator.ValidateInterpretation(ctx, state.TenantID, state.ID, ev, h.Title, sql)
			}
			evidence = append(evidence, ev)
			retrying = false

			if ev.Confidence > o.cfg.HighConfidenceThreshold {
				if ev.Supports != nil {
					if *ev.Supports {
						keeper.append(investigation.NewHypothesisConfirmed(h.ID, ev.Confidence))
					} else {
						keeper.append(investigation.NewHypothesisRejected(h.ID, ev.Confidence))
					}
				}
				logger.Info("High-confidence evidence, stopping worker",
					"hypothesis_id", h.ID, "confidence", ev.Confidence)
				return evidence, nil
			}
			continue
		}

		state = keeper.append(investigation.NewQueryFailed(h.ID, sql, execErr.Error()))
		logger.Warn("Query failed", "hypothesis_id", h.ID, "error", execErr)

		if state.RetryCount(h.ID) >= o.cfg.MaxRetriesPerHypothesis {
			logger.Info("Retry budget exhausted, stopping worker", "hypothesis_id", h.ID)
			return evidence, nil
		}
		keeper.append(investigation.NewReflexionAttempted(h.ID, state.RetryCount(h.ID)+1))
		retrying = true
	}
	return evidence, nil
}

// executeQuery runs the safety preflight and the adapter call. A
// preflight rejection is reported as a QUERY_REJECTED adapter error so
// it feeds the same reflexion loop as any other query failure.
func (o *Orchestrator) executeQuery(ctx context.Context, sql string) (*datasource.QueryResult, error) {
	safeSQL, err := safety.Preflight(sql)
	if err != nil {
		return nil, datasource.NewAdapterError(datasource.ErrQueryRejected, "query failed safety preflight", err)
	}
	return o.source.ExecuteQuery(ctx, safeSQL, datasource.QueryOptions{Timeout: o.cfg.QueryTimeout})
}
