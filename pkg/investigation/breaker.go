package investigation

import (
	"fmt"
	"time"
)

// CircuitBreakerConfig holds the per-run safety caps.
type CircuitBreakerConfig struct {
	MaxTotalQueries         int           `yaml:"max_total_queries"`
	MaxQueriesPerHypothesis int           `yaml:"max_queries_per_hypothesis"`
	MaxRetriesPerHypothesis int           `yaml:"max_retries_per_hypothesis"`
	MaxConsecutiveFailures  int           `yaml:"max_consecutive_failures"`
	MaxDuration             time.Duration `yaml:"max_duration"`
}

// DefaultCircuitBreakerConfig returns the default safety caps.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxTotalQueries:         50,
		MaxQueriesPerHypothesis: 5,
		MaxRetriesPerHypothesis: 2,
		MaxConsecutiveFailures:  3,
		MaxDuration:             10 * time.Minute,
	}
}

// Breaker limit identifiers, carried by CircuitBreakerTripped.
const (
	LimitMaxDuration             = "max_duration_seconds"
	LimitMaxTotalQueries         = "max_total_queries"
	LimitMaxConsecutiveFailures  = "max_consecutive_failures"
	LimitMaxQueriesPerHypothesis = "max_queries_per_hypothesis"
	LimitMaxRetriesPerHypothesis = "max_retries_per_hypothesis"
	LimitDuplicateQueryStall     = "duplicate_query_stall"
)

// CircuitBreakerTripped is raised when a safety limit is exceeded.
// It is terminal for the run: the orchestrator logs investigation_failed
// and returns a partial Finding.
type CircuitBreakerTripped struct {
	Limit  string
	Detail string
}

func (e *CircuitBreakerTripped) Error() string {
	return fmt.Sprintf("circuit breaker tripped: %s (%s)", e.Limit, e.Detail)
}

// CircuitBreaker is a pure, stateless function over the event log.
// now is injectable for tests; nil means time.Now.
type CircuitBreaker struct {
	Config CircuitBreakerConfig
	Now    func() time.Time
}

// NewCircuitBreaker creates a breaker with the given caps.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{Config: cfg}
}

// Check runs all limit checks whose scope matches. hypothesisID may be
// empty for run-scoped checks only. Checks run in a fixed order so the
// tripped limit is deterministic: duration, total queries, consecutive
// failures, then the per-hypothesis caps and the duplicate stall.
func (b *CircuitBreaker) Check(state State, hypothesisID string) error {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}

	if started := state.StartedAt(); !started.IsZero() {
		if elapsed := now().Sub(started); elapsed >= b.Config.MaxDuration {
			return &CircuitBreakerTripped{
				Limit:  LimitMaxDuration,
				Detail: fmt.Sprintf("elapsed %s >= limit %s", elapsed.Round(time.Second), b.Config.MaxDuration),
			}
		}
	}

	if n := state.QueryCount(); n >= b.Config.MaxTotalQueries {
		return &CircuitBreakerTripped{
			Limit:  LimitMaxTotalQueries,
			Detail: fmt.Sprintf("%d queries >= limit %d", n, b.Config.MaxTotalQueries),
		}
	}

	if n := state.ConsecutiveFailures(); n >= b.Config.MaxConsecutiveFailures {
		return &CircuitBreakerTripped{
			Limit:  LimitMaxConsecutiveFailures,
			Detail: fmt.Sprintf("%d consecutive failures >= limit %d", n, b.Config.MaxConsecutiveFailures),
		}
	}

	if hypothesisID == "" {
		return nil
	}

	if n := state.HypothesisQueryCount(hypothesisID); n >= b.Config.MaxQueriesPerHypothesis {
		return &CircuitBreakerTripped{
			Limit:  LimitMaxQueriesPerHypothesis,
			Detail: fmt.Sprintf("hypothesis %s: %d queries >= limit %d", hypothesisID, n, b.Config.MaxQueriesPerHypothesis),
		}
	}

	if n := state.RetryCount(hypothesisID); n > b.Config.MaxRetriesPerHypothesis {
		return &CircuitBreakerTripped{
			Limit:  LimitMaxRetriesPerHypothesis,
			Detail: fmt.Sprintf("hypothesis %s: %d retries > limit %d", hypothesisID, n, b.Config.MaxRetriesPerHypothesis),
		}
	}

	// Duplicate stall: the last two submitted queries for this hypothesis
	// carry identical SQL. The worker's own short-circuit normally prevents
	// this from ever being observed; the breaker backstops it.
	if queries := state.AllQueries(hypothesisID); len(queries) >= 2 {
		if queries[len(queries)-1] == queries[len(queries)-2] {
			return &CircuitBreakerTripped{
				Limit:  LimitDuplicateQueryStall,
				Detail: fmt.Sprintf("hypothesis %s submitted the same query twice in a row", hypothesisID),
			}
		}
	}

	return nil
}
