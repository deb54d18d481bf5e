package investigation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireTripped(t *testing.T, err error, limit string) {
	t.Helper()
	var tripped *CircuitBreakerTripped
	require.ErrorAs(t, err, &tripped)
	assert.Equal(t, limit, tripped.Limit)
}

func TestCircuitBreaker_Defaults(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig()
	assert.Equal(t, 50, cfg.MaxTotalQueries)
	assert.Equal(t, 5, cfg.MaxQueriesPerHypothesis)
	assert.Equal(t, 2, cfg.MaxRetriesPerHypothesis)
	assert.Equal(t, 3, cfg.MaxConsecutiveFailures)
	assert.Equal(t, 10*time.Minute, cfg.MaxDuration)
}

func TestCircuitBreaker_CleanStatePasses(t *testing.T) {
	b := NewCircuitBreaker(DefaultCircuitBreakerConfig())
	s := NewState("inv", "t", testAlert()).
		Append(NewInvestigationStarted("sales.orders", "null_rate"))

	assert.NoError(t, b.Check(s, ""))
	assert.NoError(t, b.Check(s, "h1"))
}

func TestCircuitBreaker_MaxTotalQueries(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig()
	cfg.MaxTotalQueries = 2
	b := NewCircuitBreaker(cfg)

	s := NewState("inv", "t", testAlert()).
		Append(NewInvestigationStarted("sales.orders", "null_rate")).
		Append(NewQuerySubmitted("h1", "q1")).
		Append(NewQuerySucceeded("h1", 1)).
		Append(NewQuerySubmitted("h2", "q2")).
		Append(NewQuerySucceeded("h2", 1))

	requireTripped(t, b.Check(s, "h3"), LimitMaxTotalQueries)
}

func TestCircuitBreaker_MaxQueriesPerHypothesis(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig()
	cfg.MaxQueriesPerHypothesis = 2
	b := NewCircuitBreaker(cfg)

	s := NewState("inv", "t", testAlert()).
		Append(NewInvestigationStarted("sales.orders", "null_rate")).
		Append(NewQuerySubmitted("h1", "q1")).
		Append(NewQuerySucceeded("h1", 1)).
		Append(NewQuerySubmitted("h1", "q2")).
		Append(NewQuerySucceeded("h1", 1))

	requireTripped(t, b.Check(s, "h1"), LimitMaxQueriesPerHypothesis)
	// Other hypotheses are unaffected.
	assert.NoError(t, b.Check(s, "h2"))
}

func TestCircuitBreaker_RetriesTripOnlyBeyondCap(t *testing.T) {
	// The worker legitimately runs its final attempt with the retry count
	// at exactly the cap; the breaker trips only past it.
	cfg := DefaultCircuitBreakerConfig()
	cfg.MaxRetriesPerHypothesis = 2
	b := NewCircuitBreaker(cfg)

	s := NewState("inv", "t", testAlert()).
		Append(NewInvestigationStarted("sales.orders", "null_rate")).
		Append(NewReflexionAttempted("h1", 1)).
		Append(NewReflexionAttempted("h1", 2))

	assert.NoError(t, b.Check(s, "h1"))

	s = s.Append(NewReflexionAttempted("h1", 3))
	requireTripped(t, b.Check(s, "h1"), LimitMaxRetriesPerHypothesis)
}

func TestCircuitBreaker_MaxConsecutiveFailures(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig()
	cfg.MaxConsecutiveFailures = 3
	b := NewCircuitBreaker(cfg)

	s := NewState("inv", "t", testAlert()).
		Append(NewInvestigationStarted("sales.orders", "null_rate")).
		Append(NewQueryFailed("h1", "q1", "e")).
		Append(NewQueryFailed("h2", "q2", "e")).
		Append(NewQueryFailed("h3", "q3", "e"))

	// Run-scoped: trips even with no hypothesis ID.
	requireTripped(t, b.Check(s, ""), LimitMaxConsecutiveFailures)
}

func TestCircuitBreaker_MaxDuration(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig()
	cfg.MaxDuration = time.Minute
	b := NewCircuitBreaker(cfg)

	s := NewState("inv", "t", testAlert()).
		Append(NewInvestigationStarted("sales.orders", "null_rate"))
	started := s.StartedAt()

	b.Now = func() time.Time { return started.Add(30 * time.Second) }
	assert.NoError(t, b.Check(s, ""))

	b.Now = func() time.Time { return started.Add(2 * time.Minute) }
	requireTripped(t, b.Check(s, ""), LimitMaxDuration)
}

func TestCircuitBreaker_DuplicateQueryStall(t *testing.T) {
	b := NewCircuitBreaker(DefaultCircuitBreakerConfig())

	s := NewState("inv", "t", testAlert()).
		Append(NewInvestigationStarted("sales.orders", "null_rate")).
		Append(NewQuerySubmitted("h1", "SELECT * FROM sales.orders LIMIT 100")).
		Append(NewQueryFailed("h1", "SELECT * FROM sales.orders LIMIT 100", "e")).
		Append(NewQuerySubmitted("h1", "SELECT * FROM sales.orders LIMIT 100"))

	requireTripped(t, b.Check(s, "h1"), LimitDuplicateQueryStall)

	// Comparison is exact string equality: a whitespace difference is a
	// different query.
	s2 := NewState("inv", "t", testAlert()).
		Append(NewInvestigationStarted("sales.orders", "null_rate")).
		Append(NewQuerySubmitted("h1", "SELECT * FROM sales.orders LIMIT 100")).
		Append(NewQuerySubmitted("h1", "SELECT *  FROM sales.orders LIMIT 100"))
	assert.NoError(t, b.Check(s2, "h1"))
}

func TestCircuitBreakerTripped_ErrorMessage(t *testing.T) {
	err := &CircuitBreakerTripped{Limit: LimitMaxTotalQueries, Detail: "50 queries >= limit 50"}
	assert.Contains(t, err.Error(), "max_total_queries")

	var target *CircuitBreakerTripped
	assert.True(t, errors.As(err, &target))
}
