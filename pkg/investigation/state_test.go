package investigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasleuth/sleuth/pkg/models"
)

func testAlert() models.AnomalyAlert {
	return models.AnomalyAlert{
		DatasetID:     "sales.orders",
		Metric:        models.MetricFromColumn("user_id"),
		AnomalyType:   "null_rate",
		ExpectedValue: 0.5,
		ActualValue:   12.3,
		DeviationPct:  2360,
		AnomalyDate:   "2024-01-15",
		Severity:      "high",
	}
}

func TestState_AppendIsCopyOnWrite(t *testing.T) {
	s0 := NewState("inv-1", "tenant-1", testAlert())
	s1 := s0.Append(NewInvestigationStarted("sales.orders", "null_rate"))
	s2 := s1.Append(NewQuerySubmitted("h1", "SELECT 1"))

	assert.Empty(t, s0.Events)
	assert.Len(t, s1.Events, 1)
	assert.Len(t, s2.Events, 2)

	// Appending to an older snapshot must not disturb newer ones.
	s1b := s1.Append(NewQueryFailed("h1", "SELECT 1", "boom"))
	require.Len(t, s1b.Events, 2)
	assert.Equal(t, EventQuerySubmitted, s2.Events[1].Type)
	assert.Equal(t, EventQueryFailed, s1b.Events[1].Type)
}

func TestState_DerivedCounters(t *testing.T) {
	s := NewState("inv-1", "tenant-1", testAlert()).
		Append(NewInvestigationStarted("sales.orders", "null_rate")).
		Append(NewQuerySubmitted("h1", "SELECT a")).
		Append(NewQueryFailed("h1", "SELECT a", "syntax error")).
		Append(NewReflexionAttempted("h1", 1)).
		Append(NewQuerySubmitted("h1", "SELECT b")).
		Append(NewQuerySucceeded("h1", 42)).
		Append(NewQuerySubmitted("h2", "SELECT c"))

	assert.Equal(t, 3, s.QueryCount())
	assert.Equal(t, 2, s.HypothesisQueryCount("h1"))
	assert.Equal(t, 1, s.HypothesisQueryCount("h2"))
	assert.Equal(t, 1, s.RetryCount("h1"))
	assert.Equal(t, 0, s.RetryCount("h2"))
	assert.Equal(t, []string{"SELECT a", "SELECT b"}, s.AllQueries("h1"))
	assert.Equal(t, []string{"SELECT a"}, s.FailedQueries("h1"))

	// Derivation is pure: reading twice gives the same answer and the
	// event log is untouched.
	assert.Equal(t, 3, s.QueryCount())
	assert.Len(t, s.Events, 7)
}

func TestState_ConsecutiveFailures(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   int
	}{
		{
			name: "no failures",
			events: []Event{
				NewQuerySubmitted("h1", "q1"),
				NewQuerySucceeded("h1", 1),
			},
			want: 0,
		},
		{
			name: "trailing failures across hypotheses",
			events: []Event{
				NewQuerySucceeded("h1", 1),
				NewQueryFailed("h1", "q2", "e"),
				NewQueryFailed("h2", "q3", "e"),
			},
			want: 2,
		},
		{
			name: "success resets streak",
			events: []Event{
				NewQueryFailed("h1", "q1", "e"),
				NewQueryFailed("h1", "q2", "e"),
				NewQuerySucceeded("h1", 5),
			},
			want: 0,
		},
		{
			name: "submissions do not break the streak",
			events: []Event{
				NewQueryFailed("h1", "q1", "e"),
				NewQuerySubmitted("h2", "q2"),
				NewQueryFailed("h2", "q2", "e"),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState("inv", "t", testAlert())
			for _, e := range tt.events {
				s = s.Append(e)
			}
			assert.Equal(t, tt.want, s.ConsecutiveFailures())
		})
	}
}

func TestState_LastFailure(t *testing.T) {
	s := NewState("inv", "t", testAlert()).
		Append(NewQueryFailed("h1", "SELECT a", "err a")).
		Append(NewQueryFailed("h1", "SELECT b", "err b")).
		Append(NewQueryFailed("h2", "SELECT c", "err c"))

	q, msg, ok := s.LastFailure("h1")
	require.True(t, ok)
	assert.Equal(t, "SELECT b", q)
	assert.Equal(t, "err b", msg)

	_, _, ok = s.LastFailure("h9")
	assert.False(t, ok)
}

func TestState_Status(t *testing.T) {
	s := NewState("inv", "t", testAlert())
	assert.Equal(t, StatusStarted, s.Status())

	s = s.Append(NewInvestigationStarted("sales.orders", "null_rate"))
	assert.Equal(t, StatusStarted, s.Status())

	s = s.Append(NewContextGathered(2, false))
	assert.Equal(t, StatusActive, s.Status())

	t.Run("synthesis completes the run", func(t *testing.T) {
		rc := "etl stalled"
		done := s.Append(NewSynthesisCompleted(&rc, 0.88))
		assert.Equal(t, StatusCompleted, done.Status())
	})

	t.Run("failure is terminal", func(t *testing.T) {
		failed := s.Append(NewInvestigationFailed("breaker"))
		assert.Equal(t, StatusFailed, failed.Status())
	})

	t.Run("schema discovery failure is terminal", func(t *testing.T) {
		empty := NewState("inv", "t", testAlert()).
			Append(NewInvestigationStarted("sales.orders", "null_rate")).
			Append(NewSchemaDiscoveryFailed("no tables"))
		assert.Equal(t, StatusSchemaFail, empty.Status())
	})
}

func TestState_HypothesisIDs(t *testing.T) {
	h1 := Hypothesis{ID: "h1", Title: "stg_users ETL stalled", Category: CategoryUpstreamDependency}
	h2 := Hypothesis{ID: "h2", Title: "join filter dropped rows", Category: CategoryTransformationBug}

	s := NewState("inv", "t", testAlert()).
		Append(NewHypothesisGenerated(h1)).
		Append(NewHypothesisGenerated(h2))

	assert.Equal(t, []string{"h1", "h2"}, s.HypothesisIDs())
}
