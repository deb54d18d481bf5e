package agent

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
)

// fakeLLM replays scripted responses, one per Generate call, and records
// every input it received. When errChunk is set, every call fails with
// it — or only the first `failures` calls when failures > 0.
type fakeLLM struct {
	responses []string
	errChunk  *ErrorChunk
	failures  int
	calls     []*GenerateInput
}

func (f *fakeLLM) Generate(_ context.Context, input *GenerateInput) (<-chan Chunk, error) {
	f.calls = append(f.calls, input)
	call := len(f.calls)
	ch := make(chan Chunk, 8)
	go func() {
		defer close(ch)
		if f.errChunk != nil && (f.failures == 0 || call <= f.failures) {
			ch <- f.errChunk
			return
		}
		if len(f.responses) == 0 {
			return
		}
		text := f.responses[0]
		f.responses = f.responses[1:]
		// Split into two chunks to exercise accumulation.
		mid := len(text) / 2
		ch <- &TextChunk{Content: text[:mid]}
		ch <- &TextChunk{Content: text[mid:]}
		ch <- &UsageChunk{InputTokens: 100, OutputTokens: 50, TotalTokens: 150}
	}()
	return ch, nil
}

func (f *fakeLLM) Close() error { return nil }

func newTestClient(llm LLMClient) *Client {
	return NewClient(llm, nil, slog.New(slog.DiscardHandler))
}

func testAlert() models.AnomalyAlert {
	return models.AnomalyAlert{
		DatasetID:     "sales.orders",
		Metric:        models.MetricFromColumn("customer_email"),
		AnomalyType:   "null_rate",
		ExpectedValue: 0.02,
		ActualValue:   0.34,
		DeviationPct:  1600,
		AnomalyDate:   "2026-08-20",
		Severity:      "high",
	}
}

func testContext() investigation.Context {
	return investigation.Context{
		Schema: &datasource.SchemaResponse{Tables: []datasource.Table{
			{Schema: "sales", Name: "orders", Columns: []datasource.Column{
				{Name: "customer_email", DataType: datasource.TypeString},
			}},
		}},
	}
}

const validHypothesesJSON = `[
  {
    "title": "Upstream CRM export dropped the email field",
    "category": "upstream_dependency",
    "reasoning": "The null rate jumped 17x in one day, which matches a source-side field removal rather than gradual decay.",
    "suggested_query": "SELECT count(*) FROM sales.orders WHERE customer_email IS NULL",
    "expected_if_true": "Nulls concentrated after a single load timestamp",
    "expected_if_false": "Nulls spread evenly across load timestamps"
  },
  {
    "title": "Join to customers started missing rows",
    "category": "transformation_bug",
    "reasoning": "An email column populated by a LEFT JOIN goes null when the join key changes format.",
    "suggested_query": "SELECT count(*) FROM sales.orders o LEFT JOIN sales.customers c ON o.id = c.id WHERE c.id IS NULL",
    "expected_if_true": "Join miss rate matches the null rate",
    "expected_if_false": "Join miss rate unchanged"
  }
]`

func TestGenerateHypotheses_HappyPath(t *testing.T) {
	llm := &fakeLLM{responses: []string{"```json\n" + validHypothesesJSON + "\n```"}}
	c := newTestClient(llm)

	hyps, err := c.GenerateHypotheses(context.Background(), "inv-1", testAlert(), testContext(), 5, nil)
	require.NoError(t, err)
	require.Len(t, hyps, 2)
	assert.NotEmpty(t, hyps[0].ID)
	assert.Equal(t, investigation.CategoryUpstreamDependency, hyps[0].Category)
	assert.Equal(t, investigation.CategoryTransformationBug, hyps[1].Category)

	// The user prompt carries the column-specific framing and the schema.
	require.Len(t, llm.calls, 1)
	user := llm.calls[0].Messages[1].Content
	assert.Contains(t, user, "customer_email")
	assert.Contains(t, user, "Table: sales.orders")
}

func TestGenerateHypotheses_DropsInvalidKeepsValid(t *testing.T) {
	mixed := `[
	  {"title": "short", "category": "data_quality", "reasoning": "too short", "suggested_query": "SELECT 1", "expected_if_true": "a", "expected_if_false": "b"},
	  {
	    "title": "Partition for the anomaly date loaded partially",
	    "category": "infrastructure",
	    "reasoning": "A partial partition load would drop exactly the rows carrying emails from the late batch.",
	    "suggested_query": "SELECT count(*) FROM sales.orders",
	    "expected_if_true": "Row count below the daily average",
	    "expected_if_false": "Row count at the daily average"
	  }
	]`
	c := newTestClient(&fakeLLM{responses: []string{mixed}})

	hyps, err := c.GenerateHypotheses(context.Background(), "inv-1", testAlert(), testContext(), 5, nil)
	require.NoError(t, err)
	require.Len(t, hyps, 1)
	assert.Equal(t, investigation.CategoryInfrastructure, hyps[0].Category)
}

func TestGenerateHypotheses_RetriesThenSucceeds(t *testing.T) {
	llm := &fakeLLM{responses: []string{"I cannot answer that.", validHypothesesJSON}}
	c := newTestClient(llm)

	hyps, err := c.GenerateHypotheses(context.Background(), "inv-1", testAlert(), testContext(), 5, nil)
	require.NoError(t, err)
	assert.Len(t, hyps, 2)
	// Second call carries the schema-reminder turn.
	require.Len(t, llm.calls, 2)
	msgs := llm.calls[1].Messages
	assert.Equal(t, RoleAssistant, msgs[2].Role)
	assert.Contains(t, msgs[3].Content, "could not be used")
}

func TestGenerateHypotheses_EmptyAfterRetriesIsTerminal(t *testing.T) {
	llm := &fakeLLM{responses: []string{"nope", "nope", "nope", "nope"}}
	c := newTestClient(llm)

	_, err := c.GenerateHypotheses(context.Background(), "inv-1", testAlert(), testContext(), 5, nil)
	var llmErr *LLMError
	require.ErrorAs(t, err, &llmErr)
	assert.False(t, llmErr.Retryable)
	assert.Equal(t, "generate_hypotheses", llmErr.Op)
}

func TestGenerateHypotheses_RetryableTransportErrorIsRetried(t *testing.T) {
	llm := &fakeLLM{
		errChunk:  &ErrorChunk{Message: "rate limited", Code: "429", Retryable: true},
		failures:  1,
		responses: []string{validHypothesesJSON},
	}
	c := newTestClient(llm)

	hyps, err := c.GenerateHypotheses(context.Background(), "inv-1", testAlert(), testContext(), 5, nil)
	require.NoError(t, err)
	assert.Len(t, hyps, 2)
	// The transient fault consumed one attempt; no schema reminder was
	// appended for it.
	require.Len(t, llm.calls, 2)
	assert.Len(t, llm.calls[1].Messages, 2)
}

func TestGenerateHypotheses_NonRetryableTransportErrorIsImmediate(t *testing.T) {
	llm := &fakeLLM{
		errChunk:  &ErrorChunk{Message: "invalid api key", Code: "401", Retryable: false},
		failures:  1,
		responses: []string{validHypothesesJSON},
	}
	c := newTestClient(llm)

	_, err := c.GenerateHypotheses(context.Background(), "inv-1", testAlert(), testContext(), 5, nil)
	var llmErr *LLMError
	require.ErrorAs(t, err, &llmErr)
	assert.False(t, llmErr.Retryable)
	assert.Len(t, llm.calls, 1)
}

func TestGenerateHypotheses_RetryableErrorExhaustsBudget(t *testing.T) {
	llm := &fakeLLM{errChunk: &ErrorChunk{Message: "overloaded", Code: "529", Retryable: true}}
	c := newTestClient(llm)

	_, err := c.GenerateHypotheses(context.Background(), "inv-1", testAlert(), testContext(), 5, nil)
	var llmErr *LLMError
	require.ErrorAs(t, err, &llmErr)
	assert.True(t, llmErr.Retryable)
	// Initial attempt plus the full retry budget.
	assert.Len(t, llm.calls, 3)
}

func TestGenerateQuery_StripsFences(t *testing.T) {
	llm := &fakeLLM{responses: []string{"```sql\nSELECT count(*) FROM sales.orders LIMIT 100\n```"}}
	c := newTestClient(llm)

	sql, err := c.GenerateQuery(context.Background(), "inv-1", investigation.Hypothesis{ID: "h1", Title: "t"}, testContext().Schema, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT count(*) FROM sales.orders LIMIT 100", sql)
}

func TestGenerateQuery_ReflexionPromptQuotesFailure(t *testing.T) {
	llm := &fakeLLM{responses: []string{"SELECT 1 LIMIT 1"}}
	c := newTestClient(llm)

	_, err := c.GenerateQuery(context.Background(), "inv-1",
		investigation.Hypothesis{ID: "h1", Title: "join regression"},
		testContext().Schema,
		&QueryFailure{SQL: "SELECT bad_col FROM sales.orders", Error: "column \"bad_col\" does not exist"},
		nil)
	require.NoError(t, err)

	user := llm.calls[0].Messages[1].Content
	assert.Contains(t, user, "SELECT bad_col FROM sales.orders")
	assert.Contains(t, user, "does not exist")
	assert.Contains(t, user, "join regression")
}

func TestGenerateQuery_RetryableTransportErrorIsRetried(t *testing.T) {
	llm := &fakeLLM{
		errChunk:  &ErrorChunk{Message: "rate limited", Code: "429", Retryable: true},
		failures:  1,
		responses: []string{"SELECT count(*) FROM sales.orders LIMIT 100"},
	}
	c := newTestClient(llm)

	sql, err := c.GenerateQuery(context.Background(), "inv-1", investigation.Hypothesis{ID: "h1"}, testContext().Schema, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT count(*) FROM sales.orders LIMIT 100", sql)
	assert.Len(t, llm.calls, 2)
}

func TestGenerateQuery_NoSQLAfterRetries(t *testing.T) {
	llm := &fakeLLM{responses: []string{"sorry", "still sorry", "no", "no"}}
	c := newTestClient(llm)

	_, err := c.GenerateQuery(context.Background(), "inv-1", investigation.Hypothesis{ID: "h1"}, testContext().Schema, nil, nil)
	var llmErr *LLMError
	require.ErrorAs(t, err, &llmErr)
	assert.False(t, llmErr.Retryable)
}

func TestInterpretEvidence_HappyPath(t *testing.T) {
	resp := `{
	  "supports_hypothesis": true,
	  "confidence": 0.9,
	  "interpretation": "All nulls arrived in the 02:00 load batch.",
	  "causal_chain": "CRM export dropped the field, so the 02:00 batch landed without emails.",
	  "trigger_identified": "CRM export config change on 2026-08-19",
	  "differentiating_evidence": "Nulls are confined to one load timestamp",
	  "key_findings": ["34,812 null rows", "all with load_ts 2026-08-20 02:00"]
	}`
	c := newTestClient(&fakeLLM{responses: []string{resp}})

	ev := c.InterpretEvidence(context.Background(), "inv-1",
		investigation.Hypothesis{ID: "h1"},
		"SELECT 1",
		&datasource.QueryResult{RowCount: 2, Rows: []map[string]any{{"n": 1}, {"n": 2}}, Columns: []datasource.Column{{Name: "n"}}},
		nil)

	require.NotNil(t, ev.Supports)
	assert.True(t, *ev.Supports)
	assert.Equal(t, 0.9, ev.Confidence)
	assert.Equal(t, "h1", ev.HypothesisID)
	assert.Len(t, ev.KeyFindings, 2)
}

func TestInterpretEvidence_FallbackOnFailure(t *testing.T) {
	c := newTestClient(&fakeLLM{responses: []string{"garbage", "garbage", "garbage", "garbage"}})

	ev := c.InterpretEvidence(context.Background(), "inv-1",
		investigation.Hypothesis{ID: "h1"}, "SELECT 1",
		&datasource.QueryResult{RowCount: 7}, nil)

	assert.Nil(t, ev.Supports)
	assert.Equal(t, 0.3, ev.Confidence)
	assert.Contains(t, ev.Interpretation, "Interpretation unavailable")
	assert.Equal(t, 7, ev.RowCount)
}

func TestSynthesizeFindings_CompletedVsInconclusive(t *testing.T) {
	confident := `{
	  "root_cause": "CRM export config change removed the email field on 2026-08-19",
	  "confidence": 0.9,
	  "causal_chain": ["CRM config change", "export lands without emails", "null rate spikes"],
	  "estimated_onset": "2026-08-19T22:00Z",
	  "affected_scope": "sales.orders rows loaded after 2026-08-19",
	  "supporting_evidence": ["nulls confined to one load batch"],
	  "recommendations": ["Revert the CRM export config and backfill sales.orders for 2026-08-20"]
	}`
	lowConfidence := `{
	  "root_cause": "possibly an ETL failure",
	  "confidence": 0.3,
	  "causal_chain": ["unknown", "unknown"],
	  "estimated_onset": "",
	  "affected_scope": "",
	  "supporting_evidence": ["none"],
	  "recommendations": ["Gather more evidence"]
	}`

	t.Run("high confidence completes", func(t *testing.T) {
		c := newTestClient(&fakeLLM{responses: []string{confident}})
		f, err := c.SynthesizeFindings(context.Background(), "inv-1", testAlert(), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, investigation.FindingCompleted, f.Status)
		require.NotNil(t, f.RootCause)
		assert.Equal(t, "inv-1", f.InvestigationID)
	})

	t.Run("low confidence forces inconclusive", func(t *testing.T) {
		c := newTestClient(&fakeLLM{responses: []string{lowConfidence}})
		f, err := c.SynthesizeFindings(context.Background(), "inv-1", testAlert(), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, investigation.FindingInconclusive, f.Status)
		assert.Nil(t, f.RootCause)
	})
}

func TestSynthesizeFindings_ShortCausalChainRejected(t *testing.T) {
	oneStep := `{
	  "root_cause": "CRM export config change removed the email field",
	  "confidence": 0.9,
	  "causal_chain": ["null rate spiked"],
	  "recommendations": ["Revert the CRM export config"]
	}`
	repaired := `{
	  "root_cause": "CRM export config change removed the email field",
	  "confidence": 0.9,
	  "causal_chain": ["CRM config change", "export lands without emails", "null rate spikes"],
	  "recommendations": ["Revert the CRM export config"]
	}`

	llm := &fakeLLM{responses: []string{oneStep, repaired}}
	c := newTestClient(llm)

	f, err := c.SynthesizeFindings(context.Background(), "inv-1", testAlert(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, investigation.FindingCompleted, f.Status)
	assert.Len(t, f.CausalChain, 3)
	// The one-step chain was rejected into the schema-retry loop.
	require.Len(t, llm.calls, 2)
	assert.Contains(t, llm.calls[1].Messages[3].Content, "causal_chain")

	t.Run("no root cause needs no chain", func(t *testing.T) {
		inconclusive := `{
		  "root_cause": null,
		  "confidence": 0.3,
		  "causal_chain": [],
		  "recommendations": ["Gather more evidence"]
		}`
		c := newTestClient(&fakeLLM{responses: []string{inconclusive}})
		f, err := c.SynthesizeFindings(context.Background(), "inv-1", testAlert(), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, investigation.FindingInconclusive, f.Status)
	})
}

func TestSynthesizeFindings_FailureIsTerminal(t *testing.T) {
	c := newTestClient(&fakeLLM{errChunk: &ErrorChunk{Message: "provider down", Retryable: true}})

	_, err := c.SynthesizeFindings(context.Background(), "inv-1", testAlert(), nil, nil)
	var llmErr *LLMError
	require.ErrorAs(t, err, &llmErr)
}

func TestJudge(t *testing.T) {
	resp := `{
	  "causal_depth": 0.8,
	  "specificity": 0.7,
	  "actionability": 0.9,
	  "vague_cause": false,
	  "differentiating_specific": true,
	  "improvement_suggestion": "Name the exact CRM config key that changed."
	}`
	c := newTestClient(&fakeLLM{responses: []string{resp}})

	scores, err := c.Judge(context.Background(), "inv-1", "score this")
	require.NoError(t, err)
	assert.Equal(t, 0.8, scores.CausalDepth)
	assert.True(t, scores.DifferentiatingSpecific)
}

func TestStreamHandlers_DoNotAffectResult(t *testing.T) {
	llm := &fakeLLM{responses: []string{"SELECT 1 LIMIT 1"}}
	c := newTestClient(llm)

	var tokens []string
	var completed string
	handlers := &StreamHandlers{
		OnToken:    func(delta string) { tokens = append(tokens, delta) },
		OnComplete: func(text string) { completed = text },
	}

	sql, err := c.GenerateQuery(context.Background(), "inv-1", investigation.Hypothesis{ID: "h1"}, testContext().Schema, nil, handlers)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 LIMIT 1", sql)
	assert.Equal(t, "SELECT 1 LIMIT 1", strings.Join(tokens, ""))
	assert.Equal(t, "SELECT 1 LIMIT 1", completed)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prose around array", "Here you go:\n[1, 2]\nHope that helps!", "[1, 2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := extractJSON("no json here")
	assert.Error(t, err)
}

func TestCleanSQL(t *testing.T) {
	assert.Equal(t, "SELECT 1", cleanSQL("Sure! Here is the query:\nSELECT 1"))
	assert.Equal(t, "WITH x AS (SELECT 1) SELECT * FROM x", cleanSQL("WITH x AS (SELECT 1) SELECT * FROM x"))
	assert.Equal(t, "", cleanSQL("I refuse."))
}
