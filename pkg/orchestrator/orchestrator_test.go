package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasleuth/sleuth/pkg/agent"
	"github.com/datasleuth/sleuth/pkg/contextengine"
	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
)

// hypothesisScript drives the fake agent for one hypothesis: queries are
// returned in order (the last repeats), evidence likewise.
type hypothesisScript struct {
	queries  []string
	evidence []investigation.Evidence
}

type fakeAgent struct {
	mu sync.Mutex

	hypotheses []investigation.Hypothesis
	hypErr     error
	scripts    map[string]*hypothesisScript
	finding    *investigation.Finding
	findingErr error

	queryCalls     map[string]int
	interpretCalls map[string]int
	reflexions     map[string][]agent.QueryFailure
	synthEvidence  []investigation.Evidence
}

func newFakeAgent() *fakeAgent {
	return &fakeAgent{
		scripts:        map[string]*hypothesisScript{},
		queryCalls:     map[string]int{},
		interpretCalls: map[string]int{},
		reflexions:     map[string][]agent.QueryFailure{},
	}
}

func (f *fakeAgent) GenerateHypotheses(_ context.Context, _ string, _ models.AnomalyAlert, _ investigation.Context, n int, _ *agent.StreamHandlers) ([]investigation.Hypothesis, error) {
	if f.hypErr != nil {
		return nil, f.hypErr
	}
	if len(f.hypotheses) > n {
		return f.hypotheses[:n], nil
	}
	return f.hypotheses, nil
}

func (f *fakeAgent) GenerateQuery(_ context.Context, _ string, h investigation.Hypothesis, _ investigation.SchemaContext, previous *agent.QueryFailure, _ *agent.StreamHandlers) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if previous != nil {
		f.reflexions[h.ID] = append(f.reflexions[h.ID], *previous)
	}
	s := f.scripts[h.ID]
	if s == nil {
		return "", &agent.LLMError{Op: "generate_query", Message: "no script for " + h.ID, Retryable: false}
	}
	i := f.queryCalls[h.ID]
	f.queryCalls[h.ID]++
	if i >= len(s.queries) {
		i = len(s.queries) - 1
	}
	return s.queries[i], nil
}

func (f *fakeAgent) InterpretEvidence(_ context.Context, _ string, h investigation.Hypothesis, sql string, result *datasource.QueryResult, _ *agent.StreamHandlers) investigation.Evidence {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.scripts[h.ID]
	i := f.interpretCalls[h.ID]
	f.interpretCalls[h.ID]++
	if i >= len(s.evidence) {
		i = len(s.evidence) - 1
	}
	ev := s.evidence[i]
	ev.HypothesisID = h.ID
	ev.Query = sql
	ev.RowCount = result.RowCount
	return ev
}

func (f *fakeAgent) SynthesizeFindings(_ context.Context, invID string, _ models.AnomalyAlert, evidence []investigation.Evidence, _ *agent.StreamHandlers) (*investigation.Finding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findingErr != nil {
		return nil, f.findingErr
	}
	f.synthEvidence = evidence
	finding := *f.finding
	finding.InvestigationID = invID
	finding.Evidence = evidence
	return &finding, nil
}

type stubGatherer struct {
	ctx investigation.Context
	err error
}

func (s *stubGatherer) Gather(context.Context, string) (investigation.Context, error) {
	return s.ctx, s.err
}

type recordingFeedback struct {
	mu     sync.Mutex
	events []models.EmitFeedbackRequest
}

func (r *recordingFeedback) Emit(_ context.Context, req models.EmitFeedbackRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, req)
	return nil
}

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

func testSchema() *datasource.SchemaResponse {
	return &datasource.SchemaResponse{Tables: []datasource.Table{
		{Schema: "sales", Name: "orders", Columns: []datasource.Column{{Name: "user_id", DataType: datasource.TypeString}}},
		{Schema: "sales", Name: "stg_users", Columns: []datasource.Column{{Name: "id", DataType: datasource.TypeString}}},
	}}
}

func hypothesis(id, title string) investigation.Hypothesis {
	return investigation.Hypothesis{
		ID:       id,
		Title:    title,
		Category: investigation.CategoryUpstreamDependency,
	}
}

func boolPtr(b bool) *bool     { return &b }
func strPtr(s string) *string  { return &s }
func testLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func countEvents(s investigation.State, t investigation.EventType, hypothesisID string) int {
	n := 0
	for _, e := range s.Events {
		if e.Type == t && (hypothesisID == "" || e.HypothesisID() == hypothesisID) {
			n++
		}
	}
	return n
}

// assertEventInvariants checks the per-run event-log invariants: query
// budgets, no consecutive duplicates per hypothesis, and submit/outcome
// pairing.
func assertEventInvariants(t *testing.T, s investigation.State, cfg Config, breakerCfg investigation.CircuitBreakerConfig) {
	t.Helper()
	assert.LessOrEqual(t, s.QueryCount(), breakerCfg.MaxTotalQueries)
	for _, h := range s.HypothesisIDs() {
		assert.LessOrEqual(t, s.HypothesisQueryCount(h), cfg.MaxQueriesPerHypothesis)
		assert.LessOrEqual(t, s.RetryCount(h), cfg.MaxRetriesPerHypothesis)

		queries := s.AllQueries(h)
		for i := 1; i < len(queries); i++ {
			assert.NotEqual(t, queries[i-1], queries[i], "consecutive duplicate SQL for %s", h)
		}
		outcomes := countEvents(s, investigation.EventQuerySucceeded, h) +
			countEvents(s, investigation.EventQueryFailed, h)
		assert.Equal(t, s.HypothesisQueryCount(h), outcomes, "unmatched query_submitted for %s", h)
	}
}

func newTestOrchestrator(t *testing.T, fa *fakeAgent, source datasource.Adapter, gatherer ContextGatherer, cfg Config, breakerCfg investigation.CircuitBreakerConfig, opts Options) *Orchestrator {
	t.Helper()
	if opts.Breaker == nil {
		opts.Breaker = investigation.NewCircuitBreaker(breakerCfg)
	}
	return New(cfg, fa, source, gatherer, opts, testLogger())
}

func TestRun_HappyPath(t *testing.T) {
	fa := newFakeAgent()
	fa.hypotheses = []investigation.Hypothesis{
		hypothesis("h1", "stg_users ETL stalled"),
		hypothesis("h2", "join regression"),
		hypothesis("h3", "source schema change"),
	}
	for i, h := range fa.hypotheses {
		sql := []string{
			"SELECT date_trunc('hour', created_at), count(*) FROM sales.orders WHERE user_id IS NULL GROUP BY 1 LIMIT 100",
			"SELECT count(*) FROM sales.stg_users LIMIT 100",
			"SELECT count(*) FROM sales.orders LIMIT 100",
		}[i]
		fa.scripts[h.ID] = &hypothesisScript{
			queries: []string{sql},
			evidence: []investigation.Evidence{{
				Supports:       boolPtr(true),
				Confidence:     0.92,
				Interpretation: "NULL user_ids clustered at 03:14 UTC",
			}},
		}
	}
	fa.finding = &investigation.Finding{
		Status:          investigation.FindingCompleted,
		RootCause:       strPtr("stg_users ETL job stalled at 03:14 UTC"),
		Confidence:      0.88,
		Recommendations: []string{"Restart the stg_users ETL job"},
	}

	source := datasource.NewMemoryAdapter()
	for _, s := range fa.scripts {
		source.ScriptResult(s.queries[0], &datasource.QueryResult{RowCount: 42})
	}
	feedback := &recordingFeedback{}
	o := newTestOrchestrator(t, fa, source, &stubGatherer{ctx: investigation.Context{Schema: testSchema()}},
		DefaultConfig(), investigation.DefaultCircuitBreakerConfig(), Options{Feedback: feedback})

	result, err := o.Run(context.Background(), "inv-1", "tenant-a", testAlert())
	require.NoError(t, err)
	require.NotNil(t, result.Finding)

	assert.Equal(t, investigation.FindingCompleted, result.Finding.Status)
	assert.Equal(t, 0.88, result.Finding.Confidence)
	assert.GreaterOrEqual(t, len(result.Finding.Evidence), 1)
	assert.Greater(t, result.Finding.DurationSeconds, 0.0)

	s := result.State
	assert.Equal(t, 1, countEvents(s, investigation.EventInvestigationStarted, ""))
	assert.Equal(t, 1, countEvents(s, investigation.EventContextGathered, ""))
	assert.Equal(t, 3, countEvents(s, investigation.EventHypothesisGenerated, ""))
	assert.Equal(t, 1, countEvents(s, investigation.EventQuerySubmitted, "h1"))
	assert.Equal(t, 1, countEvents(s, investigation.EventQuerySucceeded, "h1"))
	assert.Equal(t, 1, countEvents(s, investigation.EventSynthesisCompleted, ""))
	// High-confidence supporting evidence confirms the hypothesis.
	assert.Equal(t, 1, countEvents(s, investigation.EventHypothesisConfirmed, "h1"))
	assert.Equal(t, investigation.StatusCompleted, s.Status())

	assertEventInvariants(t, s, DefaultConfig(), investigation.DefaultCircuitBreakerConfig())

	// Feedback at the three boundaries.
	require.Len(t, feedback.events, 3)
	assert.Equal(t, "investigation_started", feedback.events[0].EventType)
	assert.Equal(t, "context_gathered", feedback.events[1].EventType)
	assert.Equal(t, "investigation_completed", feedback.events[2].EventType)
}

func TestRun_EmptySchemaFailsFast(t *testing.T) {
	fa := newFakeAgent()
	fa.hypotheses = []investigation.Hypothesis{hypothesis("h1", "never reached")}

	gatherer := &stubGatherer{err: &contextengine.SchemaDiscoveryError{DatasetID: "sales.orders"}}
	o := newTestOrchestrator(t, fa, datasource.NewMemoryAdapter(), gatherer,
		DefaultConfig(), investigation.DefaultCircuitBreakerConfig(), Options{})

	result, err := o.Run(context.Background(), "inv-1", "tenant-a", testAlert())

	var discoveryErr *contextengine.SchemaDiscoveryError
	require.ErrorAs(t, err, &discoveryErr)
	assert.Nil(t, result.Finding)

	s := result.State
	assert.Equal(t, 1, countEvents(s, investigation.EventSchemaDiscoveryFailed, ""))
	assert.Zero(t, countEvents(s, investigation.EventHypothesisGenerated, ""))
	assert.Equal(t, investigation.StatusSchemaFail, s.Status())
}

func TestRun_ReflexionLoop(t *testing.T) {
	const badSQL = "SELECT * FROM sales.ordrs LIMIT 100"
	const goodSQL = "SELECT * FROM sales.orders LIMIT 100"

	fa := newFakeAgent()
	fa.hypotheses = []investigation.Hypothesis{hypothesis("h1", "table typo")}
	fa.scripts["h1"] = &hypothesisScript{
		queries: []string{badSQL, goodSQL},
		evidence: []investigation.Evidence{{
			Supports:       boolPtr(true),
			Confidence:     0.9,
			Interpretation: "rows present",
		}},
	}
	fa.finding = &investigation.Finding{
		Status:     investigation.FindingCompleted,
		RootCause:  strPtr("cause"),
		Confidence: 0.8,
	}

	source := datasource.NewMemoryAdapter()
	source.ScriptError(badSQL, datasource.NewAdapterError(datasource.ErrQuerySyntax, `relation "sales.ordrs" does not exist`, nil))
	source.ScriptResult(goodSQL, &datasource.QueryResult{RowCount: 10})

	o := newTestOrchestrator(t, fa, source, &stubGatherer{ctx: investigation.Context{Schema: testSchema()}},
		DefaultConfig(), investigation.DefaultCircuitBreakerConfig(), Options{})

	result, err := o.Run(context.Background(), "inv-1", "tenant-a", testAlert())
	require.NoError(t, err)

	s := result.State
	assert.Equal(t, 2, countEvents(s, investigation.EventQuerySubmitted, "h1"))
	assert.Equal(t, 1, countEvents(s, investigation.EventQueryFailed, "h1"))
	assert.Equal(t, 1, countEvents(s, investigation.EventReflexionAttempted, "h1"))
	assert.Equal(t, 1, countEvents(s, investigation.EventQuerySucceeded, "h1"))

	// The reflexion prompt carried the failed SQL and its error.
	require.Len(t, fa.reflexions["h1"], 1)
	assert.Equal(t, badSQL, fa.reflexions["h1"][0].SQL)
	assert.Contains(t, fa.reflexions["h1"][0].Error, "does not exist")

	assertEventInvariants(t, s, DefaultConfig(), investigation.DefaultCircuitBreakerConfig())
}

func TestRun_DuplicateQueryStopsWorker(t *testing.T) {
	const sql = "SELECT count(*) FROM sales.orders LIMIT 100"

	fa := newFakeAgent()
	fa.hypotheses = []investigation.Hypothesis{hypothesis("h1", "looping hypothesis")}
	fa.scripts["h1"] = &hypothesisScript{
		// Low-confidence evidence keeps the loop going; the repeated SQL
		// triggers the duplicate short-circuit on the second iteration.
		queries: []string{sql, sql},
		evidence: []investigation.Evidence{{
			Supports:       boolPtr(false),
			Confidence:     0.4,
			Interpretation: "nothing conclusive",
		}},
	}
	fa.finding = &investigation.Finding{Status: investigation.FindingInconclusive, Confidence: 0.4}

	source := datasource.NewMemoryAdapter()
	source.ScriptResult(sql, &datasource.QueryResult{RowCount: 1})

	o := newTestOrchestrator(t, fa, source, &stubGatherer{ctx: investigation.Context{Schema: testSchema()}},
		DefaultConfig(), investigation.DefaultCircuitBreakerConfig(), Options{})

	result, err := o.Run(context.Background(), "inv-1", "tenant-a", testAlert())
	require.NoError(t, err)

	s := result.State
	assert.Equal(t, 1, countEvents(s, investigation.EventQuerySubmitted, "h1"))
	assert.Equal(t, 0, countEvents(s, investigation.EventQueryFailed, "h1"))
	assert.Equal(t, 1, countEvents(s, investigation.EventQuerySucceeded, "h1"))
}

func TestRun_CircuitBreakerTripReturnsPartialFinding(t *testing.T) {
	fa := newFakeAgent()
	fa.hypotheses = []investigation.Hypothesis{hypothesis("h1", "query-hungry hypothesis")}
	fa.scripts["h1"] = &hypothesisScript{
		queries: []string{
			"SELECT 1 LIMIT 1",
			"SELECT 2 LIMIT 1",
			"SELECT 3 LIMIT 1",
		},
		evidence: []investigation.Evidence{{
			Supports:       boolPtr(false),
			Confidence:     0.4,
			Interpretation: "inconclusive",
		}},
	}
	fa.finding = &investigation.Finding{Status: investigation.FindingCompleted, RootCause: strPtr("x"), Confidence: 0.9}

	breakerCfg := investigation.DefaultCircuitBreakerConfig()
	breakerCfg.MaxTotalQueries = 2

	o := newTestOrchestrator(t, fa, datasource.NewMemoryAdapter(),
		&stubGatherer{ctx: investigation.Context{Schema: testSchema()}},
		DefaultConfig(), breakerCfg, Options{})

	result, err := o.Run(context.Background(), "inv-1", "tenant-a", testAlert())
	require.NoError(t, err)
	require.NotNil(t, result.Finding)

	assert.Equal(t, investigation.FindingFailed, result.Finding.Status)
	assert.Empty(t, result.Finding.Evidence)
	assert.Equal(t, []string{"Investigation was stopped due to safety limits"}, result.Finding.Recommendations)
	assert.Greater(t, result.Finding.DurationSeconds, 0.0)

	s := result.State
	assert.LessOrEqual(t, s.QueryCount(), 2)
	assert.Equal(t, 1, countEvents(s, investigation.EventInvestigationFailed, ""))
	assert.Equal(t, investigation.StatusFailed, s.Status())
}

// gatedAgent holds every worker at its first GenerateQuery call until
// all of them have arrived, forcing the workers to pass their snapshot
// breaker checks simultaneously before any query_submitted lands.
type gatedAgent struct {
	*fakeAgent
	gate *sync.WaitGroup
	seen sync.Map
}

func (g *gatedAgent) GenerateQuery(ctx context.Context, invID string, h investigation.Hypothesis, schema investigation.SchemaContext, previous *agent.QueryFailure, handlers *agent.StreamHandlers) (string, error) {
	if _, loaded := g.seen.LoadOrStore(h.ID, true); !loaded {
		g.gate.Done()
		g.gate.Wait()
	}
	return g.fakeAgent.GenerateQuery(ctx, invID, h, schema, previous, handlers)
}

func TestRun_ConcurrentWorkersCannotOvershootQueryBudget(t *testing.T) {
	fa := newFakeAgent()
	fa.hypotheses = []investigation.Hypothesis{
		hypothesis("h1", "first hypothesis"),
		hypothesis("h2", "second hypothesis"),
		hypothesis("h3", "third hypothesis"),
	}
	for i, h := range fa.hypotheses {
		sql := []string{"SELECT 1 LIMIT 1", "SELECT 2 LIMIT 1", "SELECT 3 LIMIT 1"}[i]
		fa.scripts[h.ID] = &hypothesisScript{
			queries: []string{sql},
			evidence: []investigation.Evidence{{
				Supports:       boolPtr(false),
				Confidence:     0.4,
				Interpretation: "inconclusive",
			}},
		}
	}
	fa.finding = &investigation.Finding{Status: investigation.FindingCompleted, RootCause: strPtr("x"), Confidence: 0.9}

	gated := &gatedAgent{fakeAgent: fa, gate: &sync.WaitGroup{}}
	gated.gate.Add(len(fa.hypotheses))

	source := datasource.NewMemoryAdapter()
	for _, s := range fa.scripts {
		source.ScriptResult(s.queries[0], &datasource.QueryResult{RowCount: 1})
	}

	breakerCfg := investigation.DefaultCircuitBreakerConfig()
	breakerCfg.MaxTotalQueries = 2

	o := New(DefaultConfig(), gated, source,
		&stubGatherer{ctx: investigation.Context{Schema: testSchema()}},
		Options{Breaker: investigation.NewCircuitBreaker(breakerCfg)}, testLogger())

	result, err := o.Run(context.Background(), "inv-1", "tenant-a", testAlert())
	require.NoError(t, err)
	require.NotNil(t, result.Finding)

	// All three workers pass the pre-generation check at query_count=0,
	// but only two submissions may land; the third must trip.
	s := result.State
	assert.Equal(t, 2, countEvents(s, investigation.EventQuerySubmitted, ""))
	assert.Equal(t, investigation.FindingFailed, result.Finding.Status)
	assertEventInvariants(t, s, DefaultConfig(), breakerCfg)
}

func TestRun_InconclusiveSynthesis(t *testing.T) {
	fa := newFakeAgent()
	fa.hypotheses = []investigation.Hypothesis{
		hypothesis("h1", "first dead end"),
		hypothesis("h2", "second dead end"),
		hypothesis("h3", "third dead end"),
	}
	for i, h := range fa.hypotheses {
		sql := []string{"SELECT 1 LIMIT 1", "SELECT 2 LIMIT 1", "SELECT 3 LIMIT 1"}[i]
		fa.scripts[h.ID] = &hypothesisScript{
			// Repeated SQL stops each worker after one piece of evidence.
			queries: []string{sql, sql},
			evidence: []investigation.Evidence{{
				Supports:       boolPtr(false),
				Confidence:     0.3,
				Interpretation: "refuted",
			}},
		}
	}
	fa.finding = &investigation.Finding{Status: investigation.FindingInconclusive, RootCause: nil, Confidence: 0.4}

	source := datasource.NewMemoryAdapter()
	for _, s := range fa.scripts {
		source.ScriptResult(s.queries[0], &datasource.QueryResult{RowCount: 1})
	}

	o := newTestOrchestrator(t, fa, source, &stubGatherer{ctx: investigation.Context{Schema: testSchema()}},
		DefaultConfig(), investigation.DefaultCircuitBreakerConfig(), Options{})

	result, err := o.Run(context.Background(), "inv-1", "tenant-a", testAlert())
	require.NoError(t, err)
	require.NotNil(t, result.Finding)

	assert.Equal(t, investigation.FindingInconclusive, result.Finding.Status)
	assert.Nil(t, result.Finding.RootCause)
	assert.Len(t, result.Finding.Evidence, 3)

	assert.Equal(t, 1, countEvents(result.State, investigation.EventSynthesisCompleted, ""))
}

func TestRun_HypothesisGenerationFailureIsTerminal(t *testing.T) {
	fa := newFakeAgent()
	fa.hypErr = &agent.LLMError{Op: "generate_hypotheses", Message: "no valid hypotheses", Retryable: false}

	o := newTestOrchestrator(t, fa, datasource.NewMemoryAdapter(),
		&stubGatherer{ctx: investigation.Context{Schema: testSchema()}},
		DefaultConfig(), investigation.DefaultCircuitBreakerConfig(), Options{})

	result, err := o.Run(context.Background(), "inv-1", "tenant-a", testAlert())
	var llmErr *agent.LLMError
	require.ErrorAs(t, err, &llmErr)
	assert.Nil(t, result.Finding)
	assert.Equal(t, investigation.StatusFailed, result.State.Status())
}

func TestRun_SynthesisFailureIsTerminal(t *testing.T) {
	const sql = "SELECT 1 LIMIT 1"
	fa := newFakeAgent()
	fa.hypotheses = []investigation.Hypothesis{hypothesis("h1", "only hypothesis")}
	fa.scripts["h1"] = &hypothesisScript{
		queries:  []string{sql, sql},
		evidence: []investigation.Evidence{{Supports: boolPtr(false), Confidence: 0.4, Interpretation: "x"}},
	}
	fa.findingErr = &agent.LLMError{Op: "synthesize_findings", Message: "provider down", Retryable: false}

	source := datasource.NewMemoryAdapter()
	source.ScriptResult(sql, &datasource.QueryResult{RowCount: 1})

	o := newTestOrchestrator(t, fa, source, &stubGatherer{ctx: investigation.Context{Schema: testSchema()}},
		DefaultConfig(), investigation.DefaultCircuitBreakerConfig(), Options{})

	result, err := o.Run(context.Background(), "inv-1", "tenant-a", testAlert())
	var llmErr *agent.LLMError
	require.ErrorAs(t, err, &llmErr)
	assert.Nil(t, result.Finding)
	assert.Equal(t, 1, countEvents(result.State, investigation.EventInvestigationFailed, ""))
}

func TestRun_PreflightRejectionFeedsReflexion(t *testing.T) {
	const badSQL = "DELETE FROM sales.orders"
	const goodSQL = "SELECT count(*) FROM sales.orders LIMIT 100"

	fa := newFakeAgent()
	fa.hypotheses = []investigation.Hypothesis{hypothesis("h1", "mutation attempt")}
	fa.scripts["h1"] = &hypothesisScript{
		queries: []string{badSQL, goodSQL},
		evidence: []investigation.Evidence{{
			Supports:       boolPtr(true),
			Confidence:     0.9,
			Interpretation: "fine",
		}},
	}
	fa.finding = &investigation.Finding{Status: investigation.FindingCompleted, RootCause: strPtr("x"), Confidence: 0.8}

	source := datasource.NewMemoryAdapter()
	source.ScriptResult(goodSQL, &datasource.QueryResult{RowCount: 5})

	o := newTestOrchestrator(t, fa, source, &stubGatherer{ctx: investigation.Context{Schema: testSchema()}},
		DefaultConfig(), investigation.DefaultCircuitBreakerConfig(), Options{})

	result, err := o.Run(context.Background(), "inv-1", "tenant-a", testAlert())
	require.NoError(t, err)

	s := result.State
	// The rejected statement still consumed a submission and produced a
	// query_failed that drove reflexion; it never reached the adapter.
	assert.Equal(t, 1, countEvents(s, investigation.EventQueryFailed, "h1"))
	assert.Equal(t, 1, countEvents(s, investigation.EventReflexionAttempted, "h1"))
	assert.Equal(t, []string{goodSQL}, source.ExecutedQueries())
}

func TestRun_WorkerFaultDoesNotKillRun(t *testing.T) {
	const sql = "SELECT 1 LIMIT 1"
	fa := newFakeAgent()
	fa.hypotheses = []investigation.Hypothesis{
		hypothesis("h1", "healthy hypothesis"),
		hypothesis("h2", "faulting hypothesis"),
	}
	fa.scripts["h1"] = &hypothesisScript{
		queries:  []string{sql},
		evidence: []investigation.Evidence{{Supports: boolPtr(true), Confidence: 0.9, Interpretation: "good"}},
	}
	// No script for h2: GenerateQuery errors, which must be contained to
	// that worker.
	fa.finding = &investigation.Finding{Status: investigation.FindingCompleted, RootCause: strPtr("x"), Confidence: 0.8}

	source := datasource.NewMemoryAdapter()
	source.ScriptResult(sql, &datasource.QueryResult{RowCount: 1})

	o := newTestOrchestrator(t, fa, source, &stubGatherer{ctx: investigation.Context{Schema: testSchema()}},
		DefaultConfig(), investigation.DefaultCircuitBreakerConfig(), Options{})

	result, err := o.Run(context.Background(), "inv-1", "tenant-a", testAlert())
	require.NoError(t, err)
	require.NotNil(t, result.Finding)
	assert.Len(t, result.Finding.Evidence, 1)
	assert.Equal(t, "h1", result.Finding.Evidence[0].HypothesisID)
}
