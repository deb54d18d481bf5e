package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasleuth/sleuth/ent"
	"github.com/datasleuth/sleuth/pkg/config"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
	"github.com/datasleuth/sleuth/pkg/orchestrator"
)

type completedCall struct {
	id      string
	finding *investigation.Finding
}

type failedCall struct {
	id     string
	errMsg string
}

// fakeStore hands out a fixed set of pending investigations and records
// terminal writes. done is signalled once per terminal write.
type fakeStore struct {
	mu        sync.Mutex
	pending   []*ent.Investigation
	completed []completedCall
	failed    []failedCall
	recovered int
	done      chan struct{}
}

func newFakeStore(pending ...*ent.Investigation) *fakeStore {
	return &fakeStore{pending: pending, done: make(chan struct{}, 16)}
}

func (s *fakeStore) ClaimNextPending(_ context.Context, _ string, _ int) (*ent.Investigation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil, nil
	}
	inv := s.pending[0]
	s.pending = s.pending[1:]
	return inv, nil
}

func (s *fakeStore) CompleteInvestigation(_ context.Context, id string, finding *investigation.Finding, _ investigation.State) error {
	s.mu.Lock()
	s.completed = append(s.completed, completedCall{id: id, finding: finding})
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *fakeStore) FailInvestigation(_ context.Context, id string, _ investigation.State, errMsg string) error {
	s.mu.Lock()
	s.failed = append(s.failed, failedCall{id: id, errMsg: errMsg})
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *fakeStore) RecoverOrphans(_ context.Context, _ string) (int, error) {
	return s.recovered, nil
}

// fakeRunner returns a scripted result or error per investigation ID.
type fakeRunner struct {
	mu      sync.Mutex
	results map[string]orchestrator.Result
	errs    map[string]error
	ran     []string
}

func (r *fakeRunner) Run(_ context.Context, invID, tenantID string, alert models.AnomalyAlert) (orchestrator.Result, error) {
	r.mu.Lock()
	r.ran = append(r.ran, invID)
	r.mu.Unlock()
	if err, ok := r.errs[invID]; ok {
		return orchestrator.Result{State: investigation.NewState(invID, tenantID, alert)}, err
	}
	if res, ok := r.results[invID]; ok {
		return res, nil
	}
	return orchestrator.Result{State: investigation.NewState(invID, tenantID, alert)}, nil
}

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:                 1,
		MaxConcurrentInvestigations: 5,
		PollInterval:                5 * time.Millisecond,
		PollIntervalJitter:          0,
		InvestigationTimeout:        time.Second,
		GracefulShutdownTimeout:     time.Second,
	}
}

func pendingRow(t *testing.T, id string) *ent.Investigation {
	t.Helper()
	alert := models.AnomalyAlert{
		DatasetID:   "sales.orders",
		Metric:      models.MetricFromColumn("user_id"),
		AnomalyType: "null_rate",
		AnomalyDate: "2024-01-15",
	}
	raw, err := json.Marshal(alert)
	require.NoError(t, err)
	var alertMap map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &alertMap))

	return &ent.Investigation{
		ID:        id,
		TenantID:  "tenant-a",
		DatasetID: alert.DatasetID,
		Alert:     alertMap,
	}
}

func waitForTerminal(t *testing.T, store *fakeStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-store.done:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for terminal write")
		}
	}
}

type noopRegistry struct{}

func (noopRegistry) RegisterInvestigation(string, context.CancelFunc) {}
func (noopRegistry) UnregisterInvestigation(string)                   {}

func TestWorker_CompletesInvestigation(t *testing.T) {
	store := newFakeStore(pendingRow(t, "inv-1"))
	finding := &investigation.Finding{
		InvestigationID: "inv-1",
		Status:          investigation.FindingCompleted,
		Confidence:      0.9,
	}
	runner := &fakeRunner{results: map[string]orchestrator.Result{
		"inv-1": {Finding: finding, State: investigation.NewState("inv-1", "tenant-a", models.AnomalyAlert{})},
	}}

	worker := NewWorker("w-0", "pod-1", store, testQueueConfig(), runner, noopRegistry{})
	worker.Start(context.Background())
	waitForTerminal(t, store, 1)
	worker.Stop()

	require.Len(t, store.completed, 1)
	assert.Equal(t, "inv-1", store.completed[0].id)
	assert.Equal(t, finding, store.completed[0].finding)
	assert.Empty(t, store.failed)
	assert.Equal(t, []string{"inv-1"}, runner.ran)

	health := worker.Health()
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
	assert.Equal(t, 1, health.InvestigationsProcessed)
}

func TestWorker_RunErrorPersistsFailure(t *testing.T) {
	store := newFakeStore(pendingRow(t, "inv-1"))
	runner := &fakeRunner{errs: map[string]error{
		"inv-1": errors.New("hypothesis generation failed"),
	}}

	worker := NewWorker("w-0", "pod-1", store, testQueueConfig(), runner, noopRegistry{})
	worker.Start(context.Background())
	waitForTerminal(t, store, 1)
	worker.Stop()

	require.Len(t, store.failed, 1)
	assert.Equal(t, "inv-1", store.failed[0].id)
	assert.Contains(t, store.failed[0].errMsg, "hypothesis generation failed")
	assert.Empty(t, store.completed)
}

func TestWorker_InvalidAlertPersistsFailure(t *testing.T) {
	row := &ent.Investigation{
		ID:       "inv-bad",
		TenantID: "tenant-a",
		Alert:    map[string]interface{}{"dataset_id": ""},
	}
	store := newFakeStore(row)
	runner := &fakeRunner{}

	worker := NewWorker("w-0", "pod-1", store, testQueueConfig(), runner, noopRegistry{})
	worker.Start(context.Background())
	waitForTerminal(t, store, 1)
	worker.Stop()

	require.Len(t, store.failed, 1)
	assert.Contains(t, store.failed[0].errMsg, "invalid alert payload")
	assert.Empty(t, runner.ran, "runner must not see an unreadable alert")
}

func TestWorker_ProcessesQueueInOrder(t *testing.T) {
	store := newFakeStore(pendingRow(t, "inv-1"), pendingRow(t, "inv-2"))
	runner := &fakeRunner{results: map[string]orchestrator.Result{}}

	worker := NewWorker("w-0", "pod-1", store, testQueueConfig(), runner, noopRegistry{})
	worker.Start(context.Background())
	waitForTerminal(t, store, 2)
	worker.Stop()

	assert.Equal(t, []string{"inv-1", "inv-2"}, runner.ran)
}
