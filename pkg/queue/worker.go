package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/datasleuth/sleuth/ent"
	entinvestigation "github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/pkg/config"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// InvestigationRegistry is the subset of WorkerPool used by Worker for
// cancel registration.
type InvestigationRegistry interface {
	RegisterInvestigation(invID string, cancel context.CancelFunc)
	UnregisterInvestigation(invID string)
}

// Worker is a single queue worker that polls for and runs investigations.
type Worker struct {
	id       string
	podID    string
	store    InvestigationStore
	config   *config.QueueConfig
	runner   InvestigationRunner
	pool     InvestigationRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu           sync.RWMutex
	status       WorkerStatus
	currentInvID string
	processed    int
	lastActivity time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, store InvestigationStore, cfg *config.QueueConfig, runner InvestigationRunner, pool InvestigationRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		store:        store,
		config:       cfg,
		runner:       runner,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                      w.id,
		Status:                  string(w.status),
		CurrentInvestigationID:  w.currentInvID,
		InvestigationsProcessed: w.processed,
		LastActivity:            w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoInvestigationsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing investigation", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims one investigation and runs it to a terminal row
// status. The claim itself enforces the global concurrency cap.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	inv, err := w.store.ClaimNextPending(ctx, w.podID, w.config.MaxConcurrentInvestigations)
	if err != nil {
		return fmt.Errorf("claiming investigation: %w", err)
	}
	if inv == nil {
		return ErrNoInvestigationsAvailable
	}

	log := slog.With("investigation_id", inv.ID, "worker_id", w.id)
	log.Info("Investigation claimed")

	w.setStatus(WorkerStatusWorking, inv.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	alert, err := alertFromRow(inv)
	if err != nil {
		log.Error("Claimed investigation has an unreadable alert", "error", err)
		return w.persistFailure(inv, alertUnreadableState(inv), fmt.Sprintf("invalid alert payload: %v", err))
	}

	invCtx, cancelInv := context.WithTimeout(ctx, w.config.InvestigationTimeout)
	defer cancelInv()

	// Register cancel function for API-triggered cancellation.
	w.pool.RegisterInvestigation(inv.ID, cancelInv)
	defer w.pool.UnregisterInvestigation(inv.ID)

	started := time.Now()
	result, runErr := w.runner.Run(invCtx, inv.ID, inv.TenantID, alert)
	investigationDuration.Observe(time.Since(started).Seconds())

	// Terminal persistence always uses a fresh context — the run context
	// may be cancelled or expired by now.
	var persistErr error
	switch {
	case runErr != nil:
		errMsg := runErr.Error()
		if errors.Is(invCtx.Err(), context.DeadlineExceeded) {
			errMsg = fmt.Sprintf("investigation timed out after %v", w.config.InvestigationTimeout)
		}
		persistErr = w.persistFailure(inv, result.State, errMsg)
	case result.Finding == nil:
		persistErr = w.persistFailure(inv, result.State, "orchestrator returned no finding")
	default:
		persistErr = w.store.CompleteInvestigation(context.Background(), inv.ID, result.Finding, result.State)
		if persistErr == nil {
			investigationsProcessed.WithLabelValues(string(result.Finding.Status)).Inc()
		}
	}
	if persistErr != nil {
		log.Error("Failed to persist investigation outcome", "error", persistErr)
		return persistErr
	}

	w.mu.Lock()
	w.processed++
	w.mu.Unlock()

	log.Info("Investigation processing complete")
	return nil
}

// persistFailure writes a failed terminal status using a fresh context.
func (w *Worker) persistFailure(inv *ent.Investigation, state investigation.State, errMsg string) error {
	if err := w.store.FailInvestigation(context.Background(), inv.ID, state, errMsg); err != nil {
		return err
	}
	investigationsProcessed.WithLabelValues(string(entinvestigation.StatusFailed)).Inc()
	return nil
}

// alertFromRow decodes the alert JSON stored on the investigation row.
func alertFromRow(inv *ent.Investigation) (models.AnomalyAlert, error) {
	var alert models.AnomalyAlert
	raw, err := json.Marshal(inv.Alert)
	if err != nil {
		return alert, err
	}
	if err := json.Unmarshal(raw, &alert); err != nil {
		return alert, err
	}
	if err := alert.Validate(); err != nil {
		return alert, err
	}
	return alert, nil
}

// alertUnreadableState builds a minimal event log for rows whose alert
// payload cannot be decoded, so the failure is still traceable.
func alertUnreadableState(inv *ent.Investigation) investigation.State {
	return investigation.NewState(inv.ID, inv.TenantID, models.AnomalyAlert{DatasetID: inv.DatasetID})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, invID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentInvID = invID
	w.lastActivity = time.Now()
}
