package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/datasleuth/sleuth/ent"
	entinvestigation "github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/pkg/config"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID   string
	client  *ent.Client
	store   InvestigationStore
	config  *config.QueueConfig
	runner  InvestigationRunner
	workers []*Worker

	stopCh   chan struct{}
	stopOnce sync.Once

	// Cancel registry: investigation_id → cancel function
	active  map[string]context.CancelFunc
	mu      sync.RWMutex
	started bool

	recovered int
}

// NewWorkerPool creates a new worker pool. The ent client is used for
// health-check counts only; all queue writes go through the store.
func NewWorkerPool(podID string, client *ent.Client, store InvestigationStore, cfg *config.QueueConfig, runner InvestigationRunner) *WorkerPool {
	return &WorkerPool{
		podID:   podID,
		client:  client,
		store:   store,
		config:  cfg,
		runner:  runner,
		workers: make([]*Worker, 0, cfg.WorkerCount),
		stopCh:  make(chan struct{}),
		active:  make(map[string]context.CancelFunc),
	}
}

// Start recovers this pod's orphans and spawns worker goroutines.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	// Investigations this pod left in_progress before a restart go back
	// to pending so any replica can pick them up.
	recovered, err := p.store.RecoverOrphans(ctx, p.podID)
	if err != nil {
		return fmt.Errorf("startup orphan recovery failed: %w", err)
	}
	if recovered > 0 {
		slog.Warn("Recovered orphaned investigations from previous run",
			"pod_id", p.podID, "count", recovered)
		orphansRecovered.Add(float64(recovered))
	}
	p.recovered = recovered

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.store, p.config, p.runner, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current investigations before exiting.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.activeInvestigationIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active investigations to complete",
			"count", len(active),
			"investigation_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })

	slog.Info("Worker pool stopped gracefully")
}

// RegisterInvestigation stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterInvestigation(invID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[invID] = cancel
}

// UnregisterInvestigation removes the cancel function when a run ends.
func (p *WorkerPool) UnregisterInvestigation(invID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, invID)
}

// CancelInvestigation triggers context cancellation for a run on this pod.
// Returns true if the investigation was found and cancelled here.
func (p *WorkerPool) CancelInvestigation(invID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.active[invID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	depth, errQ := p.client.Investigation.Query().
		Where(entinvestigation.StatusEQ(entinvestigation.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	} else {
		queueDepth.Set(float64(depth))
	}

	activeInvs, errA := p.client.Investigation.Query().
		Where(
			entinvestigation.StatusEQ(entinvestigation.StatusInProgress),
			entinvestigation.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active investigations for health check",
			"pod_id", p.podID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeInvs <= p.config.MaxConcurrentInvestigations && dbHealthy

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("active investigations query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:            isHealthy,
		DBReachable:          dbHealthy,
		DBError:              dbError,
		PodID:                p.podID,
		ActiveWorkers:        activeWorkers,
		TotalWorkers:         len(p.workers),
		ActiveInvestigations: activeInvs,
		MaxConcurrent:        p.config.MaxConcurrentInvestigations,
		QueueDepth:           depth,
		WorkerStats:          workerStats,
		OrphansRecovered:     p.recovered,
	}
}

func (p *WorkerPool) activeInvestigationIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	return ids
}
