// Package queue provides the DB-backed investigation queue: a pool of
// workers that claim pending investigations, run them through the
// orchestrator, and persist the outcome.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/datasleuth/sleuth/ent"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
	"github.com/datasleuth/sleuth/pkg/orchestrator"
)

// Sentinel errors for queue operations.
var (
	// ErrNoInvestigationsAvailable indicates nothing is claimable right now:
	// the queue is empty or the global concurrency cap is reached.
	ErrNoInvestigationsAvailable = errors.New("no investigations available")
)

// InvestigationRunner runs one claimed investigation to completion.
// Implemented by *orchestrator.Orchestrator.
type InvestigationRunner interface {
	Run(ctx context.Context, invID, tenantID string, alert models.AnomalyAlert) (orchestrator.Result, error)
}

// InvestigationStore is the subset of services.InvestigationService the
// queue needs: claiming and terminal persistence.
type InvestigationStore interface {
	ClaimNextPending(ctx context.Context, podID string, maxConcurrent int) (*ent.Investigation, error)
	CompleteInvestigation(ctx context.Context, id string, finding *investigation.Finding, state investigation.State) error
	FailInvestigation(ctx context.Context, id string, state investigation.State, errMsg string) error
	RecoverOrphans(ctx context.Context, podID string) (int, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy            bool           `json:"is_healthy"`
	DBReachable          bool           `json:"db_reachable"`
	DBError              string         `json:"db_error,omitempty"`
	PodID                string         `json:"pod_id"`
	ActiveWorkers        int            `json:"active_workers"`
	TotalWorkers         int            `json:"total_workers"`
	ActiveInvestigations int            `json:"active_investigations"`
	MaxConcurrent        int            `json:"max_concurrent"`
	QueueDepth           int            `json:"queue_depth"`
	WorkerStats          []WorkerHealth `json:"worker_stats"`
	OrphansRecovered     int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                      string    `json:"id"`
	Status                  string    `json:"status"` // "idle" or "working"
	CurrentInvestigationID  string    `json:"current_investigation_id,omitempty"`
	InvestigationsProcessed int       `json:"investigations_processed"`
	LastActivity            time.Time `json:"last_activity"`
}
