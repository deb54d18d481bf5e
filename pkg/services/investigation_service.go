package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/datasleuth/sleuth/ent"
	entinvestigation "github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
)

// InvestigationService manages investigation rows: intake, the worker
// claim loop, and terminal persistence of orchestrator results.
type InvestigationService struct {
	client *ent.Client
}

// NewInvestigationService creates a new InvestigationService
func NewInvestigationService(client *ent.Client) *InvestigationService {
	return &InvestigationService{client: client}
}

// InvestigationList is one page of investigations plus the total count.
type InvestigationList struct {
	Investigations []*ent.Investigation
	TotalCount     int
	Limit          int
	Offset         int
}

// CreateInvestigation enqueues a new pending investigation.
func (s *InvestigationService) CreateInvestigation(httpCtx context.Context, req models.CreateInvestigationRequest) (*ent.Investigation, error) {
	if req.InvestigationID == "" {
		return nil, NewValidationError("investigation_id", "required")
	}
	if req.TenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if err := req.Alert.Validate(); err != nil {
		return nil, NewValidationError("alert", err.Error())
	}

	alertJSON, err := toJSONMap(req.Alert)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal alert: %w", err)
	}

	// Background context with timeout so the enqueue survives a dropped
	// HTTP request.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(httpCtx), 10*time.Second)
	defer cancel()

	inv, err := s.client.Investigation.Create().
		SetID(req.InvestigationID).
		SetTenantID(req.TenantID).
		SetDatasetID(req.Alert.DatasetID).
		SetAlert(alertJSON).
		SetStatus(entinvestigation.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create investigation: %w", err)
	}
	return inv, nil
}

// GetInvestigation retrieves an investigation by ID.
func (s *InvestigationService) GetInvestigation(ctx context.Context, id string) (*ent.Investigation, error) {
	inv, err := s.client.Investigation.Query().
		Where(entinvestigation.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get investigation: %w", err)
	}
	return inv, nil
}

// ListInvestigations lists investigations with filtering and pagination.
func (s *InvestigationService) ListInvestigations(ctx context.Context, filters models.InvestigationFilters) (*InvestigationList, error) {
	query := s.client.Investigation.Query()

	if filters.TenantID != "" {
		query = query.Where(entinvestigation.TenantIDEQ(filters.TenantID))
	}
	if filters.Status != "" {
		query = query.Where(entinvestigation.StatusEQ(entinvestigation.Status(filters.Status)))
	}
	if filters.DatasetID != "" {
		query = query.Where(entinvestigation.DatasetIDEQ(filters.DatasetID))
	}
	if filters.StartedAfter != nil {
		query = query.Where(entinvestigation.StartedAtGTE(*filters.StartedAfter))
	}
	if filters.StartedBefore != nil {
		query = query.Where(entinvestigation.StartedAtLT(*filters.StartedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count investigations: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	investigations, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(entinvestigation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list investigations: %w", err)
	}

	return &InvestigationList{
		Investigations: investigations,
		TotalCount:     totalCount,
		Limit:          limit,
		Offset:         offset,
	}, nil
}

// ClaimNextPending atomically claims the oldest pending investigation for
// the given pod. Returns nil when nothing is claimable: no pending rows,
// or the global in-progress cap is reached.
// Note: this uses a conditional-update transaction. Under very high
// concurrency, switch to UPDATE ... RETURNING with FOR UPDATE SKIP LOCKED.
func (s *InvestigationService) ClaimNextPending(ctx context.Context, podID string, maxConcurrent int) (*ent.Investigation, error) {
	claimCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Global cap across all replicas.
	if maxConcurrent > 0 {
		inProgress, err := tx.Investigation.Query().
			Where(entinvestigation.StatusEQ(entinvestigation.StatusInProgress)).
			Count(claimCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to count in-progress investigations: %w", err)
		}
		if inProgress >= maxConcurrent {
			return nil, nil
		}
	}

	inv, err := tx.Investigation.Query().
		Where(entinvestigation.StatusEQ(entinvestigation.StatusPending)).
		Order(ent.Asc(entinvestigation.FieldCreatedAt)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // Nothing pending
		}
		return nil, fmt.Errorf("failed to query pending investigation: %w", err)
	}

	// Conditional update: only claim if still pending.
	count, err := tx.Investigation.Update().
		Where(
			entinvestigation.IDEQ(inv.ID),
			entinvestigation.StatusEQ(entinvestigation.StatusPending),
		).
		SetStatus(entinvestigation.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(time.Now()).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim investigation: %w", err)
	}
	if count == 0 {
		// Another replica won the race.
		return nil, nil
	}

	inv, err = tx.Investigation.Get(claimCtx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed investigation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return inv, nil
}

// CompleteInvestigation persists a finished run: the finding, the full
// event log, and the terminal status derived from the finding.
func (s *InvestigationService) CompleteInvestigation(ctx context.Context, id string, finding *investigation.Finding, state investigation.State) error {
	findingJSON, err := toJSONMap(finding)
	if err != nil {
		return fmt.Errorf("failed to marshal finding: %w", err)
	}
	events, err := eventsToJSON(state)
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	update := s.client.Investigation.UpdateOneID(id).
		SetStatus(statusFromFinding(finding.Status)).
		SetFinding(findingJSON).
		SetEvents(events).
		SetConfidence(finding.Confidence).
		SetDurationSeconds(finding.DurationSeconds).
		SetCompletedAt(time.Now()).
		ClearPodID()
	if finding.RootCause != nil {
		update = update.SetRootCause(*finding.RootCause)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete investigation: %w", err)
	}
	return nil
}

// FailInvestigation persists a run that terminated without a finding.
// The terminal status comes from the event log, so schema discovery
// failures keep their distinct status.
func (s *InvestigationService) FailInvestigation(ctx context.Context, id string, state investigation.State, errMsg string) error {
	events, err := eventsToJSON(state)
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}

	status := entinvestigation.StatusFailed
	if state.Status() == investigation.StatusSchemaFail {
		status = entinvestigation.StatusSchemaDiscoveryFailed
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	err = s.client.Investigation.UpdateOneID(id).
		SetStatus(status).
		SetEvents(events).
		SetErrorMessage(errMsg).
		SetCompletedAt(time.Now()).
		ClearPodID().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fail investigation: %w", err)
	}
	return nil
}

// RecoverOrphans re-queues investigations this pod left in_progress in a
// previous life. Called once at startup, before the claim loop starts.
func (s *InvestigationService) RecoverOrphans(ctx context.Context, podID string) (int, error) {
	count, err := s.client.Investigation.Update().
		Where(
			entinvestigation.StatusEQ(entinvestigation.StatusInProgress),
			entinvestigation.PodIDEQ(podID),
		).
		SetStatus(entinvestigation.StatusPending).
		ClearPodID().
		ClearStartedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover orphaned investigations: %w", err)
	}
	return count, nil
}

// statusFromFinding maps a finding status onto the row status.
func statusFromFinding(fs investigation.FindingStatus) entinvestigation.Status {
	switch fs {
	case investigation.FindingCompleted:
		return entinvestigation.StatusCompleted
	case investigation.FindingInconclusive:
		return entinvestigation.StatusInconclusive
	default:
		return entinvestigation.StatusFailed
	}
}

// toJSONMap converts a struct to the map shape ent JSON fields store.
func toJSONMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// eventsToJSON converts the event log to the slice shape the events
// column stores.
func eventsToJSON(state investigation.State) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(state.Events)
	if err != nil {
		return nil, err
	}
	var events []map[string]interface{}
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, err
	}
	return events, nil
}
