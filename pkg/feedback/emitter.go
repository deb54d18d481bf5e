// Package feedback appends investigation lifecycle events to the
// tenant-visible feedback log and broadcasts them over Postgres NOTIFY
// so UIs can follow a running investigation without polling.
package feedback

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/datasleuth/sleuth/ent"
	"github.com/datasleuth/sleuth/pkg/models"
)

// FeedbackChannel is the NOTIFY channel all feedback events are
// broadcast on. Listeners filter by tenant_id from the payload.
const FeedbackChannel = "sleuth_feedback"

// notifyPayloadLimit stays under PostgreSQL's 8000-byte NOTIFY cap.
const notifyPayloadLimit = 7900

// Emitter persists feedback events and broadcasts them via NOTIFY.
// Persistence is the source of truth; the broadcast is a best-effort
// nudge and its failure never fails an Emit that persisted.
type Emitter struct {
	client *ent.Client
	db     *sql.DB
	logger *slog.Logger
}

// NewEmitter creates an Emitter. The db parameter is the raw *sql.DB
// from database.Client.DB(), used for pg_notify.
func NewEmitter(client *ent.Client, db *sql.DB, logger *slog.Logger) *Emitter {
	return &Emitter{client: client, db: db, logger: logger.With("component", "feedback")}
}

// Emit appends one event to the feedback log and broadcasts it.
// Satisfies orchestrator.FeedbackEmitter.
func (e *Emitter) Emit(ctx context.Context, req models.EmitFeedbackRequest) error {
	_, err := e.Append(ctx, req)
	return err
}

// Append persists one feedback event and returns the stored row.
func (e *Emitter) Append(ctx context.Context, req models.EmitFeedbackRequest) (*ent.FeedbackEvent, error) {
	if req.TenantID == "" {
		return nil, fmt.Errorf("tenant_id is required")
	}
	if req.EventType == "" {
		return nil, fmt.Errorf("event_type is required")
	}
	actorType := req.ActorType
	if actorType == "" {
		actorType = "system"
	}

	// Feedback must survive a cancelled investigation context.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	eventID := uuid.New().String()
	create := e.client.FeedbackEvent.Create().
		SetID(eventID).
		SetTenantID(req.TenantID).
		SetEventType(req.EventType).
		SetEventData(req.EventData).
		SetActorType(actorType)
	if req.InvestigationID != "" {
		create = create.SetInvestigationID(req.InvestigationID)
	}
	if req.DatasetID != "" {
		create = create.SetDatasetID(req.DatasetID)
	}
	if req.ActorID != "" {
		create = create.SetActorID(req.ActorID)
	}

	event, err := create.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist feedback event: %w", err)
	}

	if err := e.notify(writeCtx, eventID, req); err != nil {
		e.logger.Warn("Feedback NOTIFY failed",
			"event_id", eventID,
			"event_type", req.EventType,
			"error", err)
	}
	return event, nil
}

// notify broadcasts the persisted event on the feedback channel.
func (e *Emitter) notify(ctx context.Context, eventID string, req models.EmitFeedbackRequest) error {
	payload, err := buildNotifyPayload(eventID, req)
	if err != nil {
		return err
	}
	if _, err := e.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", FeedbackChannel, payload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// buildNotifyPayload marshals the full event, falling back to a minimal
// routing envelope when the payload exceeds the NOTIFY size limit.
// Listeners seeing "truncated" fetch the full row by event_id.
func buildNotifyPayload(eventID string, req models.EmitFeedbackRequest) (string, error) {
	full := map[string]any{
		"event_id":   eventID,
		"tenant_id":  req.TenantID,
		"event_type": req.EventType,
		"event_data": req.EventData,
	}
	if req.InvestigationID != "" {
		full["investigation_id"] = req.InvestigationID
	}
	if req.DatasetID != "" {
		full["dataset_id"] = req.DatasetID
	}

	raw, err := json.Marshal(full)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notify payload: %w", err)
	}
	if len(raw) <= notifyPayloadLimit {
		return string(raw), nil
	}

	truncated, err := json.Marshal(map[string]any{
		"event_id":   eventID,
		"tenant_id":  req.TenantID,
		"event_type": req.EventType,
		"truncated":  true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated notify payload: %w", err)
	}
	return string(truncated), nil
}
