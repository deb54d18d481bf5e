package services

import (
	"context"
	"fmt"
	"time"

	"github.com/datasleuth/sleuth/ent"
	entfeedbackevent "github.com/datasleuth/sleuth/ent/feedbackevent"
	entinvestigation "github.com/datasleuth/sleuth/ent/investigation"
)

// RetentionService deletes rows past their retention window. Only
// terminal investigations are eligible; pending and in-progress rows are
// never touched.
type RetentionService struct {
	client *ent.Client
}

// NewRetentionService creates a new RetentionService
func NewRetentionService(client *ent.Client) *RetentionService {
	return &RetentionService{client: client}
}

// terminalStatuses are the statuses a retention pass may delete.
var terminalStatuses = []entinvestigation.Status{
	entinvestigation.StatusCompleted,
	entinvestigation.StatusInconclusive,
	entinvestigation.StatusFailed,
	entinvestigation.StatusSchemaDiscoveryFailed,
}

// PurgeInvestigationsBefore deletes terminal investigations completed
// before the cutoff. Training signals go with them via the FK cascade.
func (s *RetentionService) PurgeInvestigationsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	deleted, err := s.client.Investigation.Delete().
		Where(
			entinvestigation.StatusIn(terminalStatuses...),
			entinvestigation.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge investigations: %w", err)
	}
	return deleted, nil
}

// PurgeFeedbackEventsBefore deletes feedback log rows created before the
// cutoff. The log is append-only, so this is the only delete path.
func (s *RetentionService) PurgeFeedbackEventsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	deleted, err := s.client.FeedbackEvent.Delete().
		Where(entfeedbackevent.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge feedback events: %w", err)
	}
	return deleted, nil
}
