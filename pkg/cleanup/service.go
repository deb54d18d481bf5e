// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/datasleuth/sleuth/pkg/config"
	"github.com/datasleuth/sleuth/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes terminal investigations past their TTL (training signals
//     go with them via the FK cascade)
//   - Deletes feedback log rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config    *config.RetentionConfig
	retention *services.RetentionService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, retention *services.RetentionService) *Service {
	return &Service{
		config:    cfg,
		retention: retention,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"investigation_ttl", s.config.InvestigationTTL,
		"feedback_event_ttl", s.config.FeedbackEventTTL,
		"interval", s.config.CheckInterval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeInvestigations(ctx)
	s.purgeFeedbackEvents(ctx)
}

// The purge passes run on a background context so an in-flight delete is
// not cut off mid-statement by shutdown.

func (s *Service) purgeInvestigations(_ context.Context) {
	cutoff := time.Now().Add(-s.config.InvestigationTTL)
	count, err := s.retention.PurgeInvestigationsBefore(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: investigation purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old investigations", "count", count)
	}
}

func (s *Service) purgeFeedbackEvents(_ context.Context) {
	cutoff := time.Now().Add(-s.config.FeedbackEventTTL)
	count, err := s.retention.PurgeFeedbackEventsBefore(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: feedback event purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old feedback events", "count", count)
	}
}
