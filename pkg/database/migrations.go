package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// Ent cannot express expression indexes, so these run as raw SQL after
// migrations.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Full-text search over synthesized root causes.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_investigations_root_cause_gin
		ON investigations USING gin(to_tsvector('english', COALESCE(root_cause, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create root_cause GIN index: %w", err)
	}

	// Containment queries over feedback payloads (event_data @> ...).
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_feedback_events_event_data_gin
		ON feedback_events USING gin(event_data jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create event_data GIN index: %w", err)
	}

	return nil
}
