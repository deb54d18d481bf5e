package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/pkg/config"
	"github.com/datasleuth/sleuth/pkg/database"
	"github.com/datasleuth/sleuth/pkg/models"
	"github.com/datasleuth/sleuth/pkg/services"
	testdb "github.com/datasleuth/sleuth/test/database"
)

func setupRetention(t *testing.T) (*database.Client, *services.InvestigationService, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	invService := services.NewInvestigationService(client.Client)

	cfg := &config.RetentionConfig{
		CheckInterval:    1 * time.Hour,
		InvestigationTTL: 90 * 24 * time.Hour,
		FeedbackEventTTL: 1 * time.Hour,
	}
	svc := NewService(cfg, services.NewRetentionService(client.Client))
	return client, invService, svc
}

func createInvestigation(t *testing.T, invService *services.InvestigationService, id string) {
	t.Helper()
	_, err := invService.CreateInvestigation(context.Background(), models.CreateInvestigationRequest{
		InvestigationID: id,
		TenantID:        "tenant-a",
		Alert: models.AnomalyAlert{
			DatasetID:     "sales.orders",
			Metric:        models.MetricFromColumn("user_id"),
			AnomalyType:   "null_rate",
			ExpectedValue: 0.5,
			ActualValue:   12.3,
			DeviationPct:  2360,
			AnomalyDate:   "2024-01-15",
			Severity:      "high",
		},
	})
	require.NoError(t, err)
}

func TestService_PurgesOldCompletedInvestigations(t *testing.T) {
	client, invService, svc := setupRetention(t)
	ctx := context.Background()

	createInvestigation(t, invService, "inv-old")
	err := client.Investigation.UpdateOneID("inv-old").
		SetStatus(investigation.StatusCompleted).
		SetCompletedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	_, err = invService.GetInvestigation(ctx, "inv-old")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PreservesRecentAndNonTerminalInvestigations(t *testing.T) {
	client, invService, svc := setupRetention(t)
	ctx := context.Background()

	// Recently completed: inside the TTL.
	createInvestigation(t, invService, "inv-recent")
	err := client.Investigation.UpdateOneID("inv-recent").
		SetStatus(investigation.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	// Still pending: never eligible regardless of age.
	createInvestigation(t, invService, "inv-pending")

	svc.runAll(ctx)

	_, err = invService.GetInvestigation(ctx, "inv-recent")
	assert.NoError(t, err)
	_, err = invService.GetInvestigation(ctx, "inv-pending")
	assert.NoError(t, err)
}

func TestService_PurgesOldFeedbackEvents(t *testing.T) {
	client, _, svc := setupRetention(t)
	ctx := context.Background()

	_, err := client.FeedbackEvent.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-a").
		SetEventType("investigation_completed").
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.FeedbackEvent.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-a").
		SetEventType("investigation_started").
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.FeedbackEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1, "old event should be deleted, recent event preserved")
	assert.Equal(t, "investigation_started", remaining[0].EventType)
}
