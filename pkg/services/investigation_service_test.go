package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entinvestigation "github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
	testdb "github.com/datasleuth/sleuth/test/database"
)

func testAlert() models.AnomalyAlert {
	return models.AnomalyAlert{
		DatasetID:     "sales.orders",
		Metric:        models.MetricFromColumn("user_id"),
		AnomalyType:   "null_rate",
		ExpectedValue: 0.5,
		ActualValue:   12.3,
		DeviationPct:  2360,
		AnomalyDate:   "2024-01-15",
		Severity:      "high",
	}
}

func createTestInvestigation(t *testing.T, svc *InvestigationService, id string) {
	t.Helper()
	_, err := svc.CreateInvestigation(context.Background(), models.CreateInvestigationRequest{
		InvestigationID: id,
		TenantID:        "tenant-a",
		Alert:           testAlert(),
	})
	require.NoError(t, err)
}

func TestInvestigationService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvestigationService(client.Client)
	ctx := context.Background()

	inv, err := svc.CreateInvestigation(ctx, models.CreateInvestigationRequest{
		InvestigationID: "inv-1",
		TenantID:        "tenant-a",
		Alert:           testAlert(),
	})
	require.NoError(t, err)
	assert.Equal(t, entinvestigation.StatusPending, inv.Status)
	assert.Equal(t, "sales.orders", inv.DatasetID)
	assert.Equal(t, "null_rate", inv.Alert["anomaly_type"])

	t.Run("duplicate id", func(t *testing.T) {
		_, err := svc.CreateInvestigation(ctx, models.CreateInvestigationRequest{
			InvestigationID: "inv-1",
			TenantID:        "tenant-a",
			Alert:           testAlert(),
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("missing tenant", func(t *testing.T) {
		_, err := svc.CreateInvestigation(ctx, models.CreateInvestigationRequest{
			InvestigationID: "inv-2",
			Alert:           testAlert(),
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("invalid alert", func(t *testing.T) {
		_, err := svc.CreateInvestigation(ctx, models.CreateInvestigationRequest{
			InvestigationID: "inv-3",
			TenantID:        "tenant-a",
			Alert:           models.AnomalyAlert{},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestInvestigationService_GetNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvestigationService(client.Client)

	_, err := svc.GetInvestigation(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvestigationService_ClaimNextPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvestigationService(client.Client)
	ctx := context.Background()

	createTestInvestigation(t, svc, "inv-old")
	createTestInvestigation(t, svc, "inv-new")

	// Oldest pending row is claimed first.
	claimed, err := svc.ClaimNextPending(ctx, "pod-1", 10)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, "inv-old", claimed.ID)
	assert.Equal(t, entinvestigation.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-1", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)

	t.Run("global cap blocks further claims", func(t *testing.T) {
		claimed, err := svc.ClaimNextPending(ctx, "pod-2", 1)
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	claimed, err = svc.ClaimNextPending(ctx, "pod-2", 10)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, "inv-new", claimed.ID)

	t.Run("nothing left to claim", func(t *testing.T) {
		claimed, err := svc.ClaimNextPending(ctx, "pod-3", 10)
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})
}

func finishedState(id string) investigation.State {
	state := investigation.NewState(id, "tenant-a", testAlert())
	return state.
		Append(investigation.NewInvestigationStarted("sales.orders", "null_rate")).
		Append(investigation.NewSynthesisCompleted(nil, 0.4))
}

func TestInvestigationService_Complete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvestigationService(client.Client)
	ctx := context.Background()

	createTestInvestigation(t, svc, "inv-1")
	_, err := svc.ClaimNextPending(ctx, "pod-1", 10)
	require.NoError(t, err)

	rootCause := "stg_users ETL stalled"
	finding := &investigation.Finding{
		InvestigationID: "inv-1",
		Status:          investigation.FindingCompleted,
		RootCause:       &rootCause,
		Confidence:      0.88,
		DurationSeconds: 42.5,
	}

	require.NoError(t, svc.CompleteInvestigation(ctx, "inv-1", finding, finishedState("inv-1")))

	inv, err := svc.GetInvestigation(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, entinvestigation.StatusCompleted, inv.Status)
	require.NotNil(t, inv.RootCause)
	assert.Equal(t, rootCause, *inv.RootCause)
	require.NotNil(t, inv.Confidence)
	assert.Equal(t, 0.88, *inv.Confidence)
	assert.Nil(t, inv.PodID)
	assert.NotNil(t, inv.CompletedAt)
	require.Len(t, inv.Events, 2)
	assert.Equal(t, "investigation_started", inv.Events[0]["type"])
}

func TestInvestigationService_CompleteInconclusive(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvestigationService(client.Client)
	ctx := context.Background()

	createTestInvestigation(t, svc, "inv-1")

	finding := &investigation.Finding{
		InvestigationID: "inv-1",
		Status:          investigation.FindingInconclusive,
		Confidence:      0.4,
	}
	require.NoError(t, svc.CompleteInvestigation(ctx, "inv-1", finding, finishedState("inv-1")))

	inv, err := svc.GetInvestigation(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, entinvestigation.StatusInconclusive, inv.Status)
	assert.Nil(t, inv.RootCause)
}

func TestInvestigationService_FailSchemaDiscovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvestigationService(client.Client)
	ctx := context.Background()

	createTestInvestigation(t, svc, "inv-1")

	state := investigation.NewState("inv-1", "tenant-a", testAlert()).
		Append(investigation.NewInvestigationStarted("sales.orders", "null_rate")).
		Append(investigation.NewSchemaDiscoveryFailed("no tables discovered"))

	require.NoError(t, svc.FailInvestigation(ctx, "inv-1", state, "no tables discovered"))

	inv, err := svc.GetInvestigation(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, entinvestigation.StatusSchemaDiscoveryFailed, inv.Status)
	require.NotNil(t, inv.ErrorMessage)
	assert.Equal(t, "no tables discovered", *inv.ErrorMessage)
}

func TestInvestigationService_RecoverOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvestigationService(client.Client)
	ctx := context.Background()

	createTestInvestigation(t, svc, "inv-mine")
	createTestInvestigation(t, svc, "inv-other")

	_, err := svc.ClaimNextPending(ctx, "pod-1", 10)
	require.NoError(t, err)
	_, err = svc.ClaimNextPending(ctx, "pod-2", 10)
	require.NoError(t, err)

	// Only pod-1's row is recovered.
	count, err := svc.RecoverOrphans(ctx, "pod-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	mine, err := svc.GetInvestigation(ctx, "inv-mine")
	require.NoError(t, err)
	assert.Equal(t, entinvestigation.StatusPending, mine.Status)
	assert.Nil(t, mine.PodID)

	other, err := svc.GetInvestigation(ctx, "inv-other")
	require.NoError(t, err)
	assert.Equal(t, entinvestigation.StatusInProgress, other.Status)
}

func TestInvestigationService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInvestigationService(client.Client)
	ctx := context.Background()

	createTestInvestigation(t, svc, "inv-1")
	createTestInvestigation(t, svc, "inv-2")
	_, err := svc.ClaimNextPending(ctx, "pod-1", 10)
	require.NoError(t, err)

	t.Run("filter by status", func(t *testing.T) {
		list, err := svc.ListInvestigations(ctx, models.InvestigationFilters{Status: "pending"})
		require.NoError(t, err)
		assert.Equal(t, 1, list.TotalCount)
		require.Len(t, list.Investigations, 1)
		assert.Equal(t, "inv-2", list.Investigations[0].ID)
	})

	t.Run("filter by tenant", func(t *testing.T) {
		list, err := svc.ListInvestigations(ctx, models.InvestigationFilters{TenantID: "tenant-a"})
		require.NoError(t, err)
		assert.Equal(t, 2, list.TotalCount)
	})

	t.Run("pagination", func(t *testing.T) {
		list, err := svc.ListInvestigations(ctx, models.InvestigationFilters{Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, list.TotalCount)
		assert.Len(t, list.Investigations, 1)
	})

	t.Run("no matches", func(t *testing.T) {
		list, err := svc.ListInvestigations(ctx, models.InvestigationFilters{TenantID: "tenant-z"})
		require.NoError(t, err)
		assert.Zero(t, list.TotalCount)
		assert.Empty(t, list.Investigations)
	})

	t.Run("time window", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		list, err := svc.ListInvestigations(ctx, models.InvestigationFilters{StartedAfter: &future})
		require.NoError(t, err)
		assert.Zero(t, list.TotalCount)
	})
}
