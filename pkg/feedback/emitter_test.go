package feedback

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasleuth/sleuth/ent/feedbackevent"
	"github.com/datasleuth/sleuth/pkg/models"
	testdb "github.com/datasleuth/sleuth/test/database"
)

func newTestEmitter(t *testing.T) *Emitter {
	client := testdb.NewTestClient(t)
	return NewEmitter(client.Client, client.DB(), slog.New(slog.DiscardHandler))
}

func TestEmitter_Append(t *testing.T) {
	emitter := newTestEmitter(t)
	ctx := context.Background()

	event, err := emitter.Append(ctx, models.EmitFeedbackRequest{
		TenantID:        "tenant-a",
		EventType:       "investigation_started",
		EventData:       map[string]any{"anomaly_type": "null_rate"},
		InvestigationID: "inv-1",
		DatasetID:       "sales.orders",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "tenant-a", event.TenantID)
	assert.Equal(t, "investigation_started", event.EventType)
	assert.Equal(t, "null_rate", event.EventData["anomaly_type"])
	assert.Equal(t, "system", event.ActorType)
	assert.Nil(t, event.ActorID)

	stored, err := emitter.client.FeedbackEvent.Query().
		Where(feedbackevent.InvestigationIDEQ("inv-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, event.ID, stored.ID)
	assert.Equal(t, "sales.orders", stored.DatasetID)
}

func TestEmitter_AppendWithActor(t *testing.T) {
	emitter := newTestEmitter(t)

	event, err := emitter.Append(context.Background(), models.EmitFeedbackRequest{
		TenantID:  "tenant-a",
		EventType: "finding_acknowledged",
		ActorID:   "user-7",
		ActorType: "human",
	})
	require.NoError(t, err)
	require.NotNil(t, event.ActorID)
	assert.Equal(t, "user-7", *event.ActorID)
	assert.Equal(t, "human", event.ActorType)
}

func TestEmitter_Validation(t *testing.T) {
	emitter := newTestEmitter(t)
	ctx := context.Background()

	_, err := emitter.Append(ctx, models.EmitFeedbackRequest{EventType: "investigation_started"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tenant_id")

	_, err = emitter.Append(ctx, models.EmitFeedbackRequest{TenantID: "tenant-a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event_type")
}

func TestEmitter_SurvivesCancelledContext(t *testing.T) {
	emitter := newTestEmitter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emitter.Emit(ctx, models.EmitFeedbackRequest{
		TenantID:  "tenant-a",
		EventType: "investigation_completed",
	})
	require.NoError(t, err)
}

func TestBuildNotifyPayload(t *testing.T) {
	t.Run("full payload fits", func(t *testing.T) {
		payload, err := buildNotifyPayload("evt-1", models.EmitFeedbackRequest{
			TenantID:        "tenant-a",
			EventType:       "context_gathered",
			EventData:       map[string]any{"tables": 3},
			InvestigationID: "inv-1",
		})
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
		assert.Equal(t, "evt-1", decoded["event_id"])
		assert.Equal(t, "inv-1", decoded["investigation_id"])
		assert.NotContains(t, decoded, "truncated")
	})

	t.Run("oversized payload collapses to routing envelope", func(t *testing.T) {
		payload, err := buildNotifyPayload("evt-1", models.EmitFeedbackRequest{
			TenantID:  "tenant-a",
			EventType: "synthesis_completed",
			EventData: map[string]any{"blob": strings.Repeat("x", 10000)},
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(payload), notifyPayloadLimit)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
		assert.Equal(t, true, decoded["truncated"])
		assert.Equal(t, "evt-1", decoded["event_id"])
		assert.NotContains(t, decoded, "event_data")
	})
}
