package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasleuth/sleuth/ent/trainingsignal"
	"github.com/datasleuth/sleuth/pkg/models"
	testdb "github.com/datasleuth/sleuth/test/database"
)

func signalRequest(investigationID string) models.CreateTrainingSignalRequest {
	return models.CreateTrainingSignalRequest{
		TenantID:        "tenant-a",
		InvestigationID: investigationID,
		SignalType:      "interpretation",
		CausalDepth:     0.8,
		Specificity:     0.7,
		Actionability:   0.9,
		CompositeScore:  0.79,
		Passed:          true,
		LowestDimension: "specificity",
	}
}

func TestSignalService_WriteSignal(t *testing.T) {
	client := testdb.NewTestClient(t)
	invSvc := NewInvestigationService(client.Client)
	svc := NewSignalService(client.Client)
	ctx := context.Background()

	createTestInvestigation(t, invSvc, "inv-1")

	req := signalRequest("inv-1")
	hypID := "hyp-1"
	req.HypothesisID = &hypID
	req.ImprovementSuggestion = "name the upstream table"
	require.NoError(t, svc.WriteSignal(ctx, req))

	signals, err := svc.ListByInvestigation(ctx, "inv-1")
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, trainingsignal.SignalTypeInterpretation, signals[0].SignalType)
	assert.Equal(t, 0.79, signals[0].CompositeScore)
	assert.True(t, signals[0].Passed)
	require.NotNil(t, signals[0].HypothesisID)
	assert.Equal(t, "hyp-1", *signals[0].HypothesisID)
	require.NotNil(t, signals[0].ImprovementSuggestion)
	assert.Equal(t, "name the upstream table", *signals[0].ImprovementSuggestion)
}

func TestSignalService_WriteSignalWithoutHypothesis(t *testing.T) {
	client := testdb.NewTestClient(t)
	invSvc := NewInvestigationService(client.Client)
	svc := NewSignalService(client.Client)
	ctx := context.Background()

	createTestInvestigation(t, invSvc, "inv-1")

	req := signalRequest("inv-1")
	req.SignalType = "synthesis"
	require.NoError(t, svc.WriteSignal(ctx, req))

	signals, err := svc.ListByInvestigation(ctx, "inv-1")
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, trainingsignal.SignalTypeSynthesis, signals[0].SignalType)
	assert.Nil(t, signals[0].HypothesisID)
	assert.Nil(t, signals[0].ImprovementSuggestion)
}

func TestSignalService_WriteSignalValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSignalService(client.Client)
	ctx := context.Background()

	t.Run("missing investigation id", func(t *testing.T) {
		req := signalRequest("")
		assert.True(t, IsValidationError(svc.WriteSignal(ctx, req)))
	})

	t.Run("unknown signal type", func(t *testing.T) {
		req := signalRequest("inv-1")
		req.SignalType = "vibes"
		err := svc.WriteSignal(ctx, req)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "vibes")
	})

	t.Run("unknown investigation", func(t *testing.T) {
		err := svc.WriteSignal(ctx, signalRequest("inv-missing"))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSignalService_ListOrdering(t *testing.T) {
	client := testdb.NewTestClient(t)
	invSvc := NewInvestigationService(client.Client)
	svc := NewSignalService(client.Client)
	ctx := context.Background()

	createTestInvestigation(t, invSvc, "inv-1")

	first := signalRequest("inv-1")
	require.NoError(t, svc.WriteSignal(ctx, first))

	second := signalRequest("inv-1")
	second.SignalType = "synthesis"
	require.NoError(t, svc.WriteSignal(ctx, second))

	signals, err := svc.ListByInvestigation(ctx, "inv-1")
	require.NoError(t, err)
	require.Len(t, signals, 2)
	assert.Equal(t, trainingsignal.SignalTypeInterpretation, signals[0].SignalType)
	assert.Equal(t, trainingsignal.SignalTypeSynthesis, signals[1].SignalType)

	t.Run("other investigation is empty", func(t *testing.T) {
		signals, err := svc.ListByInvestigation(ctx, "inv-other")
		require.NoError(t, err)
		assert.Empty(t, signals)
	})
}
