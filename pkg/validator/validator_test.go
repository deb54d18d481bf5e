package validator

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasleuth/sleuth/pkg/agent"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
)

type fakeJudge struct {
	scores *agent.JudgeScores
	err    error
}

func (f *fakeJudge) Judge(context.Context, string, string) (*agent.JudgeScores, error) {
	return f.scores, f.err
}

type recordingSignals struct {
	requests []models.CreateTrainingSignalRequest
}

func (r *recordingSignals) WriteSignal(_ context.Context, req models.CreateTrainingSignalRequest) error {
	r.requests = append(r.requests, req)
	return nil
}

func testLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestAssess_CompositeWeights(t *testing.T) {
	v := NewQualityValidator(nil, nil, 0, testLogger())

	a := v.assess(&agent.JudgeScores{
		CausalDepth:   0.8,
		Specificity:   0.6,
		Actionability: 0.5,
	}, false, 0.5)

	// 0.5*0.8 + 0.3*0.6 + 0.2*0.5 = 0.68, no adjustment.
	assert.InDelta(t, 0.68, a.Composite, 1e-9)
	assert.Zero(t, a.Adjustment)
	assert.True(t, a.Passed)
	assert.Equal(t, "actionability", a.LowestDimension)
}

func TestAssess_VagueCauseCap(t *testing.T) {
	v := NewQualityValidator(nil, nil, 0, testLogger())

	a := v.assess(&agent.JudgeScores{
		CausalDepth:   0.9,
		Specificity:   0.9,
		Actionability: 0.9,
		VagueCause:    true,
	}, false, 0.5)

	assert.Equal(t, vagueCauseCap, a.CausalDepth)
	// 0.5*0.4 + 0.3*0.9 + 0.2*0.9 = 0.65
	assert.InDelta(t, 0.65, a.Composite, 1e-9)
}

func TestAssess_DifferentiationAdjustment(t *testing.T) {
	v := NewQualityValidator(nil, nil, 0, testLogger())
	scores := &agent.JudgeScores{CausalDepth: 0.6, Specificity: 0.6, Actionability: 0.6}
	base := 0.6

	t.Run("specific differentiation adds", func(t *testing.T) {
		scores := *scores
		scores.DifferentiatingSpecific = true
		a := v.assess(&scores, true, 0.9)
		assert.InDelta(t, base+0.1, a.Composite, 1e-9)
	})

	t.Run("missing differentiation with high confidence subtracts", func(t *testing.T) {
		a := v.assess(scores, false, 0.9)
		assert.InDelta(t, base-0.1, a.Composite, 1e-9)
		assert.False(t, a.Passed)
	})

	t.Run("missing differentiation with low confidence is neutral", func(t *testing.T) {
		a := v.assess(scores, false, 0.5)
		assert.InDelta(t, base, a.Composite, 1e-9)
	})
}

func TestAssess_CompositeClamped(t *testing.T) {
	v := NewQualityValidator(nil, nil, 0, testLogger())
	a := v.assess(&agent.JudgeScores{
		CausalDepth:             1.0,
		Specificity:             1.0,
		Actionability:           1.0,
		DifferentiatingSpecific: true,
	}, true, 0.9)
	assert.LessOrEqual(t, a.Composite, 1.0)
	assert.False(t, math.Signbit(a.Composite))
}

func TestValidateInterpretation_WritesSignal(t *testing.T) {
	judge := &fakeJudge{scores: &agent.JudgeScores{
		CausalDepth:           0.7,
		Specificity:           0.8,
		Actionability:         0.4,
		ImprovementSuggestion: "Name the triggering job run.",
	}}
	signals := &recordingSignals{}
	v := NewQualityValidator(judge, signals, 0, testLogger())

	ev := investigation.Evidence{HypothesisID: "h1", Confidence: 0.6, Interpretation: "x"}
	a := v.ValidateInterpretation(context.Background(), "tenant-a", "inv-1", ev, "join regression", "SELECT 1")
	require.NotNil(t, a)

	require.Len(t, signals.requests, 1)
	req := signals.requests[0]
	assert.Equal(t, SignalInterpretation, req.SignalType)
	assert.Equal(t, "inv-1", req.InvestigationID)
	require.NotNil(t, req.HypothesisID)
	assert.Equal(t, "h1", *req.HypothesisID)
	assert.Equal(t, a.Composite, req.CompositeScore)
	assert.Equal(t, "Name the triggering job run.", req.ImprovementSuggestion)
}

func TestValidateSynthesis_JudgeFailureIsSwallowed(t *testing.T) {
	v := NewQualityValidator(&fakeJudge{err: errors.New("provider down")}, &recordingSignals{}, 0, testLogger())

	a := v.ValidateSynthesis(context.Background(), "tenant-a", "inv-1",
		&investigation.Finding{InvestigationID: "inv-1"}, "summary")
	assert.Nil(t, a)
}

func TestValidateSynthesis_SignalHasNoHypothesisID(t *testing.T) {
	judge := &fakeJudge{scores: &agent.JudgeScores{
		CausalDepth: 0.9, Specificity: 0.9, Actionability: 0.9,
		ImprovementSuggestion: "none",
	}}
	signals := &recordingSignals{}
	v := NewQualityValidator(judge, signals, 0, testLogger())

	v.ValidateSynthesis(context.Background(), "tenant-a", "inv-1",
		&investigation.Finding{InvestigationID: "inv-1"}, "summary")

	require.Len(t, signals.requests, 1)
	assert.Nil(t, signals.requests[0].HypothesisID)
	assert.Equal(t, SignalSynthesis, signals.requests[0].SignalType)
}
