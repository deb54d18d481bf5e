// Package validator scores the quality of agent outputs with an
// LLM-as-judge rubric and records the dimensional breakdown as training
// signals. Validation runs after the call it judges and never affects
// the investigation outcome: every failure here is logged and swallowed.
package validator

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/datasleuth/sleuth/pkg/agent"
	"github.com/datasleuth/sleuth/pkg/agent/prompt"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
)

// Dimension weights of the composite score.
const (
	weightCausalDepth   = 0.5
	weightSpecificity   = 0.3
	weightActionability = 0.2
)

// vagueCauseCap caps the causal-depth dimension when the judged cause is
// only a generic category ("ETL failure") with no concrete trigger.
const vagueCauseCap = 0.4

// differentiationAdjustment is applied to the composite: positive when
// the differentiating evidence is specific, negative when it is missing
// despite high claimed confidence.
const differentiationAdjustment = 0.1

// DefaultPassThreshold is the composite score required to pass.
const DefaultPassThreshold = 0.6

// Signal types recorded with each assessment.
const (
	SignalInterpretation = "interpretation"
	SignalSynthesis      = "synthesis"
)

// Judge is the LLM rubric call the validator depends on. Implemented by
// *agent.Client.
type Judge interface {
	Judge(ctx context.Context, invID, userPrompt string) (*agent.JudgeScores, error)
}

// SignalWriter persists training signals. Implemented by the signal
// service; nil disables persistence.
type SignalWriter interface {
	WriteSignal(ctx context.Context, req models.CreateTrainingSignalRequest) error
}

// QualityAssessment is the result of one validation.
type QualityAssessment struct {
	Passed                bool    `json:"passed"`
	Composite             float64 `json:"composite"`
	CausalDepth           float64 `json:"causal_depth"`
	Specificity           float64 `json:"specificity"`
	Actionability         float64 `json:"actionability"`
	Adjustment            float64 `json:"adjustment"`
	LowestDimension       string  `json:"lowest_dimension"`
	ImprovementSuggestion string  `json:"improvement_suggestion"`
}

// QualityValidator runs the judge rubric over interpretations and
// syntheses.
type QualityValidator struct {
	judge         Judge
	prompts       *prompt.Builder
	signals       SignalWriter
	passThreshold float64
	logger        *slog.Logger
}

// NewQualityValidator creates a validator. signals may be nil.
// passThreshold of zero means the default.
func NewQualityValidator(judge Judge, signals SignalWriter, passThreshold float64, logger *slog.Logger) *QualityValidator {
	if passThreshold <= 0 {
		passThreshold = DefaultPassThreshold
	}
	return &QualityValidator{
		judge:         judge,
		prompts:       prompt.NewBuilder(),
		signals:       signals,
		passThreshold: passThreshold,
		logger:        logger,
	}
}

// ValidateInterpretation scores one Evidence and records the training
// signal. Returns nil when the judge call fails — validation never
// aborts an investigation.
func (v *QualityValidator) ValidateInterpretation(ctx context.Context, tenantID, invID string, ev investigation.Evidence, hypothesisTitle, sql string) *QualityAssessment {
	artifact, err := json.Marshal(ev)
	if err != nil {
		v.logger.Warn("Failed to marshal evidence for validation", "investigation_id", invID, "error", err)
		return nil
	}

	scores, err := v.judge.Judge(ctx, invID, v.prompts.JudgeInterpretationPrompt(string(artifact), hypothesisTitle, sql))
	if err != nil {
		v.logger.Warn("Interpretation validation failed", "investigation_id", invID, "hypothesis_id", ev.HypothesisID, "error", err)
		return nil
	}

	assessment := v.assess(scores, ev.DifferentiatingEvidence != "", ev.Confidence)
	v.writeSignal(ctx, tenantID, invID, &ev.HypothesisID, SignalInterpretation, assessment)
	return assessment
}

// ValidateSynthesis scores the terminal Finding and records the
// training signal. Returns nil when the judge call fails.
func (v *QualityValidator) ValidateSynthesis(ctx context.Context, tenantID, invID string, finding *investigation.Finding, alertSummary string) *QualityAssessment {
	artifact, err := json.Marshal(finding)
	if err != nil {
		v.logger.Warn("Failed to marshal finding for validation", "investigation_id", invID, "error", err)
		return nil
	}

	scores, err := v.judge.Judge(ctx, invID, v.prompts.JudgeSynthesisPrompt(string(artifact), alertSummary))
	if err != nil {
		v.logger.Warn("Synthesis validation failed", "investigation_id", invID, "error", err)
		return nil
	}

	hasDifferentiation := false
	for _, ev := range finding.Evidence {
		if ev.DifferentiatingEvidence != "" {
			hasDifferentiation = true
			break
		}
	}
	assessment := v.assess(scores, hasDifferentiation, finding.Confidence)
	v.writeSignal(ctx, tenantID, invID, nil, SignalSynthesis, assessment)
	return assessment
}

// assess turns raw judge scores into the weighted composite with the
// vague-cause cap and the differentiation adjustment.
func (v *QualityValidator) assess(scores *agent.JudgeScores, hasDifferentiation bool, claimedConfidence float64) *QualityAssessment {
	causalDepth := scores.CausalDepth
	if scores.VagueCause && causalDepth > vagueCauseCap {
		causalDepth = vagueCauseCap
	}

	composite := weightCausalDepth*causalDepth +
		weightSpecificity*scores.Specificity +
		weightActionability*scores.Actionability

	adjustment := 0.0
	switch {
	case hasDifferentiation && scores.DifferentiatingSpecific:
		adjustment = differentiationAdjustment
	case !hasDifferentiation && claimedConfidence > 0.7:
		adjustment = -differentiationAdjustment
	}
	composite = clamp01(composite + adjustment)

	return &QualityAssessment{
		Passed:                composite >= v.passThreshold,
		Composite:             composite,
		CausalDepth:           causalDepth,
		Specificity:           scores.Specificity,
		Actionability:         scores.Actionability,
		Adjustment:            adjustment,
		LowestDimension:       lowestDimension(causalDepth, scores.Specificity, scores.Actionability),
		ImprovementSuggestion: scores.ImprovementSuggestion,
	}
}

// writeSignal persists the assessment, best-effort.
func (v *QualityValidator) writeSignal(ctx context.Context, tenantID, invID string, hypothesisID *string, signalType string, a *QualityAssessment) {
	if v.signals == nil {
		return
	}
	req := models.CreateTrainingSignalRequest{
		TenantID:              tenantID,
		InvestigationID:       invID,
		HypothesisID:          hypothesisID,
		SignalType:            signalType,
		CausalDepth:           a.CausalDepth,
		Specificity:           a.Specificity,
		Actionability:         a.Actionability,
		CompositeScore:        a.Composite,
		Passed:                a.Passed,
		LowestDimension:       a.LowestDimension,
		ImprovementSuggestion: a.ImprovementSuggestion,
	}
	if err := v.signals.WriteSignal(ctx, req); err != nil {
		v.logger.Warn("Failed to write training signal",
			"investigation_id", invID, "signal_type", signalType, "error", err)
	}
}

func lowestDimension(causalDepth, specificity, actionability float64) string {
	lowest, name := causalDepth, "causal_depth"
	if specificity < lowest {
		lowest, name = specificity, "specificity"
	}
	if actionability < lowest {
		name = "actionability"
	}
	return name
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
