package prompt

import (
	"fmt"
	"strings"

	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
)

// Builder builds all prompt text for the agent client and the quality
// judge. Stateless — all state comes from parameters. Thread-safe.
type Builder struct{}

// NewBuilder creates a prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// HypothesisSystemPrompt enumerates the categories, the required output
// fields, and the testability rules.
func (b *Builder) HypothesisSystemPrompt(maxHypotheses int) string {
	var cats strings.Builder
	for _, c := range investigation.Categories {
		cats.WriteString("- ")
		cats.WriteString(string(c))
		cats.WriteString("\n")
	}
	return fmt.Sprintf(hypothesisSystemTemplate, maxHypotheses, strings.TrimRight(cats.String(), "\n"))
}

// HypothesisUserPrompt frames the anomaly per metric type and attaches
// the gathered context.
func (b *Builder) HypothesisUserPrompt(alert models.AnomalyAlert, invCtx investigation.Context) string {
	var sb strings.Builder
	sb.WriteString("## Anomaly\n")
	sb.WriteString(alert.Summary())
	sb.WriteString("\n\n")
	sb.WriteString(metricFraming(alert.Metric))
	sb.WriteString("\n\n## Warehouse schema\n")
	sb.WriteString(invCtx.Schema.ToPromptString())
	if invCtx.Lineage != nil {
		sb.WriteString("\n## Lineage\n")
		sb.WriteString(fmt.Sprintf("Upstream datasets: %s\n", joinOrNone(invCtx.Lineage.Upstream)))
		sb.WriteString(fmt.Sprintf("Downstream datasets: %s\n", joinOrNone(invCtx.Lineage.Downstream)))
	}
	return sb.String()
}

// metricFraming steers the hypothesis space per metric variant.
func metricFraming(m models.MetricSpec) string {
	switch m.MetricType {
	case models.MetricTypeColumn:
		return fmt.Sprintf("The anomalous metric is computed over the column %q. Focus on where NULLs or bad values could be introduced for this column: source extraction, join misses, and filter changes.", m.Column)
	case models.MetricTypeSQLExpression:
		return fmt.Sprintf("The anomalous metric is the SQL expression %q over columns %s. Focus on the input columns and on the expression logic itself (division by zero, changed units, changed casts).",
			m.Expression, joinOrNone(m.ExpressionColumns))
	case models.MetricTypeDBTMetric:
		return fmt.Sprintf("The anomalous metric is the dbt metric %q. Focus on the upstream models feeding it: late or partial model runs, changed model logic, and source freshness.", m.MetricName)
	case models.MetricTypeDescription:
		return fmt.Sprintf("The metric is described as: %s. Infer from the schema which tables and columns are involved before hypothesizing.", m.Description)
	default:
		return ""
	}
}

// QuerySystemPrompt embeds the schema and the SQL output rules.
func (b *Builder) QuerySystemPrompt(schema investigation.SchemaContext) string {
	return fmt.Sprintf(querySystemTemplate, schema.ToPromptString())
}

// QueryUserPrompt asks for the first investigative query of a hypothesis.
func (b *Builder) QueryUserPrompt(h investigation.Hypothesis) string {
	return fmt.Sprintf("Hypothesis: %s\nReasoning: %s\nExpected if true: %s\nExpected if false: %s\n\nWrite the SELECT statement that best tests this hypothesis. You may start from this suggestion or discard it:\n%s",
		h.Title, h.Reasoning, h.ExpectedIfTrue, h.ExpectedIfFalse, h.SuggestedQuery)
}

// ReflexionUserPrompt asks for a corrected query after a failure.
func (b *Builder) ReflexionUserPrompt(h investigation.Hypothesis, previousSQL, previousError string) string {
	return fmt.Sprintf(reflexionTemplate, h.Title, previousSQL, previousError)
}

// InterpretSystemPrompt defines the tri-valued supports semantics and the
// structured subfields.
func (b *Builder) InterpretSystemPrompt() string {
	return interpretSystemPrompt
}

// InterpretUserPrompt attaches the hypothesis, the executed SQL, and the
// rendered result.
func (b *Builder) InterpretUserPrompt(h investigation.Hypothesis, sql, resultSummary string) string {
	return fmt.Sprintf("Hypothesis: %s\nExpected if true: %s\nExpected if false: %s\n\nExecuted query:\n%s\n\nResult:\n%s",
		h.Title, h.ExpectedIfTrue, h.ExpectedIfFalse, sql, resultSummary)
}

// SynthesisSystemPrompt defines the finding shape and confidence calibration.
func (b *Builder) SynthesisSystemPrompt() string {
	return synthesisSystemPrompt
}

// SynthesisUserPrompt attaches the alert and the full evidence list.
func (b *Builder) SynthesisUserPrompt(alert models.AnomalyAlert, evidence []investigation.Evidence) string {
	var sb strings.Builder
	sb.WriteString("## Anomaly\n")
	sb.WriteString(alert.Summary())
	sb.WriteString("\n\n## Evidence gathered\n")
	if len(evidence) == 0 {
		sb.WriteString("No evidence was gathered: every investigative query failed.\n")
	}
	for i, ev := range evidence {
		sb.WriteString(fmt.Sprintf("\n### Evidence %d (hypothesis %s)\n", i+1, ev.HypothesisID))
		sb.WriteString(fmt.Sprintf("Supports hypothesis: %s (confidence %.2f)\n", supportsLabel(ev.Supports), ev.Confidence))
		sb.WriteString("Interpretation: " + ev.Interpretation + "\n")
		if ev.CausalChain != "" {
			sb.WriteString("Mechanism: " + ev.CausalChain + "\n")
		}
		if ev.TriggerIdentified != "" {
			sb.WriteString("Trigger: " + ev.TriggerIdentified + "\n")
		}
		for _, kf := range ev.KeyFindings {
			sb.WriteString("- " + kf + "\n")
		}
	}
	return sb.String()
}

// JudgeSystemPrompt is the fixed scoring rubric.
func (b *Builder) JudgeSystemPrompt() string {
	return judgeSystemPrompt
}

// JudgeInterpretationPrompt frames one Evidence for scoring.
func (b *Builder) JudgeInterpretationPrompt(evidenceJSON, hypothesisTitle, sql string) string {
	return fmt.Sprintf("Score this evidence interpretation.\n\nHypothesis under test: %s\nExecuted query:\n%s\n\nInterpretation artifact:\n%s",
		hypothesisTitle, sql, evidenceJSON)
}

// JudgeSynthesisPrompt frames one Finding for scoring.
func (b *Builder) JudgeSynthesisPrompt(findingJSON, alertSummary string) string {
	return fmt.Sprintf("Score this synthesized finding.\n\nOriginal anomaly: %s\n\nFinding artifact:\n%s",
		alertSummary, findingJSON)
}

// SchemaReminderPrompt is the retry turn after a parse or validation failure.
func (b *Builder) SchemaReminderPrompt(failure string) string {
	return fmt.Sprintf(schemaReminderTemplate, failure)
}

// SQLReminderPrompt is the retry turn after an unusable SQL response.
func (b *Builder) SQLReminderPrompt() string {
	return sqlReminderPrompt
}

func supportsLabel(s *bool) string {
	switch {
	case s == nil:
		return "unknown"
	case *s:
		return "yes"
	default:
		return "no"
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
