// Package agent is the facade over the LLM sidecar. It exposes the four
// investigation operations — hypothesize, query, interpret, synthesize —
// each returning a statically typed structured output, plus the quality
// judge call. Structured outputs are decoded from JSON, validated with
// struct tags, and retried with a schema-reminder turn before giving up.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/datasleuth/sleuth/pkg/agent/prompt"
	"github.com/datasleuth/sleuth/pkg/config"
	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
)

// defaultSchemaRetries is the number of schema-reminder turns after a
// parse or validation failure before the operation gives up. The output
// depends on the model's context window, not elapsed time, so backoff
// would add nothing.
const defaultSchemaRetries = 2

// maxRenderedRows caps how many result rows are quoted in the
// interpretation prompt.
const maxRenderedRows = 50

// Client is the agent facade. Safe for concurrent use.
type Client struct {
	llm      LLMClient
	prompts  *prompt.Builder
	validate *validator.Validate
	cfg      *config.LLMProviderConfig
	logger   *slog.Logger

	// SchemaRetries overrides the schema-reminder retry count; zero
	// means the default.
	SchemaRetries int
}

// NewClient creates an agent client over the given LLM transport.
func NewClient(llm LLMClient, providerCfg *config.LLMProviderConfig, logger *slog.Logger) *Client {
	return &Client{
		llm:      llm,
		prompts:  prompt.NewBuilder(),
		validate: validator.New(),
		cfg:      providerCfg,
		logger:   logger,
	}
}

func (c *Client) schemaRetries() int {
	if c.SchemaRetries > 0 {
		return c.SchemaRetries
	}
	return defaultSchemaRetries
}

// hypothesisDTO is the wire shape of one generated hypothesis.
type hypothesisDTO struct {
	Title           string `json:"title" validate:"required,min=10,max=200"`
	Category        string `json:"category" validate:"required,oneof=upstream_dependency transformation_bug data_quality infrastructure expected_variance"`
	Reasoning       string `json:"reasoning" validate:"required,min=20"`
	SuggestedQuery  string `json:"suggested_query" validate:"required"`
	ExpectedIfTrue  string `json:"expected_if_true" validate:"required"`
	ExpectedIfFalse string `json:"expected_if_false" validate:"required"`
}

// GenerateHypotheses asks for up to n hypotheses for the anomaly.
// Individually invalid hypotheses are dropped with a warning; an empty
// list after retries is an LLMError with Retryable=false.
func (c *Client) GenerateHypotheses(ctx context.Context, invID string, alert models.AnomalyAlert, invCtx investigation.Context, n int, handlers *StreamHandlers) ([]investigation.Hypothesis, error) {
	messages := []ConversationMessage{
		{Role: RoleSystem, Content: c.prompts.HypothesisSystemPrompt(n)},
		{Role: RoleUser, Content: c.prompts.HypothesisUserPrompt(alert, invCtx)},
	}

	var hypotheses []investigation.Hypothesis
	err := c.structuredCall(ctx, invID, messages, handlers, func(text string) error {
		var dtos []hypothesisDTO
		if err := decodeJSON(text, &dtos); err != nil {
			return err
		}
		var valid []investigation.Hypothesis
		for _, d := range dtos {
			if err := c.validate.Struct(d); err != nil {
				c.logger.Warn("Dropping invalid hypothesis", "investigation_id", invID, "title", d.Title, "error", err)
				continue
			}
			valid = append(valid, investigation.Hypothesis{
				ID:              uuid.New().String(),
				Title:           d.Title,
				Category:        investigation.HypothesisCategory(d.Category),
				Reasoning:       d.Reasoning,
				SuggestedQuery:  d.SuggestedQuery,
				ExpectedIfTrue:  d.ExpectedIfTrue,
				ExpectedIfFalse: d.ExpectedIfFalse,
			})
		}
		if len(valid) == 0 {
			return fmt.Errorf("no valid hypotheses in response")
		}
		if len(valid) > n {
			valid = valid[:n]
		}
		hypotheses = valid
		return nil
	})
	if err != nil {
		return nil, wrapOpErr("generate_hypotheses", "no valid hypotheses after retries", err)
	}
	return hypotheses, nil
}

// QueryFailure carries the prior attempt for reflexion mode.
type QueryFailure struct {
	SQL   string
	Error string
}

// GenerateQuery asks for an investigative SELECT. When previous is
// non-nil the prompt runs in reflexion mode: it quotes the failed SQL
// and its error and asks for a corrected statement.
func (c *Client) GenerateQuery(ctx context.Context, invID string, h investigation.Hypothesis, schema investigation.SchemaContext, previous *QueryFailure, handlers *StreamHandlers) (string, error) {
	var userPrompt string
	if previous == nil {
		userPrompt = c.prompts.QueryUserPrompt(h)
	} else {
		userPrompt = c.prompts.ReflexionUserPrompt(h, previous.SQL, previous.Error)
	}
	messages := []ConversationMessage{
		{Role: RoleSystem, Content: c.prompts.QuerySystemPrompt(schema)},
		{Role: RoleUser, Content: userPrompt},
	}

	var sql string
	for attempt := 0; ; attempt++ {
		resp, err := callLLM(ctx, c.llm, c.input(invID, messages), handlers)
		if err != nil {
			if IsRetryable(err) && attempt < c.schemaRetries() {
				c.logger.Warn("Retryable LLM error, retrying",
					"investigation_id", invID, "attempt", attempt+1, "error", err)
				continue
			}
			return "", &LLMError{Op: "generate_query", Message: "LLM call failed", Retryable: IsRetryable(err), Err: err}
		}
		sql = cleanSQL(resp.Text)
		if sql != "" {
			return sql, nil
		}
		if attempt >= c.schemaRetries() {
			return "", &LLMError{Op: "generate_query", Message: "no usable SQL after retries", Retryable: false}
		}
		messages = append(messages,
			ConversationMessage{Role: RoleAssistant, Content: resp.Text},
			ConversationMessage{Role: RoleUser, Content: c.prompts.SQLReminderPrompt()},
		)
	}
}

// evidenceDTO is the wire shape of one interpretation.
type evidenceDTO struct {
	Supports                *bool    `json:"supports_hypothesis"`
	Confidence              float64  `json:"confidence" validate:"gte=0,lte=1"`
	Interpretation          string   `json:"interpretation" validate:"required"`
	CausalChain             string   `json:"causal_chain"`
	TriggerIdentified       string   `json:"trigger_identified"`
	DifferentiatingEvidence string   `json:"differentiating_evidence"`
	KeyFindings             []string `json:"key_findings"`
	NextInvestigationStep   string   `json:"next_investigation_step"`
}

// InterpretEvidence interprets a query result relative to one
// hypothesis. This operation never fails: when the LLM cannot produce a
// usable interpretation after retries, a low-confidence placeholder
// Evidence is returned so one broken interpretation cannot abort the
// whole run.
func (c *Client) InterpretEvidence(ctx context.Context, invID string, h investigation.Hypothesis, sql string, result *datasource.QueryResult, handlers *StreamHandlers) investigation.Evidence {
	messages := []ConversationMessage{
		{Role: RoleSystem, Content: c.prompts.InterpretSystemPrompt()},
		{Role: RoleUser, Content: c.prompts.InterpretUserPrompt(h, sql, renderResult(result))},
	}

	var dto evidenceDTO
	err := c.structuredCall(ctx, invID, messages, handlers, func(text string) error {
		dto = evidenceDTO{}
		if err := decodeJSON(text, &dto); err != nil {
			return err
		}
		return c.validate.Struct(dto)
	})
	if err != nil {
		c.logger.Warn("Interpretation failed, substituting placeholder evidence",
			"investigation_id", invID, "hypothesis_id", h.ID, "error", err)
		return investigation.Evidence{
			HypothesisID:   h.ID,
			Query:          sql,
			RowCount:       result.RowCount,
			Supports:       nil,
			Confidence:     0.3,
			Interpretation: fmt.Sprintf("Interpretation unavailable: the LLM did not produce a usable interpretation (%v). The query succeeded with %d rows.", err, result.RowCount),
		}
	}

	return investigation.Evidence{
		HypothesisID:            h.ID,
		Query:                   sql,
		ResultSummary:           renderResult(result),
		RowCount:                result.RowCount,
		Supports:                dto.Supports,
		Confidence:              dto.Confidence,
		Interpretation:          dto.Interpretation,
		CausalChain:             dto.CausalChain,
		TriggerIdentified:       dto.TriggerIdentified,
		DifferentiatingEvidence: dto.DifferentiatingEvidence,
		KeyFindings:             dto.KeyFindings,
		NextInvestigationStep:   dto.NextInvestigationStep,
	}
}

// findingDTO is the wire shape of the synthesized finding.
type findingDTO struct {
	RootCause          *string  `json:"root_cause"`
	Confidence         float64  `json:"confidence" validate:"gte=0,lte=1"`
	CausalChain        []string `json:"causal_chain" validate:"max=6"`
	EstimatedOnset     string   `json:"estimated_onset"`
	AffectedScope      string   `json:"affected_scope"`
	SupportingEvidence []string `json:"supporting_evidence" validate:"max=10"`
	Recommendations    []string `json:"recommendations" validate:"min=1,max=5"`
}

// SynthesizeFindings combines the evidence into the terminal Finding.
// Confidence below 0.5 forces root_cause=null and an inconclusive
// status, regardless of what the model claimed. Failure here is fatal to
// the run.
func (c *Client) SynthesizeFindings(ctx context.Context, invID string, alert models.AnomalyAlert, evidence []investigation.Evidence, handlers *StreamHandlers) (*investigation.Finding, error) {
	messages := []ConversationMessage{
		{Role: RoleSystem, Content: c.prompts.SynthesisSystemPrompt()},
		{Role: RoleUser, Content: c.prompts.SynthesisUserPrompt(alert, evidence)},
	}

	var dto findingDTO
	err := c.structuredCall(ctx, invID, messages, handlers, func(text string) error {
		dto = findingDTO{}
		if err := decodeJSON(text, &dto); err != nil {
			return err
		}
		if err := c.validate.Struct(dto); err != nil {
			return err
		}
		// A claimed root cause needs an explanatory chain; a single step
		// is a restatement, not a cause.
		if dto.RootCause != nil && dto.Confidence >= 0.5 && len(dto.CausalChain) < 2 {
			return fmt.Errorf("causal_chain must contain 2-6 steps when a root cause is identified")
		}
		return nil
	})
	if err != nil {
		return nil, wrapOpErr("synthesize_findings", "no valid finding after retries", err)
	}

	finding := &investigation.Finding{
		InvestigationID: invID,
		RootCause:       dto.RootCause,
		Confidence:      dto.Confidence,
		Evidence:        evidence,
		Recommendations: dto.Recommendations,
		CausalChain:     dto.CausalChain,
		EstimatedOnset:  dto.EstimatedOnset,
		AffectedScope:   dto.AffectedScope,
	}
	if dto.Confidence < 0.5 {
		finding.RootCause = nil
	}
	if finding.RootCause != nil {
		finding.Status = investigation.FindingCompleted
	} else {
		finding.Status = investigation.FindingInconclusive
	}
	return finding, nil
}

// JudgeScores is the structured output of the quality judge rubric.
type JudgeScores struct {
	CausalDepth             float64 `json:"causal_depth" validate:"gte=0,lte=1"`
	Specificity             float64 `json:"specificity" validate:"gte=0,lte=1"`
	Actionability           float64 `json:"actionability" validate:"gte=0,lte=1"`
	VagueCause              bool    `json:"vague_cause"`
	DifferentiatingSpecific bool    `json:"differentiating_specific"`
	ImprovementSuggestion   string  `json:"improvement_suggestion" validate:"required"`
}

// Judge runs the fixed scoring rubric over one artifact prompt built by
// the validator.
func (c *Client) Judge(ctx context.Context, invID, userPrompt string) (*JudgeScores, error) {
	messages := []ConversationMessage{
		{Role: RoleSystem, Content: c.prompts.JudgeSystemPrompt()},
		{Role: RoleUser, Content: userPrompt},
	}

	var scores JudgeScores
	err := c.structuredCall(ctx, invID, messages, nil, func(text string) error {
		scores = JudgeScores{}
		if err := decodeJSON(text, &scores); err != nil {
			return err
		}
		return c.validate.Struct(scores)
	})
	if err != nil {
		return nil, wrapOpErr("judge", "no valid judge scores after retries", err)
	}
	return &scores, nil
}

// Prompts exposes the prompt builder so the validator can frame judge
// artifacts consistently.
func (c *Client) Prompts() *prompt.Builder { return c.prompts }

// structuredCall runs the decode-validate-retry loop: call the LLM, let
// decode consume the response, and on failure append a schema-reminder
// turn and try again. Retryable transport faults (rate limits, provider
// hiccups surfaced as retryable error chunks) share the same retry
// budget; non-retryable transport faults surface immediately.
func (c *Client) structuredCall(ctx context.Context, invID string, messages []ConversationMessage, handlers *StreamHandlers, decode func(text string) error) error {
	retries := c.schemaRetries()
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		resp, err := callLLM(ctx, c.llm, c.input(invID, messages), handlers)
		if err != nil {
			if !IsRetryable(err) || attempt == retries {
				return err
			}
			c.logger.Warn("Retryable LLM error, retrying",
				"investigation_id", invID, "attempt", attempt+1, "error", err)
			continue
		}
		if lastErr = decode(resp.Text); lastErr == nil {
			return nil
		}
		c.logger.Warn("Structured output rejected, retrying with schema reminder",
			"investigation_id", invID, "attempt", attempt+1, "error", lastErr)
		messages = append(messages,
			ConversationMessage{Role: RoleAssistant, Content: resp.Text},
			ConversationMessage{Role: RoleUser, Content: c.prompts.SchemaReminderPrompt(lastErr.Error())},
		)
	}
	return lastErr
}

// wrapOpErr labels a structuredCall failure for one operation. A
// transport fault that stayed retryable after the retry budget keeps its
// retryability and a transport-level message; everything else is a
// structural failure of the model.
func wrapOpErr(op, structuralMsg string, err error) *LLMError {
	if IsRetryable(err) {
		return &LLMError{Op: op, Message: "LLM call failed", Retryable: true, Err: err}
	}
	return &LLMError{Op: op, Message: structuralMsg, Retryable: false, Err: err}
}

func (c *Client) input(invID string, messages []ConversationMessage) *GenerateInput {
	return &GenerateInput{
		InvestigationID: invID,
		Messages:        messages,
		Config:          c.cfg,
	}
}

// cleanSQL strips fences and prose from an SQL response. Returns "" when
// the response does not contain a SELECT.
func cleanSQL(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		rest := text[idx+3:]
		rest = strings.TrimPrefix(rest, "sql")
		rest = strings.TrimPrefix(rest, "SQL")
		if end := strings.Index(rest, "```"); end != -1 {
			text = strings.TrimSpace(rest[:end])
		} else {
			text = strings.TrimSpace(rest)
		}
	}
	upper := strings.ToUpper(text)
	if idx := strings.Index(upper, "SELECT"); idx >= 0 {
		if with := strings.Index(upper, "WITH"); with >= 0 && with < idx {
			idx = with
		}
		return strings.TrimSpace(text[idx:])
	}
	return ""
}

// renderResult renders a query result for the interpretation prompt:
// the column header plus up to maxRenderedRows rows.
func renderResult(r *datasource.QueryResult) string {
	var sb strings.Builder
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}
	sb.WriteString(strings.Join(names, " | "))
	sb.WriteString("\n")

	shown := len(r.Rows)
	if shown > maxRenderedRows {
		shown = maxRenderedRows
	}
	for _, row := range r.Rows[:shown] {
		vals := make([]string, len(names))
		for i, n := range names {
			vals[i] = fmt.Sprintf("%v", row[n])
		}
		sb.WriteString(strings.Join(vals, " | "))
		sb.WriteString("\n")
	}
	if len(r.Rows) > shown || r.Truncated {
		sb.WriteString(fmt.Sprintf("... (%d rows total, truncated)\n", r.RowCount))
	} else {
		sb.WriteString(fmt.Sprintf("(%d rows)\n", r.RowCount))
	}
	return sb.String()
}
