package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/investigation"
)

func writeConfigDir(t *testing.T, sleuthYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sleuth.yaml"), []byte(sleuthYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))
	return dir
}

const minimalProvidersYAML = `
llm_providers:
  default:
    type: anthropic
    model: claude-sonnet-4-5
    api_key_env: ANTHROPIC_API_KEY
`

const minimalSleuthYAML = `
data_sources:
  warehouse:
    type: memory
`

func TestInitialize_MinimalConfig(t *testing.T) {
	dir := writeConfigDir(t, minimalSleuthYAML, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Everything not in the YAML comes from the built-in defaults.
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Orchestrator.MaxHypotheses)
	assert.Equal(t, 30*time.Second, cfg.Orchestrator.QueryTimeout)
	assert.Equal(t, 50, cfg.Breaker.MaxTotalQueries)
	assert.Equal(t, 10*time.Minute, cfg.Breaker.MaxDuration)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 0.6, cfg.Validation.PassThreshold)
	assert.True(t, cfg.Validation.IsEnabled())
	assert.True(t, cfg.Retention.IsEnabled())
	assert.Equal(t, 90*24*time.Hour, cfg.Retention.InvestigationTTL)
	assert.Nil(t, cfg.Lineage)

	require.Len(t, cfg.DataSources, 1)
	assert.Equal(t, "warehouse", cfg.DataSources[0].Name)
	assert.Equal(t, datasource.SourceMemory, cfg.DataSources[0].Type)

	// The single provider becomes the default without naming it.
	assert.Equal(t, "default", cfg.DefaultLLMProvider)
	p, err := cfg.GetLLMProvider("")
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-5", p.Model)
}

func TestInitialize_OverridesAndLineage(t *testing.T) {
	sleuthYAML := `
server:
  port: 9090
orchestrator:
  max_hypotheses: 3
  query_timeout: 10s
circuit_breaker:
  max_total_queries: 20
queue:
  worker_count: 8
validation:
  enabled: false
  pass_threshold: 0.7
retention:
  check_interval: 1h
  investigation_ttl: 720h
data_sources:
  warehouse:
    type: postgres
    dsn_env: WAREHOUSE_DSN
    max_concurrent_queries: 4
lineage:
  type: static
  edges:
    - from: raw.users
      to: sales.orders
defaults:
  llm_provider: judge
`
	providersYAML := `
llm_providers:
  default:
    type: anthropic
    model: claude-sonnet-4-5
  judge:
    type: openai
    model: gpt-5
`
	dir := writeConfigDir(t, sleuthYAML, providersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Orchestrator.MaxHypotheses)
	assert.Equal(t, 10*time.Second, cfg.Orchestrator.QueryTimeout)
	// Unset orchestrator fields keep their defaults.
	assert.Equal(t, 0.85, cfg.Orchestrator.HighConfidenceThreshold)
	assert.Equal(t, 20, cfg.Breaker.MaxTotalQueries)
	assert.Equal(t, 8, cfg.Queue.WorkerCount)
	assert.False(t, cfg.Validation.IsEnabled())
	assert.Equal(t, 0.7, cfg.Validation.PassThreshold)
	assert.Equal(t, 1*time.Hour, cfg.Retention.CheckInterval)
	assert.Equal(t, 720*time.Hour, cfg.Retention.InvestigationTTL)
	// Unset retention fields keep their defaults.
	assert.Equal(t, 180*24*time.Hour, cfg.Retention.FeedbackEventTTL)

	require.NotNil(t, cfg.Lineage)
	require.Len(t, cfg.Lineage.Edges, 1)
	assert.Equal(t, "raw.users", cfg.Lineage.Edges[0].From)

	assert.Equal(t, "judge", cfg.DefaultLLMProvider)
	assert.Equal(t, 2, cfg.LLMProviderRegistry.Len())
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("SLEUTH_TEST_MODEL", "claude-haiku-4-5")

	providersYAML := `
llm_providers:
  default:
    type: anthropic
    model: "{{.SLEUTH_TEST_MODEL}}"
`
	dir := writeConfigDir(t, minimalSleuthYAML, providersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	p, err := cfg.GetLLMProvider("default")
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5", p.Model)
}

func TestInitialize_MissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sleuth.yaml"), []byte(minimalSleuthYAML), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "llm-providers.yaml", loadErr.File)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfigDir(t, "data_sources: [not: a: map", minimalProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_CollectsAllValidationErrors(t *testing.T) {
	sleuthYAML := `
orchestrator:
  max_hypotheses: 0
  high_confidence_threshold: 1.5
data_sources:
  warehouse:
    type: memory
`
	providersYAML := `
llm_providers:
  default:
    type: carrier-pigeon
    model: claude-sonnet-4-5
`
	dir := writeConfigDir(t, sleuthYAML, providersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	// All three problems are reported at once.
	assert.Contains(t, err.Error(), "max_hypotheses")
	assert.Contains(t, err.Error(), "high_confidence_threshold")
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestInitialize_ExplicitZeroIsNotDefaulted(t *testing.T) {
	sleuthYAML := `
orchestrator:
  max_retries_per_hypothesis: 0
data_sources:
  warehouse:
    type: memory
`
	dir := writeConfigDir(t, sleuthYAML, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// A written zero stays zero; it must not be swallowed by the default.
	assert.Equal(t, 0, cfg.Orchestrator.MaxRetriesPerHypothesis)
	assert.Equal(t, 5, cfg.Orchestrator.MaxHypotheses)
}

func TestInitialize_NullSectionFallsBackToDefaults(t *testing.T) {
	sleuthYAML := `
server: null
retention: null
data_sources:
  warehouse:
    type: memory
`
	dir := writeConfigDir(t, sleuthYAML, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 6*time.Hour, cfg.Retention.CheckInterval)
}

func TestValidate_BreakerBelowWorkerBudget(t *testing.T) {
	cfg := validConfig()
	cfg.Breaker.MaxQueriesPerHypothesis = 2
	cfg.Orchestrator.MaxQueriesPerHypothesis = 3

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_queries_per_hypothesis")
}

func TestValidate_UnknownDefaultProvider(t *testing.T) {
	cfg := validConfig()
	cfg.DefaultLLMProvider = "missing"

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)
}

func validConfig() *Config {
	return &Config{
		Server:             DefaultServerConfig(),
		Orchestrator:       DefaultOrchestratorConfig(),
		Breaker:            investigation.DefaultCircuitBreakerConfig(),
		Queue:              DefaultQueueConfig(),
		Validation:         DefaultValidationConfig(),
		Retention:          DefaultRetentionConfig(),
		DataSources:        []datasource.Config{{Name: "warehouse", Type: datasource.SourceMemory}},
		DefaultLLMProvider: "default",
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"default": {Type: LLMProviderTypeAnthropic, Model: "claude-sonnet-4-5"},
		}),
	}
}

func TestConfigError_Format(t *testing.T) {
	err := NewConfigError("llm_provider", "default", "model", ErrMissingRequiredField)
	assert.Equal(t, "llm_provider 'default': field 'model': missing required field", err.Error())
	assert.True(t, errors.Is(err, ErrMissingRequiredField))
}
