package config

import (
	"time"

	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/lineage"
)

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	// Server holds the HTTP listener settings.
	Server *ServerConfig

	// Orchestrator holds the per-investigation tuning knobs.
	Orchestrator *OrchestratorConfig

	// Breaker holds the circuit-breaker safety caps.
	Breaker investigation.CircuitBreakerConfig

	// Queue and worker pool configuration.
	Queue *QueueConfig

	// Validation holds the LLM-as-judge quality validation settings.
	Validation *ValidationConfig

	// Retention holds the data retention settings.
	Retention *RetentionConfig

	// DataSources are the configured warehouse connections, keyed by name
	// in YAML and resolved through the datasource registry.
	DataSources []datasource.Config

	// Lineage is the optional lineage catalog; nil disables lineage.
	Lineage *lineage.Config

	// DefaultLLMProvider names the provider used when a request does not
	// pick one.
	DefaultLLMProvider string

	// LLMProviderRegistry holds the configured providers.
	LLMProviderRegistry *LLMProviderRegistry
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// An empty name resolves to the default provider.
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	if name == "" {
		name = c.DefaultLLMProvider
	}
	return c.LLMProviderRegistry.Get(name)
}

// Stats contains statistics about loaded configuration
type Stats struct {
	DataSources  int
	LLMProviders int
	HasLineage   bool
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{
		DataSources: len(c.DataSources),
		HasLineage:  c.Lineage != nil,
	}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host: "0.0.0.0",
		Port: 8080,
	}
}

// OrchestratorConfig tunes one investigation run. Projected onto the
// orchestrator by the worker pool.
type OrchestratorConfig struct {
	MaxHypotheses           int           `yaml:"max_hypotheses"`
	MaxQueriesPerHypothesis int           `yaml:"max_queries_per_hypothesis"`
	MaxRetriesPerHypothesis int           `yaml:"max_retries_per_hypothesis"`
	QueryTimeout            time.Duration `yaml:"query_timeout"`
	HighConfidenceThreshold float64       `yaml:"high_confidence_threshold"`
}

// DefaultOrchestratorConfig returns the built-in orchestrator defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		MaxHypotheses:           5,
		MaxQueriesPerHypothesis: 3,
		MaxRetriesPerHypothesis: 2,
		QueryTimeout:            30 * time.Second,
		HighConfidenceThreshold: 0.85,
	}
}

// ValidationConfig holds the LLM-as-judge quality validation settings.
type ValidationConfig struct {
	// Enabled toggles validation; results never gate investigations.
	Enabled *bool `yaml:"enabled,omitempty"`

	// PassThreshold is the composite score below which an artifact is
	// flagged for review.
	PassThreshold float64 `yaml:"pass_threshold"`

	// Provider names the LLM provider used for judging; empty means the
	// default provider.
	Provider string `yaml:"provider,omitempty"`
}

// IsEnabled reports whether validation is on (default true).
func (v *ValidationConfig) IsEnabled() bool {
	return v.Enabled == nil || *v.Enabled
}

// DefaultValidationConfig returns the built-in validation defaults.
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		PassThreshold: 0.6,
	}
}

// RetentionConfig controls periodic purging of old rows. All operations
// are idempotent and safe to run from multiple pods.
type RetentionConfig struct {
	// Enabled toggles the background retention loop.
	Enabled *bool `yaml:"enabled,omitempty"`

	// CheckInterval is how often the retention pass runs.
	CheckInterval time.Duration `yaml:"check_interval"`

	// InvestigationTTL is how long terminal investigations are kept.
	InvestigationTTL time.Duration `yaml:"investigation_ttl"`

	// FeedbackEventTTL is how long feedback log rows are kept.
	FeedbackEventTTL time.Duration `yaml:"feedback_event_ttl"`
}

// IsEnabled reports whether retention is on (default true).
func (r *RetentionConfig) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		CheckInterval:    6 * time.Hour,
		InvestigationTTL: 90 * 24 * time.Hour,
		FeedbackEventTTL: 180 * 24 * time.Hour,
	}
}
