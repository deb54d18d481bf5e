package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/lineage"
)

// SleuthYAMLConfig represents the complete sleuth.yaml file structure
type SleuthYAMLConfig struct {
	Server         *ServerConfig                       `yaml:"server"`
	Orchestrator   *OrchestratorConfig                 `yaml:"orchestrator"`
	CircuitBreaker *investigation.CircuitBreakerConfig `yaml:"circuit_breaker"`
	Queue          *QueueConfig                        `yaml:"queue"`
	Validation     *ValidationConfig                   `yaml:"validation"`
	Retention      *RetentionConfig                    `yaml:"retention"`
	DataSources    map[string]datasource.Config        `yaml:"data_sources"`
	Lineage        *lineage.Config                     `yaml:"lineage"`
	Defaults       *Defaults                           `yaml:"defaults"`
}

// Defaults contains system-wide default selections.
type Defaults struct {
	// LLMProvider names the provider used when nothing picks one.
	LLMProvider string `yaml:"llm_provider,omitempty"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]*LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load .env (best-effort) so {{.VAR}} references resolve
//  2. Load YAML files from configDir, expanding environment variables
//  3. Decode user values over prepopulated built-in defaults
//  4. Build the LLM provider registry
//  5. Validate everything, collecting all errors before failing
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("Failed to load .env file", "error", err)
	}

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized",
		"data_sources", stats.DataSources,
		"llm_providers", stats.LLMProviders,
		"has_lineage", stats.HasLineage)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	yamlCfg, err := loader.loadSleuthYAML()
	if err != nil {
		return nil, NewLoadError("sleuth.yaml", err)
	}

	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// Data sources are a YAML map keyed by name; the key becomes the name.
	sources := make([]datasource.Config, 0, len(yamlCfg.DataSources))
	for name, sc := range yamlCfg.DataSources {
		sc.Name = name
		sources = append(sources, sc)
	}

	defaultProvider := ""
	if yamlCfg.Defaults != nil {
		defaultProvider = yamlCfg.Defaults.LLMProvider
	}
	if defaultProvider == "" && len(llmProviders) == 1 {
		for name := range llmProviders {
			defaultProvider = name
		}
	}

	return &Config{
		configDir:           configDir,
		Server:              yamlCfg.Server,
		Orchestrator:        yamlCfg.Orchestrator,
		Breaker:             *yamlCfg.CircuitBreaker,
		Queue:               yamlCfg.Queue,
		Validation:          yamlCfg.Validation,
		Retention:           yamlCfg.Retention,
		DataSources:         sources,
		Lineage:             yamlCfg.Lineage,
		DefaultLLMProvider:  defaultProvider,
		LLMProviderRegistry: NewLLMProviderRegistry(llmProviders),
	}, nil
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadSleuthYAML() (*SleuthYAMLConfig, error) {
	// Sections are prepopulated with defaults before decoding, so YAML
	// only touches the fields it names: absent fields keep their defaults
	// and explicit zero values stick, where validation can reject them.
	breaker := investigation.DefaultCircuitBreakerConfig()
	cfg := SleuthYAMLConfig{
		Server:         DefaultServerConfig(),
		Orchestrator:   DefaultOrchestratorConfig(),
		CircuitBreaker: &breaker,
		Queue:          DefaultQueueConfig(),
		Validation:     DefaultValidationConfig(),
		Retention:      DefaultRetentionConfig(),
		DataSources:    make(map[string]datasource.Config),
	}

	if err := l.loadYAML("sleuth.yaml", &cfg); err != nil {
		return nil, err
	}

	// An explicitly null section falls back to its defaults.
	if cfg.Server == nil {
		cfg.Server = DefaultServerConfig()
	}
	if cfg.Orchestrator == nil {
		cfg.Orchestrator = DefaultOrchestratorConfig()
	}
	if cfg.CircuitBreaker == nil {
		b := investigation.DefaultCircuitBreakerConfig()
		cfg.CircuitBreaker = &b
	}
	if cfg.Queue == nil {
		cfg.Queue = DefaultQueueConfig()
	}
	if cfg.Validation == nil {
		cfg.Validation = DefaultValidationConfig()
	}
	if cfg.Retention == nil {
		cfg.Retention = DefaultRetentionConfig()
	}
	return &cfg, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]*LLMProviderConfig, error) {
	var cfg LLMProvidersYAMLConfig
	cfg.LLMProviders = make(map[string]*LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &cfg); err != nil {
		return nil, err
	}
	return cfg.LLMProviders, nil
}
