package config

import (
	"errors"
	"fmt"
)

// Validate checks the loaded configuration, collecting every problem
// before failing so a broken deployment surfaces all of its mistakes in
// one pass.
func Validate(cfg *Config) error {
	var errs []error

	errs = append(errs, validateLLMProviders(cfg)...)
	errs = append(errs, validateDataSources(cfg)...)
	errs = append(errs, validateOrchestrator(cfg.Orchestrator)...)
	errs = append(errs, validateBreaker(cfg)...)
	errs = append(errs, validateValidation(cfg.Validation)...)
	errs = append(errs, validateRetention(cfg.Retention)...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}

func validateLLMProviders(cfg *Config) []error {
	var errs []error

	providers := cfg.LLMProviderRegistry.GetAll()
	if len(providers) == 0 {
		errs = append(errs, NewConfigError("llm_providers", "", "", errors.New("at least one provider required")))
		return errs
	}
	for name, p := range providers {
		if p.Type == "" {
			errs = append(errs, NewConfigError("llm_provider", name, "type", ErrMissingRequiredField))
		} else if !p.Type.IsValid() {
			errs = append(errs, NewConfigError("llm_provider", name, "type",
				fmt.Errorf("%w: %s", ErrInvalidValue, p.Type)))
		}
		if p.Model == "" {
			errs = append(errs, NewConfigError("llm_provider", name, "model", ErrMissingRequiredField))
		}
	}

	if cfg.DefaultLLMProvider == "" {
		errs = append(errs, NewConfigError("defaults", "", "llm_provider", ErrMissingRequiredField))
	} else if !cfg.LLMProviderRegistry.Has(cfg.DefaultLLMProvider) {
		errs = append(errs, NewConfigError("defaults", "", "llm_provider",
			fmt.Errorf("%w: %s", ErrLLMProviderNotFound, cfg.DefaultLLMProvider)))
	}

	if cfg.Validation != nil && cfg.Validation.Provider != "" && !cfg.LLMProviderRegistry.Has(cfg.Validation.Provider) {
		errs = append(errs, NewConfigError("validation", "", "provider",
			fmt.Errorf("%w: %s", ErrLLMProviderNotFound, cfg.Validation.Provider)))
	}

	return errs
}

func validateDataSources(cfg *Config) []error {
	var errs []error

	if len(cfg.DataSources) == 0 {
		errs = append(errs, NewConfigError("data_sources", "", "", errors.New("at least one data source required")))
		return errs
	}
	for _, ds := range cfg.DataSources {
		if ds.Type == "" {
			errs = append(errs, NewConfigError("data_source", ds.Name, "type", ErrMissingRequiredField))
		}
		if ds.MaxConcurrentQueries < 0 {
			errs = append(errs, NewConfigError("data_source", ds.Name, "max_concurrent_queries",
				fmt.Errorf("%w: must not be negative", ErrInvalidValue)))
		}
	}

	return errs
}

func validateOrchestrator(o *OrchestratorConfig) []error {
	var errs []error

	if o.MaxHypotheses < 1 {
		errs = append(errs, NewConfigError("orchestrator", "", "max_hypotheses",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue)))
	}
	if o.MaxQueriesPerHypothesis < 1 {
		errs = append(errs, NewConfigError("orchestrator", "", "max_queries_per_hypothesis",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue)))
	}
	if o.MaxRetriesPerHypothesis < 0 {
		errs = append(errs, NewConfigError("orchestrator", "", "max_retries_per_hypothesis",
			fmt.Errorf("%w: must not be negative", ErrInvalidValue)))
	}
	if o.QueryTimeout <= 0 {
		errs = append(errs, NewConfigError("orchestrator", "", "query_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue)))
	}
	if o.HighConfidenceThreshold <= 0 || o.HighConfidenceThreshold > 1 {
		errs = append(errs, NewConfigError("orchestrator", "", "high_confidence_threshold",
			fmt.Errorf("%w: must be in (0, 1]", ErrInvalidValue)))
	}

	return errs
}

func validateBreaker(cfg *Config) []error {
	var errs []error
	b := cfg.Breaker

	if b.MaxTotalQueries < 1 {
		errs = append(errs, NewConfigError("circuit_breaker", "", "max_total_queries",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue)))
	}
	if b.MaxQueriesPerHypothesis < 1 {
		errs = append(errs, NewConfigError("circuit_breaker", "", "max_queries_per_hypothesis",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue)))
	}
	if b.MaxConsecutiveFailures < 1 {
		errs = append(errs, NewConfigError("circuit_breaker", "", "max_consecutive_failures",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue)))
	}
	if b.MaxDuration <= 0 {
		errs = append(errs, NewConfigError("circuit_breaker", "", "max_duration",
			fmt.Errorf("%w: must be positive", ErrInvalidValue)))
	}

	// The breaker backstops the orchestrator's own per-hypothesis budget;
	// a breaker cap below the budget would trip on healthy runs.
	if cfg.Orchestrator != nil && b.MaxQueriesPerHypothesis < cfg.Orchestrator.MaxQueriesPerHypothesis {
		errs = append(errs, NewConfigError("circuit_breaker", "", "max_queries_per_hypothesis",
			fmt.Errorf("%w: must be >= orchestrator max_queries_per_hypothesis (%d)",
				ErrInvalidValue, cfg.Orchestrator.MaxQueriesPerHypothesis)))
	}

	return errs
}

func validateValidation(v *ValidationConfig) []error {
	var errs []error

	if v.PassThreshold < 0 || v.PassThreshold > 1 {
		errs = append(errs, NewConfigError("validation", "", "pass_threshold",
			fmt.Errorf("%w: must be in [0, 1]", ErrInvalidValue)))
	}

	return errs
}

func validateRetention(r *RetentionConfig) []error {
	var errs []error

	if r == nil || !r.IsEnabled() {
		return errs
	}
	if r.CheckInterval <= 0 {
		errs = append(errs, NewConfigError("retention", "", "check_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue)))
	}
	if r.InvestigationTTL <= 0 {
		errs = append(errs, NewConfigError("retention", "", "investigation_ttl",
			fmt.Errorf("%w: must be positive", ErrInvalidValue)))
	}
	if r.FeedbackEventTTL <= 0 {
		errs = append(errs, NewConfigError("retention", "", "feedback_event_ttl",
			fmt.Errorf("%w: must be positive", ErrInvalidValue)))
	}

	return errs
}
