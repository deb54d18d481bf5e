package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how investigations are polled, claimed, and
// processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes investigations.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentInvestigations is the global limit of concurrent
	// investigations across ALL replicas/pods. Enforced by database
	// COUNT(*) check.
	MaxConcurrentInvestigations int `yaml:"max_concurrent_investigations"`

	// PollInterval is the base interval for checking pending investigations.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// InvestigationTimeout is the maximum time one investigation can run.
	InvestigationTimeout time.Duration `yaml:"investigation_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active
	// investigations to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:                 3,
		MaxConcurrentInvestigations: 5,
		PollInterval:                1 * time.Second,
		PollIntervalJitter:          500 * time.Millisecond,
		InvestigationTimeout:        15 * time.Minute,
		GracefulShutdownTimeout:     15 * time.Minute,
	}
}
