package datasource

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// SourceType identifies a registered adapter implementation.
type SourceType string

const (
	SourcePostgres SourceType = "postgres"
	SourceMemory   SourceType = "memory"
)

// Config holds the validated connection configuration for one data source.
// Options carries dialect-specific settings the factory understands.
type Config struct {
	Name                 string            `yaml:"name"`
	Type                 SourceType        `yaml:"type"`
	DSNEnv               string            `yaml:"dsn_env,omitempty"`
	MaxConcurrentQueries int               `yaml:"max_concurrent_queries,omitempty"`
	Options              map[string]string `yaml:"options,omitempty"`
}

// Factory constructs an adapter from a validated config.
type Factory func(ctx context.Context, cfg Config) (Adapter, error)

var (
	registryMu sync.RWMutex
	registry   = map[SourceType]Factory{}
)

// Register installs a factory for a source type. Called from adapter
// init functions; last registration wins.
func Register(t SourceType, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t] = f
}

// New constructs an adapter for the config's source type, wrapped with
// the concurrency bound. The orchestrator never branches on the
// concrete source.
func New(ctx context.Context, cfg Config) (Adapter, error) {
	registryMu.RLock()
	factory, ok := registry[cfg.Type]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown data source type %q (registered: %v)", cfg.Type, RegisteredTypes())
	}
	adapter, err := factory(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s adapter %q: %w", cfg.Type, cfg.Name, err)
	}
	return Bounded(adapter), nil
}

// RegisteredTypes returns the sorted list of registered source types.
func RegisteredTypes() []SourceType {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]SourceType, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
