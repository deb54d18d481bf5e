package lineage

import (
	"context"
	"fmt"
	"sync"
)

// SourceType identifies a registered lineage catalog implementation.
type SourceType string

const (
	SourceStatic SourceType = "static"
)

// Config holds the configuration for one lineage catalog.
type Config struct {
	Type SourceType `yaml:"type"`
	// Edges is the static edge list, only used by the static catalog.
	Edges []Edge `yaml:"edges,omitempty"`
	// Datasets is optional catalog metadata for the static catalog.
	Datasets []Dataset `yaml:"datasets,omitempty"`
}

// Factory constructs a lineage adapter from a validated config.
type Factory func(ctx context.Context, cfg Config) (Adapter, error)

var (
	registryMu sync.RWMutex
	registry   = map[SourceType]Factory{}
)

// Register installs a factory for a catalog type.
func Register(t SourceType, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t] = f
}

// New constructs a lineage adapter for the config's catalog type.
func New(ctx context.Context, cfg Config) (Adapter, error) {
	registryMu.RLock()
	factory, ok := registry[cfg.Type]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown lineage catalog type %q", cfg.Type)
	}
	return factory(ctx, cfg)
}
