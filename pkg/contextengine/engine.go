// Package contextengine gathers the investigation context before any
// hypothesis is generated: the warehouse schema (mandatory) and
// dataset lineage (best effort).
package contextengine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/lineage"
)

// SchemaDiscoveryError is terminal: without a schema there is nothing
// to ground hypotheses or queries on, so the investigation fails fast
// instead of letting the LLM hallucinate table names.
type SchemaDiscoveryError struct {
	DatasetID string
	Err       error
}

func (e *SchemaDiscoveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schema discovery failed for %s: %v", e.DatasetID, e.Err)
	}
	return fmt.Sprintf("schema discovery returned no tables for %s", e.DatasetID)
}

func (e *SchemaDiscoveryError) Unwrap() error { return e.Err }

// Engine gathers context from the configured adapters. The lineage
// adapter is optional.
type Engine struct {
	source  datasource.Adapter
	lineage lineage.Adapter
	logger  *slog.Logger
}

// NewEngine creates a context engine. lineageAdapter may be nil.
func NewEngine(source datasource.Adapter, lineageAdapter lineage.Adapter, logger *slog.Logger) *Engine {
	return &Engine{source: source, lineage: lineageAdapter, logger: logger}
}

// Gather discovers the warehouse schema and, when a catalog is
// configured, depth-1 lineage for the alert's dataset. An unreachable
// or empty schema is a terminal *SchemaDiscoveryError; lineage failures
// are logged and swallowed.
func (e *Engine) Gather(ctx context.Context, datasetID string) (investigation.Context, error) {
	schema, err := e.source.GetSchema(ctx)
	if err != nil {
		return investigation.Context{}, &SchemaDiscoveryError{DatasetID: datasetID, Err: err}
	}
	if schema.IsEmpty() {
		return investigation.Context{}, &SchemaDiscoveryError{DatasetID: datasetID}
	}

	result := investigation.Context{Schema: schema}
	if e.lineage == nil {
		return result, nil
	}

	upstream, err := e.lineage.GetUpstream(ctx, datasetID)
	if err != nil {
		e.logger.Warn("lineage discovery failed, continuing without it",
			"dataset_id", datasetID, "error", err)
		return result, nil
	}
	downstream, err := e.lineage.GetDownstream(ctx, datasetID)
	if err != nil {
		e.logger.Warn("lineage discovery failed, continuing without it",
			"dataset_id", datasetID, "error", err)
		return result, nil
	}
	result.Lineage = &investigation.LineageContext{
		Upstream:   upstream,
		Downstream: downstream,
	}
	return result, nil
}
