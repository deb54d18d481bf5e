// Package lineage defines the catalog-side adapter contract: where a
// dataset's data comes from and where it flows to. Lineage is advisory
// context for hypothesis generation — investigations proceed without it
// when the catalog is unreachable.
package lineage

import "context"

// Dataset is one catalog entry.
type Dataset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Owner       string `json:"owner,omitempty"`
}

// Adapter is the contract every lineage catalog implements.
type Adapter interface {
	// GetUpstream returns the dataset IDs that feed the given dataset.
	GetUpstream(ctx context.Context, datasetID string) ([]string, error)

	// GetDownstream returns the dataset IDs fed by the given dataset.
	GetDownstream(ctx context.Context, datasetID string) ([]string, error)

	// GetDataset returns catalog metadata for one dataset.
	GetDataset(ctx context.Context, datasetID string) (*Dataset, error)

	// SearchDatasets finds datasets whose name or description match the
	// query string.
	SearchDatasets(ctx context.Context, query string) ([]Dataset, error)

	// Close releases any catalog connection.
	Close() error
}
