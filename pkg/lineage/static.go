package lineage

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

func init() {
	Register(SourceStatic, func(_ context.Context, cfg Config) (Adapter, error) {
		return NewStaticCatalog(cfg.Edges, cfg.Datasets), nil
	})
}

// Edge is one directed lineage edge: From feeds To.
type Edge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// StaticCatalog serves lineage from a fixed edge list, typically loaded
// from the deployment config. It stands in for a real catalog in
// deployments that maintain lineage by hand.
type StaticCatalog struct {
	upstream   map[string][]string
	downstream map[string][]string
	datasets   map[string]Dataset
}

// NewStaticCatalog indexes the edge list in both directions.
func NewStaticCatalog(edges []Edge, datasets []Dataset) *StaticCatalog {
	c := &StaticCatalog{
		upstream:   map[string][]string{},
		downstream: map[string][]string{},
		datasets:   map[string]Dataset{},
	}
	for _, e := range edges {
		c.upstream[e.To] = append(c.upstream[e.To], e.From)
		c.downstream[e.From] = append(c.downstream[e.From], e.To)
	}
	for id := range c.upstream {
		sort.Strings(c.upstream[id])
	}
	for id := range c.downstream {
		sort.Strings(c.downstream[id])
	}
	for _, d := range datasets {
		c.datasets[d.ID] = d
	}
	return c
}

func (c *StaticCatalog) GetUpstream(_ context.Context, datasetID string) ([]string, error) {
	return append([]string(nil), c.upstream[datasetID]...), nil
}

func (c *StaticCatalog) GetDownstream(_ context.Context, datasetID string) ([]string, error) {
	return append([]string(nil), c.downstream[datasetID]...), nil
}

func (c *StaticCatalog) GetDataset(_ context.Context, datasetID string) (*Dataset, error) {
	d, ok := c.datasets[datasetID]
	if !ok {
		return nil, fmt.Errorf("dataset %q not found in catalog", datasetID)
	}
	return &d, nil
}

func (c *StaticCatalog) SearchDatasets(_ context.Context, query string) ([]Dataset, error) {
	q := strings.ToLower(query)
	var out []Dataset
	for _, d := range c.datasets {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Description), q) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *StaticCatalog) Close() error { return nil }
