package contextengine

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/lineage"
)

type failingLineage struct {
	lineage.Adapter
}

func (failingLineage) GetUpstream(context.Context, string) ([]string, error) {
	return nil, errors.New("catalog unreachable")
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func populatedSource() *datasource.MemoryAdapter {
	a := datasource.NewMemoryAdapter()
	a.SetSchema(&datasource.SchemaResponse{Tables: []datasource.Table{
		{Schema: "sales", Name: "orders", Columns: []datasource.Column{
			{Name: "id", DataType: datasource.TypeInteger},
		}},
	}})
	return a
}

func TestGather_SchemaAndLineage(t *testing.T) {
	catalog := lineage.NewStaticCatalog([]lineage.Edge{
		{From: "raw.orders", To: "sales.orders"},
		{From: "sales.orders", To: "reporting.daily_revenue"},
	}, nil)

	e := NewEngine(populatedSource(), catalog, testLogger())
	got, err := e.Gather(context.Background(), "sales.orders")
	require.NoError(t, err)

	assert.Equal(t, 1, got.Schema.TableCount())
	require.NotNil(t, got.Lineage)
	assert.Equal(t, []string{"raw.orders"}, got.Lineage.Upstream)
	assert.Equal(t, []string{"reporting.daily_revenue"}, got.Lineage.Downstream)
}

func TestGather_NoLineageAdapter(t *testing.T) {
	e := NewEngine(populatedSource(), nil, testLogger())
	got, err := e.Gather(context.Background(), "sales.orders")
	require.NoError(t, err)
	assert.Nil(t, got.Lineage)
}

func TestGather_LineageFailureIsNotTerminal(t *testing.T) {
	e := NewEngine(populatedSource(), failingLineage{}, testLogger())
	got, err := e.Gather(context.Background(), "sales.orders")
	require.NoError(t, err)
	assert.Nil(t, got.Lineage)
	assert.NotNil(t, got.Schema)
}

func TestGather_EmptySchemaIsTerminal(t *testing.T) {
	e := NewEngine(datasource.NewMemoryAdapter(), nil, testLogger())
	_, err := e.Gather(context.Background(), "sales.orders")

	var discoveryErr *SchemaDiscoveryError
	require.ErrorAs(t, err, &discoveryErr)
	assert.Equal(t, "sales.orders", discoveryErr.DatasetID)
}

func TestGather_SchemaFetchErrorIsTerminal(t *testing.T) {
	source := datasource.NewMemoryAdapter()
	require.NoError(t, source.Close())

	e := NewEngine(source, nil, testLogger())
	_, err := e.Gather(context.Background(), "sales.orders")

	var discoveryErr *SchemaDiscoveryError
	require.ErrorAs(t, err, &discoveryErr)
	assert.ErrorContains(t, err, "schema discovery failed")
}
