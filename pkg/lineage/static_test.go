package lineage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *StaticCatalog {
	return NewStaticCatalog(
		[]Edge{
			{From: "raw.orders", To: "sales.orders"},
			{From: "raw.customers", To: "sales.orders"},
			{From: "sales.orders", To: "reporting.daily_revenue"},
		},
		[]Dataset{
			{ID: "sales.orders", Name: "Orders", Description: "Cleaned order fact table", Owner: "data-eng"},
			{ID: "raw.orders", Name: "Raw orders", Description: "Fivetran landing table"},
		},
	)
}

func TestStaticCatalog_Edges(t *testing.T) {
	ctx := context.Background()
	c := testCatalog()

	up, err := c.GetUpstream(ctx, "sales.orders")
	require.NoError(t, err)
	assert.Equal(t, []string{"raw.customers", "raw.orders"}, up)

	down, err := c.GetDownstream(ctx, "sales.orders")
	require.NoError(t, err)
	assert.Equal(t, []string{"reporting.daily_revenue"}, down)

	// Unknown datasets yield empty lineage, not an error.
	up, err = c.GetUpstream(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, up)
}

func TestStaticCatalog_Datasets(t *testing.T) {
	ctx := context.Background()
	c := testCatalog()

	d, err := c.GetDataset(ctx, "sales.orders")
	require.NoError(t, err)
	assert.Equal(t, "Orders", d.Name)

	_, err = c.GetDataset(ctx, "missing")
	assert.Error(t, err)

	found, err := c.SearchDatasets(ctx, "orders")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "raw.orders", found[0].ID)
}

func TestRegistry_New(t *testing.T) {
	a, err := New(context.Background(), Config{
		Type:  SourceStatic,
		Edges: []Edge{{From: "a", To: "b"}},
	})
	require.NoError(t, err)
	defer a.Close()

	up, err := a.GetUpstream(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, up)

	_, err = New(context.Background(), Config{Type: "openlineage"})
	assert.Error(t, err)
}
