package datasource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *SchemaResponse {
	return &SchemaResponse{Tables: []Table{
		{
			Schema: "sales",
			Name:   "orders",
			Columns: []Column{
				{Name: "id", DataType: TypeInteger},
				{Name: "customer_email", DataType: TypeString},
				{Name: "created_at", DataType: TypeTimestamp},
			},
		},
		{
			Schema: "sales",
			Name:   "customers",
			Columns: []Column{
				{Name: "id", DataType: TypeInteger},
				{Name: "email", DataType: TypeString},
			},
		},
	}}
}

func TestSchemaResponse_ToPromptString(t *testing.T) {
	s := testSchema()
	rendered := s.ToPromptString()

	assert.Contains(t, rendered, "Table: sales.orders")
	assert.Contains(t, rendered, "  - customer_email (string)")
	assert.Contains(t, rendered, "Table: sales.customers")
	assert.Contains(t, rendered, "  - created_at (timestamp)")
	assert.Equal(t, 2, s.TableCount())
	assert.False(t, s.IsEmpty())
}

func TestSchemaResponse_Empty(t *testing.T) {
	s := &SchemaResponse{}
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.TableCount())
	assert.Empty(t, s.ToPromptString())
}

func TestTable_QualifiedName(t *testing.T) {
	assert.Equal(t, "sales.orders", Table{Schema: "sales", Name: "orders"}.QualifiedName())
	assert.Equal(t, "orders", Table{Name: "orders"}.QualifiedName())
}

func TestRegistry_New(t *testing.T) {
	ctx := context.Background()

	t.Run("memory adapter", func(t *testing.T) {
		a, err := New(ctx, Config{Name: "dev", Type: SourceMemory})
		require.NoError(t, err)
		defer a.Close()

		schema, err := a.GetSchema(ctx)
		require.NoError(t, err)
		assert.True(t, schema.IsEmpty())
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := New(ctx, Config{Name: "x", Type: "clickhouse"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown data source type")
	})
}

func TestRegistry_WrapsWithBound(t *testing.T) {
	a, err := New(context.Background(), Config{
		Name:                 "dev",
		Type:                 SourceMemory,
		MaxConcurrentQueries: 2,
	})
	require.NoError(t, err)
	defer a.Close()

	_, ok := a.(*boundedAdapter)
	assert.True(t, ok)
	assert.Equal(t, 2, a.MaxConcurrentQueries())
}

func TestMemoryAdapter_ScriptedResponses(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryAdapter()
	a.SetSchema(testSchema())
	a.ScriptResult("SELECT count(*) FROM sales.orders", &QueryResult{
		Columns:  []Column{{Name: "count", DataType: TypeInteger}},
		Rows:     []map[string]any{{"count": int64(42)}},
		RowCount: 1,
	})
	a.ScriptError("SELECT broken", NewAdapterError(ErrQuerySyntax, "syntax error at or near \"broken\"", nil))

	res, err := a.ExecuteQuery(ctx, "SELECT count(*) FROM sales.orders", QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.RowCount)
	assert.Equal(t, int64(42), res.Rows[0]["count"])

	_, err = a.ExecuteQuery(ctx, "SELECT broken", QueryOptions{})
	var adapterErr *AdapterError
	require.ErrorAs(t, err, &adapterErr)
	assert.Equal(t, ErrQuerySyntax, adapterErr.Code)

	// Unscripted queries succeed with an empty result.
	res, err = a.ExecuteQuery(ctx, "SELECT 1", QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.RowCount)

	assert.Equal(t, []string{
		"SELECT count(*) FROM sales.orders",
		"SELECT broken",
		"SELECT 1",
	}, a.ExecutedQueries())
}

func TestMemoryAdapter_Closed(t *testing.T) {
	a := NewMemoryAdapter()
	require.NoError(t, a.Close())

	_, err := a.ExecuteQuery(context.Background(), "SELECT 1", QueryOptions{})
	var adapterErr *AdapterError
	require.ErrorAs(t, err, &adapterErr)
	assert.Equal(t, ErrConnectionFailed, adapterErr.Code)
}

func TestNormalizePostgresType(t *testing.T) {
	tests := []struct {
		native string
		want   ColumnType
	}{
		{"character varying", TypeString},
		{"uuid", TypeString},
		{"bigint", TypeInteger},
		{"double precision", TypeFloat},
		{"numeric", TypeDecimal},
		{"boolean", TypeBoolean},
		{"date", TypeDate},
		{"timestamp without time zone", TypeDatetime},
		{"timestamp with time zone", TypeTimestamp},
		{"jsonb", TypeJSON},
		{"ARRAY", TypeArray},
		{"tsvector", TypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.native, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePostgresType(tt.native))
		})
	}
}

func TestAdapterError_Unwrap(t *testing.T) {
	inner := context.DeadlineExceeded
	err := NewAdapterError(ErrQueryTimeout, "query exceeded 30s", inner)

	assert.Contains(t, err.Error(), "QUERY_TIMEOUT")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
