package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreflight_AllowsSelect(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "plain select gets a limit",
			query: "SELECT id FROM sales.orders",
			want:  "SELECT id FROM sales.orders LIMIT 10000",
		},
		{
			name:  "existing limit below cap is kept",
			query: "SELECT id FROM sales.orders LIMIT 100",
			want:  "SELECT id FROM sales.orders LIMIT 100",
		},
		{
			name:  "limit above cap is clamped",
			query: "SELECT id FROM sales.orders LIMIT 500000",
			want:  "SELECT id FROM sales.orders LIMIT 10000",
		},
		{
			name:  "limit with offset is clamped in place",
			query: "SELECT id FROM sales.orders LIMIT 500000 OFFSET 20",
			want:  "SELECT id FROM sales.orders LIMIT 10000 OFFSET 20",
		},
		{
			name:  "cte is allowed",
			query: "WITH recent AS (SELECT * FROM sales.orders) SELECT count(*) FROM recent",
			want:  "WITH recent AS (SELECT * FROM sales.orders) SELECT count(*) FROM recent LIMIT 10000",
		},
		{
			name:  "trailing semicolon is stripped",
			query: "SELECT 1;",
			want:  "SELECT 1 LIMIT 10000",
		},
		{
			name:  "comments are ignored",
			query: "-- check null rate\nSELECT count(*) FROM sales.orders WHERE email IS NULL",
			want:  "SELECT count(*) FROM sales.orders WHERE email IS NULL LIMIT 10000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Preflight(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreflight_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		reason RejectionReason
	}{
		{"empty", "   ", ReasonEmptyQuery},
		{"comment only", "-- nothing here", ReasonEmptyQuery},
		{"delete", "DELETE FROM sales.orders", ReasonNotSelect},
		{"explain", "EXPLAIN SELECT 1", ReasonNotSelect},
		{"multiple statements", "SELECT 1; SELECT 2", ReasonMultipleStatements},
		{"piggybacked drop", "SELECT 1; DROP TABLE sales.orders", ReasonMultipleStatements},
		{"update inside cte", "WITH x AS (UPDATE t SET a = 1 RETURNING *) SELECT * FROM x", ReasonForbiddenToken},
		{"insert in subquery", "SELECT * FROM (INSERT INTO t VALUES (1) RETURNING *) q", ReasonForbiddenToken},
		{"lowercase drop", "select * from t where drop = 1", ReasonForbiddenToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Preflight(tt.query)
			var rejected *QueryRejected
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, tt.reason, rejected.Reason)
		})
	}
}

func TestPreflight_TokenInStringIsStillRejected(t *testing.T) {
	// The check is lexical, not a parse: a bare keyword anywhere rejects.
	// Over-rejection feeds the reflexion loop, which is acceptable;
	// under-rejection is not.
	_, err := Preflight("SELECT 'please update me' FROM t")
	var rejected *QueryRejected
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, ReasonForbiddenToken, rejected.Reason)
}
