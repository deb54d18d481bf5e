// Package datasource defines the warehouse-side adapter contract: every
// data source (SQL warehouse, document store, filesystem, SaaS API)
// exposes the same two operations — execute a read-only query and
// discover the schema. Dialect specifics stay inside the adapter.
package datasource

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ErrorCode is the closed set of adapter error codes. The orchestrator
// treats all of them identically — as a non-terminal query failure.
type ErrorCode string

const (
	ErrConnectionFailed     ErrorCode = "CONNECTION_FAILED"
	ErrAuthenticationFailed ErrorCode = "AUTHENTICATION_FAILED"
	ErrQuerySyntax          ErrorCode = "QUERY_SYNTAX_ERROR"
	ErrQueryTimeout         ErrorCode = "QUERY_TIMEOUT"
	ErrQueryRejected        ErrorCode = "QUERY_REJECTED"
	ErrAccessDenied         ErrorCode = "ACCESS_DENIED"
	ErrRateLimited          ErrorCode = "RATE_LIMITED"
	ErrSchemaFetchFailed    ErrorCode = "SCHEMA_FETCH_FAILED"
	ErrNotImplemented       ErrorCode = "NOT_IMPLEMENTED"
	ErrInternal             ErrorCode = "INTERNAL_ERROR"
)

// AdapterError is the typed error surfaced by every adapter operation.
type AdapterError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AdapterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AdapterError) Unwrap() error { return e.Err }

// NewAdapterError builds an AdapterError. err may be nil.
func NewAdapterError(code ErrorCode, message string, err error) *AdapterError {
	return &AdapterError{Code: code, Message: message, Err: err}
}

// ColumnType is the closed set of normalized column types. Adapters map
// their native types onto this set; unknown types map to TypeUnknown.
type ColumnType string

const (
	TypeString    ColumnType = "string"
	TypeInteger   ColumnType = "integer"
	TypeFloat     ColumnType = "float"
	TypeDecimal   ColumnType = "decimal"
	TypeBoolean   ColumnType = "boolean"
	TypeDate      ColumnType = "date"
	TypeDatetime  ColumnType = "datetime"
	TypeTime      ColumnType = "time"
	TypeTimestamp ColumnType = "timestamp"
	TypeBinary    ColumnType = "binary"
	TypeJSON      ColumnType = "json"
	TypeArray     ColumnType = "array"
	TypeMap       ColumnType = "map"
	TypeStruct    ColumnType = "struct"
	TypeUnknown   ColumnType = "unknown"
)

// Column describes one column of a table or query result.
type Column struct {
	Name     string     `json:"name"`
	DataType ColumnType `json:"data_type"`
}

// Table describes one discovered table.
type Table struct {
	Schema  string   `json:"schema"`
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// QualifiedName returns schema.name, or just name when schema is empty.
func (t Table) QualifiedName() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

// SchemaResponse is the discovered warehouse schema.
// Implements investigation.SchemaContext.
type SchemaResponse struct {
	Tables []Table `json:"tables"`
}

// TableCount returns the number of discovered tables.
func (s *SchemaResponse) TableCount() int { return len(s.Tables) }

// IsEmpty reports whether no tables were discovered.
func (s *SchemaResponse) IsEmpty() bool { return len(s.Tables) == 0 }

// ToPromptString renders the schema for an LLM prompt: one table per
// block with its qualified name and typed columns.
func (s *SchemaResponse) ToPromptString() string {
	var b strings.Builder
	for i, t := range s.Tables {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Table: ")
		b.WriteString(t.QualifiedName())
		b.WriteString("\n")
		for _, c := range t.Columns {
			b.WriteString("  - ")
			b.WriteString(c.Name)
			b.WriteString(" (")
			b.WriteString(string(c.DataType))
			b.WriteString(")\n")
		}
	}
	return b.String()
}

// QueryResult is the outcome of one adapter query.
type QueryResult struct {
	Columns         []Column         `json:"columns"`
	Rows            []map[string]any `json:"rows"`
	RowCount        int              `json:"row_count"`
	Truncated       bool             `json:"truncated,omitempty"`
	ExecutionTimeMS int64            `json:"execution_time_ms,omitempty"`
}

// QueryOptions tunes a single ExecuteQuery call.
type QueryOptions struct {
	Params  []any
	Timeout time.Duration
	Limit   int
}

// Adapter is the contract every data source implements. Adapters are
// read-only from the orchestrator's perspective and must be safe for
// concurrent ExecuteQuery calls up to MaxConcurrentQueries.
type Adapter interface {
	// ExecuteQuery runs a read-only query and returns its result.
	// Errors are always *AdapterError.
	ExecuteQuery(ctx context.Context, sql string, opts QueryOptions) (*QueryResult, error)

	// GetSchema discovers tables and columns visible to the connection.
	GetSchema(ctx context.Context) (*SchemaResponse, error)

	// MaxConcurrentQueries is the adapter's declared concurrency bound.
	MaxConcurrentQueries() int

	// Close releases the underlying connection.
	Close() error
}
