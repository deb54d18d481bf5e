package datasource

import (
	"context"
	"sync"
)

func init() {
	Register(SourceMemory, func(_ context.Context, cfg Config) (Adapter, error) {
		a := NewMemoryAdapter()
		a.maxConcurrent = cfg.MaxConcurrentQueries
		return a, nil
	})
}

// scripted holds the canned outcome for one exact query string.
type scripted struct {
	result *QueryResult
	err    error
}

// MemoryAdapter is an in-memory adapter for tests and local development.
// Results are scripted per exact query string; unscripted queries return
// an empty result so investigations can run end to end without a
// warehouse.
type MemoryAdapter struct {
	mu            sync.Mutex
	schema        *SchemaResponse
	responses     map[string]scripted
	executed      []string
	maxConcurrent int
	closed        bool
}

// NewMemoryAdapter returns an adapter with an empty schema and no
// scripted responses.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		schema:    &SchemaResponse{},
		responses: map[string]scripted{},
	}
}

// SetSchema replaces the schema returned by GetSchema.
func (a *MemoryAdapter) SetSchema(s *SchemaResponse) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.schema = s
}

// ScriptResult registers a canned result for an exact query string.
func (a *MemoryAdapter) ScriptResult(sql string, result *QueryResult) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[sql] = scripted{result: result}
}

// ScriptError registers a canned error for an exact query string.
func (a *MemoryAdapter) ScriptError(sql string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[sql] = scripted{err: err}
}

// ExecutedQueries returns the queries seen so far, in order.
func (a *MemoryAdapter) ExecutedQueries() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.executed))
	copy(out, a.executed)
	return out
}

func (a *MemoryAdapter) ExecuteQuery(ctx context.Context, sql string, opts QueryOptions) (*QueryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewAdapterError(ErrQueryTimeout, "context cancelled", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil, NewAdapterError(ErrConnectionFailed, "adapter is closed", nil)
	}
	a.executed = append(a.executed, sql)
	if s, ok := a.responses[sql]; ok {
		if s.err != nil {
			return nil, s.err
		}
		return s.result, nil
	}
	return &QueryResult{}, nil
}

func (a *MemoryAdapter) GetSchema(ctx context.Context) (*SchemaResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewAdapterError(ErrSchemaFetchFailed, "context cancelled", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil, NewAdapterError(ErrConnectionFailed, "adapter is closed", nil)
	}
	return a.schema, nil
}

func (a *MemoryAdapter) MaxConcurrentQueries() int { return a.maxConcurrent }

func (a *MemoryAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	return nil
}
