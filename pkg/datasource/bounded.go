package datasource

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// boundedAdapter enforces the adapter's declared MaxConcurrentQueries
// with a weighted semaphore. Hypothesis workers all share one adapter,
// so the bound must live here rather than in each caller.
type boundedAdapter struct {
	Adapter
	sem *semaphore.Weighted
}

// Bounded wraps an adapter with its declared concurrency bound.
// Adapters declaring a bound of zero or less are returned unwrapped.
func Bounded(a Adapter) Adapter {
	n := a.MaxConcurrentQueries()
	if n <= 0 {
		return a
	}
	return &boundedAdapter{Adapter: a, sem: semaphore.NewWeighted(int64(n))}
}

func (b *boundedAdapter) ExecuteQuery(ctx context.Context, sql string, opts QueryOptions) (*QueryResult, error) {
	if err := b.sem.Acquire(ctx, 1); err != nil {
		return nil, NewAdapterError(ErrInternal, "cancelled while waiting for a query slot", err)
	}
	defer b.sem.Release(1)
	return b.Adapter.ExecuteQuery(ctx, sql, opts)
}
