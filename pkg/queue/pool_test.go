package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_StartRecoversOrphans(t *testing.T) {
	store := newFakeStore()
	store.recovered = 2

	pool := NewWorkerPool("pod-1", nil, store, testQueueConfig(), &fakeRunner{})
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	assert.Equal(t, 2, pool.recovered)
	assert.Len(t, pool.workers, 1)
}

func TestWorkerPool_StartIsIdempotent(t *testing.T) {
	store := newFakeStore()

	pool := NewWorkerPool("pod-1", nil, store, testQueueConfig(), &fakeRunner{})
	require.NoError(t, pool.Start(context.Background()))
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	assert.Len(t, pool.workers, 1)
}

func TestWorkerPool_CancelRegistry(t *testing.T) {
	pool := NewWorkerPool("pod-1", nil, newFakeStore(), testQueueConfig(), &fakeRunner{})

	cancelled := false
	pool.RegisterInvestigation("inv-1", func() { cancelled = true })

	assert.False(t, pool.CancelInvestigation("inv-unknown"))
	assert.True(t, pool.CancelInvestigation("inv-1"))
	assert.True(t, cancelled)

	pool.UnregisterInvestigation("inv-1")
	assert.False(t, pool.CancelInvestigation("inv-1"))
}

func TestWorkerPool_GracefulStopWaitsForWorkers(t *testing.T) {
	store := newFakeStore(pendingRow(t, "inv-1"))
	pool := NewWorkerPool("pod-1", nil, store, testQueueConfig(), &fakeRunner{})
	require.NoError(t, pool.Start(context.Background()))

	waitForTerminal(t, store, 1)
	pool.Stop()

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, store.failed, 1) // no scripted finding -> failed terminal write
}
