package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasleuth/sleuth/ent"
	entinvestigation "github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
	"github.com/datasleuth/sleuth/pkg/queue"
	"github.com/datasleuth/sleuth/pkg/services"
)

type fakeInvStore struct {
	rows      map[string]*ent.Investigation
	createErr error
	created   []models.CreateInvestigationRequest
	filters   *models.InvestigationFilters
}

func (f *fakeInvStore) CreateInvestigation(_ context.Context, req models.CreateInvestigationRequest) (*ent.Investigation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &ent.Investigation{
		ID:        req.InvestigationID,
		TenantID:  req.TenantID,
		DatasetID: req.Alert.DatasetID,
		Status:    entinvestigation.StatusPending,
	}, nil
}

func (f *fakeInvStore) GetInvestigation(_ context.Context, id string) (*ent.Investigation, error) {
	if inv, ok := f.rows[id]; ok {
		return inv, nil
	}
	return nil, services.ErrNotFound
}

func (f *fakeInvStore) ListInvestigations(_ context.Context, filters models.InvestigationFilters) (*services.InvestigationList, error) {
	f.filters = &filters
	rows := make([]*ent.Investigation, 0, len(f.rows))
	for _, inv := range f.rows {
		rows = append(rows, inv)
	}
	return &services.InvestigationList{Investigations: rows, TotalCount: len(rows)}, nil
}

type fakeSignals struct {
	signals []*ent.TrainingSignal
}

func (f *fakeSignals) ListByInvestigation(context.Context, string) ([]*ent.TrainingSignal, error) {
	return f.signals, nil
}

type fakePool struct {
	health  *queue.PoolHealth
	running map[string]bool
}

func (f *fakePool) Health() *queue.PoolHealth { return f.health }
func (f *fakePool) CancelInvestigation(id string) bool {
	return f.running[id]
}

func newTestServer(store *fakeInvStore, signals SignalStore, pool PoolStatus) *Server {
	return NewServer(store, signals, nil, pool, slog.New(slog.DiscardHandler))
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCreateAlertHandler(t *testing.T) {
	t.Run("queues investigation", func(t *testing.T) {
		store := &fakeInvStore{}
		s := newTestServer(store, nil, nil)

		body := `{
			"tenant_id": "tenant-a",
			"alert": {
				"dataset_id": "sales.orders",
				"metric_spec": {"metric_type": "column", "column": "user_id", "display_name": "user_id"},
				"anomaly_type": "null_rate",
				"anomaly_date": "2024-01-15"
			}
		}`
		rec := doRequest(t, s, http.MethodPost, "/api/v1/alerts", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp AlertResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.InvestigationID, "missing id must be generated")
		assert.Equal(t, "pending", resp.Status)

		require.Len(t, store.created, 1)
		assert.Equal(t, "sales.orders", store.created[0].Alert.DatasetID)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(&fakeInvStore{}, nil, nil)
		rec := doRequest(t, s, http.MethodPost, "/api/v1/alerts", "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation error from service", func(t *testing.T) {
		store := &fakeInvStore{createErr: services.NewValidationError("tenant_id", "required")}
		s := newTestServer(store, nil, nil)
		rec := doRequest(t, s, http.MethodPost, "/api/v1/alerts", `{"alert":{}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "tenant_id")
	})

	t.Run("duplicate investigation", func(t *testing.T) {
		store := &fakeInvStore{createErr: services.ErrAlreadyExists}
		s := newTestServer(store, nil, nil)
		rec := doRequest(t, s, http.MethodPost, "/api/v1/alerts", `{"investigation_id":"inv-1","alert":{}}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetInvestigationHandler(t *testing.T) {
	store := &fakeInvStore{rows: map[string]*ent.Investigation{
		"inv-1": {ID: "inv-1", TenantID: "tenant-a", Status: entinvestigation.StatusCompleted},
	}}
	s := newTestServer(store, nil, nil)

	t.Run("found", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/investigations/inv-1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"inv-1"`)
	})

	t.Run("not found", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/investigations/missing", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetInvestigationEventsHandler(t *testing.T) {
	store := &fakeInvStore{rows: map[string]*ent.Investigation{
		"inv-1": {
			ID:     "inv-1",
			Status: entinvestigation.StatusCompleted,
			Events: []map[string]interface{}{
				{"type": "investigation_started"},
				{"type": "synthesis_completed"},
			},
		},
		"inv-empty": {ID: "inv-empty", Status: entinvestigation.StatusPending},
	}}
	s := newTestServer(store, nil, nil)

	t.Run("returns event log", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/investigations/inv-1/events", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			InvestigationID string           `json:"investigation_id"`
			Events          []map[string]any `json:"events"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Events, 2)
		assert.Equal(t, "investigation_started", resp.Events[0]["type"])
	})

	t.Run("no events yet", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/investigations/inv-empty/events", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"events":[]`)
	})
}

func TestListInvestigationsHandler(t *testing.T) {
	store := &fakeInvStore{rows: map[string]*ent.Investigation{
		"inv-1": {ID: "inv-1", Status: entinvestigation.StatusPending},
	}}
	s := newTestServer(store, nil, nil)

	t.Run("passes filters through", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet,
			"/api/v1/investigations?status=pending&tenant_id=tenant-a&limit=10&offset=5", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, store.filters)
		assert.Equal(t, "pending", store.filters.Status)
		assert.Equal(t, "tenant-a", store.filters.TenantID)
		assert.Equal(t, 10, store.filters.Limit)
		assert.Equal(t, 5, store.filters.Offset)
	})

	t.Run("invalid status", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/investigations?status=bogus", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid limit", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/investigations?limit=0", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/investigations?started_after=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetInvestigationSignalsHandler(t *testing.T) {
	store := &fakeInvStore{rows: map[string]*ent.Investigation{
		"inv-1": {ID: "inv-1"},
	}}

	t.Run("not configured", func(t *testing.T) {
		s := newTestServer(store, nil, nil)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/investigations/inv-1/signals", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unknown investigation", func(t *testing.T) {
		s := newTestServer(store, &fakeSignals{}, nil)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/investigations/missing/signals", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns signals", func(t *testing.T) {
		signals := &fakeSignals{signals: []*ent.TrainingSignal{{ID: "sig-1", InvestigationID: "inv-1"}}}
		s := newTestServer(store, signals, nil)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/investigations/inv-1/signals", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "sig-1")
	})
}

func TestCancelInvestigationHandler(t *testing.T) {
	t.Run("no worker pool", func(t *testing.T) {
		s := newTestServer(&fakeInvStore{}, nil, nil)
		rec := doRequest(t, s, http.MethodPost, "/api/v1/investigations/inv-1/cancel", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("not running on this pod", func(t *testing.T) {
		pool := &fakePool{running: map[string]bool{}}
		s := newTestServer(&fakeInvStore{}, nil, pool)
		rec := doRequest(t, s, http.MethodPost, "/api/v1/investigations/inv-1/cancel", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("cancelled", func(t *testing.T) {
		pool := &fakePool{running: map[string]bool{"inv-1": true}}
		s := newTestServer(&fakeInvStore{}, nil, pool)
		rec := doRequest(t, s, http.MethodPost, "/api/v1/investigations/inv-1/cancel", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "cancellation requested")
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy pool", func(t *testing.T) {
		pool := &fakePool{health: &queue.PoolHealth{IsHealthy: true}}
		s := newTestServer(&fakeInvStore{}, nil, pool)
		rec := doRequest(t, s, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, healthStatusHealthy, resp.Status)
		assert.Equal(t, healthStatusHealthy, resp.Checks["worker_pool"].Status)
	})

	t.Run("degraded pool", func(t *testing.T) {
		pool := &fakePool{health: &queue.PoolHealth{IsHealthy: false, DBError: "queue depth query failed"}}
		s := newTestServer(&fakeInvStore{}, nil, pool)
		rec := doRequest(t, s, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, healthStatusDegraded, resp.Status)
		assert.Contains(t, resp.Checks["worker_pool"].Message, "queue depth")
	})
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(&fakeInvStore{}, nil, nil)
	rec := doRequest(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
