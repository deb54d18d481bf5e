// Package api provides the HTTP surface: alert intake, investigation
// reads, health, and metrics.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/datasleuth/sleuth/ent"
	"github.com/datasleuth/sleuth/pkg/database"
	"github.com/datasleuth/sleuth/pkg/models"
	"github.com/datasleuth/sleuth/pkg/queue"
	"github.com/datasleuth/sleuth/pkg/services"
)

// InvestigationStore is the subset of services.InvestigationService the
// HTTP handlers need.
type InvestigationStore interface {
	CreateInvestigation(ctx context.Context, req models.CreateInvestigationRequest) (*ent.Investigation, error)
	GetInvestigation(ctx context.Context, id string) (*ent.Investigation, error)
	ListInvestigations(ctx context.Context, filters models.InvestigationFilters) (*services.InvestigationList, error)
}

// SignalStore reads validator training signals for an investigation.
type SignalStore interface {
	ListByInvestigation(ctx context.Context, investigationID string) ([]*ent.TrainingSignal, error)
}

// PoolStatus is the subset of queue.WorkerPool the server needs for
// health reporting and pod-local cancellation.
type PoolStatus interface {
	Health() *queue.PoolHealth
	CancelInvestigation(invID string) bool
}

// Server is the HTTP server.
type Server struct {
	store      InvestigationStore
	signals    SignalStore
	dbClient   *database.Client
	workerPool PoolStatus
	logger     *slog.Logger

	engine     *gin.Engine
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
// workerPool and signals may be nil (API-only deployments).
func NewServer(store InvestigationStore, signals SignalStore, dbClient *database.Client, workerPool PoolStatus, logger *slog.Logger) *Server {
	s := &Server{
		store:      store,
		signals:    signals,
		dbClient:   dbClient,
		workerPool: workerPool,
		logger:     logger.With("component", "api"),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(s.logger), securityHeaders())

	engine.GET("/health", s.healthHandler)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/alerts", s.createAlertHandler)
		v1.GET("/investigations", s.listInvestigationsHandler)
		v1.GET("/investigations/:id", s.getInvestigationHandler)
		v1.GET("/investigations/:id/events", s.getInvestigationEventsHandler)
		v1.GET("/investigations/:id/signals", s.getInvestigationSignalsHandler)
		v1.POST("/investigations/:id/cancel", s.cancelInvestigationHandler)
	}

	s.engine = engine
	return s
}

// Start begins serving on the given address. Blocks until the server
// stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
