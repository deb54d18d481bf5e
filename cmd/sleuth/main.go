// Sleuth server — accepts anomaly alerts over HTTP, runs LLM-driven
// root-cause investigations through the worker pool, and serves the
// resulting findings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/datasleuth/sleuth/pkg/agent"
	"github.com/datasleuth/sleuth/pkg/api"
	"github.com/datasleuth/sleuth/pkg/cleanup"
	"github.com/datasleuth/sleuth/pkg/config"
	"github.com/datasleuth/sleuth/pkg/contextengine"
	"github.com/datasleuth/sleuth/pkg/database"
	"github.com/datasleuth/sleuth/pkg/datasource"
	"github.com/datasleuth/sleuth/pkg/feedback"
	"github.com/datasleuth/sleuth/pkg/investigation"
	"github.com/datasleuth/sleuth/pkg/lineage"
	"github.com/datasleuth/sleuth/pkg/orchestrator"
	"github.com/datasleuth/sleuth/pkg/queue"
	"github.com/datasleuth/sleuth/pkg/services"
	"github.com/datasleuth/sleuth/pkg/validator"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica claiming.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// orchestratorConfig maps the YAML tuning section onto the orchestrator.
func orchestratorConfig(c *config.OrchestratorConfig) orchestrator.Config {
	return orchestrator.Config{
		MaxHypotheses:           c.MaxHypotheses,
		MaxQueriesPerHypothesis: c.MaxQueriesPerHypothesis,
		MaxRetriesPerHypothesis: c.MaxRetriesPerHypothesis,
		QueryTimeout:            c.QueryTimeout,
		HighConfidenceThreshold: c.HighConfidenceThreshold,
	}
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	podID := resolvePodID()
	slog.Info("Starting sleuth", "pod_id", podID, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	invService := services.NewInvestigationService(dbClient.Client)
	signalService := services.NewSignalService(dbClient.Client)

	// 3. Data source. The first configured source is the investigation
	// target; remaining entries are validated but unused until the
	// per-dataset routing lands.
	source, err := datasource.New(ctx, cfg.DataSources[0])
	if err != nil {
		slog.Error("Failed to initialize data source",
			"name", cfg.DataSources[0].Name, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := source.Close(); err != nil {
			slog.Error("Error closing data source", "error", err)
		}
	}()
	slog.Info("Data source initialized", "name", cfg.DataSources[0].Name)

	// 4. Lineage catalog (optional)
	var lineageAdapter lineage.Adapter
	if cfg.Lineage != nil {
		lineageAdapter, err = lineage.New(ctx, *cfg.Lineage)
		if err != nil {
			slog.Error("Failed to initialize lineage catalog", "error", err)
			os.Exit(1)
		}
	} else {
		lineageAdapter = lineage.NewStaticCatalog(nil, nil)
	}

	// 5. LLM client and investigation agent
	// Note: grpc.NewClient dials lazily; the connection is made on first RPC.
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	llmClient, err := agent.NewGRPCLLMClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", llmAddr)

	providerCfg, err := cfg.GetLLMProvider("")
	if err != nil {
		slog.Error("Default LLM provider not configured", "error", err)
		os.Exit(1)
	}
	agentClient := agent.NewClient(llmClient, providerCfg, logger)

	// 6. Quality validator (optional, judged by its own provider)
	var qualityValidator orchestrator.QualityValidator
	if cfg.Validation.IsEnabled() {
		judgeProvider, err := cfg.GetLLMProvider(cfg.Validation.Provider)
		if err != nil {
			slog.Error("Validation provider not configured", "error", err)
			os.Exit(1)
		}
		judge := agent.NewClient(llmClient, judgeProvider, logger)
		qualityValidator = validator.NewQualityValidator(judge, signalService, cfg.Validation.PassThreshold, logger)
		slog.Info("Quality validator enabled",
			"provider", judgeProvider.Model,
			"pass_threshold", cfg.Validation.PassThreshold)
	}

	// 7. Orchestrator with feedback and circuit breaker
	emitter := feedback.NewEmitter(dbClient.Client, dbClient.DB(), logger)
	gatherer := contextengine.NewEngine(source, lineageAdapter, logger)
	orch := orchestrator.New(
		orchestratorConfig(cfg.Orchestrator),
		agentClient,
		source,
		gatherer,
		orchestrator.Options{
			Validator: qualityValidator,
			Feedback:  emitter,
			Breaker:   investigation.NewCircuitBreaker(cfg.Breaker),
		},
		logger,
	)

	// 8. Worker pool (recovers this pod's orphans, then starts claiming)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, invService, cfg.Queue, orch)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Background retention (optional)
	var cleanupService *cleanup.Service
	if cfg.Retention.IsEnabled() {
		cleanupService = cleanup.NewService(cfg.Retention, services.NewRetentionService(dbClient.Client))
		cleanupService.Start(ctx)
	}

	// 10. HTTP server (non-blocking)
	httpServer := api.NewServer(invService, signalService, dbClient, workerPool, logger)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Sleuth started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: let running investigations finish, then
	// stop the HTTP server with its own timeout budget.
	if cleanupService != nil {
		cleanupService.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete investigations will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
