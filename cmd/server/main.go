package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forkfeed/forkfeed/internal/api"
	"github.com/forkfeed/forkfeed/internal/backend"
	"github.com/forkfeed/forkfeed/internal/cache"
	"github.com/forkfeed/forkfeed/internal/follow"
	"github.com/forkfeed/forkfeed/internal/store"
	"github.com/forkfeed/forkfeed/internal/sync"
	"github.com/forkfeed/forkfeed/pkg/config"
	"github.com/forkfeed/forkfeed/pkg/logging"
	"github.com/forkfeed/forkfeed/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Starting Forkfeed sync engine")

	// Initialize telemetry
	telemetryShutdown, err := telemetry.Init(&cfg.Telemetry)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer telemetryShutdown()

	// Connect the remote backend if configured. Connection failure is not
	// fatal: the follow graph degrades to the local mirror and other
	// collections surface per-collection fetch errors.
	var repo *backend.Repository
	var syncBackend sync.Backend
	var remoteFollows follow.RemoteBackend
	if cfg.Backend.Configured {
		db, err := backend.New(&cfg.Backend, cfg.Logging.Level)
		if err != nil {
			logger.Warn("Backend unreachable, continuing degraded", zap.Error(err))
		} else {
			defer db.Close()
			repo = backend.NewRepository(db)
			syncBackend = repo
			remoteFollows = repo
		}
	} else {
		logger.Info("Backend not configured, follow graph will use local mirror")
	}

	// Optional collection mirror
	mirror, err := cache.New(&cfg.Redis)
	if err != nil {
		logger.Warn("Collection mirror unavailable", zap.Error(err))
		mirror = nil
	}
	defer mirror.Close()

	// Session
	var session *sync.Session
	if cfg.Session.UserID != "" {
		session = &sync.Session{UserID: cfg.Session.UserID}
	}

	// Select the follow source once for the session
	probeCtx, probeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	slot := follow.NewFileSlot(cfg.Local.StateDir, follow.SlotKey)
	follows, err := follow.Select(probeCtx, repo != nil, remoteFollows, cfg.Session.UserID, slot)
	probeCancel()
	if err != nil {
		logger.Fatal("Failed to initialize follow source", zap.Error(err))
	}

	// Wire the engine and warm-start from mirrored collections
	engine := sync.NewEngine(syncBackend, store.New(), follows, mirror, session)
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 5*time.Second)
	engine.WarmStart(warmCtx)
	warmCancel()

	// Create Gin router
	if cfg.Logging.Level == "DEBUG" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	api.NewRouter(engine).SetupRoutes(router)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
