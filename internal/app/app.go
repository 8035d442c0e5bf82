package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	pb "github.com/godilite/sentiment-monitor/api/v1"
	"github.com/godilite/sentiment-monitor/internal/config"
	handler "github.com/godilite/sentiment-monitor/internal/grpc"
	"github.com/godilite/sentiment-monitor/internal/httpapi"
	"github.com/godilite/sentiment-monitor/internal/repository"
	"github.com/godilite/sentiment-monitor/internal/service"
	"github.com/godilite/sentiment-monitor/pkg/cache"
	dbbuilder "github.com/godilite/sentiment-monitor/pkg/database"
	grpcsrv "github.com/godilite/sentiment-monitor/pkg/grpc/server"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      cache.Cacher
	service    *service.FeedbackService
	grpcServer *grpcsrv.Server
	httpServer *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dialect := repository.DialectFor(cfg.DBDriver)
	if dialect == repository.DialectSQLite && !dbbuilder.IsMemory(cfg.DBPath) {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dbPool, err := dbbuilder.New(ctx,
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
		dbbuilder.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("driver", cfg.DBDriver))

	if err := repository.EnsureSchema(ctx, dbPool, dialect); err != nil {
		_ = dbPool.Close()
		return nil, fmt.Errorf("schema init failed: %w", err)
	}

	var cacheClient cache.Cacher = cache.Nop{}
	if cfg.RedisAddr != "" {
		redisCache, err := cache.New(ctx, cache.WithAddress(cfg.RedisAddr))
		if err != nil {
			_ = dbPool.Close()
			return nil, fmt.Errorf("cache init failed: %w", err)
		}
		cacheClient = redisCache
		logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
	} else {
		logger.Info("REDIS_ADDR not set, reads go straight to the database")
	}

	feedbackService := service.NewFeedbackService(
		repository.NewFeedbackRepository(dbPool, dialect),
		repository.NewAnalyticsRepository(dbPool, dialect),
		logger,
		service.WithCache(cacheClient, cfg.CacheTTL),
		service.WithDefaultEventID(cfg.DefaultEventID),
	)

	// bring a carried-over database's snapshot in line with its records
	if _, err := feedbackService.RecomputeAnalytics(ctx); err != nil {
		logger.Warn("initial analytics recompute failed", zap.Error(err))
	}

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	)
	if err != nil {
		_ = cacheClient.Close()
		_ = dbPool.Close()
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	pb.RegisterFeedbackServiceServer(grpcServer, handler.NewGRPCHandlers(feedbackService, logger, cfg.GRPCRequestTimeout))

	httpServer, err := httpapi.New(feedbackService,
		httpapi.WithPort(cfg.HTTPPort),
		httpapi.WithLogger(logger),
		httpapi.WithAllowedOrigins(cfg.CORSOrigin),
	)
	if err != nil {
		grpcServer.Stop()
		_ = cacheClient.Close()
		_ = dbPool.Close()
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		service:    feedbackService,
		grpcServer: grpcServer,
		httpServer: httpServer,
	}, nil
}

// Start launches both servers and returns immediately.
func (a *App) Start() {
	a.logger.Info("application starting")
	a.grpcServer.Start()
	a.httpServer.Start()
}

// Run starts the application and blocks until ctx is done or a shutdown
// signal is received.
func (a *App) Run(ctx context.Context) error {
	a.Start()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.Shutdown(shutdownCtx)
}

// Shutdown stops the servers, then releases the cache and database.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("application shutting down")

	var firstErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("HTTP shutdown error", zap.Error(err))
		firstErr = err
	}
	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Error("gRPC shutdown error", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	if firstErr == nil {
		a.logger.Info("graceful shutdown completed successfully")
	}
	_ = a.logger.Sync()
	return firstErr
}

// GRPCAddr and HTTPAddr report the bound listener addresses.
func (a *App) GRPCAddr() string { return a.grpcServer.Addr().String() }

func (a *App) HTTPAddr() string { return a.httpServer.Addr().String() }
