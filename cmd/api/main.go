package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/crm-api/internal/config"
	dbpkg "github.com/BruksfildServices01/crm-api/internal/db"
	"github.com/BruksfildServices01/crm-api/internal/infra/memstore"
	infraRepo "github.com/BruksfildServices01/crm-api/internal/infra/repository"
	"github.com/BruksfildServices01/crm-api/internal/infra/storage"
	"github.com/BruksfildServices01/crm-api/internal/infra/tokenstore"
	"github.com/BruksfildServices01/crm-api/internal/logger"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/routes"
)

const serviceName = "crm-api"

func main() {
	cfg := config.Load()

	log, err := logger.Init(cfg.Env, cfg.LogLevel, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if cfg.JWTSecret == "changeme" {
			return errors.New("JWT_SECRET must be set in production")
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := routes.Deps{
		Config:  cfg,
		Metrics: metrics.New(reg, serviceName),
		Logger:  log,
	}

	// ======================================================
	// STORAGE
	// ======================================================
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		store := memstore.New()
		deps.Users = store.Users()
		deps.Contacts = store.Contacts()
		deps.Projects = store.Projects()
		deps.Revocations = store.Revocations()

	case config.StorageDriverPostgres:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		deps.Users = infraRepo.NewUserGormRepository(db)
		deps.Contacts = infraRepo.NewContactGormRepository(db)
		deps.Projects = infraRepo.NewProjectGormRepository(db)

		gormTokens := tokenstore.NewGormStore(db)
		if n, err := gormTokens.Purge(ctx); err != nil {
			log.Warn("failed to purge expired revocations", zap.Error(err))
		} else if n > 0 {
			log.Info("purged expired revocations", zap.Int64("rows", n))
		}
		deps.Revocations = gormTokens

	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	// Redis takes over token revocation when configured.
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		deps.Revocations = tokenstore.NewRedisStore(rdb)
		log.Info("token revocations stored in redis", zap.String("addr", cfg.RedisAddr))
	}

	if cfg.S3.Enabled() {
		deps.Objects = storage.NewS3Store(cfg.S3)
		log.Info("avatar uploads enabled", zap.String("bucket", cfg.S3.Bucket))
	}

	// ======================================================
	// HTTP
	// ======================================================
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
