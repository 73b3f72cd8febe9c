package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"insight-agent/internal/adapter/api"
	"insight-agent/internal/adapter/store"
	"insight-agent/internal/analyzer"
	"insight-agent/internal/config"
	"insight-agent/internal/domain/repository"
	"insight-agent/internal/logging"
	"insight-agent/internal/usecase"

	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	cfg, err := config.Load(env)
	if err != nil {
		return err
	}
	logging.InitLogger(cfg.LogLevel, cfg.RunningOnCloud())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter, closeLimiter := newLimiter(ctx, cfg)
	defer closeLimiter()

	orchestrator := usecase.NewOrchestrator(analyzer.New(), limiter)

	// Initialize API Layer (Delivery Layer)
	app := api.NewApp()
	handler := api.NewAnalysisHandler(orchestrator, cfg.AppVersion)
	api.SetupRouter(app, handler, api.RouterConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AccessLog:    !cfg.RunningOnCloud(),
	})

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Insight-Agent API listening", "addr", cfg.Addr(), "env", cfg.Env, "version", cfg.AppVersion)
		serverErrors <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		slog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			return err
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

// newLimiter returns a Redis backed quota when configured. An unreachable
// Redis is logged and the limiter fails open per request.
func newLimiter(ctx context.Context, cfg *config.Config) (repository.RequestLimiter, func()) {
	if !cfg.RateLimitEnabled() {
		slog.Info("rate limiting disabled")
		return store.NoopLimiter{}, func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis not reachable at startup", "addr", cfg.RedisAddr, "error", err)
	}

	slog.Info("rate limiting enabled", "requests", cfg.RateLimitRequests, "window", cfg.RateLimitWindow)
	return store.NewRedisLimiter(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow), func() { _ = rdb.Close() }
}
