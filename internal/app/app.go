// Package app wires configuration, adapters, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/speedsales/studio-backend/internal/adapter/postgres"
	"github.com/speedsales/studio-backend/internal/adapter/postgres/dailylog"
	"github.com/speedsales/studio-backend/internal/adapter/postgres/expense"
	"github.com/speedsales/studio-backend/internal/adapter/postgres/inquiry"
	"github.com/speedsales/studio-backend/internal/adapter/postgres/marketing"
	"github.com/speedsales/studio-backend/internal/adapter/postgres/opslog"
	"github.com/speedsales/studio-backend/internal/adapter/postgres/order"
	"github.com/speedsales/studio-backend/internal/adapter/postgres/product"
	"github.com/speedsales/studio-backend/internal/adapter/provider/anthropic"
	"github.com/speedsales/studio-backend/internal/adapter/redis"
	"github.com/speedsales/studio-backend/internal/adapter/redis/idempotency"
	"github.com/speedsales/studio-backend/internal/auth"
	"github.com/speedsales/studio-backend/internal/config"
	"github.com/speedsales/studio-backend/internal/provider"
	"github.com/speedsales/studio-backend/internal/service/catalog"
	"github.com/speedsales/studio-backend/internal/service/command"
	"github.com/speedsales/studio-backend/internal/service/copywriter"
	"github.com/speedsales/studio-backend/internal/service/operations"
	"github.com/speedsales/studio-backend/internal/service/support"
	"github.com/speedsales/studio-backend/internal/service/tool"
	"github.com/speedsales/studio-backend/internal/transport/middleware"
	"github.com/speedsales/studio-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when enabled), serves HTTP until ctx is canceled and
// then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("llm_configured", cfg.LLM.Configured()),
		slog.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrateUp(ctx, pool, logger); err != nil {
			return err
		}
	}

	checks := []rest.Check{{Name: "database", Ping: pool.Ping}}

	var rdb *goredis.Client
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
		checks = append(checks, rest.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Log:       logger,
		Tokens:    auth.NewJWTManager(cfg.Auth),
		Limiter:   limiter,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
	}, buildHandlers(cfg, pool, rdb, logger, checks))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

func buildHandlers(cfg *config.Config, pool *pgxpool.Pool, rdb *goredis.Client, logger *slog.Logger, checks []rest.Check) rest.Handlers {
	products := product.New(pool)
	orders := order.New(pool)
	expenses := expense.New(pool)
	inquiries := inquiry.New(pool)

	var llm provider.ChatClient
	if cfg.LLM.Configured() {
		llm = anthropic.New(cfg.LLM, logger)
	} else {
		logger.Warn("llm api key not set; command and copy endpoints will answer 500")
	}

	tools := tool.NewService(logger, products, orders, expenses, inquiries)
	commands := command.NewService(logger, llm, tools, dailylog.New(pool), cfg.Interpreter)
	if rdb != nil {
		commands.WithIdempotency(idempotency.New(rdb, cfg.Redis.IdempotencyTTL, cfg.Redis.PendingTTL))
	}

	return rest.Handlers{
		Health:    rest.NewHealthHandler(Version, checks...),
		Command:   rest.NewCommandHandler(commands, logger),
		Catalog:   rest.NewCatalogHandler(catalog.NewService(logger, products, orders, expenses, postgres.NewTxManager(pool)), logger),
		Support:   rest.NewSupportHandler(support.NewService(logger, inquiries), logger),
		Marketing: rest.NewMarketingHandler(copywriter.NewService(logger, llm, marketing.New(pool)), logger),
		OpsLog:    rest.NewOpsLogHandler(operations.NewService(logger, opslog.New(pool)), logger),
	}
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	n, err := m.Up(ctx)
	if err != nil {
		return err
	}
	logger.Info("migrations applied", slog.Int("count", n))
	return nil
}
