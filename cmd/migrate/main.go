// Command migrate applies or inspects the database schema.
//
// Usage:
//
//	migrate up | down | status
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/speedsales/studio-backend/internal/adapter/postgres"
	"github.com/speedsales/studio-backend/internal/app"
	"github.com/speedsales/studio-backend/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: migrate up|down|status")
		os.Exit(2)
	}
	cmd := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		logger.Error("init migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close()

	switch cmd {
	case "up":
		n, err := m.Up(ctx)
		if err != nil {
			logger.Error("migrate up failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied", slog.Int("count", n))
	case "down":
		if err := m.Down(ctx); err != nil {
			logger.Error("migrate down failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("rolled back one migration")
	case "status":
		status, err := m.Status(ctx)
		if err != nil {
			logger.Error("migrate status failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, s := range status {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%05d  %-8s %s\n", s.Version, state, s.Source)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\nUsage: migrate up|down|status\n", cmd)
		os.Exit(2)
	}
}
