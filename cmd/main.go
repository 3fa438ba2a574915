package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "perfcore/internal/adapter/http"
	"perfcore/internal/adapter/memory"
	"perfcore/internal/adapter/postgres"
	"perfcore/internal/adapter/usecase"
	"perfcore/internal/config"
	"perfcore/internal/core/port"
	"perfcore/internal/db"
	"perfcore/internal/generator"
)

// main is the entry point of the analytics server. It loads configuration,
// connects to PostgreSQL when DATABASE_URL is set (falling back to
// in-memory storage otherwise), optionally runs migrations, then starts the
// HTTP server. On receiving a termination signal it gracefully shuts down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.NewLogger(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.AnalyticsRepository
	if cfg.Psql.Enabled() {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.URL); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewAnalyticsRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set. Using in-memory storage.")
		repo = memory.NewAnalyticsRepository()
	}

	svc := usecase.NewAnalyticsUseCase(repo, generator.New(cfg.Seed.RandSeed), logger)
	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err = serve(ctx, srv, logger); err != nil {
		logger.Error("server error", slog.Any("error", err))
		return
	}
	exitCode = 0
}

// serve runs srv until ctx is done, then shuts it down gracefully. A
// listen failure is returned as soon as it happens.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return nil
}
