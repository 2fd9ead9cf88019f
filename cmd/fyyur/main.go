// Package main is the entry point for the Fyyur web server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pkordes/fyyur/internal/config"
	"github.com/pkordes/fyyur/internal/handler"
	"github.com/pkordes/fyyur/internal/middleware"
	"github.com/pkordes/fyyur/internal/repo"
	"github.com/pkordes/fyyur/internal/service"
	"github.com/pkordes/fyyur/migrations"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// run wires the server and blocks until ctx is cancelled. Every failure is
// returned rather than exiting, so the deferred closes always run.
func run(ctx context.Context) error {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	showZone, err := time.LoadLocation(cfg.ShowTimeZone)
	if err != nil {
		return fmt.Errorf("show time zone %q: %w", cfg.ShowTimeZone, err)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		defer rotating.Close()
		out = io.MultiWriter(os.Stdout, rotating)
	}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	slog.Info("database connection established")

	if cfg.MigrateOnStart {
		// goose drives database/sql; borrow a handle from the pool.
		sqlDB := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(ctx, sqlDB)
		sqlDB.Close()
		if err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		slog.Info("migrations applied", "versions", applied)
	}

	// --- Services ---------------------------------------------------------
	venues := repo.NewVenueRepo(pool)
	artists := repo.NewArtistRepo(pool)
	shows := repo.NewShowRepo(pool)

	// Both services share the show zone so a time reads back as entered.
	queries := service.NewQueryService(venues, artists, shows).WithLocation(showZone)
	mutations := service.NewMutationService(venues, artists, shows, logger).WithLocation(showZone)
	export := service.NewExportService(shows)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID, RealIP, Logger, Recoverer,
	// Metrics, CORS, MaxBodySize.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	// Metrics sits inside Recoverer so a panicking request is still counted.
	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Handler)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", promhttp.Handler())
	handler.NewServer(queries, mutations, export, logger).Routes(r)

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	// Give in-flight requests up to 15 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
