// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Shelfwise HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent, AUTO_MIGRATE).
//  6. Wire repositories, services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/shelfwise/data/migrations"
	"github.com/taibuivan/shelfwise/internal/api"
	"github.com/taibuivan/shelfwise/internal/core/author"
	"github.com/taibuivan/shelfwise/internal/core/book"
	"github.com/taibuivan/shelfwise/internal/core/bookgenre"
	"github.com/taibuivan/shelfwise/internal/core/bookshelf"
	"github.com/taibuivan/shelfwise/internal/core/genre"
	"github.com/taibuivan/shelfwise/internal/core/image"
	"github.com/taibuivan/shelfwise/internal/core/progress"
	"github.com/taibuivan/shelfwise/internal/core/review"
	"github.com/taibuivan/shelfwise/internal/core/shelfbook"
	"github.com/taibuivan/shelfwise/internal/platform/config"
	"github.com/taibuivan/shelfwise/internal/platform/constants"
	"github.com/taibuivan/shelfwise/internal/platform/migration"
	pgstore "github.com/taibuivan/shelfwise/internal/platform/postgres"
	redisstore "github.com/taibuivan/shelfwise/internal/platform/redis"
	"github.com/taibuivan/shelfwise/internal/platform/sec"
	"github.com/taibuivan/shelfwise/internal/users/account"
	"github.com/taibuivan/shelfwise/internal/users/profile"
	"github.com/taibuivan/shelfwise/internal/users/session"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("auto_migrate", cfg.AutoMigrate),
	)

	// Root context for startup. A 30s deadline catches misconfiguration
	// quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, pgstore.PoolOptions{
		MaxConns:         cfg.DBMaxConns,
		StatementTimeout: constants.GlobalRequestTimeout,
	}, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if cfg.AutoMigrate {
		result, err := migration.Up(cfg.DatabaseURL, migrations.FS, log)
		must(log, err, "run migrations")
		log.Info("schema_migrated",
			slog.Uint64("from_version", uint64(result.From)),
			slog.Uint64("to_version", uint64(result.To)),
			slog.Bool("changed", result.Changed()),
		)
	}

	// ── 6. Sessions ───────────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")
	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckSessions: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	accountService := account.NewService(account.NewPostgresRepository(pool), sessions, tokens, log)

	handlers := api.Handlers{
		Liveness:       liveness,
		Readiness:      readiness,
		Users:          account.NewHandler(accountService, !cfg.IsDevelopment()),
		Profiles:       profile.NewHandler(profile.NewService(profile.NewPostgresRepository(pool), log)),
		Authors:        author.NewHandler(author.NewService(author.NewPostgresRepository(pool), log)),
		Genres:         genre.NewHandler(genre.NewService(genre.NewPostgresRepository(pool), log)),
		Books:          book.NewHandler(book.NewService(book.NewPostgresRepository(pool), log)),
		Reviews:        review.NewHandler(review.NewService(review.NewPostgresRepository(pool), log)),
		BooksByUser:    progress.NewHandler(progress.NewService(progress.NewPostgresRepository(pool), log)),
		BookGenres:     bookgenre.NewHandler(bookgenre.NewService(bookgenre.NewPostgresRepository(pool), log)),
		Bookshelves:    bookshelf.NewHandler(bookshelf.NewService(bookshelf.NewPostgresRepository(pool), log)),
		BookshelfBooks: shelfbook.NewHandler(shelfbook.NewService(shelfbook.NewPostgresRepository(pool), log)),
		Images:         image.NewHandler(image.NewService(image.NewPostgresRepository(pool), log)),
	}

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, api.Auth{Verifier: tokens, Sessions: sessions}, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "shelfwise"))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
