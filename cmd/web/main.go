package main

import (
	"context"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/jobs"
	"github.com/jamesungureanu/LifeTune/internal/logging"
	"github.com/jamesungureanu/LifeTune/internal/metrics"
	"github.com/jamesungureanu/LifeTune/internal/postgres"
	"github.com/jamesungureanu/LifeTune/internal/pprofserver"
	"github.com/jamesungureanu/LifeTune/internal/repositories"
	"github.com/jamesungureanu/LifeTune/internal/sqlite"
	"github.com/jamesungureanu/LifeTune/internal/tables"
	"github.com/joho/godotenv"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	sessions       repositories.SessionStore
	tables         *tables.Registry
	metrics        *metrics.Metrics
	htmx           *htmx.HTMX
}

const persistTimeout = 5 * time.Second

func run(ctx context.Context, logger *slog.Logger, cfg config) error {
	var (
		err      error
		dbs      *sqlite.Database
		sessions repositories.SessionStore
	)

	if cfg.PprofAddr != "" {
		pprofserver.Launch(ctx, cfg.PprofAddr, logger)
	}

	if dbs, err = sqlite.NewDatabase(ctx, cfg.SQLiteURL, logger); err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SQLiteURL))
	}
	defer func() {
		if closeErr := dbs.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "close database", errors.SlogError(closeErr))
		}
	}()

	sessions = repositories.NewSessionRepository(dbs, logger)
	if cfg.PostgresURL != "" {
		var pg *postgres.SessionStore
		if pg, err = postgres.NewSessionStore(ctx, cfg.PostgresURL, logger); err != nil {
			return errors.Wrap(err, "connect postgres")
		}
		defer pg.Close()
		sessions = pg
	}

	m := metrics.New()
	registry := tables.New(logger, sessions, m, tables.StandardGame, tables.Config{
		RevealDelay:    cfg.RevealDelay,
		PersistTimeout: persistTimeout,
	})
	defer registry.Wait()

	jobsConfig := jobs.DefaultConfig()
	jobsConfig.IdleTimeout = cfg.IdleGameTimeout
	scheduler := jobs.NewScheduler(logger, dbs, registry, jobsConfig)
	if err = scheduler.Start(ctx); err != nil {
		return errors.Wrap(err, "start scheduler")
	}
	defer scheduler.Stop()

	app := application{
		logger:         logger,
		sessionManager: newSessionManager(dbs, cfg.SessionLifetime),
		sessions:       sessions,
		tables:         registry,
		metrics:        m,
		htmx:           htmx.New(),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The .env file is optional, the environment has the final say.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.New(logging.NewContextHandler(slog.NewTextHandler(os.Stderr, nil))).
			LogAttrs(ctx, slog.LevelError, "failure loading .env", errors.SlogError(err))
		os.Exit(1)
	}

	cfg, err := loadConfig()
	logger := logging.New(os.Stdout, cfg.LogLevel, true)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure reading configuration", errors.SlogError(err))
		os.Exit(1)
	}

	if err = run(ctx, logger, cfg); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
