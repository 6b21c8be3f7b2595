package main

import (
	"context"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/repositories"
	"github.com/jamesungureanu/LifeTune/internal/sqlite"
	"github.com/jamesungureanu/LifeTune/internal/testhelpers"
	"log/slog"
	"os"
	"time"
)

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	var (
		err       error
		start     = time.Now()
		ctx       context.Context
		sqliteURL string
		ok        bool
		cancel    context.CancelFunc
	)
	ctx = context.Background()
	ctx, cancel = context.WithTimeout(ctx, 5*time.Second) //nolint:mnd // 5 seconds

	if sqliteURL, ok = os.LookupEnv("LIFETUNE_SQLITE_URL"); !ok {
		logger.LogAttrs(ctx, slog.LevelError, "LIFETUNE_SQLITE_URL not set")
		os.Exit(1)
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, sqliteURL, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating database",
			slog.String("url", sqliteURL), errors.SlogError(err))
		os.Exit(1)
	}

	// A copy of the production database has played games. Losing them in the migration is a failure.
	row := db.ReadWrite.QueryRowContext(ctx, `SELECT COUNT(*) FROM game_sessions`)
	var count int
	if err = row.Scan(&count); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error fetching game session count", errors.SlogError(err))
		os.Exit(1)
	}
	if count == 0 {
		logger.LogAttrs(ctx, slog.LevelError, "no game sessions found, something is likely wrong")
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "game session count", slog.Int("count", count))

	// Every stored summary must still decode.
	if _, err = repositories.NewSessionRepository(db, logger).List(ctx, count); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error listing game sessions", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Migration test successful 🙌", slog.Duration("duration", time.Since(start)))
	cancel()
	os.Exit(0)
}
