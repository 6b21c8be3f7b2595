// Package postgres stores finished games in PostgreSQL. Players are kept as jsonb. Rows written by older
// clients that stored whole player objects (job, goal and investments as objects) are read back as summaries.
package postgres

import (
	"context"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/models"
	"log/slog"
	"time"
)

const defaultListLimit = 10

const schema = `CREATE TABLE IF NOT EXISTS game_sessions
(
    id        SERIAL PRIMARY KEY,
    players   JSONB NOT NULL,
    winner    TEXT,
    played_at TEXT  NOT NULL
)`

type SessionStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewSessionStore connects to url, verifies the connection and creates the table if needed.
func NewSessionStore(ctx context.Context, url string, logger *slog.Logger) (*SessionStore, error) {
	var (
		cfg  *pgxpool.Config
		pool *pgxpool.Pool
		err  error
	)
	if cfg, err = pgxpool.ParseConfig(url); err != nil {
		return nil, errors.Wrap(err, "parse postgres url")
	}
	cfg.MaxConns = 4
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute //nolint:mnd // 30 minutes
	cfg.HealthCheckPeriod = time.Minute

	if pool, err = pgxpool.NewWithConfig(ctx, cfg); err != nil {
		return nil, errors.Wrap(err, "create pool")
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	if _, err = pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "create game_sessions table")
	}
	return &SessionStore{
		pool:   pool,
		logger: logger.With(slog.String("source", "postgres.SessionStore")),
	}, nil
}

// Create validates and stores a finished game. Validation failures wrap models.ErrInvalidSession.
func (s *SessionStore) Create(ctx context.Context, session models.NewGameSession) (*models.GameSession, error) {
	var (
		id  int64
		err error
	)
	if err = session.Validate(); err != nil {
		return nil, err
	}
	if err = s.pool.QueryRow(ctx,
		`INSERT INTO game_sessions (players, winner, played_at) VALUES ($1, $2, $3) RETURNING id`,
		session.Players, session.Winner, session.PlayedAt,
	).Scan(&id); err != nil {
		return nil, errors.Wrap(err, "insert game session")
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "created game session", slog.Int64("session_id", id))
	return &models.GameSession{
		ID:       id,
		Players:  session.Players,
		Winner:   session.Winner,
		PlayedAt: session.PlayedAt,
	}, nil
}

// List returns up to limit most recent sessions, newest first.
func (s *SessionStore) List(ctx context.Context, limit int) ([]models.GameSession, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, players, COALESCE(winner, ''), played_at FROM game_sessions ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query game sessions")
	}
	sessions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GameSession, error) {
		var (
			gs  models.GameSession
			raw []byte
		)
		if scanErr := row.Scan(&gs.ID, &raw, &gs.Winner, &gs.PlayedAt); scanErr != nil {
			return gs, scanErr
		}
		players, decodeErr := decodePlayers(raw)
		if decodeErr != nil {
			return gs, errors.Wrap(decodeErr, "decode session", slog.Int64("session_id", gs.ID))
		}
		gs.Players = players
		return gs, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "collect game sessions")
	}
	return sessions, nil
}

func (s *SessionStore) Close() {
	s.pool.Close()
}
