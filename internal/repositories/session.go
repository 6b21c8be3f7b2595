package repositories

import (
	"context"
	"encoding/json"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/models"
	"github.com/jamesungureanu/LifeTune/internal/sqlite"
	"log/slog"
)

// DefaultListLimit is used when a caller does not ask for a specific number of sessions.
const DefaultListLimit = 10

// SessionStore persists summaries of finished games.
type SessionStore interface {
	Create(ctx context.Context, session models.NewGameSession) (*models.GameSession, error)
	List(ctx context.Context, limit int) ([]models.GameSession, error)
}

type SessionRepository struct {
	dbs    *sqlite.Database
	logger *slog.Logger
}

func NewSessionRepository(dbs *sqlite.Database, logger *slog.Logger) *SessionRepository {
	return &SessionRepository{
		dbs:    dbs,
		logger: logger.With(slog.String("source", "SessionRepository")),
	}
}

type sessionRow struct {
	ID       int64  `db:"id"`
	Players  string `db:"players"`
	Winner   string `db:"winner"`
	PlayedAt string `db:"played_at"`
}

// Create validates and stores a finished game. Validation failures wrap models.ErrInvalidSession.
func (r *SessionRepository) Create(ctx context.Context, session models.NewGameSession) (*models.GameSession, error) {
	var (
		players []byte
		id      int64
		err     error
	)
	if err = session.Validate(); err != nil {
		return nil, err
	}
	if players, err = json.Marshal(session.Players); err != nil {
		return nil, errors.Wrap(err, "marshal players")
	}

	stmt := `INSERT INTO game_sessions (players, winner, played_at) VALUES (:players, :winner, :played_at)`
	result, err := r.dbs.ReadWrite.NamedExecContext(ctx, stmt, sessionRow{
		ID:       0,
		Players:  string(players),
		Winner:   session.Winner,
		PlayedAt: session.PlayedAt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "insert game session")
	}
	if id, err = result.LastInsertId(); err != nil {
		return nil, errors.Wrap(err, "last insert id")
	}
	r.logger.LogAttrs(ctx, slog.LevelDebug, "created game session", slog.Int64("session_id", id))

	return &models.GameSession{
		ID:       id,
		Players:  session.Players,
		Winner:   session.Winner,
		PlayedAt: session.PlayedAt,
	}, nil
}

// List returns up to limit most recent sessions, newest first. A non-positive limit uses DefaultListLimit.
func (r *SessionRepository) List(ctx context.Context, limit int) ([]models.GameSession, error) {
	var (
		rows []sessionRow
		err  error
	)
	if limit <= 0 {
		limit = DefaultListLimit
	}
	stmt := `SELECT id, players, winner, played_at FROM game_sessions ORDER BY id DESC LIMIT ?`
	if err = r.dbs.ReadOnly.SelectContext(ctx, &rows, stmt, limit); err != nil {
		return nil, errors.Wrap(err, "select game sessions")
	}

	sessions := make([]models.GameSession, 0, len(rows))
	for _, row := range rows {
		session := models.GameSession{
			ID:       row.ID,
			Players:  nil,
			Winner:   row.Winner,
			PlayedAt: row.PlayedAt,
		}
		if err = json.Unmarshal([]byte(row.Players), &session.Players); err != nil {
			return nil, errors.Wrap(err, "unmarshal players", slog.Int64("session_id", row.ID))
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
