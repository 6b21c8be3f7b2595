package models

import (
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/shopspring/decimal"
	"log/slog"
	"time"
)

// ErrInvalidSession is returned when a game session fails validation.
var ErrInvalidSession = errors.NewSentinel("invalid game session")

// PlayerSummary is a player's final state with the liquidation breakdown.
type PlayerSummary struct {
	Name             string          `json:"name"`
	Job              string          `json:"job"`
	Goal             string          `json:"goal"`
	GoalMet          bool            `json:"goalMet"`
	Insurance        bool            `json:"insurance"`
	Money            int             `json:"money"`
	Investments      []string        `json:"investments"`
	Rolls            []int           `json:"rolls"`
	LiquidationValue decimal.Decimal `json:"liquidationValue"`
	GoalBonus        decimal.Decimal `json:"goalBonus"`
	FinalMoney       decimal.Decimal `json:"finalMoney"`
	Rank             int             `json:"rank"`
}

// NewGameSession is the summary of a finished game before storage assigns it an id.
type NewGameSession struct {
	Players []PlayerSummary `json:"players"`
	Winner  string          `json:"winner"`
	// PlayedAt is an RFC 3339 timestamp.
	PlayedAt string `json:"playedAt"`
}

// GameSession is a stored summary of a finished game.
type GameSession struct {
	ID       int64           `json:"id"`
	Players  []PlayerSummary `json:"players"`
	Winner   string          `json:"winner"`
	PlayedAt string          `json:"playedAt"`
}

// Validate checks the summary before it is stored. The returned error wraps ErrInvalidSession.
func (s NewGameSession) Validate() error {
	if len(s.Players) == 0 {
		return errors.Wrap(ErrInvalidSession, "no players")
	}
	for i, p := range s.Players {
		if p.Name == "" {
			return errors.Wrap(ErrInvalidSession, "player without name", slog.Int("index", i))
		}
	}
	if s.Winner == "" {
		return errors.Wrap(ErrInvalidSession, "no winner")
	}
	if _, err := time.Parse(time.RFC3339, s.PlayedAt); err != nil {
		return errors.Wrap(ErrInvalidSession, "played at is not an RFC 3339 timestamp",
			slog.String("played_at", s.PlayedAt))
	}
	return nil
}

// PlayedAtTime parses PlayedAt, returning the zero time for unparsable values.
func (s GameSession) PlayedAtTime() time.Time {
	t, _ := time.Parse(time.RFC3339, s.PlayedAt)
	return t
}
