package game

import (
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/models"
	"time"
)

// ErrNotEnded is returned when a summary is requested before liquidation.
var ErrNotEnded = errors.NewSentinel("game has not ended")

// Summary converts the final standings into the stored session shape.
func (g *Game) Summary(playedAt time.Time) (models.NewGameSession, error) {
	if g.result == nil {
		return models.NewGameSession{}, ErrNotEnded
	}
	return g.result.Summary(playedAt), nil
}

// Summary converts the standings into the stored session shape.
func (r Result) Summary(playedAt time.Time) models.NewGameSession {
	players := make([]models.PlayerSummary, len(r.Standings))
	for i, s := range r.Standings {
		investments := make([]string, len(s.Investments))
		for j, inv := range s.Investments {
			investments[j] = inv.Title
		}
		players[i] = models.PlayerSummary{
			Name:             s.Name,
			Job:              s.Job,
			Goal:             s.Goal,
			GoalMet:          s.GoalMet,
			Insurance:        s.Insured,
			Money:            s.Cash,
			Investments:      investments,
			Rolls:            s.Rolls,
			LiquidationValue: s.LiquidationTotal,
			GoalBonus:        s.Bonus,
			FinalMoney:       s.FinalMoney,
			Rank:             s.Rank,
		}
	}
	return models.NewGameSession{
		Players:  players,
		Winner:   r.Winner(),
		PlayedAt: playedAt.UTC().Format(time.RFC3339),
	}
}
