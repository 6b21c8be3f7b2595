package repositories_test

import (
	"context"
	"fmt"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/models"
	"github.com/jamesungureanu/LifeTune/internal/repositories"
	"github.com/jamesungureanu/LifeTune/internal/testhelpers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

func newSession(winner string) models.NewGameSession {
	return models.NewGameSession{
		Players: []models.PlayerSummary{
			{
				Name:             winner,
				Job:              "White Collar",
				Goal:             "Tycoon",
				GoalMet:          false,
				Insurance:        true,
				Money:            2100,
				Investments:      []string{"Startup", "Bonds"},
				Rolls:            []int{7, 1},
				LiquidationValue: decimal.NewFromInt(2000),
				GoalBonus:        decimal.Zero,
				FinalMoney:       decimal.NewFromInt(4100),
				Rank:             1,
			},
			{
				Name:             "Player 9",
				Job:              "Blue Collar",
				Goal:             "Penny Pincher",
				GoalMet:          true,
				Insurance:        false,
				Money:            1800,
				Investments:      []string{},
				Rolls:            []int{},
				LiquidationValue: decimal.RequireFromString("37.5"),
				GoalBonus:        decimal.NewFromInt(600),
				FinalMoney:       decimal.RequireFromString("2437.5"),
				Rank:             2,
			},
		},
		Winner:   winner,
		PlayedAt: "2024-05-01T12:00:00Z",
	}
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewSessionRepository(newTestDB(t), testhelpers.NewLogger(io.Discard))

	sessions, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, sessions)

	for i := range 12 {
		created, createErr := repo.Create(ctx, newSession(fmt.Sprintf("Player %d", i+1)))
		require.NoError(t, createErr)
		require.Equal(t, int64(i+1), created.ID)
	}

	sessions, err = repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sessions, repositories.DefaultListLimit)
	require.Equal(t, "Player 12", sessions[0].Winner)
	require.Equal(t, int64(12), sessions[0].ID)

	sessions, err = repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	got := sessions[2].Players[1]
	require.Equal(t, "Player 9", got.Name)
	require.True(t, got.GoalMet)
	require.True(t, decimal.RequireFromString("2437.5").Equal(got.FinalMoney))
	require.Equal(t, []string{"Startup", "Bonds"}, sessions[2].Players[0].Investments)
	require.Equal(t, "2024-05-01T12:00:00Z", sessions[2].PlayedAt)
}

func TestSessionRepository_Create_invalid(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewSessionRepository(newTestDB(t), testhelpers.NewLogger(io.Discard))

	invalid := newSession("Player 1")
	invalid.PlayedAt = "last tuesday"
	_, err := repo.Create(ctx, invalid)
	require.True(t, errors.Is(err, models.ErrInvalidSession))

	sessions, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, sessions)
}

var _ repositories.SessionStore = (*repositories.SessionRepository)(nil)
