package game

import (
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestView(t *testing.T) {
	t.Parallel()
	g, err := New(catalog.Standard(), DefaultRules(), &stubRand{values: nil, next: 0})
	require.NoError(t, err)

	v := g.View()
	require.Equal(t, StateSetupCount, v.State)
	require.Equal(t, []int{2, 3, 4}, v.PlayerCounts)
	require.Equal(t, []ActionKind{ActionPlayers}, v.Allowed)
	require.Nil(t, v.CurrentPlayer())
	require.Equal(t, 0, v.Round)

	require.NoError(t, g.ChoosePlayerCount(2))
	v = g.View()
	require.Equal(t, "Player 1", v.CurrentPlayer().Name)
	require.NotNil(t, v.CurrentPlayer().Goal)
	require.Len(t, v.Jobs, 2)
}

func TestView_isSnapshot(t *testing.T) {
	t.Parallel()
	g := newPlayingGame(t, []catalog.Card{cardByID(t, "inv_4")}, catalog.JobBlueCollar, catalog.JobBlueCollar)
	require.NoError(t, g.Collect())
	require.NoError(t, g.Draw())

	v := g.View()
	require.Equal(t, PhaseDecision, v.Phase)
	require.Equal(t, "Bank", v.Pending.Title)
	require.Equal(t, 1, v.DeckRemaining)
	require.Equal(t, 2, v.DeckSize)
	require.Equal(t, 1, v.Round)
	require.True(t, v.Can(ActionBuy))
	require.False(t, v.Can(ActionDraw))

	require.NoError(t, g.Decide(true))
	require.Equal(t, PhaseDecision, v.Phase)
	require.NotNil(t, v.Pending)
	require.Empty(t, v.Players[0].Investments)
	require.Equal(t, 1450, v.Players[0].Money)

	v.Players[0].Job.Salary = 1
	require.Equal(t, 250, g.players[0].Job.Salary)
}

func TestView_round(t *testing.T) {
	t.Parallel()
	g := newPlayingGame(t, quietDays(4), catalog.JobBlueCollar, catalog.JobBlueCollar)
	playQuietTurn(t, g)
	require.Equal(t, 1, g.View().Round)
	playQuietTurn(t, g)
	require.Equal(t, 2, g.View().Round)
}

func TestView_standingsHiddenWhileCalculating(t *testing.T) {
	t.Parallel()
	g := newPlayingGame(t, quietDays(1), catalog.JobBlueCollar, catalog.JobBlueCollar)
	playQuietTurn(t, g)
	playQuietTurn(t, g)
	v := g.View()
	require.Equal(t, StateEnded, v.State)
	require.NotNil(t, v.Winner())
	v.Calculating = true
	require.Nil(t, v.Winner())
}

func TestView_HoldResults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards []catalog.Card
		buy   bool
	}{
		{name: "no investments", cards: quietDays(1), buy: false},
		{name: "investments rolled", cards: []catalog.Card{cardByID(t, "inv_4")}, buy: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newPlayingGame(t, tt.cards, catalog.JobBlueCollar, catalog.JobBlueCollar)
			for g.State() == StatePlaying {
				require.NoError(t, g.Collect())
				require.NoError(t, g.Draw())
				if g.Phase() == PhaseDecision {
					require.NoError(t, g.Decide(tt.buy))
				}
				require.NoError(t, g.EndTurn())
			}

			v := g.View()
			require.Positive(t, v.EndSeq)
			require.NotEmpty(t, v.Standings)
			require.Greater(t, v.Log[0].Seq, v.EndSeq)

			v.HoldResults()
			require.True(t, v.Calculating)
			require.Nil(t, v.Standings)
			require.NotEmpty(t, v.Log)
			require.Equal(t, "Game Over! Rolling for investment liquidation...", v.Log[0].Message)
			for _, e := range v.Log {
				require.LessOrEqual(t, e.Seq, v.EndSeq)
			}

			// The game itself still carries the outcome.
			require.NotEmpty(t, g.View().Standings)
			require.Contains(t, lastEntry(t, g).Message, "wins with")
		})
	}
}
