package game

import (
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestSummary(t *testing.T) {
	t.Parallel()
	bank := cardByID(t, "inv_4")
	g := newPlayingGame(t, []catalog.Card{bank}, catalog.JobBlueCollar, catalog.JobWhiteCollar)

	_, err := g.Summary(time.Now())
	require.ErrorIs(t, err, ErrNotEnded)

	require.NoError(t, g.Collect())
	require.NoError(t, g.Draw())
	require.NoError(t, g.Decide(true))
	require.NoError(t, g.EndTurn())
	// The white collar player is studying.
	require.NoError(t, g.Collect())
	require.NoError(t, g.Collect())
	require.NoError(t, g.Draw())
	require.NoError(t, g.Decide(false))
	require.NoError(t, g.EndTurn())
	require.Equal(t, StateEnded, g.State())

	playedAt := time.Date(2024, 5, 1, 14, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	summary, err := g.Summary(playedAt)
	require.NoError(t, err)
	require.NoError(t, summary.Validate())
	require.Equal(t, "2024-05-01T12:00:00Z", summary.PlayedAt)
	require.Len(t, summary.Players, 2)
	require.Equal(t, summary.Winner, summary.Players[0].Name)

	var first string
	for _, p := range summary.Players {
		if p.Name == "Player 1" {
			first = p.Job
			require.Equal(t, []string{"Bank"}, p.Investments)
			require.Len(t, p.Rolls, 1)
		}
	}
	require.Equal(t, "Blue Collar", first)
}
