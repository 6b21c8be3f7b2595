package game

import (
	"fmt"
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"github.com/stretchr/testify/require"
	"testing"
)

// stubRand returns the scripted values in a loop and leaves shuffles in catalog order.
type stubRand struct {
	values []int
	next   int
}

func (r *stubRand) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func (r *stubRand) Shuffle(int, func(i, j int)) {}

func quietDays(n int) []catalog.Card {
	cards := make([]catalog.Card, n)
	for i := range cards {
		cards[i] = catalog.Card{ //nolint:exhaustruct // neutral card
			ID:          fmt.Sprintf("quiet_%d", i),
			Type:        catalog.CardEvent,
			Title:       "Quiet Day",
			Description: "Nothing happens.",
		}
	}
	return cards
}

func cardByID(t *testing.T, id string) catalog.Card {
	t.Helper()
	for _, c := range catalog.Standard().Cards {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("card %s not in catalog", id)
	return catalog.Card{}
}

// newPlayingGame sets up a game with one player per job and a deck built from cards. With the stub random source
// the cards are drawn from the end of the list, the second copy first.
func newPlayingGame(t *testing.T, cards []catalog.Card, jobs ...string) *Game {
	t.Helper()
	c := catalog.Standard()
	if cards != nil {
		c.Cards = cards
	}
	g, err := New(c, DefaultRules(), &stubRand{values: nil, next: 0})
	require.NoError(t, err)
	require.NoError(t, g.ChoosePlayerCount(len(jobs)))
	for _, job := range jobs {
		require.NoError(t, g.ChooseJob(job))
	}
	require.Equal(t, StatePlaying, g.State())
	return g
}

// playQuietTurn plays a full turn for a player who is not skipping.
func playQuietTurn(t *testing.T, g *Game) {
	t.Helper()
	require.NoError(t, g.Collect())
	require.Equal(t, PhaseAction, g.Phase())
	require.NoError(t, g.Draw())
	require.Equal(t, PhaseEnd, g.Phase())
	require.NoError(t, g.EndTurn())
}

func lastEntry(t *testing.T, g *Game) Entry {
	t.Helper()
	e, ok := g.log.Last()
	require.True(t, ok)
	return e
}

func logContains(g *Game, level Level, message string) bool {
	for _, e := range g.log.Recent(g.log.Len()) {
		if e.Level == level && e.Message == message {
			return true
		}
	}
	return false
}
