package game

import (
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNextAction(t *testing.T) {
	t.Parallel()
	g, err := New(catalog.Standard(), DefaultRules(), &stubRand{values: nil, next: 0})
	require.NoError(t, err)
	blue := func(int) string { return catalog.JobBlueCollar }

	a, ok := NextAction(g.View(), blue)
	require.True(t, ok)
	require.Equal(t, Action{Kind: ActionPlayers, Players: 2, JobID: ""}, a)
	require.NoError(t, g.Apply(a))

	for range 2 {
		a, ok = NextAction(g.View(), blue)
		require.True(t, ok)
		require.Equal(t, ActionJob, a.Kind)
		require.NoError(t, g.Apply(a))
	}

	a, _ = NextAction(g.View(), blue)
	require.Equal(t, ActionCollect, a.Kind)
	require.NoError(t, g.Apply(a))

	a, _ = NextAction(g.View(), blue)
	require.Equal(t, ActionBuyInsurance, a.Kind, "1450 covers insurance and the reserve")
	require.NoError(t, g.Apply(a))

	a, _ = NextAction(g.View(), blue)
	require.Equal(t, ActionDraw, a.Kind)
}

func TestNextAction_ended(t *testing.T) {
	t.Parallel()
	g := newPlayingGame(t, quietDays(1), catalog.JobBlueCollar, catalog.JobBlueCollar)
	playQuietTurn(t, g)
	playQuietTurn(t, g)
	_, ok := NextAction(g.View(), func(int) string { return "" })
	require.False(t, ok)
}
