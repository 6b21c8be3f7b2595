package game

import (
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"github.com/stretchr/testify/require"
	"math/rand/v2"
	"testing"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()
	cards := catalog.Standard().Cards
	deck := NewDeck(cards, 2, rand.New(rand.NewPCG(1, 2)))
	require.Equal(t, 2*len(cards), deck.Size())
	require.Equal(t, deck.Size(), deck.Remaining())

	counts := map[string]int{}
	for i := 1; !deck.IsEmpty(); i++ {
		before := deck.Remaining()
		card, ok := deck.Draw()
		require.True(t, ok)
		require.Equal(t, before-1, deck.Remaining())
		require.Equal(t, i, deck.Drawn())
		counts[card.ID]++
	}
	require.Len(t, counts, len(cards))
	for id, n := range counts {
		require.Equal(t, 2, n, id)
	}

	_, ok := deck.Draw()
	require.False(t, ok)
	require.Equal(t, 0, deck.Remaining())
}

func TestNewDeck_copiesAreShuffledIndependently(t *testing.T) {
	t.Parallel()
	cards := catalog.Standard().Cards
	deck := NewDeck(cards, 2, rand.New(rand.NewPCG(7, 7)))
	require.NotEqual(t, deck.cards[:len(cards)], deck.cards[len(cards):])
}

func TestNewDeck_doesNotMutateCatalog(t *testing.T) {
	t.Parallel()
	cards := catalog.Standard().Cards
	want := append([]catalog.Card(nil), cards...)
	_ = NewDeck(cards, 2, rand.New(rand.NewPCG(3, 4)))
	require.Equal(t, want, cards)
}
