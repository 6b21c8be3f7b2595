package game

import (
	"github.com/jamesungureanu/LifeTune/internal/catalog"
)

// Rand is the source of randomness for shuffling, goal dealing and liquidation rolls. [math/rand/v2.Rand] satisfies
// it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Deck is the draw pile of a single game. Cards are drawn from the end of the pile.
type Deck struct {
	cards []catalog.Card
	size  int
}

// NewDeck concatenates the given number of independently shuffled copies of cards.
func NewDeck(cards []catalog.Card, copies int, rng Rand) *Deck {
	pile := make([]catalog.Card, 0, len(cards)*copies)
	for range copies {
		shuffled := make([]catalog.Card, len(cards))
		copy(shuffled, cards)
		// Fisher-Yates.
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		pile = append(pile, shuffled...)
	}
	return &Deck{cards: pile, size: len(pile)}
}

// Draw removes and returns the top card. ok is false when the deck is exhausted.
func (d *Deck) Draw() (catalog.Card, bool) {
	if len(d.cards) == 0 {
		return catalog.Card{}, false
	}
	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card, true
}

func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Size is the number of cards the deck was built with.
func (d *Deck) Size() int {
	return d.size
}

func (d *Deck) Drawn() int {
	return d.size - len(d.cards)
}
