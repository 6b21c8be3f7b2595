package game

import (
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"slices"
)

// RecentLogEntries is how much narration a view carries.
const RecentLogEntries = 8

// View is a read-only snapshot of a game for rendering.
type View struct {
	State         State
	Phase         Phase
	Players       []Player
	CurrentIndex  int
	DeckRemaining int
	DeckSize      int
	Round         int
	Pending       *catalog.Card
	LastDrawn     *catalog.Card
	Log           []Entry
	Standings     []Standing
	Allowed       []ActionKind
	Jobs          []catalog.Job
	PlayerCounts  []int
	Rules         Rules
	// Calculating is set while the final standings are held back for the reveal.
	Calculating bool
	// EndSeq is the sequence number of the game over log entry, zero while the game runs.
	EndSeq int
}

// View snapshots the game. Later mutations of the game do not affect the returned value.
func (g *Game) View() View {
	v := View{
		State:         g.state,
		Phase:         g.phase,
		Players:       make([]Player, len(g.players)),
		CurrentIndex:  g.current,
		DeckRemaining: 0,
		DeckSize:      0,
		Round:         0,
		Pending:       cloneCard(g.pending),
		LastDrawn:     cloneCard(g.lastDrawn),
		Log:           g.log.Recent(RecentLogEntries),
		Standings:     nil,
		Allowed:       g.Allowed(),
		Jobs:          slices.Clone(g.catalog.Jobs),
		PlayerCounts:  nil,
		Rules:         g.rules,
		Calculating:   false,
		EndSeq:        g.endSeq,
	}
	for i, p := range g.players {
		v.Players[i] = p.clone()
	}
	for n := g.rules.MinPlayers; n <= g.rules.MaxPlayers; n++ {
		v.PlayerCounts = append(v.PlayerCounts, n)
	}
	if g.deck != nil {
		v.DeckRemaining = g.deck.Remaining()
		v.DeckSize = g.deck.Size()
		v.Round = g.deck.Drawn()/len(g.players) + 1
	}
	if g.result != nil {
		v.Standings = slices.Clone(g.result.Standings)
	}
	return v
}

// HoldResults hides the outcome of a finished game: the standings and every log entry written after the game
// over announcement.
func (v *View) HoldResults() {
	v.Calculating = true
	v.Standings = nil
	v.Log = slices.DeleteFunc(v.Log, func(e Entry) bool {
		return e.Seq > v.EndSeq
	})
}

func cloneCard(c *catalog.Card) *catalog.Card {
	if c == nil {
		return nil
	}
	card := *c
	return &card
}

// CurrentPlayer returns the player whose turn or setup step it is.
func (v View) CurrentPlayer() *Player {
	if v.CurrentIndex < 0 || v.CurrentIndex >= len(v.Players) {
		return nil
	}
	return &v.Players[v.CurrentIndex]
}

// Can reports whether the action is accepted in this snapshot.
func (v View) Can(kind ActionKind) bool {
	return slices.Contains(v.Allowed, kind)
}

// Winner is the top of the standings, if revealed.
func (v View) Winner() *Standing {
	if v.Calculating || len(v.Standings) == 0 {
		return nil
	}
	return &v.Standings[0]
}
