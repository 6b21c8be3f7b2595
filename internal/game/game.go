// Package game implements the LIFEtune turn engine: setup, the per-turn phase machine, card effects and the
// end-of-game liquidation. A Game is not safe for concurrent use.
package game

import (
	"fmt"
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"log/slog"
)

// State is the overall progress of a game.
type State string

const (
	StateSetupCount State = "setup_count"
	StateSetupJobs  State = "setup_jobs"
	StatePlaying    State = "playing"
	StateEnded      State = "ended"
)

// Phase is the step of the current player's turn.
type Phase string

const (
	PhaseCollect  Phase = "collect"
	PhasePremium  Phase = "premium"
	PhaseAction   Phase = "action"
	PhaseDecision Phase = "decision"
	PhaseEnd      Phase = "end"
)

var (
	// ErrInvalidPhase is returned for inputs that are not accepted in the current state or phase. The game is left
	// untouched and nothing is logged.
	ErrInvalidPhase = errors.NewSentinel("action not allowed now")
	// ErrRejected is returned when an input is well-timed but cannot be carried out, e.g. insurance the player
	// cannot afford. The refusal is written to the game log.
	ErrRejected = errors.NewSentinel("action rejected")
)

// Rules are the numeric constants of a game.
type Rules struct {
	StartingMoney  int
	Premium        int
	InsurancePrice int
	MinPlayers     int
	MaxPlayers     int
	DeckCopies     int
	LogCapacity    int
}

func DefaultRules() Rules {
	return Rules{
		StartingMoney:  1200, //nolint:mnd // house rules
		Premium:        50,   //nolint:mnd // house rules
		InsurancePrice: 200,  //nolint:mnd // house rules
		MinPlayers:     2,    //nolint:mnd // house rules
		MaxPlayers:     4,    //nolint:mnd // house rules
		DeckCopies:     2,    //nolint:mnd // house rules
		LogCapacity:    50,   //nolint:mnd // house rules
	}
}

// Game is one LIFEtune session from choosing the player count to the final standings.
type Game struct {
	catalog   *catalog.Catalog
	rules     Rules
	rng       Rand
	state     State
	phase     Phase
	players   []*Player
	current   int
	deck      *Deck
	pending   *catalog.Card
	lastDrawn *catalog.Card
	log       *Log
	result    *Result
	// endSeq is the sequence number of the game over entry.
	endSeq int
}

// New creates a game waiting for the player count.
func New(c *catalog.Catalog, rules Rules, rng Rand) (*Game, error) {
	var err error
	if err = c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate catalog")
	}
	if rules.MinPlayers < 1 || rules.MaxPlayers < rules.MinPlayers {
		return nil, errors.New("invalid player limits",
			slog.Int("min", rules.MinPlayers), slog.Int("max", rules.MaxPlayers))
	}
	if rules.DeckCopies < 1 {
		return nil, errors.New("deck needs at least one copy of the catalog")
	}
	return &Game{
		catalog:   c,
		rules:     rules,
		rng:       rng,
		state:     StateSetupCount,
		phase:     PhaseCollect,
		players:   nil,
		current:   0,
		deck:      nil,
		pending:   nil,
		lastDrawn: nil,
		log:       NewLog(rules.LogCapacity),
		result:    nil,
		endSeq:    0,
	}, nil
}

func playerName(id int) string {
	return fmt.Sprintf("Player %d", id+1)
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Result returns the liquidation result once the game has ended.
func (g *Game) Result() (Result, bool) {
	if g.result == nil {
		return Result{}, false
	}
	return *g.result, true
}

func (g *Game) currentPlayer() *Player {
	return g.players[g.current]
}

func (g *Game) expect(state State, phases ...Phase) error {
	if g.state != state {
		return ErrInvalidPhase
	}
	if len(phases) == 0 {
		return nil
	}
	for _, p := range phases {
		if g.phase == p {
			return nil
		}
	}
	return ErrInvalidPhase
}

// ChoosePlayerCount seats n players and starts job selection with the first one.
func (g *Game) ChoosePlayerCount(n int) error {
	if err := g.expect(StateSetupCount); err != nil {
		return err
	}
	if n < g.rules.MinPlayers || n > g.rules.MaxPlayers {
		g.log.Add(LevelWarning, "A game needs %d to %d players.", g.rules.MinPlayers, g.rules.MaxPlayers)
		return errors.Wrap(ErrRejected, "player count out of range", slog.Int("players", n))
	}
	g.players = make([]*Player, n)
	for i := range g.players {
		g.players[i] = newPlayer(i, g.rules.StartingMoney)
	}
	g.state = StateSetupJobs
	g.current = 0
	g.dealGoal()
	return nil
}

// dealGoal secretly assigns a random life goal to the player choosing a job.
func (g *Game) dealGoal() {
	p := g.currentPlayer()
	goal := g.catalog.Goals[g.rng.IntN(len(g.catalog.Goals))]
	p.Goal = &goal
	g.log.Add(LevelInfo, "%s assigned life goal: %s", p.Name, goal.Name)
}

// ChooseJob assigns a job to the player in setup. Starting debt is deducted and the study time becomes skip turns.
// After the last player the deck is shuffled and play begins with the first player.
func (g *Game) ChooseJob(jobID string) error {
	if err := g.expect(StateSetupJobs); err != nil {
		return err
	}
	job, ok := g.catalog.Job(jobID)
	if !ok {
		return errors.Wrap(ErrRejected, "unknown job", slog.String("job_id", jobID))
	}
	p := g.currentPlayer()
	p.Job = &job
	p.SkipTurns = job.StartSkip
	p.HasLoan = job.StartDebt > 0
	p.Debit(job.StartDebt)
	g.log.Add(LevelInfo, "%s became %s.", p.Name, job.Name)

	if g.current < len(g.players)-1 {
		g.current++
		g.dealGoal()
		return nil
	}

	g.current = 0
	g.deck = NewDeck(g.catalog.Cards, g.rules.DeckCopies, g.rng)
	g.state = StatePlaying
	g.phase = PhaseCollect
	g.log.Add(LevelSuccess, "Game Started! Good luck everyone.")
	return nil
}

// Collect starts the current player's turn. A player with skip turns forfeits the turn and play passes on,
// otherwise the salary is paid. Uninsured players have no premium due and go straight to the action phase.
func (g *Game) Collect() error {
	if err := g.expect(StatePlaying, PhaseCollect); err != nil {
		return err
	}
	p := g.currentPlayer()
	if p.SkipTurns > 0 {
		p.AdjustSkipTurns(-1)
		g.log.Add(LevelWarning, "%s skips this turn.", p.Name)
		g.advance()
		return nil
	}
	p.Credit(p.Job.Salary)
	g.log.Add(LevelSuccess, "%s collected salary $%d.", p.Name, p.Job.Salary)
	if p.Insured {
		g.phase = PhasePremium
	} else {
		g.phase = PhaseAction
	}
	return nil
}

// Premium pays the insurance premium or lets the coverage lapse.
func (g *Game) Premium(pay bool) error {
	if err := g.expect(StatePlaying, PhasePremium); err != nil {
		return err
	}
	p := g.currentPlayer()
	switch {
	case !p.Insured:
	case pay:
		p.Debit(g.rules.Premium)
		g.log.Add(LevelInfo, "%s paid $%d insurance premium.", p.Name, g.rules.Premium)
	default:
		p.RevokeInsurance()
		g.log.Add(LevelWarning, "%s skipped insurance payment. Warning: You are at risk!", p.Name)
		g.log.Add(LevelDanger, "%s lost insurance coverage!", p.Name)
	}
	g.phase = PhaseAction
	return nil
}

// BuyInsurance buys coverage before drawing.
func (g *Game) BuyInsurance() error {
	if err := g.expect(StatePlaying, PhaseAction); err != nil {
		return err
	}
	p := g.currentPlayer()
	if p.Insured {
		g.log.Add(LevelWarning, "%s is already insured.", p.Name)
		return errors.Wrap(ErrRejected, "already insured")
	}
	if !p.CanAfford(g.rules.InsurancePrice) {
		g.log.Add(LevelDanger, "Not enough money for insurance.")
		return errors.Wrap(ErrRejected, "cannot afford insurance",
			slog.Int("money", p.Money), slog.Int("price", g.rules.InsurancePrice))
	}
	p.Debit(g.rules.InsurancePrice)
	p.GrantInsurance()
	g.log.Add(LevelSuccess, "%s bought insurance for $%d.", p.Name, g.rules.InsurancePrice)
	return nil
}

// Draw takes the top card. An affordable investment waits for a decision, any other card is resolved at once.
func (g *Game) Draw() error {
	if err := g.expect(StatePlaying, PhaseAction); err != nil {
		return err
	}
	card, ok := g.deck.Draw()
	if !ok {
		g.finish()
		return nil
	}
	g.lastDrawn = &card
	p := g.currentPlayer()

	if card.Type == catalog.CardInvestment {
		if p.CanAfford(card.Cost) {
			g.pending = &card
			g.phase = PhaseDecision
			return nil
		}
		g.log.Add(LevelWarning, "%s drew %s but can't afford $%d.", p.Name, card.Title, card.Cost)
		g.phase = PhaseEnd
		return nil
	}

	g.applyEffect(p, card)
	g.phase = PhaseEnd
	return nil
}

func (g *Game) applyEffect(p *Player, card catalog.Card) {
	delta := card.Value

	if card.Type == catalog.CardEvent && delta < 0 && p.Insured {
		g.log.Add(LevelSuccess, "%s used insurance to cover %s!", p.Name, card.Title)
		delta = 0
	}

	if card.Effect == catalog.EffectSharedGift {
		gift := -card.Value
		total := gift * (len(g.players) - 1)
		switch {
		case gift <= 0:
			delta = 0
		case p.CanAfford(total):
			delta = -total
			for _, other := range g.players {
				if other != p {
					other.Credit(gift)
				}
			}
			g.log.Add(LevelInfo, "%s gave $%d to everyone!", p.Name, gift)
		default:
			delta = 0
			g.log.Add(LevelWarning, "%s can't afford gifts for everyone.", p.Name)
		}
	}

	p.Credit(delta)
	p.AdjustSkipTurns(card.SkipTurns)

	level := LevelInfo
	switch {
	case delta > 0:
		level = LevelSuccess
	case delta < 0:
		level = LevelDanger
	}
	g.log.Add(level, "%s drew %s: %s", p.Name, card.Title, card.Description)
}

// Decide buys or passes on the pending investment.
func (g *Game) Decide(buy bool) error {
	if err := g.expect(StatePlaying, PhaseDecision); err != nil {
		return err
	}
	p := g.currentPlayer()
	card := *g.pending
	if buy {
		p.Debit(card.Cost)
		p.AddInvestment(card)
		g.log.Add(LevelSuccess, "%s invested in %s!", p.Name, card.Title)
	} else {
		g.log.Add(LevelInfo, "%s passed on the investment.", p.Name)
	}
	g.pending = nil
	g.phase = PhaseEnd
	return nil
}

// EndTurn acknowledges the turn. Play passes to the next player unless the deck is exhausted, which ends the game.
func (g *Game) EndTurn() error {
	if err := g.expect(StatePlaying, PhaseEnd); err != nil {
		return err
	}
	g.advance()
	return nil
}

func (g *Game) advance() {
	if g.deck.IsEmpty() {
		g.finish()
		return
	}
	g.lastDrawn = nil
	g.current = (g.current + 1) % len(g.players)
	g.phase = PhaseCollect
}

func (g *Game) finish() {
	g.state = StateEnded
	g.phase = PhaseEnd
	g.pending = nil
	g.log.Add(LevelInfo, "Game Over! Rolling for investment liquidation...")
	if e, ok := g.log.Last(); ok {
		g.endSeq = e.Seq
	}
	result := liquidate(g.players, g.rng, g.log)
	g.result = &result
}
