package game

import (
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"log/slog"
	"strconv"
)

// ActionKind names a player input.
type ActionKind string

const (
	ActionPlayers      ActionKind = "players"
	ActionJob          ActionKind = "job"
	ActionCollect      ActionKind = "collect"
	ActionPayPremium   ActionKind = "pay-premium"
	ActionSkipPremium  ActionKind = "skip-premium"
	ActionBuyInsurance ActionKind = "buy-insurance"
	ActionDraw         ActionKind = "draw"
	ActionBuy          ActionKind = "buy"
	ActionPass         ActionKind = "pass"
	ActionEndTurn      ActionKind = "end-turn"
)

// ActionKinds lists every input in the order of a turn.
var ActionKinds = []ActionKind{
	ActionPlayers,
	ActionJob,
	ActionCollect,
	ActionPayPremium,
	ActionSkipPremium,
	ActionBuyInsurance,
	ActionDraw,
	ActionBuy,
	ActionPass,
	ActionEndTurn,
}

// ErrUnknownAction is returned by ParseAction for malformed inputs.
var ErrUnknownAction = errors.NewSentinel("unknown action")

// Action is a single player input. Players is set for ActionPlayers and JobID for ActionJob.
type Action struct {
	Kind    ActionKind
	Players int
	JobID   string
}

// ParseAction builds an action from its kind and the submitted value.
func ParseAction(kind string, value string) (Action, error) {
	a := Action{Kind: ActionKind(kind), Players: 0, JobID: ""}
	switch a.Kind {
	case ActionPlayers:
		n, err := strconv.Atoi(value)
		if err != nil {
			return Action{}, errors.Wrap(ErrUnknownAction, "parse player count", slog.String("value", value))
		}
		a.Players = n
	case ActionJob:
		if value == "" {
			return Action{}, errors.Wrap(ErrUnknownAction, "missing job")
		}
		a.JobID = value
	case ActionCollect, ActionPayPremium, ActionSkipPremium, ActionBuyInsurance, ActionDraw, ActionBuy, ActionPass,
		ActionEndTurn:
	default:
		return Action{}, errors.Wrap(ErrUnknownAction, "parse action", slog.String("kind", kind))
	}
	return a, nil
}

// Apply dispatches the action to the matching turn engine operation.
func (g *Game) Apply(a Action) error {
	switch a.Kind {
	case ActionPlayers:
		return g.ChoosePlayerCount(a.Players)
	case ActionJob:
		return g.ChooseJob(a.JobID)
	case ActionCollect:
		return g.Collect()
	case ActionPayPremium:
		return g.Premium(true)
	case ActionSkipPremium:
		return g.Premium(false)
	case ActionBuyInsurance:
		return g.BuyInsurance()
	case ActionDraw:
		return g.Draw()
	case ActionBuy:
		return g.Decide(true)
	case ActionPass:
		return g.Decide(false)
	case ActionEndTurn:
		return g.EndTurn()
	default:
		return errors.Wrap(ErrUnknownAction, "apply", slog.String("kind", string(a.Kind)))
	}
}

// Allowed lists the actions the game accepts right now.
func (g *Game) Allowed() []ActionKind {
	switch g.state {
	case StateSetupCount:
		return []ActionKind{ActionPlayers}
	case StateSetupJobs:
		return []ActionKind{ActionJob}
	case StateEnded:
		return nil
	case StatePlaying:
	}
	switch g.phase {
	case PhaseCollect:
		return []ActionKind{ActionCollect}
	case PhasePremium:
		return []ActionKind{ActionPayPremium, ActionSkipPremium}
	case PhaseAction:
		return []ActionKind{ActionBuyInsurance, ActionDraw}
	case PhaseDecision:
		return []ActionKind{ActionBuy, ActionPass}
	case PhaseEnd:
		return []ActionKind{ActionEndTurn}
	}
	return nil
}
