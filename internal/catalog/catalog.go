// Package catalog holds the static card, job and life goal definitions of a LIFEtune game.
package catalog

import (
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/shopspring/decimal"
	"log/slog"
)

// CardType groups cards by how the turn engine resolves them.
type CardType string

const (
	CardInvestment  CardType = "investment"
	CardEvent       CardType = "event"
	CardInteraction CardType = "interaction"
	CardPersonal    CardType = "personal"
)

// Category selects the liquidation payout table of an investment card.
type Category string

const (
	CategoryNone       Category = ""
	CategoryBigCompany Category = "big_company"
	CategoryStartup    Category = "startup"
	CategoryBond       Category = "bond"
	CategoryBank       Category = "bank"
)

// Effect is the closed set of special card effects the turn engine knows how to resolve.
type Effect string

const (
	// EffectNone applies the card's value and skip turns to the drawing player.
	EffectNone Effect = ""
	// EffectSharedGift makes the drawing player pay the gift amount to every other player.
	EffectSharedGift Effect = "shared_gift"
)

// Card is an immutable draw pile entry.
type Card struct {
	ID          string   `json:"id"`
	Type        CardType `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	// Cost is the purchase price of an investment.
	Cost int `json:"cost,omitempty"`
	// Value is the signed instant cash delta.
	Value int `json:"value,omitempty"`
	// SkipTurns is added to the drawing player's skip counter.
	SkipTurns int      `json:"skipTurns,omitempty"`
	Category  Category `json:"category,omitempty"`
	Effect    Effect   `json:"effect,omitempty"`
}

// Job is chosen by each player during setup.
type Job struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Salary      int    `json:"salary"`
	StartDebt   int    `json:"startDebt"`
	StartSkip   int    `json:"startSkip"`
}

// Condition is the kind of predicate a life goal checks at the end of the game.
type Condition string

const (
	// ConditionMoneyAbove is satisfied when the final balance is strictly greater than Threshold.
	ConditionMoneyAbove Condition = "money_above"
	// ConditionMinInvestments is satisfied when the player holds at least Threshold investments.
	ConditionMinInvestments Condition = "min_investments"
	// ConditionInsured is satisfied when the player holds insurance.
	ConditionInsured Condition = "insured"
	// ConditionAlways is satisfied unconditionally. The Penny Pincher goal uses it instead of tracking card
	// spending.
	ConditionAlways Condition = "always"
)

// Holdings is the part of a player's final state a life goal is evaluated against.
type Holdings struct {
	// Money is the candidate final balance including fractional liquidation payouts.
	Money       decimal.Decimal
	Investments int
	Insured     bool
}

// LifeGoal is secretly dealt to every player during setup and pays Bonus when satisfied at the end.
type LifeGoal struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Bonus       int       `json:"bonus"`
	Condition   Condition `json:"condition"`
	Threshold   int64     `json:"threshold,omitempty"`
}

// Satisfied reports whether h fulfils the goal.
func (g LifeGoal) Satisfied(h Holdings) bool {
	switch g.Condition {
	case ConditionMoneyAbove:
		return h.Money.GreaterThan(decimal.NewFromInt(g.Threshold))
	case ConditionMinInvestments:
		return int64(h.Investments) >= g.Threshold
	case ConditionInsured:
		return h.Insured
	case ConditionAlways:
		return true
	default:
		return false
	}
}

// Catalog is the complete set of definitions a game is played with.
type Catalog struct {
	Cards []Card
	Jobs  []Job
	Goals []LifeGoal
}

// Job looks up a job by id.
func (c *Catalog) Job(id string) (Job, bool) {
	for _, j := range c.Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}

// Validate checks that the catalog can be played with.
func (c *Catalog) Validate() error {
	if len(c.Cards) == 0 {
		return errors.New("catalog has no cards")
	}
	if len(c.Jobs) == 0 {
		return errors.New("catalog has no jobs")
	}
	if len(c.Goals) == 0 {
		return errors.New("catalog has no life goals")
	}
	seen := make(map[string]bool, len(c.Cards))
	for _, card := range c.Cards {
		if seen[card.ID] {
			return errors.New("duplicate card id", slog.String("card_id", card.ID))
		}
		seen[card.ID] = true
		switch card.Type {
		case CardInvestment:
			if card.Cost <= 0 {
				return errors.New("investment without cost", slog.String("card_id", card.ID))
			}
		case CardEvent, CardInteraction, CardPersonal:
			if card.SkipTurns < 0 {
				return errors.New("negative skip turns", slog.String("card_id", card.ID))
			}
		default:
			return errors.New("unknown card type", slog.String("card_id", card.ID),
				slog.String("type", string(card.Type)))
		}
	}
	return nil
}
