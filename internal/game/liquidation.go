package game

import (
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"github.com/shopspring/decimal"
	"sort"
	"strconv"
	"strings"
)

// DieSides is the size of the liquidation die.
const DieSides = 8

// Standing is a player's final state annotated with the liquidation outcome.
type Standing struct {
	Rank             int
	PlayerID         int
	Name             string
	Job              string
	Goal             string
	GoalMet          bool
	Insured          bool
	Cash             int
	Investments      []catalog.Card
	Rolls            []int
	LiquidationTotal decimal.Decimal
	Bonus            decimal.Decimal
	FinalMoney       decimal.Decimal
}

// Result is the outcome of a finished game, ordered by final money.
type Result struct {
	Standings []Standing
}

// Winner is the name of the richest player.
func (r Result) Winner() string {
	if len(r.Standings) == 0 {
		return ""
	}
	return r.Standings[0].Name
}

// Payout converts one investment into cash for a die roll between 1 and DieSides.
func Payout(category catalog.Category, cost int, roll int) decimal.Decimal {
	switch category {
	case catalog.CategoryBigCompany:
		switch {
		case roll <= 2: //nolint:mnd // payout table
			return decimal.Zero
		case roll <= 6: //nolint:mnd // payout table
			return decimal.NewFromInt(500) //nolint:mnd // payout table
		default:
			return decimal.NewFromInt(900) //nolint:mnd // payout table
		}
	case catalog.CategoryStartup:
		if roll <= 6 { //nolint:mnd // payout table
			return decimal.Zero
		}
		return decimal.NewFromInt(2000) //nolint:mnd // payout table
	case catalog.CategoryBond:
		if roll == 1 {
			return decimal.Zero
		}
		return decimal.NewFromInt(400) //nolint:mnd // payout table
	case catalog.CategoryBank:
		if roll == 1 {
			return decimal.Zero
		}
		return decimal.NewFromInt(200) //nolint:mnd // payout table
	case catalog.CategoryNone:
	}
	// Unknown categories pay cost * roll/4, fractions are kept until display.
	return decimal.NewFromInt(int64(cost)).Mul(decimal.NewFromInt(int64(roll))).Div(decimal.NewFromInt(4)) //nolint:mnd // roll/4
}

func liquidate(players []*Player, rng Rand, log *Log) Result {
	standings := make([]Standing, len(players))
	for i, p := range players {
		var (
			total = decimal.Zero
			rolls = make([]int, 0, len(p.Investments))
		)
		for _, inv := range p.Investments {
			roll := rng.IntN(DieSides) + 1
			rolls = append(rolls, roll)
			total = total.Add(Payout(inv.Category, inv.Cost, roll))
		}
		if len(rolls) > 0 {
			log.Add(LevelInfo, "%s rolled for investments: %s", p.Name, joinRolls(rolls))
		}

		candidate := decimal.NewFromInt(int64(p.Money)).Add(total)
		bonus := decimal.Zero
		met := false
		if p.Goal != nil && p.Goal.Satisfied(catalog.Holdings{
			Money:       candidate,
			Investments: len(p.Investments),
			Insured:     p.Insured,
		}) {
			met = true
			bonus = decimal.NewFromInt(int64(p.Goal.Bonus))
		}

		standings[i] = Standing{
			Rank:             0,
			PlayerID:         p.ID,
			Name:             p.Name,
			Job:              jobName(p.Job),
			Goal:             goalName(p.Goal),
			GoalMet:          met,
			Insured:          p.Insured,
			Cash:             p.Money,
			Investments:      append([]catalog.Card(nil), p.Investments...),
			Rolls:            rolls,
			LiquidationTotal: total,
			Bonus:            bonus,
			FinalMoney:       candidate.Add(bonus),
		}
	}

	// Ties keep seating order.
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].FinalMoney.GreaterThan(standings[j].FinalMoney)
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	if len(standings) > 0 {
		log.Add(LevelSuccess, "%s wins with $%s!", standings[0].Name, standings[0].FinalMoney.StringFixed(0))
	}
	return Result{Standings: standings}
}

func joinRolls(rolls []int) string {
	s := make([]string, len(rolls))
	for i, r := range rolls {
		s[i] = strconv.Itoa(r)
	}
	return strings.Join(s, ", ")
}

func jobName(job *catalog.Job) string {
	if job == nil {
		return ""
	}
	return job.Name
}

func goalName(goal *catalog.LifeGoal) string {
	if goal == nil {
		return ""
	}
	return goal.Name
}
