package game

import (
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"slices"
)

// Player holds the economic state of one seat. Money may go negative, affordability is checked by the turn
// engine before debiting.
type Player struct {
	ID          int
	Name        string
	Money       int
	Job         *catalog.Job
	Insured     bool
	Investments []catalog.Card
	Goal        *catalog.LifeGoal
	// SkipTurns is the number of upcoming turns the player forfeits.
	SkipTurns int
	HasLoan   bool
}

func newPlayer(id int, startingMoney int) *Player {
	return &Player{ //nolint:exhaustruct // job and goal are assigned during setup
		ID:    id,
		Name:  playerName(id),
		Money: startingMoney,
	}
}

func (p *Player) Credit(amount int) {
	p.Money += amount
}

// Debit removes amount without an overdraft check.
func (p *Player) Debit(amount int) {
	p.Money -= amount
}

func (p *Player) CanAfford(amount int) bool {
	return p.Money >= amount
}

func (p *Player) GrantInsurance() {
	p.Insured = true
}

func (p *Player) RevokeInsurance() {
	p.Insured = false
}

func (p *Player) AddInvestment(card catalog.Card) {
	p.Investments = append(p.Investments, card)
}

// AdjustSkipTurns changes the skip counter by delta. The counter never goes below zero.
func (p *Player) AdjustSkipTurns(delta int) {
	p.SkipTurns = max(p.SkipTurns+delta, 0)
}

// InvestmentTotal is the purchase price of all held investments.
func (p *Player) InvestmentTotal() int {
	total := 0
	for _, inv := range p.Investments {
		total += inv.Cost
	}
	return total
}

func (p *Player) clone() Player {
	c := *p
	c.Investments = slices.Clone(p.Investments)
	if p.Job != nil {
		job := *p.Job
		c.Job = &job
	}
	if p.Goal != nil {
		goal := *p.Goal
		c.Goal = &goal
	}
	return c
}
