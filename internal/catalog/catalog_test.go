package catalog_test

import (
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestStandard(t *testing.T) {
	c := catalog.Standard()
	require.NoError(t, c.Validate())
	require.Len(t, c.Cards, 17)
	require.Len(t, c.Jobs, 2)
	require.Len(t, c.Goals, 4)

	white, ok := c.Job(catalog.JobWhiteCollar)
	require.True(t, ok)
	require.Equal(t, 400, white.Salary)
	require.Equal(t, 500, white.StartDebt)
	require.Equal(t, 2, white.StartSkip)

	_, ok = c.Job("astronaut")
	require.False(t, ok)

	for _, card := range c.Cards {
		if card.Type == catalog.CardInvestment {
			require.NotEqual(t, catalog.CategoryNone, card.Category, card.ID)
		}
	}
}

func TestLifeGoal_Satisfied(t *testing.T) {
	t.Parallel()
	goals := map[string]catalog.LifeGoal{}
	for _, g := range catalog.Standard().Goals {
		goals[g.ID] = g
	}

	tests := []struct {
		name     string
		goal     string
		holdings catalog.Holdings
		want     bool
	}{
		{name: "retire just above threshold", goal: "retire", holdings: catalog.Holdings{Money: decimal.RequireFromString("5000.25")}, want: true},
		{name: "retire exactly at threshold", goal: "retire", holdings: catalog.Holdings{Money: decimal.NewFromInt(5000)}, want: false},
		{name: "retire above threshold", goal: "retire", holdings: catalog.Holdings{Money: decimal.NewFromInt(5001)}, want: true},
		{name: "tycoon with four", goal: "tycoon", holdings: catalog.Holdings{Investments: 4}, want: false},
		{name: "tycoon with five", goal: "tycoon", holdings: catalog.Holdings{Investments: 5}, want: true},
		{name: "safe uninsured", goal: "safe", holdings: catalog.Holdings{Insured: false}, want: false},
		{name: "safe insured", goal: "safe", holdings: catalog.Holdings{Insured: true}, want: true},
		{name: "saver always", goal: "saver", holdings: catalog.Holdings{Money: decimal.NewFromInt(-100)}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, goals[tt.goal].Satisfied(tt.holdings))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(c *catalog.Catalog)
	}{
		{name: "no cards", mutate: func(c *catalog.Catalog) { c.Cards = nil }},
		{name: "no jobs", mutate: func(c *catalog.Catalog) { c.Jobs = nil }},
		{name: "no goals", mutate: func(c *catalog.Catalog) { c.Goals = nil }},
		{name: "duplicate id", mutate: func(c *catalog.Catalog) { c.Cards[1].ID = c.Cards[0].ID }},
		{name: "free investment", mutate: func(c *catalog.Catalog) { c.Cards[0].Cost = 0 }},
		{name: "unknown type", mutate: func(c *catalog.Catalog) { c.Cards[10].Type = "wildcard" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := catalog.Standard()
			tt.mutate(c)
			require.Error(t, c.Validate())
		})
	}
}
