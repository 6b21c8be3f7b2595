package postgres

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDecodePlayers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		raw             string
		wantJob         string
		wantGoal        string
		wantInvestments []string
		wantFinal       string
	}{
		{
			name:            "summary",
			raw:             `[{"name":"Player 1","job":"Blue Collar","goal":"Tycoon","investments":["Gold","Stocks"],"finalMoney":"1337.5"}]`,
			wantJob:         "Blue Collar",
			wantGoal:        "Tycoon",
			wantInvestments: []string{"Gold", "Stocks"},
			wantFinal:       "1337.5",
		},
		{
			name: "full player objects",
			raw: `[{"id":1,"name":"Player 1","money":900,"job":{"id":"white","name":"White Collar","salary":400},` +
				`"lifeGoal":{"id":"safe","name":"Safety First","bonus":500},` +
				`"investments":[{"id":"i1","type":"Investment","title":"Real Estate","cost":600}],"finalMoney":2100}]`,
			wantJob:         "White Collar",
			wantGoal:        "Safety First",
			wantInvestments: []string{"Real Estate"},
			wantFinal:       "2100",
		},
		{
			name:      "null job and goal",
			raw:       `[{"name":"Player 1","job":null,"lifeGoal":null,"investments":[],"finalMoney":0}]`,
			wantFinal: "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			players, err := decodePlayers([]byte(tt.raw))
			require.NoError(t, err)
			require.Len(t, players, 1)
			p := players[0]
			require.Equal(t, "Player 1", p.Name)
			require.Equal(t, tt.wantJob, p.Job)
			require.Equal(t, tt.wantGoal, p.Goal)
			require.Equal(t, tt.wantInvestments, p.Investments)
			require.True(t, decimal.RequireFromString(tt.wantFinal).Equal(p.FinalMoney))
		})
	}
}

func TestDecodePlayers_malformed(t *testing.T) {
	t.Parallel()
	_, err := decodePlayers([]byte(`[{"name":"Player 1","job":42}]`))
	require.Error(t, err)
}
