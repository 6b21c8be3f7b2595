package game

// Cash a computer player keeps in reserve before spending on insurance or investments.
const (
	insuranceReserve  = 400
	investmentReserve = 150
)

// NextAction picks a move for a computer player from a snapshot. It plays a cautious strategy: keep insurance
// while it is affordable and buy investments that leave a small reserve. ok is false when the game is over.
func NextAction(v View, jobID func(player int) string) (Action, bool) {
	p := v.CurrentPlayer()
	switch {
	case v.Can(ActionPlayers):
		return Action{Kind: ActionPlayers, Players: v.Rules.MinPlayers, JobID: ""}, true
	case v.Can(ActionJob):
		return Action{Kind: ActionJob, Players: 0, JobID: jobID(v.CurrentIndex)}, true
	case v.Can(ActionCollect):
		return simple(ActionCollect), true
	case v.Can(ActionPayPremium):
		if p.CanAfford(v.Rules.Premium) {
			return simple(ActionPayPremium), true
		}
		return simple(ActionSkipPremium), true
	case v.Can(ActionDraw):
		if !p.Insured && p.CanAfford(v.Rules.InsurancePrice+insuranceReserve) {
			return simple(ActionBuyInsurance), true
		}
		return simple(ActionDraw), true
	case v.Can(ActionBuy):
		if v.Pending != nil && p.CanAfford(v.Pending.Cost+investmentReserve) {
			return simple(ActionBuy), true
		}
		return simple(ActionPass), true
	case v.Can(ActionEndTurn):
		return simple(ActionEndTurn), true
	}
	return Action{}, false
}

func simple(kind ActionKind) Action {
	return Action{Kind: kind, Players: 0, JobID: ""}
}
