package catalog

// Job ids of the standard catalog.
const (
	JobBlueCollar  = "blue"
	JobWhiteCollar = "white"
)

// Standard returns the catalog LIFEtune ships with. Every call returns fresh slices.
func Standard() *Catalog {
	return &Catalog{
		Cards: []Card{
			{ID: "inv_1", Type: CardInvestment, Title: "Big Company", Description: "Established market leader.", Cost: 300, Category: CategoryBigCompany},
			{ID: "inv_2", Type: CardInvestment, Title: "Startup", Description: "High risk, high reward potential.", Cost: 500, Category: CategoryStartup},
			{ID: "inv_3", Type: CardInvestment, Title: "Bonds", Description: "Steady debt security.", Cost: 200, Category: CategoryBond},
			{ID: "inv_4", Type: CardInvestment, Title: "Bank", Description: "Traditional savings account.", Cost: 100, Category: CategoryBank},
			{ID: "inv_5", Type: CardInvestment, Title: "Big Company", Description: "Established market leader.", Cost: 300, Category: CategoryBigCompany},
			{ID: "inv_6", Type: CardInvestment, Title: "Startup", Description: "High risk, high reward potential.", Cost: 500, Category: CategoryStartup},
			{ID: "inv_7", Type: CardInvestment, Title: "Bonds", Description: "Steady debt security.", Cost: 200, Category: CategoryBond},
			{ID: "inv_8", Type: CardInvestment, Title: "Bank", Description: "Traditional savings account.", Cost: 100, Category: CategoryBank},

			{ID: "evt_1", Type: CardEvent, Title: "Tax Refund", Description: "Unexpected bonus from the IRS.", Value: 200},
			{ID: "evt_2", Type: CardEvent, Title: "Car Repair", Description: "Your transmission broke down.", Value: -300},
			{ID: "evt_3", Type: CardEvent, Title: "Lottery Win", Description: "Small scratch-off victory!", Value: 150},
			{ID: "evt_4", Type: CardEvent, Title: "Medical Bill", Description: "Emergency room visit.", Value: -400},

			{ID: "pers_1", Type: CardPersonal, Title: "Sick Day", Description: "Flu season hits hard.", SkipTurns: 1},
			{ID: "pers_2", Type: CardPersonal, Title: "Vacation", Description: "Taking a break to recharge.", Value: -200, SkipTurns: 1},
			{ID: "pers_3", Type: CardPersonal, Title: "Promotion", Description: "Hard work pays off! One-time bonus.", Value: 500},

			{ID: "int_1", Type: CardInteraction, Title: "Birthday Gift", Description: "Give $50 to each other player.", Value: -50, Effect: EffectSharedGift},
			{ID: "int_2", Type: CardInteraction, Title: "Community Service", Description: "Skip a turn to help others.", SkipTurns: 1},
		},
		Jobs: []Job{
			{ID: JobBlueCollar, Name: "Blue Collar", Description: "Steady income, no debt.", Salary: 250, StartDebt: 0, StartSkip: 0},
			{ID: JobWhiteCollar, Name: "White Collar", Description: "Higher salary, but starts with debt and study time.", Salary: 400, StartDebt: 500, StartSkip: 2},
		},
		Goals: []LifeGoal{
			{ID: "retire", Name: "Early Retiree", Description: "Finish with > $5,000", Bonus: 1000, Condition: ConditionMoneyAbove, Threshold: 5000},
			{ID: "tycoon", Name: "Tycoon", Description: "Own 5+ Investments", Bonus: 800, Condition: ConditionMinInvestments, Threshold: 5},
			{ID: "safe", Name: "Safety First", Description: "Have Insurance", Bonus: 500, Condition: ConditionInsured},
			{ID: "saver", Name: "Penny Pincher", Description: "Spend < $1000 on cards", Bonus: 600, Condition: ConditionAlways},
		},
	}
}
