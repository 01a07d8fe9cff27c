package game

// Sector is the immutable reference data for one development domain.
// It is owned by the persistence layer; the game only reads it.
type Sector struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Budget      int64  `json:"budget"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// Impact is the three-axis effect of a challenge option.
type Impact struct {
	Development int `json:"development"`
	Budget      int `json:"budget"`
	Environment int `json:"environment"`
}

// EnvImpact is the categorical environmental outcome of a sector session.
type EnvImpact string

const (
	EnvNegative  EnvImpact = "Negative"
	EnvNeutral   EnvImpact = "Neutral"
	EnvPositive  EnvImpact = "Positive"
	EnvGood      EnvImpact = "Good"
	EnvExcellent EnvImpact = "Excellent"
)

// envRank orders categories for the monotonic upgrade rule: within a
// session the category is only ever upgraded, never downgraded.
func envRank(e EnvImpact) int {
	switch e {
	case EnvNegative:
		return 0
	case EnvNeutral:
		return 1
	case EnvPositive:
		return 2
	case EnvGood:
		return 3
	case EnvExcellent:
		return 4
	}
	return 1
}

func upgradeEnv(cur, next EnvImpact) EnvImpact {
	if envRank(next) > envRank(cur) {
		return next
	}
	return cur
}

// SectorScore is the running score triple for one sector session.
type SectorScore struct {
	DevelopmentScore    int       `json:"developmentScore"`
	BudgetEfficiency    int       `json:"budgetEfficiency"`
	EnvironmentalImpact EnvImpact `json:"environmentalImpact"`
}

// ZeroScore is the state a sector session starts from.
func ZeroScore() SectorScore {
	return SectorScore{EnvironmentalImpact: EnvNeutral}
}
