package rulebook

// The three progression tracks are independent, small ordered tables. Each
// level indexes into its table; out-of-range levels clamp to the table edges
// so corrupted sheet data degrades instead of breaking.

// refinementMultipliers scales the HP formula per body-refinement level
var refinementMultipliers = []float64{1.0, 1.2, 1.5, 1.8, 2.2, 2.6}

// cultivationStages scales the Chi formula per cultivation stage
var cultivationStages = []struct {
	Name       string
	Multiplier float64
}{
	{"Mortal", 1.0},
	{"Qi Gathering", 1.5},
	{"Inner Gate", 2.0},
	{"Golden Core", 2.5},
	{"Nascent Soul", 3.0},
}

// masteryChiBonuses is the flat max-Chi bonus per mastery level
var masteryChiBonuses = []int{0, 2, 4, 7, 10}

// ProficiencyUnlockStage is the cultivation stage at which a character picks
// their proficient attribute.
const ProficiencyUnlockStage = 2

// RefinementMultiplier returns the HP multiplier for a body-refinement level
func RefinementMultiplier(level int) float64 {
	return refinementMultipliers[clamp(level, len(refinementMultipliers))]
}

// MaxRefinementLevel is the highest defined body-refinement level
func MaxRefinementLevel() int {
	return len(refinementMultipliers) - 1
}

// CultivationMultiplier returns the Chi multiplier for a cultivation stage
func CultivationMultiplier(stage int) float64 {
	return cultivationStages[clamp(stage, len(cultivationStages))].Multiplier
}

// CultivationStageName returns the display name for a cultivation stage
func CultivationStageName(stage int) string {
	return cultivationStages[clamp(stage, len(cultivationStages))].Name
}

// MasteryChiBonus returns the flat max-Chi bonus for a mastery level
func MasteryChiBonus(level int) int {
	return masteryChiBonuses[clamp(level, len(masteryChiBonuses))]
}

func clamp(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
