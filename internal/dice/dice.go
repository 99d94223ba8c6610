package dice

import (
	"math/rand"
	"regexp"
	"strconv"
)

// Mode selects how a d20 is rolled
type Mode string

const (
	ModeNormal       Mode = "normal"
	ModeAdvantage    Mode = "advantage"
	ModeDisadvantage Mode = "disadvantage"
)

// Formula is a parsed dice expression of the shape NdM+K
type Formula struct {
	Count    int
	Faces    int
	Modifier int
}

// DefaultFormula is the fallback for unparsable formula strings. Technique
// damage formulas are free-text game content, so parsing must never fail.
var DefaultFormula = Formula{Count: 1, Faces: 4, Modifier: 0}

var formulaPattern = regexp.MustCompile(`^\s*(\d+)\s*[dD]\s*(\d+)\s*(?:([+-])\s*(\d+))?\s*$`)

// ParseFormula parses a dice expression like "2d6+3" or "1d10-1".
// Anything it cannot understand yields DefaultFormula instead of an error.
func ParseFormula(s string) Formula {
	m := formulaPattern.FindStringSubmatch(s)
	if m == nil {
		return DefaultFormula
	}

	count, err := strconv.Atoi(m[1])
	if err != nil || count < 1 {
		return DefaultFormula
	}
	faces, err := strconv.Atoi(m[2])
	if err != nil || faces < 1 {
		return DefaultFormula
	}

	modifier := 0
	if m[4] != "" {
		modifier, err = strconv.Atoi(m[4])
		if err != nil {
			return DefaultFormula
		}
		if m[3] == "-" {
			modifier = -modifier
		}
	}

	return Formula{Count: count, Faces: faces, Modifier: modifier}
}

// RollResult holds the outcome of a roll
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int  // total before bonus; for d20 modes, the selected die
	Mode     Mode // set for d20 rolls
	IsCrit   bool
	IsFumble bool
}

// roll produces n uniform values in [1, sides]
func roll(n, sides int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rand.Intn(sides) + 1
	}
	return out
}
