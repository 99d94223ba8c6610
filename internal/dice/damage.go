package dice

import (
	"fmt"
	"strings"
)

// WeaponCategory is the normalized weight class of a weapon. It decides the
// critical-hit multiplier applied to damage dice.
type WeaponCategory string

const (
	CategoryHeavy  WeaponCategory = "heavy"
	CategoryMedium WeaponCategory = "medium"
	CategoryLight  WeaponCategory = "light"
	CategoryNormal WeaponCategory = "normal"
)

// NormalizeCategory maps free-text weapon category strings, including
// Portuguese names and single-letter abbreviations from older sheets, onto a
// WeaponCategory.
func NormalizeCategory(s string) WeaponCategory {
	c := strings.ToLower(strings.TrimSpace(s))
	switch {
	case c == "p" || strings.Contains(c, "pesada") || strings.Contains(c, "heavy"):
		return CategoryHeavy
	case c == "l" || strings.Contains(c, "leve") || strings.Contains(c, "light"):
		return CategoryLight
	case c == "m" || strings.Contains(c, "media") || strings.Contains(c, "média") || strings.Contains(c, "medium"):
		return CategoryMedium
	default:
		return CategoryNormal
	}
}

// CritMultiplier returns the damage dice multiplier for a critical hit with
// this category of weapon: heavy weapons triple their dice, everything else
// doubles them.
func (c WeaponCategory) CritMultiplier() int {
	if c == CategoryHeavy {
		return 3
	}
	return 2
}

// DamageInput describes one damage roll request
type DamageInput struct {
	Formula        string
	AttributeValue int
	Proficient     bool
	IsCrit         bool
	Category       WeaponCategory
}

// DamageResult holds the outcome of a damage roll
type DamageResult struct {
	Total      int
	Rolls      []int
	Bonus      int
	Multiplier int
	Count      int
	Faces      int
	Message    string
}

// RollDamage resolves a damage roll. On a critical hit the dice count is
// multiplied per the weapon category; the flat bonus is the formula modifier
// plus the key attribute value, doubled when the attribute is proficient.
func RollDamage(roller Roller, input *DamageInput) (*DamageResult, error) {
	formula := ParseFormula(input.Formula)

	multiplier := 1
	if input.IsCrit {
		multiplier = input.Category.CritMultiplier()
	}

	attrBonus := input.AttributeValue
	if input.Proficient {
		attrBonus *= 2
	}
	bonus := formula.Modifier + attrBonus

	count := formula.Count * multiplier
	result, err := roller.Roll(count, formula.Faces, bonus)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%dd%d%+d = %d", count, formula.Faces, bonus, result.Total)
	if input.IsCrit {
		message = fmt.Sprintf("CRIT x%d! %s", multiplier, message)
	}

	return &DamageResult{
		Total:      result.Total,
		Rolls:      result.Rolls,
		Bonus:      bonus,
		Multiplier: multiplier,
		Count:      count,
		Faces:      formula.Faces,
		Message:    message,
	}, nil
}
