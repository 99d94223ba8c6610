package rulebook

import (
	"math"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/character"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
)

// DerivedStats are the combat stats computed from a sheet. They are never
// stored; callers recompute them whenever an input changes.
type DerivedStats struct {
	MaxHP      int
	MaxChi     int
	ArmorClass int
}

// CalculateStats derives max HP, max Chi and armor class from a character's
// clan, attributes, progression tracks, innate body and equipped armor. The
// function is pure: identical inputs always produce identical output.
//
// A GM manual override replaces the formula-derived base for that one stat;
// flat bonuses add on top either way. Unknown clan, innate-body or armor keys
// resolve to rulebook defaults instead of failing.
func CalculateStats(c *character.Character) DerivedStats {
	clan := GetClan(c.ClanKey)
	body := GetInnateBody(c.InnateBodyKey)
	armor := GetArmor(c.Inventory.ArmorKey)

	return DerivedStats{
		MaxHP:      maxHP(c, clan, body),
		MaxChi:     maxChi(c, body),
		ArmorClass: armorClass(c, armor),
	}
}

func maxHP(c *character.Character, clan *Clan, body *InnateBody) int {
	if c.Stats.ManualMaxHP != nil {
		return *c.Stats.ManualMaxHP + c.Stats.BonusMaxHP
	}

	multiplier := RefinementMultiplier(c.BodyRefinementLevel)
	if c.BodyRefinementLevel > 0 {
		// innate refinement bonuses only apply once refinement has begun
		multiplier += body.RefinementMultiplierBonus
	}

	base := float64(clan.BaseHP+body.HPBonus+c.Attribute(shared.AttributeVigor)) * multiplier
	return int(math.Floor(base)) + c.Stats.BonusMaxHP
}

func maxChi(c *character.Character, body *InnateBody) int {
	if c.Stats.ManualMaxChi != nil {
		return *c.Stats.ManualMaxChi + c.Stats.BonusMaxChi
	}

	base := float64(5+c.Attribute(shared.AttributeDiscipline)) * CultivationMultiplier(c.CultivationStage)
	chi := int(math.Floor(base))
	chi += MasteryChiBonus(c.MasteryLevel)
	chi += c.MasteryLevel * body.ChiPerMastery
	return chi + c.Stats.BonusMaxChi
}

func armorClass(c *character.Character, armor *Armor) int {
	if c.Stats.ManualArmorClass != nil {
		return *c.Stats.ManualArmorClass + c.Stats.BonusArmorClass
	}

	var base int
	if armor.Mode == ArmorModeFixed {
		base = armor.BaseValue
	} else {
		base = 10 + c.Attribute(shared.AttributeAgility)
	}
	return base + c.Stats.BonusArmorClass
}

// ApplyDerivedStats recomputes a character's maximums and keeps current
// values within the new bounds.
func ApplyDerivedStats(c *character.Character) {
	derived := CalculateStats(c)

	c.Stats.MaxHP = derived.MaxHP
	c.Stats.MaxChi = derived.MaxChi
	c.Stats.ArmorClass = derived.ArmorClass

	if c.Stats.CurrentHP > c.Stats.MaxHP {
		c.Stats.CurrentHP = c.Stats.MaxHP
	}
	if c.Stats.CurrentChi > c.Stats.MaxChi {
		c.Stats.CurrentChi = c.Stats.MaxChi
	}
}
