package character

import (
	"time"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
)

// Character is a finalized player character or GM-controlled NPC sheet
type Character struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`

	ClanKey       string `json:"clan_key"`
	FightingStyle string `json:"fighting_style"`
	InnateBodyKey string `json:"innate_body_key,omitempty"`
	ImageRef      string `json:"image_ref,omitempty"`

	// Progression tracks, each an index into a fixed rulebook table
	BodyRefinementLevel int `json:"body_refinement_level"`
	CultivationStage    int `json:"cultivation_stage"`
	MasteryLevel        int `json:"mastery_level"`

	Attributes map[shared.Attribute]int `json:"attributes"`

	// ProficientAttribute doubles that attribute's roll bonus; empty when not
	// yet chosen
	ProficientAttribute shared.Attribute `json:"proficient_attribute,omitempty"`

	Stats      StatsBlock   `json:"stats"`
	Inventory  Inventory    `json:"inventory"`
	Techniques []*Technique `json:"techniques"`

	// IsNPC marks GM-owned characters; temporary NPCs never persist
	IsNPC bool `json:"is_npc,omitempty"`

	// ActiveCombatID references the combat session this character currently
	// participates in, empty outside combat
	ActiveCombatID string `json:"active_combat_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatsBlock holds current and derived combat stats. Max values are
// recomputed from the rulebook formulas on every relevant edit; a GM manual
// override replaces the formula-derived base, and flat bonuses always add on
// top of whichever base applies.
type StatsBlock struct {
	CurrentHP  int `json:"current_hp"`
	MaxHP      int `json:"max_hp"`
	CurrentChi int `json:"current_chi"`
	MaxChi     int `json:"max_chi"`
	ArmorClass int `json:"armor_class"`

	// GM manual overrides, nil when the formula applies
	ManualMaxHP      *int `json:"manual_max_hp,omitempty"`
	ManualMaxChi     *int `json:"manual_max_chi,omitempty"`
	ManualArmorClass *int `json:"manual_armor_class,omitempty"`

	// Flat bonuses applied after the base
	BonusMaxHP      int `json:"bonus_max_hp,omitempty"`
	BonusMaxChi     int `json:"bonus_max_chi,omitempty"`
	BonusArmorClass int `json:"bonus_armor_class,omitempty"`
}

// Wallet holds the three currency denominations
type Wallet struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Copper int `json:"copper"`
}

// Weapon is an inventory weapon. Category is free text normalized at roll
// time; DamageFormula is free text parsed at roll time.
type Weapon struct {
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	DamageFormula string           `json:"damage_formula"`
	KeyAttribute  shared.Attribute `json:"key_attribute"`
}

// Item is a general inventory item
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// Inventory groups everything the character carries
type Inventory struct {
	EquippedWeapon *Weapon   `json:"equipped_weapon,omitempty"`
	Arsenal        []*Weapon `json:"arsenal,omitempty"`
	ArmorKey       string    `json:"armor_key,omitempty"`
	Items          []*Item   `json:"items,omitempty"`
	Wallet         Wallet    `json:"wallet"`
}

// Technique is a learned martial or internal technique
type Technique struct {
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	ActionCost    string           `json:"action_cost"`
	Cost          int              `json:"cost"`
	DamageFormula string           `json:"damage_formula,omitempty"`
	KeyAttribute  shared.Attribute `json:"key_attribute,omitempty"`
	Effect        string           `json:"effect,omitempty"`
	RequiresRoll  bool             `json:"requires_roll,omitempty"`
	Concentration bool             `json:"concentration,omitempty"`
}

// Attribute returns the character's value for an attribute, 0 when unset
func (c *Character) Attribute(attr shared.Attribute) int {
	if c.Attributes == nil {
		return 0
	}
	return c.Attributes[attr]
}

// IsProficient reports whether attr is the character's proficient attribute
func (c *Character) IsProficient(attr shared.Attribute) bool {
	return c.ProficientAttribute != "" && c.ProficientAttribute == attr
}

// RollBonus returns the attribute bonus applied to rolls, doubled for the
// proficient attribute.
func (c *Character) RollBonus(attr shared.Attribute) int {
	bonus := c.Attribute(attr)
	if c.IsProficient(attr) {
		bonus *= 2
	}
	return bonus
}

// ApplyDamage reduces current HP, clamped at 0
func (c *Character) ApplyDamage(damage int) {
	if damage < 0 {
		return
	}
	c.Stats.CurrentHP -= damage
	if c.Stats.CurrentHP < 0 {
		c.Stats.CurrentHP = 0
	}
}

// Heal restores current HP up to the maximum
func (c *Character) Heal(amount int) {
	if amount < 0 {
		return
	}
	c.Stats.CurrentHP += amount
	if c.Stats.CurrentHP > c.Stats.MaxHP {
		c.Stats.CurrentHP = c.Stats.MaxHP
	}
}

// SpendChi reduces current Chi, clamped at 0. Returns false when the
// character lacks the Chi; nothing is spent in that case.
func (c *Character) SpendChi(amount int) bool {
	if amount < 0 {
		return false
	}
	if c.Stats.CurrentChi < amount {
		return false
	}
	c.Stats.CurrentChi -= amount
	return true
}

// RestoreChi restores current Chi up to the maximum
func (c *Character) RestoreChi(amount int) {
	if amount < 0 {
		return
	}
	c.Stats.CurrentChi += amount
	if c.Stats.CurrentChi > c.Stats.MaxChi {
		c.Stats.CurrentChi = c.Stats.MaxChi
	}
}

// SetCurrentHP sets current HP directly, clamped to [0, MaxHP]
func (c *Character) SetCurrentHP(value int) {
	if value < 0 {
		value = 0
	}
	if value > c.Stats.MaxHP {
		value = c.Stats.MaxHP
	}
	c.Stats.CurrentHP = value
}

// SetCurrentChi sets current Chi directly, clamped to [0, MaxChi]
func (c *Character) SetCurrentChi(value int) {
	if value < 0 {
		value = 0
	}
	if value > c.Stats.MaxChi {
		value = c.Stats.MaxChi
	}
	c.Stats.CurrentChi = value
}

// IsAlive reports whether the character has HP left
func (c *Character) IsAlive() bool {
	return c.Stats.CurrentHP > 0
}

// EquipWeapon moves a weapon into the equipped slot; the previous weapon, if
// any, returns to the arsenal.
func (c *Character) EquipWeapon(weapon *Weapon) {
	if weapon == nil {
		return
	}
	if c.Inventory.EquippedWeapon != nil {
		c.Inventory.Arsenal = append(c.Inventory.Arsenal, c.Inventory.EquippedWeapon)
	}
	c.Inventory.EquippedWeapon = weapon
}

// FindTechnique returns the named technique, nil when absent
func (c *Character) FindTechnique(name string) *Technique {
	for _, t := range c.Techniques {
		if t.Name == name {
			return t
		}
	}
	return nil
}
