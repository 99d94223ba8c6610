package rulebook

// ArmorMode decides how armor class is derived
type ArmorMode string

const (
	// ArmorModeFixed uses the armor's base value and ignores agility
	ArmorModeFixed ArmorMode = "fixed"

	// ArmorModeAgility ignores the base value and uses 10 + agility
	ArmorModeAgility ArmorMode = "agility"
)

// Armor is a fixed armor definition
type Armor struct {
	Key       string
	Name      string
	Mode      ArmorMode
	BaseValue int
}

// DefaultArmor is unarmored: 10 + agility
var DefaultArmor = &Armor{
	Key:       "unarmored",
	Name:      "Unarmored",
	Mode:      ArmorModeAgility,
	BaseValue: 10,
}

var armors = map[string]*Armor{
	"cloth_robes": {
		Key:       "cloth_robes",
		Name:      "Cloth Robes",
		Mode:      ArmorModeAgility,
		BaseValue: 10,
	},
	"leather_lamellar": {
		Key:       "leather_lamellar",
		Name:      "Leather Lamellar",
		Mode:      ArmorModeFixed,
		BaseValue: 13,
	},
	"iron_scale": {
		Key:       "iron_scale",
		Name:      "Iron Scale",
		Mode:      ArmorModeFixed,
		BaseValue: 15,
	},
	"mountain_pattern": {
		Key:       "mountain_pattern",
		Name:      "Mountain Pattern Armor",
		Mode:      ArmorModeFixed,
		BaseValue: 16,
	},
}

// GetArmor looks up an armor by key, falling back to DefaultArmor
func GetArmor(key string) *Armor {
	if armor, ok := armors[key]; ok {
		return armor
	}
	return DefaultArmor
}

// ListArmors returns all defined armors
func ListArmors() []*Armor {
	out := make([]*Armor, 0, len(armors))
	for _, a := range armors {
		out = append(out, a)
	}
	return out
}
