package rulebook

// InnateBody is an optional character trait granting passive modifiers to the
// derived-stat formulas.
type InnateBody struct {
	Key  string
	Name string

	// HPBonus is added to the clan base HP before the refinement multiplier
	HPBonus int

	// RefinementMultiplierBonus is added to the body-refinement multiplier,
	// but only once the character has refined at least one level
	RefinementMultiplierBonus float64

	// ChiPerMastery grants extra max Chi per mastery level
	ChiPerMastery int
}

// DefaultInnateBody has no effects; unknown keys resolve to it
var DefaultInnateBody = &InnateBody{
	Key:  "ordinary",
	Name: "Ordinary Body",
}

var innateBodies = map[string]*InnateBody{
	"jade_marrow": {
		Key:     "jade_marrow",
		Name:    "Jade Marrow",
		HPBonus: 3,
	},
	"azure_vein": {
		Key:                       "azure_vein",
		Name:                      "Azure Vein",
		RefinementMultiplierBonus: 0.25,
	},
	"dao_heart": {
		Key:           "dao_heart",
		Name:          "Dao Heart",
		ChiPerMastery: 2,
	},
	"iron_tendon": {
		Key:                       "iron_tendon",
		Name:                      "Iron Tendon",
		HPBonus:                   1,
		RefinementMultiplierBonus: 0.1,
	},
}

// GetInnateBody looks up an innate body by key, falling back to
// DefaultInnateBody.
func GetInnateBody(key string) *InnateBody {
	if body, ok := innateBodies[key]; ok {
		return body
	}
	return DefaultInnateBody
}

// ListInnateBodies returns all defined innate bodies
func ListInnateBodies() []*InnateBody {
	out := make([]*InnateBody, 0, len(innateBodies))
	for _, b := range innateBodies {
		out = append(out, b)
	}
	return out
}
