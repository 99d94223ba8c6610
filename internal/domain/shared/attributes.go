package shared

// Attribute identifies one of the five base attributes
type Attribute string

const (
	AttributeVigor         Attribute = "vigor"
	AttributeAgility       Attribute = "agility"
	AttributeDiscipline    Attribute = "discipline"
	AttributeComprehension Attribute = "comprehension"
	AttributePresence      Attribute = "presence"
)

// Attributes lists the five attributes in sheet order
var Attributes = []Attribute{
	AttributeVigor,
	AttributeAgility,
	AttributeDiscipline,
	AttributeComprehension,
	AttributePresence,
}

// IsValid reports whether a is one of the five attributes
func (a Attribute) IsValid() bool {
	switch a {
	case AttributeVigor, AttributeAgility, AttributeDiscipline,
		AttributeComprehension, AttributePresence:
		return true
	}
	return false
}
