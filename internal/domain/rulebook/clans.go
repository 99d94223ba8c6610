package rulebook

import (
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
)

// Clan is a character's faction. Each clan grants fixed attribute bonuses and
// a baseline HP value; this is fixed game content, not user-configurable.
type Clan struct {
	Key              string
	Name             string
	BaseHP           int
	AttributeBonuses map[shared.Attribute]int
}

// DefaultClan is the fallback for unknown clan keys
var DefaultClan = &Clan{
	Key:    "wanderer",
	Name:   "Wanderer",
	BaseHP: 5,
}

var clans = map[string]*Clan{
	"shaolin": {
		Key:    "shaolin",
		Name:   "Shaolin Temple",
		BaseHP: 10,
		AttributeBonuses: map[shared.Attribute]int{
			shared.AttributeVigor:      2,
			shared.AttributeDiscipline: 1,
		},
	},
	"wudang": {
		Key:    "wudang",
		Name:   "Wudang Sect",
		BaseHP: 8,
		AttributeBonuses: map[shared.Attribute]int{
			shared.AttributeDiscipline:    2,
			shared.AttributeComprehension: 1,
		},
	},
	"tangmen": {
		Key:    "tangmen",
		Name:   "Tang Clan",
		BaseHP: 6,
		AttributeBonuses: map[shared.Attribute]int{
			shared.AttributeAgility:       2,
			shared.AttributeComprehension: 1,
		},
	},
	"beggars": {
		Key:    "beggars",
		Name:   "Beggars' Union",
		BaseHP: 9,
		AttributeBonuses: map[shared.Attribute]int{
			shared.AttributeVigor:    1,
			shared.AttributePresence: 2,
		},
	},
	"emei": {
		Key:    "emei",
		Name:   "Emei Sect",
		BaseHP: 7,
		AttributeBonuses: map[shared.Attribute]int{
			shared.AttributeAgility:    1,
			shared.AttributePresence:   1,
			shared.AttributeDiscipline: 1,
		},
	},
}

// GetClan looks up a clan by key, falling back to DefaultClan so that stat
// calculation never fails on stale sheet data.
func GetClan(key string) *Clan {
	if clan, ok := clans[key]; ok {
		return clan
	}
	return DefaultClan
}

// ListClans returns all playable clans
func ListClans() []*Clan {
	out := make([]*Clan, 0, len(clans))
	for _, c := range clans {
		out = append(out, c)
	}
	return out
}
