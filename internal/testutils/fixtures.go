package testutils

import (
	"github.com/jianghu-tales/jianghu-bot/internal/domain/character"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/rulebook"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
)

// CreateTestCharacter builds a Wudang disciple with derived stats applied
func CreateTestCharacter(id, ownerID, name string) *character.Character {
	char := &character.Character{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		ClanKey: "wudang",
		Attributes: map[shared.Attribute]int{
			shared.AttributeVigor:         3,
			shared.AttributeAgility:       2,
			shared.AttributeDiscipline:    4,
			shared.AttributeComprehension: 1,
			shared.AttributePresence:      0,
		},
		Inventory: character.Inventory{
			EquippedWeapon: &character.Weapon{
				Name:          "Taiyi Sword",
				Category:      "light",
				DamageFormula: "1d8+0",
				KeyAttribute:  shared.AttributeAgility,
			},
		},
	}
	rulebook.ApplyDerivedStats(char)
	return char
}

// CreateTestNPC builds a GM-controlled opponent
func CreateTestNPC(id, gmID, name string) *character.Character {
	char := CreateTestCharacter(id, gmID, name)
	char.IsNPC = true
	return char
}

// CreateTestSession builds a combat session awaiting initiative with the
// given characters snapshotted as participants
func CreateTestSession(id, gmID, name string, chars ...*character.Character) *combat.Session {
	session := combat.NewSession(id, gmID, name)
	for _, char := range chars {
		session.AddParticipant(&combat.Participant{
			CharacterID: char.ID,
			OwnerID:     char.OwnerID,
			Name:        char.Name,
			ImageRef:    char.ImageRef,
			Attributes:  char.Attributes,
			IsNPC:       char.IsNPC,
		})
	}
	return session
}
