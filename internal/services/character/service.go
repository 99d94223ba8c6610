package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacters -source=service.go

import (
	"context"
	"fmt"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/character"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/rulebook"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
	characterrepo "github.com/jianghu-tales/jianghu-bot/internal/repositories/characters"
	combatrepo "github.com/jianghu-tales/jianghu-bot/internal/repositories/combats"
	"github.com/jianghu-tales/jianghu-bot/internal/uuid"
)

// creationAttributePadding is how far above the clan bonus an attribute may
// start. The cap applies at creation only; later advancement is unrestricted.
const creationAttributePadding = 3

// CreateCharacterInput holds everything needed to create a character sheet
type CreateCharacterInput struct {
	OwnerID       string
	Name          string
	ClanKey       string
	FightingStyle string
	InnateBodyKey string
	ImageRef      string
	Attributes    map[shared.Attribute]int
	IsNPC         bool
}

// ProgressionInput updates a character's advancement tracks. Nil fields are
// left unchanged.
type ProgressionInput struct {
	BodyRefinementLevel *int
	CultivationStage    *int
	MasteryLevel        *int
}

// OverridesInput sets or clears GM overrides for derived stats. An override
// replaces the computed base; bonuses still add on afterwards.
type OverridesInput struct {
	MaxHP      *int
	MaxChi     *int
	ArmorClass *int

	ClearMaxHP      bool
	ClearMaxChi     bool
	ClearArmorClass bool
}

// BonusesInput sets flat bonuses applied on top of derived stats. Nil fields
// are left unchanged.
type BonusesInput struct {
	MaxHP      *int
	MaxChi     *int
	ArmorClass *int
}

// Service defines the character management interface
type Service interface {
	// CreateCharacter creates a new character sheet with derived stats filled
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, id string) (*character.Character, error)

	// ListCharacters retrieves all characters owned by a user
	ListCharacters(ctx context.Context, ownerID string) ([]*character.Character, error)

	// UpdateAttributes replaces the given attribute values and recomputes
	// derived stats
	UpdateAttributes(ctx context.Context, callerID, id string, attrs map[shared.Attribute]int) (*character.Character, error)

	// SetProgression advances body refinement, cultivation, or mastery
	SetProgression(ctx context.Context, callerID, id string, input *ProgressionInput) (*character.Character, error)

	// SetProficientAttribute marks one attribute as proficient. Proficiency
	// unlocks at the second cultivation stage.
	SetProficientAttribute(ctx context.Context, callerID, id string, attr shared.Attribute) (*character.Character, error)

	// SetManualOverrides applies GM overrides for derived stats
	SetManualOverrides(ctx context.Context, id string, input *OverridesInput) (*character.Character, error)

	// SetStatBonuses applies flat bonuses on top of derived stats
	SetStatBonuses(ctx context.Context, id string, input *BonusesInput) (*character.Character, error)

	// ApplyDamage reduces current HP, clamped at zero
	ApplyDamage(ctx context.Context, id string, amount int) (*character.Character, error)

	// Heal restores current HP up to the maximum
	Heal(ctx context.Context, id string, amount int) (*character.Character, error)

	// SpendChi deducts chi, failing when the pool is too small
	SpendChi(ctx context.Context, id string, amount int) (*character.Character, error)

	// RestoreChi refills chi up to the maximum
	RestoreChi(ctx context.Context, id string, amount int) (*character.Character, error)

	// EquipWeapon equips a weapon, moving any previous one to the arsenal
	EquipWeapon(ctx context.Context, callerID, id string, weapon *character.Weapon) (*character.Character, error)

	// EquipArmor changes worn armor and recomputes armor class
	EquipArmor(ctx context.Context, callerID, id, armorKey string) (*character.Character, error)

	// AddTechnique adds a technique to the sheet
	AddTechnique(ctx context.Context, callerID, id string, technique *character.Technique) (*character.Character, error)

	// RemoveTechnique removes a technique by name
	RemoveTechnique(ctx context.Context, callerID, id, name string) (*character.Character, error)

	// DeleteCharacter removes a character, dropping it from any combat it is in
	DeleteCharacter(ctx context.Context, callerID, id string) error
}

type service struct {
	repo          characterrepo.Repository
	combatRepo    combatrepo.Repository
	uuidGenerator uuid.Generator
}

// ServiceConfig holds the dependencies for the character service
type ServiceConfig struct {
	Repository       characterrepo.Repository
	CombatRepository combatrepo.Repository
	UUIDGenerator    uuid.Generator
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("Repository cannot be nil")
	}
	if cfg.CombatRepository == nil {
		panic("CombatRepository cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		panic("UUIDGenerator cannot be nil")
	}

	return &service{
		repo:          cfg.Repository,
		combatRepo:    cfg.CombatRepository,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error) {
	if input == nil {
		return nil, jherr.InvalidArgument("input cannot be nil")
	}
	if input.OwnerID == "" {
		return nil, jherr.InvalidArgument("owner ID is required")
	}
	if input.Name == "" {
		return nil, jherr.InvalidArgument("character name is required")
	}

	clan := rulebook.GetClan(input.ClanKey)

	attrs := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		attrs[attr] = 0
	}
	for attr, value := range input.Attributes {
		if !attr.IsValid() {
			return nil, jherr.InvalidArgumentf("unknown attribute '%s'", attr)
		}
		limit := clan.AttributeBonuses[attr] + creationAttributePadding
		if value > limit {
			return nil, jherr.InvalidArgumentf(
				"attribute %s starts at most at %d for clan %s, got %d", attr, limit, clan.Name, value)
		}
		attrs[attr] = value
	}

	char := &character.Character{
		ID:            s.uuidGenerator.New(),
		OwnerID:       input.OwnerID,
		Name:          input.Name,
		ClanKey:       clan.Key,
		FightingStyle: input.FightingStyle,
		InnateBodyKey: input.InnateBodyKey,
		ImageRef:      input.ImageRef,
		Attributes:    attrs,
		IsNPC:         input.IsNPC,
	}
	rulebook.ApplyDerivedStats(char)
	char.Stats.CurrentHP = char.Stats.MaxHP
	char.Stats.CurrentChi = char.Stats.MaxChi

	if err := s.repo.Create(ctx, char); err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}
	return char, nil
}

func (s *service) GetCharacter(ctx context.Context, id string) (*character.Character, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) ListCharacters(ctx context.Context, ownerID string) ([]*character.Character, error) {
	return s.repo.GetByOwner(ctx, ownerID)
}

// getOwned loads a character and verifies the caller owns it
func (s *service) getOwned(ctx context.Context, callerID, id string) (*character.Character, error) {
	char, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if char.OwnerID != callerID {
		return nil, jherr.PermissionDenied("character belongs to another player").
			WithMeta("character_id", id)
	}
	return char, nil
}

func (s *service) UpdateAttributes(ctx context.Context, callerID, id string, attrs map[shared.Attribute]int) (*character.Character, error) {
	char, err := s.getOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	for attr, value := range attrs {
		if !attr.IsValid() {
			return nil, jherr.InvalidArgumentf("unknown attribute '%s'", attr)
		}
		if char.Attributes == nil {
			char.Attributes = make(map[shared.Attribute]int)
		}
		char.Attributes[attr] = value
	}
	rulebook.ApplyDerivedStats(char)

	return s.save(ctx, char)
}

func (s *service) SetProgression(ctx context.Context, callerID, id string, input *ProgressionInput) (*character.Character, error) {
	if input == nil {
		return nil, jherr.InvalidArgument("input cannot be nil")
	}
	char, err := s.getOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if input.BodyRefinementLevel != nil {
		if *input.BodyRefinementLevel < 0 {
			return nil, jherr.InvalidArgument("body refinement level cannot be negative")
		}
		char.BodyRefinementLevel = *input.BodyRefinementLevel
	}
	if input.CultivationStage != nil {
		if *input.CultivationStage < 0 {
			return nil, jherr.InvalidArgument("cultivation stage cannot be negative")
		}
		char.CultivationStage = *input.CultivationStage
	}
	if input.MasteryLevel != nil {
		if *input.MasteryLevel < 0 {
			return nil, jherr.InvalidArgument("mastery level cannot be negative")
		}
		char.MasteryLevel = *input.MasteryLevel
	}
	rulebook.ApplyDerivedStats(char)

	return s.save(ctx, char)
}

func (s *service) SetProficientAttribute(ctx context.Context, callerID, id string, attr shared.Attribute) (*character.Character, error) {
	if !attr.IsValid() {
		return nil, jherr.InvalidArgumentf("unknown attribute '%s'", attr)
	}
	char, err := s.getOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if char.CultivationStage < rulebook.ProficiencyUnlockStage {
		return nil, jherr.InvalidArgumentf(
			"proficiency unlocks at the %s stage", rulebook.CultivationStageName(rulebook.ProficiencyUnlockStage))
	}

	char.ProficientAttribute = attr
	return s.save(ctx, char)
}

func (s *service) SetManualOverrides(ctx context.Context, id string, input *OverridesInput) (*character.Character, error) {
	if input == nil {
		return nil, jherr.InvalidArgument("input cannot be nil")
	}
	char, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ClearMaxHP {
		char.Stats.ManualMaxHP = nil
	} else if input.MaxHP != nil {
		char.Stats.ManualMaxHP = input.MaxHP
	}
	if input.ClearMaxChi {
		char.Stats.ManualMaxChi = nil
	} else if input.MaxChi != nil {
		char.Stats.ManualMaxChi = input.MaxChi
	}
	if input.ClearArmorClass {
		char.Stats.ManualArmorClass = nil
	} else if input.ArmorClass != nil {
		char.Stats.ManualArmorClass = input.ArmorClass
	}
	rulebook.ApplyDerivedStats(char)

	return s.save(ctx, char)
}

func (s *service) SetStatBonuses(ctx context.Context, id string, input *BonusesInput) (*character.Character, error) {
	if input == nil {
		return nil, jherr.InvalidArgument("input cannot be nil")
	}
	char, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MaxHP != nil {
		char.Stats.BonusMaxHP = *input.MaxHP
	}
	if input.MaxChi != nil {
		char.Stats.BonusMaxChi = *input.MaxChi
	}
	if input.ArmorClass != nil {
		char.Stats.BonusArmorClass = *input.ArmorClass
	}
	rulebook.ApplyDerivedStats(char)

	return s.save(ctx, char)
}

func (s *service) ApplyDamage(ctx context.Context, id string, amount int) (*character.Character, error) {
	char, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	char.ApplyDamage(amount)
	return s.save(ctx, char)
}

func (s *service) Heal(ctx context.Context, id string, amount int) (*character.Character, error) {
	char, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	char.Heal(amount)
	return s.save(ctx, char)
}

func (s *service) SpendChi(ctx context.Context, id string, amount int) (*character.Character, error) {
	char, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !char.SpendChi(amount) {
		return nil, jherr.InvalidArgumentf("not enough chi: need %d, have %d", amount, char.Stats.CurrentChi).
			WithMeta("character_id", id)
	}
	return s.save(ctx, char)
}

func (s *service) RestoreChi(ctx context.Context, id string, amount int) (*character.Character, error) {
	char, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	char.RestoreChi(amount)
	return s.save(ctx, char)
}

func (s *service) EquipWeapon(ctx context.Context, callerID, id string, weapon *character.Weapon) (*character.Character, error) {
	if weapon == nil {
		return nil, jherr.InvalidArgument("weapon cannot be nil")
	}
	if weapon.Name == "" {
		return nil, jherr.InvalidArgument("weapon name is required")
	}
	char, err := s.getOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	char.EquipWeapon(weapon)
	return s.save(ctx, char)
}

func (s *service) EquipArmor(ctx context.Context, callerID, id, armorKey string) (*character.Character, error) {
	char, err := s.getOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	char.Inventory.ArmorKey = rulebook.GetArmor(armorKey).Key
	rulebook.ApplyDerivedStats(char)

	return s.save(ctx, char)
}

func (s *service) AddTechnique(ctx context.Context, callerID, id string, technique *character.Technique) (*character.Character, error) {
	if technique == nil {
		return nil, jherr.InvalidArgument("technique cannot be nil")
	}
	if technique.Name == "" {
		return nil, jherr.InvalidArgument("technique name is required")
	}
	char, err := s.getOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if char.FindTechnique(technique.Name) != nil {
		return nil, jherr.AlreadyExistsf("technique '%s' already known", technique.Name)
	}
	char.Techniques = append(char.Techniques, technique)
	return s.save(ctx, char)
}

func (s *service) RemoveTechnique(ctx context.Context, callerID, id, name string) (*character.Character, error) {
	char, err := s.getOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	for i, t := range char.Techniques {
		if t.Name == name {
			char.Techniques = append(char.Techniques[:i], char.Techniques[i+1:]...)
			return s.save(ctx, char)
		}
	}
	return nil, jherr.NotFoundf("technique '%s' not known", name)
}

func (s *service) DeleteCharacter(ctx context.Context, callerID, id string) error {
	char, err := s.getOwned(ctx, callerID, id)
	if err != nil {
		return err
	}

	// Drop the character from any combat it is still part of so the turn
	// order never points at a deleted sheet
	if char.ActiveCombatID != "" {
		if err := s.removeFromCombat(ctx, char.ActiveCombatID, id); err != nil {
			return err
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) removeFromCombat(ctx context.Context, combatID, characterID string) error {
	session, err := s.combatRepo.Get(ctx, combatID)
	if jherr.IsNotFound(err) {
		// Stale reference; the combat already ended
		return nil
	}
	if err != nil {
		return err
	}

	session.RemoveParticipant(characterID)
	if err := s.combatRepo.Update(ctx, session); err != nil {
		return fmt.Errorf("failed to drop character from combat: %w", err)
	}
	return nil
}

func (s *service) save(ctx context.Context, char *character.Character) (*character.Character, error) {
	if err := s.repo.Update(ctx, char); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	return char, nil
}
