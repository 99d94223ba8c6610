package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"context"
	"fmt"
	"log"

	"github.com/jianghu-tales/jianghu-bot/internal/dice"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/character"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
	characterrepo "github.com/jianghu-tales/jianghu-bot/internal/repositories/characters"
	combatrepo "github.com/jianghu-tales/jianghu-bot/internal/repositories/combats"
	"github.com/jianghu-tales/jianghu-bot/internal/uuid"
)

// NPCInput describes a throwaway opponent that has no character sheet. Its
// initiative is rolled immediately when combat starts.
type NPCInput struct {
	Name       string
	ImageRef   string
	Attributes map[shared.Attribute]int
}

// StartCombatInput holds everything needed to open a combat session
type StartCombatInput struct {
	GMID         string
	Name         string
	CharacterIDs []string
	NPCs         []*NPCInput
}

// Service coordinates combat sessions. Players act only on their own slots;
// the GM may act on any slot.
type Service interface {
	// StartCombat creates a session, replacing any prior session by the same
	// GM. Sheet-backed participants get their combat reference stamped.
	StartCombat(ctx context.Context, input *StartCombatInput) (*combat.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, id string) (*combat.Session, error)

	// GetSessionByGM retrieves the session run by a GM, nil when none exists
	GetSessionByGM(ctx context.Context, gmID string) (*combat.Session, error)

	// RollInitiative rolls initiative for one participant. Players roll only
	// for themselves; the GM may roll for anyone still pending.
	RollInitiative(ctx context.Context, userID, sessionID, characterID string) (*combat.Session, error)

	// RollPendingInitiatives rolls for every participant still without a
	// value. GM only.
	RollPendingInitiatives(ctx context.Context, gmID, sessionID string) (*combat.Session, error)

	// BeginRound locks the turn order and starts round one. GM only.
	BeginRound(ctx context.Context, gmID, sessionID string) (*combat.Session, error)

	// NextTurn advances the turn. The GM may always advance; a player only
	// when the current turn is their own.
	NextTurn(ctx context.Context, userID, sessionID string) (*combat.Session, error)

	// EndCombat deletes the session and clears combat references on every
	// sheet-backed participant. GM only.
	EndCombat(ctx context.Context, gmID, sessionID string) error

	// RecordAttack rolls an attack for a participant and logs it on the
	// session's broadcast slot
	RecordAttack(ctx context.Context, userID, sessionID, characterID string, mode dice.Mode) (*combat.Session, error)

	// RecordDamage rolls weapon damage for a participant and logs it
	RecordDamage(ctx context.Context, userID, sessionID, characterID string, isCrit bool) (*combat.Session, error)

	// RecordSkillCheck rolls an attribute check for a participant and logs it
	RecordSkillCheck(ctx context.Context, userID, sessionID, characterID string, attr shared.Attribute, mode dice.Mode) (*combat.Session, error)
}

type service struct {
	repo          combatrepo.Repository
	characterRepo characterrepo.Repository
	roller        dice.Roller
	uuidGenerator uuid.Generator
}

// ServiceConfig holds the dependencies for the combat service
type ServiceConfig struct {
	Repository          combatrepo.Repository
	CharacterRepository characterrepo.Repository
	Roller              dice.Roller
	UUIDGenerator       uuid.Generator
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("Repository cannot be nil")
	}
	if cfg.CharacterRepository == nil {
		panic("CharacterRepository cannot be nil")
	}
	if cfg.Roller == nil {
		panic("Roller cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		panic("UUIDGenerator cannot be nil")
	}

	return &service{
		repo:          cfg.Repository,
		characterRepo: cfg.CharacterRepository,
		roller:        cfg.Roller,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

func (s *service) StartCombat(ctx context.Context, input *StartCombatInput) (*combat.Session, error) {
	if input == nil {
		return nil, jherr.InvalidArgument("input cannot be nil")
	}
	if input.GMID == "" {
		return nil, jherr.InvalidArgument("GM ID is required")
	}
	if len(input.CharacterIDs) == 0 && len(input.NPCs) == 0 {
		return nil, jherr.InvalidArgument("combat needs at least one participant")
	}

	// One session per GM: a new combat replaces whatever was left running
	if prior, err := s.repo.GetByGM(ctx, input.GMID); err != nil {
		return nil, err
	} else if prior != nil {
		if err := s.EndCombat(ctx, input.GMID, prior.ID); err != nil {
			return nil, fmt.Errorf("failed to end prior combat: %w", err)
		}
	}

	name := input.Name
	if name == "" {
		name = "Combat"
	}
	session := combat.NewSession(s.uuidGenerator.New(), input.GMID, name)

	var stamped []*character.Character
	for _, id := range input.CharacterIDs {
		char, err := s.characterRepo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		session.AddParticipant(&combat.Participant{
			CharacterID: char.ID,
			OwnerID:     char.OwnerID,
			Name:        char.Name,
			ImageRef:    char.ImageRef,
			Attributes:  char.Attributes,
			IsNPC:       char.IsNPC,
		})
		stamped = append(stamped, char)
	}

	for _, npc := range input.NPCs {
		if npc == nil || npc.Name == "" {
			return nil, jherr.InvalidArgument("NPC name is required")
		}
		p := &combat.Participant{
			// Ad-hoc NPCs have no sheet but still need an identity in the
			// turn order
			CharacterID: s.uuidGenerator.New(),
			OwnerID:     input.GMID,
			Name:        npc.Name,
			ImageRef:    npc.ImageRef,
			Attributes:  npc.Attributes,
			IsNPC:       true,
		}
		// Throwaway NPCs never wait on a player, roll for them now
		result, err := s.roller.RollD20(dice.ModeNormal, p.Attributes[shared.AttributeAgility])
		if err != nil {
			return nil, err
		}
		value := result.Total
		p.Initiative = &value
		session.AddParticipant(p)
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create combat session: %w", err)
	}

	for _, char := range stamped {
		char.ActiveCombatID = session.ID
		if err := s.characterRepo.Update(ctx, char); err != nil {
			return nil, fmt.Errorf("failed to stamp combat on character %s: %w", char.ID, err)
		}
	}

	return session, nil
}

func (s *service) GetSession(ctx context.Context, id string) (*combat.Session, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) GetSessionByGM(ctx context.Context, gmID string) (*combat.Session, error) {
	return s.repo.GetByGM(ctx, gmID)
}

func (s *service) RollInitiative(ctx context.Context, userID, sessionID, characterID string) (*combat.Session, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	p := session.FindParticipant(characterID)
	if p == nil {
		return nil, jherr.NotFoundf("participant '%s' not in this combat", characterID)
	}
	if userID != session.GMID && p.OwnerID != userID {
		return nil, jherr.PermissionDenied("players roll initiative only for their own characters")
	}
	// The GM fills empty slots but never overwrites a player's own roll.
	// Players may re-roll their own slot until the round starts.
	if userID == session.GMID && p.OwnerID != userID && p.Initiative != nil {
		return nil, jherr.InvalidArgumentf("%s has already rolled initiative", p.Name)
	}

	result, err := s.roller.RollD20(dice.ModeNormal, p.Attributes[shared.AttributeAgility])
	if err != nil {
		return nil, err
	}
	if !session.SubmitInitiative(characterID, result.Total) {
		return nil, jherr.InvalidArgument("initiative can only be rolled before the round starts")
	}
	session.Log(p.Name, "initiative", fmt.Sprintf("%s rolls initiative: %d", p.Name, result.Total), result.Total, result.Rolls)

	return s.save(ctx, session)
}

func (s *service) RollPendingInitiatives(ctx context.Context, gmID, sessionID string) (*combat.Session, error) {
	session, err := s.gmSession(ctx, gmID, sessionID)
	if err != nil {
		return nil, err
	}

	for _, p := range session.PendingInitiative() {
		result, err := s.roller.RollD20(dice.ModeNormal, p.Attributes[shared.AttributeAgility])
		if err != nil {
			return nil, err
		}
		if !session.SubmitInitiative(p.CharacterID, result.Total) {
			return nil, jherr.InvalidArgument("initiative can only be rolled before the round starts")
		}
	}

	return s.save(ctx, session)
}

func (s *service) BeginRound(ctx context.Context, gmID, sessionID string) (*combat.Session, error) {
	session, err := s.gmSession(ctx, gmID, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.BeginRound() {
		return nil, jherr.InvalidArgument("combat is already underway")
	}

	return s.save(ctx, session)
}

func (s *service) NextTurn(ctx context.Context, userID, sessionID string) (*combat.Session, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != combat.StatusActive {
		return nil, jherr.InvalidArgument("combat has not started")
	}
	if userID != session.GMID && !session.IsOwnTurn(userID) {
		return nil, jherr.PermissionDenied("only the GM or the acting player may advance the turn")
	}

	session.NextTurn()
	return s.save(ctx, session)
}

func (s *service) EndCombat(ctx context.Context, gmID, sessionID string) error {
	session, err := s.gmSession(ctx, gmID, sessionID)
	if err != nil {
		return err
	}

	// Clear combat references before the session disappears
	for _, p := range session.Participants {
		if p.CharacterID == "" {
			continue
		}
		char, err := s.characterRepo.Get(ctx, p.CharacterID)
		if jherr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return err
		}
		if char.ActiveCombatID != session.ID {
			continue
		}
		char.ActiveCombatID = ""
		if err := s.characterRepo.Update(ctx, char); err != nil {
			return fmt.Errorf("failed to clear combat on character %s: %w", char.ID, err)
		}
	}

	return s.repo.Delete(ctx, sessionID)
}

func (s *service) RecordAttack(ctx context.Context, userID, sessionID, characterID string, mode dice.Mode) (*combat.Session, error) {
	session, p, err := s.actingParticipant(ctx, userID, sessionID, characterID)
	if err != nil {
		return nil, err
	}

	bonus := p.Attributes[shared.AttributeAgility]
	weaponName := "bare hands"
	if char := s.sheetFor(ctx, p); char != nil {
		if weapon := char.Inventory.EquippedWeapon; weapon != nil {
			weaponName = weapon.Name
			bonus = char.RollBonus(weapon.KeyAttribute)
		} else {
			bonus = char.RollBonus(shared.AttributeAgility)
		}
	}

	result, err := s.roller.RollD20(mode, bonus)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("%s attacks with %s: %d", p.Name, weaponName, result.Total)
	if result.IsCrit {
		text += " (critical!)"
	}
	if result.IsFumble {
		text += " (fumble)"
	}
	session.Log(p.Name, "attack", text, result.Total, result.Rolls)

	return s.save(ctx, session)
}

func (s *service) RecordDamage(ctx context.Context, userID, sessionID, characterID string, isCrit bool) (*combat.Session, error) {
	session, p, err := s.actingParticipant(ctx, userID, sessionID, characterID)
	if err != nil {
		return nil, err
	}

	input := &dice.DamageInput{
		Formula: "1d4",
		IsCrit:  isCrit,
	}
	weaponName := "bare hands"
	if char := s.sheetFor(ctx, p); char != nil {
		if weapon := char.Inventory.EquippedWeapon; weapon != nil {
			weaponName = weapon.Name
			input.Formula = weapon.DamageFormula
			input.Category = dice.NormalizeCategory(weapon.Category)
			input.AttributeValue = char.Attribute(weapon.KeyAttribute)
			input.Proficient = char.IsProficient(weapon.KeyAttribute)
		}
	}

	result, err := dice.RollDamage(s.roller, input)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("%s deals %d damage with %s", p.Name, result.Total, weaponName)
	session.Log(p.Name, "damage", text, result.Total, result.Rolls)

	return s.save(ctx, session)
}

func (s *service) RecordSkillCheck(ctx context.Context, userID, sessionID, characterID string, attr shared.Attribute, mode dice.Mode) (*combat.Session, error) {
	if !attr.IsValid() {
		return nil, jherr.InvalidArgumentf("unknown attribute '%s'", attr)
	}
	session, p, err := s.actingParticipant(ctx, userID, sessionID, characterID)
	if err != nil {
		return nil, err
	}

	bonus := p.Attributes[attr]
	if char := s.sheetFor(ctx, p); char != nil {
		bonus = char.RollBonus(attr)
	}

	result, err := s.roller.RollD20(mode, bonus)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("%s makes a %s check: %d", p.Name, attr, result.Total)
	session.Log(p.Name, "check", text, result.Total, result.Rolls)

	return s.save(ctx, session)
}

// gmSession loads a session and verifies the caller runs it
func (s *service) gmSession(ctx context.Context, gmID, sessionID string) (*combat.Session, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.GMID != gmID {
		return nil, jherr.PermissionDenied("only the GM may do this")
	}
	return session, nil
}

// actingParticipant loads a session and resolves a participant the caller may
// act as: their own character, or any slot when the caller is the GM
func (s *service) actingParticipant(ctx context.Context, userID, sessionID, characterID string) (*combat.Session, *combat.Participant, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	p := session.FindParticipant(characterID)
	if p == nil {
		return nil, nil, jherr.NotFoundf("participant '%s' not in this combat", characterID)
	}
	if userID != session.GMID && p.OwnerID != userID {
		return nil, nil, jherr.PermissionDenied("players act only as their own characters")
	}
	return session, p, nil
}

// sheetFor loads the character sheet behind a participant, nil for ad-hoc
// NPCs or when the sheet cannot be loaded
func (s *service) sheetFor(ctx context.Context, p *combat.Participant) *character.Character {
	if p.CharacterID == "" {
		return nil
	}
	char, err := s.characterRepo.Get(ctx, p.CharacterID)
	if err != nil {
		return nil
	}
	return char
}

// save persists the mutated session. A failed store write is logged and
// swallowed: callers keep the mutated copy and the store catches up on the
// next write or poll.
func (s *service) save(ctx context.Context, session *combat.Session) (*combat.Session, error) {
	if err := s.repo.Update(ctx, session); err != nil {
		log.Printf("Failed to update combat session %s: %v", session.ID, err)
	}
	return session, nil
}
