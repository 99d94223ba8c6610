package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/jianghu-tales/jianghu-bot/internal/dice"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/character"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/rulebook"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
	characterrepo "github.com/jianghu-tales/jianghu-bot/internal/repositories/characters"
	combatrepo "github.com/jianghu-tales/jianghu-bot/internal/repositories/combats"
	"github.com/jianghu-tales/jianghu-bot/internal/uuid/mocks"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ctx           context.Context
	repo          combatrepo.Repository
	characterRepo characterrepo.Repository
	roller        *dice.MockRoller
	uuidGen       *mocks.MockGenerator
	svc           Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.repo = combatrepo.NewInMemoryRepository()
	s.characterRepo = characterrepo.NewInMemoryRepository()
	s.roller = dice.NewMockRoller()
	s.uuidGen = mocks.NewMockGenerator(s.ctrl)

	s.svc = NewService(&ServiceConfig{
		Repository:          s.repo,
		CharacterRepository: s.characterRepo,
		Roller:              s.roller,
		UUIDGenerator:       s.uuidGen,
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) seedCharacter(id, ownerID, name string, agility int) *character.Character {
	char := &character.Character{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		ClanKey: "wudang",
		Attributes: map[shared.Attribute]int{
			shared.AttributeVigor:   2,
			shared.AttributeAgility: agility,
		},
		Inventory: character.Inventory{
			EquippedWeapon: &character.Weapon{
				Name:          "Taiyi Sword",
				Category:      "light",
				DamageFormula: "1d8+1",
				KeyAttribute:  shared.AttributeAgility,
			},
		},
	}
	rulebook.ApplyDerivedStats(char)
	s.Require().NoError(s.characterRepo.Create(s.ctx, char))
	return char
}

// startCombat opens a session with two sheet-backed players and one ad-hoc
// NPC whose initiative is rolled immediately (d20 face 10 + agility 1 = 11)
func (s *ServiceTestSuite) startCombat() *combat.Session {
	s.seedCharacter("char-a", "user-a", "Li Mu", 2)
	s.seedCharacter("char-b", "user-b", "Shen Yue", 1)

	s.uuidGen.EXPECT().New().Return("combat-1")
	s.uuidGen.EXPECT().New().Return("npc-1")
	s.roller.SetRolls([]int{10})

	session, err := s.svc.StartCombat(s.ctx, &StartCombatInput{
		GMID:         "gm-1",
		Name:         "Ferry Ambush",
		CharacterIDs: []string{"char-a", "char-b"},
		NPCs: []*NPCInput{{
			Name:       "Bandit Chief",
			Attributes: map[shared.Attribute]int{shared.AttributeAgility: 1},
		}},
	})
	s.Require().NoError(err)
	return session
}

func (s *ServiceTestSuite) TestStartCombat() {
	session := s.startCombat()

	s.Equal("combat-1", session.ID)
	s.Equal(combat.StatusPendingInitiative, session.Status)
	s.Require().Len(session.Participants, 3)

	npc := session.FindParticipant("npc-1")
	s.Require().NotNil(npc)
	s.True(npc.IsNPC)
	s.Require().NotNil(npc.Initiative)
	s.Equal(11, *npc.Initiative)

	// Players still wait on their own rolls
	s.Len(session.PendingInitiative(), 2)

	// Sheet-backed participants got the combat stamped
	char, err := s.characterRepo.Get(s.ctx, "char-a")
	s.Require().NoError(err)
	s.Equal("combat-1", char.ActiveCombatID)
}

func (s *ServiceTestSuite) TestStartCombat_ReplacesPriorSession() {
	s.startCombat()

	s.uuidGen.EXPECT().New().Return("combat-2")
	s.roller.SetRolls(nil)

	session, err := s.svc.StartCombat(s.ctx, &StartCombatInput{
		GMID:         "gm-1",
		CharacterIDs: []string{"char-a"},
	})
	s.Require().NoError(err)
	s.Equal("combat-2", session.ID)

	_, err = s.repo.Get(s.ctx, "combat-1")
	s.True(jherr.IsNotFound(err))

	// The stale stamp on char-b was cleared with the old session
	char, err := s.characterRepo.Get(s.ctx, "char-b")
	s.Require().NoError(err)
	s.Empty(char.ActiveCombatID)
}

func (s *ServiceTestSuite) TestRollInitiative_OwnSlotOnly() {
	s.startCombat()

	s.roller.SetRolls([]int{13})
	session, err := s.svc.RollInitiative(s.ctx, "user-a", "combat-1", "char-a")
	s.Require().NoError(err)

	p := session.FindParticipant("char-a")
	s.Require().NotNil(p.Initiative)
	s.Equal(15, *p.Initiative) // face 13 + agility 2

	s.roller.SetRolls([]int{13})
	_, err = s.svc.RollInitiative(s.ctx, "user-a", "combat-1", "char-b")
	s.True(jherr.IsPermissionDenied(err))
}

func (s *ServiceTestSuite) TestRollInitiative_GMFillsEmptySlotsOnly() {
	s.startCombat()

	s.roller.SetRolls([]int{7})
	session, err := s.svc.RollInitiative(s.ctx, "gm-1", "combat-1", "char-b")
	s.Require().NoError(err)

	p := session.FindParticipant("char-b")
	s.Require().NotNil(p.Initiative)
	s.Equal(8, *p.Initiative) // face 7 + agility 1

	// A submitted roll belongs to the player; the GM cannot overwrite it
	s.roller.SetRolls([]int{20})
	_, err = s.svc.RollInitiative(s.ctx, "gm-1", "combat-1", "char-b")
	s.True(jherr.Is(err, jherr.CodeInvalidArgument))

	// The player may still re-roll their own slot before the round starts
	s.roller.SetRolls([]int{12})
	session, err = s.svc.RollInitiative(s.ctx, "user-b", "combat-1", "char-b")
	s.Require().NoError(err)
	s.Equal(13, *session.FindParticipant("char-b").Initiative)
}

func (s *ServiceTestSuite) TestRollPendingInitiatives() {
	s.startCombat()

	s.roller.SetRolls([]int{13, 7})
	session, err := s.svc.RollPendingInitiatives(s.ctx, "gm-1", "combat-1")
	s.Require().NoError(err)
	s.Empty(session.PendingInitiative())

	_, err = s.svc.RollPendingInitiatives(s.ctx, "user-a", "combat-1")
	s.True(jherr.IsPermissionDenied(err))
}

func (s *ServiceTestSuite) TestLifecycle_RoundAndTurns() {
	s.startCombat()

	// Li Mu 15, Shen Yue 8, Bandit Chief already at 11
	s.roller.SetRolls([]int{13})
	_, err := s.svc.RollInitiative(s.ctx, "user-a", "combat-1", "char-a")
	s.Require().NoError(err)
	s.roller.SetRolls([]int{7})
	_, err = s.svc.RollInitiative(s.ctx, "user-b", "combat-1", "char-b")
	s.Require().NoError(err)

	_, err = s.svc.BeginRound(s.ctx, "user-a", "combat-1")
	s.True(jherr.IsPermissionDenied(err))

	session, err := s.svc.BeginRound(s.ctx, "gm-1", "combat-1")
	s.Require().NoError(err)
	s.Equal(combat.StatusActive, session.Status)
	s.Equal(1, session.Round)
	s.Equal("char-a", session.CurrentParticipant().CharacterID)
	s.Equal("npc-1", session.Participants[1].CharacterID)
	s.Equal("char-b", session.Participants[2].CharacterID)

	// Shen Yue cannot advance Li Mu's turn
	_, err = s.svc.NextTurn(s.ctx, "user-b", "combat-1")
	s.True(jherr.IsPermissionDenied(err))

	// The acting player can
	session, err = s.svc.NextTurn(s.ctx, "user-a", "combat-1")
	s.Require().NoError(err)
	s.Equal("npc-1", session.CurrentParticipant().CharacterID)

	// The GM always can; wrapping past the last slot bumps the round
	session, err = s.svc.NextTurn(s.ctx, "gm-1", "combat-1")
	s.Require().NoError(err)
	session, err = s.svc.NextTurn(s.ctx, "gm-1", "combat-1")
	s.Require().NoError(err)
	s.Equal("char-a", session.CurrentParticipant().CharacterID)
	s.Equal(2, session.Round)
}

func (s *ServiceTestSuite) TestNextTurn_BeforeRoundStarts() {
	s.startCombat()

	_, err := s.svc.NextTurn(s.ctx, "gm-1", "combat-1")
	s.True(jherr.Is(err, jherr.CodeInvalidArgument))
}

func (s *ServiceTestSuite) TestRecordAttack_UsesWeaponBonus() {
	s.startCombat()

	// Face 14 + agility 2 from the sword's key attribute
	s.roller.SetRolls([]int{14})
	session, err := s.svc.RecordAttack(s.ctx, "user-a", "combat-1", "char-a", dice.ModeNormal)
	s.Require().NoError(err)

	s.Require().NotNil(session.LastRoll)
	s.Equal("attack", session.LastRoll.Kind)
	s.Equal("Li Mu", session.LastRoll.ActorName)
	s.Equal(16, session.LastRoll.Total)
	s.Contains(session.LastRoll.Text, "Taiyi Sword")
}

func (s *ServiceTestSuite) TestRecordAttack_PermissionAndBroadcast() {
	s.startCombat()

	_, err := s.svc.RecordAttack(s.ctx, "user-b", "combat-1", "char-a", dice.ModeNormal)
	s.True(jherr.IsPermissionDenied(err))

	// Store notification carries the logged roll
	updates, unsubscribe, err := s.repo.Subscribe(s.ctx, "combat-1")
	s.Require().NoError(err)
	defer unsubscribe()

	s.roller.SetRolls([]int{14})
	_, err = s.svc.RecordAttack(s.ctx, "user-a", "combat-1", "char-a", dice.ModeNormal)
	s.Require().NoError(err)

	got := <-updates
	s.Require().NotNil(got.LastRoll)
	s.Equal("attack", got.LastRoll.Kind)
}

func (s *ServiceTestSuite) TestRecordDamage_CritDoublesDice() {
	s.startCombat()

	// 1d8+1 crits to 2d8, plus agility 2, no proficiency
	s.roller.SetRolls([]int{5, 6})
	session, err := s.svc.RecordDamage(s.ctx, "user-a", "combat-1", "char-a", true)
	s.Require().NoError(err)

	s.Require().NotNil(session.LastRoll)
	s.Equal("damage", session.LastRoll.Kind)
	s.Equal(14, session.LastRoll.Total) // 5+6 dice, +1 formula, +2 attribute
}

func (s *ServiceTestSuite) TestRecordDamage_HeavyWeaponCritTriplesDice() {
	s.startCombat()

	char, err := s.characterRepo.Get(s.ctx, "char-a")
	s.Require().NoError(err)
	char.Inventory.EquippedWeapon = &character.Weapon{
		Name:          "Guandao",
		Category:      "pesada",
		DamageFormula: "2d6",
		KeyAttribute:  shared.AttributeVigor,
	}
	s.Require().NoError(s.characterRepo.Update(s.ctx, char))

	// 2d6 crits to 6d6 on a heavy weapon, plus vigor 2
	s.roller.SetRolls([]int{4, 1, 3, 2, 6, 5})
	session, err := s.svc.RecordDamage(s.ctx, "user-a", "combat-1", "char-a", true)
	s.Require().NoError(err)

	s.Require().NotNil(session.LastRoll)
	s.Len(session.LastRoll.Rolls, 6)
	s.Equal(23, session.LastRoll.Total)
}

func (s *ServiceTestSuite) TestRecordDamage_AdHocNPCFallsBackToUnarmed() {
	s.startCombat()

	s.roller.SetRolls([]int{3})
	session, err := s.svc.RecordDamage(s.ctx, "gm-1", "combat-1", "npc-1", false)
	s.Require().NoError(err)

	s.Equal(3, session.LastRoll.Total) // bare 1d4
	s.Contains(session.LastRoll.Text, "bare hands")
}

func (s *ServiceTestSuite) TestRecordSkillCheck() {
	s.startCombat()

	s.roller.SetRolls([]int{11})
	session, err := s.svc.RecordSkillCheck(s.ctx, "user-a", "combat-1", "char-a", shared.AttributeVigor, dice.ModeNormal)
	s.Require().NoError(err)

	s.Equal("check", session.LastRoll.Kind)
	s.Equal(13, session.LastRoll.Total) // face 11 + vigor 2

	_, err = s.svc.RecordSkillCheck(s.ctx, "user-a", "combat-1", "char-a", "luck", dice.ModeNormal)
	s.True(jherr.Is(err, jherr.CodeInvalidArgument))
}

func (s *ServiceTestSuite) TestEndCombat() {
	s.startCombat()

	err := s.svc.EndCombat(s.ctx, "user-a", "combat-1")
	s.True(jherr.IsPermissionDenied(err))

	s.Require().NoError(s.svc.EndCombat(s.ctx, "gm-1", "combat-1"))

	_, err = s.repo.Get(s.ctx, "combat-1")
	s.True(jherr.IsNotFound(err))

	for _, id := range []string{"char-a", "char-b"} {
		char, err := s.characterRepo.Get(s.ctx, id)
		s.Require().NoError(err)
		s.Empty(char.ActiveCombatID)
	}
}
