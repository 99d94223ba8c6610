package characters

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/character"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
)

var fixedNow = time.Date(2024, 11, 3, 9, 30, 0, 0, time.UTC)

type RedisRepoTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client: client,
		Now:    func() time.Time { return fixedNow },
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testCharacter() *character.Character {
	return &character.Character{
		ID:      "char-1",
		OwnerID: "user-1",
		Name:    "Li Mu",
		ClanKey: "wudang",
		Attributes: map[shared.Attribute]int{
			shared.AttributeVigor:         3,
			shared.AttributeAgility:       2,
			shared.AttributeDiscipline:    4,
			shared.AttributeComprehension: 1,
			shared.AttributePresence:      0,
		},
	}
}

// storedJSON marshals the character the way the repository writes it, with
// the repository's clock stamped on
func (s *RedisRepoTestSuite) storedJSON(char *character.Character) []byte {
	data := characterData{Character: *char}
	data.CreatedAt = fixedNow
	data.UpdatedAt = fixedNow

	jsonData, err := json.Marshal(data)
	s.Require().NoError(err)
	return jsonData
}

func (s *RedisRepoTestSuite) TestCreate() {
	char := s.testCharacter()

	s.mock.ExpectExists("character:char-1").SetVal(0)
	s.mock.ExpectSet("character:char-1", s.storedJSON(char), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:user-1:characters", "char-1").SetVal(1)

	s.NoError(s.repo.Create(context.Background(), char))
}

func (s *RedisRepoTestSuite) TestCreate_InCombatAddsIndex() {
	char := s.testCharacter()
	char.ActiveCombatID = "combat-1"

	s.mock.ExpectExists("character:char-1").SetVal(0)
	s.mock.ExpectSet("character:char-1", s.storedJSON(char), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:user-1:characters", "char-1").SetVal(1)
	s.mock.ExpectSAdd("combat:combat-1:characters", "char-1").SetVal(1)

	s.NoError(s.repo.Create(context.Background(), char))
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	char := s.testCharacter()

	s.mock.ExpectExists("character:char-1").SetVal(1)

	err := s.repo.Create(context.Background(), char)
	s.True(jherr.Is(err, jherr.CodeAlreadyExists))
}

func (s *RedisRepoTestSuite) TestCreate_Validation() {
	s.Error(s.repo.Create(context.Background(), nil))
	s.Error(s.repo.Create(context.Background(), &character.Character{OwnerID: "user-1"}))
	s.Error(s.repo.Create(context.Background(), &character.Character{ID: "char-1"}))
}

func (s *RedisRepoTestSuite) TestGet() {
	char := s.testCharacter()

	s.mock.ExpectGet("character:char-1").SetVal(string(s.storedJSON(char)))

	got, err := s.repo.Get(context.Background(), "char-1")
	s.Require().NoError(err)
	s.Equal("char-1", got.ID)
	s.Equal("Li Mu", got.Name)
	s.Equal(4, got.Attribute(shared.AttributeDiscipline))
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("character:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.True(jherr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_ResolvesLegacyProficiencyKey() {
	// Older sheets wrote the proficient attribute under a camelCase key
	raw := `{"id":"char-1","owner_id":"user-1","name":"Li Mu","clan_key":"wudang",` +
		`"attributes":{"agility":2},"proficientAttribute":"agility",` +
		`"stats":{"current_hp":0,"max_hp":0,"current_chi":0,"max_chi":0,"armor_class":0},` +
		`"inventory":{"wallet":{"gold":0,"silver":0,"copper":0}},"techniques":null,` +
		`"created_at":"2024-11-03T09:30:00Z","updated_at":"2024-11-03T09:30:00Z"}`

	s.mock.ExpectGet("character:char-1").SetVal(raw)

	got, err := s.repo.Get(context.Background(), "char-1")
	s.Require().NoError(err)
	s.Equal(shared.AttributeAgility, got.ProficientAttribute)
}

func (s *RedisRepoTestSuite) TestGetByOwner() {
	char := s.testCharacter()

	s.mock.ExpectSMembers("owner:user-1:characters").SetVal([]string{"char-1", "char-gone"})
	s.mock.ExpectGet("character:char-1").SetVal(string(s.storedJSON(char)))
	s.mock.ExpectGet("character:char-gone").RedisNil()

	got, err := s.repo.GetByOwner(context.Background(), "user-1")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("char-1", got[0].ID)
}

func (s *RedisRepoTestSuite) TestUpdate_PreservesCreatedAt() {
	char := s.testCharacter()

	existing := characterData{Character: *char}
	existing.CreatedAt = fixedNow.Add(-48 * time.Hour)
	existing.UpdatedAt = existing.CreatedAt
	existingJSON, err := json.Marshal(existing)
	s.Require().NoError(err)

	char.Name = "Li Mu the Unbending"
	updated := characterData{Character: *char}
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = fixedNow
	updatedJSON, err := json.Marshal(updated)
	s.Require().NoError(err)

	s.mock.ExpectGet("character:char-1").SetVal(string(existingJSON))
	s.mock.ExpectSet("character:char-1", updatedJSON, 0).SetVal("OK")

	s.NoError(s.repo.Update(context.Background(), char))
}

func (s *RedisRepoTestSuite) TestUpdate_ReindexesCombat() {
	char := s.testCharacter()
	char.ActiveCombatID = "combat-old"

	existing := characterData{Character: *char}
	existing.CreatedAt = fixedNow
	existing.UpdatedAt = fixedNow
	existingJSON, err := json.Marshal(existing)
	s.Require().NoError(err)

	char.ActiveCombatID = "combat-new"
	updated := characterData{Character: *char}
	updated.CreatedAt = fixedNow
	updated.UpdatedAt = fixedNow
	updatedJSON, err := json.Marshal(updated)
	s.Require().NoError(err)

	s.mock.ExpectGet("character:char-1").SetVal(string(existingJSON))
	s.mock.ExpectSet("character:char-1", updatedJSON, 0).SetVal("OK")
	s.mock.ExpectSRem("combat:combat-old:characters", "char-1").SetVal(1)
	s.mock.ExpectSAdd("combat:combat-new:characters", "char-1").SetVal(1)

	s.NoError(s.repo.Update(context.Background(), char))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	char := s.testCharacter()

	s.mock.ExpectGet("character:char-1").RedisNil()

	err := s.repo.Update(context.Background(), char)
	s.True(jherr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	char := s.testCharacter()
	char.ActiveCombatID = "combat-1"

	s.mock.ExpectGet("character:char-1").SetVal(string(s.storedJSON(char)))
	s.mock.ExpectDel("character:char-1").SetVal(1)
	s.mock.ExpectSRem("owner:user-1:characters", "char-1").SetVal(1)
	s.mock.ExpectSRem("combat:combat-1:characters", "char-1").SetVal(1)

	s.NoError(s.repo.Delete(context.Background(), "char-1"))
}
