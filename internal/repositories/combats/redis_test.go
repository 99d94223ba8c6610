package combats

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.repo = NewRedisRepository(client)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testSession() (*combat.Session, []byte) {
	session := combat.NewSession("combat-1", "gm-1", "Ambush at the Ferry")
	session.AddParticipant(&combat.Participant{CharacterID: "char-a", OwnerID: "user-a", Name: "Li Mu"})

	data, err := json.Marshal(session)
	s.Require().NoError(err)
	return session, data
}

func (s *RedisRepoTestSuite) TestCreate_StoresIndexesAndPublishes() {
	session, data := s.testSession()

	s.mock.ExpectSet("combat:combat-1", data, 0).SetVal("OK")
	s.mock.ExpectSet("gm:gm-1:combat", "combat-1", 0).SetVal("OK")
	s.mock.ExpectPublish("combat:updates:combat-1", data).SetVal(1)

	s.NoError(s.repo.Create(context.Background(), session))
}

func (s *RedisRepoTestSuite) TestCreate_Validation() {
	s.Error(s.repo.Create(context.Background(), nil))
	s.Error(s.repo.Create(context.Background(), &combat.Session{GMID: "gm-1"}))
	s.Error(s.repo.Create(context.Background(), &combat.Session{ID: "combat-1"}))
}

func (s *RedisRepoTestSuite) TestGet() {
	session, data := s.testSession()

	s.mock.ExpectGet("combat:combat-1").SetVal(string(data))

	got, err := s.repo.Get(context.Background(), "combat-1")
	s.Require().NoError(err)
	s.Equal(session.ID, got.ID)
	s.Equal(session.GMID, got.GMID)
	s.Len(got.Participants, 1)
	s.Equal("Li Mu", got.Participants[0].Name)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("combat:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.True(jherr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetByGM() {
	_, data := s.testSession()

	s.mock.ExpectGet("gm:gm-1:combat").SetVal("combat-1")
	s.mock.ExpectGet("combat:combat-1").SetVal(string(data))

	got, err := s.repo.GetByGM(context.Background(), "gm-1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("combat-1", got.ID)
}

func (s *RedisRepoTestSuite) TestGetByGM_NoSession() {
	s.mock.ExpectGet("gm:gm-2:combat").RedisNil()

	got, err := s.repo.GetByGM(context.Background(), "gm-2")
	s.NoError(err)
	s.Nil(got)
}

func (s *RedisRepoTestSuite) TestGetByGM_StaleIndex() {
	s.mock.ExpectGet("gm:gm-1:combat").SetVal("combat-1")
	s.mock.ExpectGet("combat:combat-1").RedisNil()

	got, err := s.repo.GetByGM(context.Background(), "gm-1")
	s.NoError(err)
	s.Nil(got)
}

func (s *RedisRepoTestSuite) TestUpdate_PublishesChange() {
	session, _ := s.testSession()
	session.SubmitInitiative("char-a", 15)
	data, err := json.Marshal(session)
	s.Require().NoError(err)

	s.mock.ExpectExists("combat:combat-1").SetVal(1)
	s.mock.ExpectSet("combat:combat-1", data, 0).SetVal("OK")
	s.mock.ExpectPublish("combat:updates:combat-1", data).SetVal(2)

	s.NoError(s.repo.Update(context.Background(), session))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	session, _ := s.testSession()

	s.mock.ExpectExists("combat:combat-1").SetVal(0)

	err := s.repo.Update(context.Background(), session)
	s.True(jherr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete_RemovesGMIndex() {
	_, data := s.testSession()

	s.mock.ExpectGet("combat:combat-1").SetVal(string(data))
	s.mock.ExpectDel("combat:combat-1").SetVal(1)
	s.mock.ExpectDel("gm:gm-1:combat").SetVal(1)

	s.NoError(s.repo.Delete(context.Background(), "combat-1"))
}
