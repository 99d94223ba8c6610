package combats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
)

func newTestSession(id, gmID string) *combat.Session {
	session := combat.NewSession(id, gmID, "Duel at "+id)
	session.AddParticipant(&combat.Participant{
		CharacterID: "char-a",
		OwnerID:     "user-a",
		Name:        "Li Mu",
	})
	return session
}

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSession("combat-1", "gm-1")))

	got, err := repo.Get(ctx, "combat-1")
	require.NoError(t, err)
	assert.Equal(t, "gm-1", got.GMID)
	assert.Equal(t, combat.StatusPendingInitiative, got.Status)

	// Copies must not alias the stored session
	got.Name = "Mutated"
	again, err := repo.Get(ctx, "combat-1")
	require.NoError(t, err)
	assert.Equal(t, "Duel at combat-1", again.Name)
}

func TestInMemoryRepository_GetNotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.True(t, jherr.IsNotFound(err))
}

func TestInMemoryRepository_GetByGM(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSession("combat-1", "gm-1")))

	got, err := repo.GetByGM(ctx, "gm-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "combat-1", got.ID)

	none, err := repo.GetByGM(ctx, "gm-2")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestInMemoryRepository_DeleteClearsGMIndex(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSession("combat-1", "gm-1")))
	require.NoError(t, repo.Delete(ctx, "combat-1"))

	_, err := repo.Get(ctx, "combat-1")
	assert.True(t, jherr.IsNotFound(err))

	none, err := repo.GetByGM(ctx, "gm-1")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestInMemoryRepository_SubscribeReceivesUpdates(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	session := newTestSession("combat-1", "gm-1")
	require.NoError(t, repo.Create(ctx, session))

	updates, unsubscribe, err := repo.Subscribe(ctx, "combat-1")
	require.NoError(t, err)
	defer unsubscribe()

	session.SubmitInitiative("char-a", 17)
	require.NoError(t, repo.Update(ctx, session))

	select {
	case got := <-updates:
		require.NotNil(t, got)
		p := got.FindParticipant("char-a")
		require.NotNil(t, p)
		require.NotNil(t, p.Initiative)
		assert.Equal(t, 17, *p.Initiative)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
	}
}

func TestInMemoryRepository_UnsubscribeClosesChannel(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSession("combat-1", "gm-1")))

	updates, unsubscribe, err := repo.Subscribe(ctx, "combat-1")
	require.NoError(t, err)
	unsubscribe()

	_, open := <-updates
	assert.False(t, open)

	// A second unsubscribe is a no-op
	unsubscribe()
}

func TestInMemoryRepository_UpdateNotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	err := repo.Update(context.Background(), newTestSession("missing", "gm-1"))
	assert.True(t, jherr.IsNotFound(err))
}
