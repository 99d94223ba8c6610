//go:build integration

package combats_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	"github.com/jianghu-tales/jianghu-bot/internal/repositories/combats"
	"github.com/jianghu-tales/jianghu-bot/internal/testutils"
)

func TestRedisRepository_Integration_Lifecycle(t *testing.T) {
	client := testutils.CreateTestRedisClient(t)
	repo := combats.NewRedisRepository(client)
	ctx := context.Background()

	char := testutils.CreateTestCharacter("char-1", "user-1", "Li Mu")
	session := testutils.CreateTestSession("combat-1", "gm-1", "Ferry Ambush", char)

	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.Get(ctx, "combat-1")
	require.NoError(t, err)
	assert.Equal(t, combat.StatusPendingInitiative, got.Status)
	require.Len(t, got.Participants, 1)

	byGM, err := repo.GetByGM(ctx, "gm-1")
	require.NoError(t, err)
	require.NotNil(t, byGM)
	assert.Equal(t, "combat-1", byGM.ID)

	require.NoError(t, repo.Delete(ctx, "combat-1"))

	byGM, err = repo.GetByGM(ctx, "gm-1")
	require.NoError(t, err)
	assert.Nil(t, byGM)
}

func TestRedisRepository_Integration_SubscribeSeesUpdates(t *testing.T) {
	client := testutils.CreateTestRedisClient(t)
	repo := combats.NewRedisRepository(client)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session := testutils.CreateTestSession("combat-sub", "gm-1", "Night Raid",
		testutils.CreateTestCharacter("char-1", "user-1", "Li Mu"))
	require.NoError(t, repo.Create(ctx, session))

	updates, unsubscribe, err := repo.Subscribe(ctx, "combat-sub")
	require.NoError(t, err)
	defer unsubscribe()

	session.SubmitInitiative("char-1", 14)
	require.NoError(t, repo.Update(ctx, session))

	select {
	case got := <-updates:
		require.NotNil(t, got)
		p := got.FindParticipant("char-1")
		require.NotNil(t, p)
		require.NotNil(t, p.Initiative)
		assert.Equal(t, 14, *p.Initiative)
	case <-ctx.Done():
		t.Fatal("timed out waiting for pub/sub update")
	}
}
