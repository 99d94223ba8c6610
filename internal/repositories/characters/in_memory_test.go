package characters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/character"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
)

func newTestCharacter(id, ownerID string) *character.Character {
	return &character.Character{
		ID:      id,
		OwnerID: ownerID,
		Name:    "Test " + id,
		ClanKey: "shaolin",
		Attributes: map[shared.Attribute]int{
			shared.AttributeVigor:   2,
			shared.AttributeAgility: 1,
		},
	}
}

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	char := newTestCharacter("char-1", "user-1")
	require.NoError(t, repo.Create(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "char-1", got.ID)
	assert.False(t, got.CreatedAt.IsZero())

	// Mutating the returned copy must not touch the stored record
	got.Name = "Mutated"
	again, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Test char-1", again.Name)
}

func TestInMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestCharacter("char-1", "user-1")))
	err := repo.Create(ctx, newTestCharacter("char-1", "user-1"))
	assert.True(t, jherr.Is(err, jherr.CodeAlreadyExists))
}

func TestInMemoryRepository_GetNotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.True(t, jherr.IsNotFound(err))
}

func TestInMemoryRepository_GetByOwner(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestCharacter("char-1", "user-1")))
	require.NoError(t, repo.Create(ctx, newTestCharacter("char-2", "user-1")))
	require.NoError(t, repo.Create(ctx, newTestCharacter("char-3", "user-2")))

	chars, err := repo.GetByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, chars, 2)
}

func TestInMemoryRepository_GetByCombat(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	inCombat := newTestCharacter("char-1", "user-1")
	inCombat.ActiveCombatID = "combat-1"
	require.NoError(t, repo.Create(ctx, inCombat))
	require.NoError(t, repo.Create(ctx, newTestCharacter("char-2", "user-2")))

	chars, err := repo.GetByCombat(ctx, "combat-1")
	require.NoError(t, err)
	require.Len(t, chars, 1)
	assert.Equal(t, "char-1", chars[0].ID)
}

func TestInMemoryRepository_Update(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	char := newTestCharacter("char-1", "user-1")
	require.NoError(t, repo.Create(ctx, char))

	char.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestInMemoryRepository_UpdateNotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	err := repo.Update(context.Background(), newTestCharacter("missing", "user-1"))
	assert.True(t, jherr.IsNotFound(err))
}

func TestInMemoryRepository_Delete(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestCharacter("char-1", "user-1")))
	require.NoError(t, repo.Delete(ctx, "char-1"))

	_, err := repo.Get(ctx, "char-1")
	assert.True(t, jherr.IsNotFound(err))
}
