package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/character"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
)

// characterData is the serialized form of a character in Redis. It is the one
// seam where legacy key aliases from older sheets are tolerated; everything
// above the repository sees only the canonical schema.
type characterData struct {
	character.Character

	// LegacyProficient mirrors the camelCase key written by sheets that
	// predate the schema cleanup
	LegacyProficient shared.Attribute `json:"proficientAttribute,omitempty"`
}

// redisRepo implements Repository using Redis
type redisRepo struct {
	client redis.UniversalClient
	now    func() time.Time
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// Now overrides the clock, for tests
	Now func() time.Time
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &redisRepo{
		client: cfg.Client,
		now:    now,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func (r *redisRepo) ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

func (r *redisRepo) combatKey(combatID string) string {
	return fmt.Sprintf("combat:%s:characters", combatID)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return jherr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return jherr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return jherr.InvalidArgument("character owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return jherr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	data := characterData{Character: *char}
	data.CreatedAt = r.now().UTC()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), jsonData, 0)
	pipe.SAdd(ctx, r.ownerKey(char.OwnerID), char.ID)
	if char.ActiveCombatID != "" {
		pipe.SAdd(ctx, r.combatKey(char.ActiveCombatID), char.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, jherr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, jherr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data characterData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", unmarshalErr)
	}

	return fromData(&data), nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, jherr.InvalidArgument("owner ID is required")
	}
	return r.getBySet(ctx, r.ownerKey(ownerID))
}

// GetByCombat retrieves all characters referencing a combat session
func (r *redisRepo) GetByCombat(ctx context.Context, combatID string) ([]*character.Character, error) {
	if combatID == "" {
		return nil, jherr.InvalidArgument("combat ID is required")
	}
	return r.getBySet(ctx, r.combatKey(combatID))
}

func (r *redisRepo) getBySet(ctx context.Context, setKey string) ([]*character.Character, error) {
	ids, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	chars := make([]*character.Character, 0, len(ids))
	for _, id := range ids {
		char, err := r.Get(ctx, id)
		if err != nil {
			// Skip characters that can't be loaded
			continue
		}
		chars = append(chars, char)
	}

	return chars, nil
}

// Update updates an existing character
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return jherr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return jherr.InvalidArgument("character ID is required")
	}

	existingJSON, err := r.client.Get(ctx, r.key(char.ID)).Result()
	if err == redis.Nil {
		return jherr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get existing character: %w", err)
	}

	var existing characterData
	if unmarshalErr := json.Unmarshal([]byte(existingJSON), &existing); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal existing character: %w", unmarshalErr)
	}

	data := characterData{Character: *char}
	data.CreatedAt = existing.CreatedAt // Preserve creation time
	data.UpdatedAt = r.now().UTC()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), jsonData, 0)

	if existing.OwnerID != char.OwnerID {
		pipe.SRem(ctx, r.ownerKey(existing.OwnerID), char.ID)
		pipe.SAdd(ctx, r.ownerKey(char.OwnerID), char.ID)
	}
	if existing.ActiveCombatID != char.ActiveCombatID {
		if existing.ActiveCombatID != "" {
			pipe.SRem(ctx, r.combatKey(existing.ActiveCombatID), char.ID)
		}
		if char.ActiveCombatID != "" {
			pipe.SAdd(ctx, r.combatKey(char.ActiveCombatID), char.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return jherr.InvalidArgument("character ID is required")
	}

	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerKey(char.OwnerID), id)
	if char.ActiveCombatID != "" {
		pipe.SRem(ctx, r.combatKey(char.ActiveCombatID), id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

// fromData converts stored data to the entity, resolving legacy aliases
func fromData(data *characterData) *character.Character {
	char := data.Character
	if char.ProficientAttribute == "" && data.LegacyProficient != "" {
		char.ProficientAttribute = data.LegacyProficient
	}
	return &char
}
