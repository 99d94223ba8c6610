package characters

import (
	"context"
	"sync"
	"time"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/character"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
)

type inMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory character repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		characters: make(map[string]*character.Character),
	}
}

// Create stores a new character
func (r *inMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return jherr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return jherr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; exists {
		return jherr.AlreadyExistsf("character with ID '%s' already exists", char.ID)
	}

	char.CreatedAt = time.Now().UTC()
	char.UpdatedAt = char.CreatedAt
	copied := *char
	r.characters[char.ID] = &copied
	return nil
}

// Get retrieves a character by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, jherr.NotFoundf("character with ID '%s' not found", id)
	}

	copied := *char
	return &copied, nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *inMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*character.Character
	for _, char := range r.characters {
		if char.OwnerID == ownerID {
			copied := *char
			out = append(out, &copied)
		}
	}
	return out, nil
}

// GetByCombat retrieves all characters referencing a combat session
func (r *inMemoryRepository) GetByCombat(ctx context.Context, combatID string) ([]*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*character.Character
	for _, char := range r.characters {
		if char.ActiveCombatID != "" && char.ActiveCombatID == combatID {
			copied := *char
			out = append(out, &copied)
		}
	}
	return out, nil
}

// Update modifies an existing character
func (r *inMemoryRepository) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return jherr.InvalidArgument("character cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.characters[char.ID]
	if !exists {
		return jherr.NotFoundf("character with ID '%s' not found", char.ID)
	}

	char.CreatedAt = existing.CreatedAt
	char.UpdatedAt = time.Now().UTC()
	copied := *char
	r.characters[char.ID] = &copied
	return nil
}

// Delete removes a character
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return jherr.NotFoundf("character with ID '%s' not found", id)
	}

	delete(r.characters, id)
	return nil
}
