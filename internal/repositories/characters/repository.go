package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcharrepo -source=repository.go

import (
	"context"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/character"
)

// Repository defines the interface for character storage operations
type Repository interface {
	// Create stores a new character
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// GetByOwner retrieves all characters belonging to a user
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)

	// GetByCombat retrieves all characters referencing a combat session
	GetByCombat(ctx context.Context, combatID string) ([]*character.Character, error)

	// Update modifies an existing character
	Update(ctx context.Context, char *character.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}
