package combats

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcombatrepo -source=repository.go

import (
	"context"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
)

// Repository defines the interface for combat-session storage. Updates are
// broadcast to subscribers; delivery is at-least-once and consumers
// deduplicate by the session's LastRoll timestamp.
type Repository interface {
	// Create stores a new combat session
	Create(ctx context.Context, session *combat.Session) error

	// Get retrieves a combat session by ID
	Get(ctx context.Context, id string) (*combat.Session, error)

	// GetByGM retrieves the session owned by a GM, nil when none exists
	GetByGM(ctx context.Context, gmID string) (*combat.Session, error)

	// Update modifies an existing session and notifies subscribers
	Update(ctx context.Context, session *combat.Session) error

	// Delete removes a session
	Delete(ctx context.Context, id string) error

	// Subscribe returns a channel of change notifications for one session.
	// The returned func unsubscribes; the channel closes afterwards.
	Subscribe(ctx context.Context, id string) (<-chan *combat.Session, func(), error)
}
