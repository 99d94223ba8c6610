package combats

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
)

type inMemoryRepository struct {
	mu          sync.RWMutex
	sessions    map[string]*combat.Session
	byGM        map[string]string // gmID -> session ID
	subscribers map[string]map[int]chan *combat.Session
	nextSubID   int
}

// NewInMemoryRepository creates a new in-memory combat-session repository.
// Subscriptions work the same way as the Redis implementation, which makes
// this usable for coordinator and watcher tests.
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		sessions:    make(map[string]*combat.Session),
		byGM:        make(map[string]string),
		subscribers: make(map[string]map[int]chan *combat.Session),
	}
}

// clone deep-copies a session through JSON so callers never share memory
// with the store.
func clone(session *combat.Session) *combat.Session {
	data, err := json.Marshal(session)
	if err != nil {
		return nil
	}
	var copied combat.Session
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil
	}
	return &copied
}

// Create stores a new combat session
func (r *inMemoryRepository) Create(ctx context.Context, session *combat.Session) error {
	if session == nil {
		return jherr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return jherr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	if _, exists := r.sessions[session.ID]; exists {
		r.mu.Unlock()
		return jherr.AlreadyExistsf("combat session '%s' already exists", session.ID)
	}
	r.sessions[session.ID] = clone(session)
	r.byGM[session.GMID] = session.ID
	r.mu.Unlock()

	r.notify(session)
	return nil
}

// Get retrieves a combat session by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*combat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, jherr.NotFoundf("combat session '%s' not found", id)
	}
	return clone(session), nil
}

// GetByGM retrieves the session owned by a GM, nil when none exists
func (r *inMemoryRepository) GetByGM(ctx context.Context, gmID string) (*combat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byGM[gmID]
	if !exists {
		return nil, nil
	}
	session, exists := r.sessions[id]
	if !exists {
		return nil, nil
	}
	return clone(session), nil
}

// Update modifies an existing session and notifies subscribers
func (r *inMemoryRepository) Update(ctx context.Context, session *combat.Session) error {
	if session == nil {
		return jherr.InvalidArgument("session cannot be nil")
	}

	r.mu.Lock()
	if _, exists := r.sessions[session.ID]; !exists {
		r.mu.Unlock()
		return jherr.NotFoundf("combat session '%s' not found", session.ID)
	}
	r.sessions[session.ID] = clone(session)
	r.mu.Unlock()

	r.notify(session)
	return nil
}

// Delete removes a session
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[id]
	if !exists {
		return jherr.NotFoundf("combat session '%s' not found", id)
	}

	delete(r.sessions, id)
	delete(r.byGM, session.GMID)
	return nil
}

// Subscribe returns a channel of change notifications for one session
func (r *inMemoryRepository) Subscribe(ctx context.Context, id string) (<-chan *combat.Session, func(), error) {
	if id == "" {
		return nil, nil, jherr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan *combat.Session, 8)
	subID := r.nextSubID
	r.nextSubID++

	if r.subscribers[id] == nil {
		r.subscribers[id] = make(map[int]chan *combat.Session)
	}
	r.subscribers[id][subID] = ch

	unsubscribe := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if subs, ok := r.subscribers[id]; ok {
			if sub, ok := subs[subID]; ok {
				delete(subs, subID)
				close(sub)
			}
		}
	}
	return ch, unsubscribe, nil
}

func (r *inMemoryRepository) notify(session *combat.Session) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ch := range r.subscribers[session.ID] {
		select {
		case ch <- clone(session):
		default:
			// Slow subscriber; it will catch up on the next poll
		}
	}
}
