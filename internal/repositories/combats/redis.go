package combats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
)

// redisRepo implements Repository using Redis. Sessions are JSON documents;
// every write is re-published on a per-session pub/sub channel so that other
// clients at the table see the change without polling.
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed combat-session repository
func NewRedisRepository(client redis.UniversalClient) Repository {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("combat:%s", id)
}

func (r *redisRepo) gmKey(gmID string) string {
	return fmt.Sprintf("gm:%s:combat", gmID)
}

func (r *redisRepo) channel(id string) string {
	return fmt.Sprintf("combat:updates:%s", id)
}

// Create stores a new combat session
func (r *redisRepo) Create(ctx context.Context, session *combat.Session) error {
	if session == nil {
		return jherr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return jherr.InvalidArgument("session ID is required")
	}
	if session.GMID == "" {
		return jherr.InvalidArgument("session GM ID is required")
	}

	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(session.ID), jsonData, 0)
	pipe.Set(ctx, r.gmKey(session.GMID), session.ID, 0)
	pipe.Publish(ctx, r.channel(session.ID), jsonData)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Get retrieves a combat session by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*combat.Session, error) {
	if id == "" {
		return nil, jherr.InvalidArgument("session ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, jherr.NotFoundf("combat session '%s' not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session combat.Session
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &session); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", unmarshalErr)
	}

	return &session, nil
}

// GetByGM retrieves the session owned by a GM, nil when none exists
func (r *redisRepo) GetByGM(ctx context.Context, gmID string) (*combat.Session, error) {
	if gmID == "" {
		return nil, jherr.InvalidArgument("GM ID is required")
	}

	id, err := r.client.Get(ctx, r.gmKey(gmID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve GM session: %w", err)
	}

	session, err := r.Get(ctx, id)
	if jherr.IsNotFound(err) {
		// Stale index; the session itself is gone
		return nil, nil
	}
	return session, err
}

// Update modifies an existing session and notifies subscribers
func (r *redisRepo) Update(ctx context.Context, session *combat.Session) error {
	if session == nil {
		return jherr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return jherr.InvalidArgument("session ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(session.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check session existence: %w", err)
	}
	if exists == 0 {
		return jherr.NotFoundf("combat session '%s' not found", session.ID)
	}

	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(session.ID), jsonData, 0)
	pipe.Publish(ctx, r.channel(session.ID), jsonData)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}

// Delete removes a session
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return jherr.InvalidArgument("session ID is required")
	}

	session, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.Del(ctx, r.gmKey(session.GMID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Subscribe returns a channel of change notifications for one session
func (r *redisRepo) Subscribe(ctx context.Context, id string) (<-chan *combat.Session, func(), error) {
	if id == "" {
		return nil, nil, jherr.InvalidArgument("session ID is required")
	}

	pubsub := r.client.Subscribe(ctx, r.channel(id))

	// Confirm the subscription before handing out the channel
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, jherr.Wrap(err, "failed to subscribe to session updates")
	}

	out := make(chan *combat.Session, 8)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var session combat.Session
			if err := json.Unmarshal([]byte(msg.Payload), &session); err != nil {
				log.Printf("combats: dropping malformed update for %s: %v", id, err)
				continue
			}
			select {
			case out <- &session:
			case <-ctx.Done():
				return
			}
		}
	}()

	unsubscribe := func() {
		_ = pubsub.Close()
	}
	return out, unsubscribe, nil
}
