package combat

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
	combatrepo "github.com/jianghu-tales/jianghu-bot/internal/repositories/combats"
)

// BroadcastHandler consumes combat log entries after deduplication
type BroadcastHandler func(*combat.Broadcast)

// Watcher follows one combat session over two delivery paths: store
// notifications for latency and a poll ticker as the safety net. Delivery
// upstream is at-least-once, so entries are deduplicated by timestamp before
// the handler sees them.
type Watcher struct {
	repo      combatrepo.Repository
	sessionID string
	interval  time.Duration
	handler   BroadcastHandler

	mu       sync.Mutex
	lastSeen int64
}

// WatcherConfig holds the dependencies for a session watcher
type WatcherConfig struct {
	Repository combatrepo.Repository
	SessionID  string
	Handler    BroadcastHandler

	// PollInterval defaults to two seconds
	PollInterval time.Duration
}

// NewWatcher creates a watcher for one combat session
func NewWatcher(cfg *WatcherConfig) *Watcher {
	if cfg == nil {
		panic("WatcherConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("Repository cannot be nil")
	}
	if cfg.SessionID == "" {
		panic("SessionID cannot be empty")
	}
	if cfg.Handler == nil {
		panic("Handler cannot be nil")
	}

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	return &Watcher{
		repo:      cfg.Repository,
		sessionID: cfg.SessionID,
		interval:  interval,
		handler:   cfg.Handler,
	}
}

// Run blocks until the context is cancelled or the session is deleted
func (w *Watcher) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates, unsubscribe, err := w.repo.Subscribe(ctx, w.sessionID)
	if err != nil {
		return err
	}
	defer unsubscribe()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case session, ok := <-updates:
				if !ok {
					return nil
				}
				w.deliver(session)
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				session, err := w.repo.Get(ctx, w.sessionID)
				if jherr.IsNotFound(err) {
					// Combat ended, stop the subscribe loop too
					cancel()
					return nil
				}
				if err != nil {
					log.Printf("combat watcher: poll failed for %s: %v", w.sessionID, err)
					continue
				}
				w.deliver(session)
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// deliver hands a session's latest log entry to the handler unless it has
// been seen already
func (w *Watcher) deliver(session *combat.Session) {
	if session == nil || session.LastRoll == nil {
		return
	}

	w.mu.Lock()
	if session.LastRoll.Timestamp <= w.lastSeen {
		w.mu.Unlock()
		return
	}
	w.lastSeen = session.LastRoll.Timestamp
	entry := *session.LastRoll
	w.mu.Unlock()

	w.handler(&entry)
}
