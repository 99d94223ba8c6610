package discord

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	"github.com/jianghu-tales/jianghu-bot/internal/repositories/combats"
	combatsvc "github.com/jianghu-tales/jianghu-bot/internal/services/combat"
)

// CombatLogUpdater mirrors combat rolls into the channel a combat was
// started in. One watcher runs per combat; it follows the session over
// pub/sub with a poll fallback and stops on its own when the combat ends.
type CombatLogUpdater struct {
	session      *discordgo.Session
	repo         combats.Repository
	pollInterval time.Duration

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// CombatLogUpdaterConfig holds configuration for the combat log updater
type CombatLogUpdaterConfig struct {
	Session      *discordgo.Session
	Repository   combats.Repository
	PollInterval time.Duration
}

// NewCombatLogUpdater creates a new combat log updater
func NewCombatLogUpdater(cfg *CombatLogUpdaterConfig) *CombatLogUpdater {
	if cfg == nil {
		panic("CombatLogUpdaterConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("Repository cannot be nil")
	}

	return &CombatLogUpdater{
		session:      cfg.Session,
		repo:         cfg.Repository,
		pollInterval: cfg.PollInterval,
		cancels:      map[string]context.CancelFunc{},
	}
}

// Watch starts mirroring a combat's rolls into a channel. Watching an
// already-watched combat is a no-op.
func (u *CombatLogUpdater) Watch(sessionID, channelID string) {
	u.mu.Lock()
	if _, running := u.cancels[sessionID]; running {
		u.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	u.cancels[sessionID] = cancel
	u.mu.Unlock()

	watcher := combatsvc.NewWatcher(&combatsvc.WatcherConfig{
		Repository:   u.repo,
		SessionID:    sessionID,
		PollInterval: u.pollInterval,
		Handler: func(entry *combat.Broadcast) {
			u.post(channelID, entry)
		},
	})

	go func() {
		defer func() {
			u.mu.Lock()
			delete(u.cancels, sessionID)
			u.mu.Unlock()
			cancel()
		}()
		if err := watcher.Run(ctx); err != nil {
			log.Printf("combat log updater: watcher for %s stopped: %v", sessionID, err)
		}
	}()
}

// StopAll cancels every running watcher, for shutdown
func (u *CombatLogUpdater) StopAll() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for id, cancel := range u.cancels {
		cancel()
		delete(u.cancels, id)
	}
}

func (u *CombatLogUpdater) post(channelID string, entry *combat.Broadcast) {
	if u.session == nil || channelID == "" {
		return
	}

	var rolls []string
	for _, r := range entry.Rolls {
		rolls = append(rolls, strconv.Itoa(r))
	}
	embed := &discordgo.MessageEmbed{
		Description: "🎲 " + entry.Text,
		Color:       0xf1c40f,
	}
	if len(rolls) > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "dice: " + strings.Join(rolls, ", "),
		}
	}

	if _, err := u.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		// Keep watching; a single failed message is not worth tearing down
		// the combat log
		log.Printf("combat log updater: failed to post to %s: %v", channelID, err)
	}
}
