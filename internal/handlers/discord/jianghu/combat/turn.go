package combat

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	charactersvc "github.com/jianghu-tales/jianghu-bot/internal/services/character"
	combatsvc "github.com/jianghu-tales/jianghu-bot/internal/services/combat"
)

// NextTurnHandler advances the turn order
type NextTurnHandler struct {
	combatService    combatsvc.Service
	characterService charactersvc.Service
}

// NextTurnHandlerConfig holds configuration for the next-turn handler
type NextTurnHandlerConfig struct {
	CombatService    combatsvc.Service
	CharacterService charactersvc.Service
}

// NewNextTurnHandler creates a new next-turn handler
func NewNextTurnHandler(cfg *NextTurnHandlerConfig) *NextTurnHandler {
	return &NextTurnHandler{
		combatService:    cfg.CombatService,
		characterService: cfg.CharacterService,
	}
}

// Handle advances to the next participant
func (h *NextTurnHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	uid := userID(i)

	session, err := resolveSession(ctx, h.combatService, h.characterService, uid)
	if err != nil {
		return respondError(s, i, err)
	}

	session, err = h.combatService.NextTurn(ctx, uid, session.ID)
	if err != nil {
		return respondError(s, i, err)
	}

	return respondEmbed(s, i, turnOrderEmbed(session))
}

// EndHandler closes a combat session. GM only.
type EndHandler struct {
	combatService    combatsvc.Service
	characterService charactersvc.Service
}

// EndHandlerConfig holds configuration for the end handler
type EndHandlerConfig struct {
	CombatService    combatsvc.Service
	CharacterService charactersvc.Service
}

// NewEndHandler creates a new end handler
func NewEndHandler(cfg *EndHandlerConfig) *EndHandler {
	return &EndHandler{
		combatService:    cfg.CombatService,
		characterService: cfg.CharacterService,
	}
}

// Handle ends the caller's combat
func (h *EndHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	uid := userID(i)

	session, err := resolveSession(ctx, h.combatService, h.characterService, uid)
	if err != nil {
		return respondError(s, i, err)
	}

	if err := h.combatService.EndCombat(ctx, uid, session.ID); err != nil {
		return respondError(s, i, err)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("🏮 **%s** has ended.", session.Name),
		},
	})
}
