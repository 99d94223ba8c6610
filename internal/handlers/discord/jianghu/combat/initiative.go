package combat

import (
	"context"

	"github.com/bwmarrin/discordgo"

	charactersvc "github.com/jianghu-tales/jianghu-bot/internal/services/character"
	combatsvc "github.com/jianghu-tales/jianghu-bot/internal/services/combat"
)

// InitiativeHandler rolls initiative for the caller's slot, or any slot when
// the caller is the GM
type InitiativeHandler struct {
	combatService    combatsvc.Service
	characterService charactersvc.Service
}

// InitiativeHandlerConfig holds configuration for the initiative handler
type InitiativeHandlerConfig struct {
	CombatService    combatsvc.Service
	CharacterService charactersvc.Service
}

// NewInitiativeHandler creates a new initiative handler
func NewInitiativeHandler(cfg *InitiativeHandlerConfig) *InitiativeHandler {
	return &InitiativeHandler{
		combatService:    cfg.CombatService,
		characterService: cfg.CharacterService,
	}
}

// Handle rolls initiative
func (h *InitiativeHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	options := optionMap(i)
	uid := userID(i)

	session, err := resolveSession(ctx, h.combatService, h.characterService, uid)
	if err != nil {
		return respondError(s, i, err)
	}

	characterID := ""
	if opt, ok := options["character"]; ok {
		characterID = opt.StringValue()
	} else if p := ownParticipant(session, uid); p != nil {
		characterID = p.CharacterID
	}
	if characterID == "" {
		return respondText(s, i, "You have no character in this combat.")
	}

	session, err = h.combatService.RollInitiative(ctx, uid, session.ID, characterID)
	if err != nil {
		return respondError(s, i, err)
	}

	return respondEmbed(s, i, turnOrderEmbed(session))
}

// BeginHandler locks the turn order and starts the first round. GM only;
// anyone still without initiative gets a roll from the GM's hand first.
type BeginHandler struct {
	combatService    combatsvc.Service
	characterService charactersvc.Service
}

// BeginHandlerConfig holds configuration for the begin handler
type BeginHandlerConfig struct {
	CombatService    combatsvc.Service
	CharacterService charactersvc.Service
}

// NewBeginHandler creates a new begin handler
func NewBeginHandler(cfg *BeginHandlerConfig) *BeginHandler {
	return &BeginHandler{
		combatService:    cfg.CombatService,
		characterService: cfg.CharacterService,
	}
}

// Handle starts round one
func (h *BeginHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	uid := userID(i)

	session, err := resolveSession(ctx, h.combatService, h.characterService, uid)
	if err != nil {
		return respondError(s, i, err)
	}

	if len(session.PendingInitiative()) > 0 {
		if _, err := h.combatService.RollPendingInitiatives(ctx, uid, session.ID); err != nil {
			return respondError(s, i, err)
		}
	}

	session, err = h.combatService.BeginRound(ctx, uid, session.ID)
	if err != nil {
		return respondError(s, i, err)
	}

	return respondEmbed(s, i, turnOrderEmbed(session))
}
