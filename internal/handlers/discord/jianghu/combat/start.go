package combat

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
	combatsvc "github.com/jianghu-tales/jianghu-bot/internal/services/combat"
)

// StartHandler opens a new combat session
type StartHandler struct {
	combatService combatsvc.Service
}

// StartHandlerConfig holds configuration for the start handler
type StartHandlerConfig struct {
	CombatService combatsvc.Service
}

// NewStartHandler creates a new start handler
func NewStartHandler(cfg *StartHandlerConfig) *StartHandler {
	return &StartHandler{
		combatService: cfg.CombatService,
	}
}

// Handle starts a combat with the listed character IDs and ad-hoc NPCs.
// The caller becomes the GM; any combat they were already running is replaced.
func (h *StartHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := optionMap(i)

	input := &combatsvc.StartCombatInput{GMID: userID(i)}
	if opt, ok := options["name"]; ok {
		input.Name = opt.StringValue()
	}
	if opt, ok := options["characters"]; ok {
		for _, id := range strings.Split(opt.StringValue(), ",") {
			if id = strings.TrimSpace(id); id != "" {
				input.CharacterIDs = append(input.CharacterIDs, id)
			}
		}
	}
	if opt, ok := options["npcs"]; ok {
		for _, name := range strings.Split(opt.StringValue(), ",") {
			if name = strings.TrimSpace(name); name != "" {
				input.NPCs = append(input.NPCs, &combatsvc.NPCInput{
					Name:       name,
					Attributes: map[shared.Attribute]int{},
				})
			}
		}
	}

	session, err := h.combatService.StartCombat(context.Background(), input)
	if err != nil {
		return respondError(s, i, err)
	}

	return respondEmbed(s, i, turnOrderEmbed(session))
}
