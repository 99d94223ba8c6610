package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
	combatHandler "github.com/jianghu-tales/jianghu-bot/internal/handlers/discord/jianghu/combat"
	"github.com/jianghu-tales/jianghu-bot/internal/handlers/discord/jianghu/sheet"
	"github.com/jianghu-tales/jianghu-bot/internal/repositories/combats"
	"github.com/jianghu-tales/jianghu-bot/internal/services"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	combatLogUpdater *CombatLogUpdater

	sheetCreateHandler *sheet.CreateHandler
	sheetShowHandler   *sheet.ShowHandler

	combatStartHandler      *combatHandler.StartHandler
	combatInitiativeHandler *combatHandler.InitiativeHandler
	combatBeginHandler      *combatHandler.BeginHandler
	combatNextTurnHandler   *combatHandler.NextTurnHandler
	combatEndHandler        *combatHandler.EndHandler
	combatAttackHandler     *combatHandler.RollHandler
	combatDamageHandler     *combatHandler.RollHandler
	combatCheckHandler      *combatHandler.RollHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider  *services.Provider
	CombatRepository combats.Repository
	Session          *discordgo.Session

	// PollInterval is the combat watcher's fallback polling cadence
	PollInterval time.Duration
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	provider := cfg.ServiceProvider

	return &Handler{
		ServiceProvider: provider,
		combatLogUpdater: NewCombatLogUpdater(&CombatLogUpdaterConfig{
			Session:      cfg.Session,
			Repository:   cfg.CombatRepository,
			PollInterval: cfg.PollInterval,
		}),
		sheetCreateHandler: sheet.NewCreateHandler(&sheet.CreateHandlerConfig{
			CharacterService: provider.CharacterService,
		}),
		sheetShowHandler: sheet.NewShowHandler(&sheet.ShowHandlerConfig{
			CharacterService: provider.CharacterService,
		}),
		combatStartHandler: combatHandler.NewStartHandler(&combatHandler.StartHandlerConfig{
			CombatService: provider.CombatService,
		}),
		combatInitiativeHandler: combatHandler.NewInitiativeHandler(&combatHandler.InitiativeHandlerConfig{
			CombatService:    provider.CombatService,
			CharacterService: provider.CharacterService,
		}),
		combatBeginHandler: combatHandler.NewBeginHandler(&combatHandler.BeginHandlerConfig{
			CombatService:    provider.CombatService,
			CharacterService: provider.CharacterService,
		}),
		combatNextTurnHandler: combatHandler.NewNextTurnHandler(&combatHandler.NextTurnHandlerConfig{
			CombatService:    provider.CombatService,
			CharacterService: provider.CharacterService,
		}),
		combatEndHandler: combatHandler.NewEndHandler(&combatHandler.EndHandlerConfig{
			CombatService:    provider.CombatService,
			CharacterService: provider.CharacterService,
		}),
		combatAttackHandler: combatHandler.NewRollHandler(&combatHandler.RollHandlerConfig{
			Kind:             combatHandler.RollKindAttack,
			CombatService:    provider.CombatService,
			CharacterService: provider.CharacterService,
		}),
		combatDamageHandler: combatHandler.NewRollHandler(&combatHandler.RollHandlerConfig{
			Kind:             combatHandler.RollKindDamage,
			CombatService:    provider.CombatService,
			CharacterService: provider.CharacterService,
		}),
		combatCheckHandler: combatHandler.NewRollHandler(&combatHandler.RollHandlerConfig{
			Kind:             combatHandler.RollKindCheck,
			CombatService:    provider.CombatService,
			CharacterService: provider.CharacterService,
		}),
	}
}

// Shutdown stops background watchers
func (h *Handler) Shutdown() {
	h.combatLogUpdater.StopAll()
}

// HandleInteraction dispatches slash commands
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	sub := ""
	if len(data.Options) > 0 {
		sub = data.Options[0].Name
	}

	var err error
	switch data.Name {
	case "sheet":
		switch sub {
		case "create":
			err = h.sheetCreateHandler.Handle(s, i)
		case "show":
			err = h.sheetShowHandler.Handle(s, i)
		}
	case "combat":
		switch sub {
		case "start":
			err = h.combatStartHandler.Handle(s, i)
			if err == nil {
				h.watchCallersCombat(i)
			}
		case "initiative":
			err = h.combatInitiativeHandler.Handle(s, i)
		case "begin":
			err = h.combatBeginHandler.Handle(s, i)
		case "next":
			err = h.combatNextTurnHandler.Handle(s, i)
		case "end":
			err = h.combatEndHandler.Handle(s, i)
		case "attack":
			err = h.combatAttackHandler.Handle(s, i)
		case "damage":
			err = h.combatDamageHandler.Handle(s, i)
		case "check":
			err = h.combatCheckHandler.Handle(s, i)
		}
	}
	if err != nil {
		log.Printf("interaction %s %s failed: %v", data.Name, sub, err)
	}
}

// watchCallersCombat starts mirroring the freshly started combat's rolls
// into the channel the command came from
func (h *Handler) watchCallersCombat(i *discordgo.InteractionCreate) {
	uid := ""
	if i.Member != nil && i.Member.User != nil {
		uid = i.Member.User.ID
	} else if i.User != nil {
		uid = i.User.ID
	}

	session, err := h.ServiceProvider.CombatService.GetSessionByGM(context.Background(), uid)
	if err != nil || session == nil {
		return
	}
	h.combatLogUpdater.Watch(session.ID, i.ChannelID)
}

// RegisterCommands registers the slash commands, guild-scoped when guildID
// is set
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	var attributeChoices []*discordgo.ApplicationCommandOptionChoice
	for _, attr := range shared.Attributes {
		attributeChoices = append(attributeChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(attr),
			Value: string(attr),
		})
	}

	modeOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "mode",
		Description: "Roll with advantage or disadvantage",
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "advantage", Value: "advantage"},
			{Name: "disadvantage", Value: "disadvantage"},
		},
	}
	characterOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "character",
		Description: "Character ID to act as (GM only)",
	}

	sheetAttributeOptions := make([]*discordgo.ApplicationCommandOption, 0, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		sheetAttributeOptions = append(sheetAttributeOptions, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        string(attr),
			Description: "Starting " + string(attr),
		})
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "sheet",
			Description: "Character sheets",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new character",
					Options: append([]*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Character name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "clan",
							Description: "Clan key (shaolin, wudang, tangmen, beggars, emei)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "style",
							Description: "Fighting style",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "innate-body",
							Description: "Innate body key",
						},
					}, sheetAttributeOptions...),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show a character sheet",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Character name (defaults to your first)",
						},
					},
				},
			},
		},
		{
			Name:        "combat",
			Description: "Run tabletop combat",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a combat as GM",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "characters",
							Description: "Comma-separated character IDs",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "npcs",
							Description: "Comma-separated NPC names",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Combat name",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "initiative",
					Description: "Roll initiative",
					Options:     []*discordgo.ApplicationCommandOption{characterOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "begin",
					Description: "Lock the turn order and start round one (GM)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "next",
					Description: "Advance to the next turn",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End the combat (GM)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "attack",
					Description: "Roll an attack",
					Options:     []*discordgo.ApplicationCommandOption{modeOption, characterOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "damage",
					Description: "Roll weapon damage",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "crit",
							Description: "Roll critical damage",
						},
						characterOption,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "check",
					Description: "Roll an attribute check",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "attribute",
							Description: "Attribute to test",
							Required:    true,
							Choices:     attributeChoices,
						},
						modeOption,
						characterOption,
					},
				},
			},
		},
	}

	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}
