package combat

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jianghu-tales/jianghu-bot/internal/dice"
	combatdomain "github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
	charactersvc "github.com/jianghu-tales/jianghu-bot/internal/services/character"
	combatsvc "github.com/jianghu-tales/jianghu-bot/internal/services/combat"
)

// RollKind selects which roll a RollHandler performs
type RollKind string

const (
	RollKindAttack RollKind = "attack"
	RollKindDamage RollKind = "damage"
	RollKindCheck  RollKind = "check"
)

// RollHandler performs attack, damage, and check rolls inside a combat and
// posts the logged result
type RollHandler struct {
	kind             RollKind
	combatService    combatsvc.Service
	characterService charactersvc.Service
}

// RollHandlerConfig holds configuration for a roll handler
type RollHandlerConfig struct {
	Kind             RollKind
	CombatService    combatsvc.Service
	CharacterService charactersvc.Service
}

// NewRollHandler creates a new roll handler
func NewRollHandler(cfg *RollHandlerConfig) *RollHandler {
	return &RollHandler{
		kind:             cfg.Kind,
		combatService:    cfg.CombatService,
		characterService: cfg.CharacterService,
	}
}

// Handle rolls for the caller's slot, or for any slot when the caller is GM
func (h *RollHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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

	mode := dice.ModeNormal
	if opt, ok := options["mode"]; ok {
		switch strings.ToLower(opt.StringValue()) {
		case "advantage":
			mode = dice.ModeAdvantage
		case "disadvantage":
			mode = dice.ModeDisadvantage
		}
	}

	switch h.kind {
	case RollKindAttack:
		session, err = h.combatService.RecordAttack(ctx, uid, session.ID, characterID, mode)
	case RollKindDamage:
		crit := false
		if opt, ok := options["crit"]; ok {
			crit = opt.BoolValue()
		}
		session, err = h.combatService.RecordDamage(ctx, uid, session.ID, characterID, crit)
	case RollKindCheck:
		attr := shared.AttributeAgility
		if opt, ok := options["attribute"]; ok {
			attr = shared.Attribute(opt.StringValue())
		}
		session, err = h.combatService.RecordSkillCheck(ctx, uid, session.ID, characterID, attr, mode)
	default:
		err = jherr.Internal("unknown roll kind")
	}
	if err != nil {
		return respondError(s, i, err)
	}

	return respondEmbed(s, i, rollEmbed(session.LastRoll))
}

func rollEmbed(entry *combatdomain.Broadcast) *discordgo.MessageEmbed {
	if entry == nil {
		return &discordgo.MessageEmbed{Title: "🎲 Nothing rolled yet"}
	}

	var rolls []string
	for _, r := range entry.Rolls {
		rolls = append(rolls, "`"+strconv.Itoa(r)+"`")
	}

	return &discordgo.MessageEmbed{
		Title:       "🎲 " + entry.Text,
		Description: "Dice: " + strings.Join(rolls, " "),
		Color:       0xf1c40f,
	}
}
