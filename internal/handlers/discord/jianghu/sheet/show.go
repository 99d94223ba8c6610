package sheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/character"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/rulebook"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
	charactersvc "github.com/jianghu-tales/jianghu-bot/internal/services/character"
)

// ShowHandler renders a character sheet
type ShowHandler struct {
	characterService charactersvc.Service
}

// ShowHandlerConfig holds configuration for the show handler
type ShowHandlerConfig struct {
	CharacterService charactersvc.Service
}

// NewShowHandler creates a new show handler
func NewShowHandler(cfg *ShowHandlerConfig) *ShowHandler {
	return &ShowHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle shows one of the caller's characters, by name when given
func (h *ShowHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	options := optionMap(i)

	chars, err := h.characterService.ListCharacters(ctx, userID(i))
	if err != nil {
		return respondError(s, i, err)
	}
	if len(chars) == 0 {
		return respondText(s, i, "You have no characters yet. Use `/sheet create` first.")
	}

	char := chars[0]
	if opt, ok := options["name"]; ok {
		wanted := strings.ToLower(opt.StringValue())
		char = nil
		for _, c := range chars {
			if strings.ToLower(c.Name) == wanted {
				char = c
				break
			}
		}
		if char == nil {
			return respondText(s, i, fmt.Sprintf("No character named **%s** found.", opt.StringValue()))
		}
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{sheetEmbed(char)},
		},
	})
}

func sheetEmbed(char *character.Character) *discordgo.MessageEmbed {
	clan := rulebook.GetClan(char.ClanKey)

	var attrs []string
	for _, attr := range shared.Attributes {
		marker := ""
		if char.IsProficient(attr) {
			marker = " ✦"
		}
		attrs = append(attrs, fmt.Sprintf("%s %+d%s", attr, char.Attribute(attr), marker))
	}

	weapon := "unarmed"
	if w := char.Inventory.EquippedWeapon; w != nil {
		weapon = fmt.Sprintf("%s (%s, %s)", w.Name, w.Category, w.DamageFormula)
	}

	embed := &discordgo.MessageEmbed{
		Title: char.Name,
		Description: fmt.Sprintf("%s · %s · Body Refinement %d · Mastery %d",
			clan.Name, rulebook.CultivationStageName(char.CultivationStage),
			char.BodyRefinementLevel, char.MasteryLevel),
		Color: 0x9b59b6,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "HP", Value: fmt.Sprintf("%d/%d", char.Stats.CurrentHP, char.Stats.MaxHP), Inline: true},
			{Name: "Chi", Value: fmt.Sprintf("%d/%d", char.Stats.CurrentChi, char.Stats.MaxChi), Inline: true},
			{Name: "Armor Class", Value: fmt.Sprintf("%d", char.Stats.ArmorClass), Inline: true},
			{Name: "Attributes", Value: strings.Join(attrs, "\n")},
			{Name: "Weapon", Value: weapon, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("ID: %s", char.ID)},
	}
	if char.ImageRef != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: char.ImageRef}
	}
	if len(char.Techniques) > 0 {
		var names []string
		for _, t := range char.Techniques {
			names = append(names, fmt.Sprintf("%s (%d chi)", t.Name, t.Cost))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Techniques", Value: strings.Join(names, "\n"),
		})
	}
	return embed
}
