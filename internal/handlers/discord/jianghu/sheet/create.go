package sheet

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/rulebook"
	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
	charactersvc "github.com/jianghu-tales/jianghu-bot/internal/services/character"
)

// CreateHandler handles character sheet creation
type CreateHandler struct {
	characterService charactersvc.Service
}

// CreateHandlerConfig holds configuration for the create handler
type CreateHandlerConfig struct {
	CharacterService charactersvc.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(cfg *CreateHandlerConfig) *CreateHandler {
	return &CreateHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle creates a character from the slash command options
func (h *CreateHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := optionMap(i)

	input := &charactersvc.CreateCharacterInput{
		OwnerID:    userID(i),
		Attributes: map[shared.Attribute]int{},
	}
	if opt, ok := options["name"]; ok {
		input.Name = opt.StringValue()
	}
	if opt, ok := options["clan"]; ok {
		input.ClanKey = opt.StringValue()
	}
	if opt, ok := options["style"]; ok {
		input.FightingStyle = opt.StringValue()
	}
	if opt, ok := options["innate-body"]; ok {
		input.InnateBodyKey = opt.StringValue()
	}
	for _, attr := range shared.Attributes {
		if opt, ok := options[string(attr)]; ok {
			input.Attributes[attr] = int(opt.IntValue())
		}
	}

	char, err := h.characterService.CreateCharacter(context.Background(), input)
	if err != nil {
		return respondError(s, i, err)
	}

	clan := rulebook.GetClan(char.ClanKey)
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚔️ %s joins the jianghu!", char.Name),
		Description: fmt.Sprintf("Disciple of the **%s**", clan.Name),
		Color:       0x2ecc71,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "HP", Value: fmt.Sprintf("%d/%d", char.Stats.CurrentHP, char.Stats.MaxHP), Inline: true},
			{Name: "Chi", Value: fmt.Sprintf("%d/%d", char.Stats.CurrentChi, char.Stats.MaxChi), Inline: true},
			{Name: "Armor Class", Value: fmt.Sprintf("%d", char.Stats.ArmorClass), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("ID: %s", char.ID)},
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}
