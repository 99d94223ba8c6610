package sheet

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := map[string]*discordgo.ApplicationCommandInteractionDataOption{}
	for _, opt := range i.ApplicationCommandData().Options {
		if len(opt.Options) > 0 {
			// Subcommand; its options are the real arguments
			for _, sub := range opt.Options {
				out[sub.Name] = sub
			}
			continue
		}
		out[opt.Name] = opt
	}
	return out
}

func userID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondText(s *discordgo.Session, i *discordgo.InteractionCreate, text string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	return respondText(s, i, fmt.Sprintf("❌ %v", err))
}
