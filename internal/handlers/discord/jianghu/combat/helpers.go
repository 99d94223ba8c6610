package combat

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	combatdomain "github.com/jianghu-tales/jianghu-bot/internal/domain/combat"
	jherr "github.com/jianghu-tales/jianghu-bot/internal/errors"
	charactersvc "github.com/jianghu-tales/jianghu-bot/internal/services/character"
	combatsvc "github.com/jianghu-tales/jianghu-bot/internal/services/combat"
)

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := map[string]*discordgo.ApplicationCommandInteractionDataOption{}
	for _, opt := range i.ApplicationCommandData().Options {
		if len(opt.Options) > 0 {
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

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// resolveSession finds the combat the caller is part of: the one they run as
// GM, or the one their character is currently in
func resolveSession(ctx context.Context, combatService combatsvc.Service, characterService charactersvc.Service, uid string) (*combatdomain.Session, error) {
	session, err := combatService.GetSessionByGM(ctx, uid)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	chars, err := characterService.ListCharacters(ctx, uid)
	if err != nil {
		return nil, err
	}
	for _, char := range chars {
		if char.ActiveCombatID == "" {
			continue
		}
		session, err = combatService.GetSession(ctx, char.ActiveCombatID)
		if jherr.IsNotFound(err) {
			continue
		}
		return session, err
	}

	return nil, jherr.NotFound("you are not in a combat right now")
}

// ownParticipant picks the caller's slot in the turn order
func ownParticipant(session *combatdomain.Session, uid string) *combatdomain.Participant {
	for _, p := range session.Participants {
		if p.OwnerID == uid && !p.IsNPC {
			return p
		}
	}
	return nil
}

// turnOrderEmbed renders the session's participant list and current turn
func turnOrderEmbed(session *combatdomain.Session) *discordgo.MessageEmbed {
	var lines []string
	current := session.CurrentParticipant()
	for _, p := range session.Participants {
		initiative := "—"
		if p.Initiative != nil {
			initiative = fmt.Sprintf("%d", *p.Initiative)
		}
		marker := "​ "
		if session.Status == combatdomain.StatusActive && current != nil && p == current {
			marker = "▶ "
		}
		npc := ""
		if p.IsNPC {
			npc = " (NPC)"
		}
		lines = append(lines, fmt.Sprintf("%s**%s**%s · initiative %s", marker, p.Name, npc, initiative))
	}

	title := fmt.Sprintf("⚔️ %s", session.Name)
	description := "Waiting for initiative rolls"
	if session.Status == combatdomain.StatusActive {
		description = fmt.Sprintf("Round %d", session.Round)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       0xe74c3c,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Turn Order", Value: strings.Join(lines, "\n")},
		},
	}
}
