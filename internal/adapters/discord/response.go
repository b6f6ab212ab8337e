package discord

import (
	"github.com/bwmarrin/discordgo"

	"voiceskill/internal/domain"
	pkgdiscord "voiceskill/pkg/discord"
)

// Sent when the skill could not answer at all (e.g. unsupported locale).
const unavailableMessage = "Sorry, this skill is unavailable right now."

// ResponseData renders a skill response as an interaction reply: the speech
// as content, the card as an embed with the reprompt in its footer. Replies
// that end the session are only shown to the caller.
func ResponseData(resp *domain.Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{Content: resp.SpeechText}
	if resp.Card != nil {
		data.Embeds = []*discordgo.MessageEmbed{
			pkgdiscord.CardEmbed(resp.Card.Title, resp.Card.Content, resp.RepromptText),
		}
	}
	if resp.ShouldEndSession {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
