package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	embedColor = 0x5865F2

	// Discord rejects embeds above these sizes.
	maxTitleLen       = 256
	maxDescriptionLen = 4096
	maxFooterLen      = 2048
)

// CardEmbed renders a title/content card as an embed. footer may be empty.
func CardEmbed(title, content, footer string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       truncate(title, maxTitleLen),
		Description: truncate(content, maxDescriptionLen),
		Color:       embedColor,
	}
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: truncate(footer, maxFooterLen)}
	}
	return embed
}

// truncate cuts s to at most n runes, ending with an ellipsis when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
