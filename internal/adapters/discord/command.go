package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"voiceskill/internal/domain"
)

const (
	cmdStart  = "start"
	cmdHello  = "hello"
	cmdHelp   = "help"
	cmdStop   = "stop"
	cmdCancel = "cancel"
	cmdIntent = "intent"

	optionIntentName = "name"
)

// Commands lists the slash commands registered at startup.
var Commands = []*discordgo.ApplicationCommand{
	{Name: cmdStart, Description: "Open the skill"},
	{Name: cmdHello, Description: "Say hello"},
	{Name: cmdHelp, Description: "What can I say?"},
	{Name: cmdStop, Description: "Stop the skill"},
	{Name: cmdCancel, Description: "Cancel"},
	{
		Name:        cmdIntent,
		Description: "Invoke an intent by name",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionIntentName,
				Description: "Intent name, e.g. HelloWorldIntent",
				Required:    true,
			},
		},
	},
}

// RequestFromCommand maps a slash command to a skill request. ok is false for
// commands the skill does not own.
func RequestFromCommand(id string, locale discordgo.Locale, data discordgo.ApplicationCommandInteractionData) (req domain.Request, ok bool) {
	req = domain.Request{ID: id, Locale: string(locale)}
	switch data.Name {
	case cmdStart:
		req.Type = domain.RequestLaunch
	case cmdHello:
		req.Type, req.IntentName = domain.RequestIntentInvoked, domain.IntentHelloWorld
	case cmdHelp:
		req.Type, req.IntentName = domain.RequestIntentInvoked, domain.IntentHelp
	case cmdStop:
		req.Type, req.IntentName = domain.RequestIntentInvoked, domain.IntentStop
	case cmdCancel:
		req.Type, req.IntentName = domain.RequestIntentInvoked, domain.IntentCancel
	case cmdIntent:
		name := ""
		for _, opt := range data.Options {
			if opt.Name == optionIntentName && opt.Type == discordgo.ApplicationCommandOptionString {
				name = strings.TrimSpace(opt.StringValue())
			}
		}
		if name == "" {
			return domain.Request{}, false
		}
		if name == domain.IntentFallback {
			req.Type = domain.RequestFallback
		} else {
			req.Type, req.IntentName = domain.RequestIntentInvoked, name
		}
	default:
		return domain.Request{}, false
	}
	return req, true
}

// HandleCommand answers one slash command through the skill.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	req, ok := RequestFromCommand(i.ID, i.Locale, i.ApplicationCommandData())
	if !ok {
		return
	}

	resp, err := h.skill.Handle(ctx, req)
	if err != nil {
		h.logger.Error("skill request failed", "request_id", req.ID, "locale", req.Locale, "error", err)
		respondEphemeral(s, i.Interaction, unavailableMessage)
		return
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: ResponseData(resp),
	}); err != nil {
		h.logger.Error("interaction respond failed", "request_id", req.ID, "error", err)
	}
}
