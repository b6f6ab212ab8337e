package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceskill/internal/domain"
)

func intentOption(name string) []*discordgo.ApplicationCommandInteractionDataOption {
	return []*discordgo.ApplicationCommandInteractionDataOption{{
		Name:  optionIntentName,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: name,
	}}
}

func TestRequestFromCommand(t *testing.T) {
	tests := []struct {
		name       string
		data       discordgo.ApplicationCommandInteractionData
		wantOK     bool
		wantType   domain.RequestType
		wantIntent string
	}{
		{"start", discordgo.ApplicationCommandInteractionData{Name: "start"}, true, domain.RequestLaunch, ""},
		{"hello", discordgo.ApplicationCommandInteractionData{Name: "hello"}, true, domain.RequestIntentInvoked, domain.IntentHelloWorld},
		{"help", discordgo.ApplicationCommandInteractionData{Name: "help"}, true, domain.RequestIntentInvoked, domain.IntentHelp},
		{"stop", discordgo.ApplicationCommandInteractionData{Name: "stop"}, true, domain.RequestIntentInvoked, domain.IntentStop},
		{"cancel", discordgo.ApplicationCommandInteractionData{Name: "cancel"}, true, domain.RequestIntentInvoked, domain.IntentCancel},
		{
			"custom intent",
			discordgo.ApplicationCommandInteractionData{Name: "intent", Options: intentOption(" OrderPizzaIntent ")},
			true, domain.RequestIntentInvoked, "OrderPizzaIntent",
		},
		{
			"fallback intent",
			discordgo.ApplicationCommandInteractionData{Name: "intent", Options: intentOption(domain.IntentFallback)},
			true, domain.RequestFallback, "",
		},
		{
			"blank intent",
			discordgo.ApplicationCommandInteractionData{Name: "intent", Options: intentOption("  ")},
			false, "", "",
		},
		{"foreign command", discordgo.ApplicationCommandInteractionData{Name: "create-event"}, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, ok := RequestFromCommand("i-1", discordgo.SpanishES, tt.data)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, "i-1", req.ID)
			assert.Equal(t, "es-ES", req.Locale)
			assert.Equal(t, tt.wantType, req.Type)
			assert.Equal(t, tt.wantIntent, req.IntentName)
			assert.NoError(t, req.Validate())
		})
	}
}

func TestCommandsAreMapped(t *testing.T) {
	for _, cmd := range Commands {
		data := discordgo.ApplicationCommandInteractionData{Name: cmd.Name}
		if cmd.Name == cmdIntent {
			data.Options = intentOption(domain.IntentHelloWorld)
		}
		_, ok := RequestFromCommand("i-1", discordgo.EnglishUS, data)
		assert.True(t, ok, cmd.Name)
	}
}
