package application

import (
	"context"
	"log/slog"

	"voiceskill/internal/domain"
)

// DefaultHandlers returns the skill's handlers in precedence order. Reflector
// accepts any intent, so it must stay after the specific intent handlers.
func DefaultHandlers() []Handler {
	return []Handler{
		Launch,
		HelloWorld,
		Help,
		Stop,
		SessionEnded,
		Reflector,
		Fallback,
	}
}

var Launch = Handler{
	Name:      "Launch",
	Predicate: RequestTypeIs(domain.RequestLaunch),
	Action: func(_ context.Context, in *Input) (*domain.Response, error) {
		speech, err := in.Localizer.Resolve(domain.WelcomeMessage, nil)
		if err != nil {
			return nil, err
		}
		title, err := in.Localizer.Resolve(domain.SkillName, nil)
		if err != nil {
			return nil, err
		}
		return domain.NewResponseBuilder().
			Speak(speech).
			Reprompt(speech).
			WithSimpleCard(title, speech).
			Build(), nil
	},
}

var HelloWorld = Handler{
	Name:      "HelloWorld",
	Predicate: IntentIs(domain.IntentHelloWorld),
	Action:    cardAction(domain.HelloMessage, false),
}

var Help = Handler{
	Name:      "Help",
	Predicate: IntentIs(domain.IntentHelp),
	Action: func(_ context.Context, in *Input) (*domain.Response, error) {
		speech, err := in.Localizer.Resolve(domain.HelpMessage, nil)
		if err != nil {
			return nil, err
		}
		title, err := in.Localizer.Resolve(domain.SkillName, nil)
		if err != nil {
			return nil, err
		}
		return domain.NewResponseBuilder().
			Speak(speech).
			Reprompt(speech).
			WithSimpleCard(title, speech).
			Build(), nil
	},
}

var Stop = Handler{
	Name:      "Stop",
	Predicate: IntentIs(domain.IntentStop, domain.IntentCancel),
	Action:    cardAction(domain.GoodbyeMessage, true),
}

var SessionEnded = Handler{
	Name:      "SessionEnded",
	Predicate: RequestTypeIs(domain.RequestSessionEnded),
	Action:    cardAction(domain.GoodbyeMessage, true),
}

// Reflector echoes the name of any intent no earlier handler claimed.
var Reflector = Handler{
	Name:      "Reflector",
	Predicate: RequestTypeIs(domain.RequestIntentInvoked),
	Action: func(_ context.Context, in *Input) (*domain.Response, error) {
		speech, err := in.Localizer.Resolve(domain.ReflectorMessage, map[string]any{
			"intentName": in.Request.IntentName,
		})
		if err != nil {
			return nil, err
		}
		title, err := in.Localizer.Resolve(domain.SkillName, nil)
		if err != nil {
			return nil, err
		}
		return domain.NewResponseBuilder().
			Speak(speech).
			WithSimpleCard(title, speech).
			Build(), nil
	},
}

var Fallback = Handler{
	Name:      "Fallback",
	Predicate: RequestTypeIs(domain.RequestFallback),
	Action: func(_ context.Context, in *Input) (*domain.Response, error) {
		speech, err := in.Localizer.Resolve(domain.FallbackMessage, nil)
		if err != nil {
			return nil, err
		}
		reprompt, err := in.Localizer.Resolve(domain.HelpMessage, nil)
		if err != nil {
			return nil, err
		}
		return domain.NewResponseBuilder().
			Speak(speech).
			Reprompt(reprompt).
			Build(), nil
	},
}

// cardAction speaks key and shows it on a card titled with the skill name.
func cardAction(key domain.StringKey, endSession bool) Action {
	return func(_ context.Context, in *Input) (*domain.Response, error) {
		speech, err := in.Localizer.Resolve(key, nil)
		if err != nil {
			return nil, err
		}
		title, err := in.Localizer.Resolve(domain.SkillName, nil)
		if err != nil {
			return nil, err
		}
		return domain.NewResponseBuilder().
			Speak(speech).
			WithSimpleCard(title, speech).
			WithShouldEndSession(endSession).
			Build(), nil
	}
}

// ErrorProcessor returns the catch-all error action. The cause is logged for
// operators; the user only hears the localized apology.
func ErrorProcessor(logger *slog.Logger) ErrorAction {
	return func(ctx context.Context, in *Input, cause error) (*domain.Response, error) {
		logger.ErrorContext(ctx, "request handling failed",
			"request_id", in.Request.ID,
			"type", in.Request.Type,
			"intent", in.Request.IntentName,
			"code", domain.Code(cause),
			"error", cause,
		)
		if in.Localizer == nil {
			return nil, domain.ErrUnknownLocale
		}
		speech, err := in.Localizer.Resolve(domain.ErrorMessage, nil)
		if err != nil {
			return nil, err
		}
		return domain.NewResponseBuilder().Speak(speech).Build(), nil
	}
}
