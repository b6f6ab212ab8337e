package alexa

import (
	"encoding/json"
	"fmt"
	"time"

	"voiceskill/internal/domain"
)

// Decode parses a raw request envelope into a domain.Request.
func Decode(raw []byte) (domain.Request, error) {
	var env RequestEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return domain.Request{}, fmt.Errorf("%w: decode envelope: %v", domain.ErrInvalidRequest, err)
	}
	return ToDomain(env)
}

// ToDomain normalizes the envelope. The platform's fallback intent becomes a
// distinct Fallback request so the catch-all intent handler cannot take it.
func ToDomain(env RequestEnvelope) (domain.Request, error) {
	body := env.Request
	req := domain.Request{
		ID:     body.RequestID,
		Locale: body.Locale,
	}
	if body.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339, body.Timestamp); err == nil {
			req.Timestamp = ts
		}
	}

	switch body.Type {
	case TypeLaunchRequest:
		req.Type = domain.RequestLaunch
	case TypeSessionEndedRequest:
		req.Type = domain.RequestSessionEnded
	case TypeIntentRequest:
		if body.Intent == nil || body.Intent.Name == "" {
			return domain.Request{}, fmt.Errorf("%w: intent request without intent", domain.ErrInvalidRequest)
		}
		if body.Intent.Name == domain.IntentFallback {
			req.Type = domain.RequestFallback
			break
		}
		req.Type = domain.RequestIntentInvoked
		req.IntentName = body.Intent.Name
	default:
		return domain.Request{}, fmt.Errorf("%w: unsupported request type %q", domain.ErrInvalidRequest, body.Type)
	}
	return req, nil
}

// FromDomain builds the response envelope for resp.
func FromDomain(resp *domain.Response) ResponseEnvelope {
	env := ResponseEnvelope{Version: Version}
	if resp == nil {
		return env
	}
	if resp.SpeechText != "" {
		env.Response.OutputSpeech = &OutputSpeech{Type: "PlainText", Text: resp.SpeechText}
	}
	if resp.RepromptText != "" {
		env.Response.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: "PlainText", Text: resp.RepromptText}}
	}
	if resp.Card != nil {
		env.Response.Card = &Card{Type: "Simple", Title: resp.Card.Title, Content: resp.Card.Content}
	}
	env.Response.ShouldEndSession = resp.ShouldEndSession
	return env
}

// Encode marshals the response envelope for resp.
func Encode(resp *domain.Response) ([]byte, error) {
	return json.Marshal(FromDomain(resp))
}
