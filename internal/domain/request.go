package domain

import (
	"fmt"
	"strings"
	"time"
)

// RequestType enumerates the normalized inbound request kinds.
type RequestType string

const (
	RequestLaunch        RequestType = "Launch"
	RequestIntentInvoked RequestType = "IntentInvoked"
	RequestSessionEnded  RequestType = "SessionEnded"
	// RequestFallback is an utterance the platform could not map to any intent.
	RequestFallback RequestType = "Fallback"
)

// Intent names understood by the skill.
const (
	IntentHelloWorld = "HelloWorldIntent"
	IntentHelp       = "AMAZON.HelpIntent"
	IntentStop       = "AMAZON.StopIntent"
	IntentCancel     = "AMAZON.CancelIntent"
	IntentFallback   = "AMAZON.FallbackIntent"
)

// Request is the normalized inbound event.
type Request struct {
	ID         string
	Type       RequestType
	IntentName string // only set when Type == RequestIntentInvoked
	Locale     string
	Timestamp  time.Time
}

// Validate checks the request shape before any handler sees it.
func (r Request) Validate() error {
	switch r.Type {
	case RequestLaunch, RequestSessionEnded, RequestFallback:
	case RequestIntentInvoked:
		if strings.TrimSpace(r.IntentName) == "" {
			return fmt.Errorf("%w: intent request without intent name", ErrInvalidRequest)
		}
	case "":
		return fmt.Errorf("%w: missing request type", ErrInvalidRequest)
	default:
		return fmt.Errorf("%w: unsupported request type %q", ErrInvalidRequest, r.Type)
	}
	if strings.TrimSpace(r.Locale) == "" {
		return fmt.Errorf("%w: missing locale", ErrInvalidRequest)
	}
	return nil
}
