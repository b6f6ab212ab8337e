// Package alexa maps the Alexa-style JSON request/response envelopes to the
// skill's normalized Request and Response.
package alexa

import "encoding/json"

// Platform request types.
const (
	TypeLaunchRequest       = "LaunchRequest"
	TypeIntentRequest       = "IntentRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"
)

const Version = "1.0"

// RequestEnvelope is the inbound body sent by the voice platform.
type RequestEnvelope struct {
	Version string          `json:"version"`
	Session *Session        `json:"session,omitempty"`
	Context json.RawMessage `json:"context,omitempty"`
	Request RequestBody     `json:"request"`
}

type Session struct {
	New        bool            `json:"new"`
	SessionID  string          `json:"sessionId"`
	Attributes map[string]any  `json:"attributes,omitempty"`
	User       json.RawMessage `json:"user,omitempty"`
}

type RequestBody struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp"`
	Locale    string  `json:"locale"`
	Intent    *Intent `json:"intent,omitempty"`
	Reason    string  `json:"reason,omitempty"` // SessionEndedRequest only
}

type Intent struct {
	Name  string          `json:"name"`
	Slots json.RawMessage `json:"slots,omitempty"`
}

// ResponseEnvelope is the outbound body returned to the voice platform.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          ResponseBody   `json:"response"`
}

type ResponseBody struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
