package entities

import "time"

// Interaction is one journaled dispatch: what came in, which handler
// answered, and why the error action ran if it did.
type Interaction struct {
	ID               string
	RequestID        string
	RequestType      string
	IntentName       string
	Locale           string
	Handler          string
	ErrorCode        string // empty when the handler answered normally
	ErrorMessage     string
	ShouldEndSession bool
	Duration         time.Duration
	CreatedAt        time.Time
}

// Failed reports whether the error action produced the response.
func (i *Interaction) Failed() bool {
	return i.ErrorCode != ""
}
