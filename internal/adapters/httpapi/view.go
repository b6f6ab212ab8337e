package httpapi

import (
	"time"

	"voiceskill/internal/domain/entities"
)

type interactionView struct {
	ID               string    `json:"id"`
	RequestID        string    `json:"requestId"`
	RequestType      string    `json:"requestType"`
	IntentName       string    `json:"intentName,omitempty"`
	Locale           string    `json:"locale"`
	Handler          string    `json:"handler"`
	ErrorCode        string    `json:"errorCode,omitempty"`
	ErrorMessage     string    `json:"errorMessage,omitempty"`
	ShouldEndSession bool      `json:"shouldEndSession"`
	DurationMs       int64     `json:"durationMs"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toView(it entities.Interaction) interactionView {
	return interactionView{
		ID:               it.ID,
		RequestID:        it.RequestID,
		RequestType:      it.RequestType,
		IntentName:       it.IntentName,
		Locale:           it.Locale,
		Handler:          it.Handler,
		ErrorCode:        it.ErrorCode,
		ErrorMessage:     it.ErrorMessage,
		ShouldEndSession: it.ShouldEndSession,
		DurationMs:       it.Duration.Milliseconds(),
		CreatedAt:        it.CreatedAt,
	}
}
