package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"voiceskill/internal/domain/entities"
)

// interactionRow mirrors one row of the interactions table.
type interactionRow struct {
	ID               pgtype.UUID
	RequestID        string
	RequestType      string
	IntentName       string
	Locale           string
	Handler          string
	ErrorCode        string
	ErrorMessage     string
	ShouldEndSession bool
	DurationMs       int64
	CreatedAt        pgtype.Timestamptz
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func uuidToString(u pgtype.UUID) string {
	if !u.Valid {
		return ""
	}
	return uuid.UUID(u.Bytes).String()
}

func interactionToDomain(r interactionRow) entities.Interaction {
	return entities.Interaction{
		ID:               uuidToString(r.ID),
		RequestID:        r.RequestID,
		RequestType:      r.RequestType,
		IntentName:       r.IntentName,
		Locale:           r.Locale,
		Handler:          r.Handler,
		ErrorCode:        r.ErrorCode,
		ErrorMessage:     r.ErrorMessage,
		ShouldEndSession: r.ShouldEndSession,
		Duration:         time.Duration(r.DurationMs) * time.Millisecond,
		CreatedAt:        pgtypeTimestamptzToTime(r.CreatedAt),
	}
}
