package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"voiceskill/internal/domain/entities"
	"voiceskill/internal/ports/output"
)

var _ output.InteractionJournal = (*InteractionRepository)(nil)

// DBTX is the subset of pgxpool.Pool the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const (
	insertInteraction = `
INSERT INTO interactions (
    id, request_id, request_type, intent_name, locale, handler,
    error_code, error_message, should_end_session, duration_ms, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	listRecentInteractions = `
SELECT id, request_id, request_type, intent_name, locale, handler,
       error_code, error_message, should_end_session, duration_ms, created_at
FROM interactions
ORDER BY created_at DESC
LIMIT $1`

	maxListLimit = 500
)

type InteractionRepository struct {
	db DBTX
}

func NewInteractionRepository(db DBTX) *InteractionRepository {
	return &InteractionRepository{db: db}
}

func (r *InteractionRepository) Record(ctx context.Context, it *entities.Interaction) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	id, err := uuid.Parse(it.ID)
	if err != nil {
		return fmt.Errorf("record interaction: invalid id %q: %w", it.ID, err)
	}
	_, err = r.db.Exec(ctx, insertInteraction,
		pgtype.UUID{Bytes: id, Valid: true},
		it.RequestID,
		it.RequestType,
		it.IntentName,
		it.Locale,
		it.Handler,
		it.ErrorCode,
		it.ErrorMessage,
		it.ShouldEndSession,
		it.Duration.Milliseconds(),
		timeToPgtypeTimestamptz(it.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	return nil
}

// ListRecent returns the newest interactions first. limit is clamped to [1, 500].
func (r *InteractionRepository) ListRecent(ctx context.Context, limit int) ([]entities.Interaction, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	rows, err := r.db.Query(ctx, listRecentInteractions, limit)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Interaction, 0, limit)
	for rows.Next() {
		var row interactionRow
		if err := rows.Scan(
			&row.ID,
			&row.RequestID,
			&row.RequestType,
			&row.IntentName,
			&row.Locale,
			&row.Handler,
			&row.ErrorCode,
			&row.ErrorMessage,
			&row.ShouldEndSession,
			&row.DurationMs,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		out = append(out, interactionToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	return out, nil
}
