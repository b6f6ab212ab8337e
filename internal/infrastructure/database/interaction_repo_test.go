package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceskill/internal/domain/entities"
)

var errQuery = errors.New("query failed")

// fakeDB records the last statement; Query always fails.
type fakeDB struct {
	sql     string
	args    []any
	execErr error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return nil, errQuery
}

func TestRecord(t *testing.T) {
	db := &fakeDB{}
	repo := NewInteractionRepository(db)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	it := &entities.Interaction{
		RequestID:   "r1",
		RequestType: "Launch",
		Locale:      "es-ES",
		Handler:     "Launch",
		Duration:    30 * time.Millisecond,
		CreatedAt:   created,
	}
	require.NoError(t, repo.Record(context.Background(), it))

	id, err := uuid.Parse(it.ID)
	require.NoError(t, err, "empty id is generated")
	assert.Equal(t, insertInteraction, db.sql)
	require.Len(t, db.args, 11)
	assert.Equal(t, pgtype.UUID{Bytes: id, Valid: true}, db.args[0])
	assert.Equal(t, "r1", db.args[1])
	assert.Equal(t, int64(30), db.args[9])
	assert.Equal(t, pgtype.Timestamptz{Time: created, Valid: true}, db.args[10])
}

func TestRecord_Errors(t *testing.T) {
	repo := NewInteractionRepository(&fakeDB{})
	err := repo.Record(context.Background(), &entities.Interaction{ID: "not-a-uuid"})
	require.Error(t, err)

	repo = NewInteractionRepository(&fakeDB{execErr: errors.New("connection reset")})
	err = repo.Record(context.Background(), &entities.Interaction{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestListRecent_ClampsLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, 50},
		{-3, 50},
		{10, 10},
		{10_000, maxListLimit},
	}
	for _, tt := range tests {
		db := &fakeDB{}
		_, err := NewInteractionRepository(db).ListRecent(context.Background(), tt.limit)
		require.ErrorIs(t, err, errQuery)
		assert.Equal(t, listRecentInteractions, db.sql)
		assert.Equal(t, []any{tt.want}, db.args)
	}
}
