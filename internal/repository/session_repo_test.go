package repository

import (
	"context"
	"testing"
	"time"

	"hospital_records/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)

	now := time.Now().UTC()
	session := &model.Session{
		Token:     "opaque-token",
		UserID:    "user-1",
		Role:      model.RolePatient,
		CreatedAt: now,
		ExpiresAt: now.Add(7 * 24 * time.Hour),
	}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(session.Token, session.UserID, session.Role, session.CreatedAt, session.ExpiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), session)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindByToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)

	now := time.Now().UTC()
	expires := now.Add(7 * 24 * time.Hour)
	rows := pgxmock.NewRows([]string{"token", "user_id", "role", "created_at", "expires_at"}).
		AddRow("opaque-token", "user-1", model.RolePatient, now, expires)

	mock.ExpectQuery("SELECT (.+) FROM sessions WHERE token").
		WithArgs("opaque-token").
		WillReturnRows(rows)

	session, err := repo.FindByToken(context.Background(), "opaque-token")

	assert.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, expires, session.ExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindByToken_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM sessions WHERE token").
		WithArgs("unknown-token").
		WillReturnError(pgx.ErrNoRows)

	session, err := repo.FindByToken(context.Background(), "unknown-token")

	assert.NoError(t, err)
	assert.Nil(t, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)

	now := time.Now().UTC()
	mock.ExpectExec("DELETE FROM sessions WHERE expires_at").
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	removed, err := repo.DeleteExpired(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
