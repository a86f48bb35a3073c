package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital_records/internal/model"

	"github.com/jackc/pgx/v5"
)

// SessionRepository defines operations for session token data
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	FindByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	db DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create inserts a new session into the database
func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	sql := `INSERT INTO sessions (token, user_id, role, created_at, expires_at)
            VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, sql, session.Token, session.UserID, session.Role, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindByToken retrieves a session by its exact token string
func (r *sessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	session := &model.Session{}
	sql := `SELECT token, user_id, role, created_at, expires_at FROM sessions WHERE token = $1`
	err := r.db.QueryRow(ctx, sql, token).Scan(&session.Token, &session.UserID, &session.Role, &session.CreatedAt, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Session not found
		}
		return nil, fmt.Errorf("failed to find session by token: %w", err)
	}
	return session, nil
}

// DeleteExpired removes sessions whose expiry is before now. Expired
// sessions are already unusable; this only reclaims storage.
func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	sql := `DELETE FROM sessions WHERE expires_at < $1`
	cmdTag, err := r.db.Exec(ctx, sql, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
