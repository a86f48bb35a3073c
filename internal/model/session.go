package model

import "time"

// Session represents one issued login session. Rows are never updated;
// a session is valid only while the current time is before ExpiresAt.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"` // role snapshot at issuance
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
