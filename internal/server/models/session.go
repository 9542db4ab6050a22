package models

import "time"

// Session is a server-side login. Access tokens carry its ID so logout can
// revoke a token before it expires.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
