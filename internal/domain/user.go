package domain

import "time"

// User owns blogs. IDs come from the auth layer, so they are opaque strings
// rather than UUIDs.
type User struct {
	ID            string     `db:"id"`
	Email         string     `db:"email"`
	EvernoteToken *string    `db:"evernote_token"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// SourceConnected reports whether the user has note-source credentials stored.
func (u User) SourceConnected() bool {
	return u.EvernoteToken != nil && *u.EvernoteToken != ""
}
