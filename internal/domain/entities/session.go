package entities

import "time"

// Session binds an operator's session key to the upstream bearer token.
//
// The key is what the dashboard presents on every request; the token never
// leaves the server. Sessions past ExpiresAt are treated as absent.
type Session struct {
	Key       string    `json:"key"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its lifetime at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
