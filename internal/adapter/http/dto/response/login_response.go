package response

import (
	"time"

	"paysadmin/internal/domain/entities"
)

// LoginResponse hands the dashboard its session key; the upstream token is
// never serialized.
type LoginResponse struct {
	SessionKey string    `json:"session_key"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func FromSession(s entities.Session) LoginResponse {
	return LoginResponse{SessionKey: s.Key, ExpiresAt: s.ExpiresAt}
}
