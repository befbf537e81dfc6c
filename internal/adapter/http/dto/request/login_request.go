package request

import "strings"

// LoginRequest is the operator credential payload for /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}
