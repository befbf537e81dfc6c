package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"paysadmin/internal/domain/entities"
	"paysadmin/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

const defaultSessionTTL = 12 * time.Hour

// IAuthUseCase manages operator sessions. Login exchanges credentials for an
// upstream token and stores it under a freshly minted session key; the token
// itself never leaves the server.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Resolve(ctx context.Context, sessionKey string) (string, error)
	Logout(ctx context.Context, sessionKey string) error
}

type AuthUseCase struct {
	gateway  interfaces.IPaysGateway
	sessions interfaces.ISessionRepository
	ttl      time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(gateway interfaces.IPaysGateway, sessions interfaces.ISessionRepository, ttl time.Duration) *AuthUseCase {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthUseCase{gateway: gateway, sessions: sessions, ttl: ttl}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.Session{}, ErrInvalidCredentials
	}

	token, err := u.gateway.AdminLogin(ctx, email, password)
	if err != nil {
		log.Printf("[auth][usecase] login failed email=%s err=%v", email, err)
		return entities.Session{}, err
	}

	now := time.Now().UTC()
	s := entities.Session{
		Key:       uuid.NewString(),
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(u.ttl),
	}
	if err := u.sessions.Put(ctx, s); err != nil {
		log.Printf("[auth][usecase] session store failed email=%s err=%v", email, err)
		return entities.Session{}, err
	}
	log.Printf("[auth][usecase] login success email=%s session_key=%s", email, s.Key)
	return s, nil
}

// Resolve maps a session key to the stored upstream token. Expired or unknown
// sessions resolve to ErrSessionNotFound.
func (u *AuthUseCase) Resolve(ctx context.Context, sessionKey string) (string, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return "", ErrSessionNotFound
	}
	s, err := u.sessions.Get(ctx, sessionKey)
	if err != nil {
		return "", err
	}
	if s.Key == "" || s.Expired(time.Now().UTC()) {
		return "", ErrSessionNotFound
	}
	return s.Token, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, sessionKey string) error {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return ErrSessionNotFound
	}
	log.Printf("[auth][usecase] logout session_key=%s", sessionKey)
	return u.sessions.Delete(ctx, sessionKey)
}
