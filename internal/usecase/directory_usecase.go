package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"paysadmin/internal/domain/entities"
	"paysadmin/internal/usecase/interfaces"
)

var ErrInvalidUserID = errors.New("invalid user id")

const recentUserWindow = 7 * 24 * time.Hour

// IDirectoryUseCase exposes the admin views over the upstream user data:
// the user list, a filtered search over it, the dashboard aggregates, and
// the per-user profile aggregate.

type IDirectoryUseCase interface {
	ListUsers(ctx context.Context, token string) ([]entities.User, error)
	Search(ctx context.Context, token, query string) ([]entities.User, error)
	Stats(ctx context.Context, token string) (entities.DashboardStats, error)
	GetProfile(ctx context.Context, token, uniqueID string) (entities.UserProfile, error)
}

type DirectoryUseCase struct {
	gateway interfaces.IPaysGateway
}

var _ IDirectoryUseCase = (*DirectoryUseCase)(nil)

func NewDirectoryUseCase(gateway interfaces.IPaysGateway) *DirectoryUseCase {
	return &DirectoryUseCase{gateway: gateway}
}

// ListUsers refuses locally when no token is present; no upstream call is
// attempted for unauthenticated callers.
func (u *DirectoryUseCase) ListUsers(ctx context.Context, token string) ([]entities.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrNotAuthenticated
	}
	return u.gateway.ListUsers(ctx, token)
}

// Search filters the user list case-insensitively over name, email, unique id
// and mobile. An empty query returns the full list.
func (u *DirectoryUseCase) Search(ctx context.Context, token, query string) ([]entities.User, error) {
	users, err := u.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return users, nil
	}

	matched := make([]entities.User, 0, len(users))
	for _, usr := range users {
		for _, field := range []string{usr.Name, usr.Email, usr.UniqueID, usr.ID, usr.Mobile} {
			if field != "" && strings.Contains(strings.ToLower(field), query) {
				matched = append(matched, usr)
				break
			}
		}
	}
	log.Printf("[directory][usecase] search query=%q matched=%d of=%d", query, len(matched), len(users))
	return matched, nil
}

// Stats computes the dashboard aggregates from the full user list.
func (u *DirectoryUseCase) Stats(ctx context.Context, token string) (entities.DashboardStats, error) {
	users, err := u.ListUsers(ctx, token)
	if err != nil {
		return entities.DashboardStats{}, err
	}

	cutoff := time.Now().UTC().Add(-recentUserWindow)
	stats := entities.DashboardStats{TotalUsers: len(users)}
	for _, usr := range users {
		if usr.IsVerified {
			stats.VerifiedUsers++
		}
		if usr.IsVerifiedMobile {
			stats.MobileVerifiedUsers++
		}
		if usr.IsAdmin {
			stats.AdminUsers++
		}
		if !usr.CreatedAt.IsZero() && usr.CreatedAt.After(cutoff) {
			stats.RecentUsers++
		}
	}
	return stats, nil
}

func (u *DirectoryUseCase) GetProfile(ctx context.Context, token, uniqueID string) (entities.UserProfile, error) {
	if strings.TrimSpace(token) == "" {
		return entities.UserProfile{}, ErrNotAuthenticated
	}
	uniqueID = strings.TrimSpace(uniqueID)
	if uniqueID == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}
	return u.gateway.GetUserProfile(ctx, token, uniqueID)
}
