package interfaces

import (
	"context"

	"paysadmin/internal/domain/entities"
)

// IPaysGateway abstracts the upstream 19Pays admin REST API.
//
// Every call except AdminLogin carries the upstream bearer token resolved from
// the operator's session. The gateway owns wire-shape tolerance: envelope
// variants on the user list, string-or-boolean approval states, and the
// object-or-array debt field all normalize before crossing this boundary.
type IPaysGateway interface {
	AdminLogin(ctx context.Context, email, password string) (token string, err error)
	ListUsers(ctx context.Context, token string) ([]entities.User, error)
	GetUserProfile(ctx context.Context, token, uniqueID string) (entities.UserProfile, error)
	UpdateUserDebt(ctx context.Context, token string, upd entities.DebtUpdate) (message string, err error)
	FetchAadhaar(ctx context.Context, token, documentPath string) (entities.AadhaarDocument, error)
}
