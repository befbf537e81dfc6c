package interfaces

import (
	"context"

	"paysadmin/internal/domain/entities"
)

// ISessionRepository abstracts DynamoDB persistence for operator sessions.
//
// Get returns a zero-valued session (empty Key) when nothing is stored under
// the key; expiry is enforced by the caller, not the store.
type ISessionRepository interface {
	Put(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, key string) (entities.Session, error)
	Delete(ctx context.Context, key string) error
}
