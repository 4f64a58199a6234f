package interfaces

import (
	"context"
	"swapcred/internal/domain/entities"
)

// IUserDirectory resolves caller profiles from the system of record. Admin
// capability is re-read here on every privileged call instead of being cached
// client-side or carried in a token claim.
type IUserDirectory interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
}
