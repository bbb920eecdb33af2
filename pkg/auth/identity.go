package auth

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/courtside/venue-service/internal/models"
)

var ErrUnauthorized = errors.New("unauthorized")

// Identity is the authenticated caller of a request.
type Identity struct {
	ID        string
	Role      models.Role
	Email     string
	Name      string
	TokenID   string
	ExpiresAt time.Time
}

func IdentityFromClaims(c *Claims) *Identity {
	id := &Identity{ID: c.Sub, Role: c.Role, Email: c.Email, Name: c.Name, TokenID: c.ID}
	if c.ExpiresAt != nil {
		id.ExpiresAt = c.ExpiresAt.Time
	}
	return id
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity stored by the JWT middleware, or nil.
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(ctxKey{}).(*Identity)
	return id
}

// Authorize fails with ErrUnauthorized unless id is present and holds one of roles.
// An empty roles list only requires presence.
func Authorize(id *Identity, roles ...models.Role) error {
	if id == nil || id.ID == "" {
		return ErrUnauthorized
	}
	if len(roles) > 0 && !slices.Contains(roles, id.Role) {
		return ErrUnauthorized
	}
	return nil
}
