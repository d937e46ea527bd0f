package auth

import (
	"context"

	"github.com/examtrack/examtrack-api/internal/apperror"
)

// Roles. Admin is a strict superset of user; guest is a restricted
// sub-state of user enforced by call sites, not by the gate.
const (
	RoleUser  = "user"
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

// Actor is the authenticated identity attached to a request.
type Actor struct {
	ID      string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	Role    string `json:"role"`
}

func (a *Actor) IsGuest() bool {
	return a.Role == RoleGuest
}

func (a *Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ActorResolver turns a session token into an acting user.
// Returning (nil, nil) means anonymous, not an error.
type ActorResolver interface {
	ResolveActor(ctx context.Context, token string) (*Actor, error)
}

type contextKey string

const actorKey contextKey = "actor"

func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext returns the acting user, or ErrUnauthenticated when the
// request carried no valid session.
func ActorFromContext(ctx context.Context) (*Actor, error) {
	actor, ok := ctx.Value(actorKey).(*Actor)
	if !ok || actor == nil {
		return nil, apperror.ErrUnauthenticated
	}
	return actor, nil
}
