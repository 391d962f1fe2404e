package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/playplanner-service/internal/domain"
)

const principalKey = "auth_principal"

type principalCtxKey struct{}

// Principal is the verified identity attached to a single request.
type Principal struct {
	UserID   int64
	Email    string
	FullName string
	Role     domain.Role
}

// Authority returns the single coarse-grained grant of the principal.
func (p *Principal) Authority() string {
	return p.Role.Authority()
}

// HasRole reports whether the principal holds any of roles.
func (p *Principal) HasRole(roles ...domain.Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

func principalFromIdentity(id Identity) *Principal {
	return &Principal{UserID: id.UserID, Email: id.Email, FullName: id.FullName, Role: id.Role}
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

// PrincipalFromUserContext retrieves the principal from a request context.
func PrincipalFromUserContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(*Principal)
	return p, ok && p != nil
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok && principal != nil
}

func attachPrincipal(c *fiber.Ctx, p *Principal) {
	c.Locals(principalKey, p)
	c.SetUserContext(WithPrincipal(c.UserContext(), p))
}

func clearPrincipal(c *fiber.Ctx) {
	c.Locals(principalKey, nil)
}
