package auth

import "github.com/gofiber/fiber/v2"

// RequirePrincipal rejects requests that reached it without an identity.
func (m *AuthMiddleware) RequirePrincipal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return m.reject.Respond(c)
		}
		return c.Next()
	}
}
