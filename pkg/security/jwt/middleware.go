package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/userhub/api/http/presenter"
)

const (
	LocalEmail = "authEmail"
	LocalName  = "authName"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets the subject email into c.Locals(LocalEmail).
func NewAuthMiddleware(v *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return presenter.Error(c, http.StatusUnauthorized, "missing Authorization header")
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := authHeader
		if scheme, rest, ok := strings.Cut(authHeader, " "); ok && strings.EqualFold(scheme, "Bearer") {
			tokenStr = strings.TrimSpace(rest)
		}
		if tokenStr == "" {
			return presenter.Error(c, http.StatusUnauthorized, "empty token")
		}
		claims, err := v.Verify(tokenStr)
		if err != nil {
			return presenter.Error(c, http.StatusUnauthorized, err.Error())
		}
		c.Locals(LocalEmail, claims.Subject)
		c.Locals(LocalName, claims.Name)
		return c.Next()
	}
}
