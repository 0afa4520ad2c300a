package middleware

import (
	"strings"

	"consigne-admin/internal/core/services"
	"consigne-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the well-known cookie carrying the signed session token
const SessionCookie = "session_token"

// RequireSession gates the /admin pages behind an authenticated console
// session. Browser navigation is redirected to /connexion; JSON clients
// get a 401.
func RequireSession(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sessionToken string

		// 1. Try the session cookie first
		sessionToken = c.Cookies(SessionCookie)

		// 2. Fall back to the Authorization header
		if sessionToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				sessionToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if sessionToken == "" {
			return reject(c)
		}

		identity, err := auth.Authenticate(sessionToken)
		if err != nil {
			c.ClearCookie(SessionCookie)
			return reject(c)
		}

		c.Locals("identity", *identity)
		return c.Next()
	}
}

func reject(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodGet && strings.Contains(c.Get("Accept"), "text/html") {
		return c.Redirect("/connexion", fiber.StatusFound)
	}
	return response.Unauthorized(c, "Authentication required")
}
