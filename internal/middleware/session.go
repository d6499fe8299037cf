package middleware

import (
	"strings"

	"asteria/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie carrying the session token for browser-style
// clients. API clients may send the same token as a Bearer header instead.
const SessionCookie = "session"

const actorKey = "actor"

// LoadActor resolves the acting identity from the request's session token
// (cookie or Authorization header) and stores it in the request context.
// Requests without a usable token proceed as Anonymous; gating happens in
// the authorization policy, not here.
func LoadActor(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(actorKey, authService.ActorFromToken(tokenFromRequest(c)))
		return c.Next()
	}
}

// ActorFromCtx returns the actor resolved by LoadActor, or Anonymous when
// the middleware did not run.
func ActorFromCtx(c *fiber.Ctx) services.Actor {
	if actor, ok := c.Locals(actorKey).(services.Actor); ok {
		return actor
	}
	return services.Anonymous
}

// tokenFromRequest extracts the session token, preferring an explicit
// "Bearer <token>" Authorization header over the session cookie.
func tokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return c.Cookies(SessionCookie)
}
