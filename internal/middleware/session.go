package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pointnow/web/internal/config"
	"github.com/pointnow/web/internal/session"
	"github.com/pointnow/web/internal/utils"
)

// SessionCookie is the cookie carrying the signed session id.
const SessionCookie = "pointnow_session"

const sessionContextKey = "currentSession"

// LoadSession resolves the session cookie (or a bearer token carrying the
// same signed value) into a session.Store and stashes it in Locals. Requests
// without a valid session continue unauthenticated; role gates decide later.
func LoadSession(cfg *config.Config, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			if header := c.Get("Authorization"); header != "" {
				parts := strings.SplitN(header, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					token = parts[1]
				}
			}
		}
		if token == "" {
			return c.Next()
		}

		sid, err := utils.ParseSessionToken(cfg.JWTSecret, token)
		if err != nil {
			// Expired or tampered cookie; treat as logged out.
			return c.Next()
		}

		store, err := sessions.Store(c.Context(), sid.String())
		if err != nil {
			return err
		}

		c.Locals(sessionContextKey, store)
		return c.Next()
	}
}

// CurrentSession extracts the session store placed by LoadSession.
func CurrentSession(c *fiber.Ctx) (*session.Store, bool) {
	value := c.Locals(sessionContextKey)
	if value == nil {
		return nil, false
	}
	store, ok := value.(*session.Store)
	return store, ok
}

// RequireAuth rejects requests without an authenticated session.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		store, ok := CurrentSession(c)
		if !ok || !store.Authenticated() {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		return c.Next()
	}
}

// RequireOperator rejects sessions that are neither staff nor admin. The
// operator dashboard is the only surface behind this gate.
func RequireOperator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		store, ok := CurrentSession(c)
		if !ok || !store.Authenticated() {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}

		user := store.User()
		if user == nil || (!user.IsAdmin && !user.IsStaff) {
			return fiber.NewError(fiber.StatusForbidden, "operator access required")
		}
		return c.Next()
	}
}
