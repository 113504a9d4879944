package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pointnow/web/internal/middleware"
	"github.com/pointnow/web/internal/pointnow"
)

// ProfileHandler serves the customer profile screen.
type ProfileHandler struct {
	api *pointnow.Client
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(api *pointnow.Client) *ProfileHandler {
	return &ProfileHandler{api: api}
}

// Profile returns the customer profile plus leaderboard position. The
// position call depends on the customer id from the profile, so the two
// requests are sequential by construction, not as an optimization choice.
func (h *ProfileHandler) Profile(c *fiber.Ctx) error {
	store, ok := middleware.CurrentSession(c)
	if !ok || !store.Authenticated() {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	user := store.User()
	api := h.api.WithTokens(store)

	profile, err := api.UserProfile(c.Context(), user.User.ID)
	if err != nil {
		return respondAPIError(c, err)
	}

	position, err := api.Position(c.Context(), profile.ID)
	if err != nil {
		return respondAPIError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"profile":  profile,
			"position": position,
		},
	})
}
