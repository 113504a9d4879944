package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pointnow/web/internal/middleware"
	"github.com/pointnow/web/internal/models"
	"github.com/pointnow/web/internal/pointnow"
)

// respondAPIError maps a backend client error onto the response. Network
// failures (status 0) become 502 so the browser can distinguish "server said
// no" from "could not reach server"; application errors pass the backend's
// message and field errors through verbatim.
func respondAPIError(c *fiber.Ctx, err error) error {
	var apiErr *pointnow.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	status := apiErr.Status
	message := apiErr.Message
	if status == 0 {
		status = fiber.StatusBadGateway
		message = "could not reach the PointNow service, please try again"
	}

	payload := fiber.Map{"success": false, "message": message}
	if len(apiErr.Errors) > 0 {
		payload["errors"] = apiErr.Errors
	}
	return c.Status(status).JSON(payload)
}

// validationError is the client-side rejection shape: same envelope as a
// backend field-error response, produced before any network call is spent.
func validationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "validation failed",
		"errors":  fieldErrors,
	})
}

// sessionClient binds the base client to the request's session tokens, when
// a session exists. Public endpoints call the backend unauthenticated.
func sessionClient(c *fiber.Ctx, base *pointnow.Client) *pointnow.Client {
	if store, ok := middleware.CurrentSession(c); ok {
		return base.WithTokens(store)
	}
	return base
}

// operatorContext pulls the authenticated operator and their business id.
// Routes behind RequireOperator always have both.
func operatorContext(c *fiber.Ctx) (*models.AuthUser, string, error) {
	store, ok := middleware.CurrentSession(c)
	if !ok || !store.Authenticated() {
		return nil, "", fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	user := store.User()
	if user == nil || user.BusinessID == "" {
		return nil, "", fiber.NewError(fiber.StatusForbidden, "no business attached to this account")
	}
	return user, user.BusinessID, nil
}
