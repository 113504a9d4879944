package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pointnow/web/internal/pointnow"
)

// BillingHandler serves subscription state and plan checkout.
type BillingHandler struct {
	api *pointnow.Client
}

// NewBillingHandler constructs BillingHandler.
func NewBillingHandler(api *pointnow.Client) *BillingHandler {
	return &BillingHandler{api: api}
}

// Subscription returns the business's current plan.
func (h *BillingHandler) Subscription(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	sub, err := sessionClient(c, h.api).CurrentSubscription(c.Context(), businessID)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": sub})
}

type checkoutRequest struct {
	PlanID string `json:"plan_id"`
}

// Checkout starts a plan purchase and returns the hosted-payment redirect.
func (h *BillingHandler) Checkout(c *fiber.Ctx) error {
	user, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return fiber.NewError(fiber.StatusForbidden, "admin access required")
	}

	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.PlanID == "" {
		return validationError(c, map[string][]string{"plan_id": {"plan is required"}})
	}

	checkout, err := sessionClient(c, h.api).CreateCheckout(c.Context(), businessID, req.PlanID)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": checkout})
}

// CheckoutStatus polls a payment session.
func (h *BillingHandler) CheckoutStatus(c *fiber.Ctx) error {
	if _, _, err := operatorContext(c); err != nil {
		return err
	}

	checkout, err := sessionClient(c, h.api).CheckoutStatus(c.Context(), c.Params("id"))
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": checkout})
}
