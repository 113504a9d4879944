package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pointnow/web/internal/pointnow"
	"github.com/pointnow/web/internal/utils"
)

// BlastHandler serves the dashboard's SMS blast screen.
type BlastHandler struct {
	api *pointnow.Client
}

// NewBlastHandler constructs BlastHandler.
func NewBlastHandler(api *pointnow.Client) *BlastHandler {
	return &BlastHandler{api: api}
}

// Wallet returns the business's SMS-credit balance with rate detail.
func (h *BlastHandler) Wallet(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	caches, err := sessionClient(c, h.api).UsageCaches(c.Context(), pointnow.UsageCachesParams{
		BusinessID:     businessID,
		WithConfigType: true,
	})
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": caches})
}

type blastRequest struct {
	Message      string   `json:"message"`
	PhoneNumbers []string `json:"phone_numbers"`
}

// Send dispatches a bulk SMS. The wallet is checked against the rate table
// before spending a provider call; the backend performs the authoritative
// debit and returns the updated wallet alongside the provider response.
func (h *BlastHandler) Send(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	var req blastRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fieldErrors := map[string][]string{}
	if strings.TrimSpace(req.Message) == "" {
		fieldErrors["message"] = append(fieldErrors["message"], "message is required")
	}
	if len(req.PhoneNumbers) == 0 {
		fieldErrors["phone_numbers"] = append(fieldErrors["phone_numbers"], "at least one recipient is required")
	}
	if len(fieldErrors) > 0 {
		return validationError(c, fieldErrors)
	}

	numbers := make([]string, 0, len(req.PhoneNumbers))
	for _, raw := range req.PhoneNumbers {
		if n := utils.NormalizePhone(raw); n != "" {
			numbers = append(numbers, n)
		}
	}

	api := sessionClient(c, h.api)

	caches, err := api.UsageCaches(c.Context(), pointnow.UsageCachesParams{
		BusinessID:     businessID,
		WithConfigType: true,
	})
	if err != nil {
		return respondAPIError(c, err)
	}

	balance, rate := 0.0, 0.0
	for _, cache := range caches {
		if cache.ConfigType != nil && strings.EqualFold(cache.ConfigType.Name, "SMS") {
			balance = cache.Balance
			rate = cache.ConfigType.Charge
			break
		}
	}
	if rate > 0 && balance < rate*float64(len(numbers)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "insufficient SMS credit for this blast",
		})
	}

	result, err := api.SendBlast(c.Context(), req.Message, numbers, businessID)
	if err != nil {
		return respondAPIError(c, err)
	}

	if result.Provider.Failed > 0 {
		log.Printf("[Blast] business %s: %d of %d messages failed", businessID, result.Provider.Failed, len(numbers))
	}

	// The usage_cache/provider nesting mirrors the backend response; screens
	// read the two halves separately.
	return c.JSON(fiber.Map{"success": true, "data": result})
}
