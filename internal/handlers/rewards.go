package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pointnow/web/internal/models"
	"github.com/pointnow/web/internal/pointnow"
	"github.com/pointnow/web/internal/utils"
)

// RewardsHandler serves the dashboard's reward management screen.
type RewardsHandler struct {
	api *pointnow.Client
}

// NewRewardsHandler constructs RewardsHandler.
func NewRewardsHandler(api *pointnow.Client) *RewardsHandler {
	return &RewardsHandler{api: api}
}

// List returns the business's reward catalogue. The is_active filter passes
// through as the stringly query parameter the backend expects.
func (h *RewardsHandler) List(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	rewards, err := sessionClient(c, h.api).RewardsByBusiness(c.Context(), businessID, pointnow.RewardsByBusinessParams{
		IsActive: c.Query("is_active"),
		Type:     c.Query("type"),
	})
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": rewards})
}

type rewardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PointsCost  int    `json:"points_cost"`
	Type        string `json:"type"`
	IsActive    *bool  `json:"is_active"`
}

var rewardTypes = map[string]bool{
	models.RewardTypeVoucher:     true,
	models.RewardTypeCashback:    true,
	models.RewardTypePointExpiry: true,
	models.RewardTypeBonus:       true,
}

func (r *rewardRequest) validate() map[string][]string {
	fieldErrors := map[string][]string{}
	if strings.TrimSpace(r.Name) == "" {
		fieldErrors["name"] = append(fieldErrors["name"], "name is required")
	}
	if r.PointsCost <= 0 {
		fieldErrors["points_cost"] = append(fieldErrors["points_cost"], "points cost must be positive")
	}
	if !rewardTypes[r.Type] {
		fieldErrors["type"] = append(fieldErrors["type"], "unknown reward type")
	}
	if len(fieldErrors) > 0 {
		return fieldErrors
	}
	return nil
}

func (r *rewardRequest) params(businessID string) pointnow.RewardParams {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return pointnow.RewardParams{
		BusinessID:  businessID,
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		PointsCost:  r.PointsCost,
		Type:        r.Type,
		IsActive:    active,
	}
}

// Create adds a reward to the catalogue.
func (h *RewardsHandler) Create(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	var req rewardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		return validationError(c, fieldErrors)
	}

	reward, err := sessionClient(c, h.api).CreateReward(c.Context(), req.params(businessID))
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": reward})
}

// Update patches a reward.
func (h *RewardsHandler) Update(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	var req rewardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		return validationError(c, fieldErrors)
	}

	reward, err := sessionClient(c, h.api).UpdateReward(c.Context(), c.Params("id"), req.params(businessID))
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": reward})
}

// Delete removes a reward.
func (h *RewardsHandler) Delete(c *fiber.Ctx) error {
	if _, _, err := operatorContext(c); err != nil {
		return err
	}

	if err := sessionClient(c, h.api).DeleteReward(c.Context(), c.Params("id")); err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Redemptions lists the redemption ledger, optionally filtered by status.
func (h *RewardsHandler) Redemptions(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}
	p := utils.ParsePagination(c)

	redemptions, err := sessionClient(c, h.api).ListRedemptions(c.Context(), pointnow.ListRedemptionsParams{
		BusinessID: businessID,
		Status:     c.Query("status"),
		Page:       p.Page,
		Limit:      p.Limit,
	})
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": redemptions})
}

type redemptionStatusRequest struct {
	Status string `json:"status"`
}

var redemptionStatuses = map[string]bool{
	models.RedemptionPending:   true,
	models.RedemptionCompleted: true,
	models.RedemptionFailed:    true,
}

// UpdateRedemptionStatus moves a redemption through its lifecycle.
func (h *RewardsHandler) UpdateRedemptionStatus(c *fiber.Ctx) error {
	if _, _, err := operatorContext(c); err != nil {
		return err
	}

	var req redemptionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !redemptionStatuses[req.Status] {
		return fiber.NewError(fiber.StatusBadRequest, "unknown redemption status")
	}

	redemption, err := sessionClient(c, h.api).UpdateRedemptionStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": redemption})
}
