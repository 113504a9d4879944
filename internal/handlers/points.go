package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pointnow/web/internal/models"
	"github.com/pointnow/web/internal/pointnow"
	"github.com/pointnow/web/internal/utils"
)

// PointsHandler serves the dashboard's point entry and redemption screen.
type PointsHandler struct {
	api *pointnow.Client
}

// NewPointsHandler constructs PointsHandler.
func NewPointsHandler(api *pointnow.Client) *PointsHandler {
	return &PointsHandler{api: api}
}

type addPointsRequest struct {
	CustomerID string `json:"customer_id"`
	BranchID   string `json:"branch_id"`
	Points     int    `json:"points"`
	Note       string `json:"note"`
}

// Add credits points to a customer.
func (h *PointsHandler) Add(c *fiber.Ctx) error {
	user, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	var req addPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fieldErrors := map[string][]string{}
	if req.CustomerID == "" {
		fieldErrors["customer_id"] = append(fieldErrors["customer_id"], "customer is required")
	}
	if req.Points <= 0 {
		fieldErrors["points"] = append(fieldErrors["points"], "points must be positive")
	}
	if len(fieldErrors) > 0 {
		return validationError(c, fieldErrors)
	}

	params := pointnow.AddPointsParams{
		CustomerID: req.CustomerID,
		BusinessID: businessID,
		BranchID:   req.BranchID,
		Points:     req.Points,
		Note:       req.Note,
	}
	if user.User.Staff != nil {
		params.StaffID = user.User.Staff.ID
	}

	txn, err := sessionClient(c, h.api).AddPoints(c.Context(), params)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": txn})
}

type redeemRequest struct {
	CustomerID    string `json:"customer_id"`
	PointRewardID string `json:"point_reward_id"`
	BranchID      string `json:"branch_id"`
}

// Redeem exchanges a customer's points for a reward. The balance gate runs
// here against the resolved per-business balance; the backend still enforces
// the debit authoritatively.
func (h *PointsHandler) Redeem(c *fiber.Ctx) error {
	user, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	var req redeemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.CustomerID == "" || req.PointRewardID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "customer and reward are required")
	}

	api := sessionClient(c, h.api)

	customer, err := api.GetCustomer(c.Context(), req.CustomerID)
	if err != nil {
		return respondAPIError(c, err)
	}

	rewards, err := api.RewardsByBusiness(c.Context(), businessID, pointnow.RewardsByBusinessParams{IsActive: "true"})
	if err != nil {
		return respondAPIError(c, err)
	}

	var reward *models.PointReward
	for i := range rewards {
		if rewards[i].ID == req.PointRewardID {
			reward = &rewards[i]
			break
		}
	}
	if reward == nil {
		return fiber.NewError(fiber.StatusNotFound, "reward not found or inactive")
	}

	if balance := customer.PointsForBusiness(businessID); balance < reward.PointsCost {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "insufficient points for this reward",
			"errors": map[string][]string{
				"point_reward_id": {"customer balance is below the reward cost"},
			},
		})
	}

	params := pointnow.CreateRedemptionParams{
		PointRewardID: req.PointRewardID,
		CustomerID:    req.CustomerID,
		BranchID:      req.BranchID,
	}
	if user.User.Staff != nil {
		params.StaffID = user.User.Staff.ID
	}

	redemption, err := api.CreateRedemption(c.Context(), params)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": redemption})
}

// Transactions lists the point ledger for the business.
func (h *PointsHandler) Transactions(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}
	p := utils.ParsePagination(c)

	list, err := sessionClient(c, h.api).ListTransactions(c.Context(), pointnow.ListTransactionsParams{
		BusinessID: businessID,
		CustomerID: c.Query("customer_id"),
		Page:       p.Page,
		Limit:      p.Limit,
	})
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": list.Transactions, "meta": list.Meta})
}
