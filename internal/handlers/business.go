package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pointnow/web/internal/pointnow"
	"github.com/pointnow/web/internal/utils"
)

// BusinessHandler serves business settings, branches and staff management.
type BusinessHandler struct {
	api *pointnow.Client
}

// NewBusinessHandler constructs BusinessHandler.
func NewBusinessHandler(api *pointnow.Client) *BusinessHandler {
	return &BusinessHandler{api: api}
}

// Get returns the operator's business record.
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	business, err := sessionClient(c, h.api).GetBusiness(c.Context(), businessID)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": business})
}

// Update patches business settings. Admin only; staff may read but not edit.
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	user, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return fiber.NewError(fiber.StatusForbidden, "admin access required")
	}

	var req pointnow.UpdateBusinessParams
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.PhoneNumber != "" {
		req.PhoneNumber = utils.NormalizePhone(req.PhoneNumber)
	}

	business, err := sessionClient(c, h.api).UpdateBusiness(c.Context(), businessID, req)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": business})
}

// Stats returns the dashboard headline numbers.
func (h *BusinessHandler) Stats(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	stats, err := sessionClient(c, h.api).GetBusinessStats(c.Context(), businessID)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// Branches

func (h *BusinessHandler) ListBranches(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	branches, err := sessionClient(c, h.api).ListBranches(c.Context(), businessID)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": branches})
}

type branchRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

func (h *BusinessHandler) CreateBranch(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return validationError(c, map[string][]string{"name": {"name is required"}})
	}

	params := pointnow.BranchParams{
		BusinessID: businessID,
		Name:       strings.TrimSpace(req.Name),
		Address:    req.Address,
	}
	if req.PhoneNumber != "" {
		params.PhoneNumber = utils.NormalizePhone(req.PhoneNumber)
	}

	branch, err := sessionClient(c, h.api).CreateBranch(c.Context(), params)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": branch})
}

func (h *BusinessHandler) UpdateBranch(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return validationError(c, map[string][]string{"name": {"name is required"}})
	}

	params := pointnow.BranchParams{
		BusinessID: businessID,
		Name:       strings.TrimSpace(req.Name),
		Address:    req.Address,
	}
	if req.PhoneNumber != "" {
		params.PhoneNumber = utils.NormalizePhone(req.PhoneNumber)
	}

	branch, err := sessionClient(c, h.api).UpdateBranch(c.Context(), c.Params("id"), params)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": branch})
}

func (h *BusinessHandler) DeleteBranch(c *fiber.Ctx) error {
	if _, _, err := operatorContext(c); err != nil {
		return err
	}

	if err := sessionClient(c, h.api).DeleteBranch(c.Context(), c.Params("id")); err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Staff

func (h *BusinessHandler) ListStaff(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	staff, err := sessionClient(c, h.api).ListStaff(c.Context(), businessID)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": staff})
}

type staffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	BranchID string `json:"branch_id"`
}

func (h *BusinessHandler) CreateStaff(c *fiber.Ctx) error {
	user, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return fiber.NewError(fiber.StatusForbidden, "admin access required")
	}

	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fieldErrors := map[string][]string{}
	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = append(fieldErrors["name"], "name is required")
	}
	if !utils.IsValidEmail(req.Email) {
		fieldErrors["email"] = append(fieldErrors["email"], "invalid email format")
	}
	if len(req.Password) < 8 {
		fieldErrors["password"] = append(fieldErrors["password"], "password must be at least 8 characters")
	}
	if len(fieldErrors) > 0 {
		return validationError(c, fieldErrors)
	}

	staff, err := sessionClient(c, h.api).CreateStaff(c.Context(), pointnow.StaffParams{
		BusinessID: businessID,
		BranchID:   req.BranchID,
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": staff})
}

func (h *BusinessHandler) UpdateStaff(c *fiber.Ctx) error {
	user, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return fiber.NewError(fiber.StatusForbidden, "admin access required")
	}

	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	staff, err := sessionClient(c, h.api).UpdateStaff(c.Context(), c.Params("id"), pointnow.StaffParams{
		BusinessID: businessID,
		BranchID:   req.BranchID,
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
	})
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": staff})
}

func (h *BusinessHandler) DeleteStaff(c *fiber.Ctx) error {
	user, _, err := operatorContext(c)
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return fiber.NewError(fiber.StatusForbidden, "admin access required")
	}

	if err := sessionClient(c, h.api).DeleteStaff(c.Context(), c.Params("id")); err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
