package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pointnow/web/internal/config"
	"github.com/pointnow/web/internal/middleware"
	"github.com/pointnow/web/internal/models"
	"github.com/pointnow/web/internal/pointnow"
	"github.com/pointnow/web/internal/session"
	"github.com/pointnow/web/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	api      *pointnow.Client
	sessions *session.Manager
	cfg      *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(api *pointnow.Client, sessions *session.Manager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions, cfg: cfg}
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	PhoneNumber     string `json:"phone_number"`
	BusinessName    string `json:"business_name"`
	RegionID        string `json:"region_id"`
}

// Register creates an account on the backend and opens a session.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fieldErrors := map[string][]string{}
	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = append(fieldErrors["name"], "name is required")
	}
	if req.Email == "" {
		fieldErrors["email"] = append(fieldErrors["email"], "email is required")
	} else if !utils.IsValidEmail(req.Email) {
		fieldErrors["email"] = append(fieldErrors["email"], "invalid email format")
	}
	if len(req.Password) < 8 {
		fieldErrors["password"] = append(fieldErrors["password"], "password must be at least 8 characters")
	}
	if req.Password != req.ConfirmPassword {
		fieldErrors["confirm_password"] = append(fieldErrors["confirm_password"], "passwords do not match")
	}
	if len(fieldErrors) > 0 {
		return validationError(c, fieldErrors)
	}

	params := pointnow.RegisterParams{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		Password:     req.Password,
		BusinessName: strings.TrimSpace(req.BusinessName),
		RegionID:     req.RegionID,
	}
	if req.PhoneNumber != "" {
		params.PhoneNumber = utils.NormalizePhone(req.PhoneNumber)
	}

	result, err := h.api.Register(c.Context(), params)
	if err != nil {
		return respondAPIError(c, err)
	}

	return h.openSession(c, fiber.StatusCreated, result.User, result.BackendTokens)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with email and password.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fieldErrors := map[string][]string{}
	if req.Email == "" {
		fieldErrors["email"] = append(fieldErrors["email"], "email is required")
	} else if !utils.IsValidEmail(req.Email) {
		fieldErrors["email"] = append(fieldErrors["email"], "invalid email format")
	}
	if req.Password == "" {
		fieldErrors["password"] = append(fieldErrors["password"], "password is required")
	}
	if len(fieldErrors) > 0 {
		return validationError(c, fieldErrors)
	}

	result, err := h.api.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondAPIError(c, err)
	}

	return h.openSession(c, fiber.StatusOK, result.User, result.BackendTokens)
}

type phoneRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// RequestOTP starts the phone login flow.
func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var req phoneRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		return validationError(c, map[string][]string{"phone_number": {"phone number is required"}})
	}

	phone := utils.NormalizePhone(req.PhoneNumber)
	if err := h.api.RequestOTP(c.Context(), phone); err != nil {
		return respondAPIError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "verification code sent"})
}

type phoneVerifyRequest struct {
	PhoneNumber string `json:"phone_number"`
	Code        string `json:"code"`
}

// VerifyOTP completes the phone login flow.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req phoneVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	fieldErrors := map[string][]string{}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		fieldErrors["phone_number"] = append(fieldErrors["phone_number"], "phone number is required")
	}
	if strings.TrimSpace(req.Code) == "" {
		fieldErrors["code"] = append(fieldErrors["code"], "code is required")
	}
	if len(fieldErrors) > 0 {
		return validationError(c, fieldErrors)
	}

	phone := utils.NormalizePhone(req.PhoneNumber)
	result, err := h.api.VerifyOTP(c.Context(), phone, req.Code)
	if err != nil {
		return respondAPIError(c, err)
	}

	sid := h.sessions.NewSessionID()
	store, err := h.sessions.Store(c.Context(), sid.String())
	if err != nil {
		return err
	}
	if err := store.SetAuthFromPhone(c.Context(), result.User, result.AccessToken, result.RefreshToken); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "login response was incomplete")
	}

	if err := h.setSessionCookie(c, sid); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": store.User()})
}

// Logout revokes the backend session best-effort and always clears the local
// one.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if store, ok := middleware.CurrentSession(c); ok {
		// Backend revocation is best-effort; local logout must not block on it.
		_ = h.api.WithTokens(store).Logout(c.Context())
		if err := store.ClearAuth(c.Context()); err != nil {
			return err
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"success": true})
}

// Me returns the current session projection.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	store, ok := middleware.CurrentSession(c)
	if !ok || !store.Authenticated() {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return c.JSON(fiber.Map{"success": true, "data": store.User()})
}

func (h *AuthHandler) openSession(c *fiber.Ctx, status int, user models.User, tokens models.BackendTokens) error {
	sid := h.sessions.NewSessionID()
	store, err := h.sessions.Store(c.Context(), sid.String())
	if err != nil {
		return err
	}
	if err := store.SetAuth(c.Context(), user, tokens); err != nil {
		return err
	}

	if err := h.setSessionCookie(c, sid); err != nil {
		return err
	}
	return c.Status(status).JSON(fiber.Map{"success": true, "data": store.User()})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, sid uuid.UUID) error {
	token, err := utils.GenerateSessionToken(h.cfg.JWTSecret, sid, h.cfg.SessionTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return nil
}
