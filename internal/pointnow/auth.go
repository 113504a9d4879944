package pointnow

import (
	"context"
	"net/http"

	"github.com/pointnow/web/internal/models"
)

// LoginResult bundles the user record and token pair returned by the
// credential-based auth endpoints.
type LoginResult struct {
	User          models.User          `json:"user"`
	BackendTokens models.BackendTokens `json:"backend_tokens"`
}

type loginEnvelope struct {
	Message string      `json:"message"`
	Data    LoginResult `json:"data"`
}

// RegisterParams is the registration payload. BusinessName and RegionID are
// set only for operator sign-ups.
type RegisterParams struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
	RegionID     string `json:"region_id,omitempty"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Register creates an account and returns the same shape as Login.
func (c *Client) Register(ctx context.Context, params RegisterParams) (*LoginResult, error) {
	var resp loginEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// RequestOTP asks the backend to send a login code to the given phone.
func (c *Client) RequestOTP(ctx context.Context, phoneNumber string) error {
	body := map[string]string{"phone_number": phoneNumber}
	return c.do(ctx, http.MethodPost, "/auth/otp/request", nil, body, nil)
}

// PhoneLoginResult is the OTP verification response. The user record here is
// not the canonical User shape; the session store converts it.
type PhoneLoginResult struct {
	User         models.PhoneUser `json:"user"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
}

// VerifyOTP exchanges a phone number and code for tokens.
func (c *Client) VerifyOTP(ctx context.Context, phoneNumber, code string) (*PhoneLoginResult, error) {
	body := map[string]string{"phone_number": phoneNumber, "code": code}
	var resp struct {
		Data PhoneLoginResult `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/otp/verify", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Logout revokes the current session on the backend. Best-effort; a failed
// revocation still clears the local session at the call site.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
