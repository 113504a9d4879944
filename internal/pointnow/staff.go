package pointnow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pointnow/web/internal/models"
)

// ListStaff returns all staff of a business.
func (c *Client) ListStaff(ctx context.Context, businessID string) ([]models.Staff, error) {
	q := url.Values{}
	q.Set("business_id", businessID)

	var resp struct {
		Data []models.Staff `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/staff", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// StaffParams is the create/update payload for a staff member.
type StaffParams struct {
	BusinessID string `json:"business_id"`
	BranchID   string `json:"branch_id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password,omitempty"`
}

// CreateStaff registers a staff member.
func (c *Client) CreateStaff(ctx context.Context, params StaffParams) (*models.Staff, error) {
	var resp struct {
		Data models.Staff `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/staff", nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateStaff patches a staff member.
func (c *Client) UpdateStaff(ctx context.Context, id string, params StaffParams) (*models.Staff, error) {
	var resp struct {
		Data models.Staff `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/staff/"+id, nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteStaff removes a staff member.
func (c *Client) DeleteStaff(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/staff/"+id, nil, nil, nil)
}
