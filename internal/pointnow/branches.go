package pointnow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pointnow/web/internal/models"
)

// ListBranches returns all branches of a business.
func (c *Client) ListBranches(ctx context.Context, businessID string) ([]models.Branch, error) {
	q := url.Values{}
	q.Set("business_id", businessID)

	var resp struct {
		Data []models.Branch `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/branches", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// BranchParams is the create/update payload for a branch.
type BranchParams struct {
	BusinessID  string `json:"business_id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// CreateBranch adds a location to a business.
func (c *Client) CreateBranch(ctx context.Context, params BranchParams) (*models.Branch, error) {
	var resp struct {
		Data models.Branch `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/branches", nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateBranch patches a branch.
func (c *Client) UpdateBranch(ctx context.Context, id string, params BranchParams) (*models.Branch, error) {
	var resp struct {
		Data models.Branch `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/branches/"+id, nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteBranch removes a branch.
func (c *Client) DeleteBranch(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/branches/"+id, nil, nil, nil)
}
