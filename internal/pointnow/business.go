package pointnow

import (
	"context"
	"net/http"

	"github.com/pointnow/web/internal/models"
)

// GetBusiness fetches a business record.
func (c *Client) GetBusiness(ctx context.Context, id string) (*models.Business, error) {
	var resp struct {
		Data models.Business `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/businesses/"+id, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateBusinessParams is the business settings payload.
type UpdateBusinessParams struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
	RegionID    string `json:"region_id,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}

// UpdateBusiness patches business settings.
func (c *Client) UpdateBusiness(ctx context.Context, id string, params UpdateBusinessParams) (*models.Business, error) {
	var resp struct {
		Data models.Business `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/businesses/"+id, nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// BusinessStats is the headline-number block on the dashboard.
type BusinessStats struct {
	TotalCustomers   int `json:"total_customers"`
	TotalPoints      int `json:"total_points"`
	TotalRedemptions int `json:"total_redemptions"`
	VisitsThisMonth  int `json:"visits_this_month"`
}

// GetBusinessStats returns dashboard headline numbers for a business.
func (c *Client) GetBusinessStats(ctx context.Context, id string) (*BusinessStats, error) {
	var resp struct {
		Data BusinessStats `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/businesses/"+id+"/stats", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
