package pointnow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pointnow/web/internal/models"
)

// CreateRedemptionParams identifies the reward, the customer spending the
// points, and the staff/branch attribution for the redemption ledger entry.
type CreateRedemptionParams struct {
	PointRewardID string `json:"point_reward_id"`
	CustomerID    string `json:"customer_id"`
	StaffID       string `json:"staff_id,omitempty"`
	BranchID      string `json:"branch_id,omitempty"`
}

// CreateRedemption exchanges a customer's points for a reward. The backend
// owns the balance debit; this call only requests it.
func (c *Client) CreateRedemption(ctx context.Context, params CreateRedemptionParams) (*models.PointRewardRedemption, error) {
	var resp struct {
		Data models.PointRewardRedemption `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/point_reward_redemptions", nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListRedemptionsParams filters the redemption ledger.
type ListRedemptionsParams struct {
	BusinessID string
	CustomerID string
	Status     string
	Page       int
	Limit      int
}

// ListRedemptions returns redemption ledger entries.
func (c *Client) ListRedemptions(ctx context.Context, params ListRedemptionsParams) ([]models.PointRewardRedemption, error) {
	q := url.Values{}
	setIfPresent(q, "business_id", params.BusinessID)
	setIfPresent(q, "customer_id", params.CustomerID)
	setIfPresent(q, "status", params.Status)
	setIfPositive(q, "page", params.Page)
	setIfPositive(q, "limit", params.Limit)

	var resp struct {
		Data []models.PointRewardRedemption `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/point_reward_redemptions", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateRedemptionStatus moves a redemption through its lifecycle.
func (c *Client) UpdateRedemptionStatus(ctx context.Context, id, status string) (*models.PointRewardRedemption, error) {
	body := map[string]string{"status": status}
	var resp struct {
		Data models.PointRewardRedemption `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/point_reward_redemptions/"+id+"/status", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
