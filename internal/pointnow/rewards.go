package pointnow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pointnow/web/internal/models"
)

// RewardsByBusinessParams filters a business's reward catalogue. IsActive is
// a query parameter and therefore a string: "true", "false", or empty to
// omit the filter. Callers stringify booleans before calling.
type RewardsByBusinessParams struct {
	IsActive string
	Type     string
}

// RewardsByBusiness lists the reward catalogue of a business.
func (c *Client) RewardsByBusiness(ctx context.Context, businessID string, params RewardsByBusinessParams) ([]models.PointReward, error) {
	q := url.Values{}
	setIfPresent(q, "is_active", params.IsActive)
	setIfPresent(q, "type", params.Type)

	var resp struct {
		Data []models.PointReward `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/point_rewards/business/"+businessID, q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// RewardParams is the create/update payload for a reward.
type RewardParams struct {
	BusinessID  string `json:"business_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PointsCost  int    `json:"points_cost"`
	Type        string `json:"type"`
	IsActive    bool   `json:"is_active"`
}

// CreateReward adds a catalogue entry.
func (c *Client) CreateReward(ctx context.Context, params RewardParams) (*models.PointReward, error) {
	var resp struct {
		Data models.PointReward `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/point_rewards", nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateReward patches a catalogue entry.
func (c *Client) UpdateReward(ctx context.Context, id string, params RewardParams) (*models.PointReward, error) {
	var resp struct {
		Data models.PointReward `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/point_rewards/"+id, nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteReward removes a catalogue entry.
func (c *Client) DeleteReward(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/point_rewards/"+id, nil, nil, nil)
}
