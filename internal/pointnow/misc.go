package pointnow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pointnow/web/internal/models"
)

// ListConfigTypes returns the billable rate table (e.g. the SMS rate).
func (c *Client) ListConfigTypes(ctx context.Context) ([]models.ConfigType, error) {
	var resp struct {
		Data []models.ConfigType `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/config_types", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListRegions returns the selectable operating regions.
func (c *Client) ListRegions(ctx context.Context) ([]models.Region, error) {
	var resp struct {
		Data []models.Region `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/regions", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListPlans returns the subscription tiers shown on the landing page.
func (c *Client) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	var resp struct {
		Data []models.SubscriptionPlan `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/subscriptions/plans", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CurrentSubscription returns a business's active subscription.
func (c *Client) CurrentSubscription(ctx context.Context, businessID string) (*models.Subscription, error) {
	q := url.Values{}
	q.Set("business_id", businessID)

	var resp struct {
		Data models.Subscription `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/subscriptions/current", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CheckoutSession is a hosted-payment handoff created by the backend.
type CheckoutSession struct {
	ID          string `json:"id"`
	RedirectURL string `json:"redirect_url"`
	Status      string `json:"status"`
}

// CreateCheckout starts a plan purchase and returns the hosted-payment
// redirect.
func (c *Client) CreateCheckout(ctx context.Context, businessID, planID string) (*CheckoutSession, error) {
	body := map[string]string{"business_id": businessID, "plan_id": planID}
	var resp struct {
		Data CheckoutSession `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/payments/checkout", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CheckoutStatus polls a payment session.
func (c *Client) CheckoutStatus(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	var resp struct {
		Data CheckoutSession `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/payments/checkout/"+sessionID, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
