package pointnow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pointnow/web/internal/models"
)

// CustomersMeta is the pagination block on customer listings. This resource
// spells the previous-page flag has_previous; do not normalize it to match
// other resources.
type CustomersMeta struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// CustomerList is a page of customers plus its pagination block.
type CustomerList struct {
	Customers []models.Customer `json:"customers"`
	Meta      CustomersMeta     `json:"meta"`
}

// ListCustomersParams filters the customer listing. Zero-valued fields are
// omitted from the query string entirely.
type ListCustomersParams struct {
	BusinessID string
	Page       int
	Limit      int
	Search     string
}

// ListCustomers returns one page of a business's customers.
func (c *Client) ListCustomers(ctx context.Context, params ListCustomersParams) (*CustomerList, error) {
	q := url.Values{}
	setIfPresent(q, "business_id", params.BusinessID)
	setIfPositive(q, "page", params.Page)
	setIfPositive(q, "limit", params.Limit)
	setIfPresent(q, "search", params.Search)

	var resp struct {
		Data []models.Customer `json:"data"`
		Meta CustomersMeta     `json:"meta"`
	}
	if err := c.do(ctx, http.MethodGet, "/customers", q, nil, &resp); err != nil {
		return nil, err
	}
	return &CustomerList{Customers: resp.Data, Meta: resp.Meta}, nil
}

// GetCustomer fetches one customer by id.
func (c *Client) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	var resp struct {
		Data models.Customer `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/customers/"+id, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateCustomerParams is the customer creation payload.
type CreateCustomerParams struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	BusinessID  string `json:"business_id"`
}

// CreateCustomer registers a new customer for a business.
func (c *Client) CreateCustomer(ctx context.Context, params CreateCustomerParams) (*models.Customer, error) {
	var resp struct {
		Data models.Customer `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/customers", nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateCustomer patches an existing customer.
func (c *Client) UpdateCustomer(ctx context.Context, id string, params CreateCustomerParams) (*models.Customer, error) {
	var resp struct {
		Data models.Customer `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/customers/"+id, nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteCustomer removes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+id, nil, nil, nil)
}

// LeaderboardParams optionally windows the leaderboard. An absent window
// means all-time.
type LeaderboardParams struct {
	StartDate string
	EndDate   string
	Limit     int
}

// Leaderboard returns the public point ranking.
func (c *Client) Leaderboard(ctx context.Context, params LeaderboardParams) ([]models.Customer, error) {
	q := url.Values{}
	setIfPresent(q, "start_date", params.StartDate)
	setIfPresent(q, "end_date", params.EndDate)
	setIfPositive(q, "limit", params.Limit)

	var resp struct {
		Data []models.Customer `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/customers/leaderboard", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CustomerPosition is a customer's leaderboard standing.
type CustomerPosition struct {
	CustomerID string `json:"customer_id"`
	Position   int    `json:"position"`
	Total      int    `json:"total"`
}

// Position returns a customer's rank on the leaderboard.
func (c *Client) Position(ctx context.Context, customerID string) (*CustomerPosition, error) {
	var resp struct {
		Data CustomerPosition `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/customers/"+customerID+"/position", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UserProfile returns the customer profile linked to a user account.
func (c *Client) UserProfile(ctx context.Context, userID string) (*models.Customer, error) {
	q := url.Values{}
	q.Set("user_id", userID)

	var resp struct {
		Data models.Customer `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/customers/profile", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// AddPointsParams credits points to a customer at a branch.
type AddPointsParams struct {
	CustomerID string `json:"customer_id"`
	BusinessID string `json:"business_id"`
	StaffID    string `json:"staff_id,omitempty"`
	BranchID   string `json:"branch_id,omitempty"`
	Points     int    `json:"points"`
	Note       string `json:"note,omitempty"`
}

// AddPoints records a point-earning visit.
func (c *Client) AddPoints(ctx context.Context, params AddPointsParams) (*models.Transaction, error) {
	var resp struct {
		Data models.Transaction `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/customers/points", nil, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// BulkCreateResult reports how many imported rows the backend accepted.
type BulkCreateResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// BulkCreateCustomers uploads a validated import batch.
func (c *Client) BulkCreateCustomers(ctx context.Context, customers []models.ParsedCustomer) (*BulkCreateResult, error) {
	body := map[string]any{"customers": customers}
	var resp struct {
		Data BulkCreateResult `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/customers/bulk", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
