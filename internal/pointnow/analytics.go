package pointnow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pointnow/web/internal/models"
)

// AnalyticsSummary is the aggregate block for the analytics screen.
type AnalyticsSummary struct {
	TotalCustomers   int     `json:"total_customers"`
	NewCustomers     int     `json:"new_customers"`
	PointsIssued     int     `json:"points_issued"`
	PointsRedeemed   int     `json:"points_redeemed"`
	RedemptionRate   float64 `json:"redemption_rate"`
	VisitsThisPeriod int     `json:"visits_this_period"`
}

// AnalyticsWindow bounds an analytics query. Absent bounds mean all-time.
type AnalyticsWindow struct {
	StartDate string
	EndDate   string
}

func (w AnalyticsWindow) query() url.Values {
	q := url.Values{}
	setIfPresent(q, "start_date", w.StartDate)
	setIfPresent(q, "end_date", w.EndDate)
	return q
}

// AnalyticsSummaryFor returns aggregate numbers for a business.
func (c *Client) AnalyticsSummaryFor(ctx context.Context, businessID string, window AnalyticsWindow) (*AnalyticsSummary, error) {
	q := window.query()
	q.Set("business_id", businessID)

	var resp struct {
		Data AnalyticsSummary `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/summary", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// TopCustomers returns the highest-earning customers for a business.
func (c *Client) TopCustomers(ctx context.Context, businessID string, limit int, window AnalyticsWindow) ([]models.Customer, error) {
	q := window.query()
	q.Set("business_id", businessID)
	setIfPositive(q, "limit", limit)

	var resp struct {
		Data []models.Customer `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/top_customers", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// HistoryPoint is one bucket of the historical series.
type HistoryPoint struct {
	Date           string `json:"date"`
	PointsIssued   int    `json:"points_issued"`
	PointsRedeemed int    `json:"points_redeemed"`
	Visits         int    `json:"visits"`
}

// History returns the historical series for a business at the given
// granularity ("day", "week" or "month").
func (c *Client) History(ctx context.Context, businessID, granularity string, window AnalyticsWindow) ([]HistoryPoint, error) {
	q := window.query()
	q.Set("business_id", businessID)
	setIfPresent(q, "granularity", granularity)

	var resp struct {
		Data []HistoryPoint `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/history", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
