package models

// Customer is a customer record as returned by the backend. Point balances
// are per-business; the top-level total_points and legacy points fields only
// appear on some endpoints (leaderboard, search) and are resolved through
// PointsForBusiness rather than read directly.
type Customer struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email,omitempty"`
	PhoneNumber        string             `json:"phone_number,omitempty"`
	TotalPoints        *int               `json:"total_points,omitempty"`
	Points             *int               `json:"points,omitempty"`
	TotalVisits        int                `json:"total_visits,omitempty"`
	LastVisitAt        string             `json:"last_visit_at,omitempty"`
	CreatedAt          string             `json:"created_at,omitempty"`
	CustomerBusinesses []CustomerBusiness `json:"customer_businesses,omitempty"`
}

// CustomerBusiness is the per-business point/visit ledger entry.
type CustomerBusiness struct {
	ID          string `json:"id"`
	BusinessID  string `json:"business_id"`
	TotalPoints int    `json:"total_points"`
	TotalVisits int    `json:"total_visits"`
	LastVisitAt string `json:"last_visit_at,omitempty"`
}

// PointsForBusiness resolves the customer's balance for one business. The
// fallback order is fixed: the matching customer_businesses entry wins, then
// the top-level total_points, then the legacy points field, then zero. Every
// place that displays a balance or gates an action on one must go through
// this resolver.
func (c *Customer) PointsForBusiness(businessID string) int {
	for _, cb := range c.CustomerBusinesses {
		if cb.BusinessID == businessID {
			return cb.TotalPoints
		}
	}
	if c.TotalPoints != nil {
		return *c.TotalPoints
	}
	if c.Points != nil {
		return *c.Points
	}
	return 0
}

// ParsedCustomer is the transient row produced by a spreadsheet import. A row
// is valid only when name, email and phone are all present.
type ParsedCustomer struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	BusinessID  string `json:"business_id"`
}
