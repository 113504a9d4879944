package models

// ConfigType is a named billable rate, e.g. the per-unit SMS charge.
type ConfigType struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Charge float64 `json:"charge"`
}

// UsageCache is the SMS/credit wallet balance record for a business,
// debited on message blasts. The Business and ConfigType embeds are present
// only when the corresponding expansion flag was requested.
type UsageCache struct {
	ID           string      `json:"id"`
	BusinessID   string      `json:"business_id"`
	ConfigTypeID string      `json:"config_type_id"`
	Balance      float64     `json:"balance"`
	UpdatedAt    string      `json:"updated_at,omitempty"`
	Business     *Business   `json:"business,omitempty"`
	ConfigType   *ConfigType `json:"config_type,omitempty"`
}

// Transaction is a point-ledger entry (earn or redemption debit).
type Transaction struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	CustomerID string    `json:"customer_id"`
	StaffID    string    `json:"staff_id,omitempty"`
	BranchID   string    `json:"branch_id,omitempty"`
	Points     int       `json:"points"`
	Type       string    `json:"type,omitempty"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  string    `json:"created_at,omitempty"`
	Customer   *Customer `json:"customer,omitempty"`
	Staff      *Staff    `json:"staff,omitempty"`
}

// SubscriptionPlan is a purchasable tier shown on the landing page.
type SubscriptionPlan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	Currency   string   `json:"currency,omitempty"`
	SMSCredits int      `json:"sms_credits,omitempty"`
	Features   []string `json:"features,omitempty"`
}

// Subscription is a business's current plan state.
type Subscription struct {
	ID         string            `json:"id"`
	BusinessID string            `json:"business_id"`
	PlanID     string            `json:"plan_id"`
	Status     string            `json:"status"`
	ExpiresAt  string            `json:"expires_at,omitempty"`
	Plan       *SubscriptionPlan `json:"plan,omitempty"`
}
