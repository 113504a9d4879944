package models

// Reward catalogue entry types.
const (
	RewardTypeVoucher     = "VOUCHER"
	RewardTypeCashback    = "CASHBACK"
	RewardTypePointExpiry = "POINT_EXPIRY"
	RewardTypeBonus       = "BONUS"
)

// Redemption lifecycle statuses.
const (
	RedemptionPending   = "PENDING"
	RedemptionCompleted = "COMPLETED"
	RedemptionFailed    = "FAILED"
)

// PointReward is a reward catalogue entry owned by a business.
type PointReward struct {
	ID          string `json:"id"`
	BusinessID  string `json:"business_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PointsCost  int    `json:"points_cost"`
	Type        string `json:"type"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// PointRewardRedemption records a customer exchanging points for a reward.
type PointRewardRedemption struct {
	ID            string       `json:"id"`
	PointRewardID string       `json:"point_reward_id"`
	CustomerID    string       `json:"customer_id"`
	StaffID       string       `json:"staff_id,omitempty"`
	BranchID      string       `json:"branch_id,omitempty"`
	Status        string       `json:"status"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     string       `json:"created_at,omitempty"`
	PointReward   *PointReward `json:"point_reward,omitempty"`
	Customer      *Customer    `json:"customer,omitempty"`
}
