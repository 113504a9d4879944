package models

// Business is a merchant/tenant operating a loyalty program.
type Business struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
	RegionID    string `json:"region_id,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Branch is a physical location of a business.
type Branch struct {
	ID          string `json:"id"`
	BusinessID  string `json:"business_id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// Staff is an employee attached to a business, optionally to a branch.
type Staff struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	BranchID   string `json:"branch_id,omitempty"`
	UserID     string `json:"user_id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// Region is a selectable operating region for registration.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}
