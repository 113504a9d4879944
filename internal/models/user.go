package models

// Role names the backend attaches to a user account.
const (
	RoleAdmin    = "ADMIN"
	RoleStaff    = "STAFF"
	RoleUser     = "USER"
	RoleCustomer = "CUSTOMER"
)

// User is the backend's identity record as this tier sees it. The backend is
// authoritative; these values are never written back except through the API.
type User struct {
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	PhoneNumber string         `json:"phone_number"`
	IsActive    bool           `json:"is_active"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Admin       *AdminLink     `json:"admin,omitempty"`
	Staff       *StaffLink     `json:"staff,omitempty"`
	Customer    *CustomerLink  `json:"customer,omitempty"`
	UserRoles   []string       `json:"user_roles"`
}

// AdminLink ties a user to the business they administer.
type AdminLink struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
}

// StaffLink ties a user to the business employing them.
type StaffLink struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	BranchID   string `json:"branch_id,omitempty"`
}

// CustomerLink ties a user to their customer profile.
type CustomerLink struct {
	ID string `json:"id"`
}

// HasRole reports whether the given role name is present on the user.
func (u *User) HasRole(role string) bool {
	for _, r := range u.UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

// PhoneUser is the differently-shaped record returned by the OTP login path.
type PhoneUser struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	CustomerID  string `json:"customer_id,omitempty"`
}
