package models

import (
	"errors"
	"strings"
)

// BackendTokens is the opaque credential pair issued by the backend. The
// contents are never interpreted here; access_token is attached as a bearer
// credential and both halves are persisted for the session.
type BackendTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// AuthUser is the session projection of a logged-in user. Role flags and the
// business id are derived exactly once, when the session is created; nothing
// else may recompute or store them independently.
type AuthUser struct {
	User       User          `json:"user"`
	Tokens     BackendTokens `json:"tokens"`
	Roles      []string      `json:"roles"`
	BusinessID string        `json:"business_id,omitempty"`
	IsAdmin    bool          `json:"is_admin"`
	IsStaff    bool          `json:"is_staff"`
	IsCustomer bool          `json:"is_customer"`
}

// DeriveAuthUser computes the session projection from a raw user record and
// its token pair.
func DeriveAuthUser(user User, tokens BackendTokens) AuthUser {
	au := AuthUser{
		User:       user,
		Tokens:     tokens,
		Roles:      append([]string(nil), user.UserRoles...),
		IsAdmin:    user.HasRole(RoleAdmin) || user.Admin != nil,
		IsStaff:    user.HasRole(RoleStaff) || user.Staff != nil,
		IsCustomer: user.HasRole(RoleCustomer) || user.Customer != nil,
	}

	switch {
	case user.Admin != nil && user.Admin.BusinessID != "":
		au.BusinessID = user.Admin.BusinessID
	case user.Staff != nil && user.Staff.BusinessID != "":
		au.BusinessID = user.Staff.BusinessID
	}

	return au
}

// ErrIncompletePhoneUser is returned when the OTP login payload cannot be
// converted into a canonical user record.
var ErrIncompletePhoneUser = errors.New("phone user record missing id or phone number")

// CanonicalizePhoneUser fills the canonical User shape from the OTP login
// payload. Missing display names fall back to the email local part, then the
// phone number; the customer sub-record is synthesized and the role set is
// forced to CUSTOMER. An unconstructible record fails loudly rather than
// corrupting the session.
func CanonicalizePhoneUser(pu PhoneUser) (User, error) {
	if strings.TrimSpace(pu.ID) == "" || strings.TrimSpace(pu.PhoneNumber) == "" {
		return User{}, ErrIncompletePhoneUser
	}

	name := strings.TrimSpace(pu.Name)
	if name == "" && pu.Email != "" {
		if at := strings.Index(pu.Email, "@"); at > 0 {
			name = pu.Email[:at]
		}
	}
	if name == "" {
		name = pu.PhoneNumber
	}

	customerID := pu.CustomerID
	if customerID == "" {
		customerID = pu.ID
	}

	return User{
		ID:          pu.ID,
		Email:       pu.Email,
		Name:        name,
		PhoneNumber: pu.PhoneNumber,
		IsActive:    true,
		Customer:    &CustomerLink{ID: customerID},
		UserRoles:   []string{RoleCustomer},
	}, nil
}
