package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAuthUser(t *testing.T) {
	tokens := BackendTokens{AccessToken: "at", RefreshToken: "rt", ExpiresIn: 3600}

	t.Run("AdminBusinessWins", func(t *testing.T) {
		user := User{
			ID:        "u1",
			UserRoles: []string{RoleAdmin, RoleStaff},
			Admin:     &AdminLink{ID: "a1", BusinessID: "biz-admin"},
			Staff:     &StaffLink{ID: "s1", BusinessID: "biz-staff"},
		}

		au := DeriveAuthUser(user, tokens)
		assert.True(t, au.IsAdmin)
		assert.True(t, au.IsStaff)
		assert.False(t, au.IsCustomer)
		assert.Equal(t, "biz-admin", au.BusinessID)
		assert.Equal(t, tokens, au.Tokens)
	})

	t.Run("StaffBusinessWhenNoAdmin", func(t *testing.T) {
		user := User{
			ID:        "u2",
			UserRoles: []string{RoleStaff},
			Staff:     &StaffLink{ID: "s1", BusinessID: "biz-staff"},
		}

		au := DeriveAuthUser(user, tokens)
		assert.False(t, au.IsAdmin)
		assert.True(t, au.IsStaff)
		assert.Equal(t, "biz-staff", au.BusinessID)
	})

	t.Run("SubRecordImpliesFlagWithoutRole", func(t *testing.T) {
		user := User{ID: "u3", UserRoles: []string{RoleUser}, Customer: &CustomerLink{ID: "c1"}}

		au := DeriveAuthUser(user, tokens)
		assert.True(t, au.IsCustomer)
		assert.Empty(t, au.BusinessID)
	})
}

func TestCanonicalizePhoneUser(t *testing.T) {
	t.Run("FillsDefaults", func(t *testing.T) {
		user, err := CanonicalizePhoneUser(PhoneUser{
			ID:          "u1",
			PhoneNumber: "+60123456789",
			Email:       "jamie@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, "jamie", user.Name)
		assert.Equal(t, []string{RoleCustomer}, user.UserRoles)
		require.NotNil(t, user.Customer)
		assert.Equal(t, "u1", user.Customer.ID)
		assert.True(t, user.IsActive)
	})

	t.Run("PrefersExplicitCustomerID", func(t *testing.T) {
		user, err := CanonicalizePhoneUser(PhoneUser{ID: "u1", PhoneNumber: "+60123", CustomerID: "c9"})
		require.NoError(t, err)
		assert.Equal(t, "c9", user.Customer.ID)
		assert.Equal(t, "+60123", user.Name)
	})

	t.Run("MissingIDFailsLoudly", func(t *testing.T) {
		_, err := CanonicalizePhoneUser(PhoneUser{PhoneNumber: "+60123"})
		assert.ErrorIs(t, err, ErrIncompletePhoneUser)
	})

	t.Run("MissingPhoneFailsLoudly", func(t *testing.T) {
		_, err := CanonicalizePhoneUser(PhoneUser{ID: "u1"})
		assert.ErrorIs(t, err, ErrIncompletePhoneUser)
	})
}
