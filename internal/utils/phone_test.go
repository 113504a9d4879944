package utils

import (
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "local number with leading zero",
			input:    "0123456789",
			expected: "+60123456789",
		},
		{
			name:     "country code without plus",
			input:    "60123456789",
			expected: "+60123456789",
		},
		{
			name:     "already canonical",
			input:    "+60123456789",
			expected: "+60123456789",
		},
		{
			name:     "foreign country code unchanged",
			input:    "+1234567890",
			expected: "+1234567890",
		},
		{
			name:     "bare digits without recognizable prefix",
			input:    "123456789",
			expected: "123456789",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  0123456789 ",
			expected: "+60123456789",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizePhone(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizePhone(%q) = %q; want %q", tt.input, result, tt.expected)
			}

			// Total and idempotent: a second pass must be a no-op.
			if again := NormalizePhone(result); again != result {
				t.Errorf("NormalizePhone not idempotent: %q -> %q -> %q", tt.input, result, again)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name@example.com", "x+y@sub.domain.my"}
	invalid := []string{"", "plain", "missing@tld", "@no-local.com", "two words@x.com"}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false; want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true; want false", email)
		}
	}
}
