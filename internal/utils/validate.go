package utils

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail checks the basic local@domain.tld shape. Real validation is
// the backend's job; this only catches obvious form mistakes before a
// request is spent on them.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
