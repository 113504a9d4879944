package utils

import "strings"

// NormalizePhone canonicalizes a raw phone input to the +60 form the backend
// expects from live forms. The country code is a product-level assumption.
// Total and idempotent: any input yields some string, and normalizing twice
// equals normalizing once. Non-Malaysian prefixes pass through unchanged.
//
// This is deliberately distinct from the import-path rule, which strips a
// leading + and submits digits-first numbers; the two must not be unified.
func NormalizePhone(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "+60") {
		return s
	}

	stripped := strings.TrimPrefix(s, "+")
	if strings.HasPrefix(stripped, "60") {
		return "+" + stripped
	}
	if strings.HasPrefix(stripped, "0") {
		return "+60" + stripped[1:]
	}
	if strings.HasPrefix(s, "+") {
		return s
	}
	return s
}
