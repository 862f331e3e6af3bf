// Package inputval holds small structural validators for values arriving
// from public forms. Validation here is purely syntactic; nothing consults
// the database.
package inputval

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether s is a plausible bare email address.
//
// It accepts RFC 5322 addr-spec forms, including single-label domains
// (user@localhost), which are useful in dev environments. It rejects
// display-name forms ("Name <user@example.com>") and addresses with
// leading, trailing, or consecutive dots in either part.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if hasBadDots(local) || hasBadDots(domain) {
		return false
	}
	return true
}

func hasBadDots(part string) bool {
	return strings.HasPrefix(part, ".") ||
		strings.HasSuffix(part, ".") ||
		strings.Contains(part, "..")
}

// ClampLimit normalizes a caller-supplied result limit: non-positive values
// fall back to def, and values above max are capped. The cap guards the
// public list endpoints against unbounded reads.
func ClampLimit(limit, def, max int64) int64 {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
