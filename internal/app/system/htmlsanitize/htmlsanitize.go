// Package htmlsanitize strips markup from free-text form fields before they
// are stored. Intake submissions come from anonymous visitors and their text
// is later rendered by admin tooling, so nothing beyond plain text survives.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML elements and attributes from s, returning the
// remaining text with surrounding whitespace trimmed.
func Strip(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(strict.Sanitize(s))
}
