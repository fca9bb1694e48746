// Package sanitize strips markup from user-supplied free text before it
// reaches the application layer. Ticket descriptions, comments and breakdown
// reports are rendered in a web frontend, so stored content must not carry
// HTML.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// The strict policy removes every HTML element and attribute.
// A bluemonday policy is safe for concurrent use once built.
var policy = bluemonday.StrictPolicy()

// Text removes HTML markup from input and trims surrounding whitespace.
func Text(input string) string {
	return strings.TrimSpace(policy.Sanitize(input))
}
