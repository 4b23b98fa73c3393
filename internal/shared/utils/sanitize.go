package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeName strips markup from a free-text label and collapses whitespace.
func SanitizeName(s string) string {
	cleaned := html.UnescapeString(strictPolicy.Sanitize(s))
	return strings.Join(strings.Fields(cleaned), " ")
}
