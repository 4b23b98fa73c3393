package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName is an operator's name in title case with single spaces.
type DisplayName struct {
	value string
}

func NewDisplayName(value string) (DisplayName, error) {
	parts := strings.Fields(value)
	if len(parts) == 0 {
		return DisplayName{}, fmt.Errorf("name cannot be empty")
	}

	caser := cases.Title(language.English)
	for i, part := range parts {
		parts[i] = caser.String(strings.ToLower(part))
	}
	normalized := strings.Join(parts, " ")

	if len(normalized) > 100 {
		return DisplayName{}, fmt.Errorf("name cannot exceed 100 characters")
	}
	return DisplayName{value: normalized}, nil
}

func (n DisplayName) String() string {
	return n.value
}

// Initials returns the upper-cased first letter of every word.
func (n DisplayName) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(n.value) {
		b.WriteString(strings.ToUpper(string([]rune(part)[:1])))
	}
	return b.String()
}
