package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a lower-cased, syntactically valid address.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	normalized := strings.TrimSpace(strings.ToLower(value))

	if normalized == "" {
		return Email{}, fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > 255 {
		return Email{}, fmt.Errorf("email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(normalized) {
		return Email{}, fmt.Errorf("invalid email format: %s", value)
	}

	return Email{value: normalized}, nil
}

func (e Email) String() string {
	return e.value
}
