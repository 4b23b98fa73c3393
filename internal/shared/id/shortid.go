package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	DefaultLength = 12
)

// Stripe-style prefixes for externally visible identifiers.
const (
	PrefixCarton     = "ctn"
	PrefixDieline    = "dl"
	PrefixAssignment = "asg"
	PrefixUser       = "usr"
)

// Generate creates a cryptographically random Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewSID returns a new "prefix_xxxxxxxxxxxx" identifier.
func NewSID(prefix string) (string, error) {
	shortID, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + shortID, nil
}

// ParsePrefixedID splits "prefix_short" into its parts.
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	parts := strings.SplitN(prefixedID, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return parts[0], parts[1], nil
}

// ValidatePrefix checks that prefixedID is well formed and carries expectedPrefix.
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, _, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	return nil
}

func NewCartonID() (string, error) {
	return NewSID(PrefixCarton)
}

func NewDielineID() (string, error) {
	return NewSID(PrefixDieline)
}

func NewAssignmentID() (string, error) {
	return NewSID(PrefixAssignment)
}

func NewUserID() (string, error) {
	return NewSID(PrefixUser)
}
