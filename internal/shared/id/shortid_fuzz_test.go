package id

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzParsePrefixedID(f *testing.F) {
	for _, seed := range []string{
		"ctn_xK9mP2vL3nQ",
		"dl_abc123",
		"asg_",
		"_leading",
		"nounderscore",
		"multiple_under_scores",
		"",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			return
		}
		prefix, shortID, err := ParsePrefixedID(input)
		if err != nil {
			return
		}
		if prefix == "" || shortID == "" {
			t.Fatalf("accepted empty part for %q", input)
		}
		if prefix+"_"+shortID != input {
			t.Fatalf("round trip mismatch for %q", input)
		}
		if strings.Contains(prefix, "_") {
			t.Fatalf("prefix %q contains separator", prefix)
		}
	})
}
