package mode

import (
	"fmt"
	"strings"
)

// Mode is the text matching strategy.
type Mode string

// Search mode constants.
const (
	// Partial matches when any fragment contains the query.
	Partial Mode = "partial"
	// Exact is the strict preset; it shares the substring rule with Partial.
	Exact Mode = "exact"
	// Fuzzy compares whole fragments by edit distance.
	Fuzzy Mode = "fuzzy"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Partial || m == Exact || m == Fuzzy
}

// Parse converts a user-supplied mode. Empty input yields Partial.
func Parse(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Partial, nil
	}
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid search mode: %q", s)
	}
	return m, nil
}
