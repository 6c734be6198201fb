// Package order sorts catalog records by a closed set of named keys.
//
// Every key puts records with a blank or absent value after all records with a
// present value, in both directions, and every sort is stable.
package order

import (
	"fmt"
	"strings"
)

// Key names a sort order.
type Key string

// Sort keys.
const (
	// Name orders by display name, case-insensitively.
	Name Key = "name"
	// Code orders by item code, case-insensitively with digit runs compared
	// numerically ("EF-9" before "EF-10").
	Code Key = "code"
	// Manufacturer groups by compatibility class, then orders by manufacturer.
	Manufacturer Key = "manufacturer"
	// Quantity orders by on-hand quantity.
	Quantity Key = "quantity"
	// Type orders by item type, case-insensitively.
	Type Key = "type"
)

// Keys lists every supported key.
func Keys() []Key { return []Key{Name, Code, Manufacturer, Quantity, Type} }

// IsValid checks if the key is one of the supported values.
func (k Key) IsValid() bool {
	switch k {
	case Name, Code, Manufacturer, Quantity, Type:
		return true
	}
	return false
}

// ParseKey converts a user-supplied key. Empty input yields Name.
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Name, nil
	}
	k := Key(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid sort key: %q", s)
	}
	return k, nil
}

// Direction is the order applied to present values.
type Direction string

// Directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection converts a user-supplied direction. Empty input yields Ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("invalid sort direction: %q", s)
	}
}
