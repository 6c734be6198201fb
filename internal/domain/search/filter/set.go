package filter

import (
	"cmp"
	"slices"
	"strings"
)

// Set is a hash set of facet values.
type Set[T comparable] map[T]struct{}

// NewSet builds a set from values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// NewStringSet builds a set of trimmed, non-blank strings.
func NewStringSet(values ...string) Set[string] {
	s := make(Set[string], len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			s[v] = struct{}{}
		}
	}
	return s
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values.
func (s Set[T]) Len() int { return len(s) }

// Intersects reports whether any of values is in the set.
func (s Set[T]) Intersects(values []T) bool {
	for _, v := range values {
		if s.Contains(v) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every member of other is in s.
func (s Set[T]) ContainsAll(other Set[T]) bool {
	if len(other) > len(s) {
		return false
	}
	for v := range other {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s Set[T]) Clone() Set[T] {
	c := make(Set[T], len(s))
	for v := range s {
		c[v] = struct{}{}
	}
	return c
}

// Sorted returns the members of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
