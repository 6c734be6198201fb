package distance

import (
	"strings"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"test", "best", 1},
		{"test", "test", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"Effetre", "effetre", 1},
		{"cobalt", "cobolt", 1},
		{"ab", "ba", 2},
		{"naïve", "naive", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"->"+tt.b, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLevenshtein_HelloWorld(t *testing.T) {
	if got := Levenshtein("hello", "world"); got <= 3 {
		t.Errorf("Levenshtein(hello, world) = %d, want > 3", got)
	}
}

func TestLevenshtein_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "Clear Steel", "Double Helix Terra", strings.Repeat("x", 64)} {
		if got := Levenshtein(s, s); got != 0 {
			t.Errorf("Levenshtein(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestLevenshtein_EmptyIsLength(t *testing.T) {
	for _, s := range []string{"a", "glass", "Молоко"} {
		want := len([]rune(s))
		if got := Levenshtein("", s); got != want {
			t.Errorf("Levenshtein(\"\", %q) = %d, want %d", s, got, want)
		}
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	pairs := [][2]string{{"amber", "umber"}, {"rod", "frit"}, {"coe 104", "coe 96"}}
	for _, p := range pairs {
		if Levenshtein(p[0], p[1]) != Levenshtein(p[1], p[0]) {
			t.Errorf("Levenshtein not symmetric for %q/%q", p[0], p[1])
		}
	}
}

func TestWithin(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		tolerance int
		want      bool
	}{
		{"one edit within one", "test", "best", 1, true},
		{"length gap exceeds", "test", "completely", 2, false},
		{"zero tolerance equal", "rod", "rod", 0, true},
		{"zero tolerance differs", "rod", "rot", 0, false},
		{"negative clamps to zero", "rod", "rod", -3, true},
		{"negative clamps rejects edit", "rod", "rot", -1, false},
		{"two edits within two", "cobalt", "kobolt", 2, true},
		{"two edits within one", "cobalt", "kobolt", 1, false},
		{"both empty", "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Within(tt.a, tt.b, tt.tolerance); got != tt.want {
				t.Errorf("Within(%q, %q, %d) = %v, want %v", tt.a, tt.b, tt.tolerance, got, tt.want)
			}
		})
	}
}
