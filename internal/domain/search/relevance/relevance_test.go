package relevance

import (
	"testing"

	"github.com/kailas-cloud/glassdex/internal/domain/search/match"
)

func hit(kind match.Kind, pos int, text string) match.Hit {
	return match.Hit{Kind: kind, Position: pos, Text: text}
}

func TestScore_NoHitsIsZero(t *testing.T) {
	s := New(nil, false)
	if got := s.Score(nil); got != 0 {
		t.Errorf("Score(nil) = %f, want 0", got)
	}
}

func TestScore_FullBeatsSubstringOnSameFragment(t *testing.T) {
	s := New(nil, false)
	full := s.Score([]match.Hit{hit(match.Full, 2, "glass")})
	sub := s.Score([]match.Hit{hit(match.Substring, 2, "red glass")})
	approx := s.Score([]match.Hit{hit(match.Approximate, 2, "glas")})

	if !(full > sub) {
		t.Errorf("full %f should be > substring %f", full, sub)
	}
	if !(sub > approx) {
		t.Errorf("substring %f should be > approximate %f", sub, approx)
	}
}

func TestScore_EarlierFieldWins(t *testing.T) {
	s := New(nil, false)
	for _, kind := range []match.Kind{match.Full, match.Substring, match.Approximate} {
		early := s.Score([]match.Hit{hit(kind, 0, "x")})
		late := s.Score([]match.Hit{hit(kind, 5, "x")})
		if !(early >= late) {
			t.Errorf("%s: early %f should be >= late %f", kind, early, late)
		}
	}
}

func TestScore_MoreFragmentsOutrankFewer(t *testing.T) {
	s := New(nil, false)

	// Best possible single hit vs. two weak late hits.
	single := s.Score([]match.Hit{hit(match.Full, 0, "glass")})
	double := s.Score([]match.Hit{
		hit(match.Approximate, 40, "glas"),
		hit(match.Approximate, 41, "glas"),
	})
	if !(double >= single) {
		t.Errorf("two hits %f should be >= one hit %f", double, single)
	}

	// Best possible two hits vs. weak three hits.
	two := s.Score([]match.Hit{hit(match.Full, 0, "a"), hit(match.Full, 1, "b")})
	three := s.Score([]match.Hit{
		hit(match.Approximate, 10, "c"),
		hit(match.Approximate, 11, "d"),
		hit(match.Approximate, 12, "e"),
	})
	if !(three >= two) {
		t.Errorf("three hits %f should be >= two hits %f", three, two)
	}
}

func TestScore_FieldWeights(t *testing.T) {
	s := New(map[string]float64{"Effetre": 3, "ignored": 0, "negative": -1}, false)

	boosted := s.Contribution(hit(match.Full, 3, "EFFETRE"))
	plain := s.Contribution(hit(match.Full, 3, "Bullseye"))
	if boosted != 3*plain {
		t.Errorf("boosted = %f, want 3 * %f", boosted, plain)
	}

	zero := s.Contribution(hit(match.Full, 3, "ignored"))
	if zero != plain {
		t.Errorf("non-positive weight should be ignored: got %f, want %f", zero, plain)
	}
	neg := s.Contribution(hit(match.Full, 3, "negative"))
	if neg != plain {
		t.Errorf("negative weight should be ignored: got %f, want %f", neg, plain)
	}
}

func TestScore_CaseSensitiveWeights(t *testing.T) {
	s := New(map[string]float64{"Effetre": 2}, true)
	if s.Contribution(hit(match.Full, 0, "effetre")) != s.Contribution(hit(match.Full, 0, "other")) {
		t.Error("case-sensitive weights must not match different case")
	}
	if s.Contribution(hit(match.Full, 0, "Effetre")) <= s.Contribution(hit(match.Full, 0, "other")) {
		t.Error("case-sensitive weight should apply to same case")
	}
}

func TestScore_NonNegative(t *testing.T) {
	s := New(nil, false)
	got := s.Score([]match.Hit{hit(match.None, 0, "x"), hit(match.Substring, -2, "y")})
	if got < 0 {
		t.Errorf("score %f must be non-negative", got)
	}
}
