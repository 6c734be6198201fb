package result

import (
	"testing"

	"github.com/kailas-cloud/glassdex/internal/domain/search/match"
)

func TestNew_Accessors(t *testing.T) {
	hl := []Highlight{{Position: 1, Start: 0, End: 5}}
	w := New("EF-204", 1.5, hl)

	if w.Record() != "EF-204" {
		t.Errorf("Record() = %q", w.Record())
	}
	if w.Relevance() != 1.5 {
		t.Errorf("Relevance() = %f", w.Relevance())
	}
	if len(w.Highlights()) != 1 || w.Highlights()[0] != hl[0] {
		t.Errorf("Highlights() = %+v", w.Highlights())
	}
}

func TestNew_ClampsNegativeRelevance(t *testing.T) {
	if got := New(1, -0.3, nil).Relevance(); got != 0 {
		t.Errorf("Relevance() = %f, want 0", got)
	}
}

func TestHighlightsFromHits(t *testing.T) {
	if HighlightsFromHits(nil) != nil {
		t.Error("expected nil for no hits")
	}
	got := HighlightsFromHits([]match.Hit{
		{Kind: match.Substring, Position: 2, Text: "Red Glass", Start: 4, End: 9},
	})
	want := Highlight{Position: 2, Start: 4, End: 9}
	if len(got) != 1 || got[0] != want {
		t.Errorf("HighlightsFromHits = %+v, want [%+v]", got, want)
	}
}

func TestRecords_KeepsOrder(t *testing.T) {
	ws := []Weighted[string]{New("b", 3, nil), New("a", 2, nil), New("c", 1, nil)}
	got := Records(ws)
	if len(got) != 3 || got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Errorf("Records = %v", got)
	}
}
