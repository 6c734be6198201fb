package match

import (
	"testing"

	"github.com/kailas-cloud/glassdex/internal/domain/search/options"
	"github.com/kailas-cloud/glassdex/internal/domain/search/text"
)

type record []string

func (r record) SearchableText() []string { return r }

func frag(pos int, s string) text.Fragment { return text.Fragment{Position: pos, Text: s} }

func TestFragment_Partial(t *testing.T) {
	m := New("glass", options.Default())

	tests := []struct {
		name     string
		fragment string
		wantKind Kind
		start    int
		end      int
	}{
		{"full", "Glass", Full, 0, 5},
		{"substring", "Red Glass", Substring, 4, 9},
		{"miss", "Clear Steel", None, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := m.Fragment(frag(3, tt.fragment))
			if tt.wantKind == None {
				if ok {
					t.Fatalf("expected no match, got %+v", h)
				}
				return
			}
			if !ok {
				t.Fatal("expected match")
			}
			if h.Kind != tt.wantKind || h.Start != tt.start || h.End != tt.end || h.Position != 3 {
				t.Errorf("hit = %+v, want kind=%s span=[%d,%d) pos=3", h, tt.wantKind, tt.start, tt.end)
			}
		})
	}
}

func TestFragment_CaseSensitive(t *testing.T) {
	m := New("Glass", options.Default().WithCaseSensitive(true))
	if _, ok := m.Fragment(frag(0, "blue glass")); ok {
		t.Error("case-sensitive query matched different case")
	}
	if _, ok := m.Fragment(frag(0, "Blue Glass")); !ok {
		t.Error("case-sensitive query missed same case")
	}
}

func TestFragment_FuzzyIsWholeField(t *testing.T) {
	m := New("best", options.Default().WithFuzzyTolerance(1))

	if h, ok := m.Fragment(frag(0, "test")); !ok || h.Kind != Approximate {
		t.Errorf("expected approximate hit, got %+v ok=%v", h, ok)
	}
	// Contains "best" but the whole field is far away.
	if _, ok := m.Fragment(frag(0, "the best rod")); ok {
		t.Error("fuzzy mode must not use substring containment")
	}
	if h, ok := m.Fragment(frag(0, "BEST")); !ok || h.Kind != Full {
		t.Errorf("expected full hit after case folding, got %+v ok=%v", h, ok)
	}
}

func TestFragment_EmptyQuery(t *testing.T) {
	m := New("   ", options.Default())
	if !m.Empty() {
		t.Fatal("expected empty matcher")
	}
	if _, ok := m.Fragment(frag(0, "anything")); ok {
		t.Error("empty matcher should not match fragments")
	}
}

func TestHits_SkipsBlankFragments(t *testing.T) {
	m := New("rod", options.Default())
	hits := m.Hits(record{"", "Rod", "  ", "boro rod", "frit"})
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %+v", hits)
	}
	if hits[0].Position != 1 || hits[0].Kind != Full {
		t.Errorf("first hit = %+v", hits[0])
	}
	if hits[1].Position != 3 || hits[1].Kind != Substring {
		t.Errorf("second hit = %+v", hits[1])
	}
}

func TestAny(t *testing.T) {
	m := New("steel", options.Default())
	if !m.Any(record{"Clear Steel"}) {
		t.Error("expected match")
	}
	if m.Any(record{"Red Glass", ""}) {
		t.Error("unexpected match")
	}
}

func TestKindOrdering(t *testing.T) {
	if !(None < Approximate && Approximate < Substring && Substring < Full) {
		t.Error("kinds must be ordered worst to best")
	}
	if Full.String() != "full" || None.String() != "none" {
		t.Error("unexpected kind names")
	}
}
