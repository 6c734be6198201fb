package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/glassdex/internal/domain"
	"github.com/kailas-cloud/glassdex/internal/domain/search/filter"
	"github.com/kailas-cloud/glassdex/internal/domain/search/mode"
	"github.com/kailas-cloud/glassdex/internal/domain/search/order"
)

func intPtr(n int) *int { return &n }

func TestNew_Defaults(t *testing.T) {
	r, err := New(Params{Query: "  cobalt  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "cobalt" {
		t.Errorf("Query() = %q", r.Query())
	}
	if r.Mode() != mode.Partial {
		t.Errorf("Mode() = %q, want partial", r.Mode())
	}
	if r.SortKey() != order.Name || r.Direction() != order.Ascending {
		t.Errorf("sort = %q %q", r.SortKey(), r.Direction())
	}
	if r.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), DefaultLimit)
	}
	if !r.Stock().All() {
		t.Errorf("Stock() = %+v, want every band", r.Stock())
	}
	if r.Tags().Len() != 0 || r.Types().Len() != 0 || r.Classes().Len() != 0 {
		t.Error("expected empty facet selections")
	}
	if r.Ranked() {
		t.Error("Ranked() = true")
	}
}

func TestNew_EmptyQueryAllowed(t *testing.T) {
	r, err := New(Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "" {
		t.Errorf("Query() = %q", r.Query())
	}
}

func TestNew_ToleranceImpliesFuzzy(t *testing.T) {
	r, err := New(Params{Query: "amber", Tolerance: intPtr(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Mode() != mode.Fuzzy {
		t.Fatalf("Mode() = %q, want fuzzy", r.Mode())
	}
	if tol, _ := r.Options().FuzzyTolerance(); tol != 1 {
		t.Errorf("tolerance = %d, want 1", tol)
	}
}

func TestNew_FuzzyDefaultTolerance(t *testing.T) {
	r, err := New(Params{Query: "amber", Mode: mode.Fuzzy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tol, ok := r.Options().FuzzyTolerance(); !ok || tol != 2 {
		t.Errorf("tolerance = %d,%v, want 2,true", tol, ok)
	}
}

func TestNew_NegativeToleranceClamped(t *testing.T) {
	r, err := New(Params{Query: "amber", Mode: mode.Fuzzy, Tolerance: intPtr(-3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tol, _ := r.Options().FuzzyTolerance(); tol != 0 {
		t.Errorf("tolerance = %d, want 0", tol)
	}
}

func TestNew_ToleranceIgnoredOutsideFuzzy(t *testing.T) {
	r, err := New(Params{Query: "amber", Mode: mode.Exact, Tolerance: intPtr(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Mode() != mode.Exact {
		t.Errorf("Mode() = %q, want exact", r.Mode())
	}
}

func TestNew_TermsTrimmed(t *testing.T) {
	r, err := New(Params{Terms: []string{" red ", "", "glass"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(r.Terms(), ","); got != "red,glass" {
		t.Errorf("Terms() = %q", got)
	}
}

func TestNew_StockBands(t *testing.T) {
	r, err := New(Params{Stock: []string{"low", " sufficient "}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filter.Bands{Low: true, Sufficient: true}
	if r.Stock() != want {
		t.Errorf("Stock() = %+v, want %+v", r.Stock(), want)
	}
}

func TestNew_LimitClamped(t *testing.T) {
	r, err := New(Params{Limit: MaxLimit + 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != MaxLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), MaxLimit)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		substr string
	}{
		{"query too long", Params{Query: strings.Repeat("x", MaxQueryLength+1)}, "too long"},
		{"bad mode", Params{Mode: "semantic"}, "invalid search mode"},
		{"tolerance too large", Params{Mode: mode.Fuzzy, Tolerance: intPtr(MaxTolerance + 1)}, "tolerance"},
		{"bad sort key", Params{SortKey: "price"}, "sort key"},
		{"bad direction", Params{SortDirection: "up"}, "direction"},
		{"bad band", Params{Stock: []string{"plenty"}}, "stock band"},
		{"negative offset", Params{Offset: -1}, "offset"},
		{"zero weight", Params{FieldWeights: map[string]float64{"x": 0}}, "weight"},
		{"too many terms", Params{Terms: strings.Fields(strings.Repeat("t ", MaxTerms+1))}, "terms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.params)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidQuery) {
				t.Errorf("error %v does not wrap ErrInvalidQuery", err)
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error = %q, want substring %q", err, tt.substr)
			}
		})
	}
}
