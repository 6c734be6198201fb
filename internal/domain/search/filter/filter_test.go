package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type rec struct {
	id     string
	mfr    string
	class  string
	typ    string
	tags   []string
	qty    float64
	hasQty bool
}

func (r rec) Manufacturer() string      { return r.mfr }
func (r rec) Classification() string    { return r.class }
func (r rec) Type() string              { return r.typ }
func (r rec) Tags() []string            { return r.tags }
func (r rec) Quantity() (float64, bool) { return r.qty, r.hasQty }

type lookup map[string][]string

func (l lookup) ClassesOf(m string) []string { return l[m] }

func ids(rs []rec) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.id
	}
	return out
}

func catalog() []rec {
	return []rec{
		{id: "A", mfr: "EF", class: "104", typ: "rod", tags: []string{"opaque", "blue"}, qty: 12, hasQty: true},
		{id: "B", mfr: "BE", class: "90", typ: "frit", tags: []string{"transparent"}, qty: 3, hasQty: true},
		{id: "C", mfr: "GA", class: "33", typ: "rod", tags: []string{"reactive"}, qty: 0, hasQty: true},
		{id: "D", mfr: " ", class: "", typ: "", tags: nil},
	}
}

func TestEmptySelectionAsymmetry(t *testing.T) {
	items := catalog()

	if got := ByManufacturer(items, NewSet[string]()); len(got) != 0 {
		t.Errorf("empty enabled set must exclude everything, got %v", ids(got))
	}

	narrowing := map[string][]rec{
		"tags":           ByTags(items, NewSet[string]()),
		"classification": ByClassification(items, NewSet[string](), nil, nil),
		"types":          ByTypes(items, NewSet[string]()),
	}
	for name, got := range narrowing {
		if diff := cmp.Diff(ids(items), ids(got)); diff != "" {
			t.Errorf("empty %s selection must pass everything (-want +got):\n%s", name, diff)
		}
	}
}

func TestByManufacturer(t *testing.T) {
	got := ByManufacturer(catalog(), NewStringSet("EF", "GA", " "))
	if diff := cmp.Diff([]string{"A", "C"}, ids(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestByManufacturer_BlankNeverPasses(t *testing.T) {
	enabled := NewSet("", " ", "EF")
	got := ByManufacturer([]rec{{id: "x", mfr: " "}, {id: "y", mfr: ""}}, enabled)
	if len(got) != 0 {
		t.Errorf("blank manufacturer passed: %v", ids(got))
	}
}

func TestByManufacturer_EmptyCatalog(t *testing.T) {
	if got := ByManufacturer([]rec{}, NewSet("EF")); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestByTags(t *testing.T) {
	got := ByTags(catalog(), NewSet("blue", "reactive"))
	if diff := cmp.Diff([]string{"A", "C"}, ids(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestByTypes_ExcludesBlank(t *testing.T) {
	got := ByTypes(catalog(), NewSet("rod", ""))
	if diff := cmp.Diff([]string{"A", "C"}, ids(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestByClassification_UsesLookupWhenRecordHasNone(t *testing.T) {
	items := []rec{
		{id: "own", mfr: "EF", class: "104"},
		{id: "looked-up", mfr: "OC"},
		{id: "unknown", mfr: "ZZ"},
	}
	l := lookup{"OC": {"96"}, "EF": {"104"}}

	got := ByClassification(items, NewSet("96"), nil, l)
	if diff := cmp.Diff([]string{"looked-up"}, ids(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	got = ByClassification(items, NewSet("96", "104"), nil, nil)
	if diff := cmp.Diff([]string{"own"}, ids(got)); diff != "" {
		t.Errorf("nil lookup (-want +got):\n%s", diff)
	}
}

func TestByClassification_FullUniverseMatchesPlainFilter(t *testing.T) {
	items := catalog()
	universe := ClassUniverse(items, nil)
	if diff := cmp.Diff([]string{"104", "33", "90"}, Sorted(universe)); diff != "" {
		t.Fatalf("universe (-want +got):\n%s", diff)
	}

	got := ByClassification(items, NewSet("33", "90", "104"), universe, nil)
	plain := ByClassification(items, NewSet("33", "90", "104"), nil, nil)
	if diff := cmp.Diff(ids(plain), ids(got)); diff != "" {
		t.Errorf("full universe changed the result (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, ids(got)); diff != "" {
		t.Errorf("unclassified record must be dropped (-want +got):\n%s", diff)
	}

	partial := ByClassification(items, NewSet("33", "90"), universe, nil)
	if diff := cmp.Diff([]string{"B", "C"}, ids(partial)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestByClassification_SelectingMoreNeverAddsUnclassified(t *testing.T) {
	items := []rec{
		{id: "ef", mfr: "EF", class: "104"},
		{id: "odd", mfr: "ZZ", class: "81"},
		{id: "blank", mfr: "QQ"},
	}
	l := lookup{"EF": {"104"}}
	universe := ClassUniverse(items, l)

	three := ByClassification(items, NewSet("33", "90", "104"), universe, l)
	if diff := cmp.Diff([]string{"ef"}, ids(three)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	all := ByClassification(items, NewSet("33", "81", "90", "96", "104"), universe, l)
	if diff := cmp.Diff([]string{"ef", "odd"}, ids(all)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestStockThresholds(t *testing.T) {
	th := Thresholds{Low: 5}
	tests := []struct {
		qty  float64
		ok   bool
		want Band
	}{
		{0, false, Unavailable},
		{0, true, Unavailable},
		{-2, true, Unavailable},
		{0.5, true, Low},
		{5, true, Low},
		{5.01, true, Sufficient},
		{100, true, Sufficient},
	}
	for _, tt := range tests {
		if got := th.Classify(tt.qty, tt.ok); got != tt.want {
			t.Errorf("Classify(%v, %v) = %s, want %s", tt.qty, tt.ok, got, tt.want)
		}
	}
}

func TestByStock(t *testing.T) {
	items := catalog()
	th := DefaultThresholds()

	tests := []struct {
		name  string
		bands Bands
		want  []string
	}{
		{"all", AllBands(), []string{"A", "B", "C", "D"}},
		{"none", Bands{}, []string{}},
		{"unavailable", Bands{Unavailable: true}, []string{"C", "D"}},
		{"low", Bands{Low: true}, []string{"B"}},
		{"sufficient", Bands{Sufficient: true}, []string{"A"}},
		{"low+sufficient", Bands{Low: true, Sufficient: true}, []string{"A", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByStock(items, tt.bands, th)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBand(t *testing.T) {
	for in, want := range map[string]Band{"low": Low, " Sufficient ": Sufficient, "unavailable": Unavailable, "out": Unavailable} {
		got, err := ParseBand(in)
		if err != nil || got != want {
			t.Errorf("ParseBand(%q) = %s, %v; want %s", in, got, err, want)
		}
	}
	if _, err := ParseBand("plenty"); err == nil {
		t.Error("expected error for unknown band")
	}
}

func TestApply_CompositionIsCommutative(t *testing.T) {
	items := catalog()
	enabled := NewSet("EF", "BE", "GA")
	stock := Bands{Low: true, Sufficient: true}

	ab := Apply(items,
		ManufacturerFunc[rec](enabled),
		StockFunc[rec](stock, DefaultThresholds()),
		TypesFunc[rec](NewSet("rod", "frit")),
	)
	ba := Apply(items,
		TypesFunc[rec](NewSet("rod", "frit")),
		StockFunc[rec](stock, DefaultThresholds()),
		ManufacturerFunc[rec](enabled),
	)
	if diff := cmp.Diff(ids(ab), ids(ba)); diff != "" {
		t.Errorf("filter order changed the result (-ab +ba):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A", "B"}, ids(ab)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestApply_SkipsNil(t *testing.T) {
	items := catalog()
	got := Apply(items, nil, TagsFunc[rec](NewSet[string]()))
	if len(got) != len(items) {
		t.Errorf("expected passthrough, got %d records", len(got))
	}
}
