package manufacturer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/glassdex/internal/domain"
)

func TestNew(t *testing.T) {
	m, err := New(" ef ", "", []string{"104", " ", "104", "96"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Code() != "EF" || m.Name() != "EF" {
		t.Errorf("got code=%q name=%q", m.Code(), m.Name())
	}
	if diff := cmp.Diff([]string{"104", "96"}, m.Classes()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := New("  ", "x", nil); err == nil {
		t.Error("expected error for blank code")
	}
}

func TestDefaults(t *testing.T) {
	r := NewRegistry(Defaults()...)
	if len(r.Codes()) != 24 {
		t.Errorf("len(Codes()) = %d, want 24", len(r.Codes()))
	}
	if r.Name("be") != "Bullseye Glass" {
		t.Errorf("Name(be) = %q", r.Name("be"))
	}
	if c, ok := r.PrimaryClass("EF"); !ok || c != "104" {
		t.Errorf("PrimaryClass(EF) = %q,%v", c, ok)
	}
	if diff := cmp.Diff([]string{"104", "33", "90", "96"}, r.Classes()); diff != "" {
		t.Errorf("Classes() (-want +got):\n%s", diff)
	}
}

func TestDefaults_ScrapedManufacturers(t *testing.T) {
	r := NewRegistry(Defaults()...)
	tests := []struct {
		code  string
		class string
	}{
		{"LUN", "33"},
		{"PAR", "33"},
		{"PDX", "33"},
		{"UST", "33"},
		{"CHB", "33"},
		{"NS", "33"},
		{"GAF", "96"},
		{"Y96", "96"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if c, ok := r.PrimaryClass(tt.code); !ok || c != tt.class {
				t.Errorf("PrimaryClass(%s) = %q,%v, want %q", tt.code, c, ok, tt.class)
			}
		})
	}
}

func TestRegistry_Override(t *testing.T) {
	custom, _ := New("EF", "Effetre", []string{"104", "96"})
	extra, _ := New("KUG", "Kugler", []string{"96"})
	r := NewRegistry(append(Defaults(), custom, extra)...)

	if r.Name("EF") != "Effetre" {
		t.Errorf("override not applied: %q", r.Name("EF"))
	}
	if diff := cmp.Diff([]string{"104", "96"}, r.ClassesOf("ef")); diff != "" {
		t.Errorf("ClassesOf (-want +got):\n%s", diff)
	}
	if !r.Has("KUG") || len(r.Codes()) != 25 {
		t.Errorf("codes = %v", r.Codes())
	}
}

func TestRegistry_Unknown(t *testing.T) {
	r := NewRegistry(Defaults()...)
	if _, err := r.Get("ZZ"); !errors.Is(err, domain.ErrUnknownManufacturer) {
		t.Errorf("Get(ZZ) error = %v", err)
	}
	if r.Name("ZZ") != "ZZ" {
		t.Errorf("Name(ZZ) = %q", r.Name("ZZ"))
	}
	if _, ok := r.PrimaryClass("ZZ"); ok {
		t.Error("PrimaryClass(ZZ) should be absent")
	}
	if r.ClassesOf("ZZ") != nil {
		t.Error("ClassesOf(ZZ) should be nil")
	}
}

func TestCodes_ReturnsCopy(t *testing.T) {
	r := NewRegistry(Defaults()...)
	c := r.Codes()
	c[0] = "mutated"
	if r.Codes()[0] == "mutated" {
		t.Error("Codes() exposed internal slice")
	}
}
