package item

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func floatPtr(f float64) *float64 { return &f }

func validParams() Params {
	return Params{
		Manufacturer: "ef",
		Code:         "204",
		Name:         " Dark Cobalt ",
		Description:  "Deep transparent blue.",
		Tags:         []string{"blue", " ", "transparent", "blue"},
		Synonyms:     []string{"cobalt"},
		COE:          "104",
		Type:         "rod",
	}
}

func TestNew_Valid(t *testing.T) {
	it, err := New(validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID() != "EF-204" {
		t.Errorf("ID() = %q, want EF-204", it.ID())
	}
	if it.Manufacturer() != "EF" {
		t.Errorf("Manufacturer() = %q", it.Manufacturer())
	}
	if it.Name() != "Dark Cobalt" {
		t.Errorf("Name() = %q", it.Name())
	}
	if diff := cmp.Diff([]string{"blue", "transparent"}, it.Tags()); diff != "" {
		t.Errorf("Tags() (-want +got):\n%s", diff)
	}
	if it.Status() != StatusAvailable || it.Discontinued() {
		t.Errorf("Status() = %q", it.Status())
	}
	if _, ok := it.Quantity(); ok {
		t.Error("Quantity() should be absent")
	}
	if it.Classification() != "104" {
		t.Errorf("Classification() = %q", it.Classification())
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		substr string
	}{
		{"no manufacturer", func(p *Params) { p.Manufacturer = " " }, "manufacturer is required"},
		{"bad manufacturer", func(p *Params) { p.Manufacturer = "E F" }, "alphanumeric"},
		{"no code", func(p *Params) { p.Code = "" }, "code is required"},
		{"code too long", func(p *Params) { p.Code = strings.Repeat("1", MaxCodeLength+1) }, "too long"},
		{"bad code", func(p *Params) { p.Code = "#12" }, "invalid characters"},
		{"negative quantity", func(p *Params) { p.Quantity = floatPtr(-1) }, "negative"},
		{"bad status", func(p *Params) { p.Status = "retired" }, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := New(p)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error = %q, want substring %q", err, tt.substr)
			}
		})
	}
}

func TestSearchableText_Order(t *testing.T) {
	it, err := New(validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"EF-204", "Dark Cobalt", "204", "EF", "104", "rod",
		"blue", "transparent", "cobalt", "Deep transparent blue.",
	}
	if diff := cmp.Diff(want, it.SearchableText()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestQuantity_CopiedOnConstruction(t *testing.T) {
	q := 3.0
	p := validParams()
	p.Quantity = &q
	it, err := New(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q = 10
	if got, ok := it.Quantity(); !ok || got != 3 {
		t.Errorf("Quantity() = %v,%v, want 3,true", got, ok)
	}
}

func TestWithQuantity(t *testing.T) {
	it, _ := New(validParams())
	updated := it.WithQuantity(floatPtr(7))
	if _, ok := it.Quantity(); ok {
		t.Error("original should be unchanged")
	}
	if got, _ := updated.Quantity(); got != 7 {
		t.Errorf("Quantity() = %v, want 7", got)
	}
	if updated.WithQuantity(nil).ID() != "EF-204" {
		t.Error("WithQuantity should keep identity")
	}
}

func TestKey(t *testing.T) {
	if got := Key(" oc ", " 1009 "); got != "OC-1009" {
		t.Errorf("Key() = %q", got)
	}
}
