// Package manufacturer holds the registry of known glass manufacturers.
package manufacturer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kailas-cloud/glassdex/internal/domain"
)

// Manufacturer describes one glass maker.
type Manufacturer struct {
	code    string
	name    string
	classes []string
}

// New validates and creates a Manufacturer. The code is upper-cased.
// Classes are the compatibility classes the maker produces, primary first.
func New(code, name string, classes []string) (Manufacturer, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Manufacturer{}, fmt.Errorf("manufacturer code is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = code
	}
	cs := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" && !slices.Contains(cs, c) {
			cs = append(cs, c)
		}
	}
	return Manufacturer{code: code, name: name, classes: cs}, nil
}

// Code returns the short manufacturer code.
func (m Manufacturer) Code() string { return m.code }

// Name returns the display name.
func (m Manufacturer) Name() string { return m.name }

// Classes returns the compatibility classes, primary first.
func (m Manufacturer) Classes() []string { return m.classes }

// Defaults returns the built-in manufacturers.
func Defaults() []Manufacturer {
	return []Manufacturer{
		must("BB", "Boro Batch", "33"),
		must("BE", "Bullseye Glass", "90"),
		must("CHB", "Chinese Boro", "33"),
		must("CIM", "Creation is Messy", "104"),
		must("DS", "Delphi Superior", "90"),
		must("DH", "Double Helix", "33"),
		must("EF", "Effetre/Vetrofond", "104"),
		must("GA", "Glass Alchemy", "33"),
		must("GAF", "Gaffer", "96"),
		must("GRE", "Greasy Glass", "33"),
		must("LUN", "Lunar Glass", "33"),
		must("MA", "Molten Aura Glass", "33"),
		must("MOM", "Momka Glass", "33"),
		must("NS", "Northstar Glassworks", "33"),
		must("OC", "Oceanside Glass", "96"),
		must("OR", "Origin Glass", "33"),
		must("PAR", "Parramore Glass", "33"),
		must("PDX", "PDX Tubing Co", "33"),
		must("RE", "Reichenbach", "104"),
		must("SI", "Simax", "33"),
		must("TAG", "Trautman Art Glass", "33"),
		must("UST", "UST Glass", "33"),
		must("WM", "Wissmach Glass", "96"),
		must("Y96", "Youghiogheny Glass", "96"),
	}
}

func must(code, name string, classes ...string) Manufacturer {
	m, err := New(code, name, classes)
	if err != nil {
		panic(err)
	}
	return m
}

// Registry is an immutable lookup of manufacturers by code.
type Registry struct {
	byCode map[string]Manufacturer
	codes  []string
}

// NewRegistry builds a registry. Later entries replace earlier ones with the
// same code, so overrides can be appended to Defaults().
func NewRegistry(ms ...Manufacturer) *Registry {
	r := &Registry{byCode: make(map[string]Manufacturer, len(ms))}
	for _, m := range ms {
		if _, ok := r.byCode[m.code]; !ok {
			r.codes = append(r.codes, m.code)
		}
		r.byCode[m.code] = m
	}
	slices.Sort(r.codes)
	return r
}

// Get returns the manufacturer for code.
func (r *Registry) Get(code string) (Manufacturer, error) {
	m, ok := r.byCode[normalize(code)]
	if !ok {
		return Manufacturer{}, fmt.Errorf("%w: %q", domain.ErrUnknownManufacturer, code)
	}
	return m, nil
}

// Has reports whether code is registered.
func (r *Registry) Has(code string) bool {
	_, ok := r.byCode[normalize(code)]
	return ok
}

// Name returns the display name for code, or code itself when unknown.
func (r *Registry) Name(code string) string {
	if m, ok := r.byCode[normalize(code)]; ok {
		return m.name
	}
	return code
}

// Codes returns every registered code in sorted order.
func (r *Registry) Codes() []string { return slices.Clone(r.codes) }

// All returns every manufacturer ordered by code.
func (r *Registry) All() []Manufacturer {
	out := make([]Manufacturer, len(r.codes))
	for i, c := range r.codes {
		out[i] = r.byCode[c]
	}
	return out
}

// ClassesOf returns the compatibility classes produced by manufacturer.
func (r *Registry) ClassesOf(manufacturer string) []string {
	return r.byCode[normalize(manufacturer)].classes
}

// PrimaryClass returns the first class of manufacturer.
func (r *Registry) PrimaryClass(manufacturer string) (string, bool) {
	cs := r.ClassesOf(manufacturer)
	if len(cs) == 0 {
		return "", false
	}
	return cs[0], true
}

// Classes returns every known compatibility class, sorted.
func (r *Registry) Classes() []string {
	var out []string
	for _, m := range r.byCode {
		for _, c := range m.classes {
			if !slices.Contains(out, c) {
				out = append(out, c)
			}
		}
	}
	slices.Sort(out)
	return out
}

func normalize(code string) string { return strings.ToUpper(strings.TrimSpace(code)) }
