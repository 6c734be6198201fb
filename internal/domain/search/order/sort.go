package order

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/kailas-cloud/glassdex/internal/domain/search/text"
)

// Sortable exposes every field a sort key may read.
type Sortable interface {
	Name() string
	Code() string
	Manufacturer() string
	Type() string
	Quantity() (float64, bool)
	Classification() string
}

// ClassLookup resolves the grouping class of a manufacturer when a record
// carries none of its own.
type ClassLookup interface {
	PrimaryClass(manufacturer string) (string, bool)
}

// Options tunes a sort.
type Options struct {
	Direction Direction
	// Lookup is consulted by the Manufacturer key. May be nil.
	Lookup ClassLookup
}

type sortValue struct {
	present  bool
	text     string
	number   float64
	hasGroup bool
	group    string
	// name breaks ties between records of one manufacturer.
	name string
}

// Sort returns a new slice ordered by key. Records comparing equal keep their
// input order. An unknown key returns an unchanged copy.
func Sort[T Sortable](records []T, key Key, opts Options) []T {
	out := make([]T, len(records))
	copy(out, records)
	if len(out) < 2 || !key.IsValid() {
		return out
	}

	folder := text.NewFolder(false)
	values := make([]sortValue, len(out))
	for i, r := range out {
		values[i] = extract(r, key, opts.Lookup, folder)
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	desc := opts.Direction == Descending
	slices.SortStableFunc(idx, func(a, b int) int {
		return compareValues(key, values[a], values[b], desc)
	})

	sorted := make([]T, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

func extract[T Sortable](r T, key Key, lookup ClassLookup, f *text.Folder) sortValue {
	switch key {
	case Name:
		return textValue(f.Fold(r.Name()))
	case Code:
		return textValue(f.Fold(r.Code()))
	case Type:
		return textValue(f.Fold(r.Type()))
	case Quantity:
		q, ok := r.Quantity()
		return sortValue{present: ok, number: q}
	case Manufacturer:
		v := textValue(f.Fold(r.Manufacturer()))
		if !v.present {
			return v
		}
		v.name = f.Fold(r.Name())
		if c := strings.TrimSpace(r.Classification()); c != "" {
			v.hasGroup, v.group = true, c
		} else if lookup != nil {
			if c, ok := lookup.PrimaryClass(strings.TrimSpace(r.Manufacturer())); ok && strings.TrimSpace(c) != "" {
				v.hasGroup, v.group = true, strings.TrimSpace(c)
			}
		}
		return v
	}
	return sortValue{}
}

func textValue(s string) sortValue {
	return sortValue{present: s != "", text: s}
}

func compareValues(key Key, a, b sortValue, desc bool) int {
	// Absent values go last in both directions.
	if a.present != b.present {
		if a.present {
			return -1
		}
		return 1
	}
	if !a.present {
		return 0
	}

	if key == Manufacturer {
		if c := compareGroups(a, b); c != 0 {
			return c
		}
	}

	var c int
	switch key {
	case Quantity:
		c = cmp.Compare(a.number, b.number)
	case Code:
		c = naturalCompare(a.text, b.text)
	default:
		c = strings.Compare(a.text, b.text)
	}
	if c == 0 && key == Manufacturer {
		if (a.name == "") != (b.name == "") {
			if a.name != "" {
				return -1
			}
			return 1
		}
		c = strings.Compare(a.name, b.name)
	}
	if desc {
		return -c
	}
	return c
}

// compareGroups puts classified records before unclassified ones and orders
// classes numerically when both parse as numbers.
func compareGroups(a, b sortValue) int {
	if a.hasGroup != b.hasGroup {
		if a.hasGroup {
			return -1
		}
		return 1
	}
	if !a.hasGroup {
		return 0
	}
	return compareClasses(a.group, b.group)
}

func compareClasses(a, b string) int {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(text.Fold(a, false), text.Fold(b, false))
}

// naturalCompare compares strings with embedded digit runs by numeric value.
func naturalCompare(a, b string) int {
	for a != "" && b != "" {
		da, db := isDigit(a[0]), isDigit(b[0])
		if da && db {
			ra, restA := digitRun(a)
			rb, restB := digitRun(b)
			ta := strings.TrimLeft(ra, "0")
			tb := strings.TrimLeft(rb, "0")
			if c := cmp.Compare(len(ta), len(tb)); c != 0 {
				return c
			}
			if c := strings.Compare(ta, tb); c != 0 {
				return c
			}
			a, b = restA, restB
			continue
		}
		if a[0] != b[0] {
			return cmp.Compare(a[0], b[0])
		}
		a, b = a[1:], b[1:]
	}
	return cmp.Compare(len(a), len(b))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func digitRun(s string) (run, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}
