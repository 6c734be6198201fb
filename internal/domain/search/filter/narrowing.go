package filter

import "strings"

// Narrow keeps records that share at least one value with selected.
// An empty selection means the facet is inactive and returns records unchanged.
// Records without values are dropped by an active facet.
//
// universe, when non-empty, must hold every value the records resolve to
// (see Universe). If selected covers it, membership lookups are skipped and
// only records without values are dropped.
func Narrow[T any](records []T, selected, universe Set[string], values func(T) []string) []T {
	if selected.Len() == 0 {
		return records
	}
	keep := func(v string) bool { return selected.Contains(v) }
	if universe.Len() > 0 && selected.ContainsAll(universe) {
		keep = func(string) bool { return true }
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		for _, v := range values(r) {
			if v = strings.TrimSpace(v); v != "" && keep(v) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Universe collects the non-blank values records resolve to.
func Universe[T any](records []T, values func(T) []string) Set[string] {
	u := make(Set[string])
	for _, r := range records {
		for _, v := range values(r) {
			if v = strings.TrimSpace(v); v != "" {
				u[v] = struct{}{}
			}
		}
	}
	return u
}

// ClassUniverse collects the compatibility classes records resolve to.
func ClassUniverse[T Classified](records []T, lookup ClassLookup) Set[string] {
	return Universe(records, func(r T) []string { return ClassesOf(r, lookup) })
}

// ByTags keeps records carrying at least one selected tag.
func ByTags[T Tagged](records []T, selected Set[string]) []T {
	return Narrow(records, selected, nil, func(r T) []string { return r.Tags() })
}

// ByTypes keeps records whose type is selected.
func ByTypes[T Typed](records []T, selected Set[string]) []T {
	return Narrow(records, selected, nil, func(r T) []string { return []string{r.Type()} })
}

// ByClassification keeps records in any selected compatibility class.
// A record's classes are its own classification when present, otherwise the
// classes lookup reports for its manufacturer. lookup may be nil.
func ByClassification[T Classified](records []T, selected, universe Set[string], lookup ClassLookup) []T {
	return Narrow(records, selected, universe, func(r T) []string {
		return ClassesOf(r, lookup)
	})
}

// ClassesOf resolves the compatibility classes of r.
func ClassesOf[T Classified](r T, lookup ClassLookup) []string {
	if c := strings.TrimSpace(r.Classification()); c != "" {
		return []string{c}
	}
	if lookup == nil {
		return nil
	}
	m := strings.TrimSpace(r.Manufacturer())
	if m == "" {
		return nil
	}
	return lookup.ClassesOf(m)
}

// TagsFunc adapts ByTags for Apply.
func TagsFunc[T Tagged](selected Set[string]) Func[T] {
	return func(records []T) []T { return ByTags(records, selected) }
}

// TypesFunc adapts ByTypes for Apply.
func TypesFunc[T Typed](selected Set[string]) Func[T] {
	return func(records []T) []T { return ByTypes(records, selected) }
}

// ClassificationFunc adapts ByClassification for Apply.
func ClassificationFunc[T Classified](selected, universe Set[string], lookup ClassLookup) Func[T] {
	return func(records []T) []T { return ByClassification(records, selected, universe, lookup) }
}
