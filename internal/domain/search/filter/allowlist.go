package filter

import "strings"

// ByManufacturer keeps records whose manufacturer is in the enabled set.
// An empty enabled set means every manufacturer is disabled and nothing passes.
// Records with a blank manufacturer never pass.
func ByManufacturer[T Manufactured](records []T, enabled Set[string]) []T {
	out := make([]T, 0, len(records))
	if enabled.Len() == 0 {
		return out
	}
	for _, r := range records {
		m := strings.TrimSpace(r.Manufacturer())
		if m != "" && enabled.Contains(m) {
			out = append(out, r)
		}
	}
	return out
}

// ManufacturerFunc adapts ByManufacturer for Apply.
func ManufacturerFunc[T Manufactured](enabled Set[string]) Func[T] {
	return func(records []T) []T { return ByManufacturer(records, enabled) }
}
