package filter

// Manufactured exposes the allow-list facet value.
type Manufactured interface {
	Manufacturer() string
}

// Tagged exposes the tag facet values.
type Tagged interface {
	Tags() []string
}

// Typed exposes the item type facet value.
type Typed interface {
	Type() string
}

// Classified exposes what the classification facet needs: the record's own
// compatibility class and its manufacturer for lookups.
type Classified interface {
	Manufactured
	Classification() string
}

// Stocked exposes an optional on-hand quantity.
type Stocked interface {
	Quantity() (float64, bool)
}

// ClassLookup maps a manufacturer code to the compatibility classes it produces.
type ClassLookup interface {
	ClassesOf(manufacturer string) []string
}

// Func is one composable filtering step.
type Func[T any] func([]T) []T

// Apply runs filters in order. Facet filters are pure reductions, so the
// order changes only how much work is done, not the resulting set.
func Apply[T any](records []T, filters ...Func[T]) []T {
	for _, f := range filters {
		if f == nil {
			continue
		}
		records = f(records)
	}
	return records
}
