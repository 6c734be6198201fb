package filter

import (
	"fmt"
	"strings"
)

// DefaultLowStock is the quantity at or below which stock counts as low.
const DefaultLowStock = 5.0

// Band is a stock classification.
type Band int

// Stock bands.
const (
	Unavailable Band = iota
	Low
	Sufficient
)

func (b Band) String() string {
	switch b {
	case Unavailable:
		return "unavailable"
	case Low:
		return "low"
	case Sufficient:
		return "sufficient"
	default:
		return fmt.Sprintf("band(%d)", int(b))
	}
}

// ParseBand converts a band name.
func ParseBand(s string) (Band, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unavailable", "out", "none":
		return Unavailable, nil
	case "low":
		return Low, nil
	case "sufficient", "ok", "in":
		return Sufficient, nil
	default:
		return 0, fmt.Errorf("unknown stock band %q", s)
	}
}

// Thresholds are the cutoffs between bands.
type Thresholds struct {
	// Low is the largest quantity still considered low stock.
	Low float64
}

// DefaultThresholds returns the built-in cutoffs.
func DefaultThresholds() Thresholds { return Thresholds{Low: DefaultLowStock} }

// Classify places a quantity in a band. Absent or non-positive quantities are
// unavailable.
func (t Thresholds) Classify(quantity float64, ok bool) Band {
	switch {
	case !ok || quantity <= 0:
		return Unavailable
	case quantity <= t.Low:
		return Low
	default:
		return Sufficient
	}
}

// Bands selects which stock bands pass.
type Bands struct {
	Unavailable bool
	Low         bool
	Sufficient  bool
}

// AllBands selects every band.
func AllBands() Bands { return Bands{Unavailable: true, Low: true, Sufficient: true} }

// Includes reports whether b is selected.
func (s Bands) Includes(b Band) bool {
	switch b {
	case Unavailable:
		return s.Unavailable
	case Low:
		return s.Low
	case Sufficient:
		return s.Sufficient
	default:
		return false
	}
}

// All reports whether every band is selected.
func (s Bands) All() bool { return s.Unavailable && s.Low && s.Sufficient }

// ByStock keeps records whose stock band is selected.
// With no band selected nothing passes.
func ByStock[T Stocked](records []T, bands Bands, t Thresholds) []T {
	if bands.All() {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if bands.Includes(t.Classify(r.Quantity())) {
			out = append(out, r)
		}
	}
	return out
}

// StockFunc adapts ByStock for Apply.
func StockFunc[T Stocked](bands Bands, t Thresholds) Func[T] {
	return func(records []T) []T { return ByStock(records, bands, t) }
}
