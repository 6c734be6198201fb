// Package relevance scores matched records for ranking.
//
// Each matched fragment at declared position p contributes
//
//	w * (1 + q * 2^-(p+1))
//
// where q is 1 for a full-fragment match, 0.5 for a substring match and 0.25
// for an approximate match, and w is the weight configured for the matched
// fragment text (1 when absent). The bonus term is always below 1, so with unit
// weights a record matching more fragments never ranks below one matching
// fewer; earlier fields and better match kinds break ties between records that
// match the same number of fragments.
package relevance

import (
	"math"

	"github.com/kailas-cloud/glassdex/internal/domain/search/match"
	"github.com/kailas-cloud/glassdex/internal/domain/search/text"
)

// Match quality multipliers.
const (
	fullQuality        = 1.0
	substringQuality   = 0.5
	approximateQuality = 0.25
)

// Scorer computes relevance for one search call.
type Scorer struct {
	weights map[string]float64
	folder  *text.Folder
}

// New creates a Scorer. Weight keys are matched against the matched fragment
// text under the same case rule as the search. Non-positive weights are ignored.
func New(weights map[string]float64, caseSensitive bool) *Scorer {
	f := text.NewFolder(caseSensitive)
	norm := make(map[string]float64, len(weights))
	for k, w := range weights {
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			continue
		}
		if key := f.Fold(k); key != "" {
			norm[key] = w
		}
	}
	return &Scorer{weights: norm, folder: f}
}

// Score sums the contributions of every hit. No hits scores zero.
func (s *Scorer) Score(hits []match.Hit) float64 {
	var total float64
	for _, h := range hits {
		total += s.Contribution(h)
	}
	return total
}

// Contribution is the score of a single matched fragment.
func (s *Scorer) Contribution(h match.Hit) float64 {
	q := quality(h.Kind)
	if q == 0 {
		return 0
	}
	return s.weight(h.Text) * (1 + q*positionWeight(h.Position))
}

func (s *Scorer) weight(fragment string) float64 {
	if len(s.weights) == 0 {
		return 1
	}
	if w, ok := s.weights[s.folder.Fold(fragment)]; ok {
		return w
	}
	return 1
}

func quality(k match.Kind) float64 {
	switch k {
	case match.Full:
		return fullQuality
	case match.Substring:
		return substringQuality
	case match.Approximate:
		return approximateQuality
	default:
		return 0
	}
}

// positionWeight halves with every later field.
func positionWeight(position int) float64 {
	if position < 0 {
		position = 0
	}
	return math.Ldexp(1, -(position + 1))
}
