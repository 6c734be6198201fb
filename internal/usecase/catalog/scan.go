package catalog

import (
	"context"
	"sync"

	"github.com/kailas-cloud/glassdex/internal/domain/catalog/item"
	"github.com/kailas-cloud/glassdex/internal/domain/search/mode"
	"github.com/kailas-cloud/glassdex/internal/metrics"
)

// scan applies fn to items. Large fuzzy scans are split into chunks run on
// the service pool; results are concatenated in input order, so fn must be
// order-preserving and must not share mutable state across calls.
func scan[R any](ctx context.Context, s *Service, items []item.Item, m mode.Mode, fn func([]item.Item) []R) ([]R, error) {
	if !s.shouldSplit(len(items), m) {
		return fn(items), nil
	}
	metrics.ParallelScansTotal.Inc()

	size := s.cfg.ChunkSize
	n := (len(items) + size - 1) / size
	parts := make([][]R, n)

	var wg sync.WaitGroup
	for i := range n {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		chunk := items[i*size : min((i+1)*size, len(items))]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			parts[i] = fn(chunk)
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool released or overloaded: run on the caller.
			task()
		}
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]R, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

func (s *Service) shouldSplit(n int, m mode.Mode) bool {
	return s.cfg.ParallelMin >= 0 && n >= s.cfg.ParallelMin && n > s.cfg.ChunkSize && parallelModes[m]
}
