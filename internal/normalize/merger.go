package normalize

import (
	"context"
	"fmt"
	"sync"

	"github.com/bazarstat/bazarstat/internal/mapping"
	"github.com/bazarstat/bazarstat/internal/model"
)

// Stats describes one run's data-quality outcome so drops are observable
// rather than silently absorbed.
type Stats struct {
	Kept    map[string]int
	Dropped map[string]int
	Total   int
}

// TotalDropped sums the per-source drop counts.
func (s Stats) TotalDropped() int {
	n := 0
	for _, d := range s.Dropped {
		n += d
	}
	return n
}

// Dataset is the merged canonical collection plus its run stats.
type Dataset struct {
	Records []model.Record
	Stats   Stats
}

type mergeConfig struct {
	onSourceDone func(SourceResult)
}

// Option configures a Merge run.
type Option func(*mergeConfig)

// WithSourceDone registers a callback invoked once per completed source
// normalization task, in completion order. Used for progress reporting.
func WithSourceDone(fn func(SourceResult)) Option {
	return func(c *mergeConfig) { c.onSourceDone = fn }
}

// Merge normalizes every source concurrently (one task per source), waits
// for all tasks at the barrier, then concatenates results in the fixed
// model.AllSources order. No deduplication and no cross-source identity
// resolution: the same physical product listed on several platforms stays
// as distinct records.
func Merge(ctx context.Context, inputs map[string][]model.RawRecord, reg *mapping.Registry, opts ...Option) (*Dataset, error) {
	cfg := mergeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Reject unknown sources before spawning anything: a bad identifier is
	// a configuration defect, not a per-record problem.
	for src := range inputs {
		if _, err := reg.Lookup(src); err != nil {
			return nil, err
		}
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]SourceResult, len(inputs))
		errs    []error
	)

	for src, rows := range inputs {
		wg.Add(1)
		go func(src string, rows []model.RawRecord) {
			defer wg.Done()
			res, err := Source(src, rows, reg)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			results[src] = res
			if cfg.onSourceDone != nil {
				cfg.onSourceDone(res)
			}
		}(src, rows)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("normalization failed: %w", errs[0])
	}

	ds := &Dataset{
		Stats: Stats{
			Kept:    make(map[string]int, len(results)),
			Dropped: make(map[string]int, len(results)),
		},
	}
	for _, src := range model.AllSources {
		res, ok := results[src]
		if !ok {
			continue
		}
		ds.Records = append(ds.Records, res.Records...)
		ds.Stats.Kept[src] = len(res.Records)
		ds.Stats.Dropped[src] = res.Dropped
	}
	ds.Stats.Total = len(ds.Records)
	return ds, nil
}
