// Package compare runs several sort algorithms over the same input
// concurrently. It backs the "all" selection.
package compare

import (
	"context"
	"errors"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/sortviz/internal/frame"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/registry"
	"github.com/san-kum/sortviz/internal/sorting"
)

type Result struct {
	Entry   registry.Entry
	Frames  frame.Sequence
	Metrics map[string]float64
	Elapsed time.Duration
	// Err is set when the run stopped early but still produced a usable
	// partial trace, as monkey sort does when it exhausts its attempts.
	Err error
}

// FrameAt returns frame i, holding on the last frame once the trace has
// ended.
func (r *Result) FrameAt(i int) frame.Frame {
	if len(r.Frames) == 0 {
		return nil
	}
	if i >= len(r.Frames) {
		return r.Frames.Last()
	}
	if i < 0 {
		return r.Frames.First()
	}
	return r.Frames[i]
}

type Runner struct {
	opts    registry.Options
	log     *zap.Logger
	workers int
}

func New(opts registry.Options, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		opts:    opts,
		log:     logger,
		workers: runtime.NumCPU(),
	}
}

// Expand replaces registry.All with every executable kind and drops
// duplicates, keeping first-seen order.
func Expand(kinds []registry.Kind) []registry.Kind {
	seen := make(map[registry.Kind]bool)
	out := make([]registry.Kind, 0, len(kinds))
	add := func(k registry.Kind) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, k := range kinds {
		if k == registry.All {
			for _, e := range registry.Kinds() {
				add(e)
			}
			continue
		}
		add(k)
	}
	return out
}

// Run traces every kind over its own copy of values. Results come back in
// the order of Expand(kinds). A monkey sort that hits its cap is reported
// through Result.Err; any other failure aborts the whole run.
func (r *Runner) Run(ctx context.Context, kinds []registry.Kind, values []int) ([]*Result, error) {
	kinds = Expand(kinds)
	results := make([]*Result, len(kinds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, k := range kinds {
		i, k := i, k
		g.Go(func() error {
			res, err := r.runOne(ctx, k, values)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, k registry.Kind, values []int) (*Result, error) {
	entry, err := registry.Lookup(k)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	seq, err := registry.Generate(ctx, k, values, r.opts)
	elapsed := time.Since(start)

	res := &Result{Entry: entry, Frames: seq, Elapsed: elapsed}
	if err != nil {
		if !errors.Is(err, sorting.ErrNotTerminated) {
			return nil, err
		}
		r.log.Warn("algorithm did not terminate",
			zap.String("algorithm", entry.Key),
			zap.Int("frames", seq.Len()),
			zap.Error(err))
		res.Err = err
	}

	res.Metrics = metrics.Collect(seq, metrics.Default()...)
	r.log.Debug("traced",
		zap.String("algorithm", entry.Key),
		zap.Int("frames", seq.Len()),
		zap.Duration("elapsed", elapsed))
	return res, nil
}

// Longest returns the frame count of the longest trace in results.
func Longest(results []*Result) int {
	n := 0
	for _, r := range results {
		if r != nil && r.Frames.Len() > n {
			n = r.Frames.Len()
		}
	}
	return n
}
