package sorting

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/sortviz/internal/frame"
)

const (
	// DefaultMaxAttempts caps the shuffles monkey sort will try.
	DefaultMaxAttempts = 100000

	// MonkeyWarnCount is the largest input for which monkey sort is
	// expected to finish under the default cap. Expected attempts are n!.
	MonkeyWarnCount = 8
)

type MonkeyConfig struct {
	MaxAttempts int
	Seed        int64
}

func DefaultMonkeyConfig() MonkeyConfig {
	return MonkeyConfig{MaxAttempts: DefaultMaxAttempts, Seed: 1}
}

// Monkey shuffles the whole array until it happens to be sorted.
//
// When MaxAttempts shuffles pass without success, Sort returns the frames
// recorded so far (no final Sorted frame) together with an error wrapping
// ErrNotTerminated. Callers decide whether to show the partial trace.
type Monkey struct {
	cfg MonkeyConfig
	rng *rand.Rand
}

func NewMonkey(cfg MonkeyConfig) *Monkey {
	return &Monkey{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (s *Monkey) Sort(ctx context.Context, in frame.Frame) (frame.Sequence, error) {
	if s.cfg.MaxAttempts <= 0 {
		return nil, fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidInput, s.cfg.MaxAttempts)
	}
	rec, work, done, err := prepare(in)
	if done != nil || err != nil {
		return done, err
	}

	n := len(work)
	everything := frame.Span(frame.Active, 0, n)
	for attempts := 0; !work.IsAscending(); attempts++ {
		if err := ctx.Err(); err != nil {
			return rec.Frames(), &TraceError{Algorithm: "monkey_sort", Frames: rec.Len(), Wrapped: err}
		}
		if attempts == s.cfg.MaxAttempts {
			return rec.Frames(), &TraceError{
				Algorithm: "monkey_sort",
				Frames:    rec.Len(),
				Wrapped:   fmt.Errorf("%w: %d attempts", ErrNotTerminated, attempts),
			}
		}
		s.rng.Shuffle(n, func(i, j int) { swap(work, i, j) })
		rec.Capture(work, everything)
	}
	return rec.Finish(work), nil
}
