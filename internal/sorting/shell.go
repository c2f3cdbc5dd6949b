package sorting

import (
	"context"

	"github.com/san-kum/sortviz/internal/frame"
)

// Shell runs gapped insertion passes over Shell's original gap sequence:
// n/2, n/4, ..., 1.
type Shell struct{}

func NewShell() *Shell {
	return &Shell{}
}

func (s *Shell) Sort(ctx context.Context, in frame.Frame) (frame.Sequence, error) {
	rec, work, done, err := prepare(in)
	if done != nil || err != nil {
		return done, err
	}

	for gap := len(work) / 2; gap > 0; gap /= 2 {
		gappedInsertion(rec, work, gap)
	}
	return rec.Finish(work), nil
}

// Gaps returns the gap sequence used for n elements.
func (s *Shell) Gaps(n int) []int {
	var gaps []int
	for gap := n / 2; gap > 0; gap /= 2 {
		gaps = append(gaps, gap)
	}
	return gaps
}
