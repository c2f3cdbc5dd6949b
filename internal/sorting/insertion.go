package sorting

import (
	"context"

	"github.com/san-kum/sortviz/internal/frame"
)

// Insertion grows a sorted prefix, sinking each new element by adjacent
// swaps. Ties stop the sink, which keeps the sort stable.
type Insertion struct{}

func NewInsertion() *Insertion {
	return &Insertion{}
}

func (s *Insertion) Sort(ctx context.Context, in frame.Frame) (frame.Sequence, error) {
	rec, work, done, err := prepare(in)
	if done != nil || err != nil {
		return done, err
	}

	gappedInsertion(rec, work, 1)
	return rec.Finish(work), nil
}

// gappedInsertion runs one insertion pass over every gap-strided chain.
func gappedInsertion(rec *frame.Recorder, work frame.Frame, gap int) {
	for i := gap; i < len(work); i++ {
		for j := i; j >= gap; j -= gap {
			rec.Capture(work, compared(j-gap, j))
			if work[j-gap].Value <= work[j].Value {
				break
			}
			swap(work, j-gap, j)
			rec.Capture(work, active(j-gap, j))
		}
	}
}
