package sorting

import (
	"context"

	"github.com/san-kum/sortviz/internal/frame"
)

// Comb is bubble sort over a shrinking gap. The gap starts at n and is
// divided by 1.3 (integer gap*10/13) each pass; once it reaches 1 passes
// repeat until one completes without a swap.
type Comb struct{}

func NewComb() *Comb {
	return &Comb{}
}

func (s *Comb) Sort(ctx context.Context, in frame.Frame) (frame.Sequence, error) {
	rec, work, done, err := prepare(in)
	if done != nil || err != nil {
		return done, err
	}

	n := len(work)
	gap := n
	for clean := false; !clean; {
		gap = shrink(gap)
		clean = gap == 1
		for i := 0; i+gap < n; i++ {
			rec.Capture(work, compared(i, i+gap))
			if work[i].Value > work[i+gap].Value {
				swap(work, i, i+gap)
				rec.Capture(work, active(i, i+gap))
				clean = false
			}
		}
	}
	return rec.Finish(work), nil
}

func shrink(gap int) int {
	gap = gap * 10 / 13
	if gap < 1 {
		return 1
	}
	return gap
}
