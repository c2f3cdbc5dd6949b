package sorting

import (
	"context"

	"github.com/san-kum/sortviz/internal/frame"
)

// Bubble swaps adjacent out-of-order pairs, one pass at a time, and stops
// after the first pass without a swap. Each pass settles the largest
// remaining element at the tail.
type Bubble struct{}

func NewBubble() *Bubble {
	return &Bubble{}
}

func (s *Bubble) Sort(ctx context.Context, in frame.Frame) (frame.Sequence, error) {
	rec, work, done, err := prepare(in)
	if done != nil || err != nil {
		return done, err
	}

	n := len(work)
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for j := 0; j < n-1-pass; j++ {
			rec.Capture(work, compared(j, j+1))
			if work[j].Value > work[j+1].Value {
				swap(work, j, j+1)
				rec.Capture(work, active(j, j+1))
				swapped = true
			}
		}
		work[n-1-pass].Role = frame.Sorted
		if !swapped {
			break
		}
	}
	return rec.Finish(work), nil
}
