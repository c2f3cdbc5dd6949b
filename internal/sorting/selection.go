package sorting

import (
	"context"

	"github.com/san-kum/sortviz/internal/frame"
)

// Selection swaps the minimum of the unsorted suffix into place on every
// pass. The running minimum is shown as the pivot.
type Selection struct{}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) Sort(ctx context.Context, in frame.Frame) (frame.Sequence, error) {
	rec, work, done, err := prepare(in)
	if done != nil || err != nil {
		return done, err
	}

	n := len(work)
	for i := 0; i < n-1; i++ {
		smallest := i
		for j := i + 1; j < n; j++ {
			rec.Capture(work, frame.Highlight(frame.Pivot, smallest), compared(j))
			if work[j].Value < work[smallest].Value {
				smallest = j
			}
		}
		if smallest != i {
			swap(work, i, smallest)
			rec.Capture(work, active(i, smallest))
		}
		work[i].Role = frame.Sorted
	}
	return rec.Finish(work), nil
}
