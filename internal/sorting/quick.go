package sorting

import (
	"context"

	"github.com/san-kum/sortviz/internal/frame"
)

// Quick is quicksort with Lomuto partitioning around the last element of
// each range. It recurses into the smaller side and loops on the larger,
// so stack depth stays logarithmic even on sorted input.
type Quick struct{}

func NewQuick() *Quick {
	return &Quick{}
}

func (s *Quick) Sort(ctx context.Context, in frame.Frame) (frame.Sequence, error) {
	rec, work, done, err := prepare(in)
	if done != nil || err != nil {
		return done, err
	}

	quickSort(rec, work, 0, len(work)-1)
	return rec.Finish(work), nil
}

// quickSort sorts the closed range work[lo..hi].
func quickSort(rec *frame.Recorder, work frame.Frame, lo, hi int) {
	for lo < hi {
		p := partition(rec, work, lo, hi)
		work[p].Role = frame.Sorted
		if p-lo < hi-p {
			quickSort(rec, work, lo, p-1)
			lo = p + 1
		} else {
			quickSort(rec, work, p+1, hi)
			hi = p - 1
		}
	}
	if lo == hi {
		work[lo].Role = frame.Sorted
	}
}

func partition(rec *frame.Recorder, work frame.Frame, lo, hi int) int {
	pivot := frame.Highlight(frame.Pivot, hi)
	i := lo
	for j := lo; j < hi; j++ {
		rec.Capture(work, pivot, compared(j))
		if work[j].Value < work[hi].Value {
			if i != j {
				swap(work, i, j)
				rec.Capture(work, pivot, active(i, j))
			}
			i++
		}
	}
	swap(work, i, hi)
	rec.Capture(work, active(i, hi))
	return i
}
