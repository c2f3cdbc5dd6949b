package sorting

import (
	"context"

	"github.com/san-kum/sortviz/internal/frame"
)

// Merge is top-down, stable merge sort. Each merge realises the textbook
// two-run merge in place: when the head of the right run wins, it is
// rotated into the output slot, so the array never holds a duplicated or
// missing value between frames.
type Merge struct{}

func NewMerge() *Merge {
	return &Merge{}
}

func (s *Merge) Sort(ctx context.Context, in frame.Frame) (frame.Sequence, error) {
	rec, work, done, err := prepare(in)
	if done != nil || err != nil {
		return done, err
	}

	mergeSort(rec, work, 0, len(work))
	return rec.Finish(work), nil
}

func mergeSort(rec *frame.Recorder, work frame.Frame, lo, hi int) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(rec, work, lo, mid)
	mergeSort(rec, work, mid, hi)
	merge(rec, work, lo, mid, hi)
}

// merge combines the sorted runs work[lo:mid] and work[mid:hi].
// Invariant: work[k:hi] is the unmerged left run followed by the unmerged
// right run, whose head is at j.
func merge(rec *frame.Recorder, work frame.Frame, lo, mid, hi int) {
	k, j := lo, mid
	for k < j && j < hi {
		rec.Capture(work, compared(k, j))
		if work[j].Value < work[k].Value {
			rotateRight(work, k, j)
			j++
		}
		rec.Capture(work, active(k))
		k++
	}
	// One run is exhausted; the rest is already in place.
	for ; k < hi; k++ {
		rec.Capture(work, active(k))
	}
}
