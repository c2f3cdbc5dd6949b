package sorting

import (
	"context"

	"github.com/san-kum/sortviz/internal/frame"
)

// Heap builds a max-heap in place, then repeatedly swaps the root to the
// end of the shrinking heap.
type Heap struct{}

func NewHeap() *Heap {
	return &Heap{}
}

func (s *Heap) Sort(ctx context.Context, in frame.Frame) (frame.Sequence, error) {
	rec, work, done, err := prepare(in)
	if done != nil || err != nil {
		return done, err
	}

	n := len(work)
	for i := (n - 1) / 2; i >= 0; i-- {
		siftDown(rec, work, i, n)
	}
	for i := n - 1; i > 0; i-- {
		swap(work, 0, i)
		rec.Capture(work, active(0, i))
		work[i].Role = frame.Sorted
		siftDown(rec, work, 0, i)
	}
	return rec.Finish(work), nil
}

// siftDown restores the heap property below root within work[:hi].
func siftDown(rec *frame.Recorder, work frame.Frame, root, hi int) {
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi {
			rec.Capture(work, compared(child, child+1))
			if work[child].Value < work[child+1].Value {
				child++
			}
		}
		rec.Capture(work, compared(root, child))
		if work[root].Value >= work[child].Value {
			return
		}
		swap(work, root, child)
		rec.Capture(work, active(root, child))
		root = child
	}
}
