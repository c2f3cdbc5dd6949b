package sorting

import (
	"context"
	"fmt"

	"github.com/san-kum/sortviz/internal/frame"
)

// MaxElements bounds the size of a traced array. Traces grow roughly with
// n² frames of n elements each.
const MaxElements = 1 << 16

type Algorithm interface {
	Sort(ctx context.Context, in frame.Frame) (frame.Sequence, error)
}

// Func adapts a plain function to Algorithm.
type Func func(ctx context.Context, in frame.Frame) (frame.Sequence, error)

func (f Func) Sort(ctx context.Context, in frame.Frame) (frame.Sequence, error) {
	return f(ctx, in)
}

// prepare validates in and handles trivial inputs. When done is non-nil the
// caller returns it as is.
func prepare(in frame.Frame) (rec *frame.Recorder, work frame.Frame, done frame.Sequence, err error) {
	if len(in) > MaxElements {
		return nil, nil, nil, fmt.Errorf("%w: %d elements exceeds limit of %d", ErrInvalidInput, len(in), MaxElements)
	}
	if len(in) <= 1 {
		return nil, nil, frame.Already(in), nil
	}
	rec, work = frame.NewRecorder(in)
	return rec, work, nil, nil
}

func swap(work frame.Frame, i, j int) {
	work[i], work[j] = work[j], work[i]
}

// rotateRight moves work[hi] to lo, shifting work[lo:hi] up by one.
func rotateRight(work frame.Frame, lo, hi int) {
	e := work[hi]
	copy(work[lo+1:hi+1], work[lo:hi])
	work[lo] = e
}

func compared(idx ...int) frame.Mark { return frame.Highlight(frame.Compared, idx...) }
func active(idx ...int) frame.Mark   { return frame.Highlight(frame.Active, idx...) }
