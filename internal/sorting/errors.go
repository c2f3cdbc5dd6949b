package sorting

import (
	"errors"
	"fmt"
)

// Domain errors for sort runs.
var (
	// ErrUnknownAlgorithm indicates a key that names no executable algorithm.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrInvalidInput indicates an input the engine refuses to trace.
	ErrInvalidInput = errors.New("sorting: invalid input")

	// ErrNotTerminated indicates monkey sort ran out of attempts.
	ErrNotTerminated = errors.New("sorting: attempt cap exceeded before sorted")
)

// TraceError wraps an error with the partial trace recorded before it.
type TraceError struct {
	Algorithm string
	Frames    int
	Wrapped   error
}

func (e *TraceError) Error() string {
	return fmt.Sprintf("%s after %d frames: %v", e.Algorithm, e.Frames, e.Wrapped)
}

func (e *TraceError) Unwrap() error {
	return e.Wrapped
}
