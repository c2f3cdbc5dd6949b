package frame

// Recorder accumulates frames for one sort run. It is not safe for
// concurrent use; every run owns its own Recorder.
type Recorder struct {
	seq Sequence
}

// NewRecorder records initial with all roles reset to Default and returns
// a private working copy for the algorithm to mutate.
func NewRecorder(initial Frame) (*Recorder, Frame) {
	work := initial.WithRole(Default)
	r := &Recorder{seq: make(Sequence, 0, 4*len(initial)+2)}
	r.seq = append(r.seq, work.Clone())
	return r, work
}

// Already is the trace of an input that needs no work: one frame, every
// element Sorted.
func Already(initial Frame) Sequence {
	return Sequence{initial.WithRole(Sorted)}
}

// Capture appends a snapshot of work with marks applied to the copy.
// A capture is recorded even when nothing changed since the last one.
func (r *Recorder) Capture(work Frame, marks ...Mark) {
	snap := work.Clone()
	for _, m := range marks {
		for _, i := range m.Indices {
			if i >= 0 && i < len(snap) {
				snap[i].Role = m.Role
			}
		}
	}
	r.seq = append(r.seq, snap)
}

// Finish records work fully Sorted and returns the trace.
func (r *Recorder) Finish(work Frame) Sequence {
	r.seq = append(r.seq, work.WithRole(Sorted))
	return r.seq
}

// Frames returns what has been recorded so far.
func (r *Recorder) Frames() Sequence {
	return r.seq
}

func (r *Recorder) Len() int { return len(r.seq) }
