// Package frame provides the data model for recorded sort traces.
//
// A sort run is described by:
//
//   - [Element]: a value plus its instantaneous [Role]
//   - [Frame]: the whole working array at one instant
//   - [Sequence]: every frame of one run, initial to fully sorted
//   - [Recorder]: snapshots a live working buffer into a Sequence
//
// # Snapshots
//
// A recorded Frame never aliases the buffer an algorithm mutates. The
// [Recorder] deep-copies at capture time, so later swaps cannot rewrite
// history:
//
//	rec, work := frame.NewRecorder(frame.FromValues(values))
//	work[0], work[1] = work[1], work[0]
//	rec.Capture(work, frame.Highlight(frame.Active, 0, 1))
//	seq := rec.Finish(work)
//
// Roles that stay with a position (Sorted) belong on the working buffer.
// Roles that describe a single step (Compared, Active, Pivot) are passed to
// Capture as [Mark] overlays and only touch the snapshot.
package frame
