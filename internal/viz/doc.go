// Package viz plays sort traces in the terminal.
//
// The package implements two Bubble Tea models:
//
//   - [Model]: a single trace with a stats panel and inversion chart
//   - [Grid]: several traces side by side on a shared clock
//
// Bars take the colour of their role in the current [Theme].
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from the first frame
//	[ ]   - Step back/forward one frame (pauses)
//	+ -   - Faster/slower
//	T     - Cycle color themes
//	G     - Save the trace as a GIF (player only)
//	?     - Show help overlay
//	Q     - Quit
package viz
