package viz

import (
	"strings"

	"github.com/san-kum/sortviz/internal/frame"
)

var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// maxBarColumns is the widest array drawn one column per element; wider
// arrays go through the Braille canvas.
const maxBarColumns = 96

// renderBars draws f as vertical bars rows tall with eighth-block
// resolution, one terminal column per element.
func renderBars(f frame.Frame, hi, rows int, th Theme) string {
	if len(f) == 0 {
		return strings.Repeat("\n", rows)
	}

	eighths := make([]int, len(f))
	roles := make([]frame.Role, len(f))
	for i, e := range f {
		eighths[i] = scale(e.Value, hi, rows*8)
		roles[i] = e.Role
	}

	var b strings.Builder
	cells := make([]rune, len(f))
	for r := rows - 1; r >= 0; r-- {
		for i, h := range eighths {
			level := max(0, min(h-r*8, 8))
			cells[i] = blocks[level]
		}
		writeRuns(&b, cells, roles, th)
		b.WriteByte('\n')
	}
	return b.String()
}

// drawFrame picks the renderer for f's width.
func drawFrame(f frame.Frame, hi, rows, cols int, th Theme) string {
	if len(f) <= min(cols, maxBarColumns) {
		return renderBars(f, hi, rows, th)
	}
	c := NewCanvas(cols, rows)
	c.DrawBars(f, hi)
	return c.Render(th)
}

func maxValue(seqs ...frame.Sequence) int {
	hi := 0
	for _, seq := range seqs {
		for _, e := range seq.First() {
			hi = max(hi, e.Value)
		}
	}
	return hi
}

func frameAt(seq frame.Sequence, i int) frame.Frame {
	if len(seq) == 0 {
		return nil
	}
	return seq[max(0, min(i, len(seq)-1))]
}
