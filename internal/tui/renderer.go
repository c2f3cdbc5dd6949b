package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/frame"
)

const (
	barWidth    = 60
	maxRows     = 48
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var glyphs = [...]rune{
	frame.Default:  '#',
	frame.Compared: '?',
	frame.Active:   '=',
	frame.Pivot:    '^',
	frame.Sorted:   '*',
}

// Renderer prints frames as horizontal bars, one line per element, for
// terminals where the interactive player is unavailable.
type Renderer struct {
	title     string
	frameRate int
	clear     bool
}

func NewRenderer(title string, frameRate int) *Renderer {
	return &Renderer{
		title:     title,
		frameRate: max(frameRate, 1),
		clear:     true,
	}
}

// NoClear turns off screen clearing so frames stack, which suits pipes and
// log files.
func (r *Renderer) NoClear() *Renderer {
	r.clear = false
	return r
}

// Play writes every frame of seq to w at the renderer's frame rate. It
// returns ctx's error if cancelled part way.
func (r *Renderer) Play(ctx context.Context, w io.Writer, seq frame.Sequence) error {
	if r.clear {
		fmt.Fprint(w, hideCursor)
		defer fmt.Fprint(w, showCursor)
	}

	ticker := time.NewTicker(time.Second / time.Duration(r.frameRate))
	defer ticker.Stop()

	hi := 0
	for _, e := range seq.First() {
		hi = max(hi, e.Value)
	}

	for i, f := range seq {
		if _, err := io.WriteString(w, r.Render(f, i, seq.Len(), hi)); err != nil {
			return err
		}
		if i == seq.Len()-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Render formats frame step of total. Arrays longer than maxRows are
// sampled evenly.
func (r *Renderer) Render(f frame.Frame, step, total, hi int) string {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  %s  frame %d/%d\n", r.title, step+1, total))
	b.WriteString("  " + strings.Repeat("-", barWidth+8) + "\n")

	rows := min(len(f), maxRows)
	for row := 0; row < rows; row++ {
		e := f[row*len(f)/rows]
		n := barWidth
		if hi > 0 {
			n = max(1, e.Value*barWidth/hi)
		}
		b.WriteString(fmt.Sprintf("  %6d %s\n", e.Value, strings.Repeat(string(glyph(e.Role)), n)))
	}

	b.WriteString("  " + strings.Repeat("-", barWidth+8) + "\n")
	b.WriteString("  " + legend() + "\n")
	return b.String()
}

func glyph(r frame.Role) rune {
	if int(r) < len(glyphs) {
		return glyphs[r]
	}
	return '#'
}

func legend() string {
	parts := make([]string, 0, len(frame.Roles()))
	for _, r := range frame.Roles() {
		parts = append(parts, fmt.Sprintf("%c %s", glyph(r), r))
	}
	return strings.Join(parts, "  ")
}
