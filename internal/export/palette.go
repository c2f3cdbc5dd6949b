package export

import (
	"fmt"
	"image/color"

	"github.com/san-kum/sortviz/internal/frame"
)

// Palette maps each role to the colour of its bars.
type Palette struct {
	Background color.RGBA
	Roles      map[frame.Role]color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0x0a, 0x0a, 0x0a, 0xff},
		Roles: map[frame.Role]color.RGBA{
			frame.Default:  {0x1f, 0x77, 0xb4, 0xff},
			frame.Compared: {0xd6, 0x27, 0x28, 0xff},
			frame.Active:   {0x2c, 0xa0, 0x2c, 0xff},
			frame.Pivot:    {0xff, 0xbf, 0x00, 0xff},
			frame.Sorted:   {0x94, 0x67, 0xbd, 0xff},
		},
	}
}

func (p Palette) Color(r frame.Role) color.RGBA {
	if c, ok := p.Roles[r]; ok {
		return c
	}
	return p.Roles[frame.Default]
}

func (p Palette) Hex(r frame.Role) string {
	return hex(p.Color(r))
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// DefaultName is the base file name for an exported animation.
func DefaultName(title, dataset string) string {
	return fmt.Sprintf("%s-%s-animation", title, dataset)
}

func valueRange(seq frame.Sequence) (lo, hi int) {
	first := true
	for _, f := range seq {
		for _, e := range f {
			if first {
				lo, hi = e.Value, e.Value
				first = false
				continue
			}
			lo = min(lo, e.Value)
			hi = max(hi, e.Value)
		}
	}
	return lo, hi
}

// barHeight scales v into [1, height] so that the smallest value still
// shows as a sliver.
func barHeight(v, lo, hi, height int) int {
	if hi <= lo {
		return height
	}
	lo = min(lo, 0)
	h := (v - lo) * height / (hi - lo)
	return max(h, 1)
}
