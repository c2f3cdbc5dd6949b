package viz

import (
	"strings"

	"github.com/san-kum/sortviz/internal/frame"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// rolePriority decides which role colours a cell shared by several bars.
var rolePriority = [...]int{
	frame.Default:  0,
	frame.Sorted:   1,
	frame.Active:   2,
	frame.Compared: 3,
	frame.Pivot:    4,
}

// Canvas is a Braille pixel grid. Each cell column also remembers the most
// significant role drawn into it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	roles         []frame.Role
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		roles:  make([]frame.Role, w),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	for i := range c.roles {
		c.roles[i] = frame.Default
	}
}

// DrawBars plots f as vertical bars scaled so that hi fills the canvas
// height. Elements are spread evenly across the sub-pixel columns; when
// there are more elements than columns, neighbours share a column.
func (c *Canvas) DrawBars(f frame.Frame, hi int) {
	if len(f) == 0 {
		return
	}
	subW, subH := c.Width*2, c.Height*4

	for i, e := range f {
		x0 := i * subW / len(f)
		x1 := max((i+1)*subW/len(f), x0+1)
		if x1-x0 > 2 {
			x1-- // leave a gap between wide bars
		}
		h := scale(e.Value, hi, subH)

		for x := x0; x < x1 && x < subW; x++ {
			for y := subH - h; y < subH; y++ {
				c.Set(x, y)
			}
			col := x / 2
			if rolePriority[e.Role] > rolePriority[c.roles[col]] {
				c.roles[col] = e.Role
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render is String with every cell coloured by its column's role.
func (c *Canvas) Render(th Theme) string {
	var b strings.Builder
	for _, row := range c.Grid {
		writeRuns(&b, row, c.roles, th)
		b.WriteByte('\n')
	}
	return b.String()
}

// writeRuns renders cells in runs of equal role to keep escape codes down.
func writeRuns(b *strings.Builder, cells []rune, roles []frame.Role, th Theme) {
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && roles[i] == roles[start] {
			continue
		}
		b.WriteString(th.RoleStyle(roles[start]).Render(string(cells[start:i])))
		start = i
	}
}

// scale maps v in [0, hi] to [1, size]. Non-positive hi fills the whole
// range.
func scale(v, hi, size int) int {
	if hi <= 0 {
		return size
	}
	h := v * size / hi
	return max(1, min(h, size))
}
