package frame

import "fmt"

// Role tags what an element is doing in a frame.
type Role uint8

const (
	Default Role = iota
	Compared
	Active
	Pivot
	Sorted
)

var roleNames = [...]string{
	Default:  "default",
	Compared: "compared",
	Active:   "active",
	Pivot:    "pivot",
	Sorted:   "sorted",
}

// Roles lists every role in declaration order.
func Roles() []Role {
	return []Role{Default, Compared, Active, Pivot, Sorted}
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// Code is the one-letter form used in CSV storage.
func (r Role) Code() string {
	if int(r) < len(roleNames) {
		return roleNames[r][:1]
	}
	return "?"
}

func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return Default, fmt.Errorf("unknown role: %s", s)
}

func RoleFromCode(c string) (Role, error) {
	for i, name := range roleNames {
		if name[:1] == c {
			return Role(i), nil
		}
	}
	return Default, fmt.Errorf("unknown role code: %q", c)
}

// Element is one bar of the array. Value and Origin never change once
// created; Origin is the element's position in the input and tells equal
// values apart.
type Element struct {
	Value  int
	Role   Role
	Origin int
}

func NewElement(v int) Element {
	return Element{Value: v}
}

type Frame []Element

func FromValues(values []int) Frame {
	f := make(Frame, len(values))
	for i, v := range values {
		f[i] = Element{Value: v, Origin: i}
	}
	return f
}

func (f Frame) Clone() Frame {
	c := make(Frame, len(f))
	copy(c, f)
	return c
}

func (f Frame) Len() int { return len(f) }

// Origins returns the input position of each element.
func (f Frame) Origins() []int {
	out := make([]int, len(f))
	for i, e := range f {
		out[i] = e.Origin
	}
	return out
}

func (f Frame) Values() []int {
	vs := make([]int, len(f))
	for i, e := range f {
		vs[i] = e.Value
	}
	return vs
}

// WithRole returns a copy of f with every element tagged r.
func (f Frame) WithRole(r Role) Frame {
	c := f.Clone()
	for i := range c {
		c[i].Role = r
	}
	return c
}

// IsAscending reports whether values are in non-decreasing order.
func (f Frame) IsAscending() bool {
	for i := 1; i < len(f); i++ {
		if f[i-1].Value > f[i].Value {
			return false
		}
	}
	return true
}

// Count returns how many elements carry role r.
func (f Frame) Count(r Role) int {
	n := 0
	for _, e := range f {
		if e.Role == r {
			n++
		}
	}
	return n
}

func (f Frame) Equal(other Frame) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}
	return true
}

// Sequence is the ordered trace of one sort run.
type Sequence []Frame

func (s Sequence) Len() int { return len(s) }

func (s Sequence) First() Frame {
	if len(s) == 0 {
		return nil
	}
	return s[0]
}

func (s Sequence) Last() Frame {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Compact drops frames identical to their predecessor. Recorders never do
// this on their own; renderers may opt in to shorten playback.
func (s Sequence) Compact() Sequence {
	if len(s) == 0 {
		return Sequence{}
	}
	out := Sequence{s[0]}
	for _, f := range s[1:] {
		if !f.Equal(out[len(out)-1]) {
			out = append(out, f)
		}
	}
	return out
}

// Mark is a transient role overlay applied to a single captured frame.
type Mark struct {
	Role    Role
	Indices []int
}

func Highlight(r Role, idx ...int) Mark {
	return Mark{Role: r, Indices: idx}
}

// Span highlights the half-open range [lo, hi).
func Span(r Role, lo, hi int) Mark {
	idx := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		idx = append(idx, i)
	}
	return Mark{Role: r, Indices: idx}
}
