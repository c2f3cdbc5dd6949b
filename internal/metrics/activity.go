package metrics

import "github.com/san-kum/sortviz/internal/frame"

// Activity counts frames in which any element carries one of its roles.
type Activity struct {
	name  string
	roles []frame.Role
	count int
}

// NewComparisons counts comparison frames.
func NewComparisons() *Activity {
	return &Activity{name: "comparisons", roles: []frame.Role{frame.Compared}}
}

// NewWrites counts swap and write frames.
func NewWrites() *Activity {
	return &Activity{name: "writes", roles: []frame.Role{frame.Active}}
}

func (a *Activity) Name() string {
	return a.name
}

func (a *Activity) Observe(f frame.Frame, step int) {
	for _, e := range f {
		for _, r := range a.roles {
			if e.Role == r {
				a.count++
				return
			}
		}
	}
}

func (a *Activity) Value() float64 {
	return float64(a.count)
}

func (a *Activity) Reset() {
	a.count = 0
}
