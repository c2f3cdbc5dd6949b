// Package metrics summarises sort traces frame by frame.
package metrics

import "github.com/san-kum/sortviz/internal/frame"

type Metric interface {
	Name() string
	Observe(f frame.Frame, step int)
	Value() float64
	Reset()
}

// Default returns a fresh set of the standard trace metrics.
func Default() []Metric {
	return []Metric{
		NewComparisons(),
		NewWrites(),
		NewInversions(),
		NewProgress(),
	}
}

// Collect resets ms, feeds every frame of seq through them and returns
// their values by name.
func Collect(seq frame.Sequence, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i, f := range seq {
		for _, m := range ms {
			m.Observe(f, i)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
