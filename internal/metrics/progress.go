package metrics

import "github.com/san-kum/sortviz/internal/frame"

// Progress is the fraction of positions tagged Sorted in the latest frame.
type Progress struct {
	name   string
	sorted int
	total  int
}

func NewProgress() *Progress {
	return &Progress{name: "progress"}
}

func (p *Progress) Name() string {
	return p.name
}

func (p *Progress) Observe(f frame.Frame, step int) {
	p.sorted = f.Count(frame.Sorted)
	p.total = f.Len()
}

func (p *Progress) Value() float64 {
	if p.total == 0 {
		return 1.0
	}
	return float64(p.sorted) / float64(p.total)
}

func (p *Progress) Reset() {
	p.sorted = 0
	p.total = 0
}
