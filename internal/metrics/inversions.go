package metrics

import "github.com/san-kum/sortviz/internal/frame"

// Inversions tracks how far each frame is from sorted order. Value is the
// count for the latest frame; History keeps one sample per frame.
type Inversions struct {
	name    string
	current int
	history []float64
}

func NewInversions() *Inversions {
	return &Inversions{
		name:    "inversions",
		history: make([]float64, 0),
	}
}

func (m *Inversions) Name() string {
	return m.name
}

func (m *Inversions) Observe(f frame.Frame, step int) {
	m.current = CountInversions(f.Values())
	m.history = append(m.history, float64(m.current))
}

func (m *Inversions) Value() float64 {
	return float64(m.current)
}

func (m *Inversions) History() []float64 {
	return m.history
}

func (m *Inversions) Reset() {
	m.current = 0
	m.history = m.history[:0]
}

// CountInversions returns the number of pairs i < j with values[i] >
// values[j]. values is not modified.
func CountInversions(values []int) int {
	buf := append([]int(nil), values...)
	tmp := make([]int, len(buf))
	return countMerge(buf, tmp)
}

func countMerge(a, tmp []int) int {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	n := countMerge(a[:mid], tmp[:mid]) + countMerge(a[mid:], tmp[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if a[j] < a[i] {
			n += mid - i
			tmp[k] = a[j]
			j++
		} else {
			tmp[k] = a[i]
			i++
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid])
	copy(tmp[k:], a[j:])
	copy(a, tmp[:len(a)])
	return n
}
