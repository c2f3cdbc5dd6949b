package metrics

import (
	"testing"

	"github.com/san-kum/sortviz/internal/frame"
)

func TestCountInversions(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		expected int
	}{
		{"empty", nil, 0},
		{"single", []int{1}, 0},
		{"sorted", []int{1, 2, 3, 4}, 0},
		{"reversed", []int{4, 3, 2, 1}, 6},
		{"duplicates", []int{2, 2, 1}, 2},
		{"scenario", []int{5, 3, 3, 1}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]int(nil), tt.values...)
			if got := CountInversions(in); got != tt.expected {
				t.Errorf("CountInversions(%v) = %d, want %d", tt.values, got, tt.expected)
			}
			for i := range in {
				if in[i] != tt.values[i] {
					t.Fatal("CountInversions modified its input")
				}
			}
		})
	}
}

func TestActivity(t *testing.T) {
	seq := frame.Sequence{
		frame.FromValues([]int{2, 1}),
		{{Value: 2, Role: frame.Compared}, {Value: 1, Role: frame.Compared}},
		{{Value: 1, Role: frame.Active}, {Value: 2, Role: frame.Active}},
		{{Value: 1, Role: frame.Sorted}, {Value: 2, Role: frame.Sorted}},
	}

	got := Collect(seq, NewComparisons(), NewWrites())
	if got["comparisons"] != 1 {
		t.Errorf("expected 1 comparison, got %v", got["comparisons"])
	}
	if got["writes"] != 1 {
		t.Errorf("expected 1 write, got %v", got["writes"])
	}
}

func TestProgress(t *testing.T) {
	p := NewProgress()
	if p.Value() != 1.0 {
		t.Error("empty progress should be complete")
	}

	p.Observe(frame.Frame{{Value: 1, Role: frame.Sorted}, {Value: 2}}, 0)
	if p.Value() != 0.5 {
		t.Errorf("expected 0.5, got %v", p.Value())
	}

	p.Reset()
	if p.Value() != 1.0 {
		t.Error("expected reset progress to be complete")
	}
}

func TestInversionsHistory(t *testing.T) {
	m := NewInversions()
	m.Observe(frame.FromValues([]int{3, 2, 1}), 0)
	m.Observe(frame.FromValues([]int{1, 2, 3}), 1)

	h := m.History()
	if len(h) != 2 || h[0] != 3 || h[1] != 0 {
		t.Errorf("unexpected history: %v", h)
	}
	if m.Value() != 0 {
		t.Errorf("expected 0 for sorted frame, got %v", m.Value())
	}

	m.Reset()
	if len(m.History()) != 0 || m.Value() != 0 {
		t.Error("Reset did not clear history")
	}
}

func TestCollectResets(t *testing.T) {
	ms := Default()
	seq := frame.Sequence{{{Value: 1, Role: frame.Compared}}}

	Collect(seq, ms...)
	got := Collect(seq, ms...)
	if got["comparisons"] != 1 {
		t.Errorf("Collect should reset metrics between runs, got %v", got["comparisons"])
	}
	if len(got) != 4 {
		t.Errorf("expected 4 default metrics, got %d", len(got))
	}
}
