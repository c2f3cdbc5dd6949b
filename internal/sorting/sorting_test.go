package sorting_test

import (
	"context"
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/frame"
	"github.com/san-kum/sortviz/internal/sorting"
)

type named struct {
	name   string
	algo   func() sorting.Algorithm
	stable bool
}

var deterministic = []named{
	{"insertion", func() sorting.Algorithm { return sorting.NewInsertion() }, true},
	{"shell", func() sorting.Algorithm { return sorting.NewShell() }, false},
	{"selection", func() sorting.Algorithm { return sorting.NewSelection() }, false},
	{"merge", func() sorting.Algorithm { return sorting.NewMerge() }, true},
	{"quick", func() sorting.Algorithm { return sorting.NewQuick() }, false},
	{"heap", func() sorting.Algorithm { return sorting.NewHeap() }, false},
	{"bubble", func() sorting.Algorithm { return sorting.NewBubble() }, true},
	{"comb", func() sorting.Algorithm { return sorting.NewComb() }, false},
}

func inputs() map[string][]int {
	rng := rand.New(rand.NewSource(7))
	random := make([]int, 40)
	for i := range random {
		random[i] = rng.Intn(100)
	}
	dups := make([]int, 33)
	for i := range dups {
		dups[i] = rng.Intn(4)
	}
	return map[string][]int{
		"two":       {2, 1},
		"sorted":    {1, 2, 3, 4, 5, 6, 7, 8},
		"reversed":  {9, 8, 7, 6, 5, 4, 3, 2, 1},
		"all equal": {4, 4, 4, 4, 4},
		"negatives": {0, -3, 7, -3, 2, -10},
		"scenario":  {5, 3, 3, 1},
		"random":    random,
		"few dups":  dups,
	}
}

func run(a sorting.Algorithm, values []int) frame.Sequence {
	seq, err := a.Sort(context.Background(), frame.FromValues(values))
	Expect(err).NotTo(HaveOccurred())
	return seq
}

func sortedCopy(values []int) []int {
	c := append([]int(nil), values...)
	sort.Ints(c)
	return c
}

func sortedValues(f frame.Frame) []int {
	return sortedCopy(f.Values())
}

func expectStable(final frame.Frame) {
	for i := 1; i < len(final); i++ {
		if final[i-1].Value == final[i].Value {
			Expect(final[i-1].Origin).To(BeNumerically("<", final[i].Origin),
				"equal values %d reordered at %d", final[i].Value, i)
		}
	}
}

var _ = Describe("Algorithms", func() {
	for _, alg := range deterministic {
		alg := alg

		Describe(alg.name, func() {
			It("ends ascending and fully sorted, starting from the caller's order", func() {
				for name, in := range inputs() {
					seq := run(alg.algo(), in)

					Expect(seq.Len()).To(BeNumerically(">=", 2), name)
					Expect(seq.First().Values()).To(Equal(in), name)
					Expect(seq.First().Count(frame.Default)).To(Equal(len(in)), name)
					Expect(seq.Last().Values()).To(Equal(sortedCopy(in)), name)
					Expect(seq.Last().Count(frame.Sorted)).To(Equal(len(in)), name)
				}
			})

			It("conserves the multiset of values in every frame", func() {
				for name, in := range inputs() {
					want := sortedCopy(in)
					for i, f := range run(alg.algo(), in) {
						Expect(f.Len()).To(Equal(len(in)), "%s frame %d", name, i)
						Expect(sortedValues(f)).To(Equal(want), "%s frame %d", name, i)
					}
				}
			})

			It("is deterministic", func() {
				for name, in := range inputs() {
					Expect(run(alg.algo(), in)).To(Equal(run(alg.algo(), in)), name)
				}
			})

			It("leaves sorted input unchanged", func() {
				in := []int{1, 1, 2, 3, 5, 8, 13}
				seq := run(alg.algo(), in)
				Expect(seq.Last().Values()).To(Equal(seq.First().Values()))
			})

			It("short-circuits empty input to one empty frame", func() {
				seq := run(alg.algo(), []int{})
				Expect(seq.Len()).To(Equal(1))
				Expect(seq[0].Len()).To(Equal(0))
			})

			It("short-circuits a singleton to one sorted frame", func() {
				seq := run(alg.algo(), []int{42})
				Expect(seq.Len()).To(Equal(1))
				Expect(seq[0]).To(Equal(frame.Frame{{Value: 42, Role: frame.Sorted}}))
			})

			It("does not touch the caller's input", func() {
				in := frame.FromValues([]int{3, 2, 1})
				in[0].Role = frame.Pivot
				_, err := alg.algo().Sort(context.Background(), in)
				Expect(err).NotTo(HaveOccurred())
				Expect(in.Values()).To(Equal([]int{3, 2, 1}))
				Expect(in[0].Role).To(Equal(frame.Pivot))
			})

			It("rejects inputs above the size limit", func() {
				_, err := alg.algo().Sort(context.Background(), make(frame.Frame, sorting.MaxElements+1))
				Expect(err).To(MatchError(sorting.ErrInvalidInput))
			})

			if alg.stable {
				It("keeps equal values in input order", func() {
					for name, in := range inputs() {
						By(name)
						expectStable(run(alg.algo(), in).Last())
					}
				})
			}
		})
	}
})

var _ = Describe("Recording granularity", func() {
	It("records one frame per bubble comparison and swap", func() {
		seq := run(sorting.NewBubble(), []int{5, 3, 3, 1})

		// 6 comparisons and 5 swaps over three passes, plus initial and final.
		Expect(seq.Len()).To(Equal(13))
		Expect(seq.Last().Values()).To(Equal([]int{1, 3, 3, 5}))
		Expect(seq.Last().Origins()).To(Equal([]int{3, 1, 2, 0}))

		compares := 0
		for _, f := range seq {
			if f.Count(frame.Compared) == 2 {
				compares++
			}
		}
		Expect(compares).To(Equal(6))
	})

	It("stops bubbling after a clean pass", func() {
		seq := run(sorting.NewBubble(), []int{1, 2, 3, 4})
		Expect(seq.Len()).To(Equal(2 + 3))
	})

	It("records compare then shift for insertion", func() {
		seq := run(sorting.NewInsertion(), []int{2, 1})
		Expect(seq.Len()).To(Equal(4))
		Expect(seq[1][0].Role).To(Equal(frame.Compared))
		Expect(seq[2].Values()).To(Equal([]int{1, 2}))
		Expect(seq[2][0].Role).To(Equal(frame.Active))
	})

	It("shows the running minimum as pivot in selection", func() {
		seq := run(sorting.NewSelection(), []int{3, 1, 2})
		Expect(seq[1][0].Role).To(Equal(frame.Pivot))
		Expect(seq[1][1].Role).To(Equal(frame.Compared))
		Expect(seq[2][1].Role).To(Equal(frame.Pivot))
		Expect(seq[2][2].Role).To(Equal(frame.Compared))
	})

	It("uses the last element as quicksort pivot", func() {
		seq := run(sorting.NewQuick(), []int{3, 1, 2})
		Expect(seq[1][2].Role).To(Equal(frame.Pivot))
		Expect(seq[1][0].Role).To(Equal(frame.Compared))
	})

	It("writes each merge output slot once", func() {
		seq := run(sorting.NewMerge(), []int{2, 1})
		// compare, write 0, tail write 1
		Expect(seq.Len()).To(Equal(5))
		Expect(seq[2].Values()).To(Equal([]int{1, 2}))
		Expect(seq[2][0].Role).To(Equal(frame.Active))
		Expect(seq[3][1].Role).To(Equal(frame.Active))
	})

	It("halves shell gaps", func() {
		Expect(sorting.NewShell().Gaps(20)).To(Equal([]int{10, 5, 2, 1}))
		Expect(sorting.NewShell().Gaps(1)).To(BeEmpty())
	})

	It("tags settled heap positions as sorted before the end", func() {
		seq := run(sorting.NewHeap(), []int{4, 1, 3, 2})
		sawPartial := false
		for _, f := range seq[:seq.Len()-1] {
			if n := f.Count(frame.Sorted); n > 0 && n < 4 {
				sawPartial = true
			}
		}
		Expect(sawPartial).To(BeTrue())
	})
})

var _ = Describe("Monkey", func() {
	small := map[string][]int{
		"reversed": {4, 3, 2, 1},
		"dups":     {2, 1, 2, 1, 3},
		"sorted":   {1, 2, 3},
	}

	It("sorts small inputs within the default cap", func() {
		for name, in := range small {
			seq := run(sorting.NewMonkey(sorting.DefaultMonkeyConfig()), in)
			Expect(seq.Last().Values()).To(Equal(sortedCopy(in)), name)
			Expect(seq.Last().Count(frame.Sorted)).To(Equal(len(in)), name)
			for _, f := range seq {
				Expect(sortedValues(f)).To(Equal(sortedCopy(in)), name)
			}
		}
	})

	It("records nothing but the endpoints for sorted input", func() {
		seq := run(sorting.NewMonkey(sorting.DefaultMonkeyConfig()), []int{1, 2, 3})
		Expect(seq.Len()).To(Equal(2))
	})

	It("is reproducible for a fixed seed", func() {
		cfg := sorting.MonkeyConfig{MaxAttempts: 1000, Seed: 99}
		a := run(sorting.NewMonkey(cfg), []int{3, 1, 2, 4})
		b := run(sorting.NewMonkey(cfg), []int{3, 1, 2, 4})
		Expect(a).To(Equal(b))
	})

	It("returns the partial trace when the cap is exceeded", func() {
		in := []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
		cfg := sorting.MonkeyConfig{MaxAttempts: 3, Seed: 5}
		seq, err := sorting.NewMonkey(cfg).Sort(context.Background(), frame.FromValues(in))

		Expect(err).To(MatchError(sorting.ErrNotTerminated))
		var te *sorting.TraceError
		Expect(err).To(BeAssignableToTypeOf(te))
		Expect(seq.Len()).To(Equal(1 + 3))
		Expect(seq.Last().Count(frame.Sorted)).To(BeZero())
	})

	It("requires a positive cap", func() {
		_, err := sorting.NewMonkey(sorting.MonkeyConfig{}).Sort(context.Background(), frame.FromValues([]int{2, 1}))
		Expect(err).To(MatchError(sorting.ErrInvalidInput))
	})

	It("stops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		seq, err := sorting.NewMonkey(sorting.DefaultMonkeyConfig()).Sort(ctx, frame.FromValues([]int{2, 1}))
		Expect(err).To(MatchError(context.Canceled))
		Expect(seq.Len()).To(Equal(1))
	})
})

var _ = Describe("Func", func() {
	It("adapts a plain function", func() {
		called := false
		var a sorting.Algorithm = sorting.Func(func(ctx context.Context, in frame.Frame) (frame.Sequence, error) {
			called = true
			return frame.Already(in), nil
		})
		seq, err := a.Sort(context.Background(), frame.FromValues([]int{1}))
		Expect(err).NotTo(HaveOccurred())
		Expect(called).To(BeTrue())
		Expect(seq.Len()).To(Equal(1))
	})
})
