package registry_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/frame"
	"github.com/san-kum/sortviz/internal/registry"
	"github.com/san-kum/sortviz/internal/sorting"
)

var _ = Describe("Registry", func() {
	DescribeTable("Parse",
		func(key string, want registry.Kind) {
			k, err := registry.Parse(key)
			Expect(err).NotTo(HaveOccurred())
			Expect(k).To(Equal(want))
		},
		Entry("full key", "quick_sort", registry.Quick),
		Entry("short key", "heap", registry.Heap),
		Entry("mixed case", "Bubble_Sort", registry.Bubble),
		Entry("padded", "  comb ", registry.Comb),
		Entry("monkey", "monkey_sort", registry.Monkey),
		Entry("aggregate", "all", registry.All),
	)

	It("rejects unknown keys", func() {
		_, err := registry.Parse("bogo_sort")
		Expect(err).To(MatchError(registry.ErrUnknownAlgorithm))
		Expect(err.Error()).To(ContainSubstring("bogo_sort"))
	})

	It("refuses to look up or run the aggregate marker", func() {
		_, err := registry.Lookup(registry.All)
		Expect(err).To(MatchError(registry.ErrUnknownAlgorithm))

		_, err = registry.Generate(context.Background(), registry.All, []int{2, 1}, registry.DefaultOptions())
		Expect(err).To(MatchError(registry.ErrUnknownAlgorithm))

		Expect(registry.All.Executable()).To(BeFalse())
	})

	It("lists executable algorithms in a fixed order without the marker", func() {
		keys := []string{}
		for _, e := range registry.List() {
			keys = append(keys, e.Key)
			Expect(e.Title).NotTo(BeEmpty())
			Expect(e.Complexity).To(HavePrefix("O("))
		}
		Expect(keys).To(Equal([]string{
			"insertion_sort", "shell_sort", "selection_sort", "merge_sort",
			"quick_sort", "heap_sort", "bubble_sort", "comb_sort", "monkey_sort",
		}))
		Expect(registry.Kinds()).To(HaveLen(9))
		Expect(registry.Kinds()).NotTo(ContainElement(registry.All))
		Expect(registry.Keys()[0]).To(Equal("all"))
		Expect(registry.Keys()).To(HaveLen(10))
	})

	It("round-trips kinds through their keys", func() {
		for _, k := range registry.Kinds() {
			got, err := registry.Parse(k.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(k))

			e, err := registry.LookupKey(k.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Kind).To(Equal(k))
		}
	})

	It("labels entries with their complexity", func() {
		e, err := registry.Lookup(registry.Merge)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Label()).To(Equal("Merge Sort (O(n·log2(n)))"))
	})

	It("generates a sorted trace for every algorithm", func() {
		values := []int{4, 2, 5, 1, 3}
		for _, k := range registry.Kinds() {
			seq, err := registry.Generate(context.Background(), k, values, registry.DefaultOptions())
			Expect(err).NotTo(HaveOccurred(), k.String())
			Expect(seq.Last().Values()).To(Equal([]int{1, 2, 3, 4, 5}), k.String())
			Expect(seq.Last().Count(frame.Sorted)).To(Equal(5), k.String())
		}
		Expect(values).To(Equal([]int{4, 2, 5, 1, 3}))
	})

	It("generates by key", func() {
		seq, err := registry.GenerateKey(context.Background(), "bubble", []int{5, 3, 3, 1}, registry.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(seq.Len()).To(Equal(13))

		_, err = registry.GenerateKey(context.Background(), "nope", nil, registry.DefaultOptions())
		Expect(err).To(MatchError(registry.ErrUnknownAlgorithm))
	})

	It("passes monkey options through", func() {
		opts := registry.Options{MaxAttempts: 2, Seed: 3}
		in := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
		seq, err := registry.Generate(context.Background(), registry.Monkey, in, opts)
		Expect(err).To(MatchError(sorting.ErrNotTerminated))
		Expect(seq.Len()).To(Equal(3))
	})
})
