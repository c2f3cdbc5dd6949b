// Package registry maps algorithm keys to display metadata and runs them.
//
// Keys are parsed into a [Kind] once, at the boundary; everything past
// [Parse] works on the enumeration. The order of [Kinds] and [List] is the
// declaration order below and is part of the contract.
package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/frame"
	"github.com/san-kum/sortviz/internal/sorting"
)

// ErrUnknownAlgorithm is returned for keys outside the table and for the
// aggregate marker.
var ErrUnknownAlgorithm = sorting.ErrUnknownAlgorithm

type Kind uint8

const (
	Insertion Kind = iota
	Shell
	Selection
	Merge
	Quick
	Heap
	Bubble
	Comb
	Monkey

	// All is the reserved aggregate marker. It is never executable.
	All
)

// AllKey is the key of the aggregate marker.
const AllKey = "all"

type Entry struct {
	Kind       Kind
	Key        string
	Title      string
	Complexity string
}

// Label is the title followed by its complexity annotation.
func (e Entry) Label() string {
	return e.Title + " (" + e.Complexity + ")"
}

var table = [...]Entry{
	Insertion: {Insertion, "insertion_sort", "Insertion Sort", "O(n^2)"},
	Shell:     {Shell, "shell_sort", "Shell Sort", "O(n·log2(n)^2)"},
	Selection: {Selection, "selection_sort", "Selection Sort", "O(n^2)"},
	Merge:     {Merge, "merge_sort", "Merge Sort", "O(n·log2(n))"},
	Quick:     {Quick, "quick_sort", "Quick Sort", "O(n·log2(n))"},
	Heap:      {Heap, "heap_sort", "Heap Sort", "O(n·log2(n))"},
	Bubble:    {Bubble, "bubble_sort", "Bubble Sort", "O(n^2)"},
	Comb:      {Comb, "comb_sort", "Comb Sort", "O(n·log2(n))"},
	Monkey:    {Monkey, "monkey_sort", "Monkey Sort", "O(n·n!)"},
}

func (k Kind) String() string {
	if k == All {
		return AllKey
	}
	if int(k) < len(table) {
		return table[k].Key
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Executable reports whether k names a real algorithm.
func (k Kind) Executable() bool {
	return int(k) < len(table)
}

// Parse accepts the full key ("quick_sort"), the short form ("quick") or
// the aggregate marker ("all"), case-insensitively.
func Parse(key string) (Kind, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == AllKey {
		return All, nil
	}
	for _, e := range table {
		if k == e.Key || k == strings.TrimSuffix(e.Key, "_sort") {
			return e.Kind, nil
		}
	}
	return All, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, key)
}

func Lookup(k Kind) (Entry, error) {
	if !k.Executable() {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, k)
	}
	return table[k], nil
}

func LookupKey(key string) (Entry, error) {
	k, err := Parse(key)
	if err != nil {
		return Entry{}, err
	}
	return Lookup(k)
}

// Kinds returns every executable kind in registry order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(table))
	for _, e := range table {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// List returns every executable entry in registry order.
func List() []Entry {
	entries := make([]Entry, len(table))
	copy(entries, table[:])
	return entries
}

// Keys returns every accepted key including the aggregate marker, which
// comes first.
func Keys() []string {
	keys := []string{AllKey}
	for _, e := range table {
		keys = append(keys, e.Key)
	}
	return keys
}

type Options struct {
	// MaxAttempts caps monkey sort's shuffles.
	MaxAttempts int
	// Seed drives monkey sort's shuffles.
	Seed int64
}

func DefaultOptions() Options {
	return Options{
		MaxAttempts: sorting.DefaultMaxAttempts,
		Seed:        1,
	}
}

// New builds the algorithm for k.
func New(k Kind, opts Options) (sorting.Algorithm, error) {
	switch k {
	case Insertion:
		return sorting.NewInsertion(), nil
	case Shell:
		return sorting.NewShell(), nil
	case Selection:
		return sorting.NewSelection(), nil
	case Merge:
		return sorting.NewMerge(), nil
	case Quick:
		return sorting.NewQuick(), nil
	case Heap:
		return sorting.NewHeap(), nil
	case Bubble:
		return sorting.NewBubble(), nil
	case Comb:
		return sorting.NewComb(), nil
	case Monkey:
		return sorting.NewMonkey(sorting.MonkeyConfig{MaxAttempts: opts.MaxAttempts, Seed: opts.Seed}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, k)
	}
}

// Generate runs k over a private copy of values and returns its trace.
//
// For Monkey, an error wrapping sorting.ErrNotTerminated comes with the
// partial trace recorded before the cap was hit.
func Generate(ctx context.Context, k Kind, values []int, opts Options) (frame.Sequence, error) {
	algo, err := New(k, opts)
	if err != nil {
		return nil, err
	}
	return algo.Sort(ctx, frame.FromValues(values))
}

// GenerateKey is Generate for a string key.
func GenerateKey(ctx context.Context, key string, values []int, opts Options) (frame.Sequence, error) {
	k, err := Parse(key)
	if err != nil {
		return nil, err
	}
	return Generate(ctx, k, values, opts)
}
