// Package dataset generates initial arrays for sort runs.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultCount is the array size used when none is given.
const DefaultCount = 32

var (
	ErrInvalidCount   = errors.New("dataset: count must not be negative")
	ErrUnknownDataset = errors.New("dataset: unknown dataset")
)

type Kind uint8

const (
	Random Kind = iota
	Reversed
	FewUnique
	AlmostSorted
)

var names = [...]string{
	Random:       "random",
	Reversed:     "reversed",
	FewUnique:    "few-unique",
	AlmostSorted: "almost-sorted",
}

func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("dataset(%d)", uint8(k))
}

func Parse(s string) (Kind, error) {
	for i, n := range names {
		if n == s {
			return Kind(i), nil
		}
	}
	return Random, fmt.Errorf("%w: %s (available: %v)", ErrUnknownDataset, s, Names())
}

func Names() []string {
	return append([]string(nil), names[:]...)
}

// Generate builds n values of the given shape. Every shape except
// Reversed draws from rng.
func Generate(k Kind, n int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	switch k {
	case Random:
		data := ascending(n)
		rng.Shuffle(n, func(i, j int) { data[i], data[j] = data[j], data[i] })
		return data, nil
	case Reversed:
		data := make([]int, n)
		for i := range data {
			data[i] = n - i
		}
		return data, nil
	case FewUnique:
		return fewUnique(n, rng), nil
	case AlmostSorted:
		data := ascending(n)
		if n < 2 {
			return data, nil
		}
		a := rng.Intn(n)
		b := rng.Intn(n)
		for a == b {
			b = rng.Intn(n)
		}
		data[a], data[b] = data[b], data[a]
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, k)
	}
}

// GenerateSeeded is Generate with a fresh source seeded by seed.
func GenerateSeeded(k Kind, n int, seed int64) ([]int, error) {
	return Generate(k, n, rand.New(rand.NewSource(seed)))
}

func ascending(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i + 1
	}
	return data
}

// fewUnique fills the quarters of the array with d, 2d, 3d and n, where
// d = n/4, then shuffles.
func fewUnique(n int, rng *rand.Rand) []int {
	d := n / 4
	data := make([]int, 0, n)
	for i := 0; i < d; i++ {
		data = append(data, d)
	}
	for i := d; i < 2*d; i++ {
		data = append(data, 2*d)
	}
	for i := 2 * d; i < 3*d; i++ {
		data = append(data, 3*d)
	}
	for i := 3 * d; i < n; i++ {
		data = append(data, n)
	}
	rng.Shuffle(n, func(i, j int) { data[i], data[j] = data[j], data[i] })
	return data
}
