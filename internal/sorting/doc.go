// Package sorting implements step-recording sort algorithms.
//
// Every algorithm implements [Algorithm]: it takes the initial array and
// returns the full [frame.Sequence] of its execution, from the caller's
// order (all Default) to ascending order (all Sorted).
//
//   - [Insertion], [Bubble], [Merge]: stable
//   - [Shell]: Shell's halving gap sequence
//   - [Selection], [Heap]: finalized positions tagged Sorted as they settle
//   - [Quick]: Lomuto partition around the last element
//   - [Comb]: gap shrink factor 1.3
//   - [Monkey]: random shuffles until sorted, bounded by an attempt cap
//
// Values only ever move by swaps or rotations, so every recorded frame
// holds exactly the input's multiset of values.
//
// # Thread Safety
//
// Algorithms hold no mutable state between calls apart from [Monkey]'s
// random source. A single Algorithm value may be shared across goroutines,
// except Monkey: give each goroutine its own via [NewMonkey].
package sorting
