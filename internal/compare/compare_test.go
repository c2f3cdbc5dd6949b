package compare

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/san-kum/sortviz/internal/registry"
	"github.com/san-kum/sortviz/internal/sorting"
)

func TestExpand(t *testing.T) {
	got := Expand([]registry.Kind{registry.Bubble, registry.All})
	require.Len(t, got, 9)
	require.Equal(t, registry.Bubble, got[0])

	got = Expand([]registry.Kind{registry.Quick, registry.Quick})
	require.Equal(t, []registry.Kind{registry.Quick}, got)
}

func TestRunAll(t *testing.T) {
	r := New(registry.DefaultOptions(), zaptest.NewLogger(t))
	values := []int{5, 3, 3, 1}

	results, err := r.Run(context.Background(), []registry.Kind{registry.All}, values)
	require.NoError(t, err)
	require.Len(t, results, 9)

	for _, res := range results {
		require.NotNil(t, res)
		require.NoError(t, res.Err, res.Entry.Key)
		require.Equal(t, []int{1, 3, 3, 5}, res.Frames.Last().Values(), res.Entry.Key)
		require.Equal(t, float64(0), res.Metrics["inversions"], res.Entry.Key)
		require.Equal(t, 1.0, res.Metrics["progress"], res.Entry.Key)
	}
	require.Equal(t, []int{5, 3, 3, 1}, values)
}

func TestRunToleratesMonkeyCap(t *testing.T) {
	opts := registry.Options{MaxAttempts: 1, Seed: 1}
	r := New(opts, nil)

	results, err := r.Run(context.Background(), []registry.Kind{registry.Monkey, registry.Bubble}, []int{9, 8, 7, 6, 5, 4, 3, 2, 1})
	require.NoError(t, err)
	require.Len(t, results, 2)

	monkey := results[0]
	require.True(t, errors.Is(monkey.Err, sorting.ErrNotTerminated))
	require.Equal(t, 2, monkey.Frames.Len())

	require.NoError(t, results[1].Err)
	require.Equal(t, results[1].Frames.Len(), Longest(results))
}

func TestRunFailsOnInvalidOptions(t *testing.T) {
	r := New(registry.Options{MaxAttempts: 0}, nil)
	_, err := r.Run(context.Background(), []registry.Kind{registry.Monkey}, []int{2, 1})
	require.ErrorIs(t, err, sorting.ErrInvalidInput)
}

func TestFrameAt(t *testing.T) {
	r := New(registry.DefaultOptions(), nil)
	results, err := r.Run(context.Background(), []registry.Kind{registry.Insertion}, []int{2, 1})
	require.NoError(t, err)

	res := results[0]
	require.Equal(t, res.Frames.Last(), res.FrameAt(res.Frames.Len()+10))
	require.Equal(t, res.Frames.First(), res.FrameAt(0))
}
