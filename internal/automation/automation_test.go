package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/san-kum/sortviz/internal/registry"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/storage"
)

const scenarioYAML = `
name: smoke
description: two quick runs
steps:
  - algorithm: quick_sort
    dataset: reversed
    count: 6
  - algorithm: merge
    dataset: few-unique
    count: 10
    seed: 3
`

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	require.Equal(t, "smoke", sc.Name)
	require.Len(t, sc.Steps, 2)
	require.Equal(t, int64(3), sc.Steps[1].Seed)
}

func TestRunScenario(t *testing.T) {
	st := storage.New(t.TempDir())
	require.NoError(t, st.Init())

	sc := &Scenario{
		Name: "smoke",
		Steps: []ScenarioStep{
			{Algorithm: "quick_sort", Dataset: "reversed", Count: 6},
			{Algorithm: "bubble", Count: 5, SaveAs: filepath.Join(t.TempDir(), "bubble.json")},
		},
	}

	ids, err := RunScenario(context.Background(), sc, st, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, ids, 2)

	meta, err := st.Load(ids[0])
	require.NoError(t, err)
	require.Equal(t, "quick_sort", meta.Algorithm)
	require.Equal(t, 6, meta.Count)

	meta, err = st.Load(ids[1])
	require.NoError(t, err)
	require.Equal(t, "random", meta.Dataset)
	require.FileExists(t, sc.Steps[1].SaveAs)
}

func TestRunScenario_All(t *testing.T) {
	st := storage.New(t.TempDir())
	require.NoError(t, st.Init())

	out := filepath.Join(t.TempDir(), "trace.csv")
	sc := &Scenario{Steps: []ScenarioStep{{Algorithm: "all", Count: 4, SaveAs: out}}}

	ids, err := RunScenario(context.Background(), sc, st, nil)
	require.NoError(t, err)
	require.Len(t, ids, len(registry.Kinds()))
	require.FileExists(t, filepath.Join(filepath.Dir(out), "trace-heap_sort.csv"))
}

func TestRunScenario_StepError(t *testing.T) {
	st := storage.New(t.TempDir())
	sc := &Scenario{Steps: []ScenarioStep{
		{Algorithm: "insertion", Count: 3},
		{Algorithm: "sleep_sort"},
	}}

	ids, err := RunScenario(context.Background(), sc, st, nil)
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
	require.ErrorContains(t, err, "step 2:")
	require.Len(t, ids, 1)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	entry, err := registry.LookupKey("comb")
	require.NoError(t, err)

	err = Export(filepath.Join(t.TempDir(), "x.mp4"), entry, nil)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRunSweep(t *testing.T) {
	res, err := RunSweep(context.Background(), &SizeSweep{
		Algorithm: "insertion_sort",
		Dataset:   "reversed",
		MinCount:  0,
		MaxCount:  8,
		NumSteps:  3,
	}, nil)
	require.NoError(t, err)
	require.Len(t, res, 3)

	require.Equal(t, 0, res[0].Count)
	require.Equal(t, 1, res[0].Frames)
	require.Equal(t, 4, res[1].Count)
	// reversed input: every pair is compared and swapped
	require.Equal(t, float64(6), res[1].Comparisons)
	require.Equal(t, float64(6), res[1].Writes)
	require.Equal(t, 8, res[2].Count)
	require.Greater(t, res[2].Frames, res[1].Frames)

	_, err = RunSweep(context.Background(), &SizeSweep{Algorithm: "all", MaxCount: 2, NumSteps: 1}, nil)
	require.ErrorIs(t, err, registry.ErrUnknownAlgorithm)

	_, err = RunSweep(context.Background(), &SizeSweep{Algorithm: "heap", MinCount: 5, MaxCount: 1, NumSteps: 2}, nil)
	require.ErrorIs(t, err, sorting.ErrInvalidInput)
}

func TestRunTrials(t *testing.T) {
	stats, err := RunTrials(context.Background(), "shell", 10, 5, 1)
	require.NoError(t, err)
	require.Equal(t, 5, stats.Trials)
	require.LessOrEqual(t, stats.MinFrames, stats.MaxFrames)
	require.GreaterOrEqual(t, stats.MeanFrames, float64(stats.MinFrames))
	require.Zero(t, stats.Unfinished)

	_, err = RunTrials(context.Background(), "shell", 10, 0, 1)
	require.ErrorIs(t, err, sorting.ErrInvalidInput)
}
