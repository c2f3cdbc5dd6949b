package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/compare"
	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/frame"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/registry"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/storage"
)

var ErrUnsupportedFormat = errors.New("automation: unsupported output format")

// Scenario defines a scripted sequence of sort runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single step in a scenario. Zero Count, Seed and
// MaxAttempts fall back to the engine defaults.
type ScenarioStep struct {
	Algorithm   string `yaml:"algorithm"`
	Dataset     string `yaml:"dataset"`
	Count       int    `yaml:"count"`
	Seed        int64  `yaml:"seed"`
	MaxAttempts int    `yaml:"max_attempts"`
	// SaveAs optionally exports the trace too; the extension picks the
	// format (.json, .csv, .gif, .html or .svg).
	SaveAs string `yaml:"save_as"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

func (s ScenarioStep) options() registry.Options {
	opts := registry.DefaultOptions()
	if s.MaxAttempts != 0 {
		opts.MaxAttempts = s.MaxAttempts
	}
	if s.Seed != 0 {
		opts.Seed = s.Seed
	}
	return opts
}

func (s ScenarioStep) datasetName() string {
	if s.Dataset == "" {
		return dataset.Random.String()
	}
	return s.Dataset
}

func (s ScenarioStep) values() ([]int, error) {
	k, err := dataset.Parse(s.datasetName())
	if err != nil {
		return nil, err
	}
	count := s.Count
	if count == 0 {
		count = dataset.DefaultCount
	}
	return dataset.GenerateSeeded(k, count, s.Seed)
}

// RunScenario executes all steps in a scenario, saving every trace to st,
// and returns the run ids in order. An "all" step saves one run per
// algorithm. Ids saved before a failing step are returned with the error.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ids := make([]string, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		logger.Info("running step",
			zap.String("scenario", scenario.Name),
			zap.Int("step", i+1),
			zap.Int("of", len(scenario.Steps)),
			zap.String("algorithm", step.Algorithm))

		k, err := registry.Parse(step.Algorithm)
		if err != nil {
			return ids, fmt.Errorf("step %d: %w", i+1, err)
		}
		values, err := step.values()
		if err != nil {
			return ids, fmt.Errorf("step %d: %w", i+1, err)
		}

		results, err := compare.New(step.options(), logger).Run(ctx, []registry.Kind{k}, values)
		if err != nil {
			return ids, fmt.Errorf("step %d: %w", i+1, err)
		}

		for _, res := range results {
			id, err := st.Save(storage.RunMetadata{
				Algorithm: res.Entry.Key,
				Title:     res.Entry.Title,
				Dataset:   step.datasetName(),
				Count:     len(values),
				Seed:      step.Seed,
				Metrics:   res.Metrics,
			}, res.Frames)
			if err != nil {
				return ids, fmt.Errorf("step %d: %w", i+1, err)
			}
			ids = append(ids, id)

			if step.SaveAs != "" {
				path := step.SaveAs
				if len(results) > 1 {
					path = suffixed(path, res.Entry.Key)
				}
				if err := Export(path, res.Entry, res.Frames); err != nil {
					return ids, fmt.Errorf("step %d: %w", i+1, err)
				}
			}
		}
	}

	return ids, nil
}

func suffixed(path, key string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + key + ext
}

// Export writes seq to path in the format named by its extension.
func Export(path string, entry registry.Entry, seq frame.Sequence) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".csv", ".gif", ".html", ".svg":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".json":
		err = export.JSON(f, export.Meta{Algorithm: entry.Key, Title: entry.Label()}, seq)
	case ".csv":
		err = storage.WriteCSV(f, seq)
	case ".gif":
		err = export.GIF(f, seq, export.DefaultGIFOptions())
	case ".html":
		err = export.HTML(f, entry.Label(), seq, export.DefaultGIFOptions().FPS)
	case ".svg":
		_, err = f.WriteString(export.FrameSVG(seq.Last(), 800, 400, export.DefaultPalette()))
	}
	if err != nil {
		return err
	}
	return f.Close()
}

// SizeSweep measures how one algorithm's trace grows with input size.
type SizeSweep struct {
	Algorithm string
	Dataset   string
	MinCount  int
	MaxCount  int
	NumSteps  int
	Seed      int64
}

// SweepResult holds the measurements for one input size.
type SweepResult struct {
	Count       int
	Frames      int
	Comparisons float64
	Writes      float64
}

// RunSweep traces the algorithm at NumSteps sizes evenly spaced between
// MinCount and MaxCount.
func RunSweep(ctx context.Context, sweep *SizeSweep, logger *zap.Logger) ([]SweepResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sweep.NumSteps < 1 || sweep.MinCount < 0 || sweep.MaxCount < sweep.MinCount {
		return nil, fmt.Errorf("%w: sweep %d..%d in %d steps", sorting.ErrInvalidInput, sweep.MinCount, sweep.MaxCount, sweep.NumSteps)
	}
	k, err := registry.Parse(sweep.Algorithm)
	if err != nil {
		return nil, err
	}
	if k == registry.All {
		return nil, fmt.Errorf("%w: sweep needs a single algorithm", registry.ErrUnknownAlgorithm)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		count := sweep.MinCount
		if sweep.NumSteps > 1 {
			count += i * (sweep.MaxCount - sweep.MinCount) / (sweep.NumSteps - 1)
		}

		step := ScenarioStep{Dataset: sweep.Dataset, Seed: sweep.Seed}
		values, err := sizedValues(step, count)
		if err != nil {
			return nil, err
		}

		seq, err := registry.Generate(ctx, k, values, step.options())
		if err != nil {
			return nil, err
		}

		m := metrics.Collect(seq, metrics.NewComparisons(), metrics.NewWrites())
		results = append(results, SweepResult{
			Count:       count,
			Frames:      seq.Len(),
			Comparisons: m["comparisons"],
			Writes:      m["writes"],
		})

		logger.Debug("sweep step",
			zap.String("algorithm", sweep.Algorithm),
			zap.Int("count", count),
			zap.Int("frames", seq.Len()))
	}

	return results, nil
}

// sizedValues is values with an explicit count, where zero means empty
// rather than the default size.
func sizedValues(step ScenarioStep, count int) ([]int, error) {
	if count == 0 {
		return []int{}, nil
	}
	step.Count = count
	return step.values()
}

// TrialStats summarises repeated runs over different random inputs.
type TrialStats struct {
	Trials     int
	MinFrames  int
	MaxFrames  int
	MeanFrames float64
	// Unfinished counts monkey sort runs that hit their attempt cap.
	Unfinished int
}

// RunTrials traces the algorithm over trials random inputs of the given
// size, seeded seed, seed+1, ...
func RunTrials(ctx context.Context, algorithm string, count, trials int, seed int64) (TrialStats, error) {
	k, err := registry.Parse(algorithm)
	if err != nil {
		return TrialStats{}, err
	}
	if trials < 1 {
		return TrialStats{}, fmt.Errorf("%w: trials must be positive, got %d", sorting.ErrInvalidInput, trials)
	}

	stats := TrialStats{Trials: trials}
	total := 0
	for t := 0; t < trials; t++ {
		values, err := dataset.GenerateSeeded(dataset.Random, count, seed+int64(t))
		if err != nil {
			return TrialStats{}, err
		}
		opts := registry.DefaultOptions()
		opts.Seed = seed + int64(t)

		seq, err := registry.Generate(ctx, k, values, opts)
		if errors.Is(err, sorting.ErrNotTerminated) {
			stats.Unfinished++
		} else if err != nil {
			return TrialStats{}, err
		}

		n := seq.Len()
		if t == 0 || n < stats.MinFrames {
			stats.MinFrames = n
		}
		stats.MaxFrames = max(stats.MaxFrames, n)
		total += n
	}
	stats.MeanFrames = float64(total) / float64(trials)
	return stats, nil
}
