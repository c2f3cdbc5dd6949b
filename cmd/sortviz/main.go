package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/san-kum/sortviz/internal/compare"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/i18n"
	"github.com/san-kum/sortviz/internal/registry"
	"github.com/san-kum/sortviz/internal/sorting"
)

var (
	dataDir    string
	configFile string
	preset     string
	lang       string
	verbose    bool

	count       int
	seed        int64
	interval    int
	fps         int
	maxAttempts int
	compact     bool
	theme       string

	plain  bool
	output string
)

var logger = zap.NewNop()

// main registers commands and flags and executes the root command. With no
// subcommand it opens the interactive menu.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "step-by-step sorting algorithm visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runMenu,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sortviz", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", config.DefaultLang, "language for titles (en, fr)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addRunFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play [algorithm] [dataset]",
		Short: "play an algorithm in the terminal (\"all\" plays every one side by side)",
		Args:  cobra.MaximumNArgs(2),
		RunE:  playTrace,
	}
	addRunFlags(playCmd)
	playCmd.Flags().BoolVar(&plain, "plain", false, "print frames instead of the interactive player")

	runCmd := &cobra.Command{
		Use:   "run [algorithm] [dataset]",
		Short: "trace an algorithm and store the run",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runTrace,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [dataset]",
		Short: "run every algorithm on the same input and compare",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareAll,
	}
	addRunFlags(compareCmd)

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "trace an algorithm over many random inputs",
		Args:  cobra.ExactArgs(1),
		RunE:  benchAlgorithm,
	}
	addRunFlags(benchCmd)
	benchCmd.Flags().IntVar(&trials, "trials", 20, "number of random inputs")

	sweepCmd := &cobra.Command{
		Use:   "sweep [algorithm] [dataset]",
		Short: "measure trace growth over input sizes",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  sweepAlgorithm,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepMin, "min", 0, "smallest input size")
	sweepCmd.Flags().IntVar(&sweepMax, "max", 64, "largest input size")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 9, "number of sizes")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the inversion curve of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVarP(&output, "output", "o", "", "also write the curve as SVG")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	saveGIFCmd := &cobra.Command{
		Use:   "save-gif [algorithm] [dataset]",
		Short: "save an animated GIF",
		Args:  cobra.MaximumNArgs(2),
		RunE:  saveFile(".gif"),
	}
	saveHTMLCmd := &cobra.Command{
		Use:   "save-html [algorithm] [dataset]",
		Short: "save a self-contained HTML player",
		Args:  cobra.MaximumNArgs(2),
		RunE:  saveFile(".html"),
	}
	saveSVGCmd := &cobra.Command{
		Use:   "save-svg [algorithm] [dataset]",
		Short: "save the final frame as SVG",
		Args:  cobra.MaximumNArgs(2),
		RunE:  saveFile(".svg"),
	}
	for _, c := range []*cobra.Command{saveGIFCmd, saveHTMLCmd, saveSVGCmd} {
		addRunFlags(c)
		c.Flags().StringVarP(&output, "output", "o", "", "output file (default <title>-<dataset>-animation)")
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	addRunFlags(initConfigCmd)

	rootCmd.AddCommand(playCmd, runCmd, listCmd, algorithmsCmd, presetsCmd, compareCmd, benchCmd, sweepCmd,
		plotCmd, exportJSONCmd, exportCSVCmd, saveGIFCmd, saveHTMLCmd, saveSVGCmd, scenarioCmd, initConfigCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&count, "count", "n", config.DefaultConfig().Count, "number of elements")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&interval, "interval", config.DefaultFrameInterval, "milliseconds between frames")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second for saved animations")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", config.DefaultConfig().MaxAttempts, "monkey sort shuffle cap")
	cmd.Flags().BoolVar(&compact, "compact", false, "drop frames identical to the previous one")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// resolveConfig applies defaults, then the preset, then the config file,
// then positional arguments and explicitly set flags.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Overlay(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	if len(args) > 1 {
		cfg.Dataset = args[1]
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("interval") {
		cfg.FrameInterval = interval
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = maxAttempts
	}
	if flags.Changed("compact") {
		cfg.Compact = compact
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("lang") {
		cfg.Lang = lang
	}
	if flags.Changed("output") {
		cfg.Output = output
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("resolved config",
		zap.String("algorithm", cfg.Algorithm),
		zap.String("dataset", cfg.Dataset),
		zap.Int("count", cfg.Count),
		zap.Int64("seed", cfg.Seed))
	return cfg, nil
}

func tag(cfg *config.Config) language.Tag {
	return i18n.Parse(cfg.Lang)
}

// traceAll generates the configured input and traces the configured
// algorithm, or every algorithm for "all".
func traceAll(ctx context.Context, cfg *config.Config) ([]*compare.Result, []int, error) {
	values, err := cfg.Values()
	if err != nil {
		return nil, nil, err
	}
	k, err := registry.Parse(cfg.Algorithm)
	if err != nil {
		return nil, nil, err
	}
	if (k == registry.Monkey || k == registry.All) && len(values) > sorting.MonkeyWarnCount {
		logger.Warn("monkey sort is unlikely to finish on this many elements",
			zap.Int("count", len(values)),
			zap.Int("max_attempts", cfg.MaxAttempts))
	}

	results, err := compare.New(cfg.Options(), logger).Run(ctx, []registry.Kind{k}, values)
	if err != nil {
		return nil, nil, err
	}
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", res.Entry.Key, res.Err)
		}
		if cfg.Compact {
			res.Frames = res.Frames.Compact()
		}
	}
	return results, values, nil
}

// traceOne is traceAll for commands that need a single algorithm.
func traceOne(ctx context.Context, cfg *config.Config) (*compare.Result, error) {
	if k, _ := registry.Parse(cfg.Algorithm); k == registry.All {
		return nil, fmt.Errorf("%w: %q needs a single algorithm", registry.ErrUnknownAlgorithm, cfg.Algorithm)
	}
	results, _, err := traceAll(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

func frameInterval(cfg *config.Config) time.Duration {
	return time.Duration(cfg.FrameInterval) * time.Millisecond
}
