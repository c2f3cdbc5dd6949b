package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/storage"
)

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	results, values, err := traceAll(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	for _, res := range results {
		runID, err := st.Save(storage.RunMetadata{
			Algorithm: res.Entry.Key,
			Title:     res.Entry.Title,
			Dataset:   cfg.Dataset,
			Count:     len(values),
			Seed:      cfg.Seed,
			Metrics:   res.Metrics,
		}, res.Frames)
		if err != nil {
			return err
		}
		logger.Info("saved run", zap.String("id", runID), zap.Int("frames", res.Frames.Len()))

		fmt.Printf("%s\n", res.Entry.Label())
		fmt.Printf("  run id:  %s\n", runID)
		fmt.Printf("  frames:  %s\n", humanize.Comma(int64(res.Frames.Len())))
		fmt.Printf("  elapsed: %v\n", res.Elapsed)
		printMetrics(res.Metrics)
	}
	return nil
}

func printMetrics(m map[string]float64) {
	for _, mt := range metrics.Default() {
		fmt.Printf("  %-12s %s\n", mt.Name()+":", formatMetric(mt.Name(), m[mt.Name()]))
	}
}

func formatMetric(name string, v float64) string {
	if name == "progress" {
		return fmt.Sprintf("%.0f%%", v*100)
	}
	return humanize.Comma(int64(v))
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tDATASET\tN\tFRAMES\tCREATED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			run.ID,
			run.Algorithm,
			run.Dataset,
			run.Count,
			humanize.Comma(int64(run.Frames)),
			humanize.Time(run.Timestamp),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	seq, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	inv := metrics.NewInversions()
	metrics.Collect(seq, inv)
	history := inv.History()
	if len(history) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s (%s, n=%d)\n\n", meta.Title, meta.Dataset, meta.Count)
	fmt.Println(asciigraph.Plot(history,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("inversions per frame")))

	if output != "" {
		svg := export.CurveSVG(history, 800, 300, "#ff00ff")
		if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", output)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	seq, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return export.JSON(os.Stdout, export.Meta{
		Algorithm: meta.Algorithm,
		Title:     meta.Title,
		Dataset:   meta.Dataset,
		Metrics:   meta.Metrics,
	}, seq)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	seq, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, seq)
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("scenario: %s (%d steps)\n", sc.Name, len(sc.Steps))
	if sc.Description != "" {
		fmt.Printf("  %s\n", sc.Description)
	}
	ids, err := automation.RunScenario(cmd.Context(), sc, st, logger)
	for _, id := range ids {
		fmt.Printf("  saved %s\n", id)
	}
	return err
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("seed") {
		cfg.Seed = 0
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func rule(n int) string {
	return strings.Repeat("-", n)
}
