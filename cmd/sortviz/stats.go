package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/i18n"
	"github.com/san-kum/sortviz/internal/registry"
)

var (
	trials     int
	sweepMin   int
	sweepMax   int
	sweepSteps int
)

func compareAll(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	cfg.Algorithm = registry.AllKey
	if len(args) > 0 {
		cfg.Dataset = args[0]
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	results, values, err := traceAll(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Frames.Len() < results[j].Frames.Len()
	})

	t := tag(cfg)
	fmt.Printf("%d %s elements, seed %d\n\n", len(values), i18n.Dataset(t, cfg.Dataset), cfg.Seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ALGORITHM\tFRAMES\tCOMPARISONS\tWRITES\tTIME\t")
	for _, res := range results {
		name := i18n.Title(t, res.Entry.Key)
		if res.Err != nil {
			name += " (unfinished)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\t\n",
			name,
			humanize.Comma(int64(res.Frames.Len())),
			humanize.Comma(int64(res.Metrics["comparisons"])),
			humanize.Comma(int64(res.Metrics["writes"])),
			res.Elapsed.Round(time.Microsecond),
		)
	}
	return w.Flush()
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	stats, err := automation.RunTrials(cmd.Context(), cfg.Algorithm, cfg.Count, trials, cfg.Seed)
	if err != nil {
		return err
	}

	fmt.Printf("%s, %d trials of %d random elements\n", i18n.Label(tag(cfg), cfg.Algorithm), stats.Trials, cfg.Count)
	fmt.Println(rule(40))
	fmt.Printf("  min frames:  %s\n", humanize.Comma(int64(stats.MinFrames)))
	fmt.Printf("  mean frames: %s\n", humanize.CommafWithDigits(stats.MeanFrames, 1))
	fmt.Printf("  max frames:  %s\n", humanize.Comma(int64(stats.MaxFrames)))
	if stats.Unfinished > 0 {
		fmt.Printf("  unfinished:  %d\n", stats.Unfinished)
	}
	return nil
}

func sweepAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	results, err := automation.RunSweep(cmd.Context(), &automation.SizeSweep{
		Algorithm: cfg.Algorithm,
		Dataset:   cfg.Dataset,
		MinCount:  sweepMin,
		MaxCount:  sweepMax,
		NumSteps:  sweepSteps,
		Seed:      cfg.Seed,
	}, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "N\tFRAMES\tCOMPARISONS\tWRITES\t")
	comparisons := make([]float64, len(results))
	for i, r := range results {
		comparisons[i] = r.Comparisons
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", r.Count,
			humanize.Comma(int64(r.Frames)),
			humanize.Comma(int64(r.Comparisons)),
			humanize.Comma(int64(r.Writes)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(comparisons) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(comparisons,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("comparisons, n = %d..%d", sweepMin, sweepMax))))
	}
	return nil
}
