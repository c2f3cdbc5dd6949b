package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/frame"
	"github.com/san-kum/sortviz/internal/i18n"
	"github.com/san-kum/sortviz/internal/registry"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(tui.NewMenu(cfg.Count)).Run()
	if err != nil {
		return err
	}
	sel, ok := final.(tui.Menu).Selection()
	if !ok {
		return nil
	}

	cfg.Algorithm = sel.Algorithm
	cfg.Dataset = sel.Dataset
	cfg.Count = sel.Count
	if err := cfg.Validate(); err != nil {
		return err
	}
	return play(cmd, cfg)
}

func playTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	return play(cmd, cfg)
}

func play(cmd *cobra.Command, cfg *config.Config) error {
	results, _, err := traceAll(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	viz.SetTheme(cfg.Theme)
	t := tag(cfg)

	if len(results) > 1 {
		titles := make([]string, len(results))
		seqs := make([]frame.Sequence, len(results))
		for i, res := range results {
			titles[i] = i18n.Label(t, res.Entry.Key)
			seqs[i] = res.Frames
		}
		_, err := tea.NewProgram(viz.NewGrid(titles, seqs, frameInterval(cfg)), tea.WithAltScreen()).Run()
		return err
	}

	res := results[0]
	title := i18n.Label(t, res.Entry.Key)

	if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		r := tui.NewRenderer(title, 1000/cfg.FrameInterval)
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			r.NoClear()
		}
		return r.Play(cmd.Context(), os.Stdout, res.Frames)
	}

	m := viz.NewModel(title, res.Frames, frameInterval(cfg)).
		WithLanguage(t).
		WithGIFPath(export.DefaultName(i18n.Title(t, res.Entry.Key), i18n.Dataset(t, cfg.Dataset)) + ".gif")
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	t := tag(cfg)

	fmt.Printf("  %-16s %s\n", registry.AllKey, i18n.Title(t, registry.AllKey))
	for _, e := range registry.List() {
		fmt.Printf("  %-16s %-22s %s\n", e.Key, i18n.Title(t, e.Key), e.Complexity)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Printf("  %-12s %s on %d %s elements\n", name, p.Algorithm, p.Count, p.Dataset)
	}
	return nil
}
