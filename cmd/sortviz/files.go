package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/i18n"
)

// saveFile builds the RunE of a save-* command writing the given format.
func saveFile(ext string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, args)
		if err != nil {
			return err
		}

		res, err := traceOne(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		path := cfg.Output
		if path == "" {
			t := tag(cfg)
			path = export.DefaultName(i18n.Title(t, res.Entry.Key), i18n.Dataset(t, cfg.Dataset)) + ext
		}

		if err := automation.Export(path, res.Entry, res.Frames); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d frames)\n", path, res.Frames.Len())
		return nil
	}
}
