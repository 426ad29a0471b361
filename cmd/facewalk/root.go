package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/facewalk/diag"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "facewalk",
	Short: "Extract the minimal cycle basis of an embedded planar graph",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit structured progress logging")
	rootCmd.AddCommand(discoverCmd, areasCmd)
}

func logger() *diag.Logger {
	if !verbose {
		return diag.Noop()
	}

	return diag.New(os.Stderr, slog.LevelDebug)
}
