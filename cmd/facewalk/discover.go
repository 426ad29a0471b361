package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/facewalk"
	"github.com/katalvlaran/facewalk/graphml"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <file.graphml>",
	Short: "Print the minimal cycle basis forest as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		positions, edges, err := graphml.Load(f)
		if err != nil {
			return exitError{err: err, code: exitCodeFor(err)}
		}

		forest, err := facewalk.DiscoverWithLogger(positions, edges, logger())
		if err != nil {
			return exitError{err: err, code: exitCodeFor(err)}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(forest)
	},
}

func init() {
	discoverCmd.SilenceUsage = true
}
