package main

import (
	"fmt"

	"github.com/reglet-dev/enigma/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of enigma",
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "enigma version %s\n", info.Full()) //nolint:errcheck // Best-effort terminal output
		if _, err := info.Release(); err != nil {
			fmt.Fprintln(out, "development build") //nolint:errcheck // Best-effort terminal output
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
