package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gotbb/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gotbb",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gotbb v%s\n", version.Version)
		fmt.Fprintln(out, "Timber Beam Bearing Calculator")
		fmt.Fprintf(out, "Build: %s (commit %s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
