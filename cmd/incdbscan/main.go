// Command incdbscan drives the incremental clustering engine from the
// command line: load a configuration, feed it batches of points from
// newline-delimited JSON files, and report the resulting cluster labels.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "incdbscan",
	Short: "Incremental DBSCAN clustering over streaming points",
	Long: "incdbscan maintains the exact clustering that batch DBSCAN would\n" +
		"produce, updating it incrementally as points are inserted and deleted.",
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the incdbscan version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
}
