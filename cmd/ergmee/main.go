// Command ergmee runs, batches, watches, and plots equilibrium-
// expectation ERGM estimation tasks (SPEC_FULL.md §9).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "ergmee",
	Short:   "Equilibrium Expectation ERGM estimator",
	Long:    `ergmee estimates Exponential Random Graph Model parameters via the Equilibrium Expectation Monte-Carlo method.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.AddCommand(runCmd, batchCmd, watchCmd, plotCmd, initCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
