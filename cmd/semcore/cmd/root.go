// Package cmd wires the semcore CLI's Cobra command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "semcore",
	Short:   "Scope, type, and IR analysis for the course compiler's language",
	Version: "0.1.0",
}

// Execute runs the root command, returning any error a subcommand
// produced.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the run id and the quadruple stream alongside diagnostics")
	rootCmd.AddCommand(analyzeCmd)
}
