// Package cli provides the command-line interface for TreasuryMan.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treasurytools/treasuryman/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treasuryman",
		Short: "Process line-delimited input into a structured JSON report",
		Long: `TreasuryMan is a batch text-processing tool.

It reads a line-delimited input file, runs each line through the treasury
processor, and writes the collected results as a pretty-printed JSON array.

A run with no input file processes zero lines; a run with no output file
computes results without writing them. Both are valid no-op runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewProcessCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
