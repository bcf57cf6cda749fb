package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ferro [file]",
		Short: "Ferro language interpreter and tooling",
		Long:  "Ferro is a small statically-typed imperative language. ferro lexes, type-checks, and tree-walks a .fe source file.",
		// With no subcommand, `ferro path/to/file.fe` behaves exactly like
		// `ferro run path/to/file.fe` (and a bare `ferro` reads from stdin,
		// same as `ferro run`).
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd.RunE(cmd, args)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "report diagnostics as a JSON document")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized diagnostic output")
	rootCmd.PersistentFlags().IntVar(&flagMaxCallDepth, "max-call-depth", 0, "override the interpreter's maximum call depth (0 uses config)")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false, "emit a structured debug log entry per evaluated statement")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokensCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
