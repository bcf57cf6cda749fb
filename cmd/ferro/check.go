package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Lex, parse, and type-check a Ferro source file (or stdin) without running it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		_, diags, file, err := checkSource(filePathArg(args))
		if err != nil {
			return err
		}
		if len(diags) != 0 {
			os.Exit(report(cfg, diags, 1))
		}

		ok := color.New(color.FgGreen, color.Bold)
		if !cfg.ColorOutput {
			ok.DisableColor()
		}
		ok.Fprintf(os.Stdout, "✓ %s\n", file)
		return nil
	},
}
