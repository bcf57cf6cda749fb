package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ferro-lang/ferro/internal/diag"
	"github.com/ferro-lang/ferro/internal/interp"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Type-check and execute a Ferro source file, or standard input when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		prog, diags, file, err := checkSource(filePathArg(args))
		if err != nil {
			return err
		}
		if len(diags) != 0 {
			os.Exit(report(cfg, diags, 1))
		}

		opts := []interp.Option{
			interp.WithStdout(os.Stdout),
			interp.WithStdin(os.Stdin),
			interp.WithMaxCallDepth(cfg.MaxCallDepth),
		}
		if cfg.TraceEval {
			opts = append(opts, interp.WithTrace(traceLogger(true)))
		}

		code, fatal := interp.New(file, opts...).Run(prog)
		if fatal != nil {
			os.Exit(report(cfg, []diag.Diagnostic{*fatal}, 1))
		}
		os.Exit(code)
		return nil
	},
}
