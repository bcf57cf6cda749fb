package main

import (
	"fmt"
	"os"

	"github.com/ferro-lang/ferro/internal/cli"
	"github.com/ferro-lang/ferro/internal/config"
	"github.com/ferro-lang/ferro/internal/diag"
)

// report prints diags in the form cfg requests and returns the exit
// code a caller should use (exitCode if diags is empty, 1 otherwise).
func report(cfg *config.Config, diags []diag.Diagnostic, exitCode int) int {
	if len(diags) == 0 {
		return exitCode
	}
	if cfg.JSONDiagnostics {
		out, err := cli.RenderJSON(diags, 1)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(out)
		return 1
	}
	if cfg.ColorOutput {
		cli.WriteColor(os.Stderr, diags, false)
	} else {
		cli.WritePlain(os.Stderr, diags)
	}
	return 1
}
