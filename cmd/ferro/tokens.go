package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream for a Ferro source file or standard input",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		toks, errs, _, err := lexSource(filePathArg(args))
		if err != nil {
			return err
		}
		if len(errs) != 0 {
			os.Exit(report(cfg, errs, 1))
		}
		for _, tok := range toks {
			fmt.Printf("%-4d:%-4d %-16s %q\n", tok.Line, tok.Column, tok.Type, tok.Lexeme)
		}
		return nil
	},
}
