package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the ferro interpreter version, Git commit, build date, and Go version",
	Run: func(cmd *cobra.Command, args []string) {
		goVer := GoVersion
		if goVer == "unknown" {
			goVer = runtime.Version()
		}
		fmt.Printf("ferro version: %s\n", Version)
		fmt.Printf("Git commit: %s\n", GitCommit)
		fmt.Printf("Build date: %s\n", BuildDate)
		fmt.Printf("Go version: %s\n", goVer)
	},
}
