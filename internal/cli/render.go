// Package cli renders diag.Diagnostic values the three ways cmd/ferro
// needs: the spec's required plain line, a colorized terminal form
// grounded on the teacher's compiler/errors.FormatForTerminal, and a
// JSON report grounded on its FormatErrorsAsJSON.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ferro-lang/ferro/internal/diag"
)

// Report is the JSON document `ferro run --json` / `ferro check --json`
// emit: a status tag plus every diagnostic collected along the way.
type Report struct {
	Status      string           `json:"status"`
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
	ExitCode    int              `json:"exit_code"`
}

// RenderJSON marshals a Report with two-space indentation.
func RenderJSON(diags []diag.Diagnostic, exitCode int) (string, error) {
	status := "ok"
	if len(diags) > 0 {
		status = "error"
	}
	data, err := json.MarshalIndent(Report{Status: status, Diagnostics: diags, ExitCode: exitCode}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal diagnostics: %w", err)
	}
	return string(data), nil
}

// WritePlain writes one diag.Diagnostic.PlainLine() per diagnostic.
func WritePlain(w io.Writer, diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d.PlainLine())
	}
}

// WriteColor writes each diagnostic as a bold red "<Stage> Error" header
// line followed by a cyan "-->" location line. Color is dropped when
// noColor is set or when standard output isn't a terminal (fatih/color
// handles that downgrade); the two-line layout stays the same.
func WriteColor(w io.Writer, diags []diag.Diagnostic, noColor bool) {
	header := color.New(color.FgRed, color.Bold)
	location := color.New(color.FgCyan)
	if noColor {
		header.DisableColor()
		location.DisableColor()
	}
	for _, d := range diags {
		header.Fprintf(w, "%s Error", d.Stage)
		fmt.Fprintf(w, ": %s\n", d.Message)
		location.Fprintf(w, "  --> ")
		fmt.Fprintf(w, "%s\n", locationString(d))
	}
}

func locationString(d diag.Diagnostic) string {
	var b strings.Builder
	if d.Location.File != "" {
		b.WriteString(d.Location.File)
		b.WriteString(":")
	}
	fmt.Fprintf(&b, "%d:%d", d.Location.Line, d.Location.Column)
	return b.String()
}
