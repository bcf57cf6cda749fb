package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ferro-lang/ferro/internal/diag"
)

func sampleDiagnostics() []diag.Diagnostic {
	return []diag.Diagnostic{
		diag.NewRuntime(diag.KindZeroDivision, "division by zero", diag.Location{File: "a.fe", Line: 3, Column: 5}),
	}
}

func TestWritePlainMatchesSpecFormat(t *testing.T) {
	var buf bytes.Buffer
	WritePlain(&buf, sampleDiagnostics())
	got := strings.TrimSpace(buf.String())
	want := "Runtime Error: division by zero [at line 3 column 5]"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWriteColorContainsMessageAndLocation(t *testing.T) {
	var buf bytes.Buffer
	WriteColor(&buf, sampleDiagnostics(), true)
	out := buf.String()
	if !strings.Contains(out, "division by zero") {
		t.Fatalf("expected message in colorized output, got %q", out)
	}
	if !strings.Contains(out, "a.fe:3:5") {
		t.Fatalf("expected location in colorized output, got %q", out)
	}
}

func TestRenderJSONRoundTrips(t *testing.T) {
	data, err := RenderJSON(sampleDiagnostics(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rep Report
	if err := json.Unmarshal([]byte(data), &rep); err != nil {
		t.Fatalf("failed to unmarshal report: %v", err)
	}
	if rep.Status != "error" {
		t.Errorf("expected status \"error\", got %q", rep.Status)
	}
	if len(rep.Diagnostics) != 1 || rep.Diagnostics[0].Message != "division by zero" {
		t.Errorf("unexpected diagnostics: %+v", rep.Diagnostics)
	}
}

func TestRenderJSONOkStatusWhenEmpty(t *testing.T) {
	data, err := RenderJSON(nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(data, `"status": "ok"`) {
		t.Fatalf("expected ok status, got %q", data)
	}
}
