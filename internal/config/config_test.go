package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}
	if cfg.MaxCallDepth != 2048 {
		t.Errorf("expected default max_call_depth 2048, got %d", cfg.MaxCallDepth)
	}
	if !cfg.ColorOutput {
		t.Error("expected color_output to default to true")
	}
	if cfg.JSONDiagnostics {
		t.Error("expected json_diagnostics to default to false")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	os.WriteFile("ferro.yml", []byte("max_call_depth: 64\ntrace_eval: true\n"), 0644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}
	if cfg.MaxCallDepth != 64 {
		t.Errorf("expected max_call_depth 64, got %d", cfg.MaxCallDepth)
	}
	if !cfg.TraceEval {
		t.Error("expected trace_eval true from config file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	os.WriteFile("ferro.yml", []byte("max_call_depth: 64\n"), 0644)
	os.Setenv("FERRO_MAX_CALL_DEPTH", "128")
	defer os.Unsetenv("FERRO_MAX_CALL_DEPTH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}
	if cfg.MaxCallDepth != 128 {
		t.Errorf("expected env override to win with 128, got %d", cfg.MaxCallDepth)
	}
}

func TestRejectsNonPositiveMaxCallDepth(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	os.WriteFile("ferro.yml", []byte("max_call_depth: 0\n"), 0644)

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a non-positive max_call_depth")
	}
}
