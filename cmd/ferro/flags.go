package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ferro-lang/ferro/internal/config"
)

var (
	flagJSON         bool
	flagNoColor      bool
	flagMaxCallDepth int
	flagTrace        bool
)

// resolveConfig loads ferro.yml/FERRO_* env settings and layers any
// explicitly-set CLI flag on top, following the ambient precedence
// order CLI flags > environment > config file > defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("json") {
		cfg.JSONDiagnostics = flagJSON
	}
	if cmd.Flags().Changed("no-color") {
		cfg.ColorOutput = !flagNoColor
	}
	if cmd.Flags().Changed("max-call-depth") && flagMaxCallDepth != 0 {
		cfg.MaxCallDepth = flagMaxCallDepth
	}
	if cmd.Flags().Changed("trace") {
		cfg.TraceEval = flagTrace
	}
	return cfg, nil
}

// traceLogger returns a debug-level logger writing to stderr when
// tracing is enabled, otherwise a no-op logger.
func traceLogger(enabled bool) *zap.Logger {
	if !enabled {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
