// Package config loads Ferro's runtime knobs the way conduit loads its
// project config: a YAML file read through viper, overridable by
// FERRO_-prefixed environment variables and, ultimately, CLI flags
// bound on top by cmd/ferro.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the interpreter-wide settings SPEC_FULL.md's ambient
// stack section names.
type Config struct {
	ColorOutput     bool `mapstructure:"color_output"`
	JSONDiagnostics bool `mapstructure:"json_diagnostics"`
	MaxCallDepth    int  `mapstructure:"max_call_depth"`
	TraceEval       bool `mapstructure:"trace_eval"`
}

// Load reads ferro.yml (or .yaml) from the current directory, falling
// back to defaults when no file is present, and lets FERRO_* env vars
// override any key.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("color_output", true)
	v.SetDefault("json_diagnostics", false)
	v.SetDefault("max_call_depth", 2048)
	v.SetDefault("trace_eval", false)

	v.SetConfigName("ferro")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FERRO")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.MaxCallDepth <= 0 {
		return nil, fmt.Errorf("max_call_depth must be positive, got %d", cfg.MaxCallDepth)
	}
	return &cfg, nil
}
