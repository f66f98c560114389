package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks the configuration for values that would fail later in a
// less obvious way.
func (c *Config) Validate() error {
	if c.ProjectDir == "" {
		return fmt.Errorf("project_dir must not be empty")
	}
	if c.TargetDir == "" {
		return fmt.Errorf("target_dir must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "text", "table", "json":
	default:
		return fmt.Errorf("unknown output format %q (expected text, table, or json)", c.Format)
	}
	return nil
}

// SlogLevel converts the configured log level to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
