// Package commands implements the lookgen subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/lookgen/internal/cli/config"
)

type configKey struct{}
type loggerKey struct{}

// WithConfig stores the loaded config in the context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext retrieves the config stored by the root command.
func ConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{
		ProjectDir: config.DefaultProjectDir,
		TargetDir:  config.DefaultTargetDir,
		OutputDir:  config.DefaultOutputDir,
		LogLevel:   config.DefaultLogLevel,
		Format:     config.DefaultFormat,
	}
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// LoggerFromContext retrieves the logger, defaulting to slog.Default().
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
