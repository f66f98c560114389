package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultProjectDir, cfg.ProjectDir)
	assert.Equal(t, DefaultTargetDir, cfg.TargetDir)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Empty(t, cfg.Tag)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lookgen.yaml"), []byte(
		"target_dir: ./dbt/target\noutput_dir: ./looker\ntag: looker\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "./dbt/target", cfg.TargetDir)
	assert.Equal(t, "./looker", cfg.OutputDir)
	assert.Equal(t, "looker", cfg.Tag)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultProjectDir, cfg.ProjectDir)
}

func TestLoadConfigFileFoundUpward(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lookgen.yml"), []byte("tag: nightly\n"), 0o644))
	sub := filepath.Join(dir, "models", "staging")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	t.Chdir(sub)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "nightly", cfg.Tag)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lookgen.yaml"),
		[]byte("output_dir: ./from-file\n"), 0o644))
	t.Setenv("LOOKGEN_OUTPUT_DIR", "./from-env")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "./from-env", cfg.OutputDir)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOOKGEN_OUTPUT_DIR", "./from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output-dir", DefaultOutputDir, "")
	flags.String("tag", "", "")
	require.NoError(t, flags.Set("output-dir", "./from-flag"))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "./from-flag", cfg.OutputDir)
	// Unchanged flags do not clobber lower layers.
	assert.Empty(t, cfg.Tag)
}

func TestLoadVerboseRaisesLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Set("verbose", "true"))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadExplicitConfigPath(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty project dir", func(c *Config) { c.ProjectDir = "" }, "project_dir"},
		{"empty target dir", func(c *Config) { c.TargetDir = "" }, "target_dir"},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
		{"bad format", func(c *Config) { c.Format = "xml" }, "output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				ProjectDir: ".",
				TargetDir:  "./target",
				OutputDir:  "./lookml",
				LogLevel:   "info",
				Format:     "text",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := (&Config{LogLevel: tt.in}).SlogLevel()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := (&Config{LogLevel: "loud"}).SlogLevel()
	assert.Error(t, err)
}
