// Package config provides configuration management for the lookgen CLI.
// Sources layer in priority order: defaults < lookgen.yaml < LOOKGEN_*
// environment variables < command-line flags.
package config

// Default configuration values.
const (
	DefaultProjectDir = "."
	DefaultTargetDir  = "./target"
	DefaultOutputDir  = "./lookml"
	DefaultLogLevel   = "info"
	DefaultFormat     = "text"
)

// Config holds all CLI configuration options.
type Config struct {
	// ProjectDir contains dbt_project.yml.
	ProjectDir string `koanf:"project_dir"`
	// TargetDir contains the compiled manifest.json and catalog.json.
	TargetDir string `koanf:"target_dir"`
	// OutputDir receives the generated LookML tree.
	OutputDir string `koanf:"output_dir"`
	// Tag filters generation to models carrying this dbt tag.
	Tag string `koanf:"tag"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// Format selects diagnostic rendering: text, table, json.
	Format string `koanf:"format"`
	// Verbose raises the log level to debug.
	Verbose bool `koanf:"verbose"`
}
