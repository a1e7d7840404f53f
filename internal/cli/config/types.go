// Package config provides configuration management for the tablecheck CLI.
//
// Configuration is layered: defaults, then tablecheck.yaml, then
// TABLECHECK_* environment variables, then CLI flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Delimiter string `koanf:"delimiter"` // CSV field delimiter
	Database  string `koanf:"database"`  // SQLite database path
	Output    string `koanf:"output"`    // Output format: auto, text, json
	Verbose   bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDelimiter = ","
	DefaultOutput    = "auto" // Auto-detect: TTY=styled text, non-TTY=plain
)
