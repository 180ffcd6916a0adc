// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// OutputFormat selects how search results are rendered on stdout.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputCSL   OutputFormat = "csl"
)

// Valid reports whether f is one of the supported output formats.
func (f OutputFormat) Valid() bool {
	switch f {
	case OutputTable, OutputJSON, OutputYAML, OutputCSL:
		return true
	}
	return false
}

// HTTPConfig holds settings for the document fetcher.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with every request
	// (e.g. "gscholar/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// SearchConfig holds query construction settings.
type SearchConfig struct {
	// Escape percent-encodes free-text query fields before the URL is built.
	Escape bool `json:"escape" yaml:"escape" mapstructure:"escape"`
}

// BatchConfig holds settings for running several query files at once.
type BatchConfig struct {
	// Concurrency bounds how many searches run at the same time (default 4).
	Concurrency int `json:"concurrency" yaml:"concurrency" mapstructure:"concurrency"`
}

// LibraryConfig holds settings for the SQLite result archive.
type LibraryConfig struct {
	// Path is the database file. Empty disables archiving.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// MetricsConfig holds settings for the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is the path metrics are written to after a run. Empty disables it.
	Textfile string `json:"textfile" yaml:"textfile" mapstructure:"textfile"`
}

// Config groups every setting gscholar reads from file, env and flags.
type Config struct {
	HTTP    HTTPConfig    `json:"http" yaml:"http" mapstructure:"http"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
	Search  SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
	Batch   BatchConfig   `json:"batch" yaml:"batch" mapstructure:"batch"`
	Library LibraryConfig `json:"library" yaml:"library" mapstructure:"library"`
	Metrics MetricsConfig `json:"metrics" yaml:"metrics" mapstructure:"metrics"`
}
