// Package config loads the optional flatsql YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vegasq/flatsql/internal/output"
	"github.com/vegasq/flatsql/internal/reader"
)

// ErrInvalidConfig is returned when a loaded config fails validation
var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultFormat       = "text"
	DefaultPrompt       = ">: "
	DefaultHistoryLimit = 500
)

// Config holds settings for the CLI and the interactive loop.
type Config struct {
	// Format is the output format name (text, json, jsonl, csv, table).
	Format string `yaml:"format"`

	// Prompt is printed before every line read by the REPL.
	Prompt string `yaml:"prompt"`

	// HistoryFile is where REPL history is kept. Empty disables history.
	HistoryFile string `yaml:"history_file,omitempty"`

	// HistoryLimit caps the number of history entries.
	HistoryLimit int `yaml:"history_limit"`

	Verbose bool `yaml:"verbose"`

	// Source describes a database table to load instead of a data file.
	Source Source `yaml:"source,omitempty"`
}

// Source names a table in a SQL database.
type Source struct {
	Engine string `yaml:"engine"` // mysql | postgres | sqlite
	DSN    string `yaml:"dsn"`
	Table  string `yaml:"table"`
}

// IsDatabase reports whether the source points at a database
func (s Source) IsDatabase() bool {
	return s.Engine != "" || s.DSN != ""
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Format:       DefaultFormat,
		Prompt:       DefaultPrompt,
		HistoryLimit: DefaultHistoryLimit,
	}
}

// Load reads the YAML file at path over the defaults. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the format name, the history limit and the source.
func (c *Config) Validate() error {
	if !output.IsValidFormat(c.Format) {
		return fmt.Errorf("%w: format %q must be one of %v", ErrInvalidConfig, c.Format, output.Formats)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit must not be negative, got %d", ErrInvalidConfig, c.HistoryLimit)
	}
	if c.Source.IsDatabase() {
		if !knownEngine(c.Source.Engine) {
			return fmt.Errorf("%w: source engine %q must be one of %v", ErrInvalidConfig, c.Source.Engine, reader.Engines())
		}
		if c.Source.DSN == "" {
			return fmt.Errorf("%w: source dsn is required", ErrInvalidConfig)
		}
		if c.Source.Table == "" {
			return fmt.Errorf("%w: source table is required", ErrInvalidConfig)
		}
	}
	return nil
}

func knownEngine(engine string) bool {
	for _, e := range reader.Engines() {
		if e == engine {
			return true
		}
	}
	return false
}
