// Package config loads the configuration of the notation command.
//
// A configuration file is written in TOML or YAML, selected by its extension
// (.toml, .yaml, .yml). Command-line flags take precedence over values from the
// configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/notation/batch"
	"github.com/npillmayer/notation/console"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned for a configuration with invalid values.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the configuration of the notation command.
type Config struct {
	Mode       string `toml:"mode" yaml:"mode"`               // infix2postfix or postfix2infix
	Input      string `toml:"input" yaml:"input"`             // input file for batch conversion
	Output     string `toml:"output" yaml:"output"`           // output file for batch conversion
	TraceLevel string `toml:"trace_level" yaml:"trace_level"` // debug, info or error
	Color      string `toml:"color" yaml:"color"`             // auto, always or never
	LineWidth  int    `toml:"line_width" yaml:"line_width"`   // 0 means: from terminal
}

// Format is a configuration file format.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// Default returns a configuration with default values.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a configuration file. Missing values are set to defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data, detectFormat(path))
}

// Parse decodes a configuration in a given format and validates it.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config (%s): %w", format, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// detectFormat determines the configuration format from file extension.
// Unknown extensions are read as TOML.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = batch.InfixToPostfix.String()
	}
	if c.TraceLevel == "" {
		c.TraceLevel = "error"
	}
	if c.Color == "" {
		c.Color = console.ColorAuto.String()
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := batch.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := console.ParseColorMode(c.Color); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.LineWidth < 0 {
		return fmt.Errorf("%w: negative line width %d", ErrInvalid, c.LineWidth)
	}
	return nil
}

// ConversionMode returns the configured conversion mode.
func (c *Config) ConversionMode() (batch.Mode, error) {
	return batch.ParseMode(c.Mode)
}

// ColorMode returns the configured color mode.
func (c *Config) ColorMode() (console.ColorMode, error) {
	return console.ParseColorMode(c.Color)
}

// Level returns the configured trace level.
func (c *Config) Level() (tracing.TraceLevel, error) {
	switch strings.ToLower(c.TraceLevel) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("%w: unknown trace level %q", ErrInvalid, c.TraceLevel)
}

// ConsoleConfig creates a console configuration, taking the line width from
// the terminal unless configured explicitly.
func (c *Config) ConsoleConfig() *console.Config {
	cc := console.ConfigFromTerminal()
	if c.LineWidth > 0 {
		cc.LineWidth = c.LineWidth
	}
	cc.Color, _ = c.ColorMode()
	return cc
}
