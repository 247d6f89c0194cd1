package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the declcheck.yaml configuration.
type Config struct {
	// Version is the config schema version (e.g. "1.0").
	Version string `yaml:"version"`

	// Format selects the report format: text, json or yaml. Defaults to text.
	Format string `yaml:"format,omitempty"`

	// Color controls ANSI colouring of text reports: auto, always or never.
	// auto colours only when stdout is a terminal.
	Color string `yaml:"color,omitempty"`

	// Archive is a path to a SQLite database where every run's diagnostics
	// are recorded. Empty disables archiving.
	Archive string `yaml:"archive,omitempty"`

	// FailOn lists the diagnostic codes or kinds (e.g. "D009" or
	// "binops_infix_left") that make a run fail. Empty means every diagnostic.
	FailOn []string `yaml:"fail_on,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Version: "1.0", Format: FormatText, Color: ColorAuto}
}

// LoadConfig reads and parses a declcheck.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses declcheck.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values and the schema version.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("missing version")
	}
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", c.Version, err)
	}
	constraint, err := semver.NewConstraint(SchemaConstraint)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("unsupported config version %s (want %s)", v, SchemaConstraint)
	}

	switch c.Format {
	case "":
		c.Format = FormatText
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", c.Format)
	}

	switch c.Color {
	case "":
		c.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}

// Fails reports whether a diagnostic with the given code and kind name
// should fail the run.
func (c *Config) Fails(code, name string) bool {
	if len(c.FailOn) == 0 {
		return true
	}
	for _, f := range c.FailOn {
		if strings.EqualFold(f, code) || f == name {
			return true
		}
	}
	return false
}
