// Package config provides configuration loading and management for runeclass.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/scalecode-solutions/runeclass"
)

// Config represents the complete runeclass configuration
type Config struct {
	Text     TextConfig    `yaml:"text"`
	Escape   EscapeConfig  `yaml:"escape"`
	Fixtures FixtureConfig `yaml:"fixtures"`
	Log      LogConfig     `yaml:"log"`
}

// TextConfig selects how subjects are interpreted
type TextConfig struct {
	// Encoding is the subject encoding (utf8, ascii, iso-8859-1 or a numeric tag)
	Encoding string `yaml:"encoding"`
	// Language selects the alphabet (english, spanish, french or a numeric tag)
	Language string `yaml:"language"`
}

// EscapeConfig configures escape-aware length.
//
// Marker and End are pointers: a layer that sets them to "" clears the value
// of an earlier layer, while a layer that leaves them out keeps it.
type EscapeConfig struct {
	// Marker starts an escape (default: \u); "" disables escapes
	Marker *string `yaml:"marker,omitempty"`
	// Encoding is how the code point is written (hex or decimal)
	Encoding string `yaml:"encoding"`
	// End optionally closes an escape, e.g. ";" for "&#233;"
	End *string `yaml:"end,omitempty"`
}

// FixtureConfig configures the fixture runner
type FixtureConfig struct {
	// Dirs are the directories searched when check is run without arguments
	Dirs []string `yaml:"dirs"`
	// Pattern is the doublestar pattern fixture files must match
	Pattern string `yaml:"pattern"`
	// Debounce is the quiet period before a watched change triggers a run
	Debounce time.Duration `yaml:"debounce"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Text: TextConfig{
			Encoding: runeclass.UTF8Binary.String(),
			Language: runeclass.English.String(),
		},
		Escape: EscapeConfig{
			Marker:   stringPtr(`\u`),
			Encoding: runeclass.EscapeHex.String(),
			End:      stringPtr(""),
		},
		Fixtures: FixtureConfig{
			Dirs:     []string{"."},
			Pattern:  "**/*.fixture.yaml",
			Debounce: 200 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := runeclass.ParseEncoding(c.Text.Encoding); err != nil {
		return fmt.Errorf("text.encoding: %w", err)
	}
	if _, err := runeclass.ParseLanguage(c.Text.Language); err != nil {
		return fmt.Errorf("text.language: %w", err)
	}
	if _, err := runeclass.ParseEscapeEncoding(c.Escape.Encoding); err != nil {
		return fmt.Errorf("escape.encoding: %w", err)
	}
	if c.Fixtures.Pattern == "" {
		return fmt.Errorf("fixtures.pattern is required")
	}
	if !doublestar.ValidatePattern(c.Fixtures.Pattern) {
		return fmt.Errorf("fixtures.pattern %q is not a valid glob", c.Fixtures.Pattern)
	}
	if c.Fixtures.Debounce < 0 {
		return fmt.Errorf("fixtures.debounce must not be negative")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Tags returns the parsed encoding and language.
func (t TextConfig) Tags() (runeclass.Encoding, runeclass.Language, error) {
	enc, err := runeclass.ParseEncoding(t.Encoding)
	if err != nil {
		return 0, 0, err
	}
	lang, err := runeclass.ParseLanguage(t.Language)
	if err != nil {
		return 0, 0, err
	}
	return enc, lang, nil
}

// EscapeEncoding returns the parsed escape encoding.
func (e EscapeConfig) EscapeEncoding() (runeclass.EscapeEncoding, error) {
	return runeclass.ParseEscapeEncoding(e.Encoding)
}

// MarkerValue returns the marker, or "" if unset.
func (e EscapeConfig) MarkerValue() string {
	if e.Marker == nil {
		return ""
	}
	return *e.Marker
}

// EndValue returns the end string, or "" if unset.
func (e EscapeConfig) EndValue() string {
	if e.End == nil {
		return ""
	}
	return *e.End
}

// SetMarker sets the marker.
func (e *EscapeConfig) SetMarker(marker string) {
	e.Marker = stringPtr(marker)
}

// SetEnd sets the end string.
func (e *EscapeConfig) SetEnd(end string) {
	e.End = stringPtr(end)
}

func stringPtr(s string) *string {
	return &s
}

// SlogLevel returns the parsed log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, err
	}
	return level, nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values, and for escape marker and end whenever they are set)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Text
	if other.Text.Encoding != "" {
		c.Text.Encoding = other.Text.Encoding
	}
	if other.Text.Language != "" {
		c.Text.Language = other.Text.Language
	}

	// Escape
	if other.Escape.Marker != nil {
		c.Escape.SetMarker(*other.Escape.Marker)
	}
	if other.Escape.Encoding != "" {
		c.Escape.Encoding = other.Escape.Encoding
	}
	if other.Escape.End != nil {
		c.Escape.SetEnd(*other.Escape.End)
	}

	// Fixtures
	if len(other.Fixtures.Dirs) > 0 {
		c.Fixtures.Dirs = other.Fixtures.Dirs
	}
	if other.Fixtures.Pattern != "" {
		c.Fixtures.Pattern = other.Fixtures.Pattern
	}
	if other.Fixtures.Debounce != 0 {
		c.Fixtures.Debounce = other.Fixtures.Debounce
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
