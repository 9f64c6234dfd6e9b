package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/pkg/log"
)

// Defaults for the tunable settings.
const (
	DefaultLogLevel        = "info"
	DefaultReportKeep      = 20
	DefaultJanitorInterval = time.Hour
	DefaultDebounceDelay   = 200 * time.Millisecond
)

// Config holds CLI configuration for wqsuite.
type Config struct {
	// Home is the base directory for derived paths.
	Home string

	OutputDir      string
	StandardsFile  string
	WatchStandards bool

	LogFile  string
	LogLevel string

	ReportKeep      int
	JanitorInterval time.Duration
	DebounceDelay   time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Home:            DefaultHome(),
		LogLevel:        DefaultLogLevel,
		ReportKeep:      DefaultReportKeep,
		JanitorInterval: DefaultJanitorInterval,
		DebounceDelay:   DefaultDebounceDelay,
	}
}

// DefaultHome returns ~/.wqsuite, or "" when the home directory is unknown.
func DefaultHome() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".wqsuite")
	}
	return ""
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		if c.Home == "" {
			return fmt.Errorf("%w: output-dir is required (or home)", domain.ErrInvalidConfig)
		}
		c.OutputDir = filepath.Join(c.Home, "reports")
	}
	if c.LogFile == "" && c.Home != "" {
		c.LogFile = filepath.Join(c.Home, "wqsuite.log")
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level: %v", domain.ErrInvalidConfig, err)
	}

	if c.WatchStandards && c.StandardsFile == "" {
		return fmt.Errorf("%w: watch-standards requires standards-file", domain.ErrInvalidConfig)
	}
	if c.ReportKeep < 0 {
		return fmt.Errorf("%w: report-keep must not be negative", domain.ErrInvalidConfig)
	}
	if c.JanitorInterval <= 0 {
		return fmt.Errorf("%w: janitor interval must be positive", domain.ErrInvalidConfig)
	}
	if c.DebounceDelay <= 0 {
		return fmt.Errorf("%w: debounce delay must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
