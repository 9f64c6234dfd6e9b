package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Home            string `toml:"home"`
	OutputDir       string `toml:"output_dir"`
	StandardsFile   string `toml:"standards_file"`
	WatchStandards  *bool  `toml:"watch_standards"`
	LogFile         string `toml:"log_file"`
	LogLevel        string `toml:"log_level"`
	ReportKeep      int    `toml:"report_keep"`
	JanitorInterval string `toml:"janitor_interval"`
	DebounceDelay   string `toml:"debounce_delay"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.wqsuite/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".wqsuite", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("home", fc.Home, &cfg.Home)
	s.setString("output-dir", fc.OutputDir, &cfg.OutputDir)
	s.setString("standards-file", fc.StandardsFile, &cfg.StandardsFile)
	s.setString("log-file", fc.LogFile, &cfg.LogFile)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setBool("watch-standards", fc.WatchStandards, &cfg.WatchStandards)
	s.setInt("report-keep", fc.ReportKeep, &cfg.ReportKeep)

	if err := s.setDuration("janitor-interval", fc.JanitorInterval, &cfg.JanitorInterval); err != nil {
		return err
	}
	if err := s.setDuration("debounce", fc.DebounceDelay, &cfg.DebounceDelay); err != nil {
		return err
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
