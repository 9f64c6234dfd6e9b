package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (WQSUITE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("home", os.Getenv("WQSUITE_HOME"), &cfg.Home)
	s.setString("output-dir", os.Getenv("WQSUITE_OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("standards-file", os.Getenv("WQSUITE_STANDARDS_FILE"), &cfg.StandardsFile)
	s.setString("log-file", os.Getenv("WQSUITE_LOG_FILE"), &cfg.LogFile)
	s.setString("log-level", os.Getenv("WQSUITE_LOG_LEVEL"), &cfg.LogLevel)

	s.setBoolFromString("watch-standards", os.Getenv("WQSUITE_WATCH_STANDARDS"), &cfg.WatchStandards)

	if err := s.setIntFromString("report-keep", os.Getenv("WQSUITE_REPORT_KEEP"), &cfg.ReportKeep); err != nil {
		return err
	}
	if err := s.setDuration("janitor-interval", os.Getenv("WQSUITE_JANITOR_INTERVAL"), &cfg.JanitorInterval); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("WQSUITE_DEBOUNCE_DELAY"), &cfg.DebounceDelay); err != nil {
		return err
	}
	return nil
}
