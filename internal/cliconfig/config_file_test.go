package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Home:            "/file/home",
				OutputDir:       "/file/out",
				StandardsFile:   "/file/standards.toml",
				WatchStandards:  &trueVal,
				LogFile:         "/file/wq.log",
				LogLevel:        "warn",
				ReportKeep:      9,
				JanitorInterval: "30m",
				DebounceDelay:   "1s",
			},
			changed: map[string]bool{},
			expected: Config{
				Home:            "/file/home",
				OutputDir:       "/file/out",
				StandardsFile:   "/file/standards.toml",
				WatchStandards:  true,
				LogFile:         "/file/wq.log",
				LogLevel:        "warn",
				ReportKeep:      9,
				JanitorInterval: 30 * time.Minute,
				DebounceDelay:   time.Second,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				OutputDir: "/file/out",
				LogLevel:  "warn",
			},
			changed:  map[string]bool{"output-dir": true},
			initial:  Config{OutputDir: "/flag/out", LogLevel: "info"},
			expected: Config{OutputDir: "/flag/out", LogLevel: "warn"},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{DebounceDelay: "quick"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.expected, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
output_dir = "/srv/reports"
standards_file = "/etc/wqsuite/standards.toml"
watch_standards = true
log_level = "debug"
report_keep = 12
janitor_interval = "15m"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	trueVal := true
	want := FileConfig{
		OutputDir:       "/srv/reports",
		StandardsFile:   "/etc/wqsuite/standards.toml",
		WatchStandards:  &trueVal,
		LogLevel:        "debug",
		ReportKeep:      12,
		JanitorInterval: "15m",
	}
	if diff := cmp.Diff(want, fc); diff != "" {
		t.Errorf("file config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	if _, err := LoadFileConfig("/nonexistent/path/config.toml"); err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.toml")
	invalidContent := `
output_dir = "/test"
this is not valid toml
`
	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}
	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path != "" && !strings.Contains(path, ".wqsuite") {
		t.Errorf("DefaultConfigPath() = %v, should contain .wqsuite", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
