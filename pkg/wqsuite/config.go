package wqsuite

import (
	"fmt"
	"time"

	"github.com/bft-labs/wqsuite/internal/domain"
)

// Config holds the runtime settings of a Suite.
type Config struct {
	// OutputDir receives generated reports and proposals. Required.
	OutputDir string

	// StandardsFile optionally overrides the built-in standards.
	StandardsFile string

	// WatchStandards reloads StandardsFile when it changes.
	WatchStandards bool

	// ReportKeep is how many reports the janitor keeps. Zero disables it.
	ReportKeep int

	// JanitorInterval is how often the janitor runs.
	// Default: 1 hour
	JanitorInterval time.Duration

	// DebounceDelay is the quiet period before a standards reload.
	// Default: 200 milliseconds
	DebounceDelay time.Duration
}

// SetDefaults fills zero durations.
func (c *Config) SetDefaults() {
	if c.JanitorInterval <= 0 {
		c.JanitorInterval = time.Hour
	}
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = 200 * time.Millisecond
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is required", domain.ErrInvalidConfig)
	}
	if c.WatchStandards && c.StandardsFile == "" {
		return fmt.Errorf("%w: watching standards requires a standards file", domain.ErrInvalidConfig)
	}
	if c.ReportKeep < 0 {
		return fmt.Errorf("%w: report keep must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}
