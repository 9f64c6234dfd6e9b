package wqsuite

import (
	"github.com/bft-labs/wqsuite/internal/ports"
	"github.com/bft-labs/wqsuite/pkg/log"
)

// Logger is the interface for structured logging.
type Logger = log.Logger

// Option configures optional behavior of a Suite.
type Option func(*options)

type options struct {
	logger       ports.Logger
	eventHandler EventHandler
}

func defaultOptions() options {
	return options{logger: log.NewNoopLogger()}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEventHandler sets a handler for suite events.
// If not provided, no events are emitted.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}
