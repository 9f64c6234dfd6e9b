// Package log provides a logging abstraction for wqsuite components.
//
// This package defines a Logger interface that can be implemented by
// any logging library. A zerolog implementation and a no-op logger for
// tests are provided.
//
// # Usage
//
// Write human-readable lines to stderr:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//
// Or keep the terminal clean while a full-screen UI is running:
//
//	logger, closeFn, err := log.NewFileLogger("/tmp/wqsuite.log", "debug")
//
// Use the no-op logger in tests:
//
//	logger := log.NewNoopLogger()
//
// Tag lines with the shared keys so they line up across packages:
//
//	logger.Info("entry added", log.Session(id), log.Param(entry.Name))
//
// # Version
//
// Current version: 1.1.0
// Minimum compatible version: 1.0.0
package log
