package domain

import "errors"

// Domain errors represent error conditions in the wqsuite domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrDuplicateEntry is returned when a parameter is already part of the batch.
	ErrDuplicateEntry = errors.New("wqsuite: parameter already in batch")

	// ErrIndexOutOfRange is returned when a row index does not address an entry.
	// Indices are recomputed on every render, so this is a contract violation.
	ErrIndexOutOfRange = errors.New("wqsuite: index out of range")

	// ErrStaleSnapshot is returned when row actions were computed from a
	// snapshot that no longer matches the batch.
	ErrStaleSnapshot = errors.New("wqsuite: stale snapshot")

	// ErrEmptyBatch is returned when analysis is requested for an empty batch.
	ErrEmptyBatch = errors.New("wqsuite: batch is empty")

	// ErrMissingProposalFields is returned when required proposal inputs are absent.
	ErrMissingProposalFields = errors.New("wqsuite: missing required proposal fields")

	// ErrInvalidProposal is returned when proposal inputs are present but out of range.
	ErrInvalidProposal = errors.New("wqsuite: invalid proposal inputs")

	// ErrUnknownParameter is returned when a parameter is not in the catalog.
	ErrUnknownParameter = errors.New("wqsuite: unknown parameter")

	// ErrEmptyCatalog is returned when a parameter catalog has no entries.
	ErrEmptyCatalog = errors.New("wqsuite: parameter catalog is empty")

	// ErrSessionClosed is returned when a closed session receives an action.
	ErrSessionClosed = errors.New("wqsuite: session closed")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("wqsuite: invalid configuration")
)
