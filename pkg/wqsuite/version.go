package wqsuite

// Version information for the wqsuite module.
const (
	// Version is the current version of the wqsuite module.
	Version = "0.1.0"

	// MinCompatibleVersion is the oldest version whose standards and config
	// files this version still reads.
	MinCompatibleVersion = "0.1.0"
)
