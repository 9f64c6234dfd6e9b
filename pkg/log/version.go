package log

// Version of the log package. It moves with wqsuite.Version only when the
// Logger interface or the field keys change.
const (
	Version              = "1.1.0"
	MinCompatibleVersion = "1.0.0"
)
