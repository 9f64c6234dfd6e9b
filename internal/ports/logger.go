package ports

import "github.com/bft-labs/wqsuite/pkg/log"

// Logger is the structured logger used by the application layer.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors re-exported so application code only imports ports.
var (
	String   = log.String
	Int      = log.Int
	Int64    = log.Int64
	Float64  = log.Float64
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
	Session  = log.Session
	Param    = log.Param
	Path     = log.Path
)
