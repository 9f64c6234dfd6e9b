package log

import (
	"fmt"
	"time"
)

// Logger is the structured logger every wqsuite component writes to.
// The CLI backs it with zerolog; tests use NoopLogger or RecordingLogger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is one key-value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// Keys shared by the field helpers below, so session, parameter and file
// lines can be grepped the same way in every package.
const (
	KeySession = "session"
	KeyParam   = "param"
	KeyPath    = "path"
)

func String(key, value string) Field          { return Field{Key: key, Value: value} }
func Int(key string, value int) Field         { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field     { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field       { return Field{Key: key, Value: value} }
func Any(key string, value any) Field         { return Field{Key: key, Value: value} }

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field with key "error".
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Session tags a line with the id of the session it belongs to.
func Session(id string) Field { return String(KeySession, id) }

// Param tags a line with a parameter name.
func Param(name fmt.Stringer) Field { return String(KeyParam, name.String()) }

// Path tags a line with a file or directory.
func Path(p string) Field { return String(KeyPath, p) }
