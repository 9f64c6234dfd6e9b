package log

import "sync"

// NoopLogger implements Logger by discarding all log messages.
type NoopLogger struct{}

// NewNoopLogger creates a new no-op logger.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (NoopLogger) Debug(msg string, fields ...Field) {}
func (NoopLogger) Info(msg string, fields ...Field)  {}
func (NoopLogger) Warn(msg string, fields ...Field)  {}
func (NoopLogger) Error(msg string, fields ...Field) {}

// Record is one message captured by a RecordingLogger.
type Record struct {
	Level  string
	Msg    string
	Fields []Field
}

// RecordingLogger keeps every message in memory. It is safe for concurrent
// use and intended for tests that assert on emitted log lines.
type RecordingLogger struct {
	mu      sync.Mutex
	records []Record
}

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (r *RecordingLogger) Debug(msg string, fields ...Field) { r.add("debug", msg, fields) }
func (r *RecordingLogger) Info(msg string, fields ...Field)  { r.add("info", msg, fields) }
func (r *RecordingLogger) Warn(msg string, fields ...Field)  { r.add("warn", msg, fields) }
func (r *RecordingLogger) Error(msg string, fields ...Field) { r.add("error", msg, fields) }

func (r *RecordingLogger) add(level, msg string, fields []Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, Record{Level: level, Msg: msg, Fields: fields})
}

// Records returns a copy of the captured messages.
func (r *RecordingLogger) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record(nil), r.records...)
}

// Count returns how many messages were captured at the given level.
func (r *RecordingLogger) Count(level string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.records {
		if rec.Level == level {
			n++
		}
	}
	return n
}
