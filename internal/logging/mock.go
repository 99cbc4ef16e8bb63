package logging

// MockLogger captures log entries for verification in tests.
type MockLogger struct {
	Entries       []LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(m.pendingFields, fields...),
		Error:   m.pendingError,
	})
}

// Debug records a debug-level entry.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }

// Info records an info-level entry.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, fields) }

// Warn records a warning-level entry.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, fields) }

// Error records an error-level entry.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// WithError returns a logger that attaches err to subsequent entries.
// Entries still land on the parent mock.
func (m *MockLogger) WithError(err error) Logger {
	return &childLogger{parent: m, err: err, fields: m.pendingFields}
}

// WithField returns a logger that attaches a field to subsequent entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &childLogger{parent: m, err: m.pendingError, fields: append(m.pendingFields, Field{Key: key, Value: value})}
}

// HasEntry checks if an entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.Entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

// childLogger forwards entries to the parent mock with extra context.
type childLogger struct {
	parent *MockLogger
	err    error
	fields []Field
}

func (c *childLogger) record(level, msg string, fields []Field) {
	c.parent.Entries = append(c.parent.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(c.fields, fields...),
		Error:   c.err,
	})
}

func (c *childLogger) Debug(msg string, fields ...Field) { c.record("DEBUG", msg, fields) }
func (c *childLogger) Info(msg string, fields ...Field)  { c.record("INFO", msg, fields) }
func (c *childLogger) Warn(msg string, fields ...Field)  { c.record("WARN", msg, fields) }
func (c *childLogger) Error(msg string, fields ...Field) { c.record("ERROR", msg, fields) }

func (c *childLogger) WithError(err error) Logger {
	return &childLogger{parent: c.parent, err: err, fields: c.fields}
}

func (c *childLogger) WithField(key string, value interface{}) Logger {
	return &childLogger{parent: c.parent, err: c.err, fields: append(c.fields, Field{Key: key, Value: value})}
}
