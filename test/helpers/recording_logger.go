package helpers

import (
	"strings"
	"sync"
)

// LogEntry is one captured log call
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// RecordingLogger captures log calls so tests can assert on them
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewRecordingLogger creates an empty RecordingLogger
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

// Log implements common.Logger
func (l *RecordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: message, Fields: metadata})
}

// Entries returns a copy of everything logged so far
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), l.entries...)
}

// HasMessage reports whether a message containing substr was logged at level
func (l *RecordingLogger) HasMessage(level, substr string) bool {
	for _, entry := range l.Entries() {
		if entry.Level == level && strings.Contains(entry.Message, substr) {
			return true
		}
	}
	return false
}
