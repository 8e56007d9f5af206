package logging

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// A Logger writes level-prefixed messages to an output stream, discarding
// anything below its configured level. The zero Logger and a nil *Logger
// both discard everything, so components may log unconditionally.
type Logger struct {
	Level int
	Out   io.Writer
}

// CreateLogger returns a Logger writing to stderr at the given level
func CreateLogger(level int) *Logger {
	return &Logger{Level: level, Out: os.Stderr}
}

// CreateDiscardLogger returns a Logger which drops every message
func CreateDiscardLogger() *Logger {
	return &Logger{Level: FatalLevel, Out: ioutil.Discard}
}

// Logf writes a formatted message iff level is at or above this Logger's level
func (l *Logger) Logf(level int, format string, args ...interface{}) {
	if l == nil || l.Out == nil || level < l.Level {
		return
	}
	fmt.Fprintf(l.Out, "%s %s\n", LogLevelToString(level), fmt.Sprintf(format, args...))
}
