// Copyright 2025 The Ceph Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides a structured, leveled logging interface. It
// defines a Logger interface that any backend can implement and a Formatter
// interface for extensible output formats; DefaultLogger is the built-in
// implementation with text and JSON output.
package logging

import "strings"

// LogLevel is the severity of a log message.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for potential problems.
	LevelWarn
	// LevelError is for failures.
	LevelError
	// LevelSilent disables all output.
	LevelSilent
)

// String returns the lowercase name of the level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a level name. Unrecognized input maps to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// Logger is the leveled logging interface used throughout this module.
// All methods take printf-style format strings.
type Logger interface {
	// Debug logs at debug level.
	Debug(format string, args ...interface{})
	// Info logs at info level.
	Info(format string, args ...interface{})
	// Warn logs at warn level.
	Warn(format string, args ...interface{})
	// Error logs at error level.
	Error(format string, args ...interface{})

	// GetLevel returns the minimum level the logger emits.
	GetLevel() LogLevel

	// WithFields returns a Logger that attaches the given key-value pairs
	// to every entry. The receiver is not modified.
	WithFields(fields map[string]interface{}) Logger
}

// Default returns a text logger at info level writing to stdout.
func Default() Logger {
	return NewLogger(LoggerOptions{})
}

// EnsureLogger returns l if non-nil, otherwise a default logger. Use it to
// tolerate unconfigured callers.
func EnsureLogger(l Logger) Logger {
	if l == nil {
		return Default()
	}
	return l
}
