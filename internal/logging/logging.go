// Package logging provides the small logger interface shared across
// the tool. Everything goes to stderr via the standard log package;
// stdout is reserved for the audit stream.
package logging

import (
	"log"
	"strings"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

type StdLogger struct {
	Min Level
}

func New(level string) StdLogger {
	return StdLogger{Min: ParseLevel(level)}
}

func (l StdLogger) Debug(msg string, args ...any) {
	if l.Min <= LevelDebug {
		log.Printf("DEBUG: "+msg, args...)
	}
}

func (l StdLogger) Info(msg string, args ...any) {
	if l.Min <= LevelInfo {
		log.Printf("INFO: "+msg, args...)
	}
}

func (l StdLogger) Error(msg string, args ...any) {
	log.Printf("ERROR: "+msg, args...)
}
