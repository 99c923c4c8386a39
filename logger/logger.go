// Package logger provides a small prefixed, colored logger for the CLI
// wiring. The maze core never logs; all logging is a caller responsibility.
package logger

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger writes leveled, prefixed log lines, optionally wrapped in an ANSI
// color.
type Logger struct {
	prefix string
	color  string
	std    *log.Logger
}

// New creates a Logger with the given prefix tag and ANSI color code,
// writing to out. An empty color disables coloring.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger: prefix cannot be empty")
	}
	if out == nil {
		return nil, errors.New("logger: output writer cannot be nil")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		std:    log.New(out, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.write("WARN", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.write("ERROR", msg)
}

func (l *Logger) write(level, msg string) {
	if l.color == "" {
		l.std.Printf("[%s] [%s] %s", l.prefix, level, msg)
		return
	}
	l.std.Printf("%s[%s] [%s] %s%s", l.color, l.prefix, level, msg, colorReset)
}
