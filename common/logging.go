/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"fmt"
	"io"
	"os"
)

// Logger is the interface used for diagnostics reporting throughout the
// locator: recoverable conditions (malformed lines, ambiguous runs, unclipped
// misses) are reported through a Logger rather than returned as errors (§7).
type Logger interface {
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// DummyLogger discards every diagnostic. It is the default used by index.Build
// and locator.Locator when no Logger is supplied.
type DummyLogger struct{}

// Warning does nothing for dummy logger.
func (DummyLogger) Warning(format string, args ...interface{}) {}

// Notice does nothing for dummy logger.
func (DummyLogger) Notice(format string, args ...interface{}) {}

// Debug does nothing for dummy logger.
func (DummyLogger) Debug(format string, args ...interface{}) {}

// ConsoleLogger writes every diagnostic to Output, one line per call,
// prefixed by its severity.
type ConsoleLogger struct {
	Output io.Writer
}

// NewConsoleLogger creates a ConsoleLogger writing to os.Stdout.
func NewConsoleLogger() *ConsoleLogger {
	return &ConsoleLogger{Output: os.Stdout}
}

// Warning writes a WARNING-prefixed line to l.Output.
func (l ConsoleLogger) Warning(format string, args ...interface{}) {
	l.write("WARNING", format, args...)
}

// Notice writes a NOTICE-prefixed line to l.Output.
func (l ConsoleLogger) Notice(format string, args ...interface{}) {
	l.write("NOTICE", format, args...)
}

// Debug writes a DEBUG-prefixed line to l.Output.
func (l ConsoleLogger) Debug(format string, args ...interface{}) {
	l.write("DEBUG", format, args...)
}

func (l ConsoleLogger) write(level, format string, args ...interface{}) {
	fmt.Fprintf(l.Output, "["+level+"] "+format+"\n", args...)
}
