// Package logger provides verbose logging for docproof.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow each pipeline run.
// Errors are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Output returns the current output writer.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(true, "[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(true, "[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf(true, "[WARN] ", format, args...)
}

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) {
	logf(false, "[ERROR] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// logf holds the write lock so concurrent messages never interleave.
func logf(verboseOnly bool, level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verboseOnly && !verbose {
		return
	}
	fmt.Fprintf(output, level+format+"\n", args...)
}

// Scoped prefixes every message with a fixed tag, e.g. a run ID.
type Scoped struct {
	prefix string
}

// With returns a logger whose messages are tagged with "[name id]".
func With(name, id string) Scoped {
	if len(id) > 8 {
		id = id[:8]
	}
	return Scoped{prefix: "[" + name + " " + id + "] "}
}

// Debug prints a tagged debug message if verbose mode is enabled.
func (s Scoped) Debug(format string, args ...any) {
	logf(true, "[DEBUG] "+s.prefix, format, args...)
}

// Info prints a tagged informational message if verbose mode is enabled.
func (s Scoped) Info(format string, args ...any) {
	logf(true, "[INFO] "+s.prefix, format, args...)
}

// Warn prints a tagged warning if verbose mode is enabled.
func (s Scoped) Warn(format string, args ...any) {
	logf(true, "[WARN] "+s.prefix, format, args...)
}

// Error prints a tagged error regardless of verbose mode.
func (s Scoped) Error(format string, args ...any) {
	logf(false, "[ERROR] "+s.prefix, format, args...)
}
