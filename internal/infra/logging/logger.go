// Package logging provides the diagnostic logger written to stderr.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/eaglekit/ek/internal/domain"
)

// Ensure *log.Logger implements domain.Logger interface.
var _ domain.Logger = (*log.Logger)(nil)

// Prefix labels every diagnostic line.
const Prefix = "ek"

// ParseLevel parses a log level string. Unknown values fall back to warn.
func ParseLevel(levelStr string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(levelStr)))
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// New creates a logger writing to w at the given level.
// When verbose is set the level is lowered to debug.
func New(w io.Writer, level string, verbose bool) *log.Logger {
	lvl := ParseLevel(level)
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           lvl,
		ReportTimestamp: lvl == log.DebugLevel,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: Prefix})
}
