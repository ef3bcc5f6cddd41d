// Package diag accumulates run-configuration diagnostics so that one pass
// surfaces every problem at once instead of stopping at the first.
//
// Errors recorded here are non-fatal individually; callers consult HasErrors
// after all checks have run to decide whether to abort.
package diag

import (
	"context"
	"log/slog"
	"slices"
)

// Collector records warnings and errors while forwarding them to a logger.
type Collector struct {
	logger   *slog.Logger
	errors   []string
	warnings []string
}

// NewCollector returns a collector that logs through the given logger.
// A nil logger falls back to slog.Default().
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{logger: logger}
}

// Error logs msg at error level and records it for the abort gate.
func (c *Collector) Error(msg string, attrs ...slog.Attr) {
	c.logger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
	c.errors = append(c.errors, msg)
}

// Warn logs msg at warning level. Warnings never block execution.
func (c *Collector) Warn(msg string, attrs ...slog.Attr) {
	c.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
	c.warnings = append(c.warnings, msg)
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	return len(c.errors) > 0
}

// Errors returns a copy of the recorded error messages.
func (c *Collector) Errors() []string {
	return slices.Clone(c.errors)
}

// Warnings returns a copy of the recorded warning messages.
func (c *Collector) Warnings() []string {
	return slices.Clone(c.warnings)
}
