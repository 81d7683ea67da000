// Package logging builds the application's slog loggers and provides
// typed attribute helpers so call sites never pass raw key/value pairs.
//
// Two output formats are supported: a compact console format for
// interactive use and JSON for log files and machine consumption.
package logging
