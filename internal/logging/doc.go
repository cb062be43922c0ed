// Package logging assembles structured slog loggers and formatting helpers used
// across charkit commands.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so pipeline code can tag log lines with
// the run correlation ID and the command being executed. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Logs are written to stderr (plus an optional file) so that stdout stays
// reserved for command output such as ranking tables and JSON.
package logging
