// Package logging assembles the slog loggers used by srtslicer.
//
// It owns the console and JSON handlers, parses level and format strings from
// configuration, and offers context-aware helpers that tag log lines with the
// run identifier and subtitle index carried on the context. NewNop gives tests
// and optional wiring a logger that discards everything.
package logging
