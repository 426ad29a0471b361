// Package diag is a thin structured-logging façade over log/slog
// (SPEC_FULL.md §4.11). It exists so the algorithmic packages (cycles,
// nesting) can emit optional trace-level progress without importing a
// logging library directly at their call sites: callers who don't want
// logging pass Noop() and pay nothing.
package diag
