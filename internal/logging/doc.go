// Package logging builds the slog loggers used across Cinewatch.
//
// Output defaults to a console-friendly text format on stdout; a json format
// is available for machine consumption, and NewFromConfig additionally tees
// events into a log file under the configured log directory. The Attr helpers
// keep call sites terse and uniform.
package logging
