// Package logging assembles structured slog loggers used across imgresolve.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes component loggers so curation, probing and session
// code tag their lines consistently. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
package logging
