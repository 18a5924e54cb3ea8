// Package errors provides unified error handling for the transcript engine.
// It implements structured error types with machine-readable codes so callers
// can distinguish validation failures (operation precondition unmet, no
// mutation occurred) from genuine internal faults.
//
// The engine has no fatal error class of its own: malformed input surfaces
// as a validation error at ingestion, recoverable input anomalies are
// repaired in place and logged as warnings, and undo/redo past the history
// bounds is a silent no-op rather than an error.
package errors
