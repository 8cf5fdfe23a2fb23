// Package preflight provides the startup checks run before a review session:
// the directory holding the resume file must be writable and the configured
// trash command must be installed. Missing optional tools only disable the
// command that needs them.
//
// The doctor command reuses CheckTools to render the full availability table.
package preflight
