// Package config loads, normalizes, and validates imgresolve configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts) and reads TOML files. The Config type centralizes the external
// tool commands, curation thresholds, auto-resolution rules and logging
// settings the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// trimmed tool argv slices, canonical log formats, and clear validation errors.
package config
