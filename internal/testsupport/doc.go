// Package testsupport holds fixtures shared by package tests: byte-pattern
// files, small JPEGs and stub executables.
package testsupport
