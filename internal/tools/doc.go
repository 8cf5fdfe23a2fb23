// Package tools wraps the external programs imgresolve delegates to: the
// image inspector, the trash mover, the format converter and the viewer.
//
// Every destructive action happens in a child process; success is the child's
// zero exit status. Commands are configured as argv prefixes and paths are
// passed as separate arguments, never through a shell.
package tools
