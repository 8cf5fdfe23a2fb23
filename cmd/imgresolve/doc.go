// Package main hosts the imgresolve CLI entrypoint and command graph.
//
// The root command takes a findimagedupes log and runs the interactive review
// session over it; the config and doctor subcommands scaffold configuration
// and check the external tools. Configuration and logger construction are
// resolved lazily through commandContext so subcommands that do not need a
// config (config init) can skip loading it.
package main
