// Package textutil holds the small text helpers shared by the CLI and the
// interactive session: byte-size formatting, bordered table rendering and
// case folding of typed commands.
package textutil
