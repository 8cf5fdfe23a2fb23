// Package resume keeps the progress marker of a review session in a flat INI
// file stored next to the duplicate log (<log>.ini), in the same
// "[resume] group = N" shape earlier tools wrote.
//
// The marker is the index of the last completed group. It is flushed
// immediately after every group so an interrupted session loses at most the
// group in progress.
package resume
