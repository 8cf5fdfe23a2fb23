// Package curation reduces a raw duplicate group to the files still worth
// showing the user.
//
// Missing files are dropped silently. Two optional steps collapse burst-mode
// shots: runs of consecutive camera serial numbers, and files whose
// filename-encoded timestamps sit closer together than a threshold. A step is
// skipped entirely when any member's name does not follow a recognized
// convention (ErrNoSerial). A group reduced below two members yields
// ErrCannotCurate.
package curation
