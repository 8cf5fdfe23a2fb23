// Package session runs the interactive review of duplicate groups.
//
// For each group the session curates, probes and renders the members, then
// reads one command per line until the group is down to a single file, the
// user moves on (n) or quits (q). Deletion, conversion and viewing are
// delegated to FileActions; the in-memory group only changes when the
// external command succeeds. The resume marker is saved after every group.
//
// Commands:
//
//	d<N>  trash member N
//	c<N>  convert TIFF member N to JPEG, then trash the original
//	n     next group
//	q     quit (Run returns ErrQuit)
//	ss    collapse sequential and close-time files for the rest of the run
//	v     open all members in the viewer
package session
