// Package autoresolve proposes an automatic deletion for two-file groups where
// one copy clearly comes from a lower-priority source.
//
// Sources are described by Rule values so new device or sync-folder
// conventions can be added from configuration without touching the session
// loop. The resolver only proposes; the caller confirms with the user and
// performs the deletion.
package autoresolve
