// Package dupelog parses the group log written by findimagedupes.
//
// Each line holds one group of space-separated absolute paths. No validation
// happens here: short or malformed groups flow through and are discarded by
// curation.
package dupelog
