// Package probe gathers the per-file facts shown while reviewing a group:
// pixel dimensions, EXIF capture time, size on disk and the diagnostics of an
// optional external inspector such as `jpeginfo -c`.
//
// Key types:
//   - FileMetadata: the facts for one path
//   - Prober: inspects single files
//   - Cache: memoizes results for the lifetime of one group
package probe
