package probe

import (
	"context"
	"fmt"
	"io"

	"imgresolve/internal/fileutil"
)

// Source produces metadata for a path. *Prober is the production Source.
type Source interface {
	Probe(ctx context.Context, path string) FileMetadata
}

// Cache memoizes metadata per path for the lifetime of one group.
type Cache struct {
	prober  Source
	entries map[string]FileMetadata
}

// NewCache returns an empty cache backed by prober.
func NewCache(prober Source) *Cache {
	return &Cache{prober: prober, entries: map[string]FileMetadata{}}
}

// Get returns the cached metadata for path, probing it on first use.
func (c *Cache) Get(ctx context.Context, path string) FileMetadata {
	if meta, ok := c.entries[path]; ok {
		return meta
	}
	meta := c.prober.Probe(ctx, path)
	c.entries[path] = meta
	return meta
}

// ProbeGroup fills the cache for every member of paths, writing one "." per
// probed file and one "x" per missing file to progress, then a newline.
func (c *Cache) ProbeGroup(ctx context.Context, progress io.Writer, paths []string) {
	for _, path := range paths {
		if !fileutil.IsRegularFile(path) {
			fmt.Fprint(progress, "x")
			continue
		}
		fmt.Fprint(progress, ".")
		c.Get(ctx, path)
	}
	fmt.Fprintln(progress)
}

// Rename moves the entry for oldPath to newPath, keeping its facts. Used after
// a file is converted in place.
func (c *Cache) Rename(oldPath, newPath string) {
	meta, ok := c.entries[oldPath]
	if !ok {
		return
	}
	delete(c.entries, oldPath)
	meta.Path = newPath
	c.entries[newPath] = meta
}

// Snapshot returns the cached metadata of the given paths.
func (c *Cache) Snapshot(paths []string) map[string]FileMetadata {
	out := make(map[string]FileMetadata, len(paths))
	for _, path := range paths {
		if meta, ok := c.entries[path]; ok {
			out[path] = meta
		}
	}
	return out
}

// Forget drops the entry for path.
func (c *Cache) Forget(path string) {
	delete(c.entries, path)
}
