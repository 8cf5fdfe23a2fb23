package curation

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"imgresolve/internal/dupelog"
	"imgresolve/internal/fileutil"
	"imgresolve/internal/logging"
)

// ErrCannotCurate signals that fewer than two files remain. It is the normal
// end of a group rather than a failure.
var ErrCannotCurate = errors.New("group cannot be curated")

// DefaultCloseTimeThreshold is the default filename-timestamp distance under
// which two files count as the same shot.
const DefaultCloseTimeThreshold int64 = 100000

// Options selects the optional collapsing steps.
type Options struct {
	Sequential bool
	CloseTimes bool
}

// Curator filters raw groups down to the files worth showing.
type Curator struct {
	Threshold int64
	Exists    func(path string) bool
	Logger    *slog.Logger
}

// NewCurator returns a curator checking existence on the real filesystem.
func NewCurator(threshold int64, logger *slog.Logger) *Curator {
	if threshold <= 0 {
		threshold = DefaultCloseTimeThreshold
	}
	return &Curator{
		Threshold: threshold,
		Exists:    fileutil.IsRegularFile,
		Logger:    logging.NewComponentLogger(logger, "curation"),
	}
}

// Curate drops missing files, applies the optional collapsing steps and sorts
// the rest by base name. It returns an error wrapping ErrCannotCurate when
// zero or one file remains.
func (c *Curator) Curate(group dupelog.Group, opts Options) (dupelog.Group, error) {
	exists := c.Exists
	if exists == nil {
		exists = fileutil.IsRegularFile
	}
	logger := c.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	paths := make([]string, 0, len(group))
	for _, path := range group {
		if exists(path) {
			paths = append(paths, path)
		}
	}

	if opts.Sequential {
		if collapsed, err := RemoveSequential(paths); err != nil {
			logger.Info("failed to detect serial numbers; sequential collapsing skipped", logging.Error(err))
		} else {
			logDropped(logger, "sequential", paths, collapsed)
			paths = collapsed
		}
	}
	if opts.CloseTimes {
		if collapsed, err := RemoveCloseTimes(paths, c.threshold()); err != nil {
			logger.Debug("no filename timestamps; close-time collapsing skipped", logging.Error(err))
		} else {
			logDropped(logger, "close_time", paths, collapsed)
			paths = collapsed
		}
	}

	switch len(paths) {
	case 0:
		return nil, fmt.Errorf("%w: empty group", ErrCannotCurate)
	case 1:
		return nil, fmt.Errorf("%w: singular group", ErrCannotCurate)
	}

	sort.SliceStable(paths, func(i, j int) bool {
		bi, bj := filepath.Base(paths[i]), filepath.Base(paths[j])
		if bi != bj {
			return bi < bj
		}
		return paths[i] < paths[j]
	})
	return dupelog.Group(paths), nil
}

func (c *Curator) threshold() int64 {
	if c.Threshold <= 0 {
		return DefaultCloseTimeThreshold
	}
	return c.Threshold
}

func logDropped(logger *slog.Logger, step string, before, after []string) {
	if len(before) == len(after) {
		return
	}
	kept := make(map[string]struct{}, len(after))
	for _, path := range after {
		kept[path] = struct{}{}
	}
	for _, path := range before {
		if _, ok := kept[path]; !ok {
			logger.Debug("ignoring near-duplicate", logging.String("step", step), logging.Path(path))
		}
	}
}
