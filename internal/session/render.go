package session

import (
	"fmt"
	"io"
	"strconv"

	"imgresolve/internal/fileutil"
	"imgresolve/internal/probe"
	"imgresolve/internal/textutil"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
)

func renderHeader(w io.Writer, count, index, total int, colorize bool) {
	line := fmt.Sprintf("%d files in group %d/%d:", count, index+1, total)
	if colorize {
		line = ansiBold + line + ansiReset
	}
	fmt.Fprintln(w, line)
}

// renderMembers lists the group with the index the d/c commands expect.
// Sizes are re-read from disk so a file replaced behind our back shows its
// current size.
func renderMembers(w io.Writer, members []string, meta func(string) probe.FileMetadata) {
	rows := make([][]string, 0, len(members))
	for i, path := range members {
		m := meta(path)
		size := m.Size
		if current, err := fileutil.Size(path); err == nil {
			size = current
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			path,
			m.Dimensions(),
			m.Captured,
			textutil.FormatSize(size),
			m.Diagnostics,
		})
	}
	fmt.Fprintln(w, textutil.RenderTable(
		[]string{"#", "Path", "Pixels", "Captured", "Size", "Check"},
		rows,
		[]textutil.Alignment{textutil.AlignRight, textutil.AlignLeft, textutil.AlignRight, textutil.AlignLeft, textutil.AlignRight, textutil.AlignLeft},
	))
}

// renderPair prints the two members of an auto-resolution proposal with
// their aligned summaries.
func renderPair(w io.Writer, members []string, meta map[string]probe.FileMetadata) {
	width := 0
	for _, path := range members {
		if len(path) > width {
			width = len(path)
		}
	}
	for _, path := range members {
		fmt.Fprintf(w, "%-*s %s\n", width, path, meta[path].Summary())
	}
}
