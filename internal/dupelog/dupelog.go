package dupelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineBytes = 1 << 20

// Group is an ordered list of absolute paths the upstream scanner considers
// duplicates of each other.
type Group []string

// Clone returns an independent copy of the group.
func (g Group) Clone() Group {
	return append(Group(nil), g...)
}

// ParseLine reconstructs the paths of a single log line. The scanner joins
// paths with spaces, so every path after the first loses its leading
// separator when the line is split on " /".
func ParseLine(line string) Group {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, " /")
	group := make(Group, 0, len(parts))
	group = append(group, parts[0])
	for _, part := range parts[1:] {
		group = append(group, "/"+part)
	}
	return group
}

// Parse reads one group per line. Blank lines still yield a group so that
// group indices match line numbers.
func Parse(r io.Reader) ([]Group, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var groups []Group
	for scanner.Scan() {
		groups = append(groups, ParseLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read duplicate log: %w", err)
	}
	return groups, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]Group, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open duplicate log: %w", err)
	}
	defer file.Close()
	return Parse(file)
}
