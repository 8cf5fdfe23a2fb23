package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"imgresolve/internal/textutil"
)

type commandKind int

const (
	cmdHelp commandKind = iota
	cmdDelete
	cmdConvert
	cmdNext
	cmdQuit
	cmdSkipSequential
	cmdView
)

type command struct {
	kind commandKind
	arg  string
}

// parseCommand matches a typed line by prefix, ignoring case and
// surrounding whitespace.
func parseCommand(line string) command {
	in := textutil.FoldInput(line)
	switch {
	case strings.HasPrefix(in, "d"):
		return command{kind: cmdDelete, arg: in[1:]}
	case strings.HasPrefix(in, "c"):
		return command{kind: cmdConvert, arg: in[1:]}
	case strings.HasPrefix(in, "q"):
		return command{kind: cmdQuit}
	case strings.HasPrefix(in, "n"):
		return command{kind: cmdNext}
	case strings.HasPrefix(in, "ss"):
		return command{kind: cmdSkipSequential}
	case strings.HasPrefix(in, "v"):
		return command{kind: cmdView}
	default:
		return command{kind: cmdHelp}
	}
}

// index parses the numeric argument of d/c against a group of size n.
func (c command) index(n int) (int, error) {
	arg := strings.TrimSpace(c.arg)
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %d out of range (0-%d)", i, n-1)
	}
	return i, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  v          visualize all files of the group")
	fmt.Fprintln(w, "  d<index>   delete (trash) the file at index")
	fmt.Fprintln(w, "  c<index>   convert the TIFF file at index to JPEG")
	fmt.Fprintln(w, "  n          proceed to the next group")
	fmt.Fprintln(w, "  ss         skip sequential and close-time files from now on")
	fmt.Fprintln(w, "  q          quit")
}
