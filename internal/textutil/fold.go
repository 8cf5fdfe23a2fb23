package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldInput trims and case-folds a line of user input for command matching.
func FoldInput(line string) string {
	return cases.Fold().String(strings.TrimSpace(line))
}
