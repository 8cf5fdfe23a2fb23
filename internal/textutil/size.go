package textutil

import "fmt"

var sizePrefixes = []string{"", "k", "M", "G", "T"}

// FormatSize renders a byte count with a 1024-based prefix. Values below one
// kilobyte print as whole bytes; larger values carry three decimals.
func FormatSize(size int64) string {
	value := float64(size)
	step := 0
	for value >= 1024 && step < len(sizePrefixes)-1 {
		value /= 1024
		step++
	}
	if step == 0 {
		return fmt.Sprintf("%d B", size)
	}
	return fmt.Sprintf("%.3f %sB", value, sizePrefixes[step])
}
