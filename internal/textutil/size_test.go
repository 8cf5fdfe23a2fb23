package textutil

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1.000 kB"},
		{1536, "1.500 kB"},
		{1024 * 1024, "1.000 MB"},
		{5*1024*1024 + 512*1024, "5.500 MB"},
		{1024 * 1024 * 1024, "1.000 GB"},
		{1024 * 1024 * 1024 * 1024, "1.000 TB"},
		{2048 * 1024 * 1024 * 1024 * 1024, "2048.000 TB"},
	}
	for _, tc := range tests {
		if got := FormatSize(tc.in); got != tc.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
