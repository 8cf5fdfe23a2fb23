package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsRegularFile reports whether path names an existing regular file.
// Symlinks are followed; directories and dangling links report false.
func IsRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Size returns the current size of path in bytes.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// IsTIFF reports whether path carries a .tif or .tiff extension in any case.
func IsTIFF(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return true
	default:
		return false
	}
}

// JPEGSibling returns the .jpg path a TIFF file converts to. Only the
// extension changes; directory components are left alone.
func JPEGSibling(path string) (string, error) {
	if !IsTIFF(path) {
		return "", fmt.Errorf("%s is not a TIFF file", filepath.Base(path))
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".jpg", nil
}
