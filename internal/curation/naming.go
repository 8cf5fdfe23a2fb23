package curation

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNoSerial reports a filename that matches none of the known camera
// naming conventions.
var ErrNoSerial = errors.New("no serial number in filename")

var (
	shortSerialPrefixes    = []string{"dsc_", "gopr", "img_", "dscn"}
	compoundSerialPrefixes = []string{"dscn", "dsc_"}
)

func stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func matchesAnyFold(s string, prefixes []string) bool {
	lower := strings.ToLower(s)
	for _, p := range prefixes {
		if lower == p {
			return true
		}
	}
	return false
}

func parseDigits(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrNoSerial
	}
	return n, nil
}

// Serial extracts the camera sequence number embedded in a filename.
//
// Recognized stems (extension removed, prefixes case-insensitive):
//
//	DSC_1234, GOPR1234, IMG_1234, DSCN1234   -> 1234
//	<20 chars>DSCN1234 (28 chars total)       -> 1234
//	IMG_20150102_1304...                      -> 201501021304 (minute precision)
//	1234                                      -> 1234
func Serial(path string) (int64, error) {
	name := stem(path)
	switch {
	case len(name) == 8 && matchesAnyFold(name[:4], shortSerialPrefixes):
		return parseDigits(name[4:8])
	case len(name) == 28 && matchesAnyFold(name[20:24], compoundSerialPrefixes):
		return parseDigits(name[24:28])
	case len(name) >= 22 && strings.EqualFold(name[:4], "img_"):
		return parseDigits(name[4:12] + name[13:17])
	default:
		return parseDigits(name)
	}
}

// Timestamp extracts the capture timestamp encoded in IMG_YYYYMMDD_HHMMSSmmm
// style names as the integer YYYYMMDDHHMMSSmmm.
func Timestamp(path string) (int64, error) {
	name := stem(path)
	if len(name) >= 22 && strings.EqualFold(name[:4], "img_") {
		return parseDigits(name[4:12] + name[13:22])
	}
	return 0, ErrNoSerial
}
