package curation

import "sort"

type keyFunc func(path string) (int64, error)

// keyed sorts paths and extracts every key up front, so a single unrecognized
// name fails the whole step before anything is dropped.
func keyed(paths []string, key keyFunc) ([]string, []int64, error) {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	keys := make([]int64, len(sorted))
	for i, path := range sorted {
		k, err := key(path)
		if err != nil {
			return nil, nil, err
		}
		keys[i] = k
	}
	return sorted, keys, nil
}

// collapse keeps the first path and every path whose key does not satisfy
// near(previous, current). The comparison runs against the previous path in
// sorted order whether or not it was kept, so a whole run collapses onto its
// first member.
func collapse(paths []string, key keyFunc, near func(prev, cur int64) bool) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	sorted, keys, err := keyed(paths, key)
	if err != nil {
		return nil, err
	}
	kept := []string{sorted[0]}
	for i := 1; i < len(sorted); i++ {
		if !near(keys[i-1], keys[i]) {
			kept = append(kept, sorted[i])
		}
	}
	return kept, nil
}

// RemoveSequential drops files whose serial number directly follows the
// previous file's serial.
func RemoveSequential(paths []string) ([]string, error) {
	return collapse(paths, Serial, func(prev, cur int64) bool {
		return cur-prev == 1
	})
}

// RemoveCloseTimes drops files whose filename timestamp is less than
// threshold after the previous file's timestamp.
func RemoveCloseTimes(paths []string, threshold int64) ([]string, error) {
	return collapse(paths, Timestamp, func(prev, cur int64) bool {
		return cur-prev < threshold
	})
}
