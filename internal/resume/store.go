package resume

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-ini/ini"
	"github.com/gofrs/flock"
)

const settingsMode os.FileMode = 0o644

const (
	settingsSuffix = ".ini"
	sectionResume  = "resume"
	keyGroup       = "group"
)

// ErrLocked reports that another session holds the settings file.
var ErrLocked = errors.New("settings file is in use by another session")

// PathFor returns the settings file kept next to a duplicate log.
func PathFor(logPath string) string {
	return logPath + settingsSuffix
}

// Store persists the resume marker in a flat INI settings file.
type Store struct {
	path string
	file *ini.File
	lock *flock.Flock
}

// Open loads the settings file at path, treating a missing file as empty,
// and takes an exclusive advisory lock for the lifetime of the store.
func Open(path string) (*Store, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock settings: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}

	file, err := ini.LooseLoad(path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &Store{path: path, file: file, lock: lock}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// LastGroup returns the index of the last completed group, if recorded.
func (s *Store) LastGroup() (int, bool) {
	section, err := s.file.GetSection(sectionResume)
	if err != nil || !section.HasKey(keyGroup) {
		return 0, false
	}
	value, err := section.Key(keyGroup).Int()
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}

// SetLastGroup records index and flushes the file before returning.
func (s *Store) SetLastGroup(index int) error {
	s.file.Section(sectionResume).Key(keyGroup).SetValue(strconv.Itoa(index))
	return s.flush()
}

// flush writes through a temporary file so an interrupted write never
// truncates the previous state.
func (s *Store) flush() error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	tmpName := tmp.Name()
	mode := settingsMode
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("save settings: %w", err)
	}
	if _, err := s.file.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("save settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("save settings: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Close releases the session lock and removes the lock file.
func (s *Store) Close() error {
	if s.lock == nil {
		return nil
	}
	if err := s.lock.Unlock(); err != nil {
		return fmt.Errorf("unlock settings: %w", err)
	}
	if err := os.Remove(s.lock.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove lock file: %w", err)
	}
	s.lock = nil
	return nil
}
