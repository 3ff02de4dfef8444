package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"tick-cli/internal/model"
)

const (
	appDirName    = "tick"
	todosFileName = "todos.json"
	logFileName   = "tick.log"
)

// Store reads and writes the todo document inside one data directory.
type Store struct {
	Dir string
}

// DefaultDir resolves the per-user data directory:
// TICK_DATA_DIR override (also keeps tests away from $HOME), else
// $XDG_DATA_HOME/tick, else ~/.local/share/tick.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("TICK_DATA_DIR")); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); v != "" {
		return filepath.Join(v, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &ConfigError{Reason: "no home directory", Err: err}
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}

// Open resolves the default data directory and ensures it exists.
func Open() (Store, error) {
	dir, err := DefaultDir()
	if err != nil {
		return Store{}, err
	}
	s := Store{Dir: dir}
	if err := s.Ensure(); err != nil {
		return Store{}, err
	}
	return s, nil
}

func (s Store) Ensure() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errIO("create dir", s.Dir, err)
	}
	return nil
}

// Path returns the full path of the todo document.
func (s Store) Path() string {
	return filepath.Join(s.Dir, todosFileName)
}

// LogPath returns the session log location inside the data directory.
func (s Store) LogPath() string {
	return filepath.Join(s.Dir, logFileName)
}

// Load reads the todo document. A missing file is an empty list; malformed
// content is a *ParseError, never silently an empty list.
func (s Store) Load() ([]model.TodoItem, error) {
	path := s.Path()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.TodoItem{}, nil
		}
		return nil, errIO("read", path, err)
	}
	var items []model.TodoItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if items == nil {
		// A bare "null" document round-trips as an empty list.
		items = []model.TodoItem{}
	}
	return items, nil
}

// Save writes the whole list as pretty-printed JSON, replacing the document
// atomically (temp file + rename) so a crash mid-write never leaves a
// truncated file behind.
func (s Store) Save(items []model.TodoItem) error {
	if items == nil {
		items = []model.TodoItem{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errIO("encode", s.Path(), err)
	}
	return atomicWriteFile(s.Dir, todosFileName+".tmp-*", s.Path(), b, 0o644)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return errIO("create temp", dir, err)
	}
	tmp := f.Name()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return errIO("write", tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return errIO("close", tmp, err)
	}
	if err := os.Chmod(tmp, perm); err != nil {
		_ = os.Remove(tmp)
		return errIO("chmod", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errIO("rename", path, err)
	}
	return nil
}
