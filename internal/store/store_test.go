package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tick-cli/internal/model"
)

func TestDefaultDirOverride(t *testing.T) {
	t.Setenv("TICK_DATA_DIR", "/tmp/tick-override")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir: %v", err)
	}
	if dir != "/tmp/tick-override" {
		t.Fatalf("dir = %q, want the TICK_DATA_DIR override", dir)
	}
}

func TestDefaultDirXDG(t *testing.T) {
	t.Setenv("TICK_DATA_DIR", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "tick") {
		t.Fatalf("dir = %q, want $XDG_DATA_HOME/tick", dir)
	}
}

func TestDefaultDirHomeFallback(t *testing.T) {
	t.Setenv("TICK_DATA_DIR", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/tmp/home")

	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir: %v", err)
	}
	if dir != filepath.Join("/tmp/home", ".local", "share", "tick") {
		t.Fatalf("dir = %q, want ~/.local/share/tick", dir)
	}
}

func TestLoadMissingFileIsEmptyList(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	items, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	for _, items := range [][]model.TodoItem{
		{},
		{{ID: 1, Text: "buy milk"}},
		{{ID: 1, Text: "buy milk", Completed: true}, {ID: 3, Text: "walk dog"}},
	} {
		if err := s.Save(items); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := s.Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(got) != len(items) {
			t.Fatalf("round trip: got %d items, want %d", len(got), len(items))
		}
		for i := range items {
			if got[i] != items[i] {
				t.Fatalf("round trip item %d: got %+v, want %+v", i, got[i], items[i])
			}
		}
	}
}

func TestSaveIsPrettyPrinted(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := s.Save([]model.TodoItem{{ID: 1, Text: "x"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(b), "\n  ") {
		t.Fatalf("document is not indented:\n%s", b)
	}
}

func TestLoadMalformedFileIsParseError(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := s.Load()
	if err == nil {
		t.Fatalf("expected an error for malformed content")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v (%T), want *ParseError", err, err)
	}
	if pe.Path != s.Path() {
		t.Fatalf("ParseError.Path = %q, want %q", pe.Path, s.Path())
	}
}

func TestLoadNullDocumentIsEmptyList(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := os.WriteFile(s.Path(), []byte("null"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	items, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected non-nil empty list, got %#v", items)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := s.Save([]model.TodoItem{{ID: 1, Text: "x"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Fatalf("leftover temp file %q", e.Name())
		}
	}
}

func TestOpenCreatesDataDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("TICK_DATA_DIR", filepath.Join(base, "nested", "data"))

	s, err := Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	st, err := os.Stat(s.Dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("data dir was not created: %v", err)
	}
}
