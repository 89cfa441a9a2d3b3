package storage

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestSaveFileCreatesParentDirs(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "nested", "deep", "out.json")
	content := []byte(`{"ok":true}`)

	if err := s.SaveFile(path, content); err != nil {
		t.Fatalf("SaveFile() error: %v", err)
	}

	got, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("ReadFile() = %q, want %q", got, content)
	}
}

func TestHasFile(t *testing.T) {
	s := &Storage{}
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")

	if s.HasFile(path) {
		t.Error("HasFile() true before write")
	}
	if err := s.SaveFile(path, []byte("x")); err != nil {
		t.Fatalf("SaveFile() error: %v", err)
	}
	if !s.HasFile(path) {
		t.Error("HasFile() false after write")
	}
}

func TestGetFileStats(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "stats.txt")
	if err := s.SaveFile(path, []byte("12345")); err != nil {
		t.Fatalf("SaveFile() error: %v", err)
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() error: %v", err)
	}
	if stats.SizeBytes != 5 {
		t.Errorf("SizeBytes = %d, want 5", stats.SizeBytes)
	}
	if stats.ModTime.IsZero() {
		t.Error("ModTime is zero")
	}

	if _, err := s.GetFileStats(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("GetFileStats() succeeded on a missing file")
	}
}
