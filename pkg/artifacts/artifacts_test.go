package artifacts

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	m, err := NewManager(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewManager() error: %v", err)
	}

	source := "https://example.com/papers/jee-2024.html"
	data := []byte(`{"questions":[]}`)

	path, err := m.Save(source, QuestionsFile, data)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if filepath.Base(path) != QuestionsFile {
		t.Errorf("saved as %q, want %s", filepath.Base(path), QuestionsFile)
	}

	got, found, err := m.Load(source, QuestionsFile)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !found {
		t.Fatal("Load() did not find saved artifact")
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Load() = %q, want %q", got, data)
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	m, err := NewManager(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewManager() error: %v", err)
	}

	_, found, err := m.Load("file.txt", QuestionsFile)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if found {
		t.Error("Load() found an artifact that was never saved")
	}
}

func TestLoadStaleArtifact(t *testing.T) {
	m, err := NewManager(t.TempDir(), time.Nanosecond)
	if err != nil {
		t.Fatalf("NewManager() error: %v", err)
	}

	if _, err := m.Save("file.txt", SourceFile, []byte("body")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	_, found, err := m.Load("file.txt", SourceFile)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if found {
		t.Error("Load() returned a stale artifact")
	}
}

func TestDistinctSourcesGetDistinctDirs(t *testing.T) {
	m, err := NewManager(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewManager() error: %v", err)
	}

	a, err := m.PaperDir("https://example.com/paper.html")
	if err != nil {
		t.Fatalf("PaperDir() error: %v", err)
	}
	b, err := m.PaperDir("https://other.com/paper.html")
	if err != nil {
		t.Fatalf("PaperDir() error: %v", err)
	}
	if a == b {
		t.Errorf("both sources mapped to %q", a)
	}

	again, err := m.PaperDir("https://example.com/paper.html")
	if err != nil {
		t.Fatalf("PaperDir() error: %v", err)
	}
	if again != a {
		t.Errorf("same source moved from %q to %q", a, again)
	}
}

func TestSanitizeSlug(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"https://example.com/papers/jee%20main.html", "example_com_papers_jee_main_html"},
		{"https://example.com/", "example_com"},
		{"/data/jee main 2024.txt", "jee_main_2024"},
		{"???", "paper"},
	}

	for _, tt := range tests {
		if got := sanitizeSlug(tt.source); got != tt.want {
			t.Errorf("sanitizeSlug(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestSlugStripsExtensionForFiles(t *testing.T) {
	got := sanitizeSlug("papers/jee-2024.txt")
	if strings.Contains(got, "txt") {
		t.Errorf("slug kept the extension: %q", got)
	}
}
