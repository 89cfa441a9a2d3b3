// Package artifacts lays out the on-disk results of a parse run. Every
// source document gets its own directory named by a slug of the source
// plus a short content hash, so re-parsing the same paper overwrites in
// place while distinct papers never collide.
package artifacts

import (
	"crypto/sha256"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/paperbank/exam-parser/pkg/storage"
)

const DefaultBaseDir = "exam-results"

// Artifact filenames within a paper directory.
const (
	SourceFile    = "source.txt"
	QuestionsFile = "questions.json"
	TutorialFile  = "tutorial.json"
	ReportFile    = "report.yaml"
)

// Manager handles storage and retrieval of parse artifacts.
type Manager struct {
	baseDir string
	maxAge  time.Duration
	store   storage.Storage
}

// NewManager creates the base results directory if needed.
// maxAge controls when a stored source copy is considered stale;
// zero or negative means never.
func NewManager(baseDir string, maxAge time.Duration) (*Manager, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	if err := os.MkdirAll(baseDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &Manager{baseDir: baseDir, maxAge: maxAge}, nil
}

var invalidFilenameChar = regexp.MustCompile(`[^a-zA-Z0-9\-_]+`)

// sanitizeSlug creates a filesystem-safe slug from a source path or URL.
func sanitizeSlug(source string) string {
	u, err := url.Parse(source)
	if err != nil || u.Host == "" {
		base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
		safe := invalidFilenameChar.ReplaceAllString(base, "_")
		safe = strings.Trim(safe, "_")
		if safe == "" {
			return "paper"
		}
		return safe
	}

	hostPart := strings.ReplaceAll(u.Host, ".", "_")
	pathPart := strings.TrimPrefix(u.Path, "/")
	pathPart = invalidFilenameChar.ReplaceAllString(pathPart, "_")
	pathPart = strings.Trim(pathPart, "_")

	if pathPart == "" {
		return hostPart
	}
	return fmt.Sprintf("%s_%s", hostPart, pathPart)
}

// shortHash generates a short, stable hash from the full source string.
func shortHash(source string) string {
	hash := sha256.Sum256([]byte(source))
	return fmt.Sprintf("%x", hash[:6])
}

// PaperDir returns the directory for a source document, creating it if
// needed. Example: exam-results/jee-main-2022-a1b2c3d4e5f6/
func (m *Manager) PaperDir(source string) (string, error) {
	dir := filepath.Join(m.baseDir, fmt.Sprintf("%s-%s", sanitizeSlug(source), shortHash(source)))
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create paper directory: %w", err)
	}
	return dir, nil
}

// Save writes one named artifact into the paper's directory and returns
// the path it was written to.
func (m *Manager) Save(source, name string, data []byte) (string, error) {
	dir, err := m.PaperDir(source)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := m.store.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}

// Load retrieves a named artifact if present and fresh.
func (m *Manager) Load(source, name string) ([]byte, bool, error) {
	dir, err := m.PaperDir(source)
	if err != nil {
		return nil, false, err
	}
	path := filepath.Join(dir, name)

	stats, err := m.store.GetFileStats(path)
	if err != nil {
		if !m.store.HasFile(path) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if m.maxAge > 0 && time.Since(stats.ModTime) > m.maxAge {
		return nil, false, nil
	}

	data, err := m.store.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// BaseDir returns the results root.
func (m *Manager) BaseDir() string {
	return m.baseDir
}
