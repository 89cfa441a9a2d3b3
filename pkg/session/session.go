// Package session names and indexes parse runs. A session covers one
// invocation over a set of source documents; the results root keeps a
// yaml index so past runs can be listed without opening the database.
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// SessionInfo represents metadata about one parse session.
type SessionInfo struct {
	SessionID      string    `yaml:"session_id"`
	Created        time.Time `yaml:"created"`
	PaperCount     int       `yaml:"paper_count"`
	Success        int       `yaml:"success"`
	Failed         int       `yaml:"failed"`
	QuestionCount  int       `yaml:"question_count"`
	NeedsReview    int       `yaml:"needs_review,omitempty"`
	SourcesPreview []string  `yaml:"sources_preview,omitempty"` // First 3 sources
}

// SessionIndex represents the index.yaml file at the results root.
type SessionIndex struct {
	Sessions []SessionInfo `yaml:"sessions"`
}

// GenerateSessionID creates a timestamp-first session ID from the
// source list. Format: YYYY-MM-DDTHH-MM-{hash}. The hash comes from the
// sorted sources so the same input set maps to the same suffix.
func GenerateSessionID(sources []string) string {
	normalized := make([]string, len(sources))
	copy(normalized, sources)
	sort.Strings(normalized)

	h := sha256.New()
	for _, src := range normalized {
		h.Write([]byte(src))
		h.Write([]byte("\n"))
	}
	shortHash := hex.EncodeToString(h.Sum(nil)[:6])

	timestamp := time.Now().Format("2006-01-02T15-04")

	return fmt.Sprintf("%s-%s", timestamp, shortHash)
}

// GetSessionDir returns the full path to a session directory.
func GetSessionDir(baseDir, sessionID string) string {
	return filepath.Join(baseDir, "sessions", sessionID)
}

// GetSessionsIndexPath returns the path to the index file at the results root.
func GetSessionsIndexPath(baseDir string) string {
	return filepath.Join(baseDir, "index.yaml")
}

// SessionExists checks if a session directory has a written summary.
func SessionExists(baseDir, sessionID string) bool {
	summaryPath := filepath.Join(GetSessionDir(baseDir, sessionID), "summary.yaml")
	_, err := os.Stat(summaryPath)
	return err == nil
}

// IsSessionFresh reports whether a session's summary is newer than maxAge.
// maxAge <= 0 means no expiry.
func IsSessionFresh(baseDir, sessionID string, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return SessionExists(baseDir, sessionID)
	}

	summaryPath := filepath.Join(GetSessionDir(baseDir, sessionID), "summary.yaml")
	info, err := os.Stat(summaryPath)
	if err != nil {
		return false
	}

	return time.Since(info.ModTime()) <= maxAge
}

// EnsureSessionDir creates the session directory structure if it doesn't exist.
func EnsureSessionDir(baseDir, sessionID string) error {
	sessionDir := GetSessionDir(baseDir, sessionID)
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	return nil
}

// UpdateSessionIndex adds or updates a session entry in index.yaml.
func UpdateSessionIndex(baseDir string, info SessionInfo) error {
	indexPath := GetSessionsIndexPath(baseDir)

	var index SessionIndex
	data, err := os.ReadFile(indexPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read session index: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &index); err != nil {
			return fmt.Errorf("failed to parse session index: %w", err)
		}
	}

	found := false
	for i, s := range index.Sessions {
		if s.SessionID == info.SessionID {
			index.Sessions[i] = info
			found = true
			break
		}
	}
	if !found {
		index.Sessions = append(index.Sessions, info)
	}

	// Timestamp-first naming makes this chronological, newest first
	sort.Slice(index.Sessions, func(i, j int) bool {
		return index.Sessions[i].SessionID > index.Sessions[j].SessionID
	})

	output, err := yaml.Marshal(&index)
	if err != nil {
		return fmt.Errorf("failed to marshal session index: %w", err)
	}

	if err := os.WriteFile(indexPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write session index: %w", err)
	}

	return nil
}

// GetSourcesPreview returns the first n sources for index entries.
func GetSourcesPreview(sources []string, n int) []string {
	if len(sources) <= n {
		return sources
	}
	return sources[:n]
}

// GenerateFieldsReference writes the FIELDS.yaml reference file once per
// results root. It documents the summary fields for yq-style querying.
func GenerateFieldsReference(baseDir string) error {
	fieldsPath := filepath.Join(baseDir, "FIELDS.yaml")

	if _, err := os.Stat(fieldsPath); err == nil {
		return nil
	}

	content := `# Summary Fields Reference
# Auto-generated field documentation for exam-parser output

fields:
  # Status & Basic Info
  source: string (file path or URL)
  status: [success, failed]
  error: string (only if failed)

  # Paper Metadata
  title: string
  year: string (4 digits)
  subject: [Mathematics, Physics, Chemistry, Mixed]
  dialect: [latex, markdown]
  time: string (e.g. "3 hours")
  max_marks: string

  # Extraction Metrics
  question_count: int
  needs_review_count: int (questions with defaulted answers)
  needs_review: [string] (question IDs to check by hand)
  subjects: map (subject -> question count)
  image_count: int

  # Keyword Analytics
  top_keywords: map (word -> count, stopwords removed)

query_examples:
  - desc: Papers where every answer was detected
    yq: '.documents[] | select(.needs_review_count == 0)'

  - desc: Physics-heavy papers
    yq: '.documents[] | select(.subjects.Physics > 20)'

  - desc: Failed parses only
    yq: '.documents[] | select(.status == "failed")'

usage:
  summary: exam-results/sessions/{session-id}/summary.yaml
  session_index: exam-results/index.yaml (list all sessions)
`

	if err := os.WriteFile(fieldsPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write FIELDS.yaml: %w", err)
	}

	return nil
}
