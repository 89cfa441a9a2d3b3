package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Paper represents one source document
type Paper struct {
	PaperID   int64
	Source    string
	Title     string
	Year      string
	Subject   string
	CreatedAt time.Time
}

// InsertPaper inserts a paper, returning the paper_id.
// If the source already exists, updates the metadata and returns the existing paper_id.
func (db *DB) InsertPaper(source, title, year, subject string) (int64, error) {
	var existingID int64
	err := db.QueryRow("SELECT paper_id FROM papers WHERE source = ?", source).Scan(&existingID)
	if err == nil {
		_, err = db.Exec(`
			UPDATE papers
			SET title = ?, year = ?, subject = ?
			WHERE paper_id = ?
		`, title, year, subject, existingID)
		if err != nil {
			return 0, fmt.Errorf("failed to update paper: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing paper: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO papers (source, title, year, subject)
		VALUES (?, ?, ?, ?)
	`, source, title, year, subject)
	if err != nil {
		return 0, fmt.Errorf("failed to insert paper: %w", err)
	}

	paperID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get paper ID: %w", err)
	}

	return paperID, nil
}

// GetPaper returns a paper by source, or sql.ErrNoRows if unknown.
func (db *DB) GetPaper(source string) (*Paper, error) {
	var p Paper
	err := db.QueryRow(`
		SELECT paper_id, source, title, year, subject, created_at
		FROM papers WHERE source = ?
	`, source).Scan(&p.PaperID, &p.Source, &p.Title, &p.Year, &p.Subject, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPapers returns all papers, newest first.
func (db *DB) ListPapers() ([]Paper, error) {
	rows, err := db.Query(`
		SELECT paper_id, source, title, year, subject, created_at
		FROM papers
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list papers: %w", err)
	}
	defer rows.Close()

	var papers []Paper
	for rows.Next() {
		var p Paper
		if err := rows.Scan(&p.PaperID, &p.Source, &p.Title, &p.Year, &p.Subject, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan paper: %w", err)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}
