package db

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/paperbank/exam-parser/models"
)

// Run represents one parse of a paper
type Run struct {
	RunID            int64
	PaperID          int64
	SessionID        string
	Dialect          string
	QuestionCount    int
	NeedsReviewCount int
	ArtifactPath     string
	CreatedAt        time.Time
}

// recordJSON keeps map keys sorted so stored rows are byte-stable across runs.
var recordJSON = sonic.ConfigStd

// InsertRun records a parse run for a paper, returning the run_id.
func (db *DB) InsertRun(paperID int64, sessionID, dialect string, questionCount, needsReviewCount int, artifactPath string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (paper_id, session_id, dialect, question_count, needs_review_count, artifact_path)
		VALUES (?, ?, ?, ?, ?, ?)
	`, paperID, sessionID, dialect, questionCount, needsReviewCount, artifactPath)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	return runID, nil
}

// InsertQuestions stores the extracted questions for a run in a single
// transaction. Position is the 1-based output order.
func (db *DB) InsertQuestions(runID int64, questions []models.QuestionRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO questions (run_id, position, number, subject, needs_review, answer_source, record)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, q := range questions {
		record, err := recordJSON.Marshal(q)
		if err != nil {
			return fmt.Errorf("failed to marshal question %s: %w", q.QuestionID, err)
		}
		_, err = stmt.Exec(runID, i+1, q.Number, q.Subject, q.NeedsReview, q.Source.String(), string(record))
		if err != nil {
			return fmt.Errorf("failed to insert question %s: %w", q.QuestionID, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns runs for a paper source, newest first.
// An empty source returns runs for all papers.
func (db *DB) ListRuns(source string) ([]Run, error) {
	query := `
		SELECT r.run_id, r.paper_id, r.session_id, r.dialect,
		       r.question_count, r.needs_review_count, r.artifact_path, r.created_at
		FROM runs r
	`
	var args []any
	if source != "" {
		query += ` JOIN papers p ON p.paper_id = r.paper_id WHERE p.source = ?`
		args = append(args, source)
	}
	query += ` ORDER BY r.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.PaperID, &r.SessionID, &r.Dialect,
			&r.QuestionCount, &r.NeedsReviewCount, &r.ArtifactPath, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunQuestions loads the stored question records for a run in output order.
func (db *DB) RunQuestions(runID int64) ([]models.QuestionRecord, error) {
	rows, err := db.Query(`
		SELECT record FROM questions
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []models.QuestionRecord
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		var q models.QuestionRecord
		if err := recordJSON.Unmarshal([]byte(record), &q); err != nil {
			return nil, fmt.Errorf("failed to unmarshal question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// ReviewCounts returns, per subject, how many stored questions still need review.
func (db *DB) ReviewCounts() (map[string]int, error) {
	rows, err := db.Query(`
		SELECT subject, COUNT(*) FROM questions
		WHERE needs_review = 1
		GROUP BY subject
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query review counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var subject string
		var n int
		if err := rows.Scan(&subject, &n); err != nil {
			return nil, fmt.Errorf("failed to scan review count: %w", err)
		}
		counts[subject] = n
	}
	return counts, rows.Err()
}
