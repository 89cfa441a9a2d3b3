// Package manifest builds the per-session summary: one yaml file that
// says, for every source document, whether the parse worked, what the
// paper is, how many questions came out, and which of them still need a
// human look.
package manifest

// SessionSummary is the top of the summary.yaml file.
type SessionSummary struct {
	GeneratedAt       string            `yaml:"generated_at"`
	SessionID         string            `yaml:"session_id"`
	TotalPapers       int               `yaml:"total_papers"`
	Successful        int               `yaml:"successful"`
	Failed            int               `yaml:"failed"`
	QuestionCount     int               `yaml:"question_count"`
	NeedsReviewCount  int               `yaml:"needs_review_count"`
	AggregateKeywords map[string]int    `yaml:"aggregate_keywords,omitempty"`
	Documents         []DocumentSummary `yaml:"documents"`
}

// DocumentSummary is the per-paper entry.
type DocumentSummary struct {
	Source           string         `yaml:"source"`
	Status           string         `yaml:"status"` // "success" or "failed"
	Error            string         `yaml:"error,omitempty"`
	ArtifactPath     string         `yaml:"artifact_path,omitempty"`
	SizeBytes        int64          `yaml:"size_bytes,omitempty"`
	Title            string         `yaml:"title,omitempty"`
	Year             string         `yaml:"year,omitempty"`
	Subject          string         `yaml:"subject,omitempty"`
	Dialect          string         `yaml:"dialect,omitempty"`
	Time             string         `yaml:"time,omitempty"`
	MaxMarks         string         `yaml:"max_marks,omitempty"`
	QuestionCount    int            `yaml:"question_count"`
	NeedsReviewCount int            `yaml:"needs_review_count"`
	NeedsReview      []string       `yaml:"needs_review,omitempty"`
	Subjects         map[string]int `yaml:"subjects,omitempty"`
	ImageCount       int            `yaml:"image_count,omitempty"`
	TopKeywords      map[string]int `yaml:"top_keywords,omitempty"`
}
