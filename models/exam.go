// Package models defines the data structures shared between the parsing
// pipeline and the CLI commands.
package models

import "fmt"

// Letter identifies one of the four multiple-choice slots.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters lists the valid option slots in display order.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD}

// LetterFromIndex maps a 1-based option number (the "(1)".."(4)" convention)
// to its letter. Returns false for anything outside 1-4.
func LetterFromIndex(n int) (Letter, bool) {
	if n < 1 || n > 4 {
		return "", false
	}
	return Letters[n-1], true
}

// ParseLetter validates a raw answer token ("A".."D" or "1".."4") and
// normalizes it to a Letter.
func ParseLetter(s string) (Letter, bool) {
	switch s {
	case "A", "B", "C", "D":
		return Letter(s), true
	case "1", "2", "3", "4":
		return Letters[s[0]-'1'], true
	}
	return "", false
}

// Subject labels. "Mixed" is the document-level default when no subject
// signal is found.
const (
	SubjectMathematics = "Mathematics"
	SubjectPhysics     = "Physics"
	SubjectChemistry   = "Chemistry"
	SubjectMixed       = "Mixed"
)

// ExamInfo holds document-level metadata recovered by heuristics.
// TotalQuestions is a display-only estimate and may disagree with the
// number of questions the segmenter actually accepts.
type ExamInfo struct {
	Title          string `json:"title"`
	Year           string `json:"year"`
	Subject        string `json:"subject"`
	Time           string `json:"time"`
	MaxMarks       string `json:"maxMarks"`
	TotalQuestions int    `json:"totalQuestions"`
}

// ImageRef is an opaque image reference found in question text. Resolving
// it to bytes or an upload URL is the host's responsibility.
type ImageRef struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Format string `json:"type"` // markdown, html, latex
}

// Option is one answer choice. Image stays nil unless the source attached
// one; downstream serialization must render it as an explicit null.
type Option struct {
	Text  string  `json:"text"`
	Image *string `json:"image"`
}

// AnswerSource records how a record's correctAnswer was obtained. The
// external schema always serializes a letter, so a defaulted answer is
// indistinguishable from a detected "A" there; this field keeps the
// distinction alive for review tooling.
type AnswerSource int

const (
	AnswerDetected AnswerSource = iota // matched an answer-phrase pattern
	AnswerDefaulted                    // no pattern matched, fell back to "A"
	AnswerFromKey                      // overridden by an external answer key
)

func (s AnswerSource) String() string {
	switch s {
	case AnswerDetected:
		return "detected"
	case AnswerDefaulted:
		return "defaulted"
	case AnswerFromKey:
		return "key"
	}
	return fmt.Sprintf("AnswerSource(%d)", int(s))
}

// QuestionRecord is the final per-question output of a parse call.
//
// PossibleAnswers never contains keys outside A-D. CorrectAnswerText is the
// denormalized text of PossibleAnswers[CorrectAnswer], empty when that key
// is absent (which is accepted, not an error).
type QuestionRecord struct {
	QuestionIndex     string            `json:"questionIndex"`
	QuestionID        string            `json:"questionId"`
	Text              string            `json:"text"`
	TextImages        []ImageRef        `json:"textImages"`
	PossibleAnswers   map[Letter]Option `json:"possibleAnswers"`
	CorrectAnswer     Letter            `json:"correctAnswer"`
	CorrectAnswerText string            `json:"correctAnswerText"`
	Subject           string            `json:"subject"`
	Solution          string            `json:"solution"`
	Marks             string            `json:"marks"`

	// Number is the question number as it appeared in the source document,
	// kept so callers can build the {year}Q{number} ID form. Not serialized
	// into the host envelope.
	Number string `json:"-"`

	// Source and NeedsReview carry the answer-provenance tri-state for
	// review tooling; the envelope still serializes CorrectAnswer as a
	// plain letter for compatibility.
	Source      AnswerSource `json:"-"`
	NeedsReview bool         `json:"-"`
}

// Result is the full output of one parse call.
type Result struct {
	ExamInfo  ExamInfo         `json:"examInfo"`
	Questions []QuestionRecord `json:"questions"`
}
