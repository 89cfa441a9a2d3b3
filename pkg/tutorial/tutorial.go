// Package tutorial assembles a parse result into the envelope the host
// persists. The envelope shape belongs to the host, not the parser; this
// package is the adapter between the two.
package tutorial

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/paperbank/exam-parser/models"
)

// IDStyle selects the questionId convention. Different boards key their
// papers differently; the parser keeps the inputs for both forms.
type IDStyle string

const (
	// IDYearNumber renders {year}Q{number}, using the source question
	// number.
	IDYearNumber IDStyle = "year-number"

	// IDYearSubjectIndex renders {year}{subjectInitial}Q{index}, using the
	// final 1-based position.
	IDYearSubjectIndex IDStyle = "year-subject-index"
)

// Meta is the caller-supplied board context an envelope needs beyond what
// the parser recovered from the document.
type Meta struct {
	Board           string
	AuthorityExamID string
	State           string
	ConductedBy     string
	Description     string
	IDStyle         IDStyle
}

// QuestionID builds one questionId in the requested style.
func QuestionID(style IDStyle, year, subject, number, index string) string {
	if style == IDYearSubjectIndex {
		initial := "M"
		if subject != "" {
			initial = string(subject[0])
		}
		return fmt.Sprintf("%s%sQ%s", year, initial, index)
	}
	return fmt.Sprintf("%sQ%s", year, number)
}

// Assemble builds the envelope. Question IDs are rewritten to the chosen
// style; everything else is carried over from the result as-is.
func Assemble(res *models.Result, meta Meta) models.Tutorial {
	info := res.ExamInfo

	description := meta.Description
	if description == "" {
		description = fmt.Sprintf("%s %s Question Paper with Solutions", info.Subject, info.Year)
	}

	questions := make([]models.QuestionRecord, len(res.Questions))
	copy(questions, res.Questions)
	for i := range questions {
		q := &questions[i]
		q.QuestionID = QuestionID(meta.IDStyle, info.Year, q.Subject, q.Number, q.QuestionIndex)
	}

	return models.Tutorial{
		TutorialID:          fmt.Sprintf("%s_%s_%s", meta.Board, info.Year, info.Subject),
		TutorialTitle:       info.Title,
		TutorialDescription: description,
		AuthorityExamID:     meta.AuthorityExamID,
		State:               meta.State,
		Board:               meta.Board,
		ConductedBy:         meta.ConductedBy,
		Year:                info.Year,
		Subject:             info.Subject,
		TotalQuestions:      len(questions),
		Time:                info.Time,
		MaxMarks:            info.MaxMarks,
		Questions:           questions,
	}
}

var validate = validator.New()

// Validate checks the envelope's structural requirements before export.
func Validate(t models.Tutorial) error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("tutorial envelope invalid: %w", err)
	}
	return nil
}
