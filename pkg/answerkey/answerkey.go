// Package answerkey overlays an externally supplied answer key onto
// parsed question records. The key is how hosts correct the parser's
// guessed answers after human review; records are joined on questionIndex.
package answerkey

import (
	"strings"

	"github.com/paperbank/exam-parser/models"
)

// Report summarizes one merge pass.
type Report struct {
	Applied   int      `json:"applied" yaml:"applied"`
	Unmatched []string `json:"unmatched,omitempty" yaml:"unmatched,omitempty"` // key indexes with no record
	Invalid   []string `json:"invalid,omitempty" yaml:"invalid,omitempty"`     // key entries with a bad letter
}

// Apply merges the key over the records and returns the updated copy; the
// input slice is left untouched. An applied entry overrides the record's
// correctAnswer (defaulted or not), refreshes correctAnswerText from the
// matching option unless the entry carries its own text, and clears the
// needs-review flag.
func Apply(questions []models.QuestionRecord, key models.AnswerKey) ([]models.QuestionRecord, Report) {
	byIndex := make(map[string]int, len(questions))
	for i, q := range questions {
		byIndex[q.QuestionIndex] = i
	}

	merged := make([]models.QuestionRecord, len(questions))
	copy(merged, questions)

	var report Report
	for _, entry := range key.Answers {
		letter, ok := models.ParseLetter(strings.ToUpper(strings.TrimSpace(entry.CorrectAnswer)))
		if !ok {
			report.Invalid = append(report.Invalid, entry.QuestionIndex)
			continue
		}

		i, found := byIndex[entry.QuestionIndex]
		if !found {
			report.Unmatched = append(report.Unmatched, entry.QuestionIndex)
			continue
		}

		rec := merged[i]
		rec.CorrectAnswer = letter
		rec.CorrectAnswerText = entry.CorrectAnswerText
		if rec.CorrectAnswerText == "" {
			if opt, present := rec.PossibleAnswers[letter]; present {
				rec.CorrectAnswerText = opt.Text
			}
		}
		rec.Source = models.AnswerFromKey
		rec.NeedsReview = false
		merged[i] = rec

		report.Applied++
	}

	return merged, report
}
