package answerkey

import (
	"testing"

	"github.com/paperbank/exam-parser/models"
)

func sampleQuestions() []models.QuestionRecord {
	return []models.QuestionRecord{
		{
			QuestionIndex: "1",
			CorrectAnswer: models.LetterA,
			PossibleAnswers: map[models.Letter]models.Option{
				"A": {Text: "0.5"}, "B": {Text: "1.57"}, "C": {Text: "3.14"}, "D": {Text: "1"},
			},
			CorrectAnswerText: "",
			Source:            models.AnswerDefaulted,
			NeedsReview:       true,
		},
		{
			QuestionIndex: "2",
			CorrectAnswer: models.LetterB,
			PossibleAnswers: map[models.Letter]models.Option{
				"A": {Text: "yes"}, "B": {Text: "no"},
			},
			CorrectAnswerText: "no",
			Source:            models.AnswerDetected,
		},
	}
}

func TestApplyOverridesDefaultedAnswer(t *testing.T) {
	key := models.AnswerKey{Answers: []models.AnswerKeyEntry{
		{QuestionIndex: "1", CorrectAnswer: "C"},
	}}

	merged, report := Apply(sampleQuestions(), key)

	if report.Applied != 1 || len(report.Unmatched) != 0 || len(report.Invalid) != 0 {
		t.Fatalf("report = %+v, want 1 applied and nothing else", report)
	}

	q := merged[0]
	if q.CorrectAnswer != models.LetterC {
		t.Errorf("correctAnswer = %q, want C", q.CorrectAnswer)
	}
	if q.CorrectAnswerText != "3.14" {
		t.Errorf("correctAnswerText = %q, want option C's text", q.CorrectAnswerText)
	}
	if q.Source != models.AnswerFromKey {
		t.Errorf("source = %v, want key", q.Source)
	}
	if q.NeedsReview {
		t.Error("needsReview still set after key merge")
	}

	// Untouched record keeps its detected answer.
	if merged[1].CorrectAnswer != models.LetterB || merged[1].Source != models.AnswerDetected {
		t.Errorf("record 2 changed: %+v", merged[1])
	}
}

func TestApplyKeepsEntryText(t *testing.T) {
	key := models.AnswerKey{Answers: []models.AnswerKeyEntry{
		{QuestionIndex: "2", CorrectAnswer: "a", CorrectAnswerText: "affirmative"},
	}}

	merged, report := Apply(sampleQuestions(), key)

	if report.Applied != 1 {
		t.Fatalf("report = %+v, want 1 applied", report)
	}
	if merged[1].CorrectAnswer != models.LetterA || merged[1].CorrectAnswerText != "affirmative" {
		t.Errorf("got %q/%q, want A/affirmative", merged[1].CorrectAnswer, merged[1].CorrectAnswerText)
	}
}

func TestApplyReportsUnmatchedAndInvalid(t *testing.T) {
	key := models.AnswerKey{Answers: []models.AnswerKeyEntry{
		{QuestionIndex: "99", CorrectAnswer: "B"},
		{QuestionIndex: "1", CorrectAnswer: "E"},
		{QuestionIndex: "2", CorrectAnswer: "3"},
	}}

	merged, report := Apply(sampleQuestions(), key)

	if report.Applied != 1 {
		t.Errorf("applied = %d, want 1", report.Applied)
	}
	if len(report.Unmatched) != 1 || report.Unmatched[0] != "99" {
		t.Errorf("unmatched = %v, want [99]", report.Unmatched)
	}
	if len(report.Invalid) != 1 || report.Invalid[0] != "1" {
		t.Errorf("invalid = %v, want [1]", report.Invalid)
	}
	if merged[1].CorrectAnswer != models.LetterC {
		t.Errorf("numeric key token = %q, want C", merged[1].CorrectAnswer)
	}
	if merged[0].CorrectAnswer != models.LetterA {
		t.Errorf("record with invalid entry changed: %q", merged[0].CorrectAnswer)
	}
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	original := sampleQuestions()
	key := models.AnswerKey{Answers: []models.AnswerKeyEntry{
		{QuestionIndex: "1", CorrectAnswer: "D"},
	}}

	Apply(original, key)

	if original[0].CorrectAnswer != models.LetterA || original[0].Source != models.AnswerDefaulted {
		t.Errorf("input slice mutated: %+v", original[0])
	}
}
