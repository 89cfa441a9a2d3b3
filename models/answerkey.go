package models

// AnswerKey is the external payload a host merges over parsed records to
// correct guessed answers after human review.
type AnswerKey struct {
	Answers []AnswerKeyEntry `json:"answers" yaml:"answers"`
}

// AnswerKeyEntry targets one record by its questionIndex join key.
// CorrectAnswerText is optional; when empty the merge denormalizes it from
// the matching option instead.
type AnswerKeyEntry struct {
	QuestionIndex     string `json:"questionIndex" yaml:"questionIndex"`
	CorrectAnswer     string `json:"correctAnswer" yaml:"correctAnswer"`
	CorrectAnswerText string `json:"correctAnswerText,omitempty" yaml:"correctAnswerText,omitempty"`
}
