package models

// Tutorial is the host-side envelope a parsed paper is published into.
// The core never builds this on its own; the export path assembles it from
// a Result plus caller-supplied board metadata.
type Tutorial struct {
	TutorialID          string           `json:"tutorialId" yaml:"tutorialId" validate:"required"`
	TutorialTitle       string           `json:"tutorialTitle" yaml:"tutorialTitle" validate:"required"`
	TutorialDescription string           `json:"tutorialDescription" yaml:"tutorialDescription"`
	AuthorityExamID     string           `json:"authorityExamId" yaml:"authorityExamId" validate:"required"`
	State               string           `json:"state" yaml:"state"`
	Board               string           `json:"board" yaml:"board"`
	ConductedBy         string           `json:"conductedBy" yaml:"conductedBy"`
	Year                string           `json:"year" yaml:"year" validate:"required,len=4,numeric"`
	Subject             string           `json:"subject" yaml:"subject"`
	TotalQuestions      int              `json:"totalQuestions" yaml:"totalQuestions"`
	Time                string           `json:"time,omitempty" yaml:"time,omitempty"`
	MaxMarks            string           `json:"maxMarks,omitempty" yaml:"maxMarks,omitempty"`
	Questions           []QuestionRecord `json:"questions" yaml:"questions" validate:"required,min=1"`
}
