package classifier

import (
	"testing"

	"github.com/paperbank/exam-parser/models"
)

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		ctx  Context
		want string
	}{
		{
			name: "section subject wins over range and vocabulary",
			text: "Find the derivative of the function",
			ctx:  Context{SectionSubject: models.SubjectChemistry, RangeSubject: models.SubjectPhysics},
			want: models.SubjectChemistry,
		},
		{
			name: "mixed section subject falls through",
			text: "Find the derivative of the function",
			ctx:  Context{SectionSubject: models.SubjectMixed},
			want: models.SubjectMathematics,
		},
		{
			name: "range subject wins over vocabulary",
			text: "Find the derivative of the function",
			ctx:  Context{RangeSubject: models.SubjectChemistry},
			want: models.SubjectChemistry,
		},
		{
			name: "no range subject votes",
			text: "Balance the reaction of the acid with the base",
			ctx:  Context{},
			want: models.SubjectChemistry,
		},
		{
			name: "no signal at all returns default",
			text: "Answer the question below",
			ctx:  Context{Default: models.SubjectMathematics},
			want: models.SubjectMathematics,
		},
		{
			name: "no signal and no default returns mixed",
			text: "Answer the question below",
			ctx:  Context{},
			want: models.SubjectMixed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text, tt.ctx); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVote(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"math terms dominate", "Solve the quadratic equation using the matrix", models.SubjectMathematics},
		{"physics terms dominate", "The force on the electron in the magnetic field", models.SubjectPhysics},
		{"chemistry terms dominate", "The oxidation of the alcohol gives an aldehyde", models.SubjectChemistry},
		{"all zero returns fallback", "Nothing recognizable here", models.SubjectMixed},
		{"tie returns fallback", "function force", models.SubjectMixed},
		{"case insensitive", "THE DERIVATIVE OF THE INTEGRAL", models.SubjectMathematics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Vote(tt.text, models.SubjectMixed); got != tt.want {
				t.Errorf("Vote(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
