package dialect

import (
	"testing"

	"github.com/paperbank/exam-parser/models"
)

func TestAnalyze(t *testing.T) {
	doc := `# JEE Main 2024
\section*{SECTION-A}
1. Evaluate $\frac{1}{2}$
![fig](fig.png)`

	s := Analyze(doc)

	if !s.HasSectionSpans {
		t.Error("HasSectionSpans = false, want true")
	}
	if !s.HasLaTeXCommands {
		t.Error("HasLaTeXCommands = false, want true")
	}
	if !s.HasMathDelimiters {
		t.Error("HasMathDelimiters = false, want true")
	}
	if !s.HasATXHeadings {
		t.Error("HasATXHeadings = false, want true")
	}
	if !s.HasMarkdownImages {
		t.Error("HasMarkdownImages = false, want true")
	}
	if s.LaTeXScore != 9.0 {
		t.Errorf("LaTeXScore = %v, want 9.0", s.LaTeXScore)
	}
	if s.MarkdownScore != 6.0 {
		t.Errorf("MarkdownScore = %v, want 6.0", s.MarkdownScore)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want models.Dialect
	}{
		{
			name: "section spans force latex",
			doc:  "\\section*{SECTION-A}\n1. A question",
			want: models.DialectLaTeX,
		},
		{
			name: "latex commands without spans stay markdown",
			doc:  "1. Evaluate \\frac{1}{2} of $x$",
			want: models.DialectMarkdown,
		},
		{
			name: "markdown headings",
			doc:  "# Paper\n1. A question ![f](f.png)",
			want: models.DialectMarkdown,
		},
		{
			name: "plain text",
			doc:  "1. A question with nothing special",
			want: models.DialectMarkdown,
		},
		{
			name: "lowercase section name is not a span marker",
			doc:  "\\section*{section-a}\n1. A question",
			want: models.DialectMarkdown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.doc); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
