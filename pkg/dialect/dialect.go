// Package dialect detects which of the two supported source conventions a
// document follows, by scoring cheap formatting signals. The choice is the
// segmentation strategy selector: section-scoped splitting needs the LaTeX
// \section*{SECTION-X} markers, everything else goes through the line
// scanner.
package dialect

import (
	"regexp"

	"github.com/paperbank/exam-parser/models"
)

// Signals contains the detection results for one document.
type Signals struct {
	HasSectionSpans   bool // \section*{SECTION-A} style span markers
	HasLaTeXCommands  bool // \frac, \includegraphics, \begin, bare macros
	HasMathDelimiters bool // $...$ or $$...$$
	HasATXHeadings    bool // Markdown # headings
	HasMarkdownImages bool // ![alt](src)

	LaTeXScore    float64 // 0-10
	MarkdownScore float64 // 0-10
}

var (
	sectionSpan  = regexp.MustCompile(`\\section\*\{SECTION-[A-Z]\}`)
	latexCommand = regexp.MustCompile(`\\(?:frac|includegraphics|begin|end|section)\b|\\[a-zA-Z]+\{`)
	mathDelim    = regexp.MustCompile(`\$[^$]+\$`)
	atxHeading   = regexp.MustCompile(`(?m)^#+\s`)
	mdImage      = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
)

// Analyze scans the document once and fills in every signal.
func Analyze(doc string) *Signals {
	s := &Signals{
		HasSectionSpans:   sectionSpan.MatchString(doc),
		HasLaTeXCommands:  latexCommand.MatchString(doc),
		HasMathDelimiters: mathDelim.MatchString(doc),
		HasATXHeadings:    atxHeading.MatchString(doc),
		HasMarkdownImages: mdImage.MatchString(doc),
	}

	if s.HasSectionSpans {
		s.LaTeXScore += 5.0
	}
	if s.HasLaTeXCommands {
		s.LaTeXScore += 3.0
	}
	if s.HasMathDelimiters {
		s.LaTeXScore += 1.0
		s.MarkdownScore += 1.0 // $ spans are common in both
	}
	if s.HasATXHeadings {
		s.MarkdownScore += 3.0
	}
	if s.HasMarkdownImages {
		s.MarkdownScore += 2.0
	}

	return s
}

// Choose picks the segmentation dialect. Only documents carrying the
// SECTION span markers can use the section-scoped strategy, whatever the
// scores say; the scores are informational for logging and summaries.
func (s *Signals) Choose() models.Dialect {
	if s.HasSectionSpans {
		return models.DialectLaTeX
	}
	return models.DialectMarkdown
}

// Detect is the one-shot convenience used by callers that do not care
// about the individual signals.
func Detect(doc string) models.Dialect {
	return Analyze(doc).Choose()
}
