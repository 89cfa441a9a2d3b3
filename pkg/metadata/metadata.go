// Package metadata infers document-level exam facts from whole-document
// heuristics. Every field is first-match-wins with a documented default;
// nothing here ever fails.
package metadata

import (
	"regexp"
	"strings"
	"time"

	"github.com/paperbank/exam-parser/models"
)

// Defaults used when a heuristic finds nothing.
const (
	DefaultTitle    = "Exam Paper"
	DefaultTime     = "3 hours"
	DefaultMaxMarks = "300"
)

var (
	atxHeading  = regexp.MustCompile(`(?m)^#+[ \t]*(.+?)[ \t]*$`)
	texSection  = regexp.MustCompile(`\\section\*\{([^}]+)\}`)
	yearRun     = regexp.MustCompile(`\d{4}`)
	timeLine    = regexp.MustCompile(`(?i)Time:\s*([^\n]+)`)
	marksLine   = regexp.MustCompile(`(?i)M\.M\s*:\s*(\d+)`)
	numberedDot = regexp.MustCompile(`(?m)^\d+\.\s`)
	parenNumber = regexp.MustCompile(`(?m)^\(\d+\)\s`)
	capitalDot  = regexp.MustCompile(`(?m)^[A-Z]\.\s`)
)

// Extract recovers title, year, subject, time limit, max marks, and a
// question-count estimate from the raw document.
func Extract(doc string) models.ExamInfo {
	info := models.ExamInfo{
		Title:          DefaultTitle,
		Year:           time.Now().Format("2006"),
		Subject:        detectSubject(doc),
		Time:           DefaultTime,
		MaxMarks:       DefaultMaxMarks,
		TotalQuestions: CountQuestions(doc),
	}

	if m := atxHeading.FindStringSubmatch(doc); m != nil {
		info.Title = strings.TrimSpace(m[1])
	} else if m := texSection.FindStringSubmatch(doc); m != nil {
		info.Title = strings.TrimSpace(m[1])
	}

	if m := yearRun.FindString(doc); m != "" {
		info.Year = m
	}
	if m := timeLine.FindStringSubmatch(doc); m != nil {
		info.Time = strings.TrimSpace(m[1])
	}
	if m := marksLine.FindStringSubmatch(doc); m != nil {
		info.MaxMarks = m[1]
	}

	return info
}

// detectSubject runs a plain substring containment test, checking the
// all-caps and title-case spellings each subject actually appears under in
// source papers. Mathematics wins over Physics wins over Chemistry when a
// mixed paper mentions several.
func detectSubject(doc string) string {
	switch {
	case strings.Contains(doc, "MATHEMATICS") || strings.Contains(doc, "Mathematics"):
		return models.SubjectMathematics
	case strings.Contains(doc, "PHYSICS") || strings.Contains(doc, "Physics"):
		return models.SubjectPhysics
	case strings.Contains(doc, "CHEMISTRY") || strings.Contains(doc, "Chemistry"):
		return models.SubjectChemistry
	}
	return models.SubjectMixed
}

// CountQuestions estimates how many questions the document holds by
// counting each of the three line-start conventions and reporting the
// largest count, not the sum. The estimate is informational only and is
// allowed to disagree with what the segmenter later accepts.
func CountQuestions(doc string) int {
	max := 0
	for _, p := range []*regexp.Regexp{numberedDot, parenNumber, capitalDot} {
		if n := len(p.FindAllString(doc, -1)); n > max {
			max = n
		}
	}
	return max
}
