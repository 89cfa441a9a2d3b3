// Package classifier assigns a subject label to a question using, in
// priority order: the section context the segmenter attached, a
// question-number range convention supplied by the caller, and finally
// keyword-frequency voting over three fixed vocabularies.
package classifier

import (
	"strings"

	"github.com/paperbank/exam-parser/models"
)

// Context carries everything Classify needs besides the question text.
type Context struct {
	// SectionSubject is the subject a section header attached to the
	// block, or empty.
	SectionSubject string

	// RangeSubject is the subject the number-to-subject convention
	// resolved for this question, or empty. Callers get it from
	// models.ParseOptions.RangeSubject.
	RangeSubject string

	// Default is returned when voting ties or finds nothing.
	Default string
}

// Classify resolves the subject for one question.
func Classify(text string, ctx Context) string {
	if ctx.SectionSubject != "" && ctx.SectionSubject != models.SubjectMixed {
		return ctx.SectionSubject
	}

	if ctx.RangeSubject != "" {
		return ctx.RangeSubject
	}

	fallback := ctx.Default
	if fallback == "" {
		fallback = models.SubjectMixed
	}
	return Vote(text, fallback)
}

// Vote counts case-insensitive occurrences of every vocabulary term in the
// question text and returns the subject with the strictly highest total.
// A tie, or an all-zero result, returns the fallback rather than an
// arbitrary pick.
func Vote(text, fallback string) string {
	lower := strings.ToLower(text)

	scores := [3]int{}
	subjects := [3]string{models.SubjectMathematics, models.SubjectPhysics, models.SubjectChemistry}
	for i, vocab := range [3][]string{mathTerms, physicsTerms, chemistryTerms} {
		for _, term := range vocab {
			scores[i] += strings.Count(lower, term)
		}
	}

	best, bestIdx, tied := 0, -1, false
	for i, s := range scores {
		switch {
		case s > best:
			best, bestIdx, tied = s, i, false
		case s == best && s > 0:
			tied = true
		}
	}

	if bestIdx < 0 || tied {
		return fallback
	}
	return subjects[bestIdx]
}
