// Package fields recovers the structured fields of a single question
// block: body text, the option set, the correct-answer letter, the
// free-text solution, embedded image references, and a points value.
//
// Order of operations matters. Images are scanned on the raw block before
// anything is stripped; the body strips the answer tail before the
// solution tail before the option list, so a solution containing an
// option-like substring cannot be misread as the options' start.
package fields

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/paperbank/exam-parser/models"
)

// Fields is the raw extraction result for one block, before subject
// classification and record assembly.
type Fields struct {
	Text          string
	Options       map[models.Letter]models.Option
	CorrectAnswer models.Letter
	Source        models.AnswerSource
	Solution      string
	Images        []models.ImageRef
	Marks         string
}

// Extractor runs the field cascades with a dialect-appropriate normalizer.
type Extractor struct {
	normalize    func(string) string
	maxOptionLen int
}

// NewExtractor builds an Extractor. normalize is applied to the body,
// every option capture, and the solution; callers pick the symbols
// normalizer variant matching the source dialect.
func NewExtractor(normalize func(string) string, opts models.ParseOptions) *Extractor {
	opts = opts.Normalize()
	return &Extractor{
		normalize:    normalize,
		maxOptionLen: opts.MaxOptionLen,
	}
}

var (
	mdImage   = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	htmlImage = regexp.MustCompile(`(?i)<img[^>]+src="([^"]+)"[^>]*alt="([^"]*)"[^>]*>`)
	texImage  = regexp.MustCompile(`\\includegraphics(?:\[[^\]]*\])?\{([^}]+)\}`)

	answerTail     = regexp.MustCompile(`(?i)Ans\.\s*\(?[A-D1-4]\)?[\s\S]*$`)
	answerColonTail = regexp.MustCompile(`(?i)Answer:\s*[A-D1-4][\s\S]*$`)
	solDotTail     = regexp.MustCompile(`(?i)Sol\.[\s\S]*$`)
	solutionTail   = regexp.MustCompile(`(?i)Solution:[\s\S]*$`)
	optionLine     = regexp.MustCompile(`\n\s*(\([1-4]\)|[A-D]\))`)

	nextNumbered = regexp.MustCompile(`\n\d+\.`)
	bannerLine   = regexp.MustCompile(`(?i)TEST\s+PAPER\s+WITH\s+SOLUTION`)
	mdHeading    = regexp.MustCompile(`^#{1,6}\s`)
)

// Extract runs the full field pipeline over one block.
func (e *Extractor) Extract(block string) Fields {
	letter, source := ExtractAnswer(block)

	return Fields{
		Text:          e.bodyText(block),
		Options:       mergeOptions(block, e.cleanCapture, e.maxOptionLen),
		CorrectAnswer: letter,
		Source:        source,
		Solution:      e.solutionText(block),
		Images:        ExtractImages(block),
		Marks:         ExtractMarks(block),
	}
}

// ExtractImages collects every image reference in the block, in document
// order, across the three supported forms. Empty alt text becomes
// "Question image N" with a 1-based ordinal.
func ExtractImages(block string) []models.ImageRef {
	type hit struct {
		pos int
		ref models.ImageRef
	}
	var hits []hit

	for _, m := range mdImage.FindAllStringSubmatchIndex(block, -1) {
		hits = append(hits, hit{pos: m[0], ref: models.ImageRef{
			Src:    block[m[4]:m[5]],
			Alt:    block[m[2]:m[3]],
			Format: "markdown",
		}})
	}
	for _, m := range htmlImage.FindAllStringSubmatchIndex(block, -1) {
		hits = append(hits, hit{pos: m[0], ref: models.ImageRef{
			Src:    block[m[2]:m[3]],
			Alt:    block[m[4]:m[5]],
			Format: "html",
		}})
	}
	for _, m := range texImage.FindAllStringSubmatchIndex(block, -1) {
		hits = append(hits, hit{pos: m[0], ref: models.ImageRef{
			Src:    block[m[2]:m[3]],
			Format: "latex",
		}})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	refs := make([]models.ImageRef, 0, len(hits))
	for i, h := range hits {
		if h.ref.Alt == "" {
			h.ref.Alt = fmt.Sprintf("Question image %d", i+1)
		}
		refs = append(refs, h.ref)
	}
	return refs
}

// bodyText strips, in order, the answer tail, the solution tail, and the
// trailing option list, then normalizes what remains.
func (e *Extractor) bodyText(block string) string {
	t := answerTail.ReplaceAllString(block, "")
	t = answerColonTail.ReplaceAllString(t, "")
	t = solDotTail.ReplaceAllString(t, "")
	t = solutionTail.ReplaceAllString(t, "")

	if loc := optionLine.FindStringIndex(t); loc != nil {
		t = t[:loc[0]]
	}

	return strings.TrimSpace(e.normalize(t))
}

// cleanCapture normalizes one option capture. Empty means reject.
func (e *Extractor) cleanCapture(raw string) string {
	return strings.TrimSpace(e.normalize(raw))
}

// ExtractAnswer runs the answer cascade. When nothing matches it falls
// back to "A" and reports the fallback through the AnswerSource so review
// tooling can tell a guess from a detection; the serialized schema cannot.
func ExtractAnswer(block string) (models.Letter, models.AnswerSource) {
	if raw, ok := firstSubmatch(answerCascade, block); ok {
		if letter, valid := models.ParseLetter(strings.ToUpper(raw)); valid {
			return letter, models.AnswerDetected
		}
	}
	return models.LetterA, models.AnswerDefaulted
}

// solutionText runs the solution cascade: the captured span reaches to the
// next numbered-question line or end of block, minus repeated document
// banners and markdown headings that bleed in from page boundaries.
func (e *Extractor) solutionText(block string) string {
	for _, re := range solutionCascade {
		loc := re.FindStringIndex(block)
		if loc == nil {
			continue
		}

		span := block[loc[1]:]
		if end := nextNumbered.FindStringIndex(span); end != nil {
			span = span[:end[0]]
		}

		var kept []string
		for _, line := range strings.Split(span, "\n") {
			trimmed := strings.TrimSpace(line)
			if bannerLine.MatchString(trimmed) || mdHeading.MatchString(trimmed) {
				continue
			}
			kept = append(kept, line)
		}

		return strings.TrimSpace(e.normalize(strings.Join(kept, "\n")))
	}
	return ""
}

// ExtractMarks runs the marks cascade, defaulting to "4".
func ExtractMarks(block string) string {
	if m, ok := firstSubmatch(marksCascade, block); ok {
		return m
	}
	return "4"
}
