package fields

import (
	"regexp"

	"github.com/paperbank/exam-parser/models"
)

// The extraction cascades below are ordered lists of pattern families.
// Answer and marks cascades stop at the first family that matches; the
// option cascade runs every family and merges the results, so documents
// that mix conventions still populate as many letters as possible. Adding
// a new dialect's convention is a data change, not a code change.

// optionFamily is one option-marker convention. The marker regexp captures
// the option key (a digit 1-4 or a letter A-D) in group 1; captures are
// bounded by the next marker of the same family, an answer or solution
// marker, or the end of the block.
type optionFamily struct {
	name   string
	marker *regexp.Regexp
}

// optionCascade lists the supported conventions in evaluation order. A
// later family's capture for a letter overwrites an earlier one.
//
// The dotted families anchor the marker to a leading whitespace boundary
// and require a trailing space so that decimals like "1.57" are not read
// as the marker of option 1.
var optionCascade = []optionFamily{
	{name: "paren-digit", marker: regexp.MustCompile(`\(([1-4])\)`)},
	{name: "letter-paren", marker: regexp.MustCompile(`(?:^|\s)([A-D])\)`)},
	{name: "paren-letter", marker: regexp.MustCompile(`\(([A-D])\)`)},
	{name: "letter-dot", marker: regexp.MustCompile(`(?m)(?:^|\s)([A-D])\.\s`)},
	{name: "digit-dot", marker: regexp.MustCompile(`(?m)(?:^|\s)([1-4])\.\s`)},
}

// answerCascade lists the answer-phrase conventions, first match wins.
var answerCascade = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Ans\.\s*\(?([A-D1-4])\)?`),
	regexp.MustCompile(`(?i)Answer:\s*([A-D1-4])`),
	regexp.MustCompile(`(?i)Correct\s+answer\s+is\s+([A-D1-4])`),
}

// solutionCascade lists the solution markers, first match wins. The
// captured span runs to the next numbered-question line or end of block.
var solutionCascade = []*regexp.Regexp{
	regexp.MustCompile(`Sol\.`),
	regexp.MustCompile(`Solution:`),
	regexp.MustCompile(`Explanation:`),
}

// marksCascade lists marks notations, first match wins: partial-credit
// "4 / -1", "+4", and "4 marks".
var marksCascade = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*/\s*-?\d+`),
	regexp.MustCompile(`\+(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*marks?`),
}

// firstSubmatch runs an ordered regexp cascade and returns the first
// pattern's first capture group.
func firstSubmatch(cascade []*regexp.Regexp, text string) (string, bool) {
	for _, re := range cascade {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// answerBoundary marks where option captures must stop even when no
// further option marker follows.
var answerBoundary = regexp.MustCompile(`(?i)Ans\.|Answer:|Sol\.|Solution:|Explanation:`)

// mergeOptions evaluates every family against the block and merges the
// captures into one letter-keyed map. clean normalizes a raw capture and
// returns "" to reject it.
func mergeOptions(block string, clean func(string) string, maxLen int) map[models.Letter]models.Option {
	options := make(map[models.Letter]models.Option)

	cut := len(block)
	if loc := answerBoundary.FindStringIndex(block); loc != nil {
		cut = loc[0]
	}

	for _, fam := range optionCascade {
		marks := fam.marker.FindAllStringSubmatchIndex(block, -1)
		for i, m := range marks {
			letter, ok := models.ParseLetter(block[m[2]:m[3]])
			if !ok {
				continue
			}

			// Markers sitting inside the answer/solution tail (e.g. the
			// "(2)" of "Ans. (2)") are not options.
			if m[0] >= cut {
				continue
			}

			end := len(block)
			if i+1 < len(marks) {
				end = marks[i+1][0]
			}
			if end > cut {
				end = cut
			}

			text := clean(block[m[1]:end])
			if text == "" || len(text) > maxLen {
				continue
			}
			options[letter] = models.Option{Text: text}
		}
	}

	return options
}
