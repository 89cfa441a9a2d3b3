// Package segmenter splits a raw exam document into per-question text
// blocks. Two strategies are provided: a section-scoped splitter for
// LaTeX-style papers carrying \section*{SECTION-X} markers, and a
// line-by-line scanner for Markdown and plain text.
//
// Segmentation is best effort. Candidate blocks that fail the acceptance
// checks (too short, or no question-like signal) are silently discarded;
// that is how page headers, instructions, and running text get filtered.
package segmenter

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/paperbank/exam-parser/models"
)

// Block is the contiguous raw text attributed to one candidate question.
//
// Number is kept exactly as it appeared in the source; it is not assumed
// sequential or unique. SectionSubject is empty unless a subject-named
// section header preceded the block.
type Block struct {
	Number         string
	Content        string
	SectionSubject string
}

var (
	sectionMarker = regexp.MustCompile(`\\section\*\{([^}]+)\}`)
	numberMarker  = regexp.MustCompile(`(\d+)\.\s`)
	questionLine  = regexp.MustCompile(`^(\d+)\.\s*(.*)`)

	// realQuestion is the "looks like an actual question" signal: an option
	// marker, an answer/solution/given/assume cue, or a question-stem phrase.
	realQuestion = regexp.MustCompile(`\([1-4]\)|Ans\.|Sol\.|Given\s*:|Assume\s*:|The\s+\w+\s+is|Find\s+the|Calculate\s+the|Determine\s+the|What\s+is|How\s+many|Which\s+of\s+the|Consider\s+the`)
)

// sectionSubjects maps section-header names to subject labels. Any other
// header name is ignored rather than treated as a new question.
var sectionSubjects = map[string]string{
	"MATHEMATICS": models.SubjectMathematics,
	"MATH":        models.SubjectMathematics,
	"PHYSICS":     models.SubjectPhysics,
	"CHEMISTRY":   models.SubjectChemistry,
}

// SectionScoped splits the document into spans delimited by
// \section*{SECTION-...} markers and extracts numbered blocks from each
// span. A block survives only if its trimmed content is strictly longer
// than opts.MinBlockLen; the threshold rejects stray numeric noise such as
// a lone page number.
//
// Subject-named section markers (\section*{PHYSICS} and friends) do not
// open a question span themselves but update the subject attached to the
// blocks of the spans that follow.
func SectionScoped(doc string, opts models.ParseOptions) []Block {
	opts = opts.Normalize()

	markers := sectionMarker.FindAllStringSubmatchIndex(doc, -1)
	var blocks []Block
	subject := ""

	for i, m := range markers {
		name := strings.ToUpper(strings.TrimSpace(doc[m[2]:m[3]]))
		if s, ok := sectionSubjects[name]; ok {
			subject = s
			continue
		}
		if !strings.HasPrefix(name, "SECTION") {
			continue
		}

		end := len(doc)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		blocks = append(blocks, splitNumbered(doc[m[1]:end], subject, opts.MinBlockLen)...)
	}

	return blocks
}

// splitNumbered carves one section span into blocks at each "N. " marker.
func splitNumbered(span, subject string, minLen int) []Block {
	marks := numberMarker.FindAllStringSubmatchIndex(span, -1)
	var blocks []Block

	for i, m := range marks {
		end := len(span)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		content := strings.TrimSpace(span[m[1]:end])
		if len(content) <= minLen {
			continue
		}
		blocks = append(blocks, Block{
			Number:         span[m[2]:m[3]],
			Content:        content,
			SectionSubject: subject,
		})
	}

	return blocks
}

// scanState is the fold state carried across lines by LineScan. Keeping it
// explicit (instead of package-level mutable variables) leaves the scanner
// free of cross-call state.
type scanState struct {
	subject string
	pending *Block
	blocks  []Block
}

// LineScan walks the document line by line. A line matching "N. " starts a
// new block tagged with the subject of the most recent subject-section
// header; every following line accumulates into it until the next numbered
// line or end of input. Finished blocks must match at least one
// real-question signal or they are dropped without comment.
//
// Surviving blocks are sorted by numeric question number ascending, since
// source order is not trusted. Blocks sharing a number keep their original
// relative order and are not deduplicated.
func LineScan(doc string, opts models.ParseOptions) []Block {
	opts = opts.Normalize()
	st := scanState{}

	for _, line := range strings.Split(doc, "\n") {
		st = scanLine(st, line)
	}
	st.flush()

	sort.SliceStable(st.blocks, func(i, j int) bool {
		ni, _ := strconv.Atoi(st.blocks[i].Number)
		nj, _ := strconv.Atoi(st.blocks[j].Number)
		return ni < nj
	})

	return st.blocks
}

// scanLine advances the fold state by one line.
func scanLine(st scanState, line string) scanState {
	if m := sectionMarker.FindStringSubmatch(line); m != nil {
		if s, ok := sectionSubjects[strings.ToUpper(strings.TrimSpace(m[1]))]; ok {
			st.subject = s
		}
		// Header lines never belong to a question block.
		return st
	}

	if m := questionLine.FindStringSubmatch(line); m != nil {
		st.flush()
		st.pending = &Block{
			Number:         m[1],
			Content:        m[2] + "\n",
			SectionSubject: st.subject,
		}
		return st
	}

	if st.pending != nil {
		st.pending.Content += line + "\n"
	}
	return st
}

// flush accepts the pending block if it passes the real-question check.
func (st *scanState) flush() {
	if st.pending == nil {
		return
	}
	content := strings.TrimSpace(st.pending.Content)
	if realQuestion.MatchString(content) {
		st.blocks = append(st.blocks, Block{
			Number:         st.pending.Number,
			Content:        content,
			SectionSubject: st.pending.SectionSubject,
		})
	}
	st.pending = nil
}
