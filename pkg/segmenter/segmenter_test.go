package segmenter

import (
	"strings"
	"testing"

	"github.com/paperbank/exam-parser/models"
)

func TestSectionScoped(t *testing.T) {
	doc := `\section*{PHYSICS}
\section*{SECTION-A}
1. A ball is dropped from rest. Find the velocity after 2 seconds. (1) 10 (2) 20 (3) 30 (4) 40
\section*{CHEMISTRY}
\section*{SECTION-B}
2. Which of the following is a noble gas? (1) He (2) O (3) N (4) H
`

	blocks := SectionScoped(doc, models.DefaultParseOptions())
	if len(blocks) != 2 {
		t.Fatalf("SectionScoped() returned %d blocks, want 2", len(blocks))
	}

	if blocks[0].Number != "1" || blocks[0].SectionSubject != models.SubjectPhysics {
		t.Errorf("block 0 = %q/%q, want 1/Physics", blocks[0].Number, blocks[0].SectionSubject)
	}
	if blocks[1].Number != "2" || blocks[1].SectionSubject != models.SubjectChemistry {
		t.Errorf("block 1 = %q/%q, want 2/Chemistry", blocks[1].Number, blocks[1].SectionSubject)
	}
	if !strings.Contains(blocks[1].Content, "noble gas") {
		t.Errorf("block 1 content lost its text: %q", blocks[1].Content)
	}
}

func TestSectionScopedRejectsShortBlocks(t *testing.T) {
	doc := `\section*{SECTION-A}
1. short
2. This block is comfortably longer than the minimum threshold. (1) a (2) b
`

	blocks := SectionScoped(doc, models.DefaultParseOptions())
	if len(blocks) != 1 {
		t.Fatalf("SectionScoped() returned %d blocks, want 1", len(blocks))
	}
	if blocks[0].Number != "2" {
		t.Errorf("surviving block = %q, want 2", blocks[0].Number)
	}
}

func TestSectionScopedIgnoresUnknownHeaders(t *testing.T) {
	doc := `\section*{INSTRUCTIONS}
Do not open this booklet until told.
\section*{SECTION-A}
1. What is the value of the expression below? (1) 1 (2) 2 (3) 3 (4) 4
`

	blocks := SectionScoped(doc, models.DefaultParseOptions())
	if len(blocks) != 1 {
		t.Fatalf("SectionScoped() returned %d blocks, want 1", len(blocks))
	}
	if blocks[0].SectionSubject != "" {
		t.Errorf("unknown header leaked a subject: %q", blocks[0].SectionSubject)
	}
}

func TestLineScan(t *testing.T) {
	doc := `# Sample Paper
3. Which of the following is prime? (1) 4 (2) 6 (3) 7 (4) 9
1. What is 2 + 2? (1) 3 (2) 4 (3) 5 (4) 6
Page 12
7. Just a header line with no question signal whatsoever
`

	blocks := LineScan(doc, models.DefaultParseOptions())
	if len(blocks) != 2 {
		t.Fatalf("LineScan() returned %d blocks, want 2", len(blocks))
	}

	// Sorted by numeric question number, not source order
	if blocks[0].Number != "1" || blocks[1].Number != "3" {
		t.Errorf("block order = %q, %q, want 1, 3", blocks[0].Number, blocks[1].Number)
	}
}

func TestLineScanMultilineBlock(t *testing.T) {
	doc := `1. A particle moves along a straight line.
Find the displacement after 5 seconds.
(1) 10 m (2) 20 m (3) 25 m (4) 50 m
Ans. (3)
`

	blocks := LineScan(doc, models.DefaultParseOptions())
	if len(blocks) != 1 {
		t.Fatalf("LineScan() returned %d blocks, want 1", len(blocks))
	}
	if !strings.Contains(blocks[0].Content, "displacement") || !strings.Contains(blocks[0].Content, "Ans. (3)") {
		t.Errorf("continuation lines not accumulated: %q", blocks[0].Content)
	}
}

func TestLineScanSectionSubject(t *testing.T) {
	doc := `\section*{PHYSICS}
1. Find the force on the charge. (1) 1 N (2) 2 N (3) 3 N (4) 4 N
\section*{CHEMISTRY}
2. Which of the following is an acid? (1) HCl (2) NaOH (3) NaCl (4) KOH
`

	blocks := LineScan(doc, models.DefaultParseOptions())
	if len(blocks) != 2 {
		t.Fatalf("LineScan() returned %d blocks, want 2", len(blocks))
	}
	if blocks[0].SectionSubject != models.SubjectPhysics {
		t.Errorf("block 0 subject = %q, want Physics", blocks[0].SectionSubject)
	}
	if blocks[1].SectionSubject != models.SubjectChemistry {
		t.Errorf("block 1 subject = %q, want Chemistry", blocks[1].SectionSubject)
	}
}

func TestLineScanPageNumberNeverBecomesQuestion(t *testing.T) {
	for _, doc := range []string{"Page 12\n", "12. \n", "12. Page\n"} {
		if blocks := LineScan(doc, models.DefaultParseOptions()); len(blocks) != 0 {
			t.Errorf("LineScan(%q) produced %d blocks, want 0", doc, len(blocks))
		}
	}
}
