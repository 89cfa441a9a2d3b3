package fields

import (
	"strings"
	"testing"

	"github.com/paperbank/exam-parser/models"
	"github.com/paperbank/exam-parser/pkg/symbols"
)

func newTestExtractor() *Extractor {
	return NewExtractor(symbols.Normalize, models.DefaultParseOptions())
}

func TestExtractFullBlock(t *testing.T) {
	block := `What is \frac{1}{2} of \pi? (1) 0.5 (2) 1.57 (3) 3.14 (4) 1 Ans. (2) Sol. \pi/2 ≈ 1.57`

	f := newTestExtractor().Extract(block)

	if !strings.Contains(f.Text, "(1)/(2)") || !strings.Contains(f.Text, "π") {
		t.Errorf("text missing converted math: %q", f.Text)
	}
	if len(f.Options) != 4 {
		t.Fatalf("got %d options, want 4: %v", len(f.Options), f.Options)
	}
	if f.Options[models.LetterB].Text != "1.57" {
		t.Errorf("option B = %q, want 1.57", f.Options[models.LetterB].Text)
	}
	if f.Options[models.LetterD].Text != "1" {
		t.Errorf("option D = %q, want 1", f.Options[models.LetterD].Text)
	}
	if f.CorrectAnswer != models.LetterB {
		t.Errorf("correctAnswer = %q, want B", f.CorrectAnswer)
	}
	if f.Source != models.AnswerDetected {
		t.Errorf("answer source = %v, want detected", f.Source)
	}
	if !strings.Contains(f.Solution, "π/2") {
		t.Errorf("solution missing converted math: %q", f.Solution)
	}
	if f.Marks != "4" {
		t.Errorf("marks = %q, want default 4", f.Marks)
	}
}

func TestMergeOptionsFamilies(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  map[models.Letter]string
	}{
		{
			name:  "paren digit",
			block: "Pick one (1) alpha (2) beta (3) gamma (4) delta",
			want:  map[models.Letter]string{"A": "alpha", "B": "beta", "C": "gamma", "D": "delta"},
		},
		{
			name:  "letter paren",
			block: "Pick one A) alpha B) beta C) gamma D) delta",
			want:  map[models.Letter]string{"A": "alpha", "B": "beta", "C": "gamma", "D": "delta"},
		},
		{
			name:  "paren letter",
			block: "Pick one (A) alpha (B) beta",
			want:  map[models.Letter]string{"A": "alpha", "B": "beta"},
		},
		{
			name:  "letter dot lines",
			block: "Pick one\nA. alpha\nB. beta\nC. gamma\nD. delta",
			want:  map[models.Letter]string{"A": "alpha", "B": "beta", "C": "gamma", "D": "delta"},
		},
		{
			name:  "decimal not treated as digit-dot marker",
			block: "Speed is (1) 1.57 m/s (2) 3.14 m/s",
			want:  map[models.Letter]string{"A": "1.57 m/s", "B": "3.14 m/s"},
		},
		{
			name:  "no markers at all",
			block: "A free-response question about integrals",
			want:  map[models.Letter]string{},
		},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := e.Extract(tt.block)
			if len(f.Options) != len(tt.want) {
				t.Fatalf("got %d options, want %d: %v", len(f.Options), len(tt.want), f.Options)
			}
			for letter, text := range tt.want {
				if f.Options[letter].Text != text {
					t.Errorf("option %s = %q, want %q", letter, f.Options[letter].Text, text)
				}
			}
		})
	}
}

func TestMergeOptionsStopsAtAnswerMarker(t *testing.T) {
	// The "(2)" inside the answer tail must not overwrite option B
	block := "Find x. (1) 1 (2) 2 (3) 3 (4) 4 Ans. (2) because of symmetry"
	f := newTestExtractor().Extract(block)

	if f.Options[models.LetterB].Text != "2" {
		t.Errorf("option B = %q, want 2", f.Options[models.LetterB].Text)
	}
	if f.Options[models.LetterD].Text != "4" {
		t.Errorf("option D = %q, want 4 (capture must stop at Ans.)", f.Options[models.LetterD].Text)
	}
}

func TestExtractAnswer(t *testing.T) {
	tests := []struct {
		name       string
		block      string
		wantLetter models.Letter
		wantSource models.AnswerSource
	}{
		{"paren digit form", "text Ans. (3)", models.LetterC, models.AnswerDetected},
		{"bare letter form", "text Ans. B", models.LetterB, models.AnswerDetected},
		{"answer colon form", "text Answer: D", models.LetterD, models.AnswerDetected},
		{"correct answer phrase", "The correct answer is 1 here", models.LetterA, models.AnswerDetected},
		{"nothing found defaults to A", "no answer marker here", models.LetterA, models.AnswerDefaulted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			letter, source := ExtractAnswer(tt.block)
			if letter != tt.wantLetter || source != tt.wantSource {
				t.Errorf("ExtractAnswer() = %q/%v, want %q/%v", letter, source, tt.wantLetter, tt.wantSource)
			}
		})
	}
}

func TestExtractImages(t *testing.T) {
	block := `See ![circuit](img/circuit.png) and <img src="a.png" alt=""> and \includegraphics[width=5cm]{fig2.pdf}`

	refs := ExtractImages(block)
	if len(refs) != 3 {
		t.Fatalf("got %d images, want 3", len(refs))
	}

	if refs[0].Format != "markdown" || refs[0].Src != "img/circuit.png" || refs[0].Alt != "circuit" {
		t.Errorf("ref 0 = %+v", refs[0])
	}
	if refs[1].Format != "html" || refs[1].Alt != "Question image 2" {
		t.Errorf("ref 1 = %+v, want html with defaulted alt", refs[1])
	}
	if refs[2].Format != "latex" || refs[2].Src != "fig2.pdf" || refs[2].Alt != "Question image 3" {
		t.Errorf("ref 2 = %+v", refs[2])
	}
}

func TestExtractMarks(t *testing.T) {
	tests := []struct {
		block string
		want  string
	}{
		{"Marking: 4 / -1 per question", "4"},
		{"carries +3 on success", "3"},
		{"worth 2 marks total", "2"},
		{"no marks notation anywhere", "4"},
	}

	for _, tt := range tests {
		if got := ExtractMarks(tt.block); got != tt.want {
			t.Errorf("ExtractMarks(%q) = %q, want %q", tt.block, got, tt.want)
		}
	}
}

func TestSolutionTextFiltersBanners(t *testing.T) {
	block := "Find y. (1) 1 (2) 2 Ans. (1)\nSol. Substitute x = 0.\nTEST PAPER WITH SOLUTION\n# Page header\nThen y = 1."

	f := newTestExtractor().Extract(block)
	if strings.Contains(f.Solution, "TEST PAPER") || strings.Contains(f.Solution, "Page header") {
		t.Errorf("banner lines leaked into solution: %q", f.Solution)
	}
	if !strings.Contains(f.Solution, "Substitute x = 0") || !strings.Contains(f.Solution, "Then y = 1") {
		t.Errorf("solution lost real content: %q", f.Solution)
	}
}

func TestBodyTextStripsTails(t *testing.T) {
	block := "What is the charge?\n(1) 1 C (2) 2 C\nAns. (1)\nSol. By Gauss's law."

	f := newTestExtractor().Extract(block)
	if strings.Contains(f.Text, "Ans.") || strings.Contains(f.Text, "Gauss") {
		t.Errorf("answer or solution tail leaked into text: %q", f.Text)
	}
	if strings.Contains(f.Text, "(1) 1 C") {
		t.Errorf("option list leaked into text: %q", f.Text)
	}
	if f.Text != "What is the charge?" {
		t.Errorf("text = %q, want bare question stem", f.Text)
	}
}
