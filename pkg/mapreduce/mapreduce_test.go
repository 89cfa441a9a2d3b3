package mapreduce

import (
	"reflect"
	"testing"

	"github.com/paperbank/exam-parser/models"
	"github.com/paperbank/exam-parser/pkg/analytics"
)

func TestMapCountsTextAndSolution(t *testing.T) {
	a := &analytics.Analytics{}
	q := models.QuestionRecord{
		Text:     "momentum of the electron",
		Solution: "conserve momentum first",
	}

	got := Map(q, a)
	want := map[string]int{"momentum": 2, "electron": 1, "conserve": 1, "first": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
}

func TestReduce(t *testing.T) {
	a := &analytics.Analytics{}
	questions := []models.QuestionRecord{
		{Text: "entropy of the gas"},
		{Text: "gas pressure rises"},
	}

	got := Reduce(MapAll(questions, a))
	want := map[string]int{"entropy": 1, "gas": 2, "pressure": 1, "rises": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}
}

func TestReduceEmpty(t *testing.T) {
	if got := Reduce(nil); len(got) != 0 {
		t.Errorf("Reduce(nil) = %v, want empty", got)
	}
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{
		"entropy":  5,
		"gas":      3,
		"broken(":  9,
		"trailer:": 9,
		"x_train":  1,
	}

	got := TopKeywords(counts, 2)
	want := []string{"entropy", "gas"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords() = %v, want %v", got, want)
	}
}

func TestTopKeywordsFewerThanN(t *testing.T) {
	got := TopKeywords(map[string]int{"entropy": 1}, 10)
	if !reflect.DeepEqual(got, []string{"entropy"}) {
		t.Errorf("TopKeywords() = %v, want [entropy]", got)
	}
}

func TestTopCounts(t *testing.T) {
	counts := map[string]int{"alpha": 2, "beta": 2, "gamma": 1}

	got := TopCounts(counts, 2)
	want := map[string]int{"alpha": 2, "beta": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCounts() = %v, want %v", got, want)
	}
}

func TestIsValidKeyword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"sin2x", true},
		{"x_train", true},
		{"f(x)", true},
		{"broken(", false},
		{"[open", false},
		{"{half", false},
		{"ends:", false},
		{"x=", false},
		{"it's", false},
		{"plain", true},
	}
	for _, tt := range tests {
		if got := isValidKeyword(tt.word); got != tt.want {
			t.Errorf("isValidKeyword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
