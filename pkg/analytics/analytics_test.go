package analytics

import (
	"reflect"
	"testing"
)

func TestWordFrequency(t *testing.T) {
	a := &Analytics{}

	tests := []struct {
		name string
		text string
		want map[string]int
	}{
		{
			name: "counts repeated topic words",
			text: "electron mass and electron charge",
			want: map[string]int{"electron": 2, "mass": 1, "charge": 1},
		},
		{
			name: "strips punctuation",
			text: "velocity, velocity. (velocity)",
			want: map[string]int{"velocity": 3},
		},
		{
			name: "drops exam boilerplate",
			text: "Choose the correct answer for the following question about entropy",
			want: map[string]int{"entropy": 1},
		},
		{
			name: "drops bare numbers",
			text: "42 100 momentum 3",
			want: map[string]int{"momentum": 1},
		},
		{
			name: "empty text",
			text: "",
			want: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.WordFrequency(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WordFrequency() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"THE", true},
		{"question", true},
		{"marks", true},
		{"entropy", false},
		{"derivative", false},
	}
	for _, tt := range tests {
		if got := IsStopword(tt.word); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestTopNCounts(t *testing.T) {
	a := &Analytics{}
	text := "entropy entropy entropy momentum momentum charge"

	got := a.TopNCounts(text, 2)
	want := map[string]int{"entropy": 3, "momentum": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopNCounts() = %v, want %v", got, want)
	}
}

func TestTopNCountsTiesBreakAlphabetically(t *testing.T) {
	a := &Analytics{}

	got := a.TopNCounts("zinc argon zinc argon boron", 2)
	want := map[string]int{"argon": 2, "zinc": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopNCounts() = %v, want %v", got, want)
	}
}

func TestTopNWordsShortInput(t *testing.T) {
	a := &Analytics{}
	got := a.TopNWords("entropy", 10)
	if len(got) != 1 || got[0] != "entropy" {
		t.Errorf("TopNWords() = %v, want [entropy]", got)
	}
}
