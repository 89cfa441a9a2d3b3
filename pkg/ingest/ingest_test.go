package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromFilePassthrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paper.md")
	body := "# JEE Main 2024\n1. What is the charge? (1) 1 C (2) 2 C"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error: %v", err)
	}
	if doc.Text != body {
		t.Errorf("text = %q, want passthrough", doc.Text)
	}
	if doc.Source != path {
		t.Errorf("source = %q, want %q", doc.Source, path)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("FromFile() succeeded on a missing file")
	}
}

func TestFromHTML(t *testing.T) {
	html := `<!DOCTYPE html>
<html><head><title>JEE Main 2024 Paper</title></head>
<body>
<nav><a href="/">home</a><a href="/about">about</a></nav>
<article>
<h1>JEE Main 2024</h1>
<p>1. What is the momentum of the electron when it is accelerated through a potential difference of one hundred volts starting from rest in a vacuum chamber? (1) small (2) large Ans. (1)</p>
<p>2. Find the oxidation state of carbon in the organic compound formed when ethanol is oxidised completely under acidic conditions with excess oxidising agent. (1) 0 (2) 4 Ans. (2)</p>
<p><img src="fig1.png" alt="circuit diagram"></p>
<p>3. The force on the charge is measured with the field held constant while the separation between the plates is doubled and the potential kept fixed. (1) F (2) 2F Ans. (1)</p>
<p>General instructions: each question carries four marks and there is negative marking of one mark for every incorrect response recorded on the answer sheet.</p>
</article>
</body></html>`

	doc, err := FromHTML("https://example.com/jee.html", html)
	if err != nil {
		t.Fatalf("FromHTML() error: %v", err)
	}
	if !strings.Contains(doc.Text, "momentum of the electron") {
		t.Errorf("question text lost: %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "oxidation state of carbon") {
		t.Errorf("second question lost: %q", doc.Text)
	}
	if strings.Contains(doc.Text, "<p>") || strings.Contains(doc.Text, "<img") {
		t.Errorf("raw html leaked into text: %q", doc.Text)
	}
}

func TestCheckLanguage(t *testing.T) {
	text := "Find the value of the definite integral and explain how the electric field changes with distance from the charge."

	lang, nonEnglish := CheckLanguage(text)
	if lang == "" {
		t.Error("CheckLanguage() returned no language for English prose")
	}
	if nonEnglish {
		t.Errorf("CheckLanguage() flagged English prose as %s", lang)
	}
}

func TestCheckLanguageEmpty(t *testing.T) {
	lang, nonEnglish := CheckLanguage("   \n")
	if lang != "" || nonEnglish {
		t.Errorf("CheckLanguage(blank) = %q/%v, want empty/false", lang, nonEnglish)
	}
}
