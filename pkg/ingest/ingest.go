// Package ingest turns input sources (local files, fetched HTML pages)
// into plain exam text the parser can segment. HTML goes through
// readability first so navigation chrome never reaches the extractor.
package ingest

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Document is raw exam text ready for parsing.
type Document struct {
	Source string
	Title  string
	Text   string
}

// FromFile loads a document from disk. HTML files are distilled to text,
// anything else (markdown, LaTeX, plain text) is passed through as-is.
func FromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FromHTML(path, string(data))
	default:
		return &Document{Source: path, Text: string(data)}, nil
	}
}

// FromHTML extracts the main article content from an HTML page and
// flattens it into text the segmenter can work with. Headings become
// ATX headings and images become markdown image references so the
// downstream extractors see one uniform shape.
func FromHTML(source, html string) (*Document, error) {
	pageURL, err := url.Parse(source)
	if err != nil || pageURL.Scheme == "" {
		// Local files still need a base URL for readability
		pageURL = &url.URL{Scheme: "file", Path: source}
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to distill %s: %w", source, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse distilled content: %w", err)
	}

	// Rewrite images in place so they survive the flatten as markdown
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			s.Remove()
			return
		}
		alt, _ := s.Attr("alt")
		s.ReplaceWithHtml(fmt.Sprintf("![%s](%s)", alt, src))
	})

	var lines []string
	doc.Find("h1,h2,h3,h4,p,li,pre").Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return
		}
		switch goquery.NodeName(s) {
		case "h1":
			lines = append(lines, "# "+text)
		case "h2":
			lines = append(lines, "## "+text)
		case "h3", "h4":
			lines = append(lines, "### "+text)
		default:
			lines = append(lines, text)
		}
	})

	return &Document{
		Source: source,
		Title:  strings.TrimSpace(article.Title),
		Text:   strings.Join(lines, "\n\n"),
	}, nil
}
