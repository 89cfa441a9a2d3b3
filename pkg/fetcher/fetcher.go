// Package fetcher downloads exam papers over HTTP. Responses are kept
// as raw bytes; pkg/ingest decides how to flatten them based on content
// type.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxDocumentSize caps downloads; exam papers are text, anything bigger
// is a wrong URL
const maxDocumentSize = 16 << 20

const userAgent = "exam-parser/1.0"

type Fetcher struct {
	client *http.Client
}

// Result is a fetched document plus enough response metadata to decide
// how to ingest it.
type Result struct {
	Body        []byte
	ContentType string
	StatusCode  int
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch downloads a paper from url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s, status code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(body) > maxDocumentSize {
		return nil, fmt.Errorf("document at %s exceeds %d bytes", url, maxDocumentSize)
	}

	return &Result{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}, nil
}

// IsHTML reports whether the response should go through HTML distillation.
func (r *Result) IsHTML() bool {
	if strings.Contains(r.ContentType, "text/html") {
		return true
	}
	trimmed := strings.TrimSpace(string(r.Body))
	return strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<html")
}
