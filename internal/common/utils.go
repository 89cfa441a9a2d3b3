// Package common holds helpers shared by the CLI commands: source list
// cleanup and flag parsing that more than one verb needs.
package common

import (
	"crypto/sha256"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/paperbank/exam-parser/models"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// markdownLinkPattern extracts the URL from "[text](url)" paste artifacts.
var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeSource performs basic cleanup on a source argument to handle
// common copy-paste issues: whitespace, trailing punctuation, markdown
// link wrappers.
func SanitizeSource(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for _, char := range []string{",", ")", "}", "]", "\"", "'", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	for _, char := range []string{"(", "[", "<", "\"", "'"} {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// IsURL reports whether a source should be fetched rather than read
// from disk.
func IsURL(source string) bool {
	parsed, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// SplitSources turns a comma-separated sources flag into a cleaned
// list, dropping entries that are empty after sanitization.
func SplitSources(flag string) []string {
	parts := strings.Split(flag, ",")
	sources := make([]string, 0, len(parts))
	for _, p := range parts {
		cleaned := SanitizeSource(p)
		if cleaned != "" {
			sources = append(sources, cleaned)
		}
	}
	return sources
}

// rangeSpec matches one "low-high:Subject" element.
var rangeSpec = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)\s*:\s*(.+)$`)

// ParseSubjectRanges parses a ranges flag like
// "1-25:Physics,26-50:Chemistry,51-75:Mathematics" into range rules.
func ParseSubjectRanges(flag string) ([]models.SubjectRange, error) {
	if strings.TrimSpace(flag) == "" {
		return nil, nil
	}

	var ranges []models.SubjectRange
	for _, part := range strings.Split(flag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := rangeSpec.FindStringSubmatch(part)
		if m == nil {
			return nil, fmt.Errorf("invalid subject range %q, expected low-high:Subject", part)
		}
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		if low > high {
			return nil, fmt.Errorf("invalid subject range %q, low exceeds high", part)
		}
		subject := strings.TrimSpace(m[3])
		ranges = append(ranges, models.SubjectRange{Low: low, High: high, Subject: subject})
	}
	return ranges, nil
}
