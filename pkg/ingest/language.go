package ingest

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// exam papers in the corpus are English or Hindi/English bilingual;
// the other candidates keep the detector honest on short snippets
func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Hindi,
				lingua.French,
				lingua.Spanish,
				lingua.German,
			).
			Build()
	})
	return detector
}

// CheckLanguage reports the detected language of a document and whether
// it is something other than English. Formula-heavy text confuses
// detection, so only the first prose-sized sample is considered and an
// inconclusive result counts as English.
func CheckLanguage(text string) (string, bool) {
	sample := text
	if len(sample) > 2000 {
		sample = sample[:2000]
	}
	sample = strings.TrimSpace(sample)
	if sample == "" {
		return "", false
	}

	lang, ok := languageDetector().DetectLanguageOf(sample)
	if !ok {
		return "", false
	}
	return lang.String(), lang != lingua.English
}
