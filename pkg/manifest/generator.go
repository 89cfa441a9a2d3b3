package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/paperbank/exam-parser/models"
	"github.com/paperbank/exam-parser/pkg/mapreduce"
	"github.com/paperbank/exam-parser/pkg/storage"
)

// ParseOutcome is the per-document result handed over by the parse
// command. Kept here so the command package and the manifest agree on
// shape without a circular import.
type ParseOutcome struct {
	Source       string
	ArtifactPath string
	SizeBytes    int64
	Dialect      string
	Result       *models.Result
	Error        error
	WordCounts   map[string]int
}

const topKeywordCount = 25

// GenerateSummary writes summary.yaml into the session directory and
// returns its path.
func GenerateSummary(sessionID, sessionDir string, outcomes []ParseOutcome, s *storage.Storage) (string, error) {
	summary := SessionSummary{
		GeneratedAt: time.Now().Format(time.RFC3339),
		SessionID:   sessionID,
		TotalPapers: len(outcomes),
	}

	aggregate := make(map[string]int)

	for _, outcome := range outcomes {
		doc := DocumentSummary{
			Source: outcome.Source,
		}

		if outcome.Error != nil {
			summary.Failed++
			doc.Status = "failed"
			doc.Error = outcome.Error.Error()
			summary.Documents = append(summary.Documents, doc)
			continue
		}

		summary.Successful++
		doc.Status = "success"
		doc.ArtifactPath = outcome.ArtifactPath
		doc.SizeBytes = outcome.SizeBytes
		doc.Dialect = outcome.Dialect

		if outcome.Result != nil {
			doc.Title = outcome.Result.ExamInfo.Title
			doc.Year = outcome.Result.ExamInfo.Year
			doc.Subject = outcome.Result.ExamInfo.Subject
			doc.Time = outcome.Result.ExamInfo.Time
			doc.MaxMarks = outcome.Result.ExamInfo.MaxMarks

			doc.QuestionCount = len(outcome.Result.Questions)
			doc.Subjects = make(map[string]int)
			for _, q := range outcome.Result.Questions {
				doc.Subjects[q.Subject]++
				doc.ImageCount += len(q.TextImages)
				if q.NeedsReview {
					doc.NeedsReviewCount++
					doc.NeedsReview = append(doc.NeedsReview, q.QuestionID)
				}
			}
			summary.QuestionCount += doc.QuestionCount
			summary.NeedsReviewCount += doc.NeedsReviewCount
		}

		if outcome.WordCounts != nil {
			doc.TopKeywords = mapreduce.TopCounts(outcome.WordCounts, topKeywordCount)
			for word, count := range outcome.WordCounts {
				aggregate[word] += count
			}
		}

		summary.Documents = append(summary.Documents, doc)
	}

	if len(aggregate) > 0 {
		summary.AggregateKeywords = mapreduce.TopCounts(aggregate, topKeywordCount)
	}

	data, err := yaml.Marshal(&summary)
	if err != nil {
		return "", fmt.Errorf("error marshalling summary: %w", err)
	}

	summaryPath := filepath.Join(sessionDir, "summary.yaml")
	if err := s.SaveFile(summaryPath, data); err != nil {
		return "", fmt.Errorf("error saving summary: %w", err)
	}

	return summaryPath, nil
}
