// Package mapreduce aggregates keyword counts across questions and
// papers: map each question to a word frequency map, reduce into one
// map per paper or per session.
package mapreduce

import (
	"github.com/paperbank/exam-parser/models"
	"github.com/paperbank/exam-parser/pkg/analytics"
)

// Map generates a word frequency map for a single question, counting
// both the prompt and the solution text.
func Map(q models.QuestionRecord, a *analytics.Analytics) map[string]int {
	counts := a.WordFrequency(q.Text)
	for word, n := range a.WordFrequency(q.Solution) {
		counts[word] += n
	}
	return counts
}

// MapAll maps every question in a result.
func MapAll(questions []models.QuestionRecord, a *analytics.Analytics) []map[string]int {
	intermediate := make([]map[string]int, 0, len(questions))
	for _, q := range questions {
		intermediate = append(intermediate, Map(q, a))
	}
	return intermediate
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
