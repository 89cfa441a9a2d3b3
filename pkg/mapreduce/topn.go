package mapreduce

import (
	"sort"
	"strings"
)

// isValidKeyword filters tokens that survive normalization but are
// obviously broken: unmatched delimiters from half-stripped formulas,
// trailing colons, unbalanced quotes. Conservative on purpose so terms
// like x_train or sin2x stay.
func isValidKeyword(word string) bool {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}

	if strings.Contains(word, "(") && !strings.Contains(word, ")") {
		return false
	}
	if strings.Contains(word, "[") && !strings.Contains(word, "]") {
		return false
	}
	if strings.Contains(word, "{") && !strings.Contains(word, "}") {
		return false
	}

	if strings.Count(word, "\"")%2 != 0 {
		return false
	}
	if strings.Count(word, "'")%2 != 0 {
		return false
	}

	return true
}

type kv struct {
	Key   string
	Value int
}

func sortedKeywords(wordCounts map[string]int) []kv {
	var ss []kv
	for k, v := range wordCounts {
		if isValidKeyword(k) {
			ss = append(ss, kv{k, v})
		}
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	return ss
}

// TopKeywords returns the top N keywords from aggregated word counts,
// most frequent first.
func TopKeywords(wordCounts map[string]int, n int) []string {
	ss := sortedKeywords(wordCounts)

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = ss[i].Key
	}

	return keywords
}

// TopCounts returns the top N keywords with their counts, for summary
// output.
func TopCounts(wordCounts map[string]int, n int) map[string]int {
	ss := sortedKeywords(wordCounts)

	if len(ss) > n {
		ss = ss[:n]
	}

	top := make(map[string]int, len(ss))
	for _, e := range ss {
		top[e.Key] = e.Value
	}
	return top
}
