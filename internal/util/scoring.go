package util

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// ScoreCompletions returns up to n candidates matching input, best first.
// Prefix matches rank ahead of fuzzy ones; n <= 0 means no limit.
func ScoreCompletions(input string, candidates []string, n int) []string {
	if input == "" {
		return limit(candidates, n)
	}
	lower := strings.ToLower(input)
	var out []string
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			out = append(out, c)
			seen[c] = true
		}
	}
	for _, m := range fuzzy.Find(lower, candidates) {
		if !seen[m.Str] {
			out = append(out, m.Str)
		}
	}
	return limit(out, n)
}

func limit(s []string, n int) []string {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
