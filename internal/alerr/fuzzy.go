package alerr

import (
	"fmt"
	"strings"
)

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	// Two rows instead of the full matrix.
	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// lastSegment returns the part of a zone name after the final slash.
func lastSegment(s string) string {
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// FindClosestMatch returns the closest match from options within a max edit distance of 3.
// Comparison is case-insensitive. An input without a slash is also compared against the
// final segment of each option, so "Tokio" can match "Asia/Tokyo".
func FindClosestMatch(input string, options []string) (string, bool) {
	// 3 catches a missing/extra char, a substitution or a transposition
	// without matching unrelated names.
	const maxDistance = 3

	needle := strings.ToLower(input)
	segmentOnly := !strings.Contains(needle, "/")

	bestMatch := ""
	bestDist := maxDistance + 1

	for _, opt := range options {
		lower := strings.ToLower(opt)
		d := levenshteinDistance(needle, lower)
		if segmentOnly && strings.Contains(lower, "/") {
			d = min(d, levenshteinDistance(needle, lastSegment(lower)))
		}
		if d < bestDist {
			bestDist = d
			bestMatch = opt
		}
	}

	if bestDist <= maxDistance {
		return bestMatch, true
	}
	return "", false
}

// SuggestSimilar returns a "did you mean 'X'?" string if a close match is found,
// or an empty string otherwise.
func SuggestSimilar(input string, options []string) string {
	if match, ok := FindClosestMatch(input, options); ok {
		return fmt.Sprintf("did you mean '%s'?", match)
	}
	return ""
}
