// Package fuzzy scores how well a query matches candidate text fields.
// Scores are normalized distances: 0 is an exact match, 1 is no relation.
package fuzzy

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
)

// Match is one candidate whose score fell within the threshold.
type Match struct {
	Index int // index into the candidate slice
	Score float64
}

// Score returns the normalized match distance between query and target,
// case-insensitive. The score does not depend on any threshold, so
// relaxing a threshold can only ever admit additional candidates.
func Score(query, target string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(target))

	if q == "" || t == "" {
		return 1
	}
	if q == t {
		return 0
	}

	similarity := 0.0

	// Substring containment scores higher for shorter targets
	if strings.Contains(t, q) {
		ratio := float64(len([]rune(q))) / float64(len([]rune(t)))
		similarity = max(similarity, 0.6+0.35*ratio)
	}

	// Ordered subsequence match, diacritics folded
	if lfuzzy.MatchNormalizedFold(q, t) {
		similarity = max(similarity, 0.7)
	}

	// Edit distance over the whole string
	similarity = max(similarity, levenshteinSimilarity(q, t))

	// Edit distance against the best matching word of the target
	for _, w := range strings.Fields(t) {
		similarity = max(similarity, 0.9*levenshteinSimilarity(q, w))
	}

	return 1 - similarity
}

// Rank scores every candidate against the query and returns those with a
// score within the threshold, best first. Ties keep the candidate order.
func Rank(query string, candidates []string, threshold float64) []Match {
	matches := make([]Match, 0, len(candidates))
	for i, c := range candidates {
		if s := Score(query, c); s <= threshold {
			matches = append(matches, Match{Index: i, Score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})
	return matches
}

func levenshteinSimilarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := max(la, lb)
	if maxLen == 0 {
		return 1
	}
	dist := lfuzzy.LevenshteinDistance(a, b)
	sim := 1 - float64(dist)/float64(maxLen)
	if sim < 0 {
		return 0
	}
	return sim
}
