package tags

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match reports whether name matches the filter query. Matching is
// case-insensitive substring containment; an empty query matches everything.
func Match(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// FilterNames returns the names matching query, preserving input order.
func FilterNames(names []string, query string) []string {
	if query == "" {
		return names
	}
	var out []string
	for _, n := range names {
		if Match(n, query) {
			out = append(out, n)
		}
	}
	return out
}

// Closest returns the candidate nearest to name by edit distance, for
// "did you mean" hints when an operation references a tag no object
// carries. Returns "" when candidates is empty or nothing is close enough
// to be a plausible typo (distance above half the name's length).
func Closest(name string, candidates []string) string {
	best := ""
	bestDist := len(name)/2 + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
