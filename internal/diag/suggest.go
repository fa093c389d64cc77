package diag

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns the candidate closest to name, or "" when nothing is close
// enough to be a plausible typo.
func Suggest(name string, candidates []string) string {
	if name == "" || len(candidates) == 0 {
		return ""
	}

	best, bestDist := "", -1
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist <= maxEdits(name) {
		return best
	}

	// Abbreviations such as "Constr" are subsequences rather than typos.
	if len(name) < 3 {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func maxEdits(name string) int {
	if n := len(name) / 3; n > 2 {
		return n
	}
	return 2
}
