package terrain

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// suggest returns the candidate closest to input by edit distance, or "" when
// nothing is close enough to be a plausible typo.
func suggest(input string, candidates []string) string {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)
	best := ""
	bestDist := -1
	for _, cand := range sorted {
		dist := levenshtein.ComputeDistance(input, cand)
		if dist > suggestLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
