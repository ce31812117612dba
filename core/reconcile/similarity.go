package reconcile

import (
	"sort"
	"strings"
)

// MatchThreshold is the minimum TokenSortRatio score accepted as a fuzzy match.
const MatchThreshold = 85.0

// TokenSortRatio scores two names from 0 to 100 regardless of word order.
// Both names are lowercased and split on whitespace; the tokens are sorted and
// rejoined, and the joined strings are compared with a normalized Indel
// similarity: 200 * LCS / (len(a) + len(b)), counted in runes.
func TokenSortRatio(a, b string) float64 {
	return indelRatio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) []rune {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return []rune(strings.Join(tokens, " "))
}

func indelRatio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	return 200 * float64(lcsLength(a, b)) / float64(total)
}

// lcsLength returns the length of the longest common subsequence of a and b.
func lcsLength(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
