// Package match scores approximate word matches and locates catalog
// candidates referenced by free-text query tokens.
package match

// Matching thresholds.
const (
	// NameThreshold is the minimum similarity for catalog-name stages.
	NameThreshold = 0.8
	// TagThreshold is the minimum similarity for the product tag pass.
	TagThreshold = 0.7
)

// Levenshtein computes the edit distance between two strings with unit cost
// for insertions, deletions, and substitutions. Two-row DP, O(len(a)*len(b))
// time, O(min(len(a), len(b))) space.
//
// Distance is byte-based: catalog names are assumed ASCII, and a multibyte
// rune counts as several edits. Similarity divides by byte length for the
// same reason.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, min(curr[i-1]+1, prev[i-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity returns 1 - distance/max(len(a), len(b)), in [0,1]. Higher
// means more similar; 1 only for exact matches of non-empty strings.
//
// Similarity("", "") is 0, not 1. The behavior is inherited from the
// original scorer and callers rely on empty inputs never matching; change
// it only together with the stage matchers.
func Similarity(a, b string) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(Levenshtein(a, b))/float64(maxLen)
}
