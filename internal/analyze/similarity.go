package analyze

import "strings"

// Similarity compares two titles by edit distance, in percent. Case and extra
// spacing are ignored.
func Similarity(a, b string) float64 {
	x := []rune(strings.ToLower(CleanUnicode(a)))
	y := []rune(strings.ToLower(CleanUnicode(b)))
	if len(x) == 0 || len(y) == 0 {
		return 0
	}

	longest := max(len(x), len(y))
	return float64(longest-distance(x, y)) / float64(longest) * 100
}

// distance is the Levenshtein distance, two rows at a time.
func distance(s, t []rune) int {
	prev := make([]int, len(t)+1)
	cur := make([]int, len(t)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s); i++ {
		cur[0] = i
		for j := 1; j <= len(t); j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[len(t)]
}
