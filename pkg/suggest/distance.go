package suggest

import "github.com/hbollon/go-edlib"

// Distance returns the optimal string alignment distance between a and b:
// the number of rune insertions, deletions, substitutions and adjacent
// transpositions needed, with no substring edited twice.
func Distance(a, b string) int {
	return edlib.OSADamerauLevenshteinDistance(a, b)
}
