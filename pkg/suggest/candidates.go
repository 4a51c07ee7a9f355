package suggest

import (
	"iter"
	"maps"
	"slices"
)

// Lexicon answers membership queries for known words.
// *dictionary.Index satisfies it.
type Lexicon interface {
	Contains(word string) bool
}

// Candidates returns the known words closest to word, sorted.
// The first non-empty tier wins:
//  1. word itself, when known
//  2. known words one edit away
//  3. known words two edits away
//  4. word itself, unknown, when nothing else was found
//
// Two-edit neighbours are only generated when the one-edit tier is empty.
func Candidates(lex Lexicon, word string) []string {
	if lex.Contains(word) {
		return []string{word}
	}
	if found := Known(lex, Edits1(word)); len(found) > 0 {
		return found
	}
	if found := Known(lex, Edits2(word)); len(found) > 0 {
		return found
	}
	return []string{word}
}

// Known drains words and returns the distinct ones present in lex, sorted.
func Known(lex Lexicon, words iter.Seq[string]) []string {
	found := make(map[string]struct{})
	for w := range words {
		if _, ok := found[w]; ok {
			continue
		}
		if lex.Contains(w) {
			found[w] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(found))
}
