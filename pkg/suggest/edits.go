package suggest

import (
	"iter"
	"unicode/utf8"
)

// alphabet is the set of letters tried by substitutions and insertions.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Edits1 yields every string one edit away from word: deleting one character,
// swapping two adjacent characters, replacing one character with a letter of the
// alphabet, or inserting a letter at any position. Characters are runes.
//
// The sequence is lazy and may repeat a string; an empty word yields only insertions.
func Edits1(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		// offsets[i] is the byte offset of rune i; offsets[n] == len(word).
		offsets := make([]int, 0, utf8.RuneCountInString(word)+1)
		for i := range word {
			offsets = append(offsets, i)
		}
		offsets = append(offsets, len(word))
		n := len(offsets) - 1

		for i := 0; i < n; i++ {
			if !yield(word[:offsets[i]] + word[offsets[i+1]:]) {
				return
			}
		}

		for i := 0; i+1 < n; i++ {
			left := word[:offsets[i]]
			first := word[offsets[i]:offsets[i+1]]
			second := word[offsets[i+1]:offsets[i+2]]
			if !yield(left + second + first + word[offsets[i+2]:]) {
				return
			}
		}

		for i := 0; i < n; i++ {
			left, right := word[:offsets[i]], word[offsets[i+1]:]
			for j := 0; j < len(alphabet); j++ {
				if !yield(left + alphabet[j:j+1] + right) {
					return
				}
			}
		}

		for i := 0; i <= n; i++ {
			left, right := word[:offsets[i]], word[offsets[i]:]
			for j := 0; j < len(alphabet); j++ {
				if !yield(left + alphabet[j:j+1] + right) {
					return
				}
			}
		}
	}
}

// Edits2 yields every string reachable by applying Edits1 to each distinct result
// of Edits1(word). Nothing beyond the first level is materialized; a string reachable
// along several paths is yielded once per path.
func Edits2(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for e1 := range Edits1(word) {
			if _, dup := seen[e1]; dup {
				continue
			}
			seen[e1] = struct{}{}
			for e2 := range Edits1(e1) {
				if !yield(e2) {
					return
				}
			}
		}
	}
}
