package utils

import (
	"unicode"

	"github.com/bastiangx/spellserve/pkg/tokenize"
)

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars checks if a string has anything a corpus word could not contain.
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !tokenize.IsWordRune(r) {
			return true
		}
	}
	return false
}

// IsValidInput checks if input looks like a single word worth correcting.
// Numbers and strings with punctuation or spaces are rejected; the engine itself
// accepts them, so callers may skip this check for debugging.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	return !ContainsSpecialChars(s)
}

// RankByPosition returns ranks 1..count for items that are already sorted.
// Ranks past the uint16 range stay at the maximum.
func RankByPosition(count int) []uint16 {
	if count <= 0 {
		return []uint16{}
	}
	ranks := make([]uint16, count)
	for i := range ranks {
		ranks[i] = uint16(min(i+1, 65535))
	}
	return ranks
}
