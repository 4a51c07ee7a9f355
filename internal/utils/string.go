package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchCase returns word in the letter case of pattern: all caps when pattern is
// all caps (and longer than one letter), capitalized when pattern starts with a
// capital, unchanged otherwise.
func MatchCase(word, pattern string) string {
	if word == "" || pattern == "" {
		return word
	}
	first, _ := utf8.DecodeRuneInString(pattern)
	if !unicode.IsUpper(first) {
		return word
	}
	if utf8.RuneCountInString(pattern) > 1 && isAllUpper(pattern) {
		return strings.ToUpper(word)
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	str := strconv.Itoa(n)
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	if len(str) <= 3 {
		return str
	}

	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}
