// Package tokenize splits raw corpus text into lowercase word tokens.
//
// A word is a maximal run of letters and digits. Everything else, including
// punctuation, whitespace and bytes that are not valid UTF-8, separates words.
package tokenize

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// IsWordRune reports whether r can be part of a word.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Words returns the lowercase words of text in order of appearance, repeats included.
// It returns an empty slice for text without any letters or digits.
func Words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !IsWordRune(r)
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		words = append(words, strings.ToLower(f))
	}
	return words
}

// Scan streams the words of r to fn, in order, without holding the whole text in memory.
// Words of any length are returned whole. Only read errors from r are returned.
func Scan(r io.Reader, fn func(word string)) error {
	br := bufio.NewReaderSize(r, 64*1024)
	var word strings.Builder

	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if word.Len() > 0 {
					fn(strings.ToLower(word.String()))
				}
				return nil
			}
			return err
		}
		// invalid UTF-8 decodes to utf8.RuneError, which is not a word rune
		if IsWordRune(ch) {
			word.WriteRune(ch)
			continue
		}
		if word.Len() > 0 {
			fn(strings.ToLower(word.String()))
			word.Reset()
		}
	}
}
