// Package dictionary holds the known-word index and the word frequency table
// built from a corpus, and the loader that builds both in a single pass.
package dictionary

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// known is the item stored at a terminal node. Any non-nil item marks a word.
var known = struct{}{}

// Index is a prefix tree of known words.
// Membership tests walk at most len(word) bytes regardless of how many words are stored.
// An Index only grows; there is no removal.
type Index struct {
	trie  *patricia.Trie
	words int
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{trie: patricia.NewTrie()}
}

// Insert adds word to the index and reports whether it was not already present.
// Inserting the same word twice leaves the index unchanged. The empty word is ignored.
func (x *Index) Insert(word string) bool {
	if word == "" {
		return false
	}
	if !x.trie.Insert(patricia.Prefix(word), known) {
		return false
	}
	x.words++
	return true
}

// Contains reports whether word was inserted. It is always false for "".
func (x *Index) Contains(word string) bool {
	if word == "" {
		return false
	}
	return x.trie.Match(patricia.Prefix(word))
}

// Len returns the number of distinct words in the index.
func (x *Index) Len() int {
	return x.words
}
