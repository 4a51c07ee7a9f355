// Package suggest is the core: it generates correction candidates by edit distance,
// ranks them by corpus frequency, and owns the loaded dictionary through Engine.
package suggest

import "github.com/bastiangx/spellserve/pkg/dictionary"

// ISpeller is what front ends (CLI, IPC server) need from a spelling engine.
type ISpeller interface {
	// Correct returns the best correction for a single word
	Correct(input string) (string, error)

	// Suggest returns up to limit alternatives for a word, excluding the word itself
	Suggest(input string, limit int) ([]Suggestion, error)

	// LoadCorpus replaces the dictionary with one built from the file at path
	LoadCorpus(path string) error

	// MostCommon returns the n most frequent words of the loaded corpus
	MostCommon(n int) []dictionary.WordCount

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}
