package dictionary

import (
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/spellserve/pkg/tokenize"
	"github.com/charmbracelet/log"
)

// Dictionary is the pair of structures built from one corpus.
// Both halves always come from the same pass over the same text, and neither is
// modified after Build returns, so a Dictionary can be shared between goroutines.
type Dictionary struct {
	Index  *Index
	Freqs  *Frequencies
	Source string
}

// Empty returns a dictionary with no words.
func Empty() *Dictionary {
	return &Dictionary{
		Index: NewIndex(),
		Freqs: NewFrequencies(),
	}
}

// FromWords builds a dictionary from already tokenized words.
func FromWords(source string, words []string) *Dictionary {
	d := Empty()
	d.Source = source
	for _, w := range words {
		d.add(w)
	}
	return d
}

// Build tokenizes everything readable from r into a new dictionary.
// It fails only when reading from r fails.
func Build(source string, r io.Reader) (*Dictionary, error) {
	start := time.Now()
	d := Empty()
	d.Source = source

	if err := tokenize.Scan(r, d.add); err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", source, err)
	}

	log.Debugf("Built dictionary from %s: %d words, %d tokens in %v",
		source, d.Index.Len(), d.Freqs.Total(), time.Since(start))
	return d, nil
}

// Load opens the corpus at path and builds a dictionary from it.
func Load(path string) (*Dictionary, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Build(path, rc)
}

func (d *Dictionary) add(word string) {
	d.Index.Insert(word)
	d.Freqs.Add(word)
}
