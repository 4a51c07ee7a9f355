package dictionary

import (
	"sort"
)

// Frequencies counts how often each word occurs in a corpus.
type Frequencies struct {
	counts map[string]int
	total  int
}

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// NewFrequencies creates an empty table.
func NewFrequencies() *Frequencies {
	return &Frequencies{counts: make(map[string]int)}
}

// CountWords builds a table from a token sequence.
func CountWords(tokens []string) *Frequencies {
	f := NewFrequencies()
	for _, t := range tokens {
		f.Add(t)
	}
	return f
}

// Add records one occurrence of word. The empty word is ignored.
func (f *Frequencies) Add(word string) {
	if word == "" {
		return
	}
	f.counts[word]++
	f.total++
}

// Count returns the number of occurrences of word, 0 if unknown.
func (f *Frequencies) Count(word string) int {
	return f.counts[word]
}

// Total returns the sum of all counts.
func (f *Frequencies) Total() int {
	return f.total
}

// Len returns the number of distinct words.
func (f *Frequencies) Len() int {
	return len(f.counts)
}

// Probability returns count(word)/Total(), or exactly 0 when word is not in the table.
func (f *Frequencies) Probability(word string) float64 {
	count, ok := f.counts[word]
	if !ok || f.total == 0 {
		return 0
	}
	return float64(count) / float64(f.total)
}

// MostCommon returns up to n words with the highest counts, highest first.
// Equal counts are ordered by word. n <= 0 returns every word.
func (f *Frequencies) MostCommon(n int) []WordCount {
	all := make([]WordCount, 0, len(f.counts))
	for w, c := range f.counts {
		all = append(all, WordCount{Word: w, Count: c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Word < all[j].Word
	})
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
