package suggest

import (
	"slices"
	"sort"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/dictionary"
)

// Suggestion is a known word offered for a query.
type Suggestion struct {
	Word      string
	Frequency int
	Distance  int
}

// Corrector picks corrections from a single, fixed dictionary.
type Corrector struct {
	dict  *dictionary.Dictionary
	cache *CandidateCache
}

// NewCorrector creates a Corrector over dict. cache may be nil.
func NewCorrector(dict *dictionary.Dictionary, cache *CandidateCache) *Corrector {
	if dict == nil {
		dict = dictionary.Empty()
	}
	return &Corrector{dict: dict, cache: cache}
}

// Candidates returns the candidate set of word; see the package-level Candidates.
func (c *Corrector) Candidates(word string) []string {
	return slices.Clone(c.candidates(word))
}

func (c *Corrector) candidates(word string) []string {
	if c.cache == nil {
		return Candidates(c.dict.Index, word)
	}
	if cands, ok := c.cache.Get(word); ok {
		return cands
	}
	cands := Candidates(c.dict.Index, word)
	c.cache.Put(word, cands)
	return cands
}

// Correct returns the most probable candidate for word.
// Among candidates with equal probability, including when none is in the
// frequency table, the alphabetically first wins. When no correction exists
// word is returned unchanged.
func (c *Corrector) Correct(word string) string {
	cands := c.candidates(word)

	best := cands[0]
	bestP := c.dict.Freqs.Probability(best)
	for _, w := range cands[1:] {
		if p := c.dict.Freqs.Probability(w); p > bestP {
			best, bestP = w, p
		}
	}
	return best
}

// Suggest returns the candidates of word other than word itself, most frequent first,
// alphabetical among equal frequencies. It is empty when there is nothing to offer.
func (c *Corrector) Suggest(word string) []Suggestion {
	filter := utils.NewSuggestionFilter(word)
	suggestions := []Suggestion{}

	for _, w := range c.candidates(word) {
		if !filter.ShouldInclude(w) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Word:      w,
			Frequency: c.dict.Freqs.Count(w),
			Distance:  Distance(word, w),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Word < suggestions[j].Word
	})
	return suggestions
}

// Dictionary returns the dictionary the corrector reads from.
func (c *Corrector) Dictionary() *dictionary.Dictionary {
	return c.dict
}
